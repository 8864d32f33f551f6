package tui

import (
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RootModel owns the pages of one program and routes messages to the
// active one. Window resizes reach every page so a page opened later
// already knows the terminal size. The program ends with ctrl+c or with a
// login or logout result.
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	quitByUser bool
	loggedOut  bool
	signedInAs string
	resultID   int64
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		return r.broadcast(size)
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		if nav.Page == r.currentName && nav.Payload == nil {
			return r, nil
		}
		r.current = next
		r.currentName = nav.Page

		if nav.Payload != nil {
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return nav.Payload })
		}
		return r, r.current.Init()
	}

	switch result := msg.(type) {
	case LoginResult:
		if result.Err == nil {
			r.resultID = result.UserID
			return r, tea.Quit
		}
	case LogoutResult:
		r.loggedOut = true
		return r, tea.Quit
	case usernameChangedMsg:
		r.signedInAs = result.username
		return r, nil
	case themeChangedMsg:
		lipgloss.SetHasDarkBackground(result.dark)
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// broadcast delivers msg to every page, the active one last.
func (r RootModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for name, page := range r.pages {
		if name == r.currentName {
			continue
		}
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		cmds = append(cmds, cmd)
	}

	if r.current != nil {
		updated, cmd := r.current.Update(msg)
		r.current = updated
		r.pages[r.currentName] = updated
		cmds = append(cmds, cmd)
	}
	return r, tea.Batch(cmds...)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return appStyle.Render(renderPage("go-test-prep", "no page to show", ""))
	}
	if r.signedInAs == "" {
		return appStyle.Render(r.current.View())
	}
	return appStyle.Render(helpStyle.Render("signed in as "+r.signedInAs) + "\n" + r.current.View())
}

func (r RootModel) isMenuPage() bool {
	switch r.current.(type) {
	case *MenuModel, *HomeModel:
		return true
	default:
		return false
	}
}
