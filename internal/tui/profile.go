package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/service"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// appearance is the part of the session the profile page edits directly.
type appearance interface {
	IsDarkTheme(ctx context.Context) bool
	SetDarkTheme(ctx context.Context, dark bool)
	AvatarPath(ctx context.Context) (string, bool)
}

// ProfileModel shows the account, lets the user tune how many articles
// they get per day and switch the colour theme.
type ProfileModel struct {
	ctx        context.Context
	errs       errorMapper
	profile    service.ClientProfileService
	appearance appearance

	info    models.UserInfo
	prefs   models.UserPreferences
	dirty   bool
	loading bool
	saving  bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewProfileModel(ctx context.Context, profile service.ClientProfileService, look appearance, errs errorMapper) *ProfileModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &ProfileModel{ctx: ctx, errs: errs, profile: profile, appearance: look, spinner: s}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.dirty = false
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.errMsg = errorText(m.ctx, m.errs, msg.err)
		if msg.err == nil {
			m.info = msg.info
			m.prefs = msg.prefs
		}
		return m, nil
	case preferencesSavedMsg:
		m.saving = false
		m.errMsg = errorText(m.ctx, m.errs, msg.err)
		if msg.err == nil {
			m.prefs = msg.prefs
			m.dirty = false
			m.status = "Preferences saved"
			return m, cmdClearStatus()
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.saving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *ProfileModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading || m.saving {
		if key.Matches(msg, keys.esc) {
			return m, navigate("home")
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate("home")
	case key.Matches(msg, keys.inc):
		m.prefs.ArticlesPerDay++
		m.dirty = true
	case key.Matches(msg, keys.dec):
		m.prefs.ArticlesPerDay--
		m.dirty = true
	case key.Matches(msg, keys.save):
		m.saving = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSave(m.prefs))
	case key.Matches(msg, keys.theme):
		dark := !m.appearance.IsDarkTheme(m.ctx)
		m.appearance.SetDarkTheme(m.ctx, dark)
		lipgloss.SetHasDarkBackground(dark)
	case key.Matches(msg, keys.refresh):
		m.loading = true
		m.dirty = false
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}
	return m, nil
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading profile...\n")
	} else {
		fmt.Fprintf(&b, "Username        │ %s\n", valueOrDash(m.info.Username))
		fmt.Fprintf(&b, "Email           │ %s\n", valueOrDash(m.info.Email))
		fmt.Fprintf(&b, "Tests completed │ %d\n", m.info.CompletedTests)
		fmt.Fprintf(&b, "Total score     │ %d\n", m.info.TotalScore)
		avatar, _ := m.appearance.AvatarPath(m.ctx)
		fmt.Fprintf(&b, "Avatar          │ %s\n", valueOrDash(avatar))
		b.WriteString("\n")

		directions := make([]string, 0, len(m.prefs.Directions))
		for _, d := range m.prefs.Directions {
			directions = append(directions, string(d))
		}
		fmt.Fprintf(&b, "Directions      │ %s\n", valueOrDash(strings.Join(directions, ", ")))
		fmt.Fprintf(&b, "Delivery        │ %s\n", valueOrDash(string(m.prefs.DeliveryFrequency)))
		perDay := fmt.Sprintf("%d", m.prefs.ArticlesPerDay)
		if m.dirty {
			perDay += " (unsaved)"
		}
		fmt.Fprintf(&b, "Articles / day  │ %s\n", perDay)

		theme := "light"
		if m.appearance.IsDarkTheme(m.ctx) {
			theme = "dark"
		}
		fmt.Fprintf(&b, "Theme           │ %s\n", theme)
	}
	if m.saving {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Saving...\n")
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "+/-: articles per day │ s: save │ t: theme │ r: refresh │ esc: back")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		var msg profileLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.info, err = profile.GetUserInfo(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.prefs, err = profile.SyncPreferences(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m *ProfileModel) cmdSave(prefs models.UserPreferences) tea.Cmd {
	ctx := m.ctx
	profile := m.profile

	return func() tea.Msg {
		saved, err := profile.UpdatePreferences(ctx, prefs)
		return preferencesSavedMsg{prefs: saved, err: err}
	}
}
