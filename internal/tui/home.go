package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/service"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// pickerItem is one row of the session picker: either a saved, unfinished
// session or a test that can be started.
type pickerItem struct {
	resume *models.UncompletedSession
	test   models.Test
}

func (i pickerItem) title() string {
	if i.test.Title != "" {
		return i.test.Title
	}
	return fmt.Sprintf("Test #%d", i.test.TestID)
}

// HomeModel is the session picker. Unfinished sessions are listed first,
// newest save on top, followed by every available test.
type HomeModel struct {
	ctx  context.Context
	errs errorMapper

	tests service.ClientTestsService
	auth  service.ClientAuthService

	items   []pickerItem
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewHomeModel(ctx context.Context, tests service.ClientTestsService, auth service.ClientAuthService, errs errorMapper) *HomeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HomeModel{
		ctx:     ctx,
		errs:    errs,
		tests:   tests,
		auth:    auth,
		spinner: s,
	}
}

func (m *HomeModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(m.ctx, m.errs, msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = buildPickerItems(msg.tests, msg.uncompleted)
		m.idx = clampIndex(m.idx, len(m.items))
		return m, nil
	case sessionDiscardedMsg:
		if msg.err != nil {
			m.errMsg = errorText(m.ctx, m.errs, msg.err)
			return m, nil
		}
		m.status = "Saved progress discarded"
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case spinner.TickMsg:
		if !m.loading {
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

func (m *HomeModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		open := openSessionMsg{TestID: item.test.TestID, Title: item.title()}
		if item.resume != nil {
			open.SessionID = item.resume.SessionID
		}
		return m, navigateWith("runner", open)
	case key.Matches(msg, keys.discard):
		item, ok := m.current()
		if !ok || item.resume == nil {
			return m, nil
		}
		return m, m.cmdDiscard(item.resume.SessionID)
	case key.Matches(msg, keys.refresh):
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.articles):
		return m, navigate("articles")
	case key.Matches(msg, keys.board):
		return m, navigate("leaderboard")
	case key.Matches(msg, keys.profile):
		return m, navigate("profile")
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading tests...\n")
	case len(m.items) == 0:
		b.WriteString("No tests available\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s %s", cursorMark(i == m.idx), fitText(item.title(), 48))
			if item.resume != nil {
				line += fmt.Sprintf("  [continue: question %d, %s]",
					item.resume.QuestionIndex+1,
					formatElapsed(time.Duration(item.resume.ElapsedTimeMillis)*time.Millisecond))
			} else if item.test.QuestionCount > 0 {
				line += fmt.Sprintf("  (%d questions)", item.test.QuestionCount)
			}
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	renderStatus(&b, m.status, m.errMsg)

	return renderPage("TESTS", strings.TrimRight(b.String(), "\n"),
		"enter: open │ d: discard progress │ r: refresh │ a: articles │ b: leaderboard │ p: profile │ o: sign out │ v: version")
}

func (m *HomeModel) current() (pickerItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return pickerItem{}, false
	}
	return m.items[m.idx], true
}

func (m *HomeModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	tests := m.tests

	return func() tea.Msg {
		var msg homeLoadedMsg

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.tests, err = tests.GetTests(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.uncompleted, err = tests.GetUncompletedSessions(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	}
}

func (m *HomeModel) cmdDiscard(sessionID string) tea.Cmd {
	ctx := m.ctx
	tests := m.tests

	return func() tea.Msg {
		return sessionDiscardedMsg{sessionID: sessionID, err: tests.RemoveUncompletedSession(ctx, sessionID)}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		auth.Logout(ctx)
		return LogoutResult{}
	}
}

// buildPickerItems puts resumable sessions first. A saved session whose
// test is no longer listed is still offered under a generic title.
func buildPickerItems(tests []models.Test, uncompleted []models.UncompletedSession) []pickerItem {
	byID := make(map[int64]models.Test, len(tests))
	for _, t := range tests {
		byID[t.TestID] = t
	}

	items := make([]pickerItem, 0, len(tests)+len(uncompleted))
	for i := range uncompleted {
		test, ok := byID[uncompleted[i].TestID]
		if !ok {
			test = models.Test{TestID: uncompleted[i].TestID}
		}
		items = append(items, pickerItem{resume: &uncompleted[i], test: test})
	}
	for _, t := range tests {
		items = append(items, pickerItem{test: t})
	}
	return items
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
