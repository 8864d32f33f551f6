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
)

const leaderboardSize = 20

type LeaderboardModel struct {
	ctx    context.Context
	errs   errorMapper
	board  service.ClientLeaderboardService
	userID func() int64

	entries []models.LeaderboardEntry
	loading bool
	spinner spinner.Model
	errMsg  string
}

// NewLeaderboardModel creates the leaderboard page. userID is consulted on
// every render to highlight the signed-in user's row.
func NewLeaderboardModel(ctx context.Context, board service.ClientLeaderboardService, userID func() int64, errs errorMapper) *LeaderboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &LeaderboardModel{ctx: ctx, errs: errs, board: board, userID: userID, spinner: s}
}

func (m *LeaderboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *LeaderboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardLoadedMsg:
		m.loading = false
		m.errMsg = errorText(m.ctx, m.errs, msg.err)
		if msg.err == nil {
			m.entries = msg.entries
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate("home")
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		}
	}
	return m, nil
}

func (m *LeaderboardModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading leaderboard...\n")
	case len(m.entries) == 0:
		b.WriteString("Nobody has finished a test yet\n")
	default:
		b.WriteString(" Rank │ User                     │ Score\n")
		b.WriteString("──────┼──────────────────────────┼──────\n")
		me := m.userID()
		for _, e := range m.entries {
			line := fmt.Sprintf(" %4d │ %-24s │ %5d", e.Rank, fitText(e.Username, 24), e.Score)
			if e.UserID == me {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("LEADERBOARD", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func (m *LeaderboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	board := m.board
	return func() tea.Msg {
		entries, err := board.GetLeaderboard(ctx, leaderboardSize)
		return leaderboardLoadedMsg{entries: entries, err: err}
	}
}
