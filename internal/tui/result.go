package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-test-prep/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultModel shows the graded session.
type ResultModel struct {
	title   string
	result  models.TestResult
	session models.TestSession
	loaded  bool
	status  string
}

func NewResultModel() *ResultModel {
	return &ResultModel{}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showResultMsg:
		m.title = msg.Title
		m.result = msg.Result
		m.session = msg.Session
		m.loaded = true
		m.status = ""
		return m, nil
	case copiedMsg:
		m.status = "Summary copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			return m, navigate("home")
		case key.Matches(msg, keys.copy):
			if m.loaded {
				return m, cmdCopyToClipboard(resultSummary(m.title, m.result))
			}
		}
	}
	return m, nil
}

func (m *ResultModel) View() string {
	var b strings.Builder

	if !m.loaded {
		b.WriteString("No result yet\n")
	} else {
		fmt.Fprintf(&b, "Score: %d / %d\n", m.result.Score, m.result.TotalPoints)
		if m.result.DurationMillis > 0 {
			fmt.Fprintf(&b, "Time:  %s\n", formatElapsed(time.Duration(m.result.DurationMillis)*time.Millisecond))
		}
		if m.result.Feedback != "" {
			b.WriteString("\n")
			b.WriteString(titleStyle.Render(m.result.Feedback))
			b.WriteString("\n")
		}

		if len(m.result.QuestionResults) > 0 {
			b.WriteString("\n")
			texts := questionTexts(m.session)
			for i, qr := range m.result.QuestionResults {
				verdict := incorrectStyle.Render("✗")
				if qr.IsCorrect {
					verdict = correctStyle.Render("✓")
				}
				fmt.Fprintf(&b, "%s %2d. %-40s %d pts\n", verdict, i+1, fitText(valueOrDash(texts[qr.QuestionID]), 40), qr.PointsEarned)
				if qr.Feedback != "" {
					b.WriteString("      ")
					b.WriteString(helpStyle.Render(qr.Feedback))
					b.WriteString("\n")
				}
			}
		}
	}
	renderStatus(&b, m.status, "")

	title := "RESULT"
	if m.title != "" {
		title += ": " + strings.ToUpper(m.title)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: back to tests │ c: copy summary")
}

func questionTexts(s models.TestSession) map[int64]string {
	texts := make(map[int64]string, len(s.Questions))
	for _, q := range s.Questions {
		texts[q.ID] = q.Text
	}
	return texts
}

func resultSummary(title string, r models.TestResult) string {
	if title == "" {
		title = "Test"
	}
	summary := fmt.Sprintf("%s: %d/%d", title, r.Score, r.TotalPoints)
	if r.Feedback != "" {
		summary += " (" + r.Feedback + ")"
	}
	return summary
}
