package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	opLoad     = "load"
	opSubmit   = "submit"
	opComplete = "complete"
	opAbandon  = "abandon"
)

// RunnerModel drives a [testsession.Machine]. Blocking machine calls run as
// commands and report back with machineDoneMsg; the view is always rendered
// from the machine's latest state.
type RunnerModel struct {
	ctx     context.Context
	machine *testsession.Machine

	title      string
	editor     textarea.Model
	spinner    spinner.Model
	cursor     int
	questionID int64
	busy       bool
	status     string
}

func NewRunnerModel(ctx context.Context, machine *testsession.Machine) *RunnerModel {
	editor := textarea.New()
	editor.Placeholder = "Your answer"
	editor.ShowLineNumbers = false
	editor.SetWidth(72)
	editor.SetHeight(6)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RunnerModel{
		ctx:     ctx,
		machine: machine,
		editor:  editor,
		spinner: s,
	}
}

func (m *RunnerModel) Init() tea.Cmd {
	return nil
}

func (m *RunnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor.SetWidth(max(20, min(msg.Width-8, 100)))
		return m, nil
	case openSessionMsg:
		m.title = msg.Title
		m.status = ""
		m.questionID = 0
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdOpen(msg), tickElapsed())
	case machineDoneMsg:
		return m.handleDone(msg)
	case elapsedTickMsg:
		switch m.machine.State().Status {
		case testsession.StatusInProgress, testsession.StatusSubmitting, testsession.StatusLoading:
		default:
			if !m.busy {
				return m, nil
			}
		}
		return m, tickElapsed()
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case copiedMsg:
		m.status = "Explanation copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		return m.updateKeys(msg)
	}

	if m.editor.Focused() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *RunnerModel) handleDone(msg machineDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	st := m.machine.State()

	switch msg.op {
	case opComplete:
		if msg.err == nil && st.Status == testsession.StatusCompleted && st.Result != nil && st.Session != nil {
			return m, navigateWith("result", showResultMsg{Title: m.title, Result: *st.Result, Session: *st.Session})
		}
	case opAbandon:
		if msg.err == nil {
			return m, navigate("home")
		}
	}

	m.syncEditor()
	return m, nil
}

func (m *RunnerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.machine.State()

	switch {
	case key.Matches(msg, keys.esc):
		if st.ErrorMessage != nil {
			m.machine.ClearError()
			return m, nil
		}
		m.machine.Pause(m.ctx)
		m.editor.Blur()
		return m, navigate("home")
	case key.Matches(msg, keys.next):
		m.machine.NextQuestion(m.ctx)
		m.syncEditor()
		return m, nil
	case key.Matches(msg, keys.prev):
		m.machine.PreviousQuestion(m.ctx)
		m.syncEditor()
		return m, nil
	case key.Matches(msg, keys.submit):
		return m.submit()
	case key.Matches(msg, keys.finish):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRun(opComplete, m.machine.CompleteTestSession))
	case key.Matches(msg, keys.abandon):
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRun(opAbandon, m.machine.Abandon))
	}

	q, ok := st.CurrentQuestion()
	if !ok || st.Status != testsession.StatusInProgress {
		return m, nil
	}

	if !q.Type.IsChoice() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.toggle):
		_ = m.machine.SelectOption(m.ctx, m.cursor)
	case key.Matches(msg, keys.enter):
		return m.submit()
	case key.Matches(msg, keys.right):
		m.machine.NextQuestion(m.ctx)
		m.syncEditor()
	case key.Matches(msg, keys.left):
		m.machine.PreviousQuestion(m.ctx)
		m.syncEditor()
	case key.Matches(msg, keys.copy):
		if reveal, ok := st.Revealed[q.ID]; ok && reveal.Explanation != "" {
			return m, cmdCopyToClipboard(reveal.Explanation)
		}
	}
	return m, nil
}

// submit pushes the editor text into the draft of a free-form question and
// sends the answer.
func (m *RunnerModel) submit() (tea.Model, tea.Cmd) {
	st := m.machine.State()
	q, ok := st.CurrentQuestion()
	if !ok {
		return m, nil
	}

	switch q.Type {
	case models.TextQuestion:
		if err := m.machine.SetTextAnswer(m.ctx, m.editor.Value()); err != nil {
			return m, nil
		}
	case models.CodeQuestion:
		if err := m.machine.SetCodeAnswer(m.ctx, m.editor.Value()); err != nil {
			return m, nil
		}
	}

	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.cmdRun(opSubmit, m.machine.SubmitAnswer))
}

// syncEditor rebinds the editor and the option cursor when the current
// question changed.
func (m *RunnerModel) syncEditor() {
	st := m.machine.State()
	q, ok := st.CurrentQuestion()
	if !ok {
		m.questionID = 0
		m.editor.Blur()
		return
	}
	if q.ID == m.questionID {
		return
	}

	m.questionID = q.ID
	m.cursor = 0
	m.editor.Reset()

	if q.Type.IsChoice() {
		m.editor.Blur()
		return
	}

	if text, ok := recordedText(st, q); ok {
		m.editor.SetValue(text)
	} else if q.Type == models.CodeQuestion && q.SampleCode != nil {
		m.editor.SetValue(*q.SampleCode)
	}
	m.editor.Focus()
}

func (m *RunnerModel) View() string {
	st := m.machine.State()
	var b strings.Builder

	title := "TEST"
	if m.title != "" {
		title = strings.ToUpper(m.title)
	}

	switch {
	case st.Status == testsession.StatusLoading || (m.busy && st.Session == nil):
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading questions...\n")
	case st.Session == nil:
		b.WriteString("No active test session\n")
	default:
		m.renderQuestion(&b, st)
	}

	if st.ErrorMessage != nil {
		b.WriteString("\n")
		b.WriteString(renderErrorBox(*st.ErrorMessage))
		b.WriteString("\n")
	}
	renderStatus(&b, m.status, "")

	hotKeys := "ctrl+s: submit │ ctrl+n/ctrl+p: next/prev │ ctrl+f: finish │ ctrl+x: abandon │ esc: pause"
	if q, ok := st.CurrentQuestion(); ok && q.Type.IsChoice() {
		hotKeys = "space: select │ enter: submit │ ←/→: prev/next │ c: copy explanation │ ctrl+f: finish │ ctrl+x: abandon │ esc: pause"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RunnerModel) renderQuestion(b *strings.Builder, st testsession.UIState) {
	q, ok := st.CurrentQuestion()
	if !ok {
		b.WriteString("This test has no questions\n")
		return
	}

	fmt.Fprintf(b, "Question %d of %d │ answered %d │ %s",
		st.CurrentIndex+1, st.QuestionCount(), st.AnsweredCount(), formatElapsed(m.machine.Elapsed()))
	if st.Status == testsession.StatusSubmitting {
		b.WriteString(" │ ")
		b.WriteString(m.spinner.View())
		b.WriteString(" sending")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(b, "%s  (%d pts, %s)\n\n", q.Text, q.Points, questionTypeLabel(q.Type))

	if q.Type.IsChoice() {
		renderOptions(b, st, q, m.cursor)
	} else {
		b.WriteString(m.editor.View())
		b.WriteString("\n")
	}
	renderVerdict(b, st, q)
}

// cmdOpen resumes a saved session or starts a new one and resumes the clock.
func (m *RunnerModel) cmdOpen(open openSessionMsg) tea.Cmd {
	ctx := m.ctx
	machine := m.machine

	return func() tea.Msg {
		var err error
		if open.SessionID != "" {
			err = machine.LoadTestSession(ctx, open.SessionID)
		} else {
			err = machine.StartTest(ctx, open.TestID)
		}
		if err == nil {
			machine.Resume()
		}
		return machineDoneMsg{op: opLoad, err: err}
	}
}

func (m *RunnerModel) cmdRun(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return machineDoneMsg{op: op, err: fn(ctx)}
	}
}

func tickElapsed() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return elapsedTickMsg{}
	})
}
