package tui

import (
	"testing"

	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func openRunner(t *testing.T, h runnerHarness) {
	t.Helper()
	h.repo.EXPECT().StartTestSession(gomock.Any(), int64(7)).Return(twoQuestionSession(), nil)
	h.repo.EXPECT().GetUncompletedSessions(gomock.Any()).Return(nil, nil)

	done := h.runner.cmdOpen(openSessionMsg{TestID: 7, Title: "Go basics"})()
	h.runner.Update(done)
	require.Equal(t, testsession.StatusInProgress, h.runner.machine.State().Status)
}

func TestRunnerModel_OpenShowsFirstQuestion(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	view := h.runner.View()
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, "Which types are reference types?")
	assert.Contains(t, view, "[ ]")
	assert.False(t, h.runner.editor.Focused())
}

func TestRunnerModel_OpenFailureShowsError(t *testing.T) {
	h := newRunnerHarness(t)
	h.repo.EXPECT().GetTestSession(gomock.Any(), "missing").Return(models.TestSession{}, assertErr)

	done := h.runner.cmdOpen(openSessionMsg{SessionID: "missing"})()
	h.runner.Update(done)

	st := h.runner.machine.State()
	assert.Equal(t, testsession.StatusIdle, st.Status)
	require.NotNil(t, st.ErrorMessage)
	assert.Contains(t, h.runner.View(), *st.ErrorMessage)

	// esc dismisses the error first, then leaves
	h.runner.Update(keyType(tea.KeyEsc))
	assert.Nil(t, h.runner.machine.State().ErrorMessage)
}

func TestRunnerModel_FullSession(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	// select options 0 and 2 of the multiple-choice question
	h.runner.Update(keyType(tea.KeySpace))
	h.runner.Update(keyType(tea.KeyDown))
	h.runner.Update(keyType(tea.KeyDown))
	h.runner.Update(keyType(tea.KeySpace))
	assert.Equal(t, []int{0, 2}, h.runner.machine.State().Draft.SelectedOptions)

	h.repo.EXPECT().SaveAnswer(gomock.Any(), "s-1", models.Answer{QuestionID: 1, SelectedOptions: []int{0, 2}}).
		Return(models.AnswerFeedback{QuestionID: 1}, nil)

	_, cmd := h.runner.Update(keyType(tea.KeyEnter))
	assert.True(t, h.runner.busy)
	h.runner.Update(findMsg[machineDoneMsg](t, collect(cmd)))
	assert.False(t, h.runner.busy)
	assert.Contains(t, h.runner.View(), "Correct")
	assert.Contains(t, h.runner.View(), "Maps and slices share their backing data.")

	// next question is free-form: the editor takes the keys
	h.runner.Update(keyType(tea.KeyRight))
	require.True(t, h.runner.editor.Focused())
	h.runner.Update(keyRunes("nil"))
	assert.Equal(t, "nil", h.runner.editor.Value())

	text := "nil"
	isCorrect := true
	h.repo.EXPECT().SaveAnswer(gomock.Any(), "s-1", models.Answer{QuestionID: 2, TextAnswer: &text}).
		Return(models.AnswerFeedback{QuestionID: 2, IsCorrect: &isCorrect, Feedback: "Right"}, nil)

	_, cmd = h.runner.Update(keyType(tea.KeyCtrlS))
	h.runner.Update(findMsg[machineDoneMsg](t, collect(cmd)))
	assert.Equal(t, 2, h.runner.machine.State().AnsweredCount())

	result := models.TestResult{Score: 25, TotalPoints: 25, Feedback: "Perfect score!"}
	h.repo.EXPECT().CompleteTestSession(gomock.Any(), "s-1").Return(result, nil)
	h.repo.EXPECT().RemoveUncompletedSession(gomock.Any(), "s-1").Return(nil)
	h.events.EXPECT().Publish(gomock.Any(), models.EventTestSessionCompleted{SessionID: "s-1", Result: result})

	_, cmd = h.runner.Update(keyType(tea.KeyCtrlF))
	_, cmd = h.runner.Update(findMsg[machineDoneMsg](t, collect(cmd)))

	nav := cmd().(NavigateTo)
	assert.Equal(t, "result", nav.Page)
	shown := nav.Payload.(showResultMsg)
	assert.Equal(t, result, shown.Result)
	assert.Equal(t, "Go basics", shown.Title)

	page := NewResultModel()
	page.Update(shown)
	view := page.View()
	assert.Contains(t, view, "Score: 25 / 25")
	assert.Contains(t, view, "Perfect score!")
}

func TestRunnerModel_CompleteRejectedWhileUnanswered(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	_, cmd := h.runner.Update(keyType(tea.KeyCtrlF))
	_, cmd = h.runner.Update(findMsg[machineDoneMsg](t, collect(cmd)))
	assert.Nil(t, cmd)

	st := h.runner.machine.State()
	assert.Equal(t, testsession.StatusInProgress, st.Status)
	require.NotNil(t, st.ErrorMessage)
}

func TestRunnerModel_NavigationResetsCursor(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	h.runner.Update(keyType(tea.KeyDown))
	assert.Equal(t, 1, h.runner.cursor)

	h.runner.Update(keyType(tea.KeyCtrlN))
	h.runner.Update(keyType(tea.KeyCtrlP))
	assert.Equal(t, 0, h.runner.cursor)
	assert.Equal(t, 0, h.runner.machine.State().CurrentIndex)
	assert.Empty(t, h.runner.machine.State().Draft.SelectedOptions)
}

func TestRunnerModel_EscPausesAndGoesHome(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	_, cmd := h.runner.Update(keyType(tea.KeyEsc))
	assert.Equal(t, NavigateTo{Page: "home"}, cmd())
}

func TestRunnerModel_Abandon(t *testing.T) {
	h := newRunnerHarness(t)
	openRunner(t, h)

	h.repo.EXPECT().RemoveUncompletedSession(gomock.Any(), "s-1").Return(nil)

	_, cmd := h.runner.Update(keyType(tea.KeyCtrlX))
	_, cmd = h.runner.Update(findMsg[machineDoneMsg](t, collect(cmd)))
	assert.Equal(t, NavigateTo{Page: "home"}, cmd())
	assert.Equal(t, testsession.StatusIdle, h.runner.machine.State().Status)
}
