package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/mock"
	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/internal/workers"
	"github.com/MKhiriev/go-test-prep/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testErrs = app.NewMessageMapper(logger.Nop())

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// collect runs cmd, flattening batches, and returns every message produced.
// Commands that would sleep (ticks) must not be passed in.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	require.Failf(t, "message not found", "no %T among %v", zero, msgs)
	return zero
}

// twoQuestionSession has one multiple-choice question worth 10 points and
// one text question worth 15.
func twoQuestionSession() models.TestSession {
	return models.TestSession{
		SessionID: "s-1",
		TestID:    7,
		Questions: []models.Question{
			{
				ID:             1,
				Text:           "Which types are reference types?",
				Type:           models.MultipleChoice,
				Options:        []string{"map", "int", "slice"},
				CorrectOptions: []int{0, 2},
				Points:         10,
				Explanation:    "Maps and slices share their backing data.",
			},
			{
				ID:          2,
				Text:        "Zero value of a pointer?",
				Type:        models.TextQuestion,
				Points:      15,
				Explanation: "Pointers start as nil.",
			},
		},
	}
}

type runnerHarness struct {
	repo   *mock.MockRepository
	events *mock.MockPublisher
	runner *RunnerModel
}

func newRunnerHarness(t *testing.T) runnerHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	events := mock.NewMockPublisher(ctrl)

	pool := workers.NewPool(2, logger.Nop())
	t.Cleanup(pool.Close)

	repo.EXPECT().SaveSessionProgress(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	machine := testsession.NewMachine(repo, testErrs, events, pool, logger.Nop())
	t.Cleanup(machine.Close)

	return runnerHarness{
		repo:   repo,
		events: events,
		runner: NewRunnerModel(context.Background(), machine),
	}
}
