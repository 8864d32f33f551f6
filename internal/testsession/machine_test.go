package testsession

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/workers"
	"github.com/MKhiriev/go-test-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository grades sessions the way the backend does: choice answers by
// option set, free-form answers by exact text.
type fakeRepository struct {
	mu sync.Mutex

	session     models.TestSession
	expected    map[int64]string
	saved       map[int64]models.Answer
	progress    map[string]models.UncompletedSession
	saveErr     error
	completeErr error
	loadErr     error

	saveCalls     int
	completeCalls int
	removed       []string
}

func newFakeRepository(ts models.TestSession) *fakeRepository {
	return &fakeRepository{
		session:  ts,
		expected: make(map[int64]string),
		saved:    make(map[int64]models.Answer),
		progress: make(map[string]models.UncompletedSession),
	}
}

func (r *fakeRepository) StartTestSession(_ context.Context, testID int64) (models.TestSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return models.TestSession{}, r.loadErr
	}
	ts := r.session
	ts.TestID = testID
	return ts, nil
}

func (r *fakeRepository) GetTestSession(_ context.Context, sessionID string) (models.TestSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return models.TestSession{}, r.loadErr
	}
	if sessionID != r.session.SessionID {
		return models.TestSession{}, adapter.ErrNotFound
	}
	return r.session, nil
}

func (r *fakeRepository) SaveAnswer(_ context.Context, _ string, answer models.Answer) (models.AnswerFeedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return models.AnswerFeedback{}, r.saveErr
	}
	r.saved[answer.QuestionID] = answer
	return models.AnswerFeedback{QuestionID: answer.QuestionID}, nil
}

func (r *fakeRepository) CompleteTestSession(_ context.Context, _ string) (models.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completeCalls++
	if r.completeErr != nil {
		return models.TestResult{}, r.completeErr
	}

	result := models.TestResult{TotalPoints: r.session.TotalPoints()}
	for _, q := range r.session.Questions {
		a, ok := r.saved[q.ID]
		correct := false
		switch {
		case !ok:
		case q.Type.IsChoice():
			correct = models.SameOptions(a.SelectedOptions, q.CorrectOptions)
		case a.TextAnswer != nil:
			correct = strings.EqualFold(strings.TrimSpace(*a.TextAnswer), r.expected[q.ID])
		}
		earned := 0
		if correct {
			earned = q.Points
		}
		result.Score += earned
		result.QuestionResults = append(result.QuestionResults, models.QuestionResult{
			QuestionID: q.ID, IsCorrect: correct, PointsEarned: earned,
		})
	}
	result.Feedback = "Keep practicing!"
	if result.Score == result.TotalPoints {
		result.Feedback = "Perfect score!"
	}
	return result, nil
}

func (r *fakeRepository) SaveSessionProgress(_ context.Context, p models.UncompletedSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[p.SessionID] = p
	return nil
}

func (r *fakeRepository) GetUncompletedSessions(_ context.Context) ([]models.UncompletedSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.UncompletedSession, 0, len(r.progress))
	for _, p := range r.progress {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepository) RemoveUncompletedSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.progress, sessionID)
	r.removed = append(r.removed, sessionID)
	return nil
}

type spyPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *spyPublisher) Publish(_ context.Context, e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// twoQuestionSession is a MULTIPLE_CHOICE question worth 10 and a TEXT
// question worth 15.
func twoQuestionSession() models.TestSession {
	return models.TestSession{
		SessionID: "sess-1",
		TestID:    7,
		Questions: []models.Question{
			{
				ID:             1,
				Text:           "Which are Go keywords?",
				Type:           models.MultipleChoice,
				Options:        []string{"defer", "lambda", "select", "yield"},
				CorrectOptions: []int{0, 2},
				Points:         10,
				Explanation:    "defer and select are keywords",
			},
			{
				ID:          2,
				Text:        "Name the zero value of a pointer",
				Type:        models.TextQuestion,
				Points:      15,
				Explanation: "pointers default to nil",
			},
		},
	}
}

type harness struct {
	machine *Machine
	repo    *fakeRepository
	pool    *workers.Pool
	events  *spyPublisher
	clock   *fakeClock
}

func newHarness(t *testing.T, ts models.TestSession) *harness {
	t.Helper()

	repo := newFakeRepository(ts)
	repo.expected[2] = "nil"
	pool := workers.NewPool(2, logger.Nop())
	events := &spyPublisher{}
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}

	m := NewMachine(repo, app.NewMessageMapper(logger.Nop()), events, pool, logger.Nop(), WithClock(clock.Now))
	t.Cleanup(func() {
		pool.Wait()
		pool.Close()
		m.Close()
	})

	return &harness{machine: m, repo: repo, pool: pool, events: events, clock: clock}
}

func TestMachine_LoadTestSession(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()

	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	s := h.machine.State()
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, 2, s.QuestionCount())
	assert.Nil(t, s.ErrorMessage)
}

func TestMachine_LoadTestSession_FailureStaysIdle(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	h.repo.loadErr = adapter.ErrUnavailable

	err := h.machine.LoadTestSession(context.Background(), "sess-1")
	require.Error(t, err)

	s := h.machine.State()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Nil(t, s.Session)
	require.NotNil(t, s.ErrorMessage)
	assert.Equal(t, app.MsgNoConnection, *s.ErrorMessage)
}

func TestMachine_LoadTestSession_RestoresProgress(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	h.repo.progress["sess-1"] = models.UncompletedSession{
		SessionID: "sess-1", TestID: 7, QuestionIndex: 9, ElapsedTimeMillis: 90_000,
	}

	require.NoError(t, h.machine.LoadTestSession(context.Background(), "sess-1"))

	assert.Equal(t, 1, h.machine.State().CurrentIndex, "restored index is clamped")
	assert.Equal(t, 90*time.Second, h.machine.Elapsed())

	h.clock.Advance(30 * time.Second)
	assert.Equal(t, 2*time.Minute, h.machine.Elapsed())
}

func TestMachine_LoadTestSession_ClassifiesRecordedAnswers(t *testing.T) {
	ts := twoQuestionSession()
	ts.Answers = map[int64]models.Answer{1: {QuestionID: 1, SelectedOptions: []int{2, 0}}}
	h := newHarness(t, ts)

	require.NoError(t, h.machine.LoadTestSession(context.Background(), "sess-1"))

	s := h.machine.State()
	assert.True(t, s.IsAnswered(1))
	assert.True(t, s.Correctness[1])
}

func TestMachine_IndexStaysClamped(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	moves := []int{-1, -1, 1, 1, 1, 1, -1, 1, -1, -1, -1}
	for _, d := range moves {
		if d > 0 {
			h.machine.NextQuestion(ctx)
		} else {
			h.machine.PreviousQuestion(ctx)
		}
		idx := h.machine.State().CurrentIndex
		assert.GreaterOrEqual(t, idx, 0)
		assert.LessOrEqual(t, idx, 1)
	}
	assert.Equal(t, 0, h.machine.State().CurrentIndex)
}

func TestMachine_NavigationClearsDraft(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.NoError(t, h.machine.SelectOption(ctx, 0))
	require.NoError(t, h.machine.SelectOption(ctx, 2))
	assert.Equal(t, []int{0, 2}, h.machine.State().Draft.SelectedOptions)

	h.machine.NextQuestion(ctx)
	require.NoError(t, h.machine.SetTextAnswer(ctx, "nil"))
	h.machine.PreviousQuestion(ctx)

	s := h.machine.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Empty(t, s.Draft.SelectedOptions)
	assert.Empty(t, s.Draft.TextAnswer)

	h.machine.NextQuestion(ctx)
	assert.Empty(t, h.machine.State().Draft.TextAnswer)
}

func TestMachine_ClampedMoveKeepsDraft(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.NoError(t, h.machine.SelectOption(ctx, 1))
	h.machine.PreviousQuestion(ctx)

	assert.Equal(t, []int{1}, h.machine.State().Draft.SelectedOptions)
}

func TestMachine_SelectOption(t *testing.T) {
	tests := []struct {
		name     string
		qType    models.QuestionType
		picks    []int
		want     []int
		wantErr  error
		errorMsg string
	}{
		{name: "multiple choice toggles", qType: models.MultipleChoice, picks: []int{0, 2, 0}, want: []int{2}},
		{name: "single choice replaces", qType: models.SingleChoice, picks: []int{0, 3}, want: []int{3}},
		{name: "out of range", qType: models.MultipleChoice, picks: []int{4}, wantErr: ErrOptionOutOfRange, errorMsg: app.MsgOptionOutOfRange},
		{name: "negative index", qType: models.SingleChoice, picks: []int{-1}, wantErr: ErrOptionOutOfRange, errorMsg: app.MsgOptionOutOfRange},
		{name: "free-form question", qType: models.TextQuestion, picks: []int{0}, wantErr: ErrWrongQuestionType, errorMsg: app.MsgWrongAnswerType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := twoQuestionSession()
			ts.Questions[0].Type = tt.qType
			h := newHarness(t, ts)
			ctx := context.Background()
			require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

			var err error
			for _, p := range tt.picks {
				if err = h.machine.SelectOption(ctx, p); err != nil {
					break
				}
			}

			s := h.machine.State()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, app.IsKind(err, app.KindValidation))
				require.NotNil(t, s.ErrorMessage)
				assert.Equal(t, tt.errorMsg, *s.ErrorMessage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Draft.SelectedOptions)
		})
	}
}

func TestMachine_SetSelectedOptions(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{2, 0, 2}))
	assert.Equal(t, []int{0, 2}, h.machine.State().Draft.SelectedOptions)

	err := h.machine.SetSelectedOptions(ctx, []int{1, 7})
	require.ErrorIs(t, err, ErrOptionOutOfRange)
	assert.Equal(t, []int{0, 2}, h.machine.State().Draft.SelectedOptions, "failed input leaves the draft untouched")
}

func TestMachine_SetTextAnswer_LastWriteWins(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.ErrorIs(t, h.machine.SetTextAnswer(ctx, "too early"), ErrWrongQuestionType)

	h.machine.NextQuestion(ctx)
	require.NoError(t, h.machine.SetTextAnswer(ctx, "null"))
	require.NoError(t, h.machine.SetTextAnswer(ctx, "nil"))
	assert.Equal(t, "nil", h.machine.State().Draft.TextAnswer)

	require.ErrorIs(t, h.machine.SetCodeAnswer(ctx, "return nil"), ErrWrongQuestionType)
}

func TestMachine_SubmitAnswer_MultipleChoiceClassification(t *testing.T) {
	tests := []struct {
		name        string
		selected    []int
		wantCorrect bool
	}{
		{name: "same set", selected: []int{2, 0}, wantCorrect: true},
		{name: "subset", selected: []int{0}, wantCorrect: false},
		{name: "superset", selected: []int{0, 1, 2}, wantCorrect: false},
		{name: "disjoint", selected: []int{1, 3}, wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, twoQuestionSession())
			ctx := context.Background()
			require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))
			require.NoError(t, h.machine.SetSelectedOptions(ctx, tt.selected))

			require.NoError(t, h.machine.SubmitAnswer(ctx))

			s := h.machine.State()
			assert.Equal(t, StatusInProgress, s.Status)
			assert.True(t, s.IsAnswered(1))
			assert.Equal(t, tt.wantCorrect, s.Correctness[1])
			assert.Equal(t, "defer and select are keywords", s.Revealed[1].Explanation)
		})
	}
}

func TestMachine_SubmitAnswer_EmptyDraftNeverReachesRepository(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	err := h.machine.SubmitAnswer(ctx)
	require.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, app.MsgSelectAnOption, *h.machine.State().ErrorMessage)

	h.machine.NextQuestion(ctx)
	require.NoError(t, h.machine.SetTextAnswer(ctx, "   "))
	err = h.machine.SubmitAnswer(ctx)
	require.ErrorIs(t, err, ErrEmptyAnswer)
	assert.Equal(t, app.MsgEnterAnAnswer, *h.machine.State().ErrorMessage)

	assert.Zero(t, h.repo.saveCalls)
}

func TestMachine_SubmitAnswer_FailureKeepsAnswers(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))
	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{0, 2}))
	require.NoError(t, h.machine.SubmitAnswer(ctx))

	h.repo.saveErr = adapter.ErrUnavailable
	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{1}))
	err := h.machine.SubmitAnswer(ctx)
	require.Error(t, err)

	s := h.machine.State()
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, []int{0, 2}, s.Session.Answers[1].SelectedOptions)
	assert.True(t, s.Correctness[1])
	require.NotNil(t, s.ErrorMessage)
	assert.Equal(t, app.MsgNoConnection, *s.ErrorMessage)

	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{1}))
	assert.Nil(t, h.machine.State().ErrorMessage, "new input clears the error")
}

func TestMachine_SubmitAnswer_ResubmitOverwrites(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{1}))
	require.NoError(t, h.machine.SubmitAnswer(ctx))
	assert.False(t, h.machine.State().Correctness[1])

	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{0, 2}))
	require.NoError(t, h.machine.SubmitAnswer(ctx))

	s := h.machine.State()
	assert.Equal(t, 1, s.AnsweredCount())
	assert.True(t, s.Correctness[1])
}

func TestMachine_FreeFormCorrectnessIsReconciled(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	h.machine.NextQuestion(ctx)
	require.NoError(t, h.machine.SetTextAnswer(ctx, "nil"))
	require.NoError(t, h.machine.SubmitAnswer(ctx))

	_, graded := h.machine.State().Correctness[2]
	assert.False(t, graded, "text answers wait for the server")

	require.NoError(t, h.machine.ReconcileCorrectness(ctx, 2, true))
	assert.True(t, h.machine.State().Correctness[2])

	require.ErrorIs(t, h.machine.ReconcileCorrectness(ctx, 99, true), ErrUnknownQuestion)
}

func TestMachine_CompleteRejectedUntilAllAnswered(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{0, 2}))
	require.NoError(t, h.machine.SubmitAnswer(ctx))

	err := h.machine.CompleteTestSession(ctx)
	require.ErrorIs(t, err, ErrUnansweredQuestions)
	assert.True(t, app.IsKind(err, app.KindValidation))

	s := h.machine.State()
	assert.Nil(t, s.Result)
	assert.Equal(t, StatusInProgress, s.Status)
	require.NotNil(t, s.ErrorMessage)
	assert.Equal(t, app.MsgAnswerAllQuestions, *s.ErrorMessage)
	assert.Zero(t, h.repo.completeCalls)
}

func TestMachine_CompleteFailureKeepsAnswers(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	answerBoth(t, h)

	h.repo.completeErr = adapter.ErrInternalServerError
	require.Error(t, h.machine.CompleteTestSession(ctx))

	s := h.machine.State()
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Nil(t, s.Result)
	assert.Equal(t, 2, s.AnsweredCount())
	assert.Equal(t, app.MsgSomethingWentWrong, *s.ErrorMessage)

	h.repo.completeErr = nil
	require.NoError(t, h.machine.CompleteTestSession(ctx))
	assert.Equal(t, StatusCompleted, h.machine.State().Status)
}

func TestMachine_EndToEndPerfectScore(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	answerBoth(t, h)

	require.NoError(t, h.machine.CompleteTestSession(ctx))

	s := h.machine.State()
	assert.Equal(t, StatusCompleted, s.Status)
	require.NotNil(t, s.Result)
	assert.Equal(t, 25, s.Result.Score)
	assert.Equal(t, 25, s.Result.TotalPoints)
	assert.Equal(t, "Perfect score!", s.Result.Feedback)

	assert.Contains(t, h.repo.removed, "sess-1")
	require.Len(t, h.events.events, 1)
	completed, ok := h.events.events[0].(models.EventTestSessionCompleted)
	require.True(t, ok)
	assert.Equal(t, "sess-1", completed.SessionID)
	assert.Equal(t, 25, completed.Result.Score)
}

func TestMachine_ElapsedFreezesOnPauseAndCompletion(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	h.clock.Advance(10 * time.Second)
	h.machine.Pause(ctx)
	h.clock.Advance(time.Hour)
	assert.Equal(t, 10*time.Second, h.machine.Elapsed())

	h.pool.Wait()
	saved, err := h.repo.GetUncompletedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, int64(10_000), saved[0].ElapsedTimeMillis)

	h.machine.Resume()
	h.clock.Advance(5 * time.Second)
	assert.Equal(t, 15*time.Second, h.machine.Elapsed())
}

func TestMachine_NavigationSavesProgress(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	h.machine.NextQuestion(ctx)
	h.pool.Wait()

	saved, err := h.repo.GetUncompletedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 1, saved[0].QuestionIndex)
	assert.Equal(t, int64(7), saved[0].TestID)
}

func TestMachine_Abandon(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()
	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))
	h.machine.NextQuestion(ctx)
	h.pool.Wait()

	require.NoError(t, h.machine.Abandon(ctx))

	s := h.machine.State()
	assert.Equal(t, StatusIdle, s.Status)
	assert.Nil(t, s.Session)
	assert.Contains(t, h.repo.removed, "sess-1")

	saved, err := h.repo.GetUncompletedSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestMachine_OperationsWithoutSession(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()

	assert.ErrorIs(t, h.machine.SelectOption(ctx, 0), ErrNoActiveSession)
	assert.ErrorIs(t, h.machine.SubmitAnswer(ctx), ErrNoActiveSession)
	assert.ErrorIs(t, h.machine.CompleteTestSession(ctx), ErrNoActiveSession)
	assert.NotPanics(t, func() { h.machine.NextQuestion(ctx) })
	assert.Zero(t, h.machine.Elapsed())
	assert.Zero(t, h.repo.saveCalls)
}

func TestMachine_ClearError(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	h.repo.loadErr = errors.New("boom")
	require.Error(t, h.machine.LoadTestSession(context.Background(), "sess-1"))
	require.NotNil(t, h.machine.State().ErrorMessage)

	h.machine.ClearError()
	assert.Nil(t, h.machine.State().ErrorMessage)
}

func TestMachine_StartTest(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()

	require.NoError(t, h.machine.StartTest(ctx, 42))
	h.pool.Wait()

	s := h.machine.State()
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, int64(42), s.Session.TestID)

	saved, err := h.repo.GetUncompletedSessions(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 0, saved[0].QuestionIndex)
}

func TestMachine_Observe(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()

	ch, cancel := h.machine.Observe()
	defer cancel()

	first := <-ch
	assert.Equal(t, StatusIdle, first.Status)

	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))

	deadline := time.After(time.Second)
	for {
		select {
		case s := <-ch:
			if s.Status == StatusInProgress {
				return
			}
		case <-deadline:
			t.Fatal("InProgress state was not observed")
		}
	}
}

func answerBoth(t *testing.T, h *harness) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))
	require.NoError(t, h.machine.SetSelectedOptions(ctx, []int{0, 2}))
	require.NoError(t, h.machine.SubmitAnswer(ctx))
	h.machine.NextQuestion(ctx)
	require.NoError(t, h.machine.SetTextAnswer(ctx, "nil"))
	require.NoError(t, h.machine.SubmitAnswer(ctx))
}

func TestMachine_SnapshotDoesNotAliasSession(t *testing.T) {
	h := newHarness(t, twoQuestionSession())
	ctx := context.Background()

	require.NoError(t, h.machine.LoadTestSession(ctx, "sess-1"))
	require.NoError(t, h.machine.SelectOption(ctx, 0))
	require.NoError(t, h.machine.SubmitAnswer(ctx))

	snapshot := h.machine.State()
	snapshot.Session.Questions[0].Text = "changed"
	snapshot.Session.Questions[0].Options[0] = "changed"
	snapshot.Session.Questions[0].CorrectOptions[0] = 3
	snapshot.Session.Answers[1].SelectedOptions[0] = 3

	s := h.machine.State()
	q := s.Session.Questions[0]
	assert.Equal(t, "Which are Go keywords?", q.Text)
	assert.Equal(t, "defer", q.Options[0])
	assert.Equal(t, []int{0, 2}, q.CorrectOptions)
	assert.Equal(t, []int{0}, s.Session.Answers[1].SelectedOptions)
}
