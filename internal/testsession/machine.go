package testsession

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/models"
)

// Machine is the state holder of one test session at a time.
type Machine struct {
	repo   Repository
	errs   ErrorMapper
	events Publisher
	tasks  Submitter
	now    func() time.Time
	logger *logger.Logger

	mu          sync.Mutex
	gen         uint64
	status      Status
	session     *models.TestSession
	index       int
	draft       Draft
	correctness map[int64]bool
	revealed    map[int64]Reveal
	result      *models.TestResult
	errMsg      *string

	elapsed   time.Duration
	resumedAt time.Time
	running   bool

	saveMu   sync.Mutex
	saveSeq  uint64
	savedSeq uint64

	state *state.Cell[UIState]
}

type Option func(*Machine)

// WithClock replaces time.Now for the elapsed-time counter and saves.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}

func NewMachine(repo Repository, errs ErrorMapper, events Publisher, tasks Submitter, log *logger.Logger, opts ...Option) *Machine {
	m := &Machine{
		repo:   repo,
		errs:   errs,
		events: events,
		tasks:  tasks,
		now:    time.Now,
		logger: log,
		state:  state.NewCell(UIState{Status: StatusIdle}),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.reset()
	return m
}

// LoadTestSession fetches sessionID and resumes it at the saved question
// and elapsed time, if any. On failure the machine returns to Idle.
func (m *Machine) LoadTestSession(ctx context.Context, sessionID string) error {
	gen, err := m.beginLoad()
	if err != nil {
		return err
	}

	ts, err := m.repo.GetTestSession(ctx, sessionID)
	if err != nil {
		return m.failLoad(ctx, gen, err)
	}

	m.finishLoad(ctx, gen, ts)
	return nil
}

// StartTest creates a new session for testID on the server and loads it.
func (m *Machine) StartTest(ctx context.Context, testID int64) error {
	gen, err := m.beginLoad()
	if err != nil {
		return err
	}

	ts, err := m.repo.StartTestSession(ctx, testID)
	if err != nil {
		return m.failLoad(ctx, gen, err)
	}

	m.finishLoad(ctx, gen, ts)
	m.SaveProgress(ctx)
	return nil
}

func (m *Machine) beginLoad() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusLoading || m.status == StatusSubmitting {
		return 0, ErrBusy
	}

	m.gen++
	m.reset()
	m.status = StatusLoading
	m.publishLocked()
	return m.gen, nil
}

func (m *Machine) failLoad(ctx context.Context, gen uint64, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return nil
	}
	m.status = StatusIdle
	return m.failLocked(ctx, err)
}

func (m *Machine) finishLoad(ctx context.Context, gen uint64, ts models.TestSession) {
	log := logger.FromContextOr(ctx, m.logger)

	var progress *models.UncompletedSession
	uncompleted, err := m.repo.GetUncompletedSessions(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to read saved progress")
	}
	for i := range uncompleted {
		if uncompleted[i].SessionID == ts.SessionID {
			progress = &uncompleted[i]
			break
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return
	}

	if ts.Answers == nil {
		ts.Answers = make(map[int64]models.Answer)
	} else {
		ts.Answers = maps.Clone(ts.Answers)
	}
	ts.Questions = slices.Clone(ts.Questions)

	m.session = &ts
	m.index = 0
	m.elapsed = 0
	if progress != nil {
		m.index = clamp(progress.QuestionIndex, len(ts.Questions))
		m.elapsed = time.Duration(progress.ElapsedTimeMillis) * time.Millisecond
	}
	m.resumedAt = m.now()
	m.running = true

	for _, q := range ts.Questions {
		a, ok := ts.Answers[q.ID]
		if !ok {
			continue
		}
		if correct, graded := classify(q, a); graded {
			m.correctness[q.ID] = correct
		}
	}

	m.status = StatusInProgress
	m.publishLocked()

	log.Info().
		Str("session_id", ts.SessionID).
		Int("question_index", m.index).
		Int("questions", len(ts.Questions)).
		Msg("test session loaded")
}

// SelectOption selects index on a single-choice question and toggles it on
// a multiple-choice one.
func (m *Machine) SelectOption(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.choiceQuestionLocked(ctx)
	if err != nil {
		return err
	}
	if !q.HasOption(index) {
		return m.failLocked(ctx, validationError(app.MsgOptionOutOfRange, ErrOptionOutOfRange))
	}

	if q.Type == models.SingleChoice {
		m.draft.SelectedOptions = []int{index}
	} else {
		m.draft.SelectedOptions = toggle(m.draft.SelectedOptions, index)
	}
	m.errMsg = nil
	m.publishLocked()
	return nil
}

// SetSelectedOptions replaces the whole selection of the current question.
func (m *Machine) SetSelectedOptions(ctx context.Context, indices []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.choiceQuestionLocked(ctx)
	if err != nil {
		return err
	}

	selected := slices.Clone(indices)
	slices.Sort(selected)
	selected = slices.Compact(selected)
	for _, idx := range selected {
		if !q.HasOption(idx) {
			return m.failLocked(ctx, validationError(app.MsgOptionOutOfRange, ErrOptionOutOfRange))
		}
	}
	if q.Type == models.SingleChoice && len(selected) > 1 {
		return m.failLocked(ctx, validationError(app.MsgWrongAnswerType, ErrWrongQuestionType))
	}

	m.draft.SelectedOptions = selected
	m.errMsg = nil
	m.publishLocked()
	return nil
}

// SetTextAnswer replaces the draft of a TEXT question.
func (m *Machine) SetTextAnswer(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.questionOfTypeLocked(ctx, models.TextQuestion); err != nil {
		return err
	}
	m.draft.TextAnswer = text
	m.errMsg = nil
	m.publishLocked()
	return nil
}

// SetCodeAnswer replaces the draft of a CODE question.
func (m *Machine) SetCodeAnswer(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.questionOfTypeLocked(ctx, models.CodeQuestion); err != nil {
		return err
	}
	m.draft.CodeAnswer = code
	m.errMsg = nil
	m.publishLocked()
	return nil
}

// SubmitAnswer sends the draft of the current question. Resubmitting
// replaces the recorded answer for the question.
func (m *Machine) SubmitAnswer(ctx context.Context) error {
	m.mu.Lock()
	q, err := m.currentQuestionLocked(ctx)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	answer, err := buildAnswer(q, m.draft)
	if err != nil {
		err = m.failLocked(ctx, err)
		m.mu.Unlock()
		return err
	}

	gen := m.gen
	sessionID := m.session.SessionID
	m.status = StatusSubmitting
	m.errMsg = nil
	m.publishLocked()
	m.mu.Unlock()

	feedback, err := m.repo.SaveAnswer(ctx, sessionID, answer)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return nil
	}
	m.status = StatusInProgress
	if err != nil {
		return m.failLocked(ctx, err)
	}

	m.session.Answers[q.ID] = answer
	if correct, graded := classify(q, answer); graded {
		m.correctness[q.ID] = correct
	} else if feedback.IsCorrect != nil {
		m.correctness[q.ID] = *feedback.IsCorrect
	} else {
		delete(m.correctness, q.ID)
	}
	m.revealed[q.ID] = Reveal{Explanation: q.Explanation, Feedback: feedback.Feedback}
	m.publishLocked()
	return nil
}

// ReconcileCorrectness records the server verdict for a free-form answer.
func (m *Machine) ReconcileCorrectness(ctx context.Context, questionID int64, correct bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return validationError(app.MsgNoActiveSession, ErrNoActiveSession)
	}
	if _, ok := m.session.Answers[questionID]; !ok {
		return validationError(app.MsgSomethingWentWrong, ErrUnknownQuestion)
	}

	m.correctness[questionID] = correct
	m.publishLocked()
	return nil
}

// NextQuestion moves forward, staying on the last question at the end.
func (m *Machine) NextQuestion(ctx context.Context) {
	m.move(ctx, 1)
}

// PreviousQuestion moves back, staying on the first question at the start.
func (m *Machine) PreviousQuestion(ctx context.Context) {
	m.move(ctx, -1)
}

func (m *Machine) move(ctx context.Context, delta int) {
	m.mu.Lock()
	if m.session == nil || m.status != StatusInProgress {
		m.mu.Unlock()
		return
	}

	next := clamp(m.index+delta, len(m.session.Questions))
	if next != m.index {
		m.index = next
		m.draft = Draft{}
	}
	m.publishLocked()
	m.mu.Unlock()

	m.SaveProgress(ctx)
}

// CompleteTestSession finalizes the session. Every question must have a
// recorded answer.
func (m *Machine) CompleteTestSession(ctx context.Context) error {
	m.mu.Lock()
	if err := m.requireInProgressLocked(ctx); err != nil {
		m.mu.Unlock()
		return err
	}
	if missing := m.session.Unanswered(); len(missing) > 0 {
		err := m.failLocked(ctx, validationError(app.MsgAnswerAllQuestions, ErrUnansweredQuestions))
		m.mu.Unlock()
		return err
	}

	gen := m.gen
	sessionID := m.session.SessionID
	m.status = StatusSubmitting
	m.errMsg = nil
	m.publishLocked()
	m.mu.Unlock()

	result, err := m.repo.CompleteTestSession(ctx, sessionID)

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return nil
	}
	if err != nil {
		m.status = StatusInProgress
		err = m.failLocked(ctx, err)
		m.mu.Unlock()
		return err
	}

	m.freezeLocked()
	m.result = &result
	m.status = StatusCompleted
	m.publishLocked()
	m.mu.Unlock()

	log := logger.FromContextOr(ctx, m.logger)
	if err := m.repo.RemoveUncompletedSession(ctx, sessionID); err != nil {
		log.Debug().Err(err).Str("session_id", sessionID).Msg("failed to remove saved progress")
	}
	m.events.Publish(ctx, models.EventTestSessionCompleted{SessionID: sessionID, Result: result})

	log.Info().
		Str("session_id", sessionID).
		Int("score", result.Score).
		Int("total_points", result.TotalPoints).
		Msg("test session completed")
	return nil
}

// SaveProgress schedules a save of the current position and elapsed time.
// Saves are fire-and-forget; the most recent successful one is kept.
func (m *Machine) SaveProgress(ctx context.Context) {
	m.mu.Lock()
	if m.session == nil || m.status == StatusCompleted || m.status == StatusLoading {
		m.mu.Unlock()
		return
	}
	gen := m.gen
	progress := models.UncompletedSession{
		SessionID:         m.session.SessionID,
		TestID:            m.session.TestID,
		QuestionIndex:     m.index,
		ElapsedTimeMillis: m.elapsedLocked().Milliseconds(),
	}
	m.saveSeq++
	seq := m.saveSeq
	m.mu.Unlock()

	err := m.tasks.Submit(ctx, "save session progress", func(ctx context.Context) error {
		return m.saveProgress(ctx, gen, seq, progress)
	})
	if err != nil {
		logger.FromContextOr(ctx, m.logger).Debug().Err(err).Msg("progress save not scheduled")
	}
}

func (m *Machine) saveProgress(ctx context.Context, gen, seq uint64, progress models.UncompletedSession) error {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	stale := gen != m.gen || m.status == StatusCompleted
	m.mu.Unlock()
	if stale || seq <= m.savedSeq {
		return nil
	}

	if err := m.repo.SaveSessionProgress(ctx, progress); err != nil {
		return err
	}
	m.savedSeq = seq
	return nil
}

// Pause stops the elapsed-time counter and saves progress.
func (m *Machine) Pause(ctx context.Context) {
	m.mu.Lock()
	m.freezeLocked()
	m.mu.Unlock()

	m.SaveProgress(ctx)
}

// Resume restarts the elapsed-time counter after Pause.
func (m *Machine) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.running || m.status == StatusCompleted {
		return
	}
	m.resumedAt = m.now()
	m.running = true
}

// Abandon drops the session and its saved progress and returns to Idle.
func (m *Machine) Abandon(ctx context.Context) error {
	m.mu.Lock()
	if m.session == nil {
		m.mu.Unlock()
		return nil
	}
	sessionID := m.session.SessionID
	m.gen++
	m.reset()
	m.publishLocked()
	m.mu.Unlock()

	if err := m.repo.RemoveUncompletedSession(ctx, sessionID); err != nil {
		logger.FromContextOr(ctx, m.logger).Debug().Err(err).Str("session_id", sessionID).Msg("failed to remove saved progress")
		return err
	}
	return nil
}

// ClearError dismisses the error message.
func (m *Machine) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.errMsg == nil {
		return
	}
	m.errMsg = nil
	m.publishLocked()
}

// Elapsed returns the time spent on the session including restored time.
func (m *Machine) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsedLocked()
}

func (m *Machine) State() UIState {
	return m.state.Get()
}

// Observe yields the current state and every change.
func (m *Machine) Observe() (<-chan UIState, func()) {
	return m.state.Subscribe()
}

// Close releases the observers.
func (m *Machine) Close() {
	m.state.Close()
}

func (m *Machine) elapsedLocked() time.Duration {
	if m.session == nil {
		return 0
	}
	if !m.running {
		return m.elapsed
	}
	return m.elapsed + m.now().Sub(m.resumedAt)
}

func (m *Machine) freezeLocked() {
	if !m.running {
		return
	}
	m.elapsed = m.elapsedLocked()
	m.running = false
}

func (m *Machine) reset() {
	m.status = StatusIdle
	m.session = nil
	m.index = 0
	m.draft = Draft{}
	m.correctness = make(map[int64]bool)
	m.revealed = make(map[int64]Reveal)
	m.result = nil
	m.errMsg = nil
	m.elapsed = 0
	m.running = false
}

func (m *Machine) requireInProgressLocked(ctx context.Context) error {
	if m.session == nil || m.status == StatusIdle || m.status == StatusCompleted {
		return m.failLocked(ctx, validationError(app.MsgNoActiveSession, ErrNoActiveSession))
	}
	if m.status != StatusInProgress {
		return ErrBusy
	}
	return nil
}

func (m *Machine) currentQuestionLocked(ctx context.Context) (models.Question, error) {
	if err := m.requireInProgressLocked(ctx); err != nil {
		return models.Question{}, err
	}
	if len(m.session.Questions) == 0 {
		return models.Question{}, m.failLocked(ctx, validationError(app.MsgNoActiveSession, ErrNoActiveSession))
	}
	return m.session.Questions[m.index], nil
}

func (m *Machine) choiceQuestionLocked(ctx context.Context) (models.Question, error) {
	q, err := m.currentQuestionLocked(ctx)
	if err != nil {
		return models.Question{}, err
	}
	if !q.Type.IsChoice() {
		return models.Question{}, m.failLocked(ctx, validationError(app.MsgWrongAnswerType, ErrWrongQuestionType))
	}
	return q, nil
}

func (m *Machine) questionOfTypeLocked(ctx context.Context, t models.QuestionType) (models.Question, error) {
	q, err := m.currentQuestionLocked(ctx)
	if err != nil {
		return models.Question{}, err
	}
	if q.Type != t {
		return models.Question{}, m.failLocked(ctx, validationError(app.MsgWrongAnswerType, ErrWrongQuestionType))
	}
	return q, nil
}

// failLocked records the user-facing message for err and returns err.
func (m *Machine) failLocked(ctx context.Context, err error) error {
	msg := m.errs.Map(ctx, err)
	m.errMsg = &msg
	m.publishLocked()
	return err
}

func (m *Machine) publishLocked() {
	s := UIState{
		Status:       m.status,
		CurrentIndex: m.index,
		Draft: Draft{
			SelectedOptions: slices.Clone(m.draft.SelectedOptions),
			TextAnswer:      m.draft.TextAnswer,
			CodeAnswer:      m.draft.CodeAnswer,
		},
		Correctness: maps.Clone(m.correctness),
		Revealed:    maps.Clone(m.revealed),
	}
	if m.session != nil {
		s.Session = cloneSession(*m.session)
	}
	if m.result != nil {
		result := *m.result
		result.QuestionResults = slices.Clone(m.result.QuestionResults)
		s.Result = &result
	}
	if m.errMsg != nil {
		msg := *m.errMsg
		s.ErrorMessage = &msg
	}
	m.state.Set(s)
}

func cloneSession(ts models.TestSession) *models.TestSession {
	ts.Questions = slices.Clone(ts.Questions)
	for i := range ts.Questions {
		ts.Questions[i].Options = slices.Clone(ts.Questions[i].Options)
		ts.Questions[i].CorrectOptions = slices.Clone(ts.Questions[i].CorrectOptions)
	}

	answers := make(map[int64]models.Answer, len(ts.Answers))
	for id, a := range ts.Answers {
		a.SelectedOptions = slices.Clone(a.SelectedOptions)
		answers[id] = a
	}
	ts.Answers = answers
	return &ts
}
