package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/models"
)

type clientTestsService struct {
	adapter  adapter.TestsAdapter
	progress store.ProgressRepository
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientTestsService(testsAdapter adapter.TestsAdapter, progress store.ProgressRepository, log *logger.Logger) ClientTestsService {
	return &clientTestsService{
		adapter:  testsAdapter,
		progress: progress,
		now:      time.Now,
		logger:   log,
	}
}

func (s *clientTestsService) GetTests(ctx context.Context) ([]models.Test, error) {
	tests, err := s.adapter.ListTests(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return tests, nil
}

func (s *clientTestsService) StartTestSession(ctx context.Context, testID int64) (models.TestSession, error) {
	testSession, err := s.adapter.StartTestSession(ctx, testID)
	if err != nil {
		return models.TestSession{}, mapAdapterError(err)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("session_id", testSession.SessionID).
		Int64("test_id", testID).
		Msg("test session started")
	return testSession, nil
}

func (s *clientTestsService) GetTestSession(ctx context.Context, sessionID string) (models.TestSession, error) {
	if sessionID == "" {
		return models.TestSession{}, app.New(app.KindValidation, app.WithMessage(app.MsgNoActiveSession), app.WithCause(ErrEmptySessionID))
	}

	testSession, err := s.adapter.GetTestSession(ctx, sessionID)
	if err != nil {
		return models.TestSession{}, mapAdapterError(err)
	}
	return testSession, nil
}

func (s *clientTestsService) SaveAnswer(ctx context.Context, sessionID string, answer models.Answer) (models.AnswerFeedback, error) {
	feedback, err := s.adapter.SaveAnswer(ctx, sessionID, answer)
	if err != nil {
		return models.AnswerFeedback{}, mapAdapterError(err)
	}
	return feedback, nil
}

func (s *clientTestsService) CompleteTestSession(ctx context.Context, sessionID string) (models.TestResult, error) {
	result, err := s.adapter.CompleteTestSession(ctx, sessionID)
	if err != nil {
		return models.TestResult{}, mapAdapterError(err)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Str("session_id", sessionID).
		Int("score", result.Score).
		Int("total_points", result.TotalPoints).
		Msg("test session completed")
	return result, nil
}

func (s *clientTestsService) SaveSessionProgress(ctx context.Context, progress models.UncompletedSession) error {
	if progress.SessionID == "" {
		return app.New(app.KindValidation, app.WithMessage(app.MsgNoActiveSession), app.WithCause(ErrEmptySessionID))
	}

	progress.SavedAt = s.now().UTC()
	if err := s.progress.SaveProgress(ctx, progress); err != nil {
		return mapStorageError(err)
	}
	return nil
}

func (s *clientTestsService) GetUncompletedSessions(ctx context.Context) ([]models.UncompletedSession, error) {
	sessions, err := s.progress.GetUncompleted(ctx)
	if err != nil {
		return nil, mapStorageError(err)
	}
	return sessions, nil
}

func (s *clientTestsService) RemoveUncompletedSession(ctx context.Context, sessionID string) error {
	if err := s.progress.RemoveProgress(ctx, sessionID); err != nil {
		return mapStorageError(err)
	}
	return nil
}
