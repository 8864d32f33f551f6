package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/models"
)

type progressRepository struct {
	*DB
	logger *logger.Logger
}

// NewProgressRepository returns the sqlite-backed [ProgressRepository].
func NewProgressRepository(db *DB, logger *logger.Logger) ProgressRepository {
	return &progressRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *progressRepository) SaveProgress(ctx context.Context, p models.UncompletedSession) error {
	log := logger.FromContextOr(ctx, r.logger)

	_, err := r.execWithRetry(ctx, saveProgress,
		p.SessionID,
		p.TestID,
		p.QuestionIndex,
		p.ElapsedTimeMillis,
		p.SavedAt.UTC(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.SaveProgress").
			Str("session_id", p.SessionID).
			Msg("failed to upsert session progress")
		return fmt.Errorf("failed to save progress (session_id=%s): %w", p.SessionID, err)
	}

	return nil
}

func (r *progressRepository) GetUncompleted(ctx context.Context) ([]models.UncompletedSession, error) {
	log := logger.FromContextOr(ctx, r.logger)

	rows, err := r.QueryContext(ctx, getUncompletedSessions)
	if err != nil {
		log.Err(err).
			Str("func", "progressRepository.GetUncompleted").
			Msg("failed to execute query for uncompleted sessions")
		return nil, fmt.Errorf("failed to query uncompleted sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.UncompletedSession
	for rows.Next() {
		var s models.UncompletedSession
		if err := rows.Scan(&s.SessionID, &s.TestID, &s.QuestionIndex, &s.ElapsedTimeMillis, &s.SavedAt); err != nil {
			log.Err(err).
				Str("func", "progressRepository.GetUncompleted").
				Msg("failed to scan uncompleted session row")
			return nil, fmt.Errorf("failed to scan uncompleted session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "progressRepository.GetUncompleted").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating uncompleted session rows: %w", err)
	}

	return sessions, nil
}

func (r *progressRepository) RemoveProgress(ctx context.Context, sessionID string) error {
	if _, err := r.execWithRetry(ctx, removeProgress, sessionID); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "progressRepository.RemoveProgress").
			Str("session_id", sessionID).
			Msg("failed to remove session progress")
		return fmt.Errorf("failed to remove progress (session_id=%s): %w", sessionID, err)
	}

	return nil
}

func (r *progressRepository) Clear(ctx context.Context) error {
	if _, err := r.execWithRetry(ctx, clearProgress); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).
			Str("func", "progressRepository.Clear").
			Msg("failed to clear session progress")
		return fmt.Errorf("failed to clear progress: %w", err)
	}

	return nil
}
