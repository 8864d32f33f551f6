package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/migrations"
)

const (
	retryAttempts = 3
	retryBackoff  = 20 * time.Millisecond
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execWithRetry runs a single write statement, retrying while the error is
// classified as [Retryable] (the database file is busy or locked by another
// process).
func (db *DB) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return res, err
		}

		db.logger.Debug().Err(err).
			Str("func", "DB.execWithRetry").
			Int("attempt", attempt).
			Msg("retryable sqlite error")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return res, err
}
