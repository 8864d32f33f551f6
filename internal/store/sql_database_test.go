package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecWithRetry_RetriesBusy(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewSQLiteKeyValueStore(db, NamespacePlain)

	mock.ExpectExec("DELETE FROM kv_entries").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("DELETE FROM kv_entries").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Remove(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_GivesUp(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewSQLiteKeyValueStore(db, NamespacePlain)

	for range retryAttempts {
		mock.ExpectExec("DELETE FROM kv_entries").
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})
	}

	err := kv.Remove(context.Background(), "k")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_NonRetryableFailsFast(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewSQLiteKeyValueStore(db, NamespacePlain)

	mock.ExpectExec("DELETE FROM kv_entries").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint})

	require.Error(t, kv.Remove(context.Background(), "k"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecWithRetry_ContextCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	kv := NewSQLiteKeyValueStore(db, NamespacePlain)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	mock.ExpectExec("DELETE FROM kv_entries").
		WillDelayFor(5 * time.Millisecond).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	err := kv.Remove(ctx, "k")
	require.Error(t, err)
}
