package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-test-prep/internal/logger"
)

// Namespaces of the kv_entries table.
const (
	NamespaceSecure      = "secure"
	NamespacePlain       = "secure_fallback"
	NamespacePreferences = "preferences"
)

type sqliteKeyValueStore struct {
	*DB
	namespace string
}

// NewSQLiteKeyValueStore returns a [KeyValueStore] over the kv_entries rows
// of namespace.
func NewSQLiteKeyValueStore(db *DB, namespace string) KeyValueStore {
	return &sqliteKeyValueStore{DB: db, namespace: namespace}
}

func (s *sqliteKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	var value string
	err := s.QueryRowContext(ctx, getKeyValue, s.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Get").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to read key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStore) Put(ctx context.Context, key, value string) error {
	log := logger.FromContextOr(ctx, s.logger)

	if _, err := s.execWithRetry(ctx, putKeyValue, s.namespace, key, value); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Put").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to upsert key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Remove(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	if _, err := s.execWithRetry(ctx, removeKeyValue, s.namespace, key); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Remove").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to remove key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStore) Contains(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := s.QueryRowContext(ctx, containsKeyValue, s.namespace, key).Scan(&exists); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "sqliteKeyValueStore.Contains").
			Str("namespace", s.namespace).
			Str("key", key).
			Msg("failed to check key")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (s *sqliteKeyValueStore) Clear(ctx context.Context) error {
	log := logger.FromContextOr(ctx, s.logger)

	if _, err := s.execWithRetry(ctx, clearNamespace, s.namespace); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStore.Clear").
			Str("namespace", s.namespace).
			Msg("failed to clear namespace")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
