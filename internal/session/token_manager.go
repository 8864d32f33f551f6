package session

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/internal/store"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
)

// SecureTokenManager writes to the encrypted store and falls back to the
// plain one when the secure store fails. Reads consult the secure store
// first.
type SecureTokenManager struct {
	secure store.KeyValueStore
	plain  store.KeyValueStore
	token  *state.Cell[*string]
	logger *logger.Logger
}

// NewSecureTokenManager loads the persisted token into the observable cell.
func NewSecureTokenManager(ctx context.Context, secure, plain store.KeyValueStore, log *logger.Logger) *SecureTokenManager {
	m := &SecureTokenManager{
		secure: secure,
		plain:  plain,
		logger: log,
	}

	var current *string
	if token, ok := m.getString(ctx, keyAccessToken); ok {
		current = &token
	}
	m.token = state.NewCell(current)

	return m
}

func (m *SecureTokenManager) StoreToken(ctx context.Context, token string) {
	m.putString(ctx, keyAccessToken, token)
	m.token.Set(&token)
}

func (m *SecureTokenManager) GetToken(ctx context.Context) (string, bool) {
	return m.getString(ctx, keyAccessToken)
}

func (m *SecureTokenManager) ObserveToken() (<-chan *string, func()) {
	return m.token.Subscribe()
}

func (m *SecureTokenManager) StoreRefreshToken(ctx context.Context, token string) {
	m.putString(ctx, keyRefreshToken, token)
}

func (m *SecureTokenManager) GetRefreshToken(ctx context.Context) (string, bool) {
	return m.getString(ctx, keyRefreshToken)
}

func (m *SecureTokenManager) StoreUserID(ctx context.Context, userID int64) {
	log := m.log(ctx)

	err := store.PutInt64(ctx, m.secure, keyUserID, userID)
	if err == nil {
		m.dropPlain(ctx, keyUserID)
		return
	}

	log.Debug().Err(err).Str("func", "SecureTokenManager.StoreUserID").Msg("secure store failed, using fallback")
	if err := store.PutInt64(ctx, m.plain, keyUserID, userID); err != nil {
		log.Debug().Err(err).Str("func", "SecureTokenManager.StoreUserID").Msg("fallback store failed")
		return
	}
	m.dropSecure(ctx, keyUserID)
}

func (m *SecureTokenManager) GetUserID(ctx context.Context) (int64, bool) {
	log := m.log(ctx)

	id, err := store.GetInt64(ctx, m.secure, keyUserID)
	if err == nil {
		return id, true
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		log.Debug().Err(err).Str("func", "SecureTokenManager.GetUserID").Msg("secure store failed, reading fallback")
	}

	id, err = store.GetInt64(ctx, m.plain, keyUserID)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Debug().Err(err).Str("func", "SecureTokenManager.GetUserID").Msg("fallback store failed")
		}
		return 0, false
	}
	return id, true
}

// Clear removes every credential from both stores. Both clears are
// attempted even if the first fails.
func (m *SecureTokenManager) Clear(ctx context.Context) {
	log := m.log(ctx)

	if err := m.secure.Clear(ctx); err != nil {
		log.Debug().Err(err).Str("func", "SecureTokenManager.Clear").Msg("failed to clear secure store")
	}
	if err := m.plain.Clear(ctx); err != nil {
		log.Debug().Err(err).Str("func", "SecureTokenManager.Clear").Msg("failed to clear fallback store")
	}
	m.token.Set(nil)
}

func (m *SecureTokenManager) putString(ctx context.Context, key, value string) {
	log := m.log(ctx)

	err := m.secure.Put(ctx, key, value)
	if err == nil {
		m.dropPlain(ctx, key)
		return
	}

	log.Debug().Err(err).Str("func", "SecureTokenManager.putString").Str("key", key).Msg("secure store failed, using fallback")
	if err := m.plain.Put(ctx, key, value); err != nil {
		log.Debug().Err(err).Str("func", "SecureTokenManager.putString").Str("key", key).Msg("fallback store failed")
		return
	}
	m.dropSecure(ctx, key)
}

func (m *SecureTokenManager) getString(ctx context.Context, key string) (string, bool) {
	log := m.log(ctx)

	value, err := m.secure.Get(ctx, key)
	if err == nil {
		return value, true
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		log.Debug().Err(err).Str("func", "SecureTokenManager.getString").Str("key", key).Msg("secure store failed, reading fallback")
	}

	value, err = m.plain.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Debug().Err(err).Str("func", "SecureTokenManager.getString").Str("key", key).Msg("fallback store failed")
		}
		return "", false
	}
	return value, true
}

// dropPlain removes a stale fallback copy after a successful secure write.
func (m *SecureTokenManager) dropPlain(ctx context.Context, key string) {
	if err := m.plain.Remove(ctx, key); err != nil {
		m.log(ctx).Debug().Err(err).Str("func", "SecureTokenManager.dropPlain").Str("key", key).Msg("failed to drop fallback copy")
	}
}

// dropSecure removes an older secure copy that would shadow the value just
// written to the fallback store.
func (m *SecureTokenManager) dropSecure(ctx context.Context, key string) {
	if err := m.secure.Remove(ctx, key); err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		m.log(ctx).Debug().Err(err).Str("func", "SecureTokenManager.dropSecure").Str("key", key).Msg("failed to drop secure copy")
	}
}

func (m *SecureTokenManager) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, m.logger)
}
