package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/crypto"
	"github.com/MKhiriev/go-test-prep/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed to the session layer and the services.
type ClientStorages struct {
	// Secure is the encrypted namespace holding tokens and the user id. When
	// the keyring is locked every call fails with [ErrSecureStoreUnavailable].
	Secure KeyValueStore
	// Plain is the unencrypted fallback for Secure.
	Plain KeyValueStore
	// Preferences holds username, theme and the user preferences.
	Preferences KeyValueStore

	Articles ArticlesRepository
	Progress ProgressRepository
	Avatar   AvatarStorage

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens the sqlite file from cfg.Storage.DB.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Unlocks (or creates) the keyring in cfg.Storage.DataDir with the device
//     secret. A failure here is logged and leaves the secure namespace
//     unavailable rather than failing start-up.
//  4. Wires the namespaced stores and repositories.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	var secure KeyValueStore
	keyring, err := crypto.OpenKeyring(cfg.Storage.DataDir, cfg.App.DeviceSecret, crypto.NewKeyChain())
	if err != nil {
		log.Warn().Err(err).Str("func", "NewClientStorages").Msg("secure store unavailable, tokens fall back to plain storage")
		secure = NewUnavailableKeyValueStore(err)
	} else {
		secure = NewEncryptedKeyValueStore(NewSQLiteKeyValueStore(db, NamespaceSecure), keyring)
	}

	return &ClientStorages{
		Secure:      secure,
		Plain:       NewSQLiteKeyValueStore(db, NamespacePlain),
		Preferences: NewSQLiteKeyValueStore(db, NamespacePreferences),
		Articles:    NewArticlesRepository(db, log),
		Progress:    NewProgressRepository(db, log),
		Avatar:      NewAvatarFileStorage(cfg.Storage.DataDir, log),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
