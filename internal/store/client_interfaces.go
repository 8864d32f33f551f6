package store

import (
	"context"

	"github.com/MKhiriev/go-test-prep/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KeyValueStore is a namespaced string key-value store. Every write is a
// single statement, so a cancelled context never leaves half a value behind.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Contains(ctx context.Context, key string) (bool, error)
	// Clear removes every key of the namespace.
	Clear(ctx context.Context) error
}

// ArticlesRepository caches the article feed together with the local
// viewed/liked flags.
type ArticlesRepository interface {
	SaveArticles(ctx context.Context, articles ...models.Article) error
	GetArticles(ctx context.Context, filter models.ArticlesFilter) ([]models.Article, error)
	SetViewed(ctx context.Context, articleID int64, viewed bool) error
	SetLiked(ctx context.Context, articleID int64, liked bool) error
	Clear(ctx context.Context) error
}

// ProgressRepository persists the progress of sessions that were left
// before completion.
type ProgressRepository interface {
	SaveProgress(ctx context.Context, progress models.UncompletedSession) error
	GetUncompleted(ctx context.Context) ([]models.UncompletedSession, error)
	RemoveProgress(ctx context.Context, sessionID string) error
	Clear(ctx context.Context) error
}

// AvatarStorage keeps the single profile image of the device user.
type AvatarStorage interface {
	// Save normalises raw (any supported image format) into the avatar file
	// and returns its path.
	Save(ctx context.Context, raw []byte) (string, error)
	// Path returns the avatar path if the file exists.
	Path() (string, bool)
	Remove(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database call is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
