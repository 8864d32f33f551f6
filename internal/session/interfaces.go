package session

import (
	"context"

	"github.com/MKhiriev/go-test-prep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// TokenManager keeps the credentials of the device user. Storage failures
// are logged and never returned.
type TokenManager interface {
	StoreToken(ctx context.Context, token string)
	GetToken(ctx context.Context) (string, bool)
	// ObserveToken yields the current token (nil when absent) and every change.
	ObserveToken() (<-chan *string, func())

	StoreRefreshToken(ctx context.Context, token string)
	GetRefreshToken(ctx context.Context) (string, bool)

	StoreUserID(ctx context.Context, userID int64)
	// GetUserID reports false when no id was stored; 0 is a valid id.
	GetUserID(ctx context.Context) (int64, bool)

	Clear(ctx context.Context)
}

// PreferencesManager keeps display settings and the user preferences.
type PreferencesManager interface {
	SaveUsername(ctx context.Context, username string)
	GetUsername(ctx context.Context) (string, bool)
	ObserveUsername() (<-chan *string, func())

	SetDarkTheme(ctx context.Context, dark bool)
	IsDarkTheme(ctx context.Context) bool
	ObserveTheme() (<-chan bool, func())

	SavePreferences(ctx context.Context, prefs models.UserPreferences)
	GetPreferences(ctx context.Context) (models.UserPreferences, bool)
	HasPreferences(ctx context.Context) bool
	ClearPreferences(ctx context.Context)

	Clear(ctx context.Context)
}

// AvatarManager keeps the single profile image.
type AvatarManager interface {
	SaveAvatar(ctx context.Context, raw []byte) (string, bool)
	AvatarPath() (string, bool)
	ObserveAvatarPath() (<-chan *string, func())
	ClearAvatar(ctx context.Context)
}

// ArticlesCacheManager keeps the offline copy of the article feed.
type ArticlesCacheManager interface {
	CacheArticles(ctx context.Context, articles []models.Article)
	GetCachedArticles(ctx context.Context, filter models.ArticlesFilter) []models.Article
	MarkArticleViewed(ctx context.Context, articleID int64)
	SetArticleLiked(ctx context.Context, articleID int64, liked bool)
	ObserveArticles() (<-chan []models.Article, func())
	ClearArticles(ctx context.Context)
}

// Session is the façade consumed by services and the terminal UI.
// [AppSession] is the implementation.
type Session interface {
	StoreToken(ctx context.Context, token string)
	GetToken(ctx context.Context) (string, bool)
	ObserveToken() (<-chan *string, func())
	StoreRefreshToken(ctx context.Context, token string)
	GetRefreshToken(ctx context.Context) (string, bool)
	StoreUserID(ctx context.Context, userID int64)
	GetUserID(ctx context.Context) (int64, bool)
	ClearToken(ctx context.Context)

	SaveUsername(ctx context.Context, username string)
	GetUsername(ctx context.Context) (string, bool)
	ObserveUsername() (<-chan *string, func())
	SetDarkTheme(ctx context.Context, dark bool)
	IsDarkTheme(ctx context.Context) bool
	ObserveTheme() (<-chan bool, func())
	SavePreferences(ctx context.Context, prefs models.UserPreferences)
	GetPreferences(ctx context.Context) (models.UserPreferences, bool)
	HasPreferences(ctx context.Context) bool
	ClearPreferences(ctx context.Context)

	SaveAvatar(ctx context.Context, raw []byte) (string, bool)
	AvatarPath(ctx context.Context) (string, bool)
	ObserveAvatarPath() (<-chan *string, func())
	ClearAvatar(ctx context.Context)

	CacheArticles(ctx context.Context, articles []models.Article)
	GetCachedArticles(ctx context.Context, filter models.ArticlesFilter) []models.Article
	MarkArticleViewed(ctx context.Context, articleID int64)
	SetArticleLiked(ctx context.Context, articleID int64, liked bool)
	ObserveArticles() (<-chan []models.Article, func())
	ClearArticles(ctx context.Context)

	Snapshot(ctx context.Context) models.Session
}
