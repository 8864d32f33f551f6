package service

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/workers"
	"github.com/MKhiriev/go-test-prep/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication and the lifetime of the local session.
type ClientAuthService interface {
	// Login validates the credentials, exchanges them for a token pair and
	// stores the token, the refresh token, the user id and the username in
	// the local session. Returns the user id read from the access token.
	Login(ctx context.Context, credentials models.Credentials) (int64, error)

	// Register validates the form, creates the account on the server and
	// signs the user in the same way Login does.
	Register(ctx context.Context, registration models.Registration) (int64, error)

	// RestoreSession resumes the session persisted on the device. An expired
	// access token is refreshed once. Returns ErrNotAuthenticated when the
	// user has to sign in again.
	RestoreSession(ctx context.Context) (int64, error)

	// Logout clears every locally persisted trace of the user and publishes
	// models.EventLoggedOut.
	Logout(ctx context.Context)
}

// ClientTestsService is the tests repository consumed by the test-session
// state machine. Remote calls go through the server adapter; progress of
// uncompleted sessions is kept on the device.
type ClientTestsService interface {
	GetTests(ctx context.Context) ([]models.Test, error)
	StartTestSession(ctx context.Context, testID int64) (models.TestSession, error)
	GetTestSession(ctx context.Context, sessionID string) (models.TestSession, error)
	SaveAnswer(ctx context.Context, sessionID string, answer models.Answer) (models.AnswerFeedback, error)
	CompleteTestSession(ctx context.Context, sessionID string) (models.TestResult, error)

	// SaveSessionProgress stamps SavedAt and persists the progress. A later
	// save for the same session replaces the earlier one.
	SaveSessionProgress(ctx context.Context, progress models.UncompletedSession) error
	GetUncompletedSessions(ctx context.Context) ([]models.UncompletedSession, error)
	RemoveUncompletedSession(ctx context.Context, sessionID string) error
}

// ClientArticlesService serves the article feed with an offline fallback.
type ClientArticlesService interface {
	// GetArticles returns the feed filtered by the stored preferences. The
	// cache answers unless forceRefresh is set or it is empty; a remote
	// result is written through to the cache. When the server is
	// unreachable the cached feed is returned instead of an error.
	GetArticles(ctx context.Context, forceRefresh bool) ([]models.Article, error)
	LikeArticle(ctx context.Context, articleID int64, liked bool) error
	MarkViewed(ctx context.Context, articleID int64) error
}

// ClientProfileService keeps the local copy of the profile in sync with the
// server.
type ClientProfileService interface {
	// SyncPreferences pulls the server preferences into the local session.
	// Offline, the stored preferences are returned.
	SyncPreferences(ctx context.Context) (models.UserPreferences, error)

	// UpdatePreferences validates prefs, pushes them and stores the server
	// reply.
	UpdatePreferences(ctx context.Context, prefs models.UserPreferences) (models.UserPreferences, error)

	// SyncAvatar downloads the avatar referenced by the profile and stores
	// it. Returns the local path, empty when the profile has no avatar.
	SyncAvatar(ctx context.Context) (string, error)

	GetUserInfo(ctx context.Context) (models.UserInfo, error)
	ObserveUserInfo() (<-chan *models.UserInfo, func())

	// Sync refreshes user info and preferences and schedules the avatar
	// download. Returns ErrNotAuthenticated without a stored token.
	Sync(ctx context.Context) error
}

// ClientLeaderboardService reads the global ranking.
type ClientLeaderboardService interface {
	GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// ClientSyncJob periodically calls ClientProfileService.Sync. It is a
// [workers.Worker].
type ClientSyncJob interface {
	workers.Worker
}

// EventPublisher is the publishing side of [event.Bus].
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event)
}

// TaskSubmitter is the submitting side of [workers.Pool].
type TaskSubmitter interface {
	Submit(ctx context.Context, name string, task workers.Task) error
}
