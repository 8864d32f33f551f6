// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the test-prep backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships a gRPC implementation
// ([NewGRPCServerAdapter]) whose messages are plain Go records carried by a
// JSON codec, and an HTTP implementation of [MediaAdapter] for binary
// downloads.
//
// Transport failures are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrUnauthorized] for an expired token, [ErrUnavailable] when the server
// cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-test-prep/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthAdapter talks to testprep.v1.AuthService.
type AuthAdapter interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthTokens, error)

	// Register creates an account and returns its first token pair.
	Register(ctx context.Context, registration models.Registration) (models.AuthTokens, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (models.AuthTokens, error)
}

// TestsAdapter talks to testprep.v1.TestsService.
type TestsAdapter interface {
	ListTests(ctx context.Context) ([]models.Test, error)
	StartTestSession(ctx context.Context, testID int64) (models.TestSession, error)
	GetTestSession(ctx context.Context, sessionID string) (models.TestSession, error)
	SaveAnswer(ctx context.Context, sessionID string, answer models.Answer) (models.AnswerFeedback, error)
	CompleteTestSession(ctx context.Context, sessionID string) (models.TestResult, error)
}

// UserInfoAdapter talks to testprep.v1.UserInfoService.
type UserInfoAdapter interface {
	GetUserInfo(ctx context.Context) (models.UserInfo, error)
	GetPreferences(ctx context.Context) (models.UserPreferences, error)
	UpdatePreferences(ctx context.Context, prefs models.UserPreferences) (models.UserPreferences, error)
	GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// ArticlesAdapter talks to testprep.v1.ArticlesService.
type ArticlesAdapter interface {
	GetArticles(ctx context.Context, filter models.ArticlesFilter) ([]models.Article, error)
	LikeArticle(ctx context.Context, articleID int64, liked bool) error
	MarkArticleViewed(ctx context.Context, articleID int64) error
}

// TokenSource supplies the bearer token for each call.
type TokenSource interface {
	GetToken(ctx context.Context) (string, bool)
}

// ServerAdapter is the full remote boundary of the client. Implementations
// attach the bearer token of their [TokenSource] to every call.
type ServerAdapter interface {
	AuthAdapter
	TestsAdapter
	UserInfoAdapter
	ArticlesAdapter

	// Close releases the underlying connection.
	Close() error
}

// MediaAdapter downloads binary content referenced by server records.
type MediaAdapter interface {
	// DownloadAvatar fetches the image at avatarURL. Relative URLs are
	// resolved against the configured media base URL.
	DownloadAvatar(ctx context.Context, avatarURL string) ([]byte, error)
}
