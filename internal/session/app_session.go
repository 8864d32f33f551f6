// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the locally persisted identity of the device user:
// credentials, display settings, preferences, the avatar and the offline
// article cache. [AppSession] is the single entry point used by services and
// the terminal UI.
package session

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/models"
)

// AppSession delegates to its four managers. Storage failures never reach
// the caller.
type AppSession struct {
	tokens   TokenManager
	prefs    PreferencesManager
	avatar   AvatarManager
	articles ArticlesCacheManager
	logger   *logger.Logger
}

var _ Session = (*AppSession)(nil)

func NewAppSession(tokens TokenManager, prefs PreferencesManager, avatar AvatarManager, articles ArticlesCacheManager, log *logger.Logger) *AppSession {
	return &AppSession{
		tokens:   tokens,
		prefs:    prefs,
		avatar:   avatar,
		articles: articles,
		logger:   log,
	}
}

func (s *AppSession) StoreToken(ctx context.Context, token string) {
	s.trace(ctx, "StoreToken")
	s.tokens.StoreToken(ctx, token)
}

func (s *AppSession) GetToken(ctx context.Context) (string, bool) {
	s.trace(ctx, "GetToken")
	return s.tokens.GetToken(ctx)
}

func (s *AppSession) ObserveToken() (<-chan *string, func()) {
	return s.tokens.ObserveToken()
}

func (s *AppSession) StoreRefreshToken(ctx context.Context, token string) {
	s.trace(ctx, "StoreRefreshToken")
	s.tokens.StoreRefreshToken(ctx, token)
}

func (s *AppSession) GetRefreshToken(ctx context.Context) (string, bool) {
	s.trace(ctx, "GetRefreshToken")
	return s.tokens.GetRefreshToken(ctx)
}

func (s *AppSession) StoreUserID(ctx context.Context, userID int64) {
	s.trace(ctx, "StoreUserID")
	s.tokens.StoreUserID(ctx, userID)
}

func (s *AppSession) GetUserID(ctx context.Context) (int64, bool) {
	s.trace(ctx, "GetUserID")
	return s.tokens.GetUserID(ctx)
}

// ClearToken signs the user out locally. It clears the credential stores,
// the preference store and the article cache, in that order. Each clear is
// independent: a failure in one does not stop the next, and there is no
// rollback across them.
func (s *AppSession) ClearToken(ctx context.Context) {
	s.trace(ctx, "ClearToken")
	s.tokens.Clear(ctx)
	s.prefs.Clear(ctx)
	s.articles.ClearArticles(ctx)
}

func (s *AppSession) SaveUsername(ctx context.Context, username string) {
	s.trace(ctx, "SaveUsername")
	s.prefs.SaveUsername(ctx, username)
}

func (s *AppSession) GetUsername(ctx context.Context) (string, bool) {
	s.trace(ctx, "GetUsername")
	return s.prefs.GetUsername(ctx)
}

func (s *AppSession) ObserveUsername() (<-chan *string, func()) {
	return s.prefs.ObserveUsername()
}

func (s *AppSession) SetDarkTheme(ctx context.Context, dark bool) {
	s.trace(ctx, "SetDarkTheme")
	s.prefs.SetDarkTheme(ctx, dark)
}

func (s *AppSession) IsDarkTheme(ctx context.Context) bool {
	s.trace(ctx, "IsDarkTheme")
	return s.prefs.IsDarkTheme(ctx)
}

func (s *AppSession) ObserveTheme() (<-chan bool, func()) {
	return s.prefs.ObserveTheme()
}

func (s *AppSession) SavePreferences(ctx context.Context, prefs models.UserPreferences) {
	s.trace(ctx, "SavePreferences")
	s.prefs.SavePreferences(ctx, prefs)
}

func (s *AppSession) GetPreferences(ctx context.Context) (models.UserPreferences, bool) {
	s.trace(ctx, "GetPreferences")
	return s.prefs.GetPreferences(ctx)
}

func (s *AppSession) HasPreferences(ctx context.Context) bool {
	s.trace(ctx, "HasPreferences")
	return s.prefs.HasPreferences(ctx)
}

func (s *AppSession) ClearPreferences(ctx context.Context) {
	s.trace(ctx, "ClearPreferences")
	s.prefs.ClearPreferences(ctx)
}

func (s *AppSession) SaveAvatar(ctx context.Context, raw []byte) (string, bool) {
	s.trace(ctx, "SaveAvatar")
	return s.avatar.SaveAvatar(ctx, raw)
}

func (s *AppSession) AvatarPath(ctx context.Context) (string, bool) {
	s.trace(ctx, "AvatarPath")
	return s.avatar.AvatarPath()
}

func (s *AppSession) ObserveAvatarPath() (<-chan *string, func()) {
	return s.avatar.ObserveAvatarPath()
}

func (s *AppSession) ClearAvatar(ctx context.Context) {
	s.trace(ctx, "ClearAvatar")
	s.avatar.ClearAvatar(ctx)
}

func (s *AppSession) CacheArticles(ctx context.Context, articles []models.Article) {
	s.trace(ctx, "CacheArticles")
	s.articles.CacheArticles(ctx, articles)
}

func (s *AppSession) GetCachedArticles(ctx context.Context, filter models.ArticlesFilter) []models.Article {
	s.trace(ctx, "GetCachedArticles")
	return s.articles.GetCachedArticles(ctx, filter)
}

func (s *AppSession) MarkArticleViewed(ctx context.Context, articleID int64) {
	s.trace(ctx, "MarkArticleViewed")
	s.articles.MarkArticleViewed(ctx, articleID)
}

func (s *AppSession) SetArticleLiked(ctx context.Context, articleID int64, liked bool) {
	s.trace(ctx, "SetArticleLiked")
	s.articles.SetArticleLiked(ctx, articleID, liked)
}

func (s *AppSession) ObserveArticles() (<-chan []models.Article, func()) {
	return s.articles.ObserveArticles()
}

func (s *AppSession) ClearArticles(ctx context.Context) {
	s.trace(ctx, "ClearArticles")
	s.articles.ClearArticles(ctx)
}

// Snapshot collects the current identity values. Absent values stay nil.
func (s *AppSession) Snapshot(ctx context.Context) models.Session {
	var snap models.Session

	if token, ok := s.tokens.GetToken(ctx); ok {
		snap.AccessToken = &token
	}
	if id, ok := s.tokens.GetUserID(ctx); ok {
		snap.UserID = &id
	}
	if name, ok := s.prefs.GetUsername(ctx); ok {
		snap.Username = &name
	}
	if p, ok := s.avatar.AvatarPath(); ok {
		snap.AvatarPath = &p
	}
	snap.DarkTheme = s.prefs.IsDarkTheme(ctx)

	return snap
}

func (s *AppSession) trace(ctx context.Context, fn string) {
	logger.FromContextOr(ctx, s.logger).Debug().Str("func", "AppSession."+fn).Msg("session call")
}
