package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/internal/utils"
	"github.com/MKhiriev/go-test-prep/internal/validators"
	"github.com/MKhiriev/go-test-prep/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   session.Session
	progress  store.ProgressRepository
	validator validators.Validator
	events    EventPublisher
	now       func() time.Time
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sess session.Session, progress store.ProgressRepository,
	validator validators.Validator, events EventPublisher, log *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		session:   sess,
		progress:  progress,
		validator: validator,
		events:    events,
		now:       time.Now,
		logger:    log,
	}
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (int64, error) {
	if err := validateInput(ctx, a.validator, credentials); err != nil {
		return 0, err
	}

	tokens, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotFound) {
			return 0, app.New(app.KindServer, app.WithMessage(app.MsgInvalidCredentials), app.WithCause(err))
		}
		return 0, mapAdapterError(err)
	}

	return a.establish(ctx, tokens, "")
}

func (a *clientAuthService) Register(ctx context.Context, registration models.Registration) (int64, error) {
	if err := validateInput(ctx, a.validator, registration); err != nil {
		return 0, err
	}

	tokens, err := a.adapter.Register(ctx, registration)
	if err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return 0, app.New(app.KindServer, app.WithMessage(app.MsgAccountExists), app.WithCause(err))
		}
		return 0, mapAdapterError(err)
	}

	return a.establish(ctx, tokens, registration.Username)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (int64, error) {
	log := logger.FromContextOr(ctx, a.logger)

	accessToken, ok := a.session.GetToken(ctx)
	if !ok || accessToken == "" {
		return 0, ErrNotAuthenticated
	}

	token, err := utils.ParseUnverifiedToken(accessToken)
	if err == nil && !token.Expired(a.now()) {
		userID, ok := a.session.GetUserID(ctx)
		if !ok {
			if userID, err = token.GetUserID(); err != nil {
				return a.signOut(ctx, fmt.Errorf("%w: %w", ErrInvalidAccessToken, err))
			}
			a.session.StoreUserID(ctx, userID)
		}
		return userID, nil
	}

	refreshToken, ok := a.session.GetRefreshToken(ctx)
	if !ok || refreshToken == "" {
		log.Debug().Msg("access token expired and no refresh token stored")
		return a.signOut(ctx, ErrNotAuthenticated)
	}

	tokens, err := a.adapter.Refresh(ctx, refreshToken)
	if err != nil {
		mapped := mapAdapterError(err)
		if isOffline(mapped) {
			return 0, mapped
		}
		log.Debug().Err(err).Msg("token refresh rejected")
		return a.signOut(ctx, ErrNotAuthenticated)
	}

	return a.establish(ctx, tokens, "")
}

func (a *clientAuthService) Logout(ctx context.Context) {
	log := logger.FromContextOr(ctx, a.logger)

	userID, _ := a.session.GetUserID(ctx)

	a.session.ClearToken(ctx)
	a.session.ClearAvatar(ctx)
	if err := a.progress.Clear(ctx); err != nil {
		log.Debug().Err(err).Msg("failed to clear uncompleted sessions")
	}

	a.events.Publish(ctx, models.EventLoggedOut{UserID: userID})
	log.Info().Int64("user_id", userID).Msg("user logged out")
}

// establish stores a fresh token pair in the session.
func (a *clientAuthService) establish(ctx context.Context, tokens models.AuthTokens, fallbackUsername string) (int64, error) {
	userID, err := utils.ParseUserIDFromJWT(tokens.AccessToken)
	if err != nil {
		return 0, app.New(app.KindServer, app.WithCause(fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)))
	}

	a.session.StoreToken(ctx, tokens.AccessToken)
	if tokens.RefreshToken != "" {
		a.session.StoreRefreshToken(ctx, tokens.RefreshToken)
	}
	a.session.StoreUserID(ctx, userID)

	username := tokens.Username
	if username == "" {
		username = fallbackUsername
	}
	if username != "" {
		a.session.SaveUsername(ctx, username)
	}

	logger.FromContextOr(ctx, a.logger).Info().Int64("user_id", userID).Msg("user signed in")
	return userID, nil
}

func (a *clientAuthService) signOut(ctx context.Context, cause error) (int64, error) {
	a.session.ClearToken(ctx)
	return 0, cause
}
