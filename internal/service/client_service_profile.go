package service

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/internal/validators"
	"github.com/MKhiriev/go-test-prep/models"
)

type clientProfileService struct {
	adapter   adapter.UserInfoAdapter
	media     adapter.MediaAdapter
	session   session.Session
	validator validators.Validator
	tasks     TaskSubmitter
	userInfo  *state.Cell[*models.UserInfo]
	logger    *logger.Logger
}

func NewClientProfileService(userInfoAdapter adapter.UserInfoAdapter, media adapter.MediaAdapter, sess session.Session,
	validator validators.Validator, tasks TaskSubmitter, log *logger.Logger) ClientProfileService {
	return newClientProfileService(userInfoAdapter, media, sess, validator, tasks, log)
}

func newClientProfileService(userInfoAdapter adapter.UserInfoAdapter, media adapter.MediaAdapter, sess session.Session,
	validator validators.Validator, tasks TaskSubmitter, log *logger.Logger) *clientProfileService {
	return &clientProfileService{
		adapter:   userInfoAdapter,
		media:     media,
		session:   sess,
		validator: validator,
		tasks:     tasks,
		userInfo:  state.NewCell[*models.UserInfo](nil),
		logger:    log,
	}
}

func (s *clientProfileService) SyncPreferences(ctx context.Context) (models.UserPreferences, error) {
	prefs, err := s.adapter.GetPreferences(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if isOffline(mapped) {
			if local, ok := s.session.GetPreferences(ctx); ok {
				return local, nil
			}
		}
		return models.UserPreferences{}, mapped
	}

	s.session.SavePreferences(ctx, prefs)
	return prefs, nil
}

func (s *clientProfileService) UpdatePreferences(ctx context.Context, prefs models.UserPreferences) (models.UserPreferences, error) {
	if err := validateInput(ctx, s.validator, prefs); err != nil {
		return models.UserPreferences{}, err
	}

	updated, err := s.adapter.UpdatePreferences(ctx, prefs)
	if err != nil {
		return models.UserPreferences{}, mapAdapterError(err)
	}

	s.session.SavePreferences(ctx, updated)
	logger.FromContextOr(ctx, s.logger).Info().Int64("user_id", updated.UserID).Msg("preferences updated")
	return updated, nil
}

func (s *clientProfileService) SyncAvatar(ctx context.Context) (string, error) {
	info := s.userInfo.Get()
	if info == nil {
		fetched, err := s.GetUserInfo(ctx)
		if err != nil {
			return "", err
		}
		info = &fetched
	}

	if info.AvatarURL == "" {
		s.session.ClearAvatar(ctx)
		return "", nil
	}

	raw, err := s.media.DownloadAvatar(ctx, info.AvatarURL)
	if err != nil {
		return "", mapAdapterError(err)
	}

	path, ok := s.session.SaveAvatar(ctx, raw)
	if !ok {
		return "", app.New(app.KindStorage, app.WithMessage(app.MsgAvatarNotSaved), app.WithCause(ErrAvatarNotSaved))
	}
	return path, nil
}

func (s *clientProfileService) GetUserInfo(ctx context.Context) (models.UserInfo, error) {
	info, err := s.adapter.GetUserInfo(ctx)
	if err != nil {
		return models.UserInfo{}, mapAdapterError(err)
	}

	s.userInfo.Set(&info)
	if info.Username != "" {
		s.session.SaveUsername(ctx, info.Username)
	}
	return info, nil
}

func (s *clientProfileService) ObserveUserInfo() (<-chan *models.UserInfo, func()) {
	return s.userInfo.Subscribe()
}

func (s *clientProfileService) Sync(ctx context.Context) error {
	log := logger.FromContextOr(ctx, s.logger)

	if token, ok := s.session.GetToken(ctx); !ok || token == "" {
		return ErrNotAuthenticated
	}

	if _, err := s.GetUserInfo(ctx); err != nil {
		return err
	}
	if _, err := s.SyncPreferences(ctx); err != nil {
		return err
	}

	err := s.tasks.Submit(ctx, "sync avatar", func(ctx context.Context) error {
		_, err := s.SyncAvatar(ctx)
		return err
	})
	if err != nil {
		log.Debug().Err(err).Msg("avatar sync not scheduled")
	}
	return nil
}

// onTestSessionCompleted refreshes the profile totals after grading.
func (s *clientProfileService) onTestSessionCompleted(ctx context.Context, e event.Event) error {
	completed, ok := e.(models.EventTestSessionCompleted)
	if !ok {
		return nil
	}

	logger.FromContextOr(ctx, s.logger).Debug().
		Str("session_id", completed.SessionID).
		Msg("refreshing user info after completed session")

	_, err := s.GetUserInfo(ctx)
	if isOffline(err) {
		return nil
	}
	return err
}

func (s *clientProfileService) onLoggedOut(_ context.Context, _ event.Event) error {
	s.userInfo.Set(nil)
	return nil
}

func (s *clientProfileService) subscribe(bus *event.Bus) {
	bus.Subscribe(models.EventNameTestSessionCompleted, s.onTestSessionCompleted)
	bus.Subscribe(models.EventNameLoggedOut, s.onLoggedOut)
}
