package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/app"
	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/service"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/internal/testsession"
	"github.com/MKhiriev/go-test-prep/internal/tui"
	"github.com/MKhiriev/go-test-prep/internal/workers"
	"github.com/MKhiriev/go-test-prep/models"
)

type App struct {
	storages *store.ClientStorages
	server   adapter.ServerAdapter
	bus      *event.Bus
	pool     *workers.Pool
	services *service.ClientServices
	machine  *testsession.Machine
	errs     *app.MessageMapper
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp builds the whole client: local storage, the session façade, the
// server adapters and the services on top of them.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.NewAppSession(
		session.NewSecureTokenManager(ctx, storages.Secure, storages.Plain, log),
		session.NewUserPreferencesManager(ctx, storages.Preferences, log),
		session.NewFileAvatarManager(storages.Avatar, log),
		session.NewSQLArticlesCacheManager(ctx, storages.Articles, log),
		log,
	)

	serverAdapter, err := adapter.NewGRPCServerAdapter(cfg.Adapter, cfg.App, sess, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	media := adapter.NewHTTPMediaAdapter(cfg.Adapter, log)

	bus := event.NewBus(log)
	pool := workers.NewPool(cfg.Workers.PoolSize, log)
	errs := app.NewMessageMapper(log)

	services := service.NewClientServices(storages, sess, serverAdapter, media, bus, pool, cfg, log)
	machine := testsession.NewMachine(services.TestsService, errs, bus, pool, log)

	return &App{
		storages: storages,
		server:   serverAdapter,
		bus:      bus,
		pool:     pool,
		services: services,
		machine:  machine,
		errs:     errs,
		ui:       tui.New(services, machine, sess, errs, buildInfo, log),
		logger:   log,
	}, nil
}

// Run restores the previous session or asks the user to sign in, then runs
// the main loop until the user quits. Signing out goes back to the login
// flow. Quitting from the UI is not an error.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	userID, notice := a.restore(ctx)
	for {
		if userID == 0 {
			var err error
			userID, err = a.ui.LoginFlow(ctx, notice)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("login flow: %w", err)
			}
		}

		logout, err := a.mainLoop(ctx, userID)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		userID, notice = 0, "Signed out"
	}
}

// restore returns the signed-in user or 0 with a notice for the menu.
func (a *App) restore(ctx context.Context) (int64, string) {
	userID, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Int64("user_id", userID).Msg("session restored")
		return userID, ""
	case errors.Is(err, service.ErrNotAuthenticated):
		return 0, ""
	default:
		a.logger.Warn().Err(err).Str("func", "App.restore").Msg("session not restored")
		return 0, a.errs.Map(ctx, err)
	}
}

func (a *App) mainLoop(ctx context.Context, userID int64) (bool, error) {
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.pool.Submit(loopCtx, "initial sync", a.services.ProfileService.Sync); err != nil {
		a.logger.Debug().Err(err).Msg("initial sync not scheduled")
	}

	background := workers.NewWorkers(a.services.SyncJob)
	background.Start(loopCtx)
	defer background.Stop()

	return a.ui.MainLoop(loopCtx, userID)
}

func (a *App) shutdown() {
	a.bus.Stop()
	a.pool.Close()
	a.machine.Close()

	if err := a.server.Close(); err != nil {
		a.logger.Debug().Err(err).Msg("close server adapter")
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.shutdown").Msg("close local storage")
	}
}
