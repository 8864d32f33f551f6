package service

import (
	"github.com/MKhiriev/go-test-prep/internal/adapter"
	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/event"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/session"
	"github.com/MKhiriev/go-test-prep/internal/store"
	"github.com/MKhiriev/go-test-prep/internal/validators"
	"github.com/MKhiriev/go-test-prep/internal/workers"
)

type ClientServices struct {
	AuthService        ClientAuthService
	TestsService       ClientTestsService
	ArticlesService    ClientArticlesService
	ProfileService     ClientProfileService
	LeaderboardService ClientLeaderboardService
	SyncJob            ClientSyncJob
}

func NewClientServices(
	localStore *store.ClientStorages,
	sess session.Session,
	serverAdapter adapter.ServerAdapter,
	media adapter.MediaAdapter,
	bus *event.Bus,
	pool *workers.Pool,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewClientValidator()

	profileSvc := newClientProfileService(serverAdapter, media, sess, validator, pool, log)
	profileSvc.subscribe(bus)

	return &ClientServices{
		AuthService:        NewClientAuthService(serverAdapter, sess, localStore.Progress, validator, bus, log),
		TestsService:       NewClientTestsService(serverAdapter, localStore.Progress, log),
		ArticlesService:    NewClientArticlesService(serverAdapter, sess, log),
		ProfileService:     profileSvc,
		LeaderboardService: NewClientLeaderboardService(serverAdapter),
		SyncJob:            NewClientSyncJob(profileSvc, cfg.Workers.SyncInterval, log),
	}
}
