package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-sync/internal/adapter"
	"github.com/MKhiriev/go-doc-sync/internal/app"
	"github.com/MKhiriev/go-doc-sync/internal/client"
	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/service"
	"github.com/MKhiriev/go-doc-sync/internal/store"
	"github.com/MKhiriev/go-doc-sync/internal/workers"
	"github.com/MKhiriev/go-doc-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewClientLogger("go-doc-sync-client")
	log.Info().Object("build", build).Msg("starting")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("entity", cfg.Entity).Msg("received configs")

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	remote, auth, err := newRemoteStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	services := service.NewClientServices(storages.Store, remote, cfg.Entity, service.SessionOptions{
		Auth:   auth,
		Logger: log,
		InsertDefaults: models.Item{
			models.FieldArchived: false,
			models.FieldDeleted:  false,
			models.FieldDepth:    0,
		},
		OnError: func(err error) {
			log.Err(err).Msg(app.MsgSyncError)
		},
		OnStatus: func(st models.SyncStatus) {
			log.Debug().Stringer("status", st).Msg(app.MsgSyncStatusChanged)
		},
	})

	ws := workers.NewWorkers(
		workers.NewChannelWorker(services.SyncJob, cfg.Workers.ChannelRetryInterval),
		workers.NewFlushWorker(services.SyncService, cfg.Adapter.RequestTimeout, log),
	)

	a, err := client.NewApp(services, ws, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = a.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newRemoteStore builds the remote adapter selected by cfg.Adapter.Kind
// together with the sign-in state it authenticates with.
func newRemoteStore(cfg *config.ClientConfig, log *logger.Logger) (adapter.RemoteStore, service.Auth, error) {
	switch cfg.Adapter.Kind {
	case config.AdapterMemory:
		clientID := cfg.Adapter.ClientID
		if clientID == "" {
			clientID = "local"
		}
		remote := adapter.NewMemoryRemoteStore(cfg.Entity.MaxBatchOps)
		return remote.Client(clientID), service.NewStaticAuth("local"), nil

	case config.AdapterHTTP:
		auth := service.NewTokenAuth(cfg.Adapter.Token)
		remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, auth, log)
		if err != nil {
			return nil, nil, err
		}
		return remote, auth, nil

	default:
		return nil, nil, fmt.Errorf("unknown adapter kind %q", cfg.Adapter.Kind)
	}
}
