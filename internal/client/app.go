package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-doc-sync/internal/app"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/service"
	"github.com/MKhiriev/go-doc-sync/internal/workers"
	"github.com/MKhiriev/go-doc-sync/models"
)

// maxInitialPages bounds the startup fetch loop of a collection.
const maxInitialPages = 10_000

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	auth     service.Auth
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ws *workers.Workers, auth service.Auth, log *logger.Logger) (*App, error) {
	if services == nil || services.SyncService == nil {
		return nil, fmt.Errorf("client app: no sync service")
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}
	if auth == nil {
		auth = service.NewStaticAuth("")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{services: services, workers: ws, auth: auth, logger: log}, nil
}

// Run blocks until the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.logger.Info().Str("func", "App.run").Msg(app.MsgClientStarting)

	if !a.auth.IsSignedIn() {
		a.logger.Warn().Str("func", "App.run").Msg(app.MsgNotSignedIn)
	}

	if pages, err := a.fetchAll(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.run").Int("pages", pages).Msg(app.MsgInitialFetchFailed)
	} else {
		a.logger.Info().Str("func", "App.run").Int("pages", pages).Msg(app.MsgInitialFetchDone)
	}

	a.workers.Start(ctx)

	<-ctx.Done()
	a.logger.Info().Str("func", "App.run").Msg(app.MsgShutdownRequested)

	a.workers.Stop()
	a.services.SyncService.Close()

	a.logger.Info().Str("func", "App.run").Msg(app.MsgClientStopped)
	return nil
}

// fetchAll pages the remote collection into the local store and returns the
// number of pages fetched.
func (a *App) fetchAll(ctx context.Context) (int, error) {
	svc := a.services.SyncService
	svc.ResetFetch()

	log := logger.FromContext(ctx)

	pages := 0
	for pages < maxInitialPages {
		res, err := svc.Fetch(ctx, service.FetchRequest{})
		if err != nil {
			return pages, err
		}
		log.Debug().Str("func", "App.fetchAll").Int("page", pages).Stringer("result", res).Msg("fetched")
		if res != models.FetchResultPage {
			return pages, nil
		}
		pages++
	}
	return pages, nil
}
