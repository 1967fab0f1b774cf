package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-tracker/internal/adapter"
	"github.com/MKhiriev/go-pet-tracker/internal/config"
	"github.com/MKhiriev/go-pet-tracker/internal/logger"
	"github.com/MKhiriev/go-pet-tracker/internal/service"
	"github.com/MKhiriev/go-pet-tracker/internal/store"
	"github.com/MKhiriev/go-pet-tracker/models"
)

// App owns the storage, transport and service layers of one client process.
type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  config.ClientWorkers
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the storages selected by cfg.Storage, the authenticated
// gateway on top of their token store, and the client services.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	var (
		storages *store.ClientStorages
		err      error
	)
	if cfg.Storage.DB.InMemory() {
		storages = store.NewInMemoryStorages(log)
	} else {
		storages, err = store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create client storages: %w", err)
		}
	}

	gateway, err := adapter.NewHTTPGateway(cfg.Adapter, storages.Tokens, build, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create gateway: %w", err)
	}

	return &App{
		storages: storages,
		services: service.NewClientServices(gateway, storages.Tokens, cfg.Sync, log),
		workers:  cfg.Workers,
		logger:   log,
	}, nil
}

// Services returns the wired client services.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run restores the stored session, starts the profile refresh job and blocks
// until ctx is cancelled. A zero refresh interval disables the job.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	state := a.services.Session.Initialize(ctx)
	if state.IsAuthenticated {
		ev := a.logger.Info().Str("func", "App.Run")
		if state.User != nil {
			ev = ev.Str("user_id", state.User.ID.String())
		}
		ev.Msg("session restored")
	} else {
		a.logger.Info().Str("func", "App.Run").Msg("no active session")
	}

	if a.workers.ProfileRefreshInterval > 0 {
		a.services.ProfileJob.Start(ctx, a.workers.ProfileRefreshInterval)
		defer a.services.ProfileJob.Stop()
	}

	<-ctx.Done()
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}

// Close releases the storages.
func (a *App) Close() error {
	return a.storages.Close()
}
