package client

import (
	"context"
	"fmt"

	"github.com/vperelygin/go-conf-sync/internal/adapter"
	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/dispatch"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/service"
	"github.com/vperelygin/go-conf-sync/internal/workers"
	"github.com/vperelygin/go-conf-sync/models"
)

// App is the front-end runtime. It holds no configuration state of its own;
// the mirror lives in the client config service.
type App struct {
	cfg        *config.ClientConfig
	services   *service.ClientServices
	dispatcher *dispatch.Client
	workers    *workers.Workers
	logger     *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the front-end from its configuration.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App.AuthKey, log)
	dispatcher := dispatch.NewClient(cfg.Adapter.BaseURL, log)
	services := service.NewClientServices(cfg, serverAdapter, dispatcher, buildInfo, log)

	refreshJob := workers.NewIntervalJob(
		"config-refresh",
		cfg.Workers.RefreshInterval,
		services.Config.Refresh,
		log,
	)

	return &App{
		cfg:        cfg,
		services:   services,
		dispatcher: dispatcher,
		workers:    workers.New(refreshJob),
		logger:     log,
	}
}

// Services exposes the front-end service container.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run connects to the host, seeds the configuration mirror, starts the
// background refresh job, and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.dispatcher.Connect(ctx, a.cfg.Adapter.RequestTimeout); err != nil {
		return fmt.Errorf("connect dispatcher: %w", err)
	}
	defer a.dispatcher.Disconnect()

	a.dispatcher.OnSet(func(payload models.UpdateAction) {
		a.services.Config.ApplySet(payload)
		a.logger.Info().Str("path", payload.Path).Msg("config value changed")
	})

	// The mirror is also repaired periodically, so a failed seed only
	// degrades reads until the next refresh.
	if err := a.services.Config.Refresh(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial config read failed")
	}

	a.workers.StartAll(ctx)
	defer a.workers.StopAll()

	channel, err := a.services.Config.GetConfig("update.channel")
	if err == nil {
		a.logger.Info().Any("channel", channel).Msg("front-end ready")
	}

	<-ctx.Done()
	a.logger.Info().Msg("front-end shutting down")
	return nil
}
