package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/dispatch"
	"github.com/vperelygin/go-conf-sync/internal/handler"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/overrides"
	"github.com/vperelygin/go-conf-sync/internal/server"
	"github.com/vperelygin/go-conf-sync/internal/service"
	"github.com/vperelygin/go-conf-sync/internal/store"
	"github.com/vperelygin/go-conf-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("conf-host")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	source := overrides.NewSource(os.Args[1:], os.Environ())

	lazy := store.NewLazy(func() *store.Store {
		ctx := context.Background()
		backend, backendErr := store.NewBackend(ctx, cfg.Storage, log)
		if backendErr != nil {
			log.Warn().Err(backendErr).Msg("document backend unavailable, serving defaults from memory")
			backend = store.NewMemoryBackend()
		}
		return store.New(ctx, backend, log)
	})

	dispatcher := dispatch.NewServer(log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(cfg, lazy, source, dispatcher, buildInfo, log)

	dispatcher.OnUpdate(func(payload models.UpdateAction) {
		services.Config.HandleUpdate(context.Background(), payload)
	})

	// honour the persisted console log level and follow later changes
	applyLogLevel := func(value any) {
		if name, ok := value.(string); ok {
			logger.SetLevelFromName(name)
		}
	}
	applyLogLevel(services.Config.GetConfig("log.level.console"))
	services.Config.OnChange("log.level.console", func(newValue, _ any) {
		applyLogLevel(newValue)
	})

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, dispatcher, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	if err = lazy.Store().Close(); err != nil {
		log.Error().Err(err).Msg("error closing config store")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
