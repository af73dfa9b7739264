// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package service

import (
	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/overrides"
	"github.com/vperelygin/go-conf-sync/internal/store"
	"github.com/vperelygin/go-conf-sync/models"
)

// Services aggregates the host-side services consumed by the transport
// layers.
type Services struct {
	Config  *ConfigService
	AppInfo *AppInfoService
}

// NewServices wires the host service container.
func NewServices(
	cfg *config.StructuredConfig,
	lazy *store.Lazy,
	source *overrides.Source,
	dispatch Broadcaster,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *Services {
	return &Services{
		Config:  NewConfigService(lazy, source, dispatch, log),
		AppInfo: NewAppInfoService(buildInfo, cfg.App.Version),
	}
}
