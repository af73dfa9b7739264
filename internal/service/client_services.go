package service

import (
	"github.com/vperelygin/go-conf-sync/internal/adapter"
	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// ClientServices aggregates the front-end services.
type ClientServices struct {
	Config  *ClientConfigService
	AppInfo *AppInfoService
}

// NewClientServices wires the front-end service container.
func NewClientServices(
	cfg *config.ClientConfig,
	adp adapter.ServerAdapter,
	sender UpdateSender,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *ClientServices {
	return &ClientServices{
		Config:  NewClientConfigService(adp, sender, log),
		AppInfo: NewAppInfoService(buildInfo, cfg.App.Version),
	}
}
