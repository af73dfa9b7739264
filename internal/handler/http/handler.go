package http

import (
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/internal/service"
)

type Handler struct {
	services *service.Services
	authKey  string

	logger *logger.Logger
}

// NewHandler creates the read-API handler. An empty authKey leaves the read
// API unauthenticated.
func NewHandler(services *service.Services, authKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		authKey:  authKey,
		logger:   logger,
	}
}
