// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/dispatch"
	"github.com/vperelygin/go-conf-sync/internal/handler"
	"github.com/vperelygin/go-conf-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	dispatcher *dispatch.Server
	logger     *logger.Logger
}

// NewServer composes the host's listener: the read-API routes from handlers
// plus the dispatcher's socket.io endpoint, mounted on the same router.
func NewServer(handlers *handler.Handlers, dispatcher *dispatch.Server, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		router := handlers.HTTP.Init()
		router.Handle("/socket.io/*", dispatcher.Handler())
		servers.httpServer = newHTTPServer(router, cfg, logger)
		servers.dispatcher = dispatcher
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	// stop accepting socket.io connections before the listener goes away
	if s.dispatcher != nil {
		s.dispatcher.Close()
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
