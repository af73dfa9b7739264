// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package dispatch

import (
	"net/http"
	"sync"

	sio "github.com/zishang520/socket.io/v2/socket"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// UpdateHandler consumes one inbound config:UPDATE payload. The host
// registers exactly one handler per action type.
type UpdateHandler func(models.UpdateAction)

// Server is the host side of the dispatcher. It tracks connected front-end
// sockets so confirmations can be broadcast to every one of them, including
// the requester.
type Server struct {
	io     *sio.Server
	logger *logger.Logger

	mu       sync.RWMutex
	clients  map[sio.SocketId]*sio.Socket
	onUpdate UpdateHandler
}

// NewServer constructs the dispatcher server and wires connection tracking.
// The returned server does not listen by itself; mount [Server.Handler] on
// the host's HTTP router.
func NewServer(log *logger.Logger) *Server {
	s := &Server{
		io:      sio.NewServer(nil, nil),
		logger:  log,
		clients: make(map[sio.SocketId]*sio.Socket),
	}

	s.io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*sio.Socket)
		if !ok {
			return
		}
		s.addClient(client)
	})

	return s
}

// Handler returns the HTTP handler serving the socket.io endpoint.
func (s *Server) Handler() http.Handler {
	return s.io.ServeHandler(nil)
}

// OnUpdate registers the single inbound update handler. Must be called
// before the HTTP listener starts accepting connections.
func (s *Server) OnUpdate(handler UpdateHandler) {
	s.mu.Lock()
	s.onUpdate = handler
	s.mu.Unlock()
}

// Broadcast emits action to all connected front-ends. Delivery is
// at-most-once per socket; sockets that dropped since the snapshot simply
// miss the message.
func (s *Server) Broadcast(action models.Action) {
	s.mu.RLock()
	targets := make([]*sio.Socket, 0, len(s.clients))
	for _, client := range s.clients {
		targets = append(targets, client)
	}
	s.mu.RUnlock()

	body := map[string]any{"path": action.Payload.Path, "value": action.Payload.Value}
	for _, client := range targets {
		if err := client.Emit(action.Type, body); err != nil {
			s.logger.Warn().Err(err).Str("sid", string(client.Id())).Msg("broadcast emit failed")
		}
	}
}

// Close shuts the socket.io server down.
func (s *Server) Close() {
	s.io.Close(nil)
}

func (s *Server) addClient(client *sio.Socket) {
	s.mu.Lock()
	s.clients[client.Id()] = client
	s.mu.Unlock()

	s.logger.Debug().Str("sid", string(client.Id())).Msg("front-end connected")

	client.On(models.ActionConfigUpdate, func(datas ...any) {
		if len(datas) == 0 {
			return
		}

		payload, err := models.DecodeUpdateAction(datas[0])
		if err != nil {
			s.logger.Warn().Err(err).Msg("dropping malformed update action")
			return
		}

		s.mu.RLock()
		handler := s.onUpdate
		s.mu.RUnlock()
		if handler != nil {
			handler(payload)
		}
	})

	client.On("disconnect", func(...any) {
		s.mu.Lock()
		delete(s.clients, client.Id())
		s.mu.Unlock()
		s.logger.Debug().Str("sid", string(client.Id())).Msg("front-end disconnected")
	})
}
