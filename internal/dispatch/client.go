// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

// SetHandler consumes one config:SET confirmation broadcast by the host.
type SetHandler func(models.UpdateAction)

// Client is the front-end side of the dispatcher. Sending an update is
// fire-and-forget: a request the host drops (override-shadowed path) never
// produces a reply, so callers must not block awaiting one.
type Client struct {
	baseURL string
	logger  *logger.Logger

	manager *socket.Manager
	socket  *socket.Socket
}

// NewClient constructs a dispatcher client for the host at baseURL.
func NewClient(baseURL string, log *logger.Logger) *Client {
	return &Client{baseURL: baseURL, logger: log}
}

// Connect dials the host over WebSocket and waits until the socket.io
// handshake completes, ctx is cancelled, or timeout elapses.
func (c *Client) Connect(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	parsedURL, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse dispatcher URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	c.manager = socket.NewManager(baseURL, opts)
	c.socket = c.manager.Socket("/", opts)

	c.socket.Once(types.EventName("connect"), func(...any) {
		c.logger.Debug().Str("sid", string(c.socket.Id())).Msg("dispatcher connected")
		connectChan <- nil
	})

	c.socket.Once(types.EventName("connect_error"), func(errs ...any) {
		connectErr, ok := errs[0].(error)
		if !ok {
			connectErr = fmt.Errorf("dispatcher connect error: %v", errs[0])
		}
		connectChan <- connectErr
	})

	c.socket.Connect()

	select {
	case err = <-connectChan:
		if err != nil {
			c.socket.Disconnect()
			return fmt.Errorf("dispatcher connection failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		c.socket.Disconnect()
		return ctx.Err()
	case <-time.After(timeout):
		c.socket.Disconnect()
		return ErrConnectTimeout
	}
}

// SendUpdate emits a config:UPDATE request and returns without waiting for
// any confirmation.
func (c *Client) SendUpdate(payload models.UpdateAction) error {
	if c.socket == nil || !c.socket.Connected() {
		return ErrNotConnected
	}

	body := map[string]any{"path": payload.Path, "value": payload.Value}
	if err := c.socket.Emit(models.ActionConfigUpdate, body); err != nil {
		return fmt.Errorf("emit update action: %w", err)
	}
	return nil
}

// OnSet registers the single confirmation handler. Must be called after
// Connect.
func (c *Client) OnSet(handler SetHandler) {
	c.socket.On(types.EventName(models.ActionConfigSet), func(datas ...any) {
		if len(datas) == 0 {
			return
		}

		payload, err := models.DecodeUpdateAction(datas[0])
		if err != nil {
			c.logger.Warn().Err(err).Msg("dropping malformed set action")
			return
		}
		handler(payload)
	})
}

// Disconnect tears the socket down. Safe to call when never connected.
func (c *Client) Disconnect() {
	if c.socket != nil {
		c.socket.Disconnect()
	}
}
