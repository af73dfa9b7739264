// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Perelygin

// Package adapter implements the front-end's outbound HTTP client towards
// the host's read API.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vperelygin/go-conf-sync/internal/config"
	"github.com/vperelygin/go-conf-sync/internal/logger"
	"github.com/vperelygin/go-conf-sync/models"
)

const tokenTTL = time.Minute

// HTTPServerAdapter talks to the host's read API over HTTP with resty.
// When an auth key is configured, every request carries a short-lived
// self-issued HS256 bearer token.
type HTTPServerAdapter struct {
	client  *resty.Client
	authKey string
	logger  *logger.Logger
}

var _ ServerAdapter = (*HTTPServerAdapter)(nil)

// NewHTTPServerAdapter constructs the adapter from the front-end's outbound
// connection settings.
func NewHTTPServerAdapter(cfg config.ClientAdapter, authKey string, log *logger.Logger) *HTTPServerAdapter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &HTTPServerAdapter{
		client:  client,
		authKey: authKey,
		logger:  log,
	}
}

// FullConfig implements [ServerAdapter].
func (a *HTTPServerAdapter) FullConfig(ctx context.Context) (models.Tree, error) {
	body, err := a.get(ctx, "/api/config", nil)
	if err != nil {
		return nil, err
	}

	var tree models.Tree
	if err = json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("decode config document: %w", err)
	}
	return tree, nil
}

// ConfigValue implements [ServerAdapter].
func (a *HTTPServerAdapter) ConfigValue(ctx context.Context, path string) (any, error) {
	return a.getValue(ctx, "/api/config/value", path)
}

// Overrides implements [ServerAdapter].
func (a *HTTPServerAdapter) Overrides(ctx context.Context, path string) (any, error) {
	return a.getValue(ctx, "/api/overrides", path)
}

// StoreDocument implements [ServerAdapter].
func (a *HTTPServerAdapter) StoreDocument(ctx context.Context) (models.Tree, error) {
	body, err := a.get(ctx, "/api/store", nil)
	if err != nil {
		return nil, err
	}

	var tree models.Tree
	if err = json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("decode store document: %w", err)
	}
	return tree, nil
}

// ServerVersion implements [ServerAdapter].
func (a *HTTPServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	body, err := a.get(ctx, "/api/version", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (a *HTTPServerAdapter) getValue(ctx context.Context, route, path string) (any, error) {
	body, err := a.get(ctx, route, map[string]string{"path": path})
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err = json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode value envelope: %w", err)
	}
	return envelope.Value, nil
}

func (a *HTTPServerAdapter) get(ctx context.Context, route string, query map[string]string) ([]byte, error) {
	request := a.client.R().SetContext(ctx)
	if query != nil {
		request.SetQueryParams(query)
	}
	if a.authKey != "" {
		token, err := a.issueToken()
		if err != nil {
			return nil, fmt.Errorf("issue bearer token: %w", err)
		}
		request.SetAuthToken(token)
	}

	response, err := request.Get(route)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	switch {
	case response.StatusCode() == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case !response.IsSuccess():
		return nil, fmt.Errorf("GET %s: unexpected status %d", route, response.StatusCode())
	}

	return response.Body(), nil
}

func (a *HTTPServerAdapter) issueToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "conf-client",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	return token.SignedString([]byte(a.authKey))
}
