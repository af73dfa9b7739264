package config

import (
	"fmt"
	"time"
)

// ClientApp holds front-end application settings derived from the shared
// structured config.
type ClientApp struct {
	// AuthKey is the shared secret used to self-issue read-API bearer tokens.
	AuthKey string
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the front-end transport layer.
type ClientAdapter struct {
	// BaseURL is the host endpoint the front-end connects to.
	BaseURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains front-end background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh worker re-reads the
	// full merged document.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level front-end configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level front-end settings.
	App ClientApp
	// Adapter contains host connection settings.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a front-end-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the front-end runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AuthKey: cfg.App.AuthKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
