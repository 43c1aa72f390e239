package config

import (
	"fmt"
	"time"
)

// Client defaults applied by [GetClientConfig] when a value is not supplied
// by any source.
const (
	// DefaultSessionTTL keeps a persisted session for a week, matching the
	// mock backend's cookie lifetime. Deployments against a real backend
	// should shorten it to 24h.
	DefaultSessionTTL = 7 * 24 * time.Hour

	// DefaultRequestTimeout bounds every outbound backend call.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultUsageFlushInterval is how often active time is persisted.
	DefaultUsageFlushInterval = time.Minute

	// DefaultDSN is the local database file next to the working directory.
	DefaultDSN = "paperdesk.db"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SessionTTL is the lifetime of a persisted session.
	SessionTTL time.Duration
	// Offline selects the in-process mock backend.
	Offline bool
	// Version is the application version string.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HTTP endpoint of the backend.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// UsageFlushInterval defines how often the usage flush job should run.
	UsageFlushInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in client defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionTTL: cfg.App.SessionTTL,
			Offline:    cfg.App.Offline,
			Version:    cfg.App.Version,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{UsageFlushInterval: cfg.Workers.UsageFlushInterval},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = DefaultSessionTTL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.UsageFlushInterval == 0 {
		cfg.Workers.UsageFlushInterval = DefaultUsageFlushInterval
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
}
