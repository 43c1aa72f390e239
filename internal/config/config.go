// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// paperdesk client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session lifetime and
	// the offline (mock backend) switch.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the outbound backend transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionTTL is how long a persisted session stays valid locally
	// before the client discards it and asks the user to log in again.
	// The mock backend default is 7 days; against a real backend 24h is
	// the recommended value.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// Offline switches the client onto the in-process mock backend with
	// its static user table and canned catalog. No network I/O happens
	// in this mode.
	// Env: APP_OFFLINE
	Offline bool `env:"OFFLINE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the local database
	// (e.g. "paperdesk.db" or an absolute path).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds network settings for the outbound backend transport.
type Adapter struct {
	// BaseURL is the HTTP endpoint of the paper-archive backend
	// (e.g. "https://api.example.org"). Ignored in offline mode.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// UsageFlushInterval defines how often accumulated active-session
	// time is flushed into the daily usage store.
	// Env: WORKERS_USAGE_FLUSH_INTERVAL
	UsageFlushInterval time.Duration `env:"USAGE_FLUSH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Environment variables take priority over flags, flags
// over the optional JSON file; the file path itself comes from the first
// two sources (CONFIG env or -c/-config flag).
func GetStructuredConfig() (*StructuredConfig, error) {
	envCfg := new(StructuredConfig)
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	flagCfg := ParseFlags()

	layers := []*StructuredConfig{envCfg, flagCfg}
	if path := jsonPathFrom(envCfg, flagCfg); path != "" {
		jsonCfg, err := parseJSON(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, jsonCfg)
	}

	return mergeLayers(layers...)
}
