package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server backend base URL
//	-d local database path
//	-c/-config json file path with configs
//	-offline use the in-process mock backend
//	-session-ttl persisted session lifetime (e.g., "168h", "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-usage-flush-interval usage flush period (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var offline bool
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var usageFlushInterval time.Duration

	flag.StringVar(&serverURL, "server", "", "Backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.BoolVar(&offline, "offline", false, "Use the in-process mock backend")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Persisted session lifetime (e.g., 168h, 24h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&usageFlushInterval, "usage-flush-interval", 0, "Usage flush period (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTTL: sessionTTL,
			Offline:    offline,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			UsageFlushInterval: usageFlushInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
