// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate runs after merging. All meaningful rules depend on defaults,
// so they live on [ClientConfig]; the raw merged form is always accepted.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	// In offline mode the adapter never dials out, so no address is needed.
	if !cfg.App.Offline && cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.UsageFlushInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SessionTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
