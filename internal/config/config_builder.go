package config

import (
	"fmt"

	"dario.cat/mergo"
)

// mergeLayers folds configuration layers left to right with mergo. Merge
// only fills zero fields, so the earliest layer that sets a value wins.
func mergeLayers(layers ...*StructuredConfig) (*StructuredConfig, error) {
	merged := new(StructuredConfig)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}

// jsonPathFrom returns the first JSON config path named by the given
// layers, or "" when none of them points at a file.
func jsonPathFrom(layers ...*StructuredConfig) string {
	for _, layer := range layers {
		if layer != nil && layer.JSONFilePath != "" {
			return layer.JSONFilePath
		}
	}

	return ""
}
