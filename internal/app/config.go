package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestPath string // hcl file or directory of hcl files

	LogFormat string
	LogLevel  string
	Output    string // "json" or "env"
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}

	if cfg.Output == "" {
		cfg.Output = "json"
	}
	if cfg.Output != "json" && cfg.Output != "env" {
		return nil, fmt.Errorf("invalid output format %q: must be 'json' or 'env'", cfg.Output)
	}

	return &cfg, nil
}
