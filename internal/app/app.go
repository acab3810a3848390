package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/envcast"
	"github.com/specialistvlad/envcast/internal/ctxlog"
	"github.com/specialistvlad/envcast/internal/envtable"
	"github.com/specialistvlad/envcast/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Resolved records go
// to outW; logs go to logW so the record stream stays machine-readable.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}

// Run executes one resolve pass: load the manifest, snapshot the process
// environment, resolve, and print the record. Resolution errors come back
// verbatim; they are the user-facing diagnostic.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	loaded, err := manifest.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	a.logger.Debug("Manifest loaded.", "variables", len(loaded.Keys))

	record, err := envcast.Resolve(loaded.Keys, envtable.Snapshot(), loaded.Options)
	if err != nil {
		return err
	}
	a.logger.Debug("Environment resolved.", "keys", record.Len())

	return a.printRecord(record)
}

func (a *App) printRecord(record *envcast.Record) error {
	if a.config.Output == "env" {
		for _, key := range record.Keys() {
			if _, err := fmt.Fprintf(a.outW, "%s=%v\n", key, record.Value(key)); err != nil {
				return err
			}
		}
		return nil
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(record.AsMap())
}
