// Package app wires the refgraph pipeline together: input discovery, LaTeX
// parsing, the reference scan, graph assembly, and DOT output.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/refgraph/internal/ctxlog"
	"github.com/vk/refgraph/internal/scanconfig"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	scanConf *scanconfig.Config
}

// NewApp is the constructor for the main application. It builds the
// application's own isolated logger and loads the scan configuration.
func NewApp(outW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	scanConf := scanconfig.Default()
	if cfg.ScanConfigPath != "" {
		loaded, err := scanconfig.Load(ctx, cfg.ScanConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load scan configuration: %w", err)
		}
		scanConf = loaded
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		scanConf: scanConf,
	}, nil
}

// ScanConfig returns the active scan configuration. This is primarily for
// testing.
func (a *App) ScanConfig() *scanconfig.Config {
	return a.scanConf
}
