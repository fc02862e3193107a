package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPaths     []string // .tex files or directories to search
	OutputDir      string   // must exist; graph.gv is written here
	ScanConfigPath string   // optional HCL scan configuration

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.InputPaths) == 0 {
		return nil, errors.New("at least one input path is required")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &cfg, nil
}
