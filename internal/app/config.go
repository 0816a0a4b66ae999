package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ScalePath optionally points at a grading-scale .hcl file or a
	// directory of them. Empty means the built-in scale.
	ScalePath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		return nil, errors.New("LogFormat is a required configuration field and cannot be empty")
	}
	if cfg.LogLevel == "" {
		return nil, errors.New("LogLevel is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
