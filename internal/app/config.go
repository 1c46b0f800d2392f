package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // string-table csv
	OutputPath string // tag list destination

	PipelinePath string // hcl manifest file or directory

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		if cfg.InputPath == "" {
			return nil, errors.New("InputPath is a required configuration field and cannot be empty")
		}
		if cfg.OutputPath == "" {
			return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
		}
	} else if cfg.InputPath != "" || cfg.OutputPath != "" {
		return nil, errors.New("PipelinePath cannot be combined with extraction paths")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
