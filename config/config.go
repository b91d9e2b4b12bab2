package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config carries the ambient settings of the analyzer. Values come from
// ANNOTATOR_* environment variables; the command line itself stays a
// single positional directory argument.
type Config struct {
	Extension    string `envconfig:"EXTENSION" default:".rs3"`
	ReportSuffix string `envconfig:"REPORT_SUFFIX" default:"_analysis.txt"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogJSON      bool   `envconfig:"LOG_JSON" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("annotator", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// InitLogging applies the configured level and format to the global
// logger.
func (c Config) InitLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	log.SetLevel(level)
	if c.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}
