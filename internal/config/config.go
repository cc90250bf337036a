// Package config loads settings for the gocache demo.
package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config holds demo settings.
//
// Precedence: built-in defaults, then GOCACHE_* environment variables, then flags.
type Config struct {
	Capacity    int    `env:"GOCACHE_CAPACITY" envDefault:"3"`
	MetricsAddr string `env:"GOCACHE_METRICS_ADDR" envDefault:":9090"`
	LogLevel    string `env:"GOCACHE_LOG_LEVEL" envDefault:"info"`
	Serve       bool   `env:"GOCACHE_SERVE" envDefault:"false"`
}

var logLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

// Load reads the environment, then parses args (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	flags := pflag.NewFlagSet("gocache", pflag.ContinueOnError)
	flags.IntVar(&cfg.Capacity, "capacity", cfg.Capacity, "Maximum number of cache entries")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Address to serve /metrics on when --serve is set")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.BoolVar(&cfg.Serve, "serve", cfg.Serve, "Keep running and serve Prometheus metrics until interrupted")
	if err := flags.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return errors.Errorf("capacity must be at least 1, got %d", c.Capacity)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Serve && c.MetricsAddr == "" {
		return errors.New("metrics address is required with --serve")
	}
	return nil
}
