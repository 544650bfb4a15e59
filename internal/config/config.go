// Package config reads the server's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Server is the process configuration.
type Server struct {
	Addr        string `env:"GRADQUEST_ADDR" envDefault:":8080"`
	BalancePath string `env:"GRADQUEST_BALANCE"`
	// Seed fixes the map and card RNG for every run; 0 draws a fresh seed.
	Seed     uint64 `env:"GRADQUEST_SEED" envDefault:"0"`
	LogLevel string `env:"GRADQUEST_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the server configuration.
func Load() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if _, err := cfg.Level(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Level parses LogLevel.
func (s Server) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}
