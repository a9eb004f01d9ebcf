// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Listkeeper Contributors

// Package config loads server configuration from defaults, an optional
// YAML file, and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Default values applied before any file or flag overrides.
const (
	DefaultListenAddr  = "localhost:8080"
	DefaultMetricsAddr = "127.0.0.1:9100"
	DefaultTokenTTL    = "168h"
	DefaultCookieName  = "es_tkn"
	DefaultLogFormat   = "json"
)

// Config holds the full server configuration.
type Config struct {
	// ListenAddr is the address the HTTP API binds to.
	ListenAddr string `koanf:"listen-addr"`
	// MetricsAddr is the metrics/health HTTP address. Empty disables it.
	MetricsAddr string `koanf:"metrics-addr"`
	// DatabaseURL is the PostgreSQL connection string. Falls back to the
	// DATABASE_URL environment variable when unset.
	DatabaseURL string `koanf:"database-url"`
	// JWTSecret signs session tokens. Falls back to the
	// LISTKEEPER_JWT_SECRET environment variable when unset.
	JWTSecret string `koanf:"jwt-secret"`
	// TokenTTL is the session token lifetime as a Go duration string.
	TokenTTL string `koanf:"token-ttl"`
	// CookieName carries the session token on API requests.
	CookieName string `koanf:"cookie-name"`
	// LogFormat selects the slog output format, "json" or "text".
	LogFormat string `koanf:"log-format"`
	// AutoMigrate runs pending schema migrations on startup.
	AutoMigrate bool `koanf:"auto-migrate"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		ListenAddr:  DefaultListenAddr,
		MetricsAddr: DefaultMetricsAddr,
		TokenTTL:    DefaultTokenTTL,
		CookieName:  DefaultCookieName,
		LogFormat:   DefaultLogFormat,
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the given flag set. Flags that were explicitly set
// take precedence over file values.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_FILE_FAILED").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_DECODE_FAILED").Wrap(err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("LISTKEEPER_JWT_SECRET")
	}

	return cfg, nil
}

// Validate checks that the configuration is complete enough to serve.
func (cfg *Config) Validate() error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen-addr is required")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database-url is required (flag, config file, or DATABASE_URL)")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("jwt-secret is required (flag, config file, or LISTKEEPER_JWT_SECRET)")
	}
	if cfg.CookieName == "" {
		return fmt.Errorf("cookie-name must not be empty")
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("log-format must be 'json' or 'text', got %q", cfg.LogFormat)
	}
	ttl, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("token-ttl is not a valid duration: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("token-ttl must be positive, got %s", ttl)
	}
	return nil
}

// TokenLifetime returns the parsed token TTL. Call Validate first; an
// unparseable TTL returns zero.
func (cfg *Config) TokenLifetime() time.Duration {
	ttl, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return 0
	}
	return ttl
}
