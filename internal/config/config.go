// Package config loads the database connection configuration from the
// process environment, optionally seeded from a local .env file.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/hanaql/hanaql/internal/core/domain"
)

// envPrefix is the prefix of every recognized environment variable:
// HANA_HOST, HANA_PORT, HANA_USER, HANA_PASSWORD.
const envPrefix = "HANA_"

// Load reads the connection configuration. A .env file is loaded first
// when present; values already set in the process environment always
// win, and a missing default .env file is not an error. The returned
// config is validated: a missing required parameter fails with a
// configuration error before any connection is attempted.
func Load(envFile string, logger zerolog.Logger) (*domain.ConnectionConfig, error) {
	if envFile != "" {
		// An explicitly requested file must exist.
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("loaded .env file")
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := domain.NewConnectionConfig()
	cfg.Host = k.String("host")
	cfg.User = k.String("user")
	cfg.Password = k.String("password")

	if v := k.String("port"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, &domain.ConfigurationError{Param: "port", Detail: "must be an integer"}
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("missing required connection parameters")
		return nil, err
	}

	return cfg, nil
}
