package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	require.Equal(t, "dev", cfg.Server.AppEnv)
	require.Equal(t, ":8080", cfg.Server.HTTPPort)
	require.Equal(t, "localhost", cfg.Postgres.Host)
	require.Equal(t, "5432", cfg.Postgres.Port)
	require.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	require.Equal(t, "./migrations", cfg.Postgres.MigrationsPath)
	require.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	require.Equal(t, ":9090", cfg.Server.HTTPPort)
	require.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	require.True(t, cfg.Logger.DisableCaller)
}

func TestLoadEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "not-a-number")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "not-a-bool")

	cfg := LoadEnv()

	require.Equal(t, 5, cfg.Postgres.MaxIdleConns)
	require.True(t, cfg.Logger.DisableStacktrace)
}
