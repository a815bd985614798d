package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curtishsu/travelog/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/travelog")
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MAX_BODY_BYTES", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, "postgres://localhost/travelog", cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/travelog")
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://travelog.example.com, https://staging.example.com")
	t.Setenv("MAX_BODY_BYTES", "2097152")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://travelog.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, int64(2097152), cfg.MaxBodyBytes)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_InvalidMaxBodyBytesFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/travelog")
	t.Setenv("MAX_BODY_BYTES", "not-a-number")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoad_NegativeMaxBodyBytesFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/travelog")
	t.Setenv("MAX_BODY_BYTES", "-5")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}
