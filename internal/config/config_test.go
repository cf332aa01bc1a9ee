package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "exam")
	t.Setenv("PG_PASSWORD", "exam")
	t.Setenv("PG_DATABASE", "exam_platform")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("GENERATOR_API_KEY", "test-key")
}

func TestLoadWithoutOptionalSecrets(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	// secrets and OAuth credentials may be absent; the auth wiring decides
	// at startup whether that is acceptable for the selected provider
	assert.Empty(t, cfg.Security.JWTSecret)
	assert.Empty(t, cfg.Security.JWTRefreshSecret)
	assert.Empty(t, cfg.OAuth.GoogleClientID)
	assert.Empty(t, cfg.OAuth.GoogleClientSecret)
	assert.Empty(t, cfg.OAuth.GoogleRedirectURL)
	assert.Equal(t, "jwt", cfg.Security.AuthProvider)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "exam-platform", cfg.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 90*time.Second, cfg.Generator.HTTPTimeout)
}

func TestLoadFailsOnMissingDatabaseHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PG_HOST", "")

	_, err := Load(context.Background())
	require.Error(t, err)
}
