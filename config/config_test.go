package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSettings(t *testing.T) {
	cfg := &Config{}
	cfg.Auth.JWTSecret = "secret"

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, EnvDevelopment, cfg.Env.Env)
	assert.Equal(t, 90*24*time.Hour, cfg.Auth.JWTExpiresIn)
	assert.Equal(t, 90*24*time.Hour, cfg.Auth.CookieExpiresIn)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "@every 10m", cfg.Auth.PurgeSchedule)
	assert.Equal(t, 100, cfg.HTTP.RateLimit.Requests)
	assert.Equal(t, time.Hour, cfg.HTTP.RateLimit.Window)
	assert.False(t, cfg.IsProduction())
}

func TestApplyDefaults_RequiresSecret(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwtSecret")
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: development
http:
  port: 3000
auth:
  jwtSecret: from-yaml
  jwtExpiresIn: 1h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))

	t.Chdir(dir)
	t.Setenv("AUTH_JWTSECRET", "from-env")
	t.Setenv("ENV_ENV", "production")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Hour, cfg.Auth.JWTExpiresIn)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.True(t, cfg.IsProduction())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
