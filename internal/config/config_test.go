package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sigma.db", cfg.DB.Path)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Cycle.CheckInterval)
	assert.Equal(t, 5*time.Second, cfg.Stream.Interval)
	assert.False(t, cfg.Maintenance.MarksCompleted)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := `port: "9090"
db:
  path: /var/lib/sigma/sigma.db
auth:
  signing_key: from-file
  token_ttl: 30m
  admin:
    matricula: srchicano
    password: admin
    full_name: SR CHICANO
cycle:
  check_interval: 10m
maintenance:
  marks_completed: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	t.Setenv("SIGMA_AUTH_SIGNING_KEY", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/sigma/sigma.db", cfg.DB.Path)
	assert.Equal(t, "from-env", cfg.Auth.SigningKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "srchicano", cfg.Auth.Admin.Matricula)
	assert.Equal(t, "SR CHICANO", cfg.Auth.Admin.FullName)
	assert.Equal(t, 10*time.Minute, cfg.Cycle.CheckInterval)
	assert.True(t, cfg.Maintenance.MarksCompleted)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("port: [unterminated"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
