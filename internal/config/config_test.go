package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wangserena1960-stack/fitcircle-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	yaml := `
env: test
server:
  port: "9090"
  read_timeout_seconds: 5
database:
  host: db.internal
  port: "5432"
  user: fitcircle
  name: fitcircle
  ssl_mode: disable
nats:
  url: nats://broker:4222
  subject_prefix: fitcircle
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.test.yaml"), []byte(yaml), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("ENV", "test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "nats://broker:4222", cfg.NATS.URL)
	assert.Equal(t, "fitcircle", cfg.NATS.SubjectPrefix)
}

func TestLoad_EnvOverridesCredentials(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	yaml := `
env: test
database:
  user: from-file
  password: from-file
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.test.yaml"), []byte(yaml), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("ENV", "test")
	t.Setenv("DB_USER", "from-env")
	t.Setenv("DB_PASSWORD", "secret-from-env")
	t.Setenv("JWT_SECRET", "signing-key-from-env")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.User)
	assert.Equal(t, "secret-from-env", cfg.Database.Password)
	assert.Equal(t, "signing-key-from-env", cfg.Auth.JWTSecret)
}
