package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emomoto/auto-recruiter/config"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET_KEY", testSecret)
	t.Setenv("APP_PORT", "3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, config.SessionStoreMemory, cfg.Auth.SessionStore)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SESSION_SECRET_KEY="+testSecret+"\nAPP_PORT=4100\n"), 0o600))
	// godotenv never overrides variables that are already set; make sure these are unset.
	t.Setenv("SESSION_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("SESSION_SECRET_KEY"))
	t.Setenv("APP_PORT", "")
	require.NoError(t, os.Unsetenv("APP_PORT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 4100, cfg.HTTP.Port)
	assert.Equal(t, testSecret, cfg.Auth.SessionSecret)
}

func TestLoadConfig_ShortSecretIsFatal(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET_KEY", "too-short")
	t.Setenv("APP_PORT", "3000")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET_KEY")
}

func TestLoadConfig_MissingPortIsFatal(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET_KEY", testSecret)
	t.Setenv("APP_PORT", "")
	require.NoError(t, os.Unsetenv("APP_PORT"))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "APP_PORT")
}

func TestLoadDBConfig_IgnoresGatewayVars(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SESSION_SECRET_KEY", "")
	require.NoError(t, os.Unsetenv("SESSION_SECRET_KEY"))
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")

	cfg, err := LoadDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
}
