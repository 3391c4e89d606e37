package config_test

import (
	"atsconnect/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsAndYaml(t *testing.T) {
	path := writeFile(t, "config.yml", `
environment: production
integrations:
  encryptionKey: from-yaml
webhooks:
  product: Acme
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "from-yaml", cfg.Integrations.EncryptionKey)
	require.Equal(t, "Acme", cfg.Webhooks.Product)
	require.Equal(t, 30*time.Second, cfg.Webhooks.Timeout)
	require.Equal(t, 4, cfg.Webhooks.MaxAttempts)
	require.Equal(t, time.Minute, cfg.Webhooks.BaseRetryDelay)
	require.Equal(t, 1000, cfg.Webhooks.ResponseBodyLimit)
	require.Equal(t, 10*time.Minute, cfg.Receiver.ReplayWindow)
	require.Equal(t, "*/5 * * * *", cfg.Integrations.TokenRefreshSchedule)
}

func TestLoad_EnvFileOverridesYaml(t *testing.T) {
	path := writeFile(t, "config.yml", `
integrations:
  encryptionKey: from-yaml
`)
	envFile := writeFile(t, ".env", "WEBHOOKS_MAX_ATTEMPTS=6\nINTEGRATIONS_ENCRYPTION_KEY=from-env\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("WEBHOOKS_MAX_ATTEMPTS")
		_ = os.Unsetenv("INTEGRATIONS_ENCRYPTION_KEY")
	})

	cfg, err := config.Load(path, envFile)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Webhooks.MaxAttempts)
	require.Equal(t, "from-env", cfg.Integrations.EncryptionKey)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing encryption key", func(t *testing.T) {
		path := writeFile(t, "config.yml", "environment: test\n")
		_, err := config.Load(path)
		require.Error(t, err)
	})

	t.Run("invalid attempts", func(t *testing.T) {
		path := writeFile(t, "config.yml", `
integrations:
  encryptionKey: k
webhooks:
  maxAttempts: -1
`)
		_, err := config.Load(path)
		require.ErrorContains(t, err, "maxAttempts")
	})

	t.Run("missing env file", func(t *testing.T) {
		path := writeFile(t, "config.yml", "integrations:\n  encryptionKey: k\n")
		_, err := config.Load(path, filepath.Join(t.TempDir(), "nope.env"))
		require.ErrorContains(t, err, "env files")
	})
}
