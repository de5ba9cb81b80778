package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/gw2tracker/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
api:
  page_size: 100
  workers: 8
  timeout: 10s
storage:
  data_dir: /var/lib/gw2
tracker:
  locale: DE
  reset_check_interval: 30s
  catalog: /etc/gw2/catalog.yml
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 100, cfg.API.PageSize)
		assert.Equal(t, 8, cfg.API.Workers)
		assert.Equal(t, 10*time.Second, cfg.API.Timeout)
		assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
		assert.Equal(t, "/var/lib/gw2", cfg.Storage.DataDir)
		assert.Equal(t, "file:/var/lib/gw2/gw2tracker.db?cache=shared&mode=rwc&_txlock=immediate", cfg.DSN())
		assert.Equal(t, domain.Locale("de"), cfg.Locale())
		assert.Equal(t, 30*time.Second, cfg.Tracker.ResetCheckInterval)
		assert.Equal(t, "/etc/gw2/catalog.yml", cfg.Tracker.Catalog)
		assert.Equal(t, filepath.Join("/var/lib/gw2", "items"), cfg.ItemsDir())
		assert.Equal(t, filepath.Join("/var/lib/gw2", "user", "events.json"), cfg.UserDataPath("events"))
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)
		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 200, cfg.API.PageSize)
		assert.Equal(t, "gw2tracker/1.0", cfg.API.UserAgent)
		assert.Equal(t, "data", cfg.Storage.DataDir)
		assert.Equal(t, 4, cfg.Storage.MaxOpenConns)
		assert.Equal(t, time.Hour, cfg.Storage.ConnMaxLifetime)
		assert.Equal(t, domain.DefaultLocale, cfg.Locale())
		assert.Equal(t, time.Minute, cfg.Tracker.ResetCheckInterval)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("GW2_DATA", "/tmp/gw2data")
		cfg, err := Load(writeConfig(t, "storage:\n  data_dir: ${GW2_DATA}\n"))
		require.NoError(t, err)
		assert.Equal(t, "/tmp/gw2data", cfg.Storage.DataDir)
	})

	t.Run("explicit dsn", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "storage:\n  dsn: \"file::memory:\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "file::memory:", cfg.DSN())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{name: "short server timeout", yaml: "server:\n  timeout: 100ms\n", err: "server timeout"},
		{name: "page size too big", yaml: "api:\n  page_size: 500\n", err: "api.page_size"},
		{name: "negative workers", yaml: "api:\n  workers: -1\n", err: "api.workers"},
		{name: "short api timeout", yaml: "api:\n  timeout: 1ms\n", err: "api timeout"},
		{name: "bad locale", yaml: "tracker:\n  locale: xx\n", err: "tracker.locale"},
		{name: "short reset interval", yaml: "tracker:\n  reset_check_interval: 1ms\n", err: "reset_check_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate(cfg))
	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 30*time.Second, timeout)
	assert.Equal(t, "file:data/gw2tracker.db?cache=shared&mode=rwc&_txlock=immediate", cfg.DSN())
}
