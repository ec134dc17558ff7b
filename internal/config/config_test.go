package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Adda-Baaj/newsfeed/internal/config"
	"github.com/Adda-Baaj/newsfeed/pkg/providers"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsfeed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "https://content.guardianapis.com/search", cfg.API.BaseURL)
	require.Equal(t, "test", cfg.API.Key)
	require.Equal(t, "contributor", cfg.API.ShowTags)
	require.Equal(t, 10, cfg.API.PageSize)
	require.Equal(t, 15*time.Second, cfg.HTTP.ConnectTimeout)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.NotEmpty(t, cfg.Preferences.Path)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	chdirTemp(t)
	path := writeTempConfig(t, `
api:
  key: from-file
  page_size: 25
  headers:
    X-Client: cli
http:
  read_timeout: 4s
log:
  level: debug
`)
	t.Setenv("NEWSFEED_API_KEY", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.API.Key)
	require.Equal(t, 25, cfg.API.PageSize)
	require.Equal(t, 4*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, "debug", cfg.Log.Level)

	p := cfg.Provider()
	require.Equal(t, providers.GuardianProviderID, p.ID)
	require.Equal(t, "from-env", p.APIKey)
	require.Equal(t, "cli", p.Headers["x-client"])
}

func TestLoadDotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("NEWSFEED_API_KEY=dotenv-key\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("NEWSFEED_API_KEY") })

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "dotenv-key", cfg.API.Key)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load("/nonexistent/newsfeed.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := config.Config{
		API:         config.APIConfig{BaseURL: "https://example.com/search", PageSize: 10},
		HTTP:        config.HTTPConfig{ConnectTimeout: time.Second, ReadTimeout: time.Second},
		Preferences: config.PreferencesConfig{Path: "prefs.db"},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.API.PageSize = 500
	require.Error(t, bad.Validate())

	bad = base
	bad.API.BaseURL = ""
	require.Error(t, bad.Validate())

	bad = base
	bad.HTTP.ReadTimeout = 0
	require.Error(t, bad.Validate())
}
