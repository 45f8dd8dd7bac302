package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// unsetEnv removes variables for the duration of the test. An empty value
// would still be read by the env provider.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func cleanEnv(t *testing.T) {
	unsetEnv(t, LegacyAPIKeyEnv, EnvPrefix+"API_KEY", EnvPrefix+"API_BASE_URL", EnvPrefix+"API_LANG", EnvPrefix+"CITY", EnvPrefix+"DELAY")
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("city", "", "")
	fs.String("lang", "", "")
	fs.String("log-file", "", "")
	fs.BoolP("debug", "D", false, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load(flags(t), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultCity, cfg.City)
	assert.Equal(t, DefaultDelay, cfg.Delay)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultLang, cfg.API.Lang)
	assert.Zero(t, cfg.API.Timeout)
	assert.ErrorIs(t, cfg.RequireAPIKey(), ErrMissingAPIKey)
	assert.Equal(t, cfg, Current())
}

func TestLoadFileThenEnvThenFlags(t *testing.T) {
	cleanEnv(t)
	path := writeFile(t, "config.yaml", `
city: Bandung
delay: 250ms
api:
  key: from-file
  lang: en
  timeout: 5s
log:
  level: warn
`)

	cfg, err := Load(flags(t), path)
	require.NoError(t, err)
	assert.Equal(t, "Bandung", cfg.City)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	assert.Equal(t, "from-file", cfg.API.Key)
	assert.Equal(t, "en", cfg.API.Lang)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL, "unset nested keys keep defaults")
	assert.Equal(t, "warn", cfg.Log.Level)

	t.Setenv(LegacyAPIKeyEnv, "from-vite")
	cfg, err = Load(flags(t), path)
	require.NoError(t, err)
	assert.Equal(t, "from-vite", cfg.API.Key)

	t.Setenv(EnvPrefix+"API_KEY", "from-env")
	t.Setenv(EnvPrefix+"API_BASE_URL", "http://localhost:9999")
	t.Setenv(EnvPrefix+"CITY", "Surabaya")
	cfg, err = Load(flags(t), path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Key)
	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, "Surabaya", cfg.City)

	cfg, err = Load(flags(t, "--city", "Medan", "--debug", "--log-file", "/tmp/ww.log"), path)
	require.NoError(t, err)
	assert.Equal(t, "Medan", cfg.City)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/ww.log", cfg.Log.File)
	assert.Equal(t, "from-env", cfg.API.Key)
}

func TestLoadDotEnvFile(t *testing.T) {
	cleanEnv(t)

	path := writeFile(t, "weather.env", "API_KEY=dotenv-key\nCITY=Yogyakarta\n")

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.API.Key)
	assert.Equal(t, "Yogyakarta", cfg.City)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestLoadRejectsBadInput(t *testing.T) {
	cleanEnv(t)
	_, err := Load(nil, writeFile(t, "config.ini", "city=x"))
	assert.ErrorContains(t, err, "unknown file extension")

	_, err = Load(nil, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(flags(t, "--lang", "not a tag!"), "")
	assert.ErrorContains(t, err, "invalid api.lang")

	_, err = Load(nil, writeFile(t, "config.json", `{"delay": "-1s"}`))
	assert.ErrorContains(t, err, "delay")
}

func TestUnchangedFlagsDoNotOverride(t *testing.T) {
	cleanEnv(t)
	t.Setenv(EnvPrefix+"CITY", "Makassar")

	cfg, err := Load(flags(t), "")
	require.NoError(t, err)
	assert.Equal(t, "Makassar", cfg.City)
}

func TestLoadExpandsHomeInPaths(t *testing.T) {
	cleanEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "weather.yaml"), []byte("log:\n  file: ~/logs/weatherwidget.log\n"), 0o600))

	cfg, err := Load(nil, "~/weather.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "weatherwidget.log"), cfg.Log.File)
}
