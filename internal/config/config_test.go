package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// envMap builds a LookupFunc backed by a map.
func envMap(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]

		return v, ok
	}
}

// TestValidate checks defaults and rejected values.
func TestValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, Validate(nil))

	// Empty config gets defaults, missing webhook URL is accepted.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Equal(t, DefaultLogFormat, cfg.LogFormat)

	// Negative timeout.
	cfg = &Config{Timeout: -time.Second}
	require.ErrorIs(t, Validate(cfg), errNegativeTimeout)

	// Unknown level.
	cfg = &Config{LogLevel: "loud"}
	require.ErrorIs(t, Validate(cfg), errUnknownLogLevel)

	// Unknown format.
	cfg = &Config{LogFormat: "xml"}
	require.ErrorIs(t, Validate(cfg), errUnknownLogFormat)
}

// TestLoad_EnvOnly mirrors the Lambda setup where no file is given.
func TestLoad_EnvOnly(t *testing.T) {
	t.Parallel()

	cfg, err := load("", envMap(map[string]string{
		EnvWebhookURL: " https://hooks.slack.com/services/T000/B000/XXX ",
		EnvTimeout:    "3s",
		EnvLogLevel:   "debug",
	}))
	require.NoError(t, err)
	require.Equal(t, "https://hooks.slack.com/services/T000/B000/XXX", cfg.WebhookURL)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

// TestLoad_MissingWebhookURL ensures absence of the URL is not an error at startup.
func TestLoad_MissingWebhookURL(t *testing.T) {
	t.Parallel()

	cfg, err := load("", envMap(nil))
	require.NoError(t, err)
	require.Empty(t, cfg.WebhookURL)
	require.Zero(t, cfg.Timeout)
}

// TestLoad_FileThenEnv checks that environment variables win over the YAML file.
func TestLoad_FileThenEnv(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	contents := []byte("webhook_url: https://file.example/hook\ntimeout: 10s\nlog_format: console\n")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := load(path, envMap(nil))
	require.NoError(t, err)
	require.Equal(t, "https://file.example/hook", cfg.WebhookURL)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, "console", cfg.LogFormat)

	cfg, err = load(path, envMap(map[string]string{EnvWebhookURL: "https://env.example/hook"}))
	require.NoError(t, err)
	require.Equal(t, "https://env.example/hook", cfg.WebhookURL)
	require.Equal(t, 10*time.Second, cfg.Timeout)
}

// TestLoad_Errors covers unreadable files and malformed values.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := load(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	require.Error(t, err)

	_, err = load("", envMap(map[string]string{EnvTimeout: "soon"}))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: [1, 2"), 0o600))

	_, err = load(path, envMap(nil))
	require.Error(t, err)
}
