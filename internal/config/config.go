package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-notify/internal/logger"
)

// Config holds the settings shared by every entrypoint of the binary.
type Config struct {
	// WebhookURL is the Slack incoming webhook that receives chat messages.
	WebhookURL string `yaml:"webhook_url"`
	// Timeout bounds a single webhook call. Zero means no deadline.
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is the minimum zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFormat selects the log encoder (console or json).
	LogFormat string `yaml:"log_format"`
}

const (
	// EnvWebhookURL names the variable holding the webhook URL.
	EnvWebhookURL = "SLACK_WEBHOOK_URL"
	// EnvTimeout names the variable holding the webhook call timeout.
	EnvTimeout = "WEBHOOK_TIMEOUT"
	// EnvLogLevel names the variable holding the log level.
	EnvLogLevel = "LOG_LEVEL"
	// EnvLogFormat names the variable holding the log format.
	EnvLogFormat = "LOG_FORMAT"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
	// DefaultLogFormat is used when no format is configured.
	DefaultLogFormat = string(logger.FormatJSON)
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNegativeTimeout is returned for timeouts below zero.
	errNegativeTimeout = errors.New("timeout must not be negative")
	// errUnknownLogLevel is returned for level names zap does not know.
	errUnknownLogLevel = errors.New("unknown log level")
	// errUnknownLogFormat is returned for unsupported encoder names.
	errUnknownLogFormat = errors.New("unknown log format")
)

// LookupFunc resolves an environment variable; os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// Load reads the optional YAML file at path, applies environment overrides and validates the result.
// An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup LookupFunc) (*Config, error) {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}

	if path != "" {
		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}

		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overwrites fields whose environment variable is set.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvWebhookURL); ok {
		cfg.WebhookURL = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		timeout, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}

		cfg.Timeout = timeout
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		cfg.LogFormat = v
	}

	return nil
}

// Validate checks the settings and fills defaults for empty optional fields.
// The webhook URL is deliberately not checked: a missing URL surfaces as a
// transport failure on the first delivery.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Timeout < 0 {
		return errNegativeTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, cfg.LogLevel)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	if _, ok := logger.ParseFormat(cfg.LogFormat); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogFormat, cfg.LogFormat)
	}

	return nil
}

// ApplyLogging configures the global logger from the settings.
func (c *Config) ApplyLogging() {
	level, _ := logger.ParseLogLevel(c.LogLevel)
	format, _ := logger.ParseFormat(c.LogFormat)

	logger.Setup(level, format)
}
