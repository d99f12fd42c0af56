// Package config loads the instanote configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/poiesic/instanote/ai"
	"github.com/poiesic/instanote/fetch"
	"github.com/poiesic/instanote/resolve"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidTimeout   = errors.New("fetch.timeout_sec must be at least 1")
	ErrMissingMediaDir  = errors.New("media.dir is required")
	ErrNoCategories     = errors.New("ai.categories must not be empty")
	ErrInvalidSummary   = errors.New("ai.summary_length must be at least 1")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrMissingUserAgent = errors.New("fetch.user_agent is required")
)

// Config represents the complete instanote configuration.
type Config struct {
	AI      ai.Config     `yaml:"ai"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Media   MediaConfig   `yaml:"media"`
	Logging LoggingConfig `yaml:"logging"`
}

// FetchConfig controls page and media downloads.
type FetchConfig struct {
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// Timeout returns the per-request timeout.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSec) * time.Second
}

// MediaConfig controls where downloaded media are stored.
type MediaConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level        string `yaml:"level"`
	ShowProgress bool   `yaml:"show_progress"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		AI: *ai.DefaultConfig(),
		Fetch: FetchConfig{
			TimeoutSec: int(fetch.DefaultTimeout / time.Second),
			UserAgent:  fetch.DefaultUserAgent,
		},
		Media: MediaConfig{
			Dir: resolve.DefaultMediaDir(),
		},
		Logging: LoggingConfig{
			Level:        "info",
			ShowProgress: true,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on credentials.
// API keys are checked when the AI services are constructed, since they
// usually come from the environment.
func (c *Config) Validate() error {
	c.AI.Normalize()

	if len(c.AI.Categories) == 0 {
		return ErrNoCategories
	}
	if c.AI.SummaryLength < 1 {
		return ErrInvalidSummary
	}
	if c.Fetch.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}
	if strings.TrimSpace(c.Fetch.UserAgent) == "" {
		return ErrMissingUserAgent
	}
	if strings.TrimSpace(c.Media.Dir) == "" {
		return ErrMissingMediaDir
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
