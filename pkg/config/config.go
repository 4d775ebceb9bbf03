// Package config loads Ozone settings from a YAML file. Missing files
// and missing keys fall back to defaults, so a config file only needs
// the values it wants to change.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/karel66/Ozone/pkg/driver"
)

// Config represents the full Ozone configuration.
type Config struct {
	// Browser selects the engine: chromium, firefox, or webkit
	Browser string `yaml:"browser" json:"browser"`

	// Headless controls whether browsers run without a visible window
	Headless bool `yaml:"headless" json:"headless"`

	// FindTimeout is how long finders wait for an element to appear
	FindTimeout Duration `yaml:"find_timeout" json:"find_timeout"`

	// ExistsTimeout is the short wait used by existence probes
	ExistsTimeout Duration `yaml:"exists_timeout" json:"exists_timeout"`

	// Viewport sets the initial browser viewport size
	Viewport ViewportConfig `yaml:"viewport" json:"viewport"`

	// MaxSessions caps concurrent browser sessions
	MaxSessions int `yaml:"max_sessions" json:"max_sessions"`

	// IdleTimeout is how long a session may sit unused before cleanup
	IdleTimeout Duration `yaml:"idle_timeout" json:"idle_timeout"`

	// Retry configures the step retry helper
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// AllowURLs and DenyURLs are glob patterns for navigation policy.
	// Empty allow list admits every URL; deny wins over allow.
	AllowURLs []string `yaml:"allow_urls" json:"allow_urls"`
	DenyURLs  []string `yaml:"deny_urls" json:"deny_urls"`

	// LogDir overrides the run-log directory. Empty uses ~/.ozone/logs.
	LogDir string `yaml:"log_dir" json:"log_dir"`
}

// ViewportConfig represents the browser viewport dimensions.
type ViewportConfig struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// RetryConfig configures retry behavior for steps.
type RetryConfig struct {
	MaxAttempts  int      `yaml:"max_attempts" json:"max_attempts"`
	BaseDelay    Duration `yaml:"base_delay" json:"base_delay"`
	DelayOnFalse bool     `yaml:"delay_on_false" json:"delay_on_false"`
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		Browser:       "chromium",
		Headless:      true,
		FindTimeout:   Duration(10 * time.Second),
		ExistsTimeout: Duration(500 * time.Millisecond),
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		MaxSessions: 5,
		IdleTimeout: Duration(5 * time.Minute),
		Retry: RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   Duration(200 * time.Millisecond),
		},
	}
}

// Load reads configuration from a YAML file. A missing file is not an
// error; it yields the defaults unchanged.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := driver.ParseKind(c.Browser); err != nil {
		return err
	}

	if c.FindTimeout <= 0 {
		return fmt.Errorf("find_timeout must be positive")
	}

	if c.ExistsTimeout <= 0 {
		return fmt.Errorf("exists_timeout must be positive")
	}

	if c.IdleTimeout <= 0 {
		return fmt.Errorf("idle_timeout must be positive")
	}

	if c.MaxSessions < 1 {
		return fmt.Errorf("max_sessions must be at least 1")
	}

	if c.Viewport.Width < 1 || c.Viewport.Height < 1 {
		return fmt.Errorf("viewport dimensions must be positive")
	}

	// Retry attempts are clamped at use; only reject nonsense here.
	if c.Retry.MaxAttempts < 0 {
		return fmt.Errorf("retry max_attempts cannot be negative")
	}

	if c.Retry.BaseDelay < 0 {
		return fmt.Errorf("retry base_delay cannot be negative")
	}

	return nil
}

// Kind returns the configured browser engine. Call Validate first;
// unknown values fall back to chromium here.
func (c *Config) Kind() driver.Kind {
	kind, err := driver.ParseKind(c.Browser)
	if err != nil {
		return driver.Chromium
	}
	return kind
}
