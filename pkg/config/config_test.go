package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karel66/Ozone/pkg/driver"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ozone.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "chromium", cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 10*time.Second, cfg.FindTimeout.Duration())
	assert.Equal(t, 500*time.Millisecond, cfg.ExistsTimeout.Duration())
	assert.Equal(t, 1280, cfg.Viewport.Width)
	assert.Equal(t, 720, cfg.Viewport.Height)
	assert.Equal(t, 5, cfg.MaxSessions)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout.Duration())
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Retry.BaseDelay.Duration())
	assert.False(t, cfg.Retry.DelayOnFalse)
	assert.Empty(t, cfg.AllowURLs)
	assert.Empty(t, cfg.DenyURLs)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
browser: firefox
headless: false
find_timeout: 2s
viewport: {width: 800, height: 600}
retry:
  max_attempts: 5
  base_delay: 50ms
  delay_on_false: true
deny_urls:
  - "*/admin/*"
log_dir: /tmp/ozone-logs
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "firefox", cfg.Browser)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 2*time.Second, cfg.FindTimeout.Duration())
	assert.Equal(t, 800, cfg.Viewport.Width)
	assert.Equal(t, 600, cfg.Viewport.Height)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 50*time.Millisecond, cfg.Retry.BaseDelay.Duration())
	assert.True(t, cfg.Retry.DelayOnFalse)
	assert.Equal(t, []string{"*/admin/*"}, cfg.DenyURLs)
	assert.Equal(t, "/tmp/ozone-logs", cfg.LogDir)

	// Untouched keys keep their defaults.
	assert.Equal(t, 500*time.Millisecond, cfg.ExistsTimeout.Duration())
	assert.Equal(t, 5, cfg.MaxSessions)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "browser: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, "find_timeout: soon")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid duration "soon"`)
}

func TestDurationForms(t *testing.T) {
	path := writeConfig(t, `
find_timeout: 1.5s
exists_timeout: 250000000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, cfg.FindTimeout.Duration())
	assert.Equal(t, 250*time.Millisecond, cfg.ExistsTimeout.Duration())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown browser",
			mutate:  func(c *Config) { c.Browser = "ie" },
			wantErr: "unsupported browser kind",
		},
		{
			name:    "zero find timeout",
			mutate:  func(c *Config) { c.FindTimeout = 0 },
			wantErr: "find_timeout must be positive",
		},
		{
			name:    "zero exists timeout",
			mutate:  func(c *Config) { c.ExistsTimeout = 0 },
			wantErr: "exists_timeout must be positive",
		},
		{
			name:    "zero idle timeout",
			mutate:  func(c *Config) { c.IdleTimeout = 0 },
			wantErr: "idle_timeout must be positive",
		},
		{
			name:    "zero max sessions",
			mutate:  func(c *Config) { c.MaxSessions = 0 },
			wantErr: "max_sessions must be at least 1",
		},
		{
			name:    "zero viewport width",
			mutate:  func(c *Config) { c.Viewport.Width = 0 },
			wantErr: "viewport dimensions must be positive",
		},
		{
			name:    "negative retry attempts",
			mutate:  func(c *Config) { c.Retry.MaxAttempts = -1 },
			wantErr: "retry max_attempts cannot be negative",
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.Retry.BaseDelay = Duration(-time.Second) },
			wantErr: "retry base_delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestKind(t *testing.T) {
	cfg := Default()
	assert.Equal(t, driver.Chromium, cfg.Kind())

	cfg.Browser = "WebKit"
	assert.Equal(t, driver.WebKit, cfg.Kind())

	cfg.Browser = "netscape"
	assert.Equal(t, driver.Chromium, cfg.Kind())
}
