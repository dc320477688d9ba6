package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/tessro/tidal-presence/internal/errors"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	if cfg.Tidal.URL != "http://localhost:47836" {
		t.Errorf("Tidal.URL = %q", cfg.Tidal.URL)
	}
	if cfg.Bridge.PollInterval != 15 || cfg.Bridge.ReconnectInterval != 30 || cfg.Tidal.Timeout != 5 {
		t.Errorf("unexpected timing defaults: %+v %+v", cfg.Bridge, cfg.Tidal)
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tidal]
url = "http://127.0.0.1:9000"

[bridge]
poll_interval = 5

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Tidal.URL != "http://127.0.0.1:9000" {
		t.Errorf("Tidal.URL = %q, want %q", cfg.Tidal.URL, "http://127.0.0.1:9000")
	}
	if cfg.Bridge.PollInterval != 5 {
		t.Errorf("PollInterval = %d, want 5", cfg.Bridge.PollInterval)
	}
	// Unset values fall back to defaults
	if cfg.Bridge.ReconnectInterval != 30 {
		t.Errorf("ReconnectInterval = %d, want 30", cfg.Bridge.ReconnectInterval)
	}
	if cfg.Discord.ClientID != DefaultClientID {
		t.Errorf("ClientID = %q, want %q", cfg.Discord.ClientID, DefaultClientID)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, perrors.ErrConfigNotFound) {
		t.Errorf("LoadFrom() error = %v, want ErrConfigNotFound", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TIDAL_PRESENCE_URL", "http://localhost:1234")
	t.Setenv("TIDAL_PRESENCE_CLIENT_ID", "42")
	t.Setenv("TIDAL_PRESENCE_POLL_INTERVAL", "3")
	t.Setenv("TIDAL_PRESENCE_RECONNECT_INTERVAL", "not-a-number")
	t.Setenv("TIDAL_PRESENCE_LOG_FORMAT", "json")

	cfg := Default()
	applyEnvOverrides(cfg)

	if cfg.Tidal.URL != "http://localhost:1234" {
		t.Errorf("Tidal.URL = %q", cfg.Tidal.URL)
	}
	if cfg.Discord.ClientID != "42" {
		t.Errorf("ClientID = %q", cfg.Discord.ClientID)
	}
	if cfg.Bridge.PollInterval != 3 {
		t.Errorf("PollInterval = %d, want 3", cfg.Bridge.PollInterval)
	}
	if cfg.Bridge.ReconnectInterval != 30 {
		t.Errorf("ReconnectInterval = %d, want unchanged 30", cfg.Bridge.ReconnectInterval)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad scheme", func(c *Config) { c.Tidal.URL = "ftp://localhost" }, true},
		{"missing host", func(c *Config) { c.Tidal.URL = "http://" }, true},
		{"zero timeout", func(c *Config) { c.Tidal.Timeout = 0 }, true},
		{"empty client id", func(c *Config) { c.Discord.ClientID = "" }, true},
		{"negative poll", func(c *Config) { c.Bridge.PollInterval = -1 }, true},
		{"zero reconnect", func(c *Config) { c.Bridge.ReconnectInterval = 0 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"metrics listen", func(c *Config) { c.Metrics.Listen = "127.0.0.1:9100" }, false},
		{"bad metrics listen", func(c *Config) { c.Metrics.Listen = "9100" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, perrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}
