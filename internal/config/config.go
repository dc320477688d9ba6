package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	perrors "github.com/tessro/tidal-presence/internal/errors"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.tidal-presence.toml, $XDG_CONFIG_HOME/tidal-presence/config.toml, ~/.config/tidal-presence/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", perrors.ErrConfigNotFound, path)
		}
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".tidal-presence.toml"),
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "tidal-presence", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Tidal
	if v := os.Getenv("TIDAL_PRESENCE_URL"); v != "" {
		cfg.Tidal.URL = v
	}
	if v := os.Getenv("TIDAL_PRESENCE_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Tidal.Timeout = i
		}
	}

	// Discord
	if v := os.Getenv("TIDAL_PRESENCE_CLIENT_ID"); v != "" {
		cfg.Discord.ClientID = v
	}

	// Bridge
	if v := os.Getenv("TIDAL_PRESENCE_POLL_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Bridge.PollInterval = i
		}
	}
	if v := os.Getenv("TIDAL_PRESENCE_RECONNECT_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Bridge.ReconnectInterval = i
		}
	}

	// Log
	if v := os.Getenv("TIDAL_PRESENCE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TIDAL_PRESENCE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TIDAL_PRESENCE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	// Metrics
	if v := os.Getenv("TIDAL_PRESENCE_METRICS_LISTEN"); v != "" {
		cfg.Metrics.Listen = v
	}
}
