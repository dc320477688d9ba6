package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Tidal   TidalConfig   `toml:"tidal" json:"tidal"`
	Discord DiscordConfig `toml:"discord" json:"discord"`
	Bridge  BridgeConfig  `toml:"bridge" json:"bridge"`
	Log     LogConfig     `toml:"log" json:"log"`
	Metrics MetricsConfig `toml:"metrics" json:"metrics"`
}

// TidalConfig holds settings for the Tidal Hi-Fi web API.
type TidalConfig struct {
	URL     string `toml:"url" json:"url"`
	Timeout int    `toml:"timeout" json:"timeout"` // seconds
}

// TimeoutDuration returns the request timeout as a time.Duration.
func (c TidalConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// DiscordConfig holds Discord Rich Presence settings.
type DiscordConfig struct {
	ClientID string `toml:"client_id" json:"client_id"`
}

// BridgeConfig holds polling and reconnect timing.
type BridgeConfig struct {
	PollInterval      int `toml:"poll_interval" json:"poll_interval"`           // seconds
	ReconnectInterval int `toml:"reconnect_interval" json:"reconnect_interval"` // seconds
}

// PollDuration returns the poll interval as a time.Duration.
func (c BridgeConfig) PollDuration() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

// ReconnectDuration returns the reconnect cooldown as a time.Duration.
func (c BridgeConfig) ReconnectDuration() time.Duration {
	return time.Duration(c.ReconnectInterval) * time.Second
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" json:"level"`
	Format string `toml:"format" json:"format"`
	File   string `toml:"file" json:"file"`
}

// MetricsConfig holds the Prometheus listener settings. An empty Listen
// address disables the endpoint.
type MetricsConfig struct {
	Listen string `toml:"listen" json:"listen"`
}
