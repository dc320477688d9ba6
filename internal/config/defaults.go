package config

const (
	// DefaultTidalURL is where Tidal Hi-Fi serves its local API.
	DefaultTidalURL = "http://localhost:47836"

	// DefaultClientID is the Discord application that owns the presence assets.
	DefaultClientID = "1417674368380829776"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Tidal: TidalConfig{
			URL:     DefaultTidalURL,
			Timeout: 5,
		},
		Discord: DiscordConfig{
			ClientID: DefaultClientID,
		},
		Bridge: BridgeConfig{
			PollInterval:      15,
			ReconnectInterval: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Tidal
	if c.Tidal.URL == "" {
		c.Tidal.URL = d.Tidal.URL
	}
	if c.Tidal.Timeout == 0 {
		c.Tidal.Timeout = d.Tidal.Timeout
	}

	// Discord
	if c.Discord.ClientID == "" {
		c.Discord.ClientID = d.Discord.ClientID
	}

	// Bridge
	if c.Bridge.PollInterval == 0 {
		c.Bridge.PollInterval = d.Bridge.PollInterval
	}
	if c.Bridge.ReconnectInterval == 0 {
		c.Bridge.ReconnectInterval = d.Bridge.ReconnectInterval
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}
