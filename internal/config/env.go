package config

import "os"

// LoadFromEnv loads configuration from environment variables
// Environment variables override default values
func LoadFromEnv(cfg *Config) {
	if display := os.Getenv("DISPLAY"); display != "" {
		cfg.Display = display
	}

	// Tool-specific override, so wrapper scripts can point this tool at
	// a different server than the rest of the session.
	if display := os.Getenv("XPRINTIDLE_DISPLAY"); display != "" {
		cfg.Display = display
	}
}

// New creates a new Config with default values and loads from environment
func New() *Config {
	cfg := Default()
	LoadFromEnv(cfg)
	return cfg
}
