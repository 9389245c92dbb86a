package config

import "fmt"

// OutputMode selects the presentation of the idle duration.
type OutputMode string

const (
	OutputRaw   OutputMode = "raw"
	OutputHuman OutputMode = "human"
)

// Config holds all application configuration
type Config struct {
	// Display is the X server to query, in ":0" form. It is resolved
	// here at the boundary and passed explicitly into the query layer,
	// which performs no environment reads of its own.
	Display string

	// Output selects raw or human-readable rendering.
	Output OutputMode
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Display: ":0",
		Output:  OutputRaw,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Display == "" {
		return fmt.Errorf("display cannot be empty")
	}

	switch c.Output {
	case OutputRaw, OutputHuman:
	default:
		return fmt.Errorf("unknown output mode %q", c.Output)
	}

	return nil
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`Configuration:
  Display: %s
  Output: %s`,
		c.Display,
		c.Output,
	)
}
