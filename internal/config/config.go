// Package config provides configuration types, defaults, and persistence
// for the quench command-line tools.
package config

import (
	"fmt"
	"time"
)

// Config holds all configuration options for quench.
type Config struct {
	SchemaPath    string        `mapstructure:"schema_path"`    // default schema file used by validate/fmt/watch
	LogFile       string        `mapstructure:"log_file"`       // debug log destination; empty disables file logging
	Debug         bool          `mapstructure:"debug"`          // enable debug logging
	WatchDebounce time.Duration `mapstructure:"watch_debounce"` // debounce between change and revalidation
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		SchemaPath:    "schema.yaml",
		LogFile:       "",
		Debug:         false,
		WatchDebounce: 500 * time.Millisecond,
	}
}

// Validate checks configuration consistency.
func (c Config) Validate() error {
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce cannot be negative")
	}
	if c.SchemaPath == "" {
		return fmt.Errorf("schema_path cannot be empty")
	}
	return nil
}
