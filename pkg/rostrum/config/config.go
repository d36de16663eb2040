// Package config loads the application and route-table configuration from
// TOML. Routes declared here are registered on the navigator at Init.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root of the configuration file.
type Config struct {
	App    App     `toml:"app"`
	Routes []Route `toml:"route"`
}

// App holds application-wide settings.
type App struct {
	Title        string `toml:"title"`         // Window/document title
	LogPath      string `toml:"log_path"`      // Full path for the log file, including filename
	LogLevel     string `toml:"log_level"`     // debug, info, warn, error
	Locale       string `toml:"locale"`        // BCP 47 tag, e.g. "en", "de"
	MessagesPath string `toml:"messages_path"` // Path to the localized message file
}

// Route declares one entry of the route table.
type Route struct {
	Name     string `toml:"name"`     // Route name, unique within the table
	Path     string `toml:"path"`     // Path pattern, e.g. "/d/:id/:near?"
	Page     string `toml:"page"`     // Page kind, looked up in the embedder's page registry
	Resolver string `toml:"resolver"` // Resolver kind: "" or "default", or "discussion"
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates configuration from raw TOML.
func LoadBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the route table for the mistakes that would otherwise
// surface as confusing resolution behavior at runtime.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Routes))
	for i, r := range c.Routes {
		if r.Name == "" {
			return fmt.Errorf("config: route %d: name is required", i)
		}
		if _, dup := seen[r.Name]; dup {
			return fmt.Errorf("config: route %q: duplicate name", r.Name)
		}
		seen[r.Name] = struct{}{}

		if r.Path == "" {
			return fmt.Errorf("config: route %q: path is required", r.Name)
		}
		if r.Page == "" {
			return fmt.Errorf("config: route %q: page is required", r.Name)
		}
		switch r.Resolver {
		case "", "default", "discussion":
		default:
			return fmt.Errorf("config: route %q: unknown resolver %q", r.Name, r.Resolver)
		}
	}
	return nil
}
