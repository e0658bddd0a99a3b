// ABOUTME: Configuration for the remote Memos server connection.
// ABOUTME: Handles defaults, the YAML config file, and XDG config paths.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the Memos server connection parameters. It is built once at
// startup and never mutated afterwards.
type Config struct {
	// Host is the Memos server host name (default: localhost).
	Host string `yaml:"host"`

	// Port is the Memos server gRPC port (default: 8080).
	Port int `yaml:"port"`

	// Token is the bearer token attached to every request. Empty means
	// unauthenticated.
	Token string `yaml:"token,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host: "localhost",
		Port: 8080,
	}
}

// Addr returns the gRPC dial target for the configured server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "memos-mcp")
}

// ConfigPath returns the path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads configuration from path, returning defaults if no file exists.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}
