// Package config provides configuration loading for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the application configuration. All fields are optional;
// missing values fall back to defaults or environment variables.
type Config struct {
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	DataDir    string `json:"data_dir,omitempty"`    // directory for the local blob store
	WebhookURL string `json:"webhook_url,omitempty"` // base URL of the external CV-analysis workflow
	SeedDemo   bool   `json:"seed_demo,omitempty"`   // create demo accounts when the registry is empty
	Verbose    bool   `json:"verbose,omitempty"`     // debug logging
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:       8080,
		DataDir:    ".careerscan",
		WebhookURL: "http://localhost:1234/webhook",
	}
}

// Load reads configuration from a JSON file. An empty path returns the
// defaults merged with the environment.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
// CAREERSCAN_PORT, CAREERSCAN_DATA_DIR and WEBHOOK_URL win over both
// defaults and the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("CAREERSCAN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CAREERSCAN_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.WebhookURL = v
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("config error: data_dir is empty")
	}
	if c.WebhookURL == "" {
		return fmt.Errorf("config error: webhook_url is empty")
	}
	return nil
}
