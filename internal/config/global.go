// Package config loads global devup settings.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GlobalConfig holds global devup settings from ~/.devup/config.yaml.
type GlobalConfig struct {
	Network string      `yaml:"network"`
	Debug   DebugConfig `yaml:"debug"`
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	RetentionDays int `yaml:"retention-days"`
}

// DefaultGlobalConfig returns the default global configuration.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Network: "cont_net",
		Debug: DebugConfig{
			RetentionDays: 7,
		},
	}
}

// LoadGlobal reads ~/.devup/config.yaml and applies environment overrides.
func LoadGlobal() (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".devup", "config.yaml")
		if data, err := os.ReadFile(configPath); err == nil {
			_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
		}
	}

	// Apply environment overrides
	if network := os.Getenv("DEVUP_NETWORK"); network != "" {
		cfg.Network = network
	}
	if daysStr := os.Getenv("DEVUP_DEBUG_RETENTION_DAYS"); daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil {
			cfg.Debug.RetentionDays = days
		}
	}

	return cfg, nil
}

// GlobalConfigDir returns the path to ~/.devup.
func GlobalConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".devup")
	}
	return filepath.Join(homeDir, ".devup")
}
