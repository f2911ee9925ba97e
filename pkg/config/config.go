// Package config persists user preferences for the CLI. Engine tunables and
// scan defaults live in a single JSON file under the home directory; flags
// always win over file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"guesslex/pkg/classifier"
)

const (
	LocalConfigDir  = ".guesslex"
	LocalConfigFile = "config.json"

	PermDirectory  = 0o755
	PermConfigFile = 0o644
)

// Config mirrors the on-disk JSON document. Zero values mean "use the
// documented default".
type Config struct {
	Normalization      float64 `json:"normalization,omitempty"`
	ExtensionBoost     float64 `json:"extension_boost,omitempty"`
	FrameworkThreshold float64 `json:"framework_threshold,omitempty"`
	MinConfidence      float64 `json:"min_confidence,omitempty"`
	Workers            int     `json:"workers,omitempty"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(homeDir, LocalConfigDir, LocalConfigFile)
}

// LoadConfig reads the config file, returning an empty config when the file
// does not exist yet.
func LoadConfig() (*Config, error) {
	return loadFrom(GetConfigPath())
}

func loadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &config, nil
}

// SaveConfig writes the config file, creating the directory if needed.
func (c *Config) SaveConfig() error {
	return c.saveTo(GetConfigPath())
}

func (c *Config) saveTo(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EngineOptions translates the config into engine options; unset fields
// fall through to the classifier defaults.
func (c *Config) EngineOptions() classifier.Options {
	return classifier.Options{
		Normalization:      c.Normalization,
		ExtensionBoost:     c.ExtensionBoost,
		FrameworkThreshold: c.FrameworkThreshold,
	}
}
