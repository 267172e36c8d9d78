package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Supported face locator backends.
const (
	BackendLocal    = "local"
	BackendOllama   = "ollama"
	BackendLlamaCpp = "llamacpp"
)

// Config holds the application configuration
type Config struct {
	Locator LocatorConfig `json:"locator"`
	Output  OutputConfig  `json:"output"`
}

// LocatorConfig selects and configures the face detection backend. It is
// consumed once when the locator is constructed; the pipeline itself never
// reads it.
type LocatorConfig struct {
	Backend     string `json:"backend"` // local|ollama|llamacpp
	CascadePath string `json:"cascade_path"`
	ServerURL   string `json:"server_url"`
	Model       string `json:"model"`
	SendFormat  string `json:"send_format"`
	SendMaxDim  int    `json:"send_max_dim"`
	SendQuality int    `json:"send_quality"`
}

// OutputConfig holds configuration for result output
type OutputConfig struct {
	Dir            string `json:"dir"`
	OverlayFormat  string `json:"overlay_format"`
	OverlayQuality int    `json:"overlay_quality"`
	WriteOverlay   bool   `json:"write_overlay"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Locator: LocatorConfig{
			Backend:     BackendLocal,
			CascadePath: "cascade/facefinder",
			Model:       "openbmb/minicpm-v4.5",
			SendFormat:  "jpg",
			SendMaxDim:  1024,
			SendQuality: 85,
		},
		Output: OutputConfig{
			Dir:            "./out",
			OverlayFormat:  "png",
			OverlayQuality: 92,
			WriteOverlay:   true,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Locator.Backend {
	case BackendLocal:
		if c.Locator.CascadePath == "" {
			return fmt.Errorf("locator.cascade_path is required for the local backend")
		}
	case BackendOllama, BackendLlamaCpp:
		if c.Locator.Model == "" {
			return fmt.Errorf("locator.model is required for the %s backend", c.Locator.Backend)
		}
	default:
		return fmt.Errorf("locator.backend must be one of local, ollama, llamacpp")
	}

	if c.Locator.SendMaxDim < 0 {
		return fmt.Errorf("locator.send_max_dim cannot be negative")
	}

	if c.Locator.SendQuality < 1 || c.Locator.SendQuality > 100 {
		return fmt.Errorf("locator.send_quality must be between 1 and 100")
	}

	if c.Output.OverlayQuality < 1 || c.Output.OverlayQuality > 100 {
		return fmt.Errorf("output.overlay_quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "face-wellness", "config.json")
}
