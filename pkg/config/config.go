package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pxl/internal/core/domain"
)

// Config holds persistent CLI configuration.
type Config struct {
	APIURL string `yaml:"api_url"`

	// Upload Settings
	domain.ClientSettings `yaml:",inline"`

	// Watch Settings
	WatchDir        string `yaml:"watch_dir"`
	WatchDebounceMS int    `yaml:"watch_debounce_ms"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		APIURL:          "http://localhost:8000",
		ClientSettings:  domain.DefaultSettings(),
		WatchDir:        "",
		WatchDebounceMS: 500,
		ColorTheme:      "auto",
	}
}

// Path returns the config file location.
// Follows XDG Base Directory specification on Unix and uses AppData on Windows.
func Path() (string, error) {
	// Check XDG_CONFIG_HOME first (Unix-like systems)
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pxl", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check if we're on Windows by looking for APPDATA
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "pxl", "config.yaml"), nil
	}

	// Fall back to ~/.config/pxl/config.yaml (Unix-like systems)
	return filepath.Join(homeDir, ".config", "pxl", "config.yaml"), nil
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:8000"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	// An out-of-range URL length in the file is clamped rather than
	// rejected so a hand-edited config never blocks the CLI.
	if cfg.URLLength < domain.MinURLLength {
		cfg.URLLength = domain.MinURLLength
	}
	if cfg.URLLength > domain.MaxURLLength {
		cfg.URLLength = domain.MaxURLLength
	}
	if cfg.AutoDeleteDays < 0 {
		cfg.AutoDeleteDays = 0
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
