package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file locations
const (
	EnvConfigFile = "TRACKVIEW_CONFIG"
	EnvThemeFile  = "TRACKVIEW_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Database      string `yaml:"database"`       // Path of the sqlite database
	BasePath      string `yaml:"base_path"`      // URI base path, "/" for a root install
	MediaURL      string `yaml:"media_url"`      // Absolute or relative URL of the media directory
	RootPath      string `yaml:"root_path"`      // Installation root hidden from error output
	Offset        string `yaml:"offset"`         // System time zone
	Language      string `yaml:"language"`       // Default language tag
	Debug         bool   `yaml:"debug"`          // Enables the template dump filter
	TemplateDebug bool   `yaml:"template_debug"` // Exposed to templates
	UseCDN        bool   `yaml:"use_cdn"`
	LogLevel      string `yaml:"log_level"`
	Theme         Theme  `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges the theme from TRACKVIEW_THEME_FILE over the configured one
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trackview", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "trackview", "config.yaml"), nil
}

// DefaultDatabasePath returns ~/.trackview/trackview.db
func DefaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "trackview.db"
	}
	return filepath.Join(homeDir, ".trackview", "trackview.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = DefaultDatabasePath()
	}
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.BasePath[len(c.BasePath)-1] != '/' {
		c.BasePath += "/"
	}
	if c.MediaURL == "" {
		c.MediaURL = c.BasePath + "media/"
	}
	if c.Offset == "" {
		c.Offset = "UTC"
	}
	if c.Language == "" {
		c.Language = "en-GB"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.Theme.ApplyDefaults()
}
