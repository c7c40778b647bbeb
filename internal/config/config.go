package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StorageConfig selects where the board is persisted
type StorageConfig struct {
	// Backend is "sqlite" (default), "file" or "memory"
	Backend string `yaml:"backend"`
	// Path is the database file (sqlite) or directory (file). Empty picks a
	// location under ~/.taskboard.
	Path string `yaml:"path"`
}

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	LogLevel    string        `yaml:"log_level"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TASKBOARD_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TASKBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults before the theme file so the
	// chosen preset is the base the theme file is merged onto
	config.applyDefaults()
	loadThemeFile(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = "sqlite"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
