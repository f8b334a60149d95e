package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Chrome: ChromeConfig{
			CaptionHeight:  32,
			BorderWidth:    8,
			ButtonWidth:    46,
			AeroSnap:       true,
			RefreshDelayMs: 50,
		},
		Placement: PlacementConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			MaxSize:       10,
			MaxBackups:    3,
			MaxAge:        14,
			Compress:      true,
		},
	}
}

// setDefaults seeds viper with the built-in configuration so partial
// config files merge cleanly.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("chrome.caption_height", defaults.Chrome.CaptionHeight)
	m.viper.SetDefault("chrome.border_width", defaults.Chrome.BorderWidth)
	m.viper.SetDefault("chrome.button_width", defaults.Chrome.ButtonWidth)
	m.viper.SetDefault("chrome.aero_snap", defaults.Chrome.AeroSnap)
	m.viper.SetDefault("chrome.refresh_delay_ms", defaults.Chrome.RefreshDelayMs)

	m.viper.SetDefault("placement.enabled", defaults.Placement.Enabled)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// createDefaultConfig writes a commented starter config file.
func (m *Manager) createDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	path := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	m.viper.SetConfigFile(path)
	return m.viper.ReadInConfig()
}
