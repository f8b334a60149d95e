// Package config provides configuration management for chromeless with
// Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config represents the complete configuration for chromeless.
type Config struct {
	Chrome    ChromeConfig    `mapstructure:"chrome" yaml:"chrome"`
	Placement PlacementConfig `mapstructure:"placement" yaml:"placement"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// ChromeConfig holds the frameless chrome dimensions and behavior.
type ChromeConfig struct {
	CaptionHeight  int  `mapstructure:"caption_height" yaml:"caption_height"`
	BorderWidth    int  `mapstructure:"border_width" yaml:"border_width"`
	ButtonWidth    int  `mapstructure:"button_width" yaml:"button_width"`
	AeroSnap       bool `mapstructure:"aero_snap" yaml:"aero_snap"`
	RefreshDelayMs int  `mapstructure:"refresh_delay_ms" yaml:"refresh_delay_ms"`
}

// PlacementConfig holds window placement persistence configuration.
type PlacementConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level"`
	Format        string `mapstructure:"format" yaml:"format"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log"`
	MaxSize       int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress"`
}

// Manager handles configuration loading, reloading and change callbacks.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("CHROMELESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"chrome.caption_height":   "CHROME_CAPTION_HEIGHT",
		"chrome.border_width":     "CHROME_BORDER_WIDTH",
		"chrome.button_width":     "CHROME_BUTTON_WIDTH",
		"chrome.aero_snap":        "CHROME_AERO_SNAP",
		"chrome.refresh_delay_ms": "CHROME_REFRESH_DELAY_MS",
		"placement.enabled":       "PLACEMENT_ENABLED",
		"placement.path":          "PLACEMENT_PATH",
		"logging.level":           "LOG_LEVEL",
		"logging.format":          "LOG_FORMAT",
		"logging.log_dir":         "LOG_DIR",
		"logging.enable_file_log": "LOG_TO_FILE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "CHROMELESS_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) unmarshal() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Placement.Path == "" {
		dbPath, err := GetPlacementFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get placement database path: %w", err)
		}
		config.Placement.Path = dbPath
	}

	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads
// automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to reload config: %v\n", err)
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked after each reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.unmarshal()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// GetConfigFile returns the path of the file viper loaded, if any.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
