// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Device  DeviceConfig  `mapstructure:"device"`
	Tools   ToolsConfig   `mapstructure:"tools"`
	Logging LoggingConfig `mapstructure:"logging"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Tray    TrayConfig    `mapstructure:"tray"`
}

// DeviceConfig selects which pointer devices are offered
type DeviceConfig struct {
	Filter string `mapstructure:"filter"` // Case-insensitive name substring, empty matches all
}

// ToolsConfig names the external X11 utilities
type ToolsConfig struct {
	Xrandr string `mapstructure:"xrandr"`
	Xinput string `mapstructure:"xinput"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
	File     string `mapstructure:"file"`      // Optional log file
}

// NotifyConfig controls desktop notifications on errors
type NotifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TrayConfig contains tray icon settings
type TrayConfig struct {
	Tooltip string `mapstructure:"tooltip"`
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Device: DeviceConfig{
			Filter: "",
		},
		Tools: ToolsConfig{
			Xrandr: "xrandr",
			Xinput: "xinput",
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
			File:     "",
		},
		Notify: NotifyConfig{
			Enabled: true,
		},
		Tray: TrayConfig{
			Tooltip: "Tablet display selector",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// SetDefaults registers every default with viper
func SetDefaults() {
	viper.SetDefault("device.filter", DefaultConfig.Device.Filter)
	viper.SetDefault("tools.xrandr", DefaultConfig.Tools.Xrandr)
	viper.SetDefault("tools.xinput", DefaultConfig.Tools.Xinput)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)
	viper.SetDefault("logging.file", DefaultConfig.Logging.File)
	viper.SetDefault("notify.enabled", DefaultConfig.Notify.Enabled)
	viper.SetDefault("tray.tooltip", DefaultConfig.Tray.Tooltip)
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("tabletray")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			viper.AddConfigPath(filepath.Join(xdg, "tabletray"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tabletray"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	SetDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit path that does not exist is an error too
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		c := DefaultConfig
		return &c
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tabletray", "tabletray.toml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "tabletray.toml"
	}
	return filepath.Join(home, ".config", "tabletray", "tabletray.toml")
}

// WriteDefault writes the default configuration to path. An existing file is
// kept unless force is set; the returned bool reports whether it was written.
func WriteDefault(path string, force bool) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("device.filter", DefaultConfig.Device.Filter)
	v.Set("tools.xrandr", DefaultConfig.Tools.Xrandr)
	v.Set("tools.xinput", DefaultConfig.Tools.Xinput)
	v.Set("logging.log_level", DefaultConfig.Logging.LogLevel)
	v.Set("logging.file", DefaultConfig.Logging.File)
	v.Set("notify.enabled", DefaultConfig.Notify.Enabled)
	v.Set("tray.tooltip", DefaultConfig.Tray.Tooltip)

	if err := v.WriteConfigAs(path); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
