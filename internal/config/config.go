package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// DefaultBaseURL is the public TVMaze API root.
const DefaultBaseURL = "https://api.tvmaze.com"

// PageSizes is the allowed set of grid page sizes.
var PageSizes = []int{6, 12, 24, 48}

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds catalog source configuration
type APIConfig struct {
	BaseURL           string  `mapstructure:"base_url"`            // Catalog API root
	MaxPages          int     `mapstructure:"max_pages"`           // Upper bound on catalog pages fetched
	RequestsPerSecond float64 `mapstructure:"requests_per_second"` // Client-side rate limit
}

// UIConfig holds UI configuration
type UIConfig struct {
	PageSize int    `mapstructure:"page_size"` // Cards per grid page, one of PageSizes
	Theme    string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           DefaultBaseURL,
			MaxPages:          300,
			RequestsPerSecond: 2,
		},
		UI: UIConfig{
			PageSize: 12,
			Theme:    "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "showdeck", "showdeck.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "showdeck", "showdeck.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "showdeck")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "showdeck")
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("SHOWDECK")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to usable defaults
func (c *Config) normalize() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.MaxPages <= 0 {
		c.API.MaxPages = 300
	}
	if c.API.RequestsPerSecond <= 0 {
		c.API.RequestsPerSecond = 2
	}
	if !ValidPageSize(c.UI.PageSize) {
		c.UI.PageSize = 12
	}
}

// ValidPageSize reports whether n is one of the allowed grid page sizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if n == s {
			return true
		}
	}
	return false
}
