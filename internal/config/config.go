package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/todo/internal/config/colors"
)

// Environment overrides
const (
	EnvDatabaseURL = "TODO_DATABASE_URL"
	EnvServerAddr  = "TODO_SERVER_ADDR"
	EnvAPIURL      = "TODO_API_URL"
	EnvThemeFile   = "TODO_THEME_FILE"
)

const (
	DefaultServerAddr      = ":8000"
	DefaultDatabaseDSN     = "~/.todo/todos.db"
	DefaultAPIURL          = "http://localhost:8000"
	DefaultShutdownTimeout = 5 * time.Second
)

// ColorScheme is the TUI color configuration
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Client      ClientConfig   `yaml:"client"`
	Logging     LoggingConfig  `yaml:"logging"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds the single connection string of the store.
// A postgres:// URL selects PostgreSQL, anything else is a SQLite path.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ClientConfig configures the TUI and CLI client
type ClientConfig struct {
	APIURL string `yaml:"api_url"`
}

// LoggingConfig configures slog output. An empty File means stderr.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TODO_THEME_FILE environment variable
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
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables
func applyEnv(config *Config) {
	if dsn := os.Getenv(EnvDatabaseURL); dsn != "" {
		config.Database.DSN = dsn
	}
	if addr := os.Getenv(EnvServerAddr); addr != "" {
		config.Server.Addr = addr
	}
	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		config.Client.APIURL = apiURL
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(config)
	applyEnv(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Database.DSN == "" {
		c.Database.DSN = DefaultDatabaseDSN
	}
	if c.Client.APIURL == "" {
		c.Client.APIURL = DefaultAPIURL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
