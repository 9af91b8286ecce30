package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/huddle/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Storage     Storage            `yaml:"storage"`
	Log         Log                `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Storage selects and configures the key-value backend holding the dashboard records
type Storage struct {
	// Driver is one of sqlite, fs, memory or s3
	Driver  string `yaml:"driver"`
	DataDir string `yaml:"data_dir"`
	S3      S3     `yaml:"s3"`
}

// S3 configures the s3 storage driver
type S3 struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

// Log configures the rotating log file
type Log struct {
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverFS     = "fs"
	DriverMemory = "memory"
	DriverS3     = "s3"
)

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist. A .env file in the working
// directory is read first so HUDDLE_* overrides can live next to the project.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
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

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv("HUDDLE_CONFIG"); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "huddle", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "huddle", "config.yaml"), nil
}

// applyEnv lets the environment override the file for the settings that are
// commonly switched per invocation
func (c *Config) applyEnv() {
	if v := os.Getenv("HUDDLE_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("HUDDLE_STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("HUDDLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("HUDDLE_S3_BUCKET"); v != "" {
		c.Storage.S3.Bucket = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverSQLite
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = defaultDataDir()
	}
	if c.Storage.S3.Region == "" {
		c.Storage.S3.Region = "us-east-1"
	}
	if c.Storage.S3.Prefix == "" {
		c.Storage.S3.Prefix = "huddle"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 10
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// defaultDataDir is ~/.huddle, or ./.huddle when the home dir is unknown
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".huddle"
	}
	return filepath.Join(home, ".huddle")
}
