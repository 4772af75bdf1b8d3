package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"` // Directory holding the three record files.
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "hurltrack")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file. A missing file is fine:
// the data dir then defaults to the config directory. Environment
// variables win over the file; a .env in the working directory is
// picked up if present.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = filepath.Dir(path)
	}

	if dir := os.Getenv("HURLTRACK_DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Storage.DataDir = "./data"
	}

	return &cfg, nil
}

// EnsureDataDir creates the configured data directory if needed and
// returns it.
func (c *Config) EnsureDataDir() (string, error) {
	if err := os.MkdirAll(c.Storage.DataDir, 0755); err != nil {
		return "", err
	}
	return c.Storage.DataDir, nil
}
