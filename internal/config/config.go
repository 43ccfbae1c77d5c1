// Package config loads and saves the app configuration. Settings live
// in a JSON file under the data directory; a .env file and environment
// variables can override where that directory is and how the app looks.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment overrides. A .env file in the working directory is
// loaded first, so either mechanism works.
const (
	EnvDataDir = "MEDIMIND_DATA_DIR"
	EnvTheme   = "MEDIMIND_THEME"
)

// Config holds user preferences.
type Config struct {
	Theme string `json:"theme"` // "light" or "dark"
	Debug bool   `json:"debug"` // enables debug-level logging
}

// Default returns the default configuration.
func Default() Config {
	return Config{Theme: "light"}
}

// Dir returns the data directory, creating the decision but not the
// directory itself: MEDIMIND_DATA_DIR (or .env) wins, otherwise
// ~/.medimind.
func Dir() (string, error) {
	_ = godotenv.Load()

	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".medimind"), nil
}

// File returns the full path to the config file inside dir.
func File(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Load reads the configuration from dir. A missing file yields the
// defaults; a present-but-corrupt file is an error. The MEDIMIND_THEME
// override, when set, wins over the file.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(File(dir))
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("corrupt config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Default(), err
	}

	if theme := os.Getenv(EnvTheme); theme != "" {
		cfg.Theme = theme
	}
	return cfg, nil
}

// Save writes the configuration to dir, creating it if needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(File(dir), data, 0644)
}
