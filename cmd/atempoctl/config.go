package main

import (
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/hjson/hjson-go/v4"
)

// Config holds atempoctl's own settings, loaded from an optional
// ~/.atempoctl.hjson and merged over these defaults.
type Config struct {
	LogLevel string `json:"logLevel,omitempty"`
	Format   string `json:"format,omitempty"`
	LogDir   string `json:"logDir,omitempty"`
}

func defaultConfig() Config {
	return Config{LogLevel: "error", Format: "text"}
}

// loadConfig reads ~/.atempoctl.hjson if present, tolerating HJSON's
// relaxed syntax for hand-edited files, and merges it over the defaults.
// A missing file is not an error.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var loaded Config
	if err := hjson.Unmarshal(data, &loaded); err != nil {
		return cfg, err
	}
	if err := mergo.Merge(&cfg, loaded, mergo.WithOverride); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".atempoctl.hjson"), nil
}
