// Package config holds the sj settings file. Values come from config.toml in
// the sj config directory, SJ_* environment variables, and CLI flags, in
// that order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Config holds all runtime settings for an sj session.
type Config struct {
	// VariantOffset biases which week variant counts as current, letting a
	// user realign an N-week rotation without editing the timetable data.
	VariantOffset int `mapstructure:"variant_offset" toml:"variant_offset"`
	// DataDir overrides the directory holding the .subjective data file.
	DataDir string `mapstructure:"data_dir" toml:"data_dir,omitempty"`
}

// FileName is the settings file name inside the config directory.
const FileName = "config.toml"

// Dir returns the sj config directory. Both config.toml and, unless
// data_dir overrides it, the .subjective data file live here.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("couldn't find a configuration directory: %w", err)
	}
	return filepath.Join(base, "sj"), nil
}

// Load reads settings from viper, applying defaults for anything not set by
// file, environment, or flags.
func Load() Config {
	viper.SetDefault("variant_offset", 0)
	viper.SetDefault("data_dir", "")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// Init writes a default config.toml under dir, creating the directory if
// needed. An existing file is an error; init never clobbers settings.
func Init(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("couldn't create configuration directory at %q: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("configuration already exists at %q", path)
	}
	data, err := toml.Marshal(Config{})
	if err != nil {
		return "", fmt.Errorf("couldn't serialise configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("couldn't write configuration to %q: %w", path, err)
	}
	return path, nil
}
