// Package config loads application configuration from file and environment.
package config

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"codeinv/pkg/walk"
)

// Config represents the application configuration.
type Config struct {
	Scan   ScanConfig   `mapstructure:"scan" toml:"scan"`
	Output OutputConfig `mapstructure:"output" toml:"output"`
}

// ScanConfig holds traversal configuration.
type ScanConfig struct {
	// IgnoreDirs are directory names pruned during traversal. Setting this
	// replaces the built-in list.
	IgnoreDirs []string `mapstructure:"ignore_dirs" toml:"ignore_dirs"`
}

// OutputConfig holds serialization configuration.
type OutputConfig struct {
	Path   string `mapstructure:"path" toml:"path"`     // Default output file path
	Format string `mapstructure:"format" toml:"format"` // csv, json, yaml, or sqlite ("" infers from path)
}

// Load loads the configuration from viper state (config file plus
// CODEINV_-prefixed environment variables).
func Load() (*Config, error) {
	setDefaults()

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return config, nil
}

// Default returns the built-in configuration without consulting viper.
func Default() *Config {
	return &Config{
		Scan:   ScanConfig{IgnoreDirs: defaultIgnoreDirs()},
		Output: OutputConfig{Path: "inventory.csv", Format: ""},
	}
}

// IgnoreSet converts the configured ignore list into the lookup form the
// walker expects.
func (c *ScanConfig) IgnoreSet() map[string]bool {
	set := make(map[string]bool, len(c.IgnoreDirs))
	for _, name := range c.IgnoreDirs {
		name = strings.TrimSpace(name)
		if name != "" {
			set[name] = true
		}
	}
	return set
}

func defaultIgnoreDirs() []string {
	names := make([]string, 0, len(walk.DefaultIgnore()))
	for name := range walk.DefaultIgnore() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("scan.ignore_dirs", defaultIgnoreDirs())
	viper.SetDefault("output.path", "inventory.csv")
	viper.SetDefault("output.format", "")
}
