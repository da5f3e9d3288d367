// Package config loads the optional skeletonize configuration file.
//
// The file is TOML; every key is optional and falls back to Defaults():
//
//	algorithm       = "guo_hall_fast"
//	crop            = true
//	max_iterations  = 10000
//	threshold       = 128
//	frame_scale     = 2
//	gallery_columns = 2
//	log_level       = "info"
//	benchmark_runs  = 10
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/skeletonize/internal/thinning"
)

const (
	appName = "skeletonize"

	// EnvPath names the environment variable that points at a config file.
	EnvPath = "SKELETONIZE_CONFIG"
)

// Config holds the settings shared by the CLI commands and the MCP server.
type Config struct {
	Algorithm      string `toml:"algorithm"`
	Crop           bool   `toml:"crop"`
	MaxIterations  int    `toml:"max_iterations"`
	Threshold      int    `toml:"threshold"`
	FrameScale     int    `toml:"frame_scale"`
	GalleryColumns int    `toml:"gallery_columns"`
	LogLevel       string `toml:"log_level"`
	BenchmarkRuns  int    `toml:"benchmark_runs"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Algorithm:      thinning.GuoHallFast,
		Crop:           true,
		MaxIterations:  10000,
		Threshold:      128,
		FrameScale:     2,
		GalleryColumns: 2,
		LogLevel:       "info",
		BenchmarkRuns:  10,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/skeletonize/config.toml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Resolve picks the config file to read. An explicit path (from a flag) wins,
// then $SKELETONIZE_CONFIG, then DefaultPath. required reports whether the
// file must exist.
func Resolve(explicit string) (path string, required bool, err error) {
	if explicit != "" {
		return explicit, true, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true, nil
	}
	path, err = DefaultPath()
	return path, false, err
}

// Load resolves and reads the configuration. A missing default file yields
// Defaults(); a missing explicit file is an error.
func Load(explicit string) (*Config, error) {
	path, required, err := Resolve(explicit)
	if err != nil {
		if required {
			return nil, err
		}
		return Defaults(), nil
	}

	cfg, err := LoadFile(path)
	if err != nil && !required && errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// LoadFile reads path on top of Defaults() and validates the result.
// Unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML text on top of Defaults() and validates the result.
func Parse(data string) (*Config, error) {
	cfg := Defaults()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !thinning.IsValid(c.Algorithm) {
		return fmt.Errorf("algorithm %q is not one of %s",
			c.Algorithm, strings.Join(thinning.ListAlgorithms(), ", "))
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("threshold must be within 0..255, got %d", c.Threshold)
	}
	if c.FrameScale < 1 {
		return fmt.Errorf("frame_scale must be positive, got %d", c.FrameScale)
	}
	if c.GalleryColumns < 1 {
		return fmt.Errorf("gallery_columns must be positive, got %d", c.GalleryColumns)
	}
	if c.BenchmarkRuns < 1 {
		return fmt.Errorf("benchmark_runs must be positive, got %d", c.BenchmarkRuns)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, InfoLevel if LogLevel is invalid.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// GrayThreshold returns Threshold as a pixel level.
func (c *Config) GrayThreshold() uint8 {
	return uint8(c.Threshold)
}
