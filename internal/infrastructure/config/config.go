// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for charnet configuration.
	DefaultConfigDir = ".charnet"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSnapshotPath is the canonical snapshot location.
	DefaultSnapshotPath = "data/network.sqlite"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Snapshot SnapshotConfig `yaml:"snapshot,omitempty"`
	Export   ExportConfig   `yaml:"export,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// SnapshotConfig holds configuration for the snapshot store.
type SnapshotConfig struct {
	// Path is the canonical snapshot file. Sessions load it into a working
	// copy; only a manual publish replaces it.
	Path string `yaml:"path,omitempty"`
}

// ExportConfig holds configuration for the publish workflow.
type ExportConfig struct {
	// Dir is where exported snapshot artifacts are written.
	Dir string `yaml:"dir,omitempty"`
}

// LogConfig holds configuration for the rotating file log.
type LogConfig struct {
	Level      string `yaml:"level,omitempty"`
	Filename   string `yaml:"filename,omitempty"`
	MaxSize    int    `yaml:"max_size,omitempty"`    // megabytes per file
	MaxBackups int    `yaml:"max_backups,omitempty"` // rotated files kept
	MaxAge     int    `yaml:"max_age,omitempty"`     // days
	Compress   bool   `yaml:"compress,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Snapshot: SnapshotConfig{
			Path: DefaultSnapshotPath,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level:      "info",
			Filename:   filepath.Join(DefaultConfigDir, "logs", "charnet.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load loads configuration from the .charnet directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'charnet init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("CHARNET_SNAPSHOT"); path != "" {
		c.Snapshot.Path = path
	}
	if dir := os.Getenv("CHARNET_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
}

// ConfigDir returns the path to the .charnet config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a charnet config exists in the given path.
func Exists(basePath string) bool {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	_, err := os.Stat(configFile)
	return err == nil
}
