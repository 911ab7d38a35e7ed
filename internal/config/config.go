package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the world tool configuration.
type Config struct {
	WorldDir      string `yaml:"world_dir"`
	LogLevel      string `yaml:"log_level"`
	Generator     string `yaml:"generator"` // "flat" or "terrain"
	Seed          int64  `yaml:"seed"`
	Layers        string `yaml:"layers"`          // flat layer list, e.g. "bedrock,2*dirt,grass"
	ChunksPerSide int    `yaml:"chunks_per_side"` // new worlds hold ChunksPerSide² chunks
	HeightMapPath string `yaml:"heightmap_path"`
	BackupDir     string `yaml:"backup_dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		WorldDir:      "world",
		LogLevel:      "info",
		Generator:     "flat",
		Layers:        "bedrock,2*dirt,grass",
		ChunksPerSide: 32,
		HeightMapPath: "heightmap.png",
		BackupDir:     "backups",
	}
}

// Load reads a YAML config file on top of the defaults. Keys absent from the
// file keep their default value.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.ChunksPerSide < 1 || c.ChunksPerSide > 32 {
		return fmt.Errorf("chunks_per_side %d out of range [1,32]", c.ChunksPerSide)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["dir"] {
		cfg.WorldDir = fromFile.WorldDir
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["layers"] {
		cfg.Layers = fromFile.Layers
	}
	if !explicitFlags["chunks"] {
		cfg.ChunksPerSide = fromFile.ChunksPerSide
	}
	if !explicitFlags["heightmap"] {
		cfg.HeightMapPath = fromFile.HeightMapPath
	}
	if !explicitFlags["backup-dir"] {
		cfg.BackupDir = fromFile.BackupDir
	}
}
