// Package config handles objtool configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all objtool settings.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Flatten FlattenConfig `yaml:"flatten"`
	Export  ExportConfig  `yaml:"export"`
	Cache   CacheConfig   `yaml:"cache"`
	Check   CheckConfig   `yaml:"check"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds OBJ parser settings.
type ParserConfig struct {
	BufferSize int `yaml:"buffer_size"` // Read buffer size in bytes
}

// FlattenConfig holds mesh flattening settings.
type FlattenConfig struct {
	RequireAttributes bool `yaml:"require_attributes"` // Reject corners without vt/vn
	FlipV             bool `yaml:"flip_v"`             // Mirror texture V
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Format string `yaml:"format"` // cbor or json
}

// CacheConfig holds the flattened mesh cache settings.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// CheckConfig holds batch validation settings.
type CheckConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			BufferSize: 256,
		},
		Flatten: FlattenConfig{
			RequireAttributes: false,
			FlipV:             false,
		},
		Export: ExportConfig{
			Format: "cbor",
		},
		Cache: CacheConfig{
			Enabled: true,
			Dir:     CacheDir(),
		},
		Check: CheckConfig{
			Workers: runtime.NumCPU(),
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// CacheDir returns the OS-appropriate directory for the mesh cache.
func CacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "objkit")
	}
	return filepath.Join(os.TempDir(), "objkit-cache")
}
