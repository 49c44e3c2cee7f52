package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test parser defaults
	if cfg.Parser.BufferSize != 256 {
		t.Errorf("expected buffer size 256, got %d", cfg.Parser.BufferSize)
	}

	// Test flatten defaults
	if cfg.Flatten.RequireAttributes {
		t.Error("expected require_attributes to be false by default")
	}
	if cfg.Flatten.FlipV {
		t.Error("expected flip_v to be false by default")
	}

	// Test export and cache defaults
	if cfg.Export.Format != "cbor" {
		t.Errorf("expected format 'cbor', got %s", cfg.Export.Format)
	}
	if !cfg.Cache.Enabled {
		t.Error("expected cache to be enabled by default")
	}
	if cfg.Cache.Dir == "" {
		t.Error("expected a default cache dir")
	}
	if cfg.Check.Workers < 1 {
		t.Errorf("expected at least 1 worker, got %d", cfg.Check.Workers)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("expected MaxSizeMB 50, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "objkit.yaml")

	yamlContent := `
parser:
  buffer_size: 64

flatten:
  require_attributes: true
  flip_v: true

export:
  format: json

cache:
  enabled: false
  dir: /tmp/objkit-test

check:
  workers: 2

logging:
  level: "debug"
  log_file: "objtool.log"
  compress: false
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Parser.BufferSize != 64 {
		t.Errorf("expected buffer size 64, got %d", cfg.Parser.BufferSize)
	}
	if !cfg.Flatten.RequireAttributes {
		t.Error("expected require_attributes to be true")
	}
	if !cfg.Flatten.FlipV {
		t.Error("expected flip_v to be true")
	}
	if cfg.Export.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Export.Format)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache to be disabled")
	}
	if cfg.Cache.Dir != "/tmp/objkit-test" {
		t.Errorf("expected cache dir /tmp/objkit-test, got %s", cfg.Cache.Dir)
	}
	if cfg.Check.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", cfg.Check.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "objtool.log" {
		t.Errorf("expected log file 'objtool.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Logging.Compress {
		t.Error("expected compress to be false")
	}
	// Untouched keys keep their defaults
	if cfg.Logging.MaxBackups != 3 {
		t.Errorf("expected default MaxBackups 3, got %d", cfg.Logging.MaxBackups)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
parser:
  buffer_size: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/objkit.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"empty", "", false},
		{"partial", "parser:\n  buffer_size: 128\n", false},
		{"unknown section", "graphics:\n  width: 800\n", true},
		{"unknown key", "parser:\n  bufer_size: 128\n", true},
		{"zero buffer", "parser:\n  buffer_size: 0\n", true},
		{"string buffer", "parser:\n  buffer_size: big\n", true},
		{"bad format", "export:\n  format: gltf\n", true},
		{"bad level", "logging:\n  level: verbose\n", true},
		{"good level", "logging:\n  level: warn\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Point the user config dir somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create objkit.yaml in current directory
	configPath := filepath.Join(tmpDir, "objkit.yaml")
	if err := os.WriteFile(configPath, []byte("parser:\n  buffer_size: 32\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find objkit.yaml in current directory")
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		verify    func(*testing.T, *Config)
	}{
		{
			name:      "debug flag",
			overrides: Overrides{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name:      "buffer size flag",
			overrides: Overrides{BufferSize: 1024},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Parser.BufferSize != 1024 {
					t.Errorf("expected buffer size 1024, got %d", cfg.Parser.BufferSize)
				}
			},
		},
		{
			name:      "strict and flip flags",
			overrides: Overrides{Strict: true, FlipV: true},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Flatten.RequireAttributes || !cfg.Flatten.FlipV {
					t.Errorf("expected strict flatten with flip, got %+v", cfg.Flatten)
				}
			},
		},
		{
			name:      "no-cache flag",
			overrides: Overrides{NoCache: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Cache.Enabled {
					t.Error("expected cache to be disabled with no-cache flag")
				}
			},
		},
		{
			name:      "zero values keep defaults",
			overrides: Overrides{},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Parser.BufferSize != 256 || cfg.Export.Format != "cbor" {
					t.Errorf("defaults changed: %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			applyOverrides(cfg, &tt.overrides)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "objkit.yaml")

	yamlContent := `
parser:
  buffer_size: 512
export:
  format: json
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the config file
	cfg, err := Load(&Overrides{ConfigPath: configPath, BufferSize: 2048})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Buffer size should be from flag (2048), not file (512)
	if cfg.Parser.BufferSize != 2048 {
		t.Errorf("expected buffer size 2048 from flag, got %d", cfg.Parser.BufferSize)
	}

	// Format should be from file since no flag override
	if cfg.Export.Format != "json" {
		t.Errorf("expected format json from file, got %s", cfg.Export.Format)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "objkit.yaml")

	cfg := Default()
	cfg.Parser.BufferSize = 4096
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(&Overrides{ConfigPath: path})
	if err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Parser.BufferSize != 4096 {
		t.Errorf("expected buffer size 4096 after reload, got %d", loaded.Parser.BufferSize)
	}
}
