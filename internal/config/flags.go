package config

import "github.com/spf13/pflag"

// Overrides holds command-line values that take priority over the config
// file. Zero values mean "not set".
type Overrides struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	BufferSize int
	Strict     bool
	FlipV      bool
	NoCache    bool
	Format     string
	Workers    int
}

// BindFlags registers the global flags on fs and returns the overrides
// they fill in.
func BindFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{}
	fs.StringVar(&o.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&o.LogFile, "log-file", "", "Also write logs to this file")
	fs.IntVar(&o.BufferSize, "buffer-size", 0, "Parser read buffer size in bytes")
	fs.BoolVar(&o.Strict, "strict", false, "Reject face corners without texture or normal indices")
	fs.BoolVar(&o.FlipV, "flip-v", false, "Mirror texture V when flattening")
	fs.BoolVar(&o.NoCache, "no-cache", false, "Bypass the flattened mesh cache")
	return o
}

// applyOverrides applies CLI flag overrides to the config.
func applyOverrides(cfg *Config, o *Overrides) {
	if o == nil {
		return
	}
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.BufferSize > 0 {
		cfg.Parser.BufferSize = o.BufferSize
	}
	if o.Strict {
		cfg.Flatten.RequireAttributes = true
	}
	if o.FlipV {
		cfg.Flatten.FlipV = true
	}
	if o.NoCache {
		cfg.Cache.Enabled = false
	}
	if o.Format != "" {
		cfg.Export.Format = o.Format
	}
	if o.Workers > 0 {
		cfg.Check.Workers = o.Workers
	}
}
