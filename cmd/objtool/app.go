package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/objkit/internal/cache"
	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/encoding"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"go.uber.org/zap"
)

// app is the state shared by all sub-commands.
type app struct {
	overrides *config.Overrides
	cfg       *config.Config
	log       *zap.Logger
	cache     *cache.Cache
}

func (a *app) setup() error {
	cfg, err := config.Load(a.overrides)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	a.log = logger.Named("objtool")

	if cfg.Cache.Enabled {
		c, err := cache.Open(cfg.Cache.Dir, logger.Named("cache"))
		if err != nil {
			a.log.Warn("mesh cache disabled", zap.Error(err))
		} else {
			a.cache = c
		}
	}
	return nil
}

func (a *app) parseOptions() []wavefront.Option {
	return []wavefront.Option{
		wavefront.WithLogger(logger.Named("wavefront")),
		wavefront.WithBufferSize(a.cfg.Parser.BufferSize),
	}
}

func (a *app) flattenOptions() wavefront.FlattenOptions {
	return wavefront.FlattenOptions{
		RequireAttributes: a.cfg.Flatten.RequireAttributes,
		FlipV:             a.cfg.Flatten.FlipV,
	}
}

// parse reads and parses one OBJ file.
func (a *app) parse(path string) (*wavefront.Geometry, error) {
	return wavefront.ParseFile(path, a.parseOptions()...)
}

// mesh returns the flattened mesh for path, from the cache when possible.
func (a *app) mesh(path string) (*wavefront.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}

	opts := a.flattenOptions()
	var key string
	if a.cache != nil {
		key = cache.Key(data, opts)
		if m, ok := a.cache.Get(key); ok {
			return m, nil
		}
	}

	g, err := wavefront.ParseBytes(encoding.Normalize(data), a.parseOptions()...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	m, err := wavefront.FlattenWith(g, opts)
	if err != nil {
		return nil, fmt.Errorf("flattening %s: %w", path, err)
	}

	if a.cache != nil {
		if err := a.cache.Put(key, m); err != nil {
			a.log.Warn("caching mesh failed", zap.String("path", path), zap.Error(err))
		}
	}
	return m, nil
}
