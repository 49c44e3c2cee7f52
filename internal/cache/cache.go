// Package cache stores flattened meshes on disk, keyed by the content of
// the source file they were built from.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/objkit/pkg/meshfmt"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

const entryExt = ".cbor"

// Cache is a directory of CBOR-encoded meshes.
type Cache struct {
	dir string
	log *zap.Logger
}

// Open returns a cache rooted at dir, creating it if needed.
func Open(dir string, log *zap.Logger) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("cache directory not set")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{dir: dir, log: log}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

// Key derives the entry key for a source file and the flatten options it
// is built with.
func Key(source []byte, opts wavefront.FlattenOptions) string {
	h, _ := blake2b.New256(nil)
	h.Write(source)
	var flags [2]byte
	if opts.RequireAttributes {
		flags[0] = 1
	}
	if opts.FlipV {
		flags[1] = 1
	}
	h.Write(flags[:])
	return hex.EncodeToString(h.Sum(nil))
}

// path fans entries out over 256 subdirectories by key prefix.
func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key[:2], key+entryExt)
}

// Get returns the cached mesh for key. A missing or undecodable entry is a
// miss, not an error.
func (c *Cache) Get(key string) (*wavefront.Mesh, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	m, err := meshfmt.UnmarshalCBOR(data)
	if err != nil {
		c.log.Warn("dropping corrupt cache entry", zap.String("key", key), zap.Error(err))
		_ = os.Remove(c.path(key))
		return nil, false
	}
	c.log.Debug("cache hit", zap.String("key", key))
	return m, true
}

// Put stores m under key. The entry is written to a temp file first and
// renamed into place, so readers never see a partial entry.
func (c *Cache) Put(key string, m *wavefront.Mesh) error {
	data, err := meshfmt.MarshalCBOR(m)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating cache entry: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("committing cache entry: %w", err)
	}

	c.log.Debug("cache store", zap.String("key", key), zap.Int("bytes", len(data)))
	return nil
}
