package cache

import (
	"os"
	"testing"

	"github.com/Faultbox/objkit/pkg/math"
	"github.com/Faultbox/objkit/pkg/wavefront"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	src := []byte("v 0 0 0\n")

	k := Key(src, wavefront.FlattenOptions{})
	assert.Len(t, k, 64)
	assert.Equal(t, k, Key(src, wavefront.FlattenOptions{}))

	assert.NotEqual(t, k, Key([]byte("v 0 0 1\n"), wavefront.FlattenOptions{}))
	assert.NotEqual(t, k, Key(src, wavefront.FlattenOptions{FlipV: true}))
	assert.NotEqual(t, k, Key(src, wavefront.FlattenOptions{RequireAttributes: true}))
	assert.NotEqual(t,
		Key(src, wavefront.FlattenOptions{FlipV: true}),
		Key(src, wavefront.FlattenOptions{RequireAttributes: true}))
}

func TestOpen(t *testing.T) {
	_, err := Open("", nil)
	assert.Error(t, err)

	dir := t.TempDir() + "/nested/cache"
	c, err := Open(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, c.Dir())
	assert.DirExists(t, dir)
}

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	require.NoError(t, err)

	key := Key([]byte("mesh"), wavefront.FlattenOptions{})
	_, ok := c.Get(key)
	assert.False(t, ok)

	m := &wavefront.Mesh{
		Vertices: []wavefront.Vertex{
			{Position: math.Vec3{X: 1}},
			{Position: math.Vec3{Y: 1}, Normal: math.Vec3{Z: 1}},
			{Position: math.Vec3{Z: 1}, TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
		},
		Indices: []uint32{0, 1, 2},
	}
	require.NoError(t, c.Put(key, m))
	assert.FileExists(t, c.path(key))

	got, ok := c.Get(key)
	require.True(t, ok)
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("mesh mismatch (-want +got):\n%s", diff)
	}

	// Overwriting an entry is allowed.
	require.NoError(t, c.Put(key, m))
}

func TestGet_CorruptEntry(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	require.NoError(t, err)

	key := Key([]byte("corrupt"), wavefront.FlattenOptions{})
	require.NoError(t, c.Put(key, &wavefront.Mesh{}))
	require.NoError(t, os.WriteFile(c.path(key), []byte("not cbor"), 0644))

	_, ok := c.Get(key)
	assert.False(t, ok)
	assert.NoFileExists(t, c.path(key))
}
