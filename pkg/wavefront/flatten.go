package wavefront

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/objkit/pkg/math"
)

// Vertex is one entry of the flattened vertex buffer.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	TexCoord math.Vec2
}

// Mesh is a flattened, GPU-ready vertex and index buffer pair.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
}

// Size returns the box extent on each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the middle of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Bounds returns the bounding box of all vertex positions. An empty mesh
// has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		b.Min = b.Min.Min(v.Position)
		b.Max = b.Max.Max(v.Position)
	}
	return b
}

// FlattenOptions controls attribute handling during flattening.
type FlattenOptions struct {
	// RequireAttributes rejects corners without a texture or normal index
	// instead of substituting a zero vector.
	RequireAttributes bool

	// FlipV mirrors texture V for APIs with a top-left texture origin.
	FlipV bool
}

// Flatten emits one vertex per face corner, in face order, with zero
// vectors for absent texture and normal indices.
func Flatten(g *Geometry) (*Mesh, error) {
	return FlattenWith(g, FlattenOptions{})
}

// FlattenWith is Flatten with explicit options. Vertices are never
// deduplicated; index i of the index buffer always refers to vertex i.
func FlattenWith(g *Geometry, opts FlattenOptions) (*Mesh, error) {
	n := len(g.Faces) * 3
	if uint64(n) > gomath.MaxUint32 {
		return nil, fmt.Errorf("%w: %d face corners exceed the 32-bit index buffer", ErrIndexRange, n)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, n),
		Indices:  make([]uint32, 0, n),
	}
	for fi := range g.Faces {
		for ci, c := range g.Faces[fi] {
			v, err := corner(g, c, opts)
			if err != nil {
				return nil, fmt.Errorf("face %d corner %d: %w", fi+1, ci+1, err)
			}
			m.Indices = append(m.Indices, uint32(len(m.Vertices)))
			m.Vertices = append(m.Vertices, v)
		}
	}
	return m, nil
}

func corner(g *Geometry, c Corner, opts FlattenOptions) (Vertex, error) {
	var v Vertex

	if err := checkIndex("position", c.V, len(g.Positions)); err != nil {
		return v, err
	}
	v.Position = g.Positions[c.V-1]

	switch {
	case c.HasTexCoord():
		if err := checkIndex("texture coordinate", c.T, len(g.TexCoords)); err != nil {
			return v, err
		}
		v.TexCoord = g.TexCoords[c.T-1]
		if opts.FlipV {
			v.TexCoord = v.TexCoord.FlipV()
		}
	case opts.RequireAttributes:
		return v, fmt.Errorf("%w: no texture coordinate index", ErrMissingAttribute)
	}

	switch {
	case c.HasNormal():
		if err := checkIndex("normal", c.N, len(g.Normals)); err != nil {
			return v, err
		}
		v.Normal = g.Normals[c.N-1]
	case opts.RequireAttributes:
		return v, fmt.Errorf("%w: no normal index", ErrMissingAttribute)
	}

	return v, nil
}

func checkIndex(what string, idx uint32, n int) error {
	if idx == 0 || uint64(idx) > uint64(n) {
		return fmt.Errorf("%w: %s index %d, have %d", ErrIndexRange, what, idx, n)
	}
	return nil
}
