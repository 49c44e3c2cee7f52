package wavefront

import "github.com/Faultbox/objkit/pkg/math"

// Slot is a bitmask of the index slots written in a face corner.
type Slot uint8

// Face corner slots, in source order v/t/n.
const (
	SlotVertex Slot = 1 << iota
	SlotTexCoord
	SlotNormal
)

// Corner is one v/t/n index group of a face. Indices are 1-based as read;
// an index whose slot bit is clear was absent in the source.
type Corner struct {
	V, T, N uint32
	Slots   Slot
}

// HasTexCoord reports whether the corner carried a texture index.
func (c Corner) HasTexCoord() bool { return c.Slots&SlotTexCoord != 0 }

// HasNormal reports whether the corner carried a normal index.
func (c Corner) HasNormal() bool { return c.Slots&SlotNormal != 0 }

// Face is a triangle.
type Face [3]Corner

// Geometry holds the records accumulated by the parser. It is owned by the
// caller; after a failed parse its contents must be discarded.
type Geometry struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Normals   []math.Vec3
	Faces     []Face
}

// Reset empties g, keeping its capacity.
func (g *Geometry) Reset() {
	g.Positions = g.Positions[:0]
	g.TexCoords = g.TexCoords[:0]
	g.Normals = g.Normals[:0]
	g.Faces = g.Faces[:0]
}

// IsEmpty reports whether no record was accumulated.
func (g *Geometry) IsEmpty() bool {
	return len(g.Positions) == 0 && len(g.TexCoords) == 0 &&
		len(g.Normals) == 0 && len(g.Faces) == 0
}
