package math

// Vec2 is a 2D vector, used for texture coordinates (X = u, Y = v).
type Vec2 struct {
	X, Y float32
}

// U returns the horizontal texture coordinate.
func (v Vec2) U() float32 { return v.X }

// V returns the vertical texture coordinate.
func (v Vec2) V() float32 { return v.Y }

// FlipV returns the coordinate with V mirrored, converting between the
// bottom-left OBJ origin and a top-left texture origin.
func (v Vec2) FlipV() Vec2 {
	return Vec2{v.X, 1 - v.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v == Vec2{}
}
