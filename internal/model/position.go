package model

import "math"

// Vector2 is a horizontal map coordinate.
type Vector2 struct {
	X float32
	Y float32
}

// Vector3 is a world coordinate.
// Value type, passed by value.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Position is a world coordinate with facing (radians, 0..2π).
type Position struct {
	Vector3
	Orientation float32
}

// NewPosition creates a Position with the orientation normalized into [0, 2π).
func NewPosition(x, y, z, o float32) Position {
	return Position{Vector3: Vector3{X: x, Y: y, Z: z}, Orientation: NormalizeOrientation(o)}
}

// WithOrientation returns a copy with an updated, normalized facing.
func (p Position) WithOrientation(o float32) Position {
	p.Orientation = NormalizeOrientation(o)
	return p
}

// DistanceSquared returns the squared distance between two points (no sqrt).
func (v Vector3) DistanceSquared(other Vector3) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// NormalizeOrientation wraps o into [0, 2π).
func NormalizeOrientation(o float32) float32 {
	const twoPi = 2 * math.Pi
	if o < 0 || o >= twoPi {
		m := float32(math.Mod(float64(o), twoPi))
		if m < 0 {
			m += twoPi
		}
		if m >= twoPi {
			m = 0
		}
		return m
	}
	return o
}
