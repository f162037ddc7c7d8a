package model

import (
	"math"
	"testing"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name string
		o    float32
		want float32
	}{
		{"zero", 0, 0},
		{"in range", 1.5, 1.5},
		{"negative wraps", -math.Pi / 2, 3 * math.Pi / 2},
		{"full turn wraps", 2*math.Pi + 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPosition(1, 2, 3, tt.o)
			if math.Abs(float64(got.Orientation-tt.want)) > 1e-5 {
				t.Errorf("Orientation = %v, want %v", got.Orientation, tt.want)
			}
			if got.X != 1 || got.Y != 2 || got.Z != 3 {
				t.Errorf("coordinates = %+v, want {1 2 3}", got.Vector3)
			}
		})
	}
}

func TestPosition_WithOrientation(t *testing.T) {
	p := NewPosition(10, 20, 30, 1)
	q := p.WithOrientation(2)

	if p.Orientation != 1 {
		t.Errorf("original mutated: Orientation = %v", p.Orientation)
	}
	if q.Orientation != 2 {
		t.Errorf("Orientation = %v, want 2", q.Orientation)
	}
	if q.Vector3 != p.Vector3 {
		t.Errorf("coordinates changed: %+v", q.Vector3)
	}
}

func TestVector3_DistanceSquared(t *testing.T) {
	a := Vector3{X: 0, Y: 0, Z: 0}
	b := Vector3{X: 3, Y: 4, Z: 12}

	if got := a.DistanceSquared(b); got != 169 {
		t.Errorf("DistanceSquared() = %v, want 169", got)
	}
	if got := b.DistanceSquared(a); got != 169 {
		t.Errorf("DistanceSquared() not symmetric: %v", got)
	}
}
