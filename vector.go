package lindraw

import "math"

// Epsilon is the per-component tolerance used by Vector2D.Equal
const Epsilon = 1e-6

// Vector2D is a 2D vector. Every operation returns a fresh value, the
// receiver is never modified.
type Vector2D struct {
	X float64
	Y float64
}

func (v Vector2D) Translated(offset Vector2D) Vector2D {
	return Vector2D{v.X + offset.X, v.Y + offset.Y}
}

// Rotated returns v rotated by angle degrees, counterclockwise for positive angles
func (v Vector2D) Rotated(angle float64) Vector2D {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vector2D) Scaled(factor float64) Vector2D {
	return Vector2D{v.X * factor, v.Y * factor}
}

func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns the unit vector pointing the same way as v.
// The zero vector has no direction and is returned unchanged.
func (v Vector2D) Normalized() Vector2D {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2D{v.X / l, v.Y / l}
}

// Equal reports whether both components differ by at most Epsilon
func (v Vector2D) Equal(o Vector2D) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}
