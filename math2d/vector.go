package math2d

import (
	"fmt"
	"math"
)

type Vector2 struct {
	X float64
	Y float64
}

var (
	ZeroVector2 = Vector2{}
)

// MakeVector2 returns a pointer to a new Vector2.
func MakeVector2(x float64, y float64) *Vector2 {
	return &Vector2{x, y}
}

func (v Vector2) String() string {
	return fmt.Sprintf("&Vec2{x=%0.2f y=%0.2f}", v.X, v.Y)
}

// Zero returns true if the vector is at 0,0.
func (v Vector2) Zero() bool {
	return (v.X == 0) && (v.Y == 0)
}

// Add adds two vectors, and returns a pointer to the result.
func (v Vector2) Add(vv Vector2) *Vector2 {
	return &Vector2{
		(v.X + vv.X),
		(v.Y + vv.Y),
	}
}

func (v Vector2) Subtract(vv Vector2) Vector2 {
	return Vector2{
		(v.X - vv.X),
		(v.Y - vv.Y),
	}
}

// Negate returns the vector pointing the other way.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector2) Distance(vv Vector2) float64 {
	return v.Subtract(vv).Magnitude()
}

// Heading returns the angle (in radians, CCW from the +X axis) of the vector.
func (v Vector2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns the vector rotated CCW about the origin by theta radians.
func (v Vector2) Rotate(theta float64) Vector2 {
	s, c := math.Sincos(theta)
	return Vector2{
		(v.X * c) - (v.Y * s),
		(v.X * s) + (v.Y * c),
	}
}

// MultiplyByMatrix33 treats the vector as the homogeneous point (x, y, 1) and
// returns m times it.
func (v Vector2) MultiplyByMatrix33(m Matrix33) Vector2 {
	return Vector2{
		(m.m11 * v.X) + (m.m12 * v.Y) + m.m13,
		(m.m21 * v.X) + (m.m22 * v.Y) + m.m23,
	}
}
