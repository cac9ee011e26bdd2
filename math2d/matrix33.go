package math2d

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Matrix33 is a transform in homogeneous 2D coordinates. Points are column
// vectors (x, y, 1), so transforms compose right-to-left: A·B applies B first.
type Matrix33 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m21 float64 // 3
	m22 float64 // 4
	m23 float64 // 5
	m31 float64 // 6
	m32 float64 // 7
	m33 float64 // 8
}

var (
	Identity33 = Matrix33{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
)

// MakeMatrix33 returns a matrix from its nine elements, in row order.
func MakeMatrix33(e [3][3]float64) Matrix33 {
	return Matrix33{
		e[0][0], e[0][1], e[0][2],
		e[1][0], e[1][1], e[1][2],
		e[2][0], e[2][1], e[2][2],
	}
}

// MakeRotation returns a matrix which rotates CCW about the origin by theta
// radians. Pass a negative theta to rotate CW.
//
//	cos -sin  0
//	sin  cos  0
//	0    0    1
func MakeRotation(theta float64) Matrix33 {
	s, c := math.Sincos(theta)
	return Matrix33{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// MakeTranslation returns a matrix which moves points by v.
//
//	1  0  x
//	0  1  y
//	0  0  1
func MakeTranslation(v Vector2) Matrix33 {
	return Matrix33{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	}
}

// RotationAbout returns T1·R·T2, where T2 moves the pivot to the origin, R is
// the rotation, and T1 moves the pivot back. The pivot is a fixed point of the
// result.
func RotationAbout(pivot Vector2, r Matrix33) Matrix33 {
	t1 := MakeTranslation(pivot)
	t2 := MakeTranslation(pivot.Negate())
	return *MultiplyMatrices(*MultiplyMatrices(t1, r), t2)
}

func (m Matrix33) String() string {
	return fmt.Sprintf(
		"&M33{%+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13,
		m.m21, m.m22, m.m23,
		m.m31, m.m32, m.m33)
}

// Elements returns the matrix as a 2D array of float64s, in row order.
func (m Matrix33) Elements() [3][3]float64 {
	return [3][3]float64{
		{m.m11, m.m12, m.m13},
		{m.m21, m.m22, m.m23},
		{m.m31, m.m32, m.m33},
	}
}

// Transpose returns the matrix flipped about its diagonal.
func (m Matrix33) Transpose() Matrix33 {
	return Matrix33{
		m.m11, m.m21, m.m31,
		m.m12, m.m22, m.m32,
		m.m13, m.m23, m.m33,
	}
}

// Determinant returns the determinant of the matrix.
func (m Matrix33) Determinant() float64 {
	return (m.m11 * ((m.m22 * m.m33) - (m.m23 * m.m32))) -
		(m.m12 * ((m.m21 * m.m33) - (m.m23 * m.m31))) +
		(m.m13 * ((m.m21 * m.m32) - (m.m22 * m.m31)))
}

// Inverse returns the inverse of the matrix, and false if it has none.
func (m Matrix33) Inverse() (Matrix33, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix33{}, false
	}

	d := 1 / det
	return Matrix33{
		((m.m22 * m.m33) - (m.m23 * m.m32)) * d,
		((m.m13 * m.m32) - (m.m12 * m.m33)) * d,
		((m.m12 * m.m23) - (m.m13 * m.m22)) * d,
		((m.m23 * m.m31) - (m.m21 * m.m33)) * d,
		((m.m11 * m.m33) - (m.m13 * m.m31)) * d,
		((m.m13 * m.m21) - (m.m11 * m.m23)) * d,
		((m.m21 * m.m32) - (m.m22 * m.m31)) * d,
		((m.m12 * m.m31) - (m.m11 * m.m32)) * d,
		((m.m11 * m.m22) - (m.m12 * m.m21)) * d,
	}, true
}

// EqualWithinAbs returns true if every element of m is within tol of the
// corresponding element of mm.
func (m Matrix33) EqualWithinAbs(mm Matrix33, tol float64) bool {
	a := m.Elements()
	b := mm.Elements()
	for r := range a {
		for c := range a[r] {
			if !scalar.EqualWithinAbs(a[r][c], b[r][c], tol) {
				return false
			}
		}
	}

	return true
}

// MultiplyMatrices multiplies two 3x3 matrices together, and returns a pointer
// to the result.
func MultiplyMatrices(a Matrix33, b Matrix33) *Matrix33 {
	return &Matrix33{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33),
	}
}
