package math2d

import (
	"fmt"
)

// Positions holds the location of both feet in homogeneous coordinates. Column
// 0 is the left foot, column 1 the right. Row 2 is always 1, as long as the
// value is only built by MakePositions and transformed by matrices with a
// bottom row of (0, 0, 1).
type Positions [3][2]float64

// MakePositions returns the positions of a left and right foot.
func MakePositions(left Vector2, right Vector2) Positions {
	return Positions{
		{left.X, right.X},
		{left.Y, right.Y},
		{1, 1},
	}
}

// Foot returns the cartesian coordinates of the foot in the given column.
func (p Positions) Foot(col int) Vector2 {
	return Vector2{p[0][col], p[1][col]}
}

func (p Positions) Left() Vector2 {
	return p.Foot(0)
}

func (p Positions) Right() Vector2 {
	return p.Foot(1)
}

// String renders both feet to two decimal places, e.g.
// "left (-1.00, -1.00) right (0.00, 0.00)".
func (p Positions) String() string {
	return fmt.Sprintf("left (%.2f, %.2f) right (%.2f, %.2f)", p[0][0], p[1][0], p[0][1], p[1][1])
}

// Transform returns m·p, i.e. both feet moved by m. The receiver is not
// modified.
func (p Positions) Transform(m Matrix33) Positions {
	var out Positions
	for c := 0; c < 2; c++ {
		out[0][c] = (m.m11 * p[0][c]) + (m.m12 * p[1][c]) + (m.m13 * p[2][c])
		out[1][c] = (m.m21 * p[0][c]) + (m.m22 * p[1][c]) + (m.m23 * p[2][c])
		out[2][c] = (m.m31 * p[0][c]) + (m.m32 * p[1][c]) + (m.m33 * p[2][c])
	}

	return out
}
