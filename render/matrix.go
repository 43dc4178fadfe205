package render

import (
	"math"

	"github.com/gogpu/tk/geom"
)

// Matrix is a 2D affine transformation matrix:
//
//	| XX XY X0 |
//	| YX YY Y0 |
//	|  0  0  1 |
type Matrix struct {
	XX, YX, XY, YY, X0, Y0 float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{XX: 1, YY: 1, X0: x, Y0: y}
}

// Scale returns a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{XX: x, YY: y}
}

// Rotate returns a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{XX: c, YX: s, XY: -s, YY: c}
}

// Multiply returns the matrix product m * n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		XX: m.XX*n.XX + m.XY*n.YX,
		YX: m.YX*n.XX + m.YY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		YY: m.YX*n.XY + m.YY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(p geom.Point) geom.Point {
	return geom.Point{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
	}
}

// IsIdentity reports whether the matrix is the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
