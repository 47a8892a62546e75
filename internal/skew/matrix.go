// Package skew derives the Y-axis shear applied by a tilted digitizer.
package skew

import "github.com/frudas24/skewarea/internal/geom"

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Shear returns a horizontal shear where x' = x + y*factor.
func Shear(factor float64) Matrix {
	return Matrix{A: 1, B: factor, E: 1}
}

// Apply transforms p.
func (m Matrix) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
