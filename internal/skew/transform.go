package skew

import (
	"math"

	"github.com/frudas24/skewarea/internal/geom"
)

const (
	// MinAngle is the smallest accepted skew angle in degrees.
	MinAngle = -60.0
	// MaxAngle is the largest accepted skew angle in degrees.
	MaxAngle = 60.0
)

// ClampAngle bounds deg to [MinAngle, MaxAngle]. NaN maps to 0.
func ClampAngle(deg float64) float64 {
	switch {
	case math.IsNaN(deg):
		return 0
	case deg < MinAngle:
		return MinAngle
	case deg > MaxAngle:
		return MaxAngle
	default:
		return deg
	}
}

// Transform owns the skew angle and the shear derived from it.
//
// Positive angles tilt the Y axis clockwise: with Y growing downward a point
// further down the tablet moves right, so x' = x + y*tan(angle).
type Transform struct {
	angle  float64
	tan    float64
	matrix Matrix
}

// New returns a transform for deg, clamped to the accepted range.
func New(deg float64) *Transform {
	t := &Transform{}
	t.SetAngle(deg)
	return t
}

// SetAngle clamps deg and recomputes the shear matrix.
func (t *Transform) SetAngle(deg float64) {
	t.angle = ClampAngle(deg)
	t.tan = math.Tan(t.angle * math.Pi / 180)
	if t.angle == 0 {
		t.matrix = Identity()
		return
	}
	t.matrix = Shear(t.tan)
}

// Angle returns the last clamped angle in degrees.
func (t *Transform) Angle() float64 {
	return t.angle
}

// Tan returns tan(angle).
func (t *Transform) Tan() float64 {
	return t.tan
}

// Matrix returns the derived shear.
func (t *Transform) Matrix() Matrix {
	if t.matrix == (Matrix{}) {
		return Identity()
	}
	return t.matrix
}

// Apply shears p.
func (t *Transform) Apply(p geom.Point) geom.Point {
	return t.Matrix().Apply(p)
}
