// Package area remaps pen positions into the rectangle that a skewed digitizer can reach.
package area

import (
	"math"

	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/skew"
)

// stripTolerance is the fraction of the outer width below which the inner
// rectangle counts as a zero-width strip.
const stripTolerance = 1e-9

// InnerRect is the edge-aligned rectangle whose shear image fits the outer area.
type InnerRect struct {
	Outer geom.Rect
	Inner geom.Rect
	// Pivot is the X of the outer edge that stays fixed.
	Pivot float64
	// Skew is the shear that sized Inner.
	Skew skew.Matrix
}

// InnerRectFor derives the inner rectangle for a and a skew angle in degrees.
func InnerRectFor(a geom.Area, angle float64) InnerRect {
	return InnerRectForTransform(a, skew.New(angle))
}

// InnerRectForTransform derives the inner rectangle for a from the shear of t.
//
// The inner rectangle keeps the outer Y bounds. Its width shrinks by the
// horizontal travel of the shear over the area height; for positive angles
// it is aligned to the right edge, otherwise to the left edge. A width that
// reaches zero collapses to a zero-width strip on the pivot edge.
func InnerRectForTransform(a geom.Area, t *skew.Transform) InnerRect {
	outer := a.Bounds().Normalize()
	m := t.Matrix()
	r := InnerRect{Outer: outer, Inner: outer, Pivot: outer.MinX, Skew: m}
	if m.IsIdentity() {
		return r
	}

	edge := outer.Width() - math.Abs(m.B)*outer.Height()
	if edge <= outer.Width()*stripTolerance {
		edge = 0
	}

	if t.Angle() > 0 {
		r.Pivot = outer.MaxX
		r.Inner.MinX = outer.MaxX - edge
	} else {
		r.Inner.MaxX = outer.MinX + edge
	}
	return r
}

// Collapsed reports whether the inner rectangle is a zero-width strip.
func (r InnerRect) Collapsed() bool {
	return r.Inner.Width() <= 0
}

// ScaleX returns the horizontal factor from the outer to the inner rectangle.
// A zero-width outer area yields 1.
func (r InnerRect) ScaleX() float64 {
	w := r.Outer.Width()
	if w == 0 {
		return 1
	}
	return r.Inner.Width() / w
}

// ToInner maps p from the outer rectangle into the inner one about the pivot edge.
// A zero-width outer area or a collapsed strip leaves p unchanged.
func (r InnerRect) ToInner(p geom.Point) geom.Point {
	if r.Outer.Width() <= 0 || r.Collapsed() || r.Inner.Width() == r.Outer.Width() {
		return p
	}
	p.X = (p.X-r.Pivot)*r.ScaleX() + r.Pivot
	return p
}

// Shear applies the skew about the bottom edge so an inner-rectangle point
// lands inside the outer parallelogram.
func (r InnerRect) Shear(p geom.Point) geom.Point {
	if r.Skew.IsIdentity() || r.Skew == (skew.Matrix{}) {
		return p
	}
	m := r.Skew
	m.C = -r.Outer.MaxY * m.B
	return m.Apply(p)
}
