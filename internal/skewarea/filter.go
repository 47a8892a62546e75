// Package skewarea provides the post-transform stage that corrects a tilted digitizer.
package skewarea

import (
	"github.com/frudas24/skewarea/internal/area"
	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/pipeline"
	"github.com/frudas24/skewarea/internal/skew"
)

// Filter remaps tablet positions into the inner rectangle of the active area.
//
// Filter is not safe for concurrent use; the host serializes Consume and the
// setters.
type Filter struct {
	transform *skew.Transform
	corrector *area.Corrector
	method    area.Method
	emit      func(pipeline.Report)
}

// New returns a filter with a zero skew angle that resolves its output mode through resolver.
func New(resolver area.Resolver) *Filter {
	f := &Filter{
		transform: skew.New(0),
		method:    area.MethodRectangle,
	}
	f.corrector = area.New(f, resolver)
	return f
}

// SetSkewAngleY sets the Y-axis angle in degrees, clamped to [-60, 60].
func (f *Filter) SetSkewAngleY(deg float64) {
	f.transform.SetAngle(deg)
}

// SkewAngleY returns the clamped angle in degrees.
func (f *Filter) SkewAngleY() float64 {
	return f.transform.Angle()
}

// SetMethod selects rectangle or parallelogram correction.
func (f *Filter) SetMethod(m area.Method) {
	f.method = area.ParseMethod(string(m))
}

// Method returns the active correction method.
func (f *Filter) Method() area.Method {
	return f.method
}

// Skew applies the plain shear without any area correction.
func (f *Filter) Skew(p geom.Point) geom.Point {
	return f.transform.Apply(p)
}

// Consume corrects tablet positions and emits every report.
func (f *Filter) Consume(r pipeline.Report) error {
	if report, ok := r.(*pipeline.TabletReport); ok {
		pos, err := f.corrector.CorrectWith(report.Position, f.transform, f.method)
		if err != nil {
			return err
		}
		report.Position = pos
	}
	if f.emit != nil {
		f.emit(r)
	}
	return nil
}

// SetEmit sets the downstream callback.
func (f *Filter) SetEmit(fn func(pipeline.Report)) {
	f.emit = fn
}

// Position places the filter after the output mode transform.
func (f *Filter) Position() pipeline.Position {
	return pipeline.PostTransform
}
