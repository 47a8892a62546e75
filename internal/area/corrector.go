package area

import (
	"errors"
	"fmt"
	"log"

	"github.com/frudas24/skewarea/internal/geom"
	"github.com/frudas24/skewarea/internal/output"
	"github.com/frudas24/skewarea/internal/skew"
)

// ErrPreconditionViolation is returned when the host never wired an output driver.
var ErrPreconditionViolation = errors.New("area: output driver required")

// Resolver finds the output mode that drives a given pipeline element.
// A nil snapshot with a nil error means the mode is not known yet.
type Resolver interface {
	LookupOutputMode(self any) (*output.Snapshot, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(self any) (*output.Snapshot, error)

// LookupOutputMode calls f.
func (f ResolverFunc) LookupOutputMode(self any) (*output.Snapshot, error) {
	return f(self)
}

// Method selects how a corrected point is produced.
type Method string

const (
	// MethodRectangle maps points into the inner rectangle only.
	MethodRectangle Method = "rectangle"
	// MethodParallelogram maps into the inner rectangle, then applies the shear.
	MethodParallelogram Method = "parallelogram"
)

// ParseMethod maps a name to a Method, defaulting to MethodRectangle.
func ParseMethod(value string) Method {
	if Method(value) == MethodParallelogram {
		return MethodParallelogram
	}
	return MethodRectangle
}

// Corrector maps positions from the full output area into the inner rectangle.
//
// A Corrector holds no geometry between calls: the mode and area are
// resolved again on every sample because the output mode may only become
// reachable after the pipeline is fully wired. It is not safe for concurrent
// use.
type Corrector struct {
	self     any
	resolver Resolver
	resolved bool
}

// New returns a corrector that resolves the output mode driving self.
func New(self any, resolver Resolver) *Corrector {
	return &Corrector{self: self, resolver: resolver}
}

// ResolveOutputMode returns the kind of the output mode that drives this corrector.
func (c *Corrector) ResolveOutputMode() (output.Kind, error) {
	snap, err := c.lookup()
	if err != nil {
		return output.Unknown, err
	}
	if snap == nil {
		return output.Unknown, nil
	}
	switch snap.Kind {
	case output.Absolute, output.Relative:
		return snap.Kind, nil
	default:
		return output.Unknown, nil
	}
}

// ComputeArea returns the absolute output area. ok is false for any other mode.
func (c *Corrector) ComputeArea() (geom.Area, bool, error) {
	snap, err := c.lookup()
	if err != nil {
		return geom.Area{}, false, err
	}
	if snap == nil || snap.Kind != output.Absolute {
		return geom.Area{}, false, nil
	}
	if !c.resolved {
		c.resolved = true
		log.Printf("area: absolute output resolved (%.2fx%.2f at %.2f,%.2f)",
			snap.Area.Width, snap.Area.Height, snap.Area.Center.X, snap.Area.Center.Y)
	}
	return snap.Area, true, nil
}

// ComputeInnerRect derives the inner rectangle for angle from the current area.
func (c *Corrector) ComputeInnerRect(angle float64) (InnerRect, bool, error) {
	a, ok, err := c.ComputeArea()
	if err != nil || !ok {
		return InnerRect{}, false, err
	}
	return InnerRectFor(a, angle), true, nil
}

// CorrectToRectangle maps p into the inner rectangle about the pivot edge.
// Positions pass through unchanged while no absolute area is known.
func (c *Corrector) CorrectToRectangle(p geom.Point, angle float64) (geom.Point, error) {
	return c.CorrectWith(p, skew.New(angle), MethodRectangle)
}

// CorrectToParallelogram maps p into the inner rectangle and shears the result.
func (c *Corrector) CorrectToParallelogram(p geom.Point, angle float64) (geom.Point, error) {
	return c.CorrectWith(p, skew.New(angle), MethodParallelogram)
}

// Correct dispatches to the method's correction.
func (c *Corrector) Correct(p geom.Point, angle float64, method Method) (geom.Point, error) {
	return c.CorrectWith(p, skew.New(angle), method)
}

// CorrectWith corrects p with the shear owned by t.
//
// p is returned unchanged when the mode is not absolute, the area has no
// width, or the angle collapses the inner rectangle to a strip.
func (c *Corrector) CorrectWith(p geom.Point, t *skew.Transform, method Method) (geom.Point, error) {
	a, ok, err := c.ComputeArea()
	if err != nil || !ok || a.Degenerate() {
		return p, err
	}
	r := InnerRectForTransform(a, t)
	if r.Collapsed() {
		return p, nil
	}
	if method == MethodParallelogram {
		return r.Shear(r.ToInner(p)), nil
	}
	return r.ToInner(p), nil
}

// lookup queries the resolver, turning a missing driver into a precondition error.
func (c *Corrector) lookup() (*output.Snapshot, error) {
	if c.resolver == nil {
		return nil, ErrPreconditionViolation
	}
	snap, err := c.resolver.LookupOutputMode(c.self)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPreconditionViolation, err)
	}
	return snap, nil
}
