package skew

import (
	"math"
	"testing"

	"github.com/frudas24/skewarea/internal/geom"
)

// TestClampAngle verifies out-of-range angles are clamped silently.
func TestClampAngle(t *testing.T) {
	cases := map[float64]float64{
		-1000: MinAngle,
		-60:   -60,
		-12.5: -12.5,
		0:     0,
		45:    45,
		60:    60,
		61:    MaxAngle,
	}
	for in, want := range cases {
		tr := New(0)
		tr.SetAngle(in)
		if got := tr.Angle(); got != want {
			t.Fatalf("SetAngle(%v): expected %v, got %v", in, want, got)
		}
	}
}

// TestClampAngle_NaN verifies NaN is treated as zero.
func TestClampAngle_NaN(t *testing.T) {
	if got := ClampAngle(math.NaN()); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

// TestTransform_ZeroIsIdentity verifies a zero angle yields the identity matrix.
func TestTransform_ZeroIsIdentity(t *testing.T) {
	tr := New(0)
	if !tr.Matrix().IsIdentity() {
		t.Fatalf("expected identity, got %+v", tr.Matrix())
	}
	p := geom.Point{X: 12.5, Y: -7}
	if got := tr.Apply(p); got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
}

// TestTransform_ZeroValue verifies an unset transform behaves as identity.
func TestTransform_ZeroValue(t *testing.T) {
	var tr Transform
	p := geom.Point{X: 3, Y: 4}
	if got := tr.Apply(p); got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}
}

// TestTransform_Shear verifies the matrix applies x' = x + y*tan(angle).
func TestTransform_Shear(t *testing.T) {
	for _, deg := range []float64{-60, -30, -1, 15, 30, 60} {
		tr := New(deg)
		tan := math.Tan(deg * math.Pi / 180)
		for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: -5, Y: -40}} {
			got := tr.Apply(p)
			want := geom.Point{X: p.X + p.Y*tan, Y: p.Y}
			if math.Abs(got.X-want.X) > 1e-9 || got.Y != want.Y {
				t.Fatalf("angle %v point %+v: expected %+v, got %+v", deg, p, want, got)
			}
		}
	}
}

// TestTransform_SetAngleRecomputes verifies changing the angle replaces the matrix.
func TestTransform_SetAngleRecomputes(t *testing.T) {
	tr := New(30)
	tr.SetAngle(0)
	if !tr.Matrix().IsIdentity() {
		t.Fatalf("expected identity after reset, got %+v", tr.Matrix())
	}
	tr.SetAngle(-45)
	if math.Abs(tr.Tan()+1) > 1e-12 {
		t.Fatalf("expected tan -1, got %v", tr.Tan())
	}
}
