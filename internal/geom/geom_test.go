package geom

import "testing"

// TestAreaBounds_FromCenter verifies bounds are derived from center and size.
func TestAreaBounds_FromCenter(t *testing.T) {
	a := Area{Center: Point{X: 10, Y: 20}, Width: 200, Height: 100}
	got := a.Bounds()
	want := Rect{MinX: -90, MaxX: 110, MinY: -30, MaxY: 70}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got.Width() != 200 || got.Height() != 100 {
		t.Fatalf("unexpected size %vx%v", got.Width(), got.Height())
	}
}

// TestAreaDegenerate verifies zero-width areas are reported as degenerate.
func TestAreaDegenerate(t *testing.T) {
	if !(Area{Width: 0, Height: 50}).Degenerate() {
		t.Fatalf("expected zero-width area to be degenerate")
	}
	if (Area{Width: 1, Height: 0}).Degenerate() {
		t.Fatalf("expected zero-height area with width to not be degenerate")
	}
}

// TestRectNormalize_Inverted verifies inverted edges are swapped.
func TestRectNormalize_Inverted(t *testing.T) {
	in := Rect{MinX: 5, MaxX: -5, MinY: 3, MaxY: 1}
	want := Rect{MinX: -5, MaxX: 5, MinY: 1, MaxY: 3}
	if got := in.Normalize(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

// TestAreaEmpty verifies areas missing either dimension are empty.
func TestAreaEmpty(t *testing.T) {
	for _, a := range []Area{{}, {Width: 10}, {Height: 10}, {Width: -1, Height: 5}} {
		if !a.Empty() {
			t.Fatalf("expected %+v to be empty", a)
		}
	}
	if (Area{Width: 1, Height: 1}).Empty() {
		t.Fatalf("expected 1x1 area to be usable")
	}
}

// TestRectClamp verifies points outside are pulled onto the nearest edge.
func TestRectClamp(t *testing.T) {
	r := Rect{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}
	got := r.Clamp(Point{X: -3, Y: 99})
	if got != (Point{X: 0, Y: 5}) {
		t.Fatalf("expected (0,5), got %+v", got)
	}
}
