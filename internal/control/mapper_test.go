package control

import (
	"math"
	"testing"

	"github.com/frudas24/skewarea/internal/geom"
)

var screen = geom.Area{Center: geom.Point{X: 960, Y: 540}, Width: 1920, Height: 1080}

// TestNormToArea_TopLeft verifies the top-left mapping.
func TestNormToArea_TopLeft(t *testing.T) {
	p := NormToArea(0, 0, screen)
	if p != (geom.Point{X: 0, Y: 0}) {
		t.Fatalf("expected (0,0), got %+v", p)
	}
}

// TestNormToArea_Center verifies center mapping.
func TestNormToArea_Center(t *testing.T) {
	p := NormToArea(0.5, 0.5, screen)
	if p != (geom.Point{X: 960, Y: 540}) {
		t.Fatalf("expected (960,540), got %+v", p)
	}
}

// TestNormToArea_BottomRight verifies bottom-right mapping.
func TestNormToArea_BottomRight(t *testing.T) {
	p := NormToArea(1, 1, screen)
	if p != (geom.Point{X: 1920, Y: 1080}) {
		t.Fatalf("expected (1920,1080), got %+v", p)
	}
}

// TestNormToArea_ClampOutOfRange verifies normalization clamps out-of-range values.
func TestNormToArea_ClampOutOfRange(t *testing.T) {
	p := NormToArea(-1, 2, screen)
	if p != (geom.Point{X: 0, Y: 1080}) {
		t.Fatalf("expected clamped (0,1080), got %+v", p)
	}
	p = NormToArea(math.NaN(), 0, screen)
	if p.X != 0 {
		t.Fatalf("expected NaN to clamp to 0, got %+v", p)
	}
	p = NormToArea(math.Inf(1), math.Inf(-1), geom.Area{Height: 10})
	if p != (geom.Point{X: 0, Y: -5}) {
		t.Fatalf("expected infinities to stay on the edges of a zero-width area, got %+v", p)
	}
}

// TestToPixels verifies positions are rounded to the nearest pixel.
func TestToPixels(t *testing.T) {
	x, y := toPixels(geom.Point{X: 10.5, Y: -2.4})
	if x != 11 || y != -2 {
		t.Fatalf("expected (11,-2), got (%d,%d)", x, y)
	}
}
