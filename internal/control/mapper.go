// Package control handles the pen report protocol and cursor injection.
package control

import (
	"math"

	"github.com/frudas24/skewarea/internal/geom"
)

// NormToArea maps normalized digitizer coordinates onto an absolute area.
// Out-of-range values land on the nearest edge; NaN maps to the min edge.
func NormToArea(xn, yn float64, a geom.Area) geom.Point {
	b := a.Bounds().Normalize()
	return b.Clamp(geom.Point{
		X: b.MinX + finite(xn)*b.Width(),
		Y: b.MinY + finite(yn)*b.Height(),
	})
}

// toPixels rounds an output position to whole screen pixels.
func toPixels(p geom.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// finite maps NaN to 0 and infinities to the nearest of 0 or 1.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return 1
	}
	return v
}
