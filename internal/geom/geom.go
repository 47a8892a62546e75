// Package geom holds the small 2D types shared by the pipeline stages.
package geom

// Point is a position in output coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect describes an axis-aligned rectangle by its edges.
type Rect struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Area describes an absolute output area by center and size.
type Area struct {
	Center Point
	Width  float64
	Height float64
}

// Bounds returns the edges of the area.
func (a Area) Bounds() Rect {
	return Rect{
		MinX: a.Center.X - a.Width/2,
		MaxX: a.Center.X + a.Width/2,
		MinY: a.Center.Y - a.Height/2,
		MaxY: a.Center.Y + a.Height/2,
	}
}

// Degenerate reports whether the area has no horizontal extent.
func (a Area) Degenerate() bool {
	b := a.Bounds()
	return b.MaxX == b.MinX
}

// Empty reports whether the area has no usable width or height.
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Normalize returns a rectangle whose min edges are not greater than its max edges.
func (r Rect) Normalize() Rect {
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// Clamp moves p onto the nearest point inside the rectangle.
func (r Rect) Clamp(p Point) Point {
	r = r.Normalize()
	if p.X < r.MinX {
		p.X = r.MinX
	}
	if p.X > r.MaxX {
		p.X = r.MaxX
	}
	if p.Y < r.MinY {
		p.Y = r.MinY
	}
	if p.Y > r.MaxY {
		p.Y = r.MaxY
	}
	return p
}
