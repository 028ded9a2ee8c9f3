package geom

import "math"

// Rect is an axis-aligned rectangle. X and Y locate the top-left corner in
// a Y-down space. A rectangle with a negative width or height is invalid;
// constructors normalize their input.
type Rect struct {
	X, Y, W, H float64
}

// FromXYWH creates a rectangle from its top-left corner and size.
func FromXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromTRBL creates a rectangle from its four sides.
func FromTRBL(top, right, bottom, left float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// FromPS creates a rectangle from its top-left corner and a size.
func FromPS(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// FromCorners creates the rectangle spanned by two opposite corners given in
// any order.
func FromCorners(p1, p2 Point) Rect {
	return FromTRBL(
		math.Min(p1.Y, p2.Y),
		math.Max(p1.X, p2.X),
		math.Max(p1.Y, p2.Y),
		math.Min(p1.X, p2.X),
	)
}

func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Left() float64   { return r.X }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Size returns the rectangle size.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// ContainsPoint reports whether p lies inside r. The right and bottom edges
// are inclusive.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Pad shrinks the rectangle by the padding.
func (r Rect) Pad(p Padding) Rect {
	return Rect{
		X: r.X + p.Left(),
		Y: r.Y + p.Top(),
		W: r.W - p.SumH(),
		H: r.H - p.SumV(),
	}
}

// Grow enlarges the rectangle by the margin.
func (r Rect) Grow(m Margin) Rect {
	return Rect{
		X: r.X - m.Left(),
		Y: r.Y - m.Top(),
		W: r.W + m.SumH(),
		H: r.H + m.SumV(),
	}
}

// Unite returns the smallest rectangle containing both r and other.
func (r Rect) Unite(other Rect) Rect {
	return FromTRBL(
		math.Min(r.Top(), other.Top()),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
		math.Min(r.Left(), other.Left()),
	)
}

// Intersect returns the overlap of r and other. ok is false when they do
// not overlap.
func (r Rect) Intersect(other Rect) (out Rect, ok bool) {
	top := math.Max(r.Top(), other.Top())
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	left := math.Max(r.Left(), other.Left())
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return FromTRBL(top, right, bottom, left), true
}

// UniteOpt unites two optional rectangles. It returns nil only when both
// are nil.
func UniteOpt(a, b *Rect) *Rect {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		c := *b
		return &c
	case b == nil:
		c := *a
		return &c
	}
	u := a.Unite(*b)
	return &u
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Transform returns the axis-aligned bounds of the transformed rectangle.
func (r Rect) Transform(t Transform) Rect {
	if t.IsTranslation() {
		return r.Translate(t.C, t.F)
	}
	corners := [4]Point{
		t.MapPoint(Point{r.Left(), r.Top()}),
		t.MapPoint(Point{r.Right(), r.Top()}),
		t.MapPoint(Point{r.Right(), r.Bottom()}),
		t.MapPoint(Point{r.Left(), r.Bottom()}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	return FromTRBL(minY, maxX, maxY, minX)
}

// WithTop returns the rectangle with its top side moved, keeping the bottom.
func (r Rect) WithTop(top float64) Rect {
	return FromTRBL(top, r.Right(), r.Bottom(), r.Left())
}

// WithRight returns the rectangle with its right side moved.
func (r Rect) WithRight(right float64) Rect {
	return FromTRBL(r.Top(), right, r.Bottom(), r.Left())
}

// WithBottom returns the rectangle with its bottom side moved.
func (r Rect) WithBottom(bottom float64) Rect {
	return FromTRBL(r.Top(), r.Right(), bottom, r.Left())
}

// WithLeft returns the rectangle with its left side moved, keeping the right.
func (r Rect) WithLeft(left float64) Rect {
	return FromTRBL(r.Top(), r.Right(), r.Bottom(), left)
}

// ToPath returns a closed path tracing the rectangle clockwise.
func (r Rect) ToPath() *Path {
	var pb PathBuilder
	pb.MoveTo(r.Left(), r.Top())
	pb.LineTo(r.Right(), r.Top())
	pb.LineTo(r.Right(), r.Bottom())
	pb.LineTo(r.Left(), r.Bottom())
	pb.Close()
	return pb.Finish()
}
