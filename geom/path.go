// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import "math"

// Verb is a path construction command.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	default:
		return "Unknown"
	}
}

// pointsPerVerb returns how many points each verb consumes.
func (v Verb) pointsPerVerb() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	default:
		return 0
	}
}

// Path is an immutable vector path produced by [PathBuilder.Finish].
type Path struct {
	verbs  []Verb
	points []Point
}

// Verbs returns the verb slice. It must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point slice. It must not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Walk calls fn for each verb with the points it consumes.
func (p *Path) Walk(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := v.pointsPerVerb()
		fn(v, p.points[i:i+n])
		i += n
	}
}

// Transform returns a new path with every point mapped by t.
func (p *Path) Transform(t Transform) *Path {
	out := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]Point, len(p.points)),
	}
	copy(out.verbs, p.verbs)
	for i, pt := range p.points {
		out.points[i] = t.MapPoint(pt)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the path control points.
// Returns an empty rectangle if the path is empty.
func (p *Path) Bounds() Rect {
	if len(p.points) == 0 {
		return Rect{}
	}

	minX, minY := p.points[0].X, p.points[0].Y
	maxX, maxY := minX, minY

	for _, pt := range p.points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	return FromTRBL(minY, maxX, maxY, minX)
}

// PathBuilder accumulates path commands. The zero value is ready to use.
// A builder can be reused after [PathBuilder.Finish] or [PathBuilder.Clear],
// which keeps its buffers.
//
// Example:
//
//	var pb geom.PathBuilder
//	pb.MoveTo(100, 100)
//	pb.LineTo(200, 100)
//	pb.LineTo(150, 200)
//	pb.Close()
//	path := pb.Finish()
type PathBuilder struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// MoveTo starts a new subpath at the given point.
func (pb *PathBuilder) MoveTo(x, y float64) {
	pb.verbs = append(pb.verbs, MoveTo)
	pb.points = append(pb.points, Point{x, y})
	pb.start = Point{x, y}
	pb.cur = pb.start
}

// LineTo adds a line from the current point to (x, y).
func (pb *PathBuilder) LineTo(x, y float64) {
	if len(pb.verbs) == 0 {
		pb.MoveTo(x, y)
		return
	}
	pb.verbs = append(pb.verbs, LineTo)
	pb.points = append(pb.points, Point{x, y})
	pb.cur = Point{x, y}
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (pb *PathBuilder) QuadTo(cx, cy, x, y float64) {
	if len(pb.verbs) == 0 {
		pb.MoveTo(cx, cy)
	}
	pb.verbs = append(pb.verbs, QuadTo)
	pb.points = append(pb.points, Point{cx, cy}, Point{x, y})
	pb.cur = Point{x, y}
}

// CubicTo adds a cubic Bezier curve from the current point.
// (c1x, c1y) and (c2x, c2y) are control points, (x, y) is the endpoint.
func (pb *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(pb.verbs) == 0 {
		pb.MoveTo(c1x, c1y)
	}
	pb.verbs = append(pb.verbs, CubicTo)
	pb.points = append(pb.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
	pb.cur = Point{x, y}
}

// Close closes the current subpath by connecting to the start point.
func (pb *PathBuilder) Close() {
	if len(pb.verbs) == 0 {
		return
	}
	pb.verbs = append(pb.verbs, Close)
	pb.cur = pb.start
}

// Push appends all commands of p.
func (pb *PathBuilder) Push(p *Path) {
	if p.IsEmpty() {
		return
	}
	pb.verbs = append(pb.verbs, p.verbs...)
	pb.points = append(pb.points, p.points...)
	pb.start = p.points[0]
	pb.cur = p.points[len(p.points)-1]
}

// Clear removes all elements, keeping the allocated buffers.
func (pb *PathBuilder) Clear() {
	pb.verbs = pb.verbs[:0]
	pb.points = pb.points[:0]
	pb.start, pb.cur = Point{}, Point{}
}

// IsEmpty returns true if nothing was added since the last Clear.
func (pb *PathBuilder) IsEmpty() bool {
	return len(pb.verbs) == 0
}

// CurrentPoint returns the current point.
func (pb *PathBuilder) CurrentPoint() Point {
	return pb.cur
}

// Finish returns the accumulated path, or nil if it is empty, and clears the
// builder for reuse.
func (pb *PathBuilder) Finish() *Path {
	if len(pb.verbs) == 0 {
		return nil
	}
	p := &Path{
		verbs:  make([]Verb, len(pb.verbs)),
		points: make([]Point, len(pb.points)),
	}
	copy(p.verbs, pb.verbs)
	copy(p.points, pb.points)
	pb.Clear()
	return p
}
