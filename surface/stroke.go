// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/ggplot/geom"
)

// flattenTolerance is the maximum distance between a curve and its
// flattened polyline, in surface units.
const flattenTolerance = 0.25

// polyline is a flattened subpath.
type polyline struct {
	pts    []geom.Point
	closed bool
}

// flatten converts p into polylines, splitting curves until they are
// within flattenTolerance of their chords.
func flatten(p *geom.Path) []polyline {
	var out []polyline
	var cur polyline
	var start geom.Point
	flush := func() {
		if len(cur.pts) > 1 {
			out = append(out, cur)
		}
		cur = polyline{}
	}
	p.Walk(func(v geom.Verb, pts []geom.Point) {
		switch v {
		case geom.MoveTo:
			flush()
			start = pts[0]
			cur.pts = append(cur.pts, start)
		case geom.LineTo:
			cur.pts = append(cur.pts, pts[0])
		case geom.QuadTo:
			last := cur.pts[len(cur.pts)-1]
			cur.pts = flattenQuad(last, pts[0], pts[1], 0, cur.pts)
		case geom.CubicTo:
			last := cur.pts[len(cur.pts)-1]
			cur.pts = flattenCubic(last, pts[0], pts[1], pts[2], 0, cur.pts)
		case geom.Close:
			if len(cur.pts) > 0 && cur.pts[len(cur.pts)-1] != start {
				cur.pts = append(cur.pts, start)
			}
			cur.closed = true
			flush()
			cur.pts = append(cur.pts, start)
		}
	})
	flush()
	return out
}

const maxFlattenDepth = 10

func flattenQuad(p0, c, p1 geom.Point, depth int, pts []geom.Point) []geom.Point {
	d := p1.Sub(p0)
	lenSq := d.X*d.X + d.Y*d.Y
	cross := (c.X-p0.X)*d.Y - (c.Y-p0.Y)*d.X
	if depth >= maxFlattenDepth || lenSq < 1e-12 || cross*cross/lenSq < flattenTolerance*flattenTolerance {
		return append(pts, p1)
	}
	q0 := mid(p0, c)
	q1 := mid(c, p1)
	m := mid(q0, q1)
	pts = flattenQuad(p0, q0, m, depth+1, pts)
	return flattenQuad(m, q1, p1, depth+1, pts)
}

func flattenCubic(p0, c1, c2, p1 geom.Point, depth int, pts []geom.Point) []geom.Point {
	d := p1.Sub(p0)
	lenSq := d.X*d.X + d.Y*d.Y
	cross1 := math.Abs((c1.X-p0.X)*d.Y - (c1.Y-p0.Y)*d.X)
	cross2 := math.Abs((c2.X-p0.X)*d.Y - (c2.Y-p0.Y)*d.X)
	maxCross := math.Max(cross1, cross2)
	if depth >= maxFlattenDepth || lenSq < 1e-12 || maxCross*maxCross/lenSq < flattenTolerance*flattenTolerance {
		return append(pts, p1)
	}
	m01 := mid(p0, c1)
	m12 := mid(c1, c2)
	m23 := mid(c2, p1)
	m012 := mid(m01, m12)
	m123 := mid(m12, m23)
	m := mid(m012, m123)
	pts = flattenCubic(p0, m01, m012, m, depth+1, pts)
	return flattenCubic(m, m123, m23, p1, depth+1, pts)
}

func mid(a, b geom.Point) geom.Point {
	return geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// dash cuts polylines into the "on" pieces of pattern. Lengths of the
// pattern are multiples of scale.
func dash(lines []polyline, pattern []float64, scale float64) []polyline {
	var out []polyline
	for _, ln := range lines {
		idx := 0
		left := pattern[0] * scale
		on := true
		piece := []geom.Point{ln.pts[0]}
		for i := 1; i < len(ln.pts); i++ {
			a, b := ln.pts[i-1], ln.pts[i]
			seg := b.Sub(a).Length()
			pos := 0.0
			for seg-pos > left {
				pos += left
				p := a.Add(b.Sub(a).Mul(pos / seg))
				if on {
					piece = append(piece, p)
					out = append(out, polyline{pts: piece})
				}
				piece = []geom.Point{p}
				on = !on
				idx = (idx + 1) % len(pattern)
				left = pattern[idx] * scale
			}
			left -= seg - pos
			piece = append(piece, b)
		}
		if on && len(piece) > 1 {
			out = append(out, polyline{pts: piece})
		}
	}
	return out
}

// strokeOutline returns a path whose non-zero fill covers the stroke of
// lines. Every segment becomes a quad with butt ends and every joint an
// octagon, all wound the same way so that overlaps never cancel.
func strokeOutline(lines []polyline, halfWidth float64) *geom.Path {
	var pb geom.PathBuilder
	for _, ln := range lines {
		for i := 1; i < len(ln.pts); i++ {
			a, b := ln.pts[i-1], ln.pts[i]
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			n := geom.Point{X: -d.Y / l * halfWidth, Y: d.X / l * halfWidth}
			pb.MoveTo(a.X+n.X, a.Y+n.Y)
			pb.LineTo(b.X+n.X, b.Y+n.Y)
			pb.LineTo(b.X-n.X, b.Y-n.Y)
			pb.LineTo(a.X-n.X, a.Y-n.Y)
			pb.Close()
		}
		last := len(ln.pts) - 1
		for i := 1; i < last; i++ {
			joint(&pb, ln.pts[i], halfWidth)
		}
		if ln.closed && last > 0 {
			joint(&pb, ln.pts[0], halfWidth)
		}
	}
	return pb.Finish()
}

// joint adds an octagon of radius r around c, wound like the segment quads.
func joint(pb *geom.PathBuilder, c geom.Point, r float64) {
	const n = 8
	for i := 0; i < n; i++ {
		a := -2 * math.Pi * float64(i) / n
		x, y := c.X+r*math.Cos(a), c.Y+r*math.Sin(a)
		if i == 0 {
			pb.MoveTo(x, y)
		} else {
			pb.LineTo(x, y)
		}
	}
	pb.Close()
}

// strokePath returns the fillable outline of p stroked with s, or nil when
// nothing would be drawn.
func strokePath(p *geom.Path, s *Stroke) *geom.Path {
	if s.Width <= 0 || p.IsEmpty() {
		return nil
	}
	lines := flatten(p)
	if s.IsDashed() {
		lines = dash(lines, s.Dash, s.Width)
	}
	if len(lines) == 0 {
		return nil
	}
	return strokeOutline(lines, s.Width/2)
}
