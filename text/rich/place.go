package rich

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
)

// lineAdvance is the distance from the baseline of a to the baseline of
// the line b following it: the gap of a, then the height of b.
func lineAdvance(a, b *Line) float64 {
	return a.Metrics.LineGap + b.Metrics.Height()
}

// baselines returns the offset of every baseline from the first one.
func baselines(lines []Line) []float64 {
	offs := make([]float64, len(lines))
	for i := 1; i < len(lines); i++ {
		offs[i] = offs[i-1] + lineAdvance(&lines[i-1], &lines[i])
	}
	return offs
}

// firstBaseline returns the y of the first baseline satisfying va.
func firstBaseline(lines []Line, offs []float64, va TextVerAlign) float64 {
	last := len(lines) - 1
	top := lines[0].Metrics.Ascent
	bottom := lines[last].Metrics.Descent - offs[last]
	switch va.kind {
	case verTop:
		return top
	case verBottom:
		return bottom
	case verCenter:
		return (top + bottom) / 2
	default:
		i := min(va.line, last)
		return va.align.Offset(lines[i].Metrics.Line()) - offs[i]
	}
}

func (b *Builder) layoutHorizontal(lines []Line, h Horizontal) {
	offs := baselines(lines)
	y0 := firstBaseline(lines, offs, h.VerAlign)
	for i := range lines {
		b.placeLine(&lines[i], y0+offs[i], h)
	}
}

// placeLine positions the glyphs of a line whose baseline is at y.
func (b *Builder) placeLine(ln *Line, y float64, h Horizontal) {
	width := ln.Width()
	j := text.NoJustification(width)
	if target, ok := h.Align.JustifyWidth(); ok {
		j = text.NewJustification(target, width, countSpaces(b.text[ln.Start:ln.End]))
	}
	xStart := h.Align.StartX(j.Size(), ln.MainDir, h.Anchor)
	top, bottom := y-ln.Metrics.Ascent, y-ln.Metrics.Descent

	x, yc := xStart, y
	for si := range ln.Shapes {
		sh := &ln.Shapes[si]
		shStart := x
		for gi := range sh.Glyphs {
			g := &sh.Glyphs[gi]
			g.Transform = glyphTransform(sh.Metrics.Scale, x+g.XOffset, yc-g.YOffset)
			gStart := x
			x += j.Advance(g.XAdvance, b.isSpace(g.Cluster))
			yc -= g.YAdvance
			addToSpans(sh.Spans, g.Cluster, text.BBox{Top: top, Right: x, Bottom: bottom, Left: gStart})
		}
		sh.Baseline = y
		sh.BBox = text.BBox{Top: top, Right: x, Bottom: bottom, Left: shStart}
	}
	ln.BBox = text.BBox{Top: top, Right: x, Bottom: bottom, Left: xStart}
}

// layoutVertical places columns side by side. Each column is as wide as
// its em size; columns are separated by InterColumn times the em size of
// the previous one.
func (b *Builder) layoutVertical(cols []Line, v Vertical) {
	prog := v.Progression.resolve(b.text)
	left := 0.0
	for i := range cols {
		width := cols[i].Metrics.EmSize
		if i > 0 {
			prev := cols[i-1].Metrics.EmSize
			gap := prev * v.InterColumn
			if prog == ProgressRTL {
				left -= gap + width
			} else {
				left += prev + gap
			}
		}
		b.placeColumn(&cols[i], left, width, v)
	}
}

// placeColumn positions the glyphs of a column spanning [left, left+width]
// horizontally. Glyphs hang from the center line, one below the other.
func (b *Builder) placeColumn(col *Line, left, width float64, v Vertical) {
	height := col.ColumnHeight()
	j := text.NoJustification(height)
	if target, ok := v.Align.JustifyWidth(); ok {
		j = text.NewJustification(target, height, countSpaces(b.text[col.Start:col.End]))
	}
	yStart := v.Align.StartY(j.Size(), col.MainDir)
	right := left + width
	center := left + width/2

	y := yStart
	for si := range col.Shapes {
		sh := &col.Shapes[si]
		shStart := y
		for gi := range sh.Glyphs {
			g := &sh.Glyphs[gi]
			g.Transform = glyphTransform(sh.Metrics.Scale, center+g.XOffset, y-g.YOffset)
			gStart := y
			y += j.Advance(math.Abs(g.YAdvance), b.isSpace(g.Cluster))
			addToSpans(sh.Spans, g.Cluster, text.BBox{Top: gStart, Right: right, Bottom: y, Left: left})
		}
		sh.BBox = text.BBox{Top: shStart, Right: right, Bottom: y, Left: left}
	}
	col.BBox = text.BBox{Top: yStart, Right: right, Bottom: y, Left: left}
}

// glyphTransform maps a glyph outline, in font units with Y up, to a
// Y-down layout where its origin is at (x, y).
func glyphTransform(scale, x, y float64) geom.Transform {
	return geom.FlipY().Then(geom.Scale(scale, scale)).ThenTranslate(x, y)
}

func addToSpans(spans []PropsSpan, cluster int, box text.BBox) {
	for i := range spans {
		if spans[i].Start <= cluster && cluster < spans[i].End {
			spans[i].BBox = spans[i].BBox.Unite(box)
		}
	}
}

func (b *Builder) isSpace(cluster int) bool {
	r, _ := utf8.DecodeRuneInString(b.text[cluster:])
	return unicode.IsSpace(r)
}

func countSpaces(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
