package font

import (
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
)

// Outline feeds the outline of a glyph to b, in font units with Y up.
// Each contour is closed. It returns false for glyphs without an outline,
// such as bitmap glyphs.
func (rf *ResolvedFace) Outline(gid GID, b text.OutlineBuilder) bool {
	outline, ok := rf.face.GlyphData(gid).(gtfont.GlyphOutline)
	if !ok {
		return false
	}
	open := false
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			b.MoveTo(float64(a[0].X), float64(a[0].Y))
			open = true
		case opentype.SegmentOpLineTo:
			b.LineTo(float64(a[0].X), float64(a[0].Y))
		case opentype.SegmentOpQuadTo:
			b.QuadTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case opentype.SegmentOpCubeTo:
			b.CubicTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y),
				float64(a[2].X), float64(a[2].Y))
		}
	}
	if open {
		b.Close()
	}
	return true
}

// InkBox is the ink extent of a glyph in font units, Y up.
type InkBox struct {
	XMin, YMin, XMax, YMax float64
}

// GlyphInk returns the ink extent of a glyph. Blank glyphs such as spaces
// report false.
func (rf *ResolvedFace) GlyphInk(gid GID) (InkBox, bool) {
	ext, ok := rf.face.GlyphExtents(gid)
	if !ok || ext.Width == 0 || ext.Height == 0 {
		return InkBox{}, false
	}
	x0 := float64(ext.XBearing)
	y1 := float64(ext.YBearing)
	x1 := x0 + float64(ext.Width)
	y0 := y1 + float64(ext.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return InkBox{XMin: x0, YMin: y0, XMax: x1, YMax: y1}, true
}

// GlyphBBox returns the ink box of a glyph mapped through t, the transform
// placing the glyph in layout space.
func (rf *ResolvedFace) GlyphBBox(gid GID, t geom.Transform) (text.BBox, bool) {
	ink, ok := rf.GlyphInk(gid)
	if !ok {
		return text.EmptyBBox, false
	}
	b := text.BBox{Top: ink.YMin, Right: ink.XMax, Bottom: ink.YMax, Left: ink.XMin}
	return b.Transform(t), true
}
