package rich

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/line"
)

// Glyph is a positioned glyph.
type Glyph = line.Glyph

// PropsSpan is a range of a shape sharing one set of properties. BBox
// covers its glyphs.
type PropsSpan struct {
	Start, End int
	Props      Props
	BBox       text.BBox
}

// ShapeSpan is a run of glyphs sharing one face, one direction and one
// font query, in visual order.
type ShapeSpan struct {
	Start, End int
	Dir        text.ScriptDir
	FaceID     font.ID
	Font       font.Font
	Size       float64
	Metrics    font.ScaledMetrics
	Glyphs     []Glyph
	Spans      []PropsSpan

	// Baseline is the y of the baseline in a horizontal layout.
	Baseline float64
	BBox     text.BBox
}

// Width is the sum of the horizontal advances.
func (s *ShapeSpan) Width() float64 {
	w := 0.0
	for _, g := range s.Glyphs {
		w += g.XAdvance
	}
	return w
}

// ColumnHeight is the length of the shape in a vertical layout.
func (s *ShapeSpan) ColumnHeight() float64 {
	h := 0.0
	for _, g := range s.Glyphs {
		h += math.Abs(g.YAdvance)
	}
	return h
}

// Line is a line of horizontal text or a column of vertical text. EOL is
// the length of the terminator that follows it, zero for the last line.
type Line struct {
	Start, End int
	EOL        int
	MainDir    text.ScriptDir
	Metrics    font.ScaledMetrics
	Shapes     []ShapeSpan
	BBox       text.BBox
}

// Width is the natural width of the line.
func (l *Line) Width() float64 {
	w := 0.0
	for i := range l.Shapes {
		w += l.Shapes[i].Width()
	}
	return w
}

// ColumnHeight is the natural height of the column.
func (l *Line) ColumnHeight() float64 {
	h := 0.0
	for i := range l.Shapes {
		h += l.Shapes[i].ColumnHeight()
	}
	return h
}

// Text is laid out rich text. Coordinates are Y-down, relative to the
// anchor selected by the layout.
type Text struct {
	text   string
	layout Layout
	lines  []Line
	bbox   text.BBox
}

func (t *Text) Text() string   { return t.text }
func (t *Text) Layout() Layout { return t.layout }
func (t *Text) Lines() []Line  { return t.lines }
func (t *Text) IsEmpty() bool  { return len(t.lines) == 0 }

// IsVertical reports a vertical layout.
func (t *Text) IsVertical() bool {
	_, ok := t.layout.(Vertical)
	return ok
}

// BBox is the union of the line boxes. Line boxes extend from the ascent
// to the descent of the line, so the box does not depend on glyph ink.
func (t *Text) BBox() text.BBox { return t.bbox }

// VisualBBox is the union of the glyph ink boxes. Text without ink returns
// text.EmptyBBox.
func (t *Text) VisualBBox(db *font.Database) (text.BBox, error) {
	box := text.EmptyBBox
	err := t.eachFace(db, func(sh *ShapeSpan, face *font.ResolvedFace) {
		for _, g := range sh.Glyphs {
			if ink, ok := face.GlyphBBox(g.ID, g.Transform); ok {
				box = box.Unite(ink)
			}
		}
	})
	return box, err
}

// SpanPath is the outline of the glyphs of a PropsSpan.
type SpanPath struct {
	Props Props
	Path  *geom.Path
}

// Paths returns one path per props span, in drawing order. Spans without
// ink are skipped.
func (t *Text) Paths(db *font.Database) ([]SpanPath, error) {
	var paths []SpanPath
	var pb geom.PathBuilder
	tb := text.TransformBuilder{B: &pb}
	err := t.eachFace(db, func(sh *ShapeSpan, face *font.ResolvedFace) {
		for _, sp := range sh.Spans {
			for _, g := range sh.Glyphs {
				if g.Cluster < sp.Start || g.Cluster >= sp.End {
					continue
				}
				tb.T = g.Transform
				face.Outline(g.ID, &tb)
			}
			if p := pb.Finish(); p != nil {
				paths = append(paths, SpanPath{Props: sp.Props, Path: p})
			}
		}
	})
	return paths, err
}

// Decoration is an underline or strikeout rectangle.
type Decoration struct {
	Props Props
	Rect  geom.Rect
}

// Decorations returns the underline and strikeout rectangles of the text.
// Vertical text has no underline; its strikeout runs down the middle of
// the column.
func (t *Text) Decorations() []Decoration {
	vertical := t.IsVertical()
	var decos []Decoration
	for li := range t.lines {
		for si := range t.lines[li].Shapes {
			sh := &t.lines[li].Shapes[si]
			for _, sp := range sh.Spans {
				if sp.BBox.IsEmpty() {
					continue
				}
				if vertical {
					if sp.Props.Strikeout {
						th := sh.Metrics.Strikeout.Thickness
						x := (sp.BBox.Left + sp.BBox.Right) / 2
						decos = append(decos, Decoration{sp.Props, geom.FromTRBL(sp.BBox.Top, x+th/2, sp.BBox.Bottom, x-th/2)})
					}
					continue
				}
				if sp.Props.Underline {
					decos = append(decos, Decoration{sp.Props, decoRect(sp.BBox, sh.Baseline, sh.Metrics.Underline)})
				}
				if sp.Props.Strikeout {
					decos = append(decos, Decoration{sp.Props, decoRect(sp.BBox, sh.Baseline, sh.Metrics.Strikeout)})
				}
			}
		}
	}
	return decos
}

func decoRect(b text.BBox, baseline float64, m font.LineMetrics) geom.Rect {
	y := baseline - m.Position
	return geom.FromTRBL(y-m.Thickness/2, b.Right, y+m.Thickness/2, b.Left)
}

func (t *Text) eachFace(db *font.Database, fn func(*ShapeSpan, *font.ResolvedFace)) error {
	faces := newFaceCache(db)
	for li := range t.lines {
		for si := range t.lines[li].Shapes {
			sh := &t.lines[li].Shapes[si]
			face, err := faces.resolve(sh.FaceID, sh.Font)
			if err != nil {
				return err
			}
			fn(sh, face)
		}
	}
	return nil
}

// AssertFlatCoverage panics unless the lines, followed by their
// terminators, cover the text exactly, the shapes of each line cover the
// line and the props spans of each shape cover the shape.
func (t *Text) AssertFlatCoverage() {
	pos := 0
	for li := range t.lines {
		ln := &t.lines[li]
		if ln.Start != pos {
			panic(fmt.Sprintf("rich: line %d starts at %d, want %d", li, ln.Start, pos))
		}
		shapes := slices.Clone(ln.Shapes)
		slices.SortFunc(shapes, func(a, b ShapeSpan) int { return a.Start - b.Start })
		sp := ln.Start
		for _, sh := range shapes {
			if sh.Start != sp {
				panic(fmt.Sprintf("rich: line %d: shape starts at %d, want %d", li, sh.Start, sp))
			}
			pp := sh.Start
			for _, ps := range sh.Spans {
				if ps.Start != pp {
					panic(fmt.Sprintf("rich: line %d: props span starts at %d, want %d", li, ps.Start, pp))
				}
				pp = ps.End
			}
			if pp != sh.End {
				panic(fmt.Sprintf("rich: line %d: props spans end at %d, want %d", li, pp, sh.End))
			}
			sp = sh.End
		}
		if sp != ln.End {
			panic(fmt.Sprintf("rich: line %d: shapes end at %d, want %d", li, sp, ln.End))
		}
		pos = ln.End + ln.EOL
	}
	if pos != len(t.text) {
		panic(fmt.Sprintf("rich: lines end at %d, want %d", pos, len(t.text)))
	}
}
