package rich

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/font"
)

var (
	dbOnce sync.Once
	testDB *font.Database
)

func bundled() *font.Database {
	dbOnce.Do(func() {
		testDB = font.NewDatabase(font.WithBundledFonts())
	})
	return testDB
}

func layout(t *testing.T, b *Builder) *Text {
	t.Helper()
	txt, err := b.ShapeAndLayout(bundled())
	require.NoError(t, err)
	require.NotPanics(t, txt.AssertFlatCoverage)
	return txt
}

func TestUnderlineSpan(t *testing.T) {
	b := NewBuilder("Some RICH\ntext string", NewProps(12))
	b.AddSpan(5, 9, OptProps{Underline: Ptr(true)})
	txt := layout(t, b)

	lines := txt.Lines()
	require.Len(t, lines, 2)
	require.Len(t, lines[0].Shapes, 1)
	require.Len(t, lines[1].Shapes, 1)

	spans := lines[0].Shapes[0].Spans
	require.Len(t, spans, 2)
	assert.False(t, spans[0].Props.Underline)
	assert.True(t, spans[1].Props.Underline)
	assert.Equal(t, 5, spans[1].Start)
	assert.Equal(t, 9, spans[1].End)
	require.Len(t, lines[1].Shapes[0].Spans, 1)
	assert.False(t, lines[1].Shapes[0].Spans[0].Props.Underline)

	decos := txt.Decorations()
	require.Len(t, decos, 1)
	assert.True(t, decos[0].Props.Underline)
	assert.InDelta(t, spans[1].BBox.Left, decos[0].Rect.Left(), 1e-9)
	assert.InDelta(t, spans[1].BBox.Right, decos[0].Rect.Right(), 1e-9)
}

func TestSpanAcrossLines(t *testing.T) {
	b := NewBuilder("Some RICH\ntext string", NewProps(12))
	b.AddSpan(2, 12, OptProps{Weight: Ptr(font.WeightBold)})
	txt := layout(t, b)

	lines := txt.Lines()
	require.Len(t, lines, 2)
	require.Len(t, lines[0].Shapes, 2)
	require.Len(t, lines[1].Shapes, 2)
	assert.Equal(t, font.WeightNormal, lines[0].Shapes[0].Font.Weight())
	assert.Equal(t, font.WeightBold, lines[0].Shapes[1].Font.Weight())
	assert.Equal(t, font.WeightBold, lines[1].Shapes[0].Font.Weight())
	assert.Equal(t, font.WeightNormal, lines[1].Shapes[1].Font.Weight())
}

func TestShapeAffectingSpan(t *testing.T) {
	b := NewBuilder("Some RICH", NewProps(12))
	b.AddSpan(5, 9, OptProps{Size: Ptr(24.0)})
	txt := layout(t, b)

	ln := txt.Lines()[0]
	require.Len(t, ln.Shapes, 2)
	assert.Equal(t, 12.0, ln.Shapes[0].Size)
	assert.Equal(t, 24.0, ln.Shapes[1].Size)
	assert.Equal(t, 24.0, ln.Metrics.EmSize)
	assert.Equal(t, ln.Shapes[1].Metrics.Ascent, ln.Metrics.Ascent)
}

func TestLineTerminators(t *testing.T) {
	const s = "a\r\nb\u0085c\u2028d\u2029e\n"
	txt := layout(t, NewBuilder(s, NewProps(12)))

	lines := txt.Lines()
	require.Len(t, lines, 5)
	want := []struct{ start, end, eol int }{
		{0, 1, 2},
		{3, 4, 2},
		{6, 7, 3},
		{10, 11, 3},
		{14, 15, 1},
	}
	for i, w := range want {
		assert.Equal(t, w.start, lines[i].Start, "line %d", i)
		assert.Equal(t, w.end, lines[i].End, "line %d", i)
		assert.Equal(t, w.eol, lines[i].EOL, "line %d", i)
	}
}

func TestEmptyLines(t *testing.T) {
	txt := layout(t, NewBuilder("a\n\nb", NewProps(12)))
	lines := txt.Lines()
	require.Len(t, lines, 3)
	assert.Empty(t, lines[1].Shapes)
	assert.Equal(t, 12.0, lines[1].Metrics.EmSize)
	assert.Greater(t, lines[1].Metrics.Height(), 0.0)
	assert.Greater(t, lines[2].Shapes[0].Baseline, lines[1].BBox.Bottom-1e-9)
}

func TestMixedCoverage(t *testing.T) {
	for _, dir := range []Direction{Mixed, MixedLTR, MixedRTL, LTR, RTL} {
		t.Run(dir.String(), func(t *testing.T) {
			b := NewBuilder("abc שלום def\nשלום abc", NewProps(12)).WithLayout(Horizontal{Dir: dir})
			b.AddSpan(1, 6, OptProps{Weight: Ptr(font.WeightBold)})
			b.AddSpan(4, 16, OptProps{Underline: Ptr(true)})
			layout(t, b)
		})
	}
}

func TestRTLMainDir(t *testing.T) {
	txt := layout(t, NewBuilder("שלום abc", NewProps(12)))
	ln := txt.Lines()[0]
	assert.Equal(t, text.RTL, ln.MainDir)
	assert.InDelta(t, 0, ln.BBox.Right, 1e-9)
	assert.InDelta(t, -ln.Width(), ln.BBox.Left, 1e-9)
}

func TestHorizontalTop(t *testing.T) {
	txt := layout(t, NewBuilder("Hello", NewProps(20)).WithLayout(Horizontal{VerAlign: Top}))
	ln := txt.Lines()[0]
	bbox := txt.BBox()
	assert.InDelta(t, 0, bbox.Top, 1e-9)
	assert.Equal(t, 0.0, bbox.Left)
	assert.InDelta(t, ln.Width(), bbox.Right, 1e-9)
	assert.InDelta(t, ln.Metrics.Height(), bbox.Bottom, 1e-9)
	assert.InDelta(t, ln.Metrics.Ascent, ln.Shapes[0].Baseline, 1e-9)

	origin := ln.Shapes[0].Glyphs[0].Transform.MapPoint(geom.Pt(0, 0))
	assert.InDelta(t, ln.Metrics.Ascent, origin.Y, 1e-9)
}

func TestHorizontalVerAlign(t *testing.T) {
	const s = "one\ntwo\nthree"
	build := func(va TextVerAlign) *Text {
		return layout(t, NewBuilder(s, NewProps(12)).WithLayout(Horizontal{VerAlign: va}))
	}

	base := build(TextVerAlign{})
	lines := base.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, 0.0, lines[0].Shapes[0].Baseline)
	adv := lineAdvance(&lines[0], &lines[1])
	assert.InDelta(t, adv, lines[1].Shapes[0].Baseline, 1e-9)
	assert.InDelta(t, 2*adv, lines[2].Shapes[0].Baseline, 1e-9)

	bottom := build(Bottom)
	assert.InDelta(t, 0, bottom.BBox().Bottom, 1e-9)

	center := build(Center)
	assert.InDelta(t, 0, center.BBox().Top+center.BBox().Bottom, 1e-9)

	at := build(AtLine(1, text.Baseline))
	assert.InDelta(t, 0, at.Lines()[1].Shapes[0].Baseline, 1e-9)

	past := build(AtLine(7, text.Top))
	last := past.Lines()[2]
	assert.InDelta(t, 0, last.BBox.Top, 1e-9)
}

func TestJustify(t *testing.T) {
	natural := layout(t, NewBuilder("a b c", NewProps(12)))
	w := natural.Lines()[0].Width()

	same := layout(t, NewBuilder("a b c", NewProps(12)).WithLayout(Horizontal{Align: text.Justify(w)}))
	assert.InDelta(t, natural.BBox().Right, same.BBox().Right, 1e-9)

	wide := layout(t, NewBuilder("a b c", NewProps(12)).WithLayout(Horizontal{Align: text.Justify(w + 40)}))
	assert.InDelta(t, w+40, wide.BBox().Right, 1e-6)

	// Without whitespace every glyph is stretched.
	solid := layout(t, NewBuilder("abc", NewProps(12)).WithLayout(Horizontal{Align: text.Justify(100)}))
	assert.InDelta(t, 100, solid.BBox().Right, 1e-6)
}

func TestVerticalColumns(t *testing.T) {
	b := NewBuilder("ab\ncd", NewProps(12)).WithLayout(DefaultVertical())
	txt := layout(t, b)
	assert.True(t, txt.IsVertical())

	cols := txt.Lines()
	require.Len(t, cols, 2)
	assert.Equal(t, text.TTB, cols[0].MainDir)
	assert.InDelta(t, 0, cols[0].BBox.Left, 1e-9)
	assert.InDelta(t, 12, cols[0].BBox.Right, 1e-9)
	assert.InDelta(t, 18, cols[1].BBox.Left, 1e-9)
	assert.InDelta(t, 0, cols[0].BBox.Top, 1e-9)
	assert.InDelta(t, cols[0].ColumnHeight(), cols[0].BBox.Bottom, 1e-9)

	rtl := DefaultVertical()
	rtl.Progression = ProgressRTL
	txt = layout(t, NewBuilder("ab\ncd", NewProps(12)).WithLayout(rtl))
	cols = txt.Lines()
	assert.InDelta(t, -18, cols[1].BBox.Left, 1e-9)
	assert.InDelta(t, -6, cols[1].BBox.Right, 1e-9)
}

func TestVerticalDecorations(t *testing.T) {
	b := NewBuilder("abc", NewProps(12)).WithLayout(DefaultVertical())
	b.AddSpan(0, 3, OptProps{Underline: Ptr(true), Strikeout: Ptr(true)})
	txt := layout(t, b)

	decos := txt.Decorations()
	require.Len(t, decos, 1, "vertical text is not underlined")
	assert.True(t, decos[0].Props.Strikeout)
	assert.InDelta(t, 6, decos[0].Rect.Center().X, 1e-9)
}

func TestPathsAndVisualBBox(t *testing.T) {
	db := bundled()
	b := NewBuilder("Some RICH", NewProps(24))
	b.AddSpan(5, 9, OptProps{Underline: Ptr(true)})
	txt := layout(t, b)

	paths, err := txt.Paths(db)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.False(t, paths[0].Props.Underline)
	assert.True(t, paths[1].Props.Underline)
	assert.Less(t, paths[0].Path.Bounds().Right(), paths[1].Path.Bounds().Left()+1e-9)

	vis, err := txt.VisualBBox(db)
	require.NoError(t, err)
	require.False(t, vis.IsEmpty())
	typo := txt.BBox()
	assert.GreaterOrEqual(t, vis.Top, typo.Top)
	assert.LessOrEqual(t, vis.Bottom, typo.Bottom+1e-9)
}

func TestAddSpanPanics(t *testing.T) {
	b := NewBuilder("héllo", NewProps(12))
	assert.Panics(t, func() { b.AddSpan(3, 2, OptProps{}) })
	assert.Panics(t, func() { b.AddSpan(0, 100, OptProps{}) })
	assert.Panics(t, func() { b.AddSpan(2, 4, OptProps{}) })
	assert.NotPanics(t, func() { b.AddSpan(1, 3, OptProps{}) })
}

func TestNoSuchFont(t *testing.T) {
	root := NewProps(12)
	root.Font = font.New(font.Named("Missing Family"))
	_, err := NewBuilder("Hello", root).ShapeAndLayout(bundled())
	require.Error(t, err)
	assert.True(t, errors.Is(err, font.ErrNoSuchFont))
}

func TestEmptyText(t *testing.T) {
	txt := layout(t, NewBuilder("", NewProps(12)))
	assert.True(t, txt.IsEmpty())
	assert.Equal(t, text.BBox{}, txt.BBox())
	assert.Empty(t, txt.Decorations())
}

func TestMixedSizeLineSpacing(t *testing.T) {
	b := NewBuilder("small\nBIG\nsmall", NewProps(10))
	b.AddSpan(6, 9, OptProps{Size: Ptr(40.0)})
	lines := layout(t, b).Lines()
	require.Len(t, lines, 3)

	small, big := lines[0].Metrics, lines[1].Metrics
	require.Greater(t, big.Height(), small.Height())

	// Each baseline moves by the gap of the line above and the height of
	// the line itself.
	down := lines[1].Shapes[0].Baseline - lines[0].Shapes[0].Baseline
	assert.InDelta(t, small.LineGap+big.Height(), down, 1e-9)
	up := lines[2].Shapes[0].Baseline - lines[1].Shapes[0].Baseline
	assert.InDelta(t, big.LineGap+small.Height(), up, 1e-9)
	assert.Greater(t, down, up)
}

func TestMissingGlyphFallback(t *testing.T) {
	db := bundled()
	b := NewBuilder("xơy", NewProps(12))
	b.AddSpan(0, 3, OptProps{Fill: Ptr(color.Direct(color.Red))})
	txt := layout(t, b)

	lines := txt.Lines()
	require.Len(t, lines, 1)
	shapes := lines[0].Shapes
	require.Len(t, shapes, 3)
	assert.NotEqual(t, shapes[0].FaceID, shapes[1].FaceID)
	assert.Equal(t, shapes[0].FaceID, shapes[2].FaceID)
	info, ok := db.Face(shapes[1].FaceID)
	require.True(t, ok)
	assert.True(t, info.HasFamily("Latin Modern Roman"))
	for _, sh := range shapes {
		for _, g := range sh.Glyphs {
			assert.NotZero(t, g.ID)
		}
	}

	// The red span is cut at the face change.
	red := color.Direct(color.Red)
	require.Len(t, shapes[0].Spans, 1)
	assert.Equal(t, [2]int{0, 1}, [2]int{shapes[0].Spans[0].Start, shapes[0].Spans[0].End})
	assert.Equal(t, red, *shapes[0].Spans[0].Props.Fill)
	require.Len(t, shapes[1].Spans, 1)
	assert.Equal(t, [2]int{1, 3}, [2]int{shapes[1].Spans[0].Start, shapes[1].Spans[0].End})
	assert.Equal(t, red, *shapes[1].Spans[0].Props.Fill)
	require.Len(t, shapes[2].Spans, 1)
	assert.Equal(t, color.Direct(color.Black), *shapes[2].Spans[0].Props.Fill)

	paths, err := txt.Paths(db)
	require.NoError(t, err)
	assert.NotEmpty(t, paths)
}
