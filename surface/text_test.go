package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/line"
	"github.com/gogpu/ggplot/text/rich"
)

func TestLineTextPaths(t *testing.T) {
	db := bundled()
	lt, err := line.New("Hello", font.Default(), 16, db)
	require.NoError(t, err)

	item := &LineText{Text: lt, Fill: Solid(color.Blue), Transform: geom.Translate(1, 2)}
	paths, err := LineTextPaths(item, db)
	require.NoError(t, err)
	require.Len(t, paths, len(lt.Shapes()))
	for _, p := range paths {
		require.NotNil(t, p.Fill)
		assert.Equal(t, color.Direct(color.Blue), p.Fill.Color)
		assert.Nil(t, p.Stroke)
		assert.Equal(t, geom.Translate(1, 2), *p.Transform)
		assert.False(t, p.Path.IsEmpty())
	}
}

func TestRichTextPathsDecorationsLast(t *testing.T) {
	db := bundled()
	b := rich.NewBuilder("strike\nplain", rich.NewProps(14))
	b.AddSpan(0, 6, rich.OptProps{Strikeout: rich.Ptr(true), Fill: rich.Ptr(color.Palette(1))})
	txt, err := b.ShapeAndLayout(db)
	require.NoError(t, err)

	paths, err := RichTextPaths(&RichText{Text: txt, Transform: geom.Identity()}, db)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	deco := paths[2]
	require.NotNil(t, deco.Fill)
	assert.Equal(t, color.Palette(1), deco.Fill.Color)
	assert.Len(t, deco.Path.Verbs(), 5, "a closed rectangle")
	assert.Equal(t, color.Direct(color.Black), paths[1].Fill.Color)
}

func TestRichTextPathsWithoutFill(t *testing.T) {
	db := bundled()
	props := rich.NewProps(10)
	props.Fill = nil
	txt, err := rich.NewBuilder("ab", props).ShapeAndLayout(db)
	require.NoError(t, err)

	paths, err := RichTextPaths(&RichText{Text: txt, Transform: geom.Identity()}, db)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Nil(t, paths[0].Fill)
	assert.Nil(t, paths[0].Stroke)

	// Nothing to paint: the image surface draws nothing.
	s := newWhite(t, 20, 20, WithFonts(db))
	require.NoError(t, s.DrawTextLayout(&RichText{Text: txt, Transform: geom.Translate(2, 15)}))
	_, n := darkPixels(s.Image())
	assert.Zero(t, n)
}
