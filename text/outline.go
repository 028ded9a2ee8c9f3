package text

import "github.com/gogpu/ggplot/geom"

// TransformBuilder forwards outline commands to B with every point mapped
// through T. It places glyph outlines, authored in font units, into layout
// space.
type TransformBuilder struct {
	B OutlineBuilder
	T geom.Transform
}

func (tb *TransformBuilder) MoveTo(x, y float64) {
	p := tb.T.MapPoint(geom.Pt(x, y))
	tb.B.MoveTo(p.X, p.Y)
}

func (tb *TransformBuilder) LineTo(x, y float64) {
	p := tb.T.MapPoint(geom.Pt(x, y))
	tb.B.LineTo(p.X, p.Y)
}

func (tb *TransformBuilder) QuadTo(x1, y1, x, y float64) {
	c := tb.T.MapPoint(geom.Pt(x1, y1))
	p := tb.T.MapPoint(geom.Pt(x, y))
	tb.B.QuadTo(c.X, c.Y, p.X, p.Y)
}

func (tb *TransformBuilder) CubicTo(x1, y1, x2, y2, x, y float64) {
	c1 := tb.T.MapPoint(geom.Pt(x1, y1))
	c2 := tb.T.MapPoint(geom.Pt(x2, y2))
	p := tb.T.MapPoint(geom.Pt(x, y))
	tb.B.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

func (tb *TransformBuilder) Close() {
	tb.B.Close()
}
