package surface

import (
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/rich"
)

// OutlineScale is the width of a text outline relative to the font size.
const OutlineScale = 1.0 / 20

// LineTextPaths returns the paths drawing t: one per shape, in drawing
// order, filled with t.Fill.
func LineTextPaths(t *LineText, db *font.Database) ([]Path, error) {
	shapes, err := t.Text.Paths(db)
	if err != nil {
		return nil, err
	}
	fill := t.Fill
	tr := t.Transform
	out := make([]Path, 0, len(shapes))
	for _, sh := range shapes {
		out = append(out, Path{Path: sh.Path, Fill: &fill, Transform: &tr})
	}
	return out, nil
}

// RichTextPaths returns the paths drawing t. Glyphs come first, one path
// per props span, then the underline and strikeout rectangles. Each path
// is filled with the span's fill and outlined with its stroke.
func RichTextPaths(t *RichText, db *font.Database) ([]Path, error) {
	spans, err := t.Text.Paths(db)
	if err != nil {
		return nil, err
	}
	decos := t.Text.Decorations()
	tr := t.Transform
	out := make([]Path, 0, len(spans)+len(decos))
	for _, sp := range spans {
		out = append(out, spanPath(sp.Path, sp.Props, &tr))
	}
	for _, d := range decos {
		out = append(out, spanPath(d.Rect.ToPath(), d.Props, &tr))
	}
	return out, nil
}

func spanPath(p *geom.Path, props rich.Props, tr *geom.Transform) Path {
	out := Path{Path: p, Transform: tr}
	if props.Fill != nil {
		out.Fill = &Paint{Color: *props.Fill}
	}
	if props.Stroke != nil {
		out.Stroke = &Stroke{Color: *props.Stroke, Width: props.Size * OutlineScale}
	}
	return out
}

// drawPaths draws every path of items on s, stopping at the first error.
func drawPaths(s Surface, items []Path) error {
	for i := range items {
		if err := s.DrawPath(&items[i]); err != nil {
			return err
		}
	}
	return nil
}
