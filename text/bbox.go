package text

import (
	"math"

	"github.com/gogpu/ggplot/geom"
)

// BBox is a bounding box expressed relative to the text anchor, Y-down.
type BBox struct {
	Top, Right, Bottom, Left float64
}

// EmptyBBox is the identity of Unite: uniting it with any box yields that
// box.
var EmptyBBox = BBox{
	Top:    math.MaxFloat64,
	Right:  -math.MaxFloat64,
	Bottom: -math.MaxFloat64,
	Left:   math.MaxFloat64,
}

// IsEmpty reports whether the box has no area.
func (b BBox) IsEmpty() bool {
	return b.Top >= b.Bottom || b.Left >= b.Right
}

func (b BBox) Width() float64  { return b.Right - b.Left }
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Unite returns the smallest box containing b and other.
func (b BBox) Unite(other BBox) BBox {
	return BBox{
		Top:    math.Min(b.Top, other.Top),
		Right:  math.Max(b.Right, other.Right),
		Bottom: math.Max(b.Bottom, other.Bottom),
		Left:   math.Min(b.Left, other.Left),
	}
}

// Translate returns the box moved by (x, y).
func (b BBox) Translate(x, y float64) BBox {
	return BBox{Top: b.Top + y, Right: b.Right + x, Bottom: b.Bottom + y, Left: b.Left + x}
}

// Rect converts the box to a rectangle.
func (b BBox) Rect() geom.Rect {
	return geom.FromTRBL(b.Top, b.Right, b.Bottom, b.Left)
}

// Transform returns the axis-aligned bounds of the transformed box.
func (b BBox) Transform(t geom.Transform) BBox {
	r := b.Rect().Transform(t)
	return BBox{Top: r.Top(), Right: r.Right(), Bottom: r.Bottom(), Left: r.Left()}
}
