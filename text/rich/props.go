package rich

import (
	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/text/font"
)

// OptProps overlays properties on the enclosing text. Nil fields are
// inherited.
type OptProps struct {
	Families []font.Family
	Weight   *font.Weight
	Width    *font.Width
	Style    *font.Style
	Size     *float64

	Fill      *color.Spec
	Stroke    *color.Spec
	Underline *bool
	Strikeout *bool
}

// Ptr returns a pointer to v. It shortens OptProps literals.
func Ptr[T any](v T) *T {
	return &v
}

// AffectsShape reports whether o changes the font or its size, and
// therefore the glyphs.
func (o *OptProps) AffectsShape() bool {
	return o.Families != nil || o.Weight != nil || o.Width != nil || o.Style != nil || o.Size != nil
}

// IsEmpty reports whether o sets nothing.
func (o *OptProps) IsEmpty() bool {
	return !o.AffectsShape() && o.Fill == nil && o.Stroke == nil && o.Underline == nil && o.Strikeout == nil
}

// Merge returns o with every field set in overlay replaced.
func (o OptProps) Merge(overlay OptProps) OptProps {
	if overlay.Families != nil {
		o.Families = overlay.Families
	}
	if overlay.Weight != nil {
		o.Weight = overlay.Weight
	}
	if overlay.Width != nil {
		o.Width = overlay.Width
	}
	if overlay.Style != nil {
		o.Style = overlay.Style
	}
	if overlay.Size != nil {
		o.Size = overlay.Size
	}
	if overlay.Fill != nil {
		o.Fill = overlay.Fill
	}
	if overlay.Stroke != nil {
		o.Stroke = overlay.Stroke
	}
	if overlay.Underline != nil {
		o.Underline = overlay.Underline
	}
	if overlay.Strikeout != nil {
		o.Strikeout = overlay.Strikeout
	}
	return o
}

// Props are fully resolved text properties. A nil Fill or Stroke is not
// painted.
type Props struct {
	Font      font.Font
	Size      float64
	Fill      *color.Spec
	Stroke    *color.Spec
	Underline bool
	Strikeout bool
}

// NewProps returns the default font at size, filled in black.
func NewProps(size float64) Props {
	return Props{
		Font: font.Default(),
		Size: size,
		Fill: Ptr(color.Direct(color.Black)),
	}
}

// Apply returns p with the overlay o applied.
func (p Props) Apply(o OptProps) Props {
	if o.Families != nil {
		p.Font = p.Font.WithFamilies(o.Families...)
	}
	if o.Weight != nil {
		p.Font = p.Font.WithWeight(*o.Weight)
	}
	if o.Width != nil {
		p.Font = p.Font.WithWidth(*o.Width)
	}
	if o.Style != nil {
		p.Font = p.Font.WithStyle(*o.Style)
	}
	if o.Size != nil {
		p.Size = *o.Size
	}
	if o.Fill != nil {
		p.Fill = Ptr(*o.Fill)
	}
	if o.Stroke != nil {
		p.Stroke = Ptr(*o.Stroke)
	}
	if o.Underline != nil {
		p.Underline = *o.Underline
	}
	if o.Strikeout != nil {
		p.Strikeout = *o.Strikeout
	}
	return p
}
