// Package color provides the 8-bit RGBA color used by text and figure
// styling, its CSS/HTML string syntax, and theme-relative color specs.
package color

import (
	"fmt"
	stdcolor "image/color"
)

// RGBA is a non-premultiplied 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

var _ stdcolor.Color = RGBA{}

// Common colors.
var (
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Red         = RGBA{255, 0, 0, 255}
	Green       = RGBA{0, 128, 0, 255}
	Blue        = RGBA{0, 0, 255, 255}
	Transparent = RGBA{0, 0, 0, 0}
)

// FromRGB creates an opaque color.
func FromRGB(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// FromRGBA creates a color with alpha.
func FromRGBA(r, g, b, a uint8) RGBA {
	return RGBA{r, g, b, a}
}

// FromRGBAF creates a color from components in [0, 1]. Values outside the
// range are clamped.
func FromRGBAF(r, g, b, a float64) RGBA {
	return RGBA{unit(r), unit(g), unit(b), unit(a)}
}

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v * 255)
}

// RGBA implements image/color.Color with premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts c to the standard library type.
func (c RGBA) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// IsOpaque reports whether alpha is 255.
func (c RGBA) IsOpaque() bool {
	return c.A == 255
}

// Opacity returns alpha in [0, 1] and false when the color is opaque.
func (c RGBA) Opacity() (float64, bool) {
	if c.A == 255 {
		return 1, false
	}
	return float64(c.A) / 255, true
}

// WithAlpha returns c with alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// WithOpacity multiplies alpha by opacity, which must be in [0, 1].
func (c RGBA) WithOpacity(opacity float64) RGBA {
	if opacity < 0 || opacity > 1 {
		panic(fmt.Sprintf("color: opacity %v out of [0, 1]", opacity))
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}

// WithoutOpacity returns c made fully opaque.
func (c RGBA) WithoutOpacity() RGBA {
	c.A = 255
	return c
}

// HTML returns the #rrggbb form of c. Alpha is dropped.
func (c RGBA) HTML() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c RGBA) String() string {
	if c.IsOpaque() {
		return c.HTML()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText encodes the color with [RGBA.String].
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes any syntax accepted by [Parse].
func (c *RGBA) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
