// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/line"
	"github.com/gogpu/ggplot/text/rich"
)

// Paint is a fill source. Its color may refer to a theme slot or to the
// palette; surfaces resolve it against their theme.
type Paint struct {
	Color color.Spec
}

// Solid returns a paint of a direct color.
func Solid(c color.RGBA) Paint {
	return Paint{Color: color.Direct(c)}
}

// Themed returns a paint resolved from a theme slot.
func Themed(s color.Slot) Paint {
	return Paint{Color: color.FromSlot(s)}
}

// Stroke describes the outline of a shape. A nil Dash draws a solid line;
// otherwise Dash alternates on and off lengths, starting on, and repeats.
type Stroke struct {
	Color color.Spec
	Width float64
	Dash  []float64
}

// SolidStroke returns a solid line of the given color and width.
func SolidStroke(c color.RGBA, width float64) *Stroke {
	return &Stroke{Color: color.Direct(c), Width: width}
}

// IsDashed reports whether the stroke has a usable dash pattern.
func (s *Stroke) IsDashed() bool {
	total := 0.0
	for _, d := range s.Dash {
		if d < 0 {
			return false
		}
		total += d
	}
	return total > 0
}

// Rect is a rectangle to draw. Fill and Stroke are optional; a nil
// Transform is the identity.
type Rect struct {
	Rect      geom.Rect
	Fill      *Paint
	Stroke    *Stroke
	Transform *geom.Transform
}

// AsPath returns the path equivalent of r.
func (r *Rect) AsPath() *Path {
	return &Path{
		Path:      r.Rect.ToPath(),
		Fill:      r.Fill,
		Stroke:    r.Stroke,
		Transform: r.Transform,
	}
}

// Path is a path to draw. Fill and Stroke are optional; a nil Transform is
// the identity.
type Path struct {
	Path      *geom.Path
	Fill      *Paint
	Stroke    *Stroke
	Transform *geom.Transform
}

// transformed returns the path in surface space.
func (p *Path) transformed() *geom.Path {
	if p.Transform == nil || p.Transform.IsIdentity() {
		return p.Path
	}
	return p.Path.Transform(*p.Transform)
}

// Clip is a clipping rectangle. A nil Transform is the identity.
type Clip struct {
	Rect      geom.Rect
	Transform *geom.Transform
}

// bounds returns the clip rectangle in surface space. A rotated clip is
// widened to its bounding box.
func (c *Clip) bounds() geom.Rect {
	if c.Transform == nil {
		return c.Rect
	}
	return c.Rect.Transform(*c.Transform)
}

// LineText is a single line of text, filled with one paint.
type LineText struct {
	Text      *line.LineText
	Fill      Paint
	Transform geom.Transform
}

// RichText is laid out rich text. Each span carries its own paints.
type RichText struct {
	Text      *rich.Text
	Transform geom.Transform
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Fonts provides the faces of the text to draw. When nil, a database of
	// the bundled fonts is created on first use.
	Fonts *font.Database

	// Theme resolves slot and palette colors. Default: color.Light().
	Theme *color.Theme

	// TextAsPaths makes a Recorder record text as the paths drawing it.
	TextAsPaths bool
}

// Option configures a surface.
type Option func(*Options)

// WithFonts sets the font database used to outline text.
func WithFonts(db *font.Database) Option {
	return func(o *Options) { o.Fonts = db }
}

// WithTheme sets the theme used to resolve colors.
func WithTheme(t *color.Theme) Option {
	return func(o *Options) { o.Theme = t }
}

// WithTextAsPaths makes a Recorder outline text when it is drawn.
func WithTextAsPaths() Option {
	return func(o *Options) { o.TextAsPaths = true }
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
		Theme:  color.Light(),
	}
}

func buildOptions(width, height int, opts []Option) Options {
	o := DefaultOptions(width, height)
	for _, opt := range opts {
		opt(&o)
	}
	if o.Theme == nil {
		o.Theme = color.Light()
	}
	return o
}

func (o *Options) fonts() *font.Database {
	if o.Fonts == nil {
		o.Fonts = font.NewDatabase(font.WithBundledFonts())
	}
	return o.Fonts
}
