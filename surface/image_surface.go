// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text/font"
)

// ErrInvalidSize is returned by Prepare for sizes without area.
var ErrInvalidSize = errors.New("surface: invalid size")

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Paths are rasterized with anti-aliasing by golang.org/x/image/vector and
// composited source-over. One surface unit is one pixel.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600, surface.WithFonts(db))
//	_ = s.Prepare(geom.Sz(800, 600))
//	_ = s.Fill(surface.Solid(color.White))
//	_ = s.DrawPath(&surface.Path{Path: p, Fill: &surface.Paint{Color: color.Direct(color.Red)}})
//	_ = s.Save("out.png")
type ImageSurface struct {
	opts   Options
	img    *image.RGBA
	mask   *image.Alpha
	raster *vector.Rasterizer
	clips  *ClipStack
}

// NewImageSurface creates a CPU-based surface with the given dimensions.
// Non-positive dimensions are raised to one pixel.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	return newImageSurface(buildOptions(width, height, opts))
}

func newImageSurface(o Options) *ImageSurface {
	width, height := max(o.Width, 1), max(o.Height, 1)
	s := &ImageSurface{
		opts:   o,
		raster: vector.NewRasterizer(width, height),
	}
	s.alloc(width, height)
	return s
}

func (s *ImageSurface) alloc(width, height int) {
	s.opts.Width, s.opts.Height = width, height
	bounds := image.Rect(0, 0, width, height)
	s.img = image.NewRGBA(bounds)
	s.mask = image.NewAlpha(bounds)
	s.clips = NewClipStack(geom.FromXYWH(0, 0, float64(width), float64(height)))
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int { return s.opts.Width }

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int { return s.opts.Height }

// Image returns the underlying image. This is a direct reference, not a
// copy.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Fonts returns the database used to outline text.
func (s *ImageSurface) Fonts() *font.Database { return s.opts.fonts() }

// Prepare resizes the surface to size rounded up to whole pixels, clears
// it to transparent and drops every clip.
func (s *ImageSurface) Prepare(size geom.Size) error {
	if !(size.W > 0 && size.H > 0) || math.IsInf(size.W, 0) || math.IsInf(size.H, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidSize, size.W, size.H)
	}
	w, h := int(math.Ceil(size.W)), int(math.Ceil(size.H))
	ggplot.Logger().Debug("surface: prepare", "width", w, "height", h)
	if w != s.opts.Width || h != s.opts.Height {
		s.alloc(w, h)
		return nil
	}
	clear(s.img.Pix)
	s.clips.Reset(geom.FromXYWH(0, 0, float64(w), float64(h)))
	return nil
}

// Fill replaces every pixel with the paint.
func (s *ImageSurface) Fill(p Paint) error {
	c := s.resolve(p.Color)
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

// DrawRect draws r as a path.
func (s *ImageSurface) DrawRect(r *Rect) error {
	return DrawRectAsPath(s, r)
}

// DrawPath fills then strokes p inside the current clip.
func (s *ImageSurface) DrawPath(p *Path) error {
	if p.Path.IsEmpty() || (p.Fill == nil && p.Stroke == nil) {
		return nil
	}
	path := p.transformed()
	if p.Fill != nil {
		s.paint(path, s.resolve(p.Fill.Color))
	}
	if p.Stroke != nil {
		// The transform scales the stroke like the geometry.
		st := *p.Stroke
		if p.Transform != nil {
			st.Width *= transformScale(*p.Transform)
		}
		if outline := strokePath(path, &st); outline != nil {
			s.paint(outline, s.resolve(st.Color))
		}
	}
	return nil
}

// DrawText draws a line of text.
func (s *ImageSurface) DrawText(t *LineText) error {
	items, err := LineTextPaths(t, s.Fonts())
	if err != nil {
		return err
	}
	return drawPaths(s, items)
}

// DrawTextLayout draws rich text.
func (s *ImageSurface) DrawTextLayout(t *RichText) error {
	items, err := RichTextPaths(t, s.Fonts())
	if err != nil {
		return err
	}
	return drawPaths(s, items)
}

// PushClip restricts drawing to c.
func (s *ImageSurface) PushClip(c *Clip) error {
	s.clips.Push(c)
	return nil
}

// PopClip restores the previous clip. It panics when no clip was pushed.
func (s *ImageSurface) PopClip() error {
	s.clips.Pop()
	return nil
}

// Save encodes the image to path, choosing the format from its extension.
func (s *ImageSurface) Save(path string, opts ...imaging.EncodeOption) error {
	return imaging.Save(s.img, path, opts...)
}

// Encode writes the image to w in the given format.
func (s *ImageSurface) Encode(w io.Writer, format imaging.Format, opts ...imaging.EncodeOption) error {
	return imaging.Encode(w, s.img, format, opts...)
}

func (s *ImageSurface) resolve(spec color.Spec) color.RGBA {
	return color.Resolve(spec, s.opts.Theme)
}

// paint composites c through the coverage of p, restricted to the clip.
func (s *ImageSurface) paint(p *geom.Path, c color.RGBA) {
	clip, ok := s.clips.Current()
	if !ok || c.A == 0 {
		return
	}
	r := pixelRect(clip).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.rasterize(p)
	draw.DrawMask(s.img, r, image.NewUniform(c), image.Point{}, s.mask, r.Min, draw.Over)
}

// rasterize renders the coverage of p into s.mask. Open subpaths are
// closed, as filling requires.
func (s *ImageSurface) rasterize(p *geom.Path) {
	z := s.raster
	z.Reset(s.opts.Width, s.opts.Height)
	clear(s.mask.Pix)
	var first geom.Point
	p.Walk(func(v geom.Verb, pts []geom.Point) {
		switch v {
		case geom.MoveTo:
			z.ClosePath()
			first = pts[0]
			z.MoveTo(float32(first.X), float32(first.Y))
		case geom.LineTo:
			z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case geom.QuadTo:
			z.QuadTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y))
		case geom.CubicTo:
			z.CubeTo(float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case geom.Close:
			z.ClosePath()
			z.MoveTo(float32(first.X), float32(first.Y))
		}
	})
	z.ClosePath()
	z.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})
}

// pixelRect returns the pixels whose centers lie in r.
func pixelRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left())), int(math.Round(r.Top())),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
}

// transformScale is the geometric mean of the axis scales of t.
func transformScale(t geom.Transform) float64 {
	return math.Sqrt(math.Abs(t.A*t.E - t.B*t.D))
}

var _ Surface = (*ImageSurface)(nil)
