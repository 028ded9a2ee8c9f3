// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/ggplot/geom"
)

// Surface is the drawing target of figures and text.
//
// A Surface is prepared once per frame with the figure size, then receives
// draw calls in painting order. Clips nest: every PushClip must be matched
// by a PopClip before the next Prepare.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(400, 100, surface.WithFonts(db))
//	_ = s.Prepare(geom.Sz(400, 100))
//	_ = s.Fill(surface.Solid(color.White))
//	_ = s.DrawTextLayout(&surface.RichText{Text: layout, Transform: geom.Translate(10, 50)})
//	_ = s.Save("title.png")
type Surface interface {
	// Prepare sizes the surface for a new frame and resets its clip stack.
	Prepare(size geom.Size) error

	// Fill paints the whole surface, ignoring clips. It is typically used
	// for the figure background.
	Fill(p Paint) error

	// DrawRect fills then strokes a rectangle.
	DrawRect(r *Rect) error

	// DrawPath fills then strokes a path.
	DrawPath(p *Path) error

	// DrawText draws a single line of text.
	DrawText(t *LineText) error

	// DrawTextLayout draws laid out rich text, each span with its own
	// fill, outline and decorations.
	DrawTextLayout(t *RichText) error

	// PushClip restricts subsequent drawing to the intersection of the
	// current clip and c.
	PushClip(c *Clip) error

	// PopClip restores the clip in effect before the matching PushClip.
	// It panics when no clip was pushed.
	PopClip() error
}

// DrawRectAsPath draws r through DrawPath. Surfaces without a faster
// rectangle primitive implement DrawRect with it.
func DrawRectAsPath(s Surface, r *Rect) error {
	return s.DrawPath(r.AsPath())
}
