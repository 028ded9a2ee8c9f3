// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines where figures and text are drawn.
//
// Surface is the drawing contract between the figure renderer and an
// output. Draw items (Rect, Path, LineText, RichText) carry their own
// paints and transform; paints hold color specs that the surface resolves
// against its theme, so one recording can be drawn light or dark.
//
// # Surface Types
//
//   - ImageSurface: anti-aliased CPU rendering to *image.RGBA, saved or
//     encoded as PNG or JPEG
//   - Recorder: records the calls for inspection and replays them on
//     another surface
//
// # Text
//
// LineTextPaths and RichTextPaths turn laid out text into paths, one per
// shape or props span, placed by each glyph's transform. Rich text also
// yields its underline and strikeout rectangles. Surfaces without native
// text support draw these paths.
//
// # Clipping
//
// Clips are axis-aligned rectangles that nest. ClipStack keeps the
// intersection of the pushed clips; popping more clips than were pushed is
// a programming error and panics.
//
// # Registry
//
// Backends register a Factory under a name and a priority:
//
//	s, err := surface.NewSurfaceByName("image", 800, 600)
//	// or the preferred available backend:
//	s, err := surface.NewSurface(800, 600)
package surface
