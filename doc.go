// Package ggplot is the text engine of a charting library: it turns Unicode
// strings, possibly mixing scripts, directions and styles, into positioned,
// font-resolved glyph runs with metrics and bounding boxes, ready to be
// turned into paths and drawn on a surface.
//
// # Overview
//
// The engine is organized leaf to root:
//
//   - geom, color: value types (rectangles, transforms, paddings, colors)
//   - text/font: font queries, the face Database and CSS font matching
//   - text/bidi: visual runs from the Unicode bidirectional algorithm
//   - text/shaping: HarfBuzz shaping of one run via go-text/typesetting
//   - text/line: a single line of text in one font
//   - text/rich: multi-line, multi-style text and its markup language
//   - dsl: the figure description language
//   - surface: the drawing contract and its raster and recording backends
//
// # Quick Start
//
//	db := font.NewDatabase(font.WithBundledFonts())
//	parsed, err := rich.Parse("Frequency [italic]\\[Hz][/italic]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout, err := parsed.Builder(rich.NewProps(14)).ShapeAndLayout(db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := surface.NewImageSurface(400, 100, surface.WithFonts(db))
//	_ = s.Prepare(geom.Sz(400, 100))
//	_ = s.Fill(surface.Solid(color.White))
//	err = s.DrawTextLayout(&surface.RichText{Text: layout, Transform: geom.Translate(10, 50)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.Save("title.png")
//
// # Logging
//
// ggplot is silent by default. Use [SetLogger] to route diagnostics to a
// [log/slog] logger.
package ggplot
