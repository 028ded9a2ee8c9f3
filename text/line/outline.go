package line

import (
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/font"
)

// ShapePath is the outline of every glyph of a shape, in line space.
type ShapePath struct {
	FaceID font.ID
	Path   *geom.Path
}

// Outline feeds the outlines of all glyphs to b, in line space.
func (lt *LineText) Outline(db *font.Database, b text.OutlineBuilder) error {
	for i := range lt.shapes {
		if err := lt.outlineShape(db, &lt.shapes[i], b); err != nil {
			return err
		}
	}
	return nil
}

// Paths returns one path per shape, skipping shapes without ink.
func (lt *LineText) Paths(db *font.Database) ([]ShapePath, error) {
	var pb geom.PathBuilder
	paths := make([]ShapePath, 0, len(lt.shapes))
	for i := range lt.shapes {
		sh := &lt.shapes[i]
		if err := lt.outlineShape(db, sh, &pb); err != nil {
			return nil, err
		}
		if p := pb.Finish(); p != nil {
			paths = append(paths, ShapePath{FaceID: sh.FaceID, Path: p})
		}
	}
	return paths, nil
}

func (lt *LineText) outlineShape(db *font.Database, sh *Shape, b text.OutlineBuilder) error {
	face, err := db.Resolve(sh.FaceID, lt.font)
	if err != nil {
		return err
	}
	tb := text.TransformBuilder{B: b}
	for _, g := range sh.Glyphs {
		tb.T = g.Transform
		face.Outline(g.ID, &tb)
	}
	return nil
}

// VisualBBox returns the union of the glyph ink boxes, in line space. It is
// tighter than BBox and changes with the glyphs drawn; a line without ink
// returns text.EmptyBBox.
func (lt *LineText) VisualBBox(db *font.Database) (text.BBox, error) {
	box := text.EmptyBBox
	for i := range lt.shapes {
		sh := &lt.shapes[i]
		face, err := db.Resolve(sh.FaceID, lt.font)
		if err != nil {
			return text.EmptyBBox, err
		}
		for _, g := range sh.Glyphs {
			if ink, ok := face.GlyphBBox(g.ID, g.Transform); ok {
				box = box.Unite(ink)
			}
		}
	}
	return box, nil
}
