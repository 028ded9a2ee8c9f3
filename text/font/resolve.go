package font

import (
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/ggplot"
)

// GID is a glyph index inside a face.
type GID = gtfont.GID

var (
	tagWght = opentype.MustNewTag("wght")
	tagWdth = opentype.MustNewTag("wdth")
)

// ResolvedFace is a face prepared for a font query: a private go-text face
// with the variation coordinates of the query applied. It is not safe for
// concurrent use; resolve one face per goroutine.
type ResolvedFace struct {
	info    FaceInfo
	face    *gtfont.Face
	metrics FaceMetrics
}

// Resolve prepares the face id for f. Variable faces get their wght and wdth
// axes set when the query differs from the face's own weight or width; other
// faces are used as is.
func (db *Database) Resolve(id ID, f Font) (*ResolvedFace, error) {
	ft, info, ok := db.parsed(id)
	if !ok {
		return nil, &FaceParsingError{ID: id, Err: ErrUnknownFace}
	}
	face := gtfont.NewFace(ft)
	if info.Variable {
		var vars []gtfont.Variation
		if f.Weight() != info.Weight {
			vars = append(vars, gtfont.Variation{Tag: tagWght, Value: float32(f.Weight())})
		}
		if f.Width() != info.Width {
			vars = append(vars, gtfont.Variation{Tag: tagWdth, Value: float32(f.Width().Percent())})
		}
		if len(vars) > 0 {
			face.SetVariations(vars)
		}
	}
	ggplot.Logger().Debug("font: resolved face", "id", id, "family", info.Family(), "variable", info.Variable)
	return &ResolvedFace{info: info, face: face, metrics: faceMetrics(face)}, nil
}

func faceMetrics(face *gtfont.Face) FaceMetrics {
	m := FaceMetrics{UnitsPerEm: float64(face.Upem())}
	if ext, ok := face.FontHExtents(); ok {
		m.Ascent = float64(ext.Ascender)
		m.Descent = float64(ext.Descender)
		m.LineGap = float64(ext.LineGap)
	}
	if m.Descent > 0 {
		m.Descent = -m.Descent
	}
	m.XHeight = float64(face.LineMetric(gtfont.XHeight))
	if m.XHeight == 0 {
		m.XHeight = (m.Ascent - m.Descent) * 0.45
	}
	m.CapHeight = float64(face.LineMetric(gtfont.CapHeight))
	if m.CapHeight == 0 {
		m.CapHeight = (m.Ascent - m.Descent) * 0.8
	}
	m.Underline = LineMetrics{
		Position:  float64(face.LineMetric(gtfont.UnderlinePosition)),
		Thickness: float64(face.LineMetric(gtfont.UnderlineThickness)),
	}
	m.Strikeout = LineMetrics{
		Position:  float64(face.LineMetric(gtfont.StrikethroughPosition)),
		Thickness: float64(face.LineMetric(gtfont.StrikethroughThickness)),
	}
	if m.Underline.Thickness == 0 {
		m.Underline.Thickness = m.UnitsPerEm / 20
	}
	if m.Strikeout.Thickness == 0 {
		m.Strikeout.Thickness = m.Underline.Thickness
	}
	if m.Strikeout.Position == 0 {
		m.Strikeout.Position = m.XHeight / 2
	}
	return m
}

// ID returns the database ID of the face.
func (rf *ResolvedFace) ID() ID { return rf.info.ID }

// Info describes the face.
func (rf *ResolvedFace) Info() FaceInfo { return rf.info }

// Face returns the go-text face, for shaping.
func (rf *ResolvedFace) Face() *gtfont.Face { return rf.face }

// FaceMetrics returns the metrics in font units.
func (rf *ResolvedFace) FaceMetrics() FaceMetrics { return rf.metrics }

// Metrics returns the metrics at the given font size.
func (rf *ResolvedFace) Metrics(size float64) ScaledMetrics {
	return rf.metrics.Scaled(size)
}

// HasChar reports whether the face maps r to a glyph.
func (rf *ResolvedFace) HasChar(r rune) bool {
	_, ok := rf.face.NominalGlyph(r)
	return ok
}
