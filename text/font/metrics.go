package font

import "github.com/gogpu/ggplot/text"

// FaceMetrics holds the vertical metrics of a face in font units.
// Descent is negative.
type FaceMetrics struct {
	UnitsPerEm float64
	Ascent     float64
	Descent    float64
	XHeight    float64
	CapHeight  float64
	LineGap    float64
	Underline  LineMetrics
	Strikeout  LineMetrics
}

// LineMetrics positions a decoration line. Position is measured from the
// baseline, positive upwards.
type LineMetrics struct {
	Position  float64
	Thickness float64
}

// Scale returns the factor from font units to the given font size.
func (m FaceMetrics) Scale(size float64) float64 {
	if m.UnitsPerEm == 0 {
		return 0
	}
	return size / m.UnitsPerEm
}

// Scaled returns the metrics at the given font size.
func (m FaceMetrics) Scaled(size float64) ScaledMetrics {
	s := m.Scale(size)
	return ScaledMetrics{
		Scale:     s,
		EmSize:    size,
		Ascent:    m.Ascent * s,
		Descent:   m.Descent * s,
		XHeight:   m.XHeight * s,
		CapHeight: m.CapHeight * s,
		LineGap:   m.LineGap * s,
		Underline: LineMetrics{Position: m.Underline.Position * s, Thickness: m.Underline.Thickness * s},
		Strikeout: LineMetrics{Position: m.Strikeout.Position * s, Thickness: m.Strikeout.Thickness * s},
	}
}

// ScaledMetrics holds face metrics at a font size, in layout units.
type ScaledMetrics struct {
	// Scale converts font units to layout units.
	Scale     float64
	EmSize    float64
	Ascent    float64
	Descent   float64
	XHeight   float64
	CapHeight float64
	LineGap   float64
	Underline LineMetrics
	Strikeout LineMetrics
}

// Height is the distance between ascent and descent.
func (m ScaledMetrics) Height() float64 {
	return m.Ascent - m.Descent
}

// Line returns the subset used for vertical alignment.
func (m ScaledMetrics) Line() text.LineMetrics {
	return text.LineMetrics{
		Ascent:    m.Ascent,
		Descent:   m.Descent,
		XHeight:   m.XHeight,
		CapHeight: m.CapHeight,
	}
}

// Union returns metrics large enough for both m and other: the highest
// ascent, the lowest descent and the largest heights and gap. Scale and
// EmSize follow the larger em size.
func (m ScaledMetrics) Union(other ScaledMetrics) ScaledMetrics {
	out := m
	if other.EmSize > m.EmSize {
		out.Scale, out.EmSize = other.Scale, other.EmSize
		out.Underline, out.Strikeout = other.Underline, other.Strikeout
	}
	out.Ascent = max(m.Ascent, other.Ascent)
	out.Descent = min(m.Descent, other.Descent)
	out.XHeight = max(m.XHeight, other.XHeight)
	out.CapHeight = max(m.CapHeight, other.CapHeight)
	out.LineGap = max(m.LineGap, other.LineGap)
	return out
}
