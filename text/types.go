package text

import "fmt"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// ScriptDir is the resolved direction of a run of text.
type ScriptDir int

const (
	// LTR is left-to-right text (English, French, etc.)
	LTR ScriptDir = iota
	// RTL is right-to-left text (Arabic, Hebrew)
	RTL
	// TTB is top-to-bottom text (traditional Chinese, Japanese)
	TTB
	// BTT is bottom-to-top text (rare)
	BTT
)

// String returns the string representation of the direction.
func (d ScriptDir) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case TTB:
		return "TTB"
	case BTT:
		return "BTT"
	default:
		return unknownStr
	}
}

// IsHorizontal returns true if the direction is horizontal (LTR or RTL).
func (d ScriptDir) IsHorizontal() bool {
	return d == LTR || d == RTL
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d ScriptDir) IsVertical() bool {
	return d == TTB || d == BTT
}

type alignKind uint8

const (
	alignStart alignKind = iota
	alignLeft
	alignCenter
	alignEnd
	alignRight
	alignJustify
)

// Align is the typographic alignment of a line relative to its anchor.
// Start and End depend on the line direction; Left and Right do not.
// The zero value is AlignStart.
type Align struct {
	kind  alignKind
	width float64
}

var (
	AlignStart  = Align{kind: alignStart}
	AlignLeft   = Align{kind: alignLeft}
	AlignCenter = Align{kind: alignCenter}
	AlignEnd    = Align{kind: alignEnd}
	AlignRight  = Align{kind: alignRight}
)

// Justify stretches lines to the given width. Lines already wider are left
// untouched.
func Justify(width float64) Align {
	return Align{kind: alignJustify, width: width}
}

// JustifyWidth returns the target width when a is a Justify alignment.
func (a Align) JustifyWidth() (float64, bool) {
	return a.width, a.kind == alignJustify
}

func (a Align) String() string {
	switch a.kind {
	case alignStart:
		return "Start"
	case alignLeft:
		return "Left"
	case alignCenter:
		return "Center"
	case alignEnd:
		return "End"
	case alignRight:
		return "Right"
	case alignJustify:
		return fmt.Sprintf("Justify(%g)", a.width)
	default:
		return unknownStr
	}
}

// Anchor is the horizontal reference lines are aligned against. The zero
// value anchors at X = 0.
type Anchor struct {
	window float64
}

// AnchorX anchors lines at X = 0.
var AnchorX = Anchor{}

// Window anchors lines inside [0, width]. Left-aligned lines start at 0,
// right-aligned lines end at width and centered lines are centered in it.
// No shrinking is done when a line is wider than the window.
func Window(width float64) Anchor {
	return Anchor{window: width}
}

// StartX returns the x coordinate a line of the given width starts at.
// Justify behaves as Start.
func (a Align) StartX(width float64, dir ScriptDir, anchor Anchor) float64 {
	left, right := 0.0, anchor.window
	switch a.kind {
	case alignLeft:
		return left
	case alignRight:
		return right - width
	case alignCenter:
		return (left+right)/2 - width/2
	case alignEnd:
		if dir == RTL {
			return left
		}
		return right - width
	default:
		if dir == RTL {
			return right - width
		}
		return left
	}
}

// StartY is the vertical counterpart of StartX, for columns of the given
// height progressing in direction dir (TTB or BTT). Left places the column
// below the anchor and Right above it, whatever the direction.
func (a Align) StartY(height float64, dir ScriptDir) float64 {
	switch a.kind {
	case alignLeft:
		return 0
	case alignRight:
		return -height
	case alignCenter:
		return -height / 2
	case alignEnd:
		if dir == BTT {
			return 0
		}
		return -height
	default:
		if dir == BTT {
			return -height
		}
		return 0
	}
}

// VerAlign is the vertical alignment of a single line relative to its
// anchor. The zero value is Baseline.
type VerAlign int

const (
	// Baseline aligns the baseline. This is the default.
	Baseline VerAlign = iota
	// Bottom aligns the bottom of the descender.
	Bottom
	// Middle aligns the middle of the x-height.
	Middle
	// Hanging aligns the capital height.
	Hanging
	// Top aligns the top of the ascender.
	Top
)

func (v VerAlign) String() string {
	switch v {
	case Bottom:
		return "Bottom"
	case Baseline:
		return "Baseline"
	case Middle:
		return "Middle"
	case Hanging:
		return "Hanging"
	case Top:
		return "Top"
	default:
		return unknownStr
	}
}

// LineMetrics is the subset of font metrics vertical alignment needs.
// Descent is negative.
type LineMetrics struct {
	Ascent    float64
	Descent   float64
	XHeight   float64
	CapHeight float64
}

// Offset returns the y coordinate of the baseline, relative to the anchor,
// in a Y-down space.
func (v VerAlign) Offset(m LineMetrics) float64 {
	switch v {
	case Bottom:
		return m.Descent
	case Middle:
		return m.XHeight / 2
	case Hanging:
		return m.CapHeight
	case Top:
		return m.Ascent
	default:
		return 0
	}
}

// OutlineBuilder receives glyph outlines. Coordinates are in font units,
// Y-up.
type OutlineBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(x1, y1, x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Close()
}
