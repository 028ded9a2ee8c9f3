package rich

import (
	"fmt"

	"github.com/gogpu/ggplot/text"
)

type verAlignKind uint8

const (
	verLine verAlignKind = iota
	verTop
	verCenter
	verBottom
)

// TextVerAlign is the vertical alignment of a whole block of horizontal
// text. The zero value aligns the baseline of the first line.
type TextVerAlign struct {
	kind  verAlignKind
	line  int
	align text.VerAlign
}

var (
	// Top aligns the ascent of the first line.
	Top = TextVerAlign{kind: verTop}
	// Center aligns the middle between the ascent of the first line and
	// the descent of the last.
	Center = TextVerAlign{kind: verCenter}
	// Bottom aligns the descent of the last line.
	Bottom = TextVerAlign{kind: verBottom}
)

// AtLine aligns line i with a, using the metrics of that line. An index
// past the last line refers to the last line.
func AtLine(i int, a text.VerAlign) TextVerAlign {
	return TextVerAlign{kind: verLine, line: max(i, 0), align: a}
}

func (v TextVerAlign) String() string {
	switch v.kind {
	case verTop:
		return "Top"
	case verCenter:
		return "Center"
	case verBottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Line(%d, %s)", v.line, v.align)
	}
}

// Direction is the direction policy of horizontal text.
type Direction uint8

const (
	// Mixed runs the bidi algorithm; the first strong character sets the
	// main direction.
	Mixed Direction = iota
	// MixedLTR runs the bidi algorithm with a left-to-right main direction.
	MixedLTR
	// MixedRTL runs the bidi algorithm with a right-to-left main direction.
	MixedRTL
	// LTR lays out everything left to right, without bidi.
	LTR
	// RTL lays out everything right to left, without bidi.
	RTL
)

func (d Direction) String() string {
	switch d {
	case Mixed:
		return "Mixed"
	case MixedLTR:
		return "MixedLTR"
	case MixedRTL:
		return "MixedRTL"
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// VerDirection is the direction of vertical text.
type VerDirection uint8

const (
	TopToBottom VerDirection = iota
	BottomToTop
)

func (d VerDirection) scriptDir() text.ScriptDir {
	if d == BottomToTop {
		return text.BTT
	}
	return text.TTB
}

// VerProgression is the direction successive columns progress in.
type VerProgression uint8

const (
	// ProgressPerScript progresses right to left for right-to-left scripts
	// and left to right otherwise.
	ProgressPerScript VerProgression = iota
	ProgressLTR
	ProgressRTL
)

// resolve replaces ProgressPerScript by the progression of s.
func (p VerProgression) resolve(s string) VerProgression {
	if p != ProgressPerScript {
		return p
	}
	if rtl, ok := text.ScriptIsRTL(s); ok && rtl {
		return ProgressRTL
	}
	return ProgressLTR
}

// Layout is either Horizontal or Vertical.
type Layout interface {
	isLayout()
}

// Horizontal lays lines out from top to bottom. The zero value aligns the
// first baseline at y = 0 and starts lines at x = 0 in their direction.
type Horizontal struct {
	VerAlign TextVerAlign
	Align    text.Align
	Dir      Direction
	Anchor   text.Anchor
}

// DefaultInterColumn is the column gap of DefaultVertical, in em.
const DefaultInterColumn = 0.5

// Vertical lays columns out side by side.
type Vertical struct {
	Align       text.Align
	Dir         VerDirection
	Progression VerProgression

	// InterColumn is the gap between columns, relative to the em size of
	// the column it follows.
	InterColumn float64
}

// DefaultVertical is a top-to-bottom layout progressing per script.
func DefaultVertical() Vertical {
	return Vertical{InterColumn: DefaultInterColumn}
}

func (Horizontal) isLayout() {}
func (Vertical) isLayout()   {}
