package font

import (
	"fmt"
	"strconv"
	"strings"
)

// Weight is the degree of blackness of the glyphs, from 1 to 1000.
type Weight uint16

// Standard weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

var weightNames = map[string]Weight{
	"thin":        WeightThin,
	"hairline":    WeightThin,
	"extra-light": WeightExtraLight,
	"ultra-light": WeightExtraLight,
	"light":       WeightLight,
	"normal":      WeightNormal,
	"regular":     WeightNormal,
	"medium":      WeightMedium,
	"semi-bold":   WeightSemiBold,
	"demi-bold":   WeightSemiBold,
	"bold":        WeightBold,
	"extra-bold":  WeightExtraBold,
	"extrabold":   WeightExtraBold,
	"ultra-bold":  WeightExtraBold,
	"black":       WeightBlack,
	"heavy":       WeightBlack,
}

// ParseWeight parses a CSS weight keyword or a number between 1 and 1000.
func ParseWeight(s string) (Weight, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := weightNames[s]; ok {
		return w, nil
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n < 1 || n > 1000 {
		return 0, fmt.Errorf("font: invalid weight %q", s)
	}
	return Weight(n), nil
}

func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// Width is the horizontal stretch of a face, matching the nine OS/2 width
// classes.
type Width uint8

// Widths, ordered from narrowest to widest.
const (
	WidthUltraCondensed Width = iota + 1
	WidthExtraCondensed
	WidthCondensed
	WidthSemiCondensed
	WidthNormal
	WidthSemiExpanded
	WidthExpanded
	WidthExtraExpanded
	WidthUltraExpanded
)

var widthInfo = [...]struct {
	name    string
	percent float64
}{
	{"ultra-condensed", 50},
	{"extra-condensed", 62.5},
	{"condensed", 75},
	{"semi-condensed", 87.5},
	{"normal", 100},
	{"semi-expanded", 112.5},
	{"expanded", 125},
	{"extra-expanded", 150},
	{"ultra-expanded", 200},
}

func (w Width) valid() bool {
	return w >= WidthUltraCondensed && w <= WidthUltraExpanded
}

// Percent returns the width as a percentage of the normal width, the unit of
// the wdth variation axis.
func (w Width) Percent() float64 {
	if !w.valid() {
		return 100
	}
	return widthInfo[w-1].percent
}

func (w Width) String() string {
	if !w.valid() {
		return unknownStr
	}
	return widthInfo[w-1].name
}

// WidthFromPercent returns the width class closest to the given percentage.
func WidthFromPercent(p float64) Width {
	best, bestDist := WidthNormal, -1.0
	for i, info := range widthInfo {
		d := p - info.percent
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = Width(i+1), d
		}
	}
	return best
}

// ParseWidth parses a CSS stretch keyword or a percentage such as "75%".
func ParseWidth(s string) (Width, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range widthInfo {
		if info.name == s {
			return Width(i + 1), nil
		}
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err == nil && p > 0 {
			return WidthFromPercent(p), nil
		}
	}
	return 0, fmt.Errorf("font: invalid width %q", s)
}

// Style selects upright, italic or oblique faces.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

const unknownStr = "unknown"

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return unknownStr
	}
}

// ParseStyle parses "normal", "italic" or "oblique".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return StyleNormal, nil
	case "italic":
		return StyleItalic, nil
	case "oblique":
		return StyleOblique, nil
	default:
		return 0, fmt.Errorf("font: invalid style %q", s)
	}
}
