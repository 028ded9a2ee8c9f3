package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseErrorKind classifies color parsing failures.
type ParseErrorKind int

const (
	InvalidFormat ParseErrorKind = iota
	InvalidComponent
	InvalidAlphaComponent
	InvalidHex
	UnknownName
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidFormat:
		return "invalid color format"
	case InvalidComponent:
		return "invalid color component"
	case InvalidAlphaComponent:
		return "invalid alpha component"
	case InvalidHex:
		return "invalid hex color"
	case UnknownName:
		return "unknown color name"
	default:
		return "unknown error"
	}
}

// ParseError is returned by [Parse] and [FromHTML].
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("color: %s: %q", e.Kind, e.Input)
}

// Parse parses a color string:
//
//	#rgb #rgba #rrggbb #rrggbbaa
//	rgb(r, g, b)        components 0..255 or 0%..100%
//	rgba(r, g, b, a)    alpha 0.0..1.0, 0%..100% or 0..255
//	aliceblue, Red, ... CSS/SVG named colors, case-insensitive
func Parse(s string) (RGBA, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return RGBA{}, &ParseError{InvalidFormat, s}
	}

	if raw[0] == '#' {
		return FromHTML([]byte(raw))
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(raw, ")"):
		parts := strings.Split(raw[4:len(raw)-1], ",")
		if len(parts) != 3 {
			return RGBA{}, &ParseError{InvalidFormat, s}
		}
		var c [3]uint8
		for i, p := range parts {
			v, ok := parseComponent(p)
			if !ok {
				return RGBA{}, &ParseError{InvalidComponent, s}
			}
			c[i] = v
		}
		return FromRGB(c[0], c[1], c[2]), nil

	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(raw, ")"):
		parts := strings.Split(raw[5:len(raw)-1], ",")
		if len(parts) != 4 {
			return RGBA{}, &ParseError{InvalidFormat, s}
		}
		var c [3]uint8
		for i, p := range parts[:3] {
			v, ok := parseComponent(p)
			if !ok {
				return RGBA{}, &ParseError{InvalidComponent, s}
			}
			c[i] = v
		}
		a, ok := parseAlpha(parts[3])
		if !ok {
			return RGBA{}, &ParseError{InvalidAlphaComponent, s}
		}
		return FromRGBA(c[0], c[1], c[2], a), nil
	}

	if c, ok := Lookup(raw); ok {
		return c, nil
	}
	return RGBA{}, &ParseError{UnknownName, s}
}

// MustParse is like [Parse] but panics on error. Intended for constants.
func MustParse(s string) RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHTML parses the #rgb, #rgba, #rrggbb and #rrggbbaa forms.
func FromHTML(hex []byte) (RGBA, error) {
	fail := func() (RGBA, error) {
		return RGBA{}, &ParseError{InvalidHex, string(hex)}
	}
	if len(hex) == 0 || hex[0] != '#' {
		return fail()
	}
	var n [8]uint8
	digits := hex[1:]
	for i, h := range digits {
		if i >= len(n) {
			return fail()
		}
		v, ok := hexDigit(h)
		if !ok {
			return fail()
		}
		n[i] = v
	}
	switch len(digits) {
	case 3:
		return FromRGB(n[0]<<4|n[0], n[1]<<4|n[1], n[2]<<4|n[2]), nil
	case 4:
		return FromRGBA(n[0]<<4|n[0], n[1]<<4|n[1], n[2]<<4|n[2], n[3]<<4|n[3]), nil
	case 6:
		return FromRGB(n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5]), nil
	case 8:
		return FromRGBA(n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5], n[6]<<4|n[7]), nil
	}
	return fail()
}

func hexDigit(h byte) (uint8, bool) {
	switch {
	case h >= '0' && h <= '9':
		return h - '0', true
	case h >= 'a' && h <= 'f':
		return h - 'a' + 10, true
	case h >= 'A' && h <= 'F':
		return h - 'A' + 10, true
	}
	return 0, false
}

func parsePercent(s string) (uint8, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, false
	}
	return uint8(math.Round(v / 100 * 255)), true
}

func parseComponent(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		return parsePercent(p)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// parseAlpha accepts a percentage, a float in [0, 1] or an integer in
// [0, 255]. The bare integers 0 and 1 are read as the float form.
func parseAlpha(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		return parsePercent(p)
	}
	if !strings.ContainsAny(s, ".eE") {
		if v, err := strconv.Atoi(s); err == nil && v > 1 {
			if v > 255 {
				return 0, false
			}
			return uint8(v), true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return uint8(math.Round(f * 255)), true
}
