package font

import (
	"fmt"
	"strings"
	"unicode"
)

// Generic is a CSS generic font family.
type Generic uint8

const (
	// NotGeneric marks a family referenced by name.
	NotGeneric Generic = iota
	Serif
	SansSerif
	Cursive
	Fantasy
	Monospace
)

var genericNames = [...]string{"", "serif", "sans-serif", "cursive", "fantasy", "monospace"}

func (g Generic) String() string {
	if int(g) < len(genericNames) {
		return genericNames[g]
	}
	return unknownStr
}

func parseGeneric(s string) Generic {
	for i, n := range genericNames[1:] {
		if n == s {
			return Generic(i + 1)
		}
	}
	return NotGeneric
}

// Family is either a named family such as "Noto Sans" or a generic family.
type Family struct {
	name    string
	generic Generic
}

// Named returns the family with the given name.
func Named(name string) Family {
	return Family{name: name}
}

// GenericFamily returns the given generic family.
func GenericFamily(g Generic) Family {
	return Family{generic: g}
}

// Name returns the family name, or the CSS keyword of a generic family.
func (f Family) Name() string {
	if f.generic != NotGeneric {
		return f.generic.String()
	}
	return f.name
}

// Generic returns the generic family, or NotGeneric for named families.
func (f Family) Generic() Generic {
	return f.generic
}

// String formats the family as in a CSS font-family list.
func (f Family) String() string {
	if f.generic == NotGeneric && strings.ContainsFunc(f.name, unicode.IsSpace) {
		return "'" + f.name + "'"
	}
	return f.Name()
}

// InvalidFamilyError is returned when a font-family string is malformed.
type InvalidFamilyError struct {
	Input string
}

func (e *InvalidFamilyError) Error() string {
	return fmt.Sprintf("font: invalid font family: %q", e.Input)
}

// ParseFamilies parses a CSS font-family list such as
// "'Noto Sans', 'Open Sans', sans-serif".
//
// Parts are separated by commas and may not be empty. Quoted names must hold
// at least one character. A name containing whitespace must be quoted unless
// it is the only part of the list.
func ParseFamilies(s string) ([]Family, error) {
	parts := strings.Split(s, ",")
	unquotedSpace := false
	families := make([]Family, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &InvalidFamilyError{Input: s}
		}
		if g := parseGeneric(part); g != NotGeneric {
			families = append(families, GenericFamily(g))
			continue
		}
		switch {
		case isQuoted(part, '\''), isQuoted(part, '"'):
			if len(part) <= 2 {
				return nil, &InvalidFamilyError{Input: s}
			}
			families = append(families, Named(part[1:len(part)-1]))
		default:
			if strings.ContainsFunc(part, unicode.IsSpace) {
				unquotedSpace = true
			}
			families = append(families, Named(part))
		}
	}
	if len(families) > 1 && unquotedSpace {
		return nil, &InvalidFamilyError{Input: s}
	}
	return families, nil
}

func isQuoted(s string, q byte) bool {
	return len(s) >= 2 && s[0] == q && s[len(s)-1] == q
}

// FormatFamilies formats a family list so that ParseFamilies reads it back.
func FormatFamilies(families []Family) string {
	parts := make([]string, len(families))
	for i, f := range families {
		parts[i] = f.String()
	}
	return strings.Join(parts, ", ")
}
