package rich

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	cssparser "github.com/aymerick/douceur/parser"
)

// ErrInvalidClassSheet is wrapped by the errors of ParseClassSheet.
var ErrInvalidClassSheet = errors.New("rich: invalid class sheet")

// Classes maps class names to the overlay they apply in markup.
type Classes map[string]OptProps

func (c Classes) lookup(name string) (OptProps, bool) {
	o, ok := c[name]
	return o, ok
}

// ParseClassSheet reads classes from CSS rules with class selectors:
//
//	.title { font-weight: bold; font-size: 18px }
//	.warn, .alert { fill: #c00; text-decoration: underline }
//
// Properties are the markup property names and aliases, plus
// text-decoration (underline, line-through or none). Rules for the same
// class accumulate, later declarations winning.
func ParseClassSheet(sheet string) (Classes, error) {
	ss, err := cssparser.Parse(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidClassSheet, err)
	}
	classes := make(Classes)
	for _, rule := range ss.Rules {
		if rule.Kind != css.QualifiedRule {
			return nil, fmt.Errorf("%w: unsupported rule %s", ErrInvalidClassSheet, rule.Name)
		}
		var props OptProps
		for _, decl := range rule.Declarations {
			o, err := declProps(decl)
			if err != nil {
				return nil, fmt.Errorf("%w: %s { %s: %s }", ErrInvalidClassSheet, rule.Prelude, decl.Property, decl.Value)
			}
			props = props.Merge(o)
		}
		for _, sel := range rule.Selectors {
			name, ok := strings.CutPrefix(strings.TrimSpace(sel), ".")
			if !ok || name == "" || strings.ContainsAny(name, " .#>:[+~") {
				return nil, fmt.Errorf("%w: unsupported selector %q", ErrInvalidClassSheet, sel)
			}
			classes[name] = classes[name].Merge(props)
		}
	}
	return classes, nil
}

func declProps(decl *css.Declaration) (OptProps, error) {
	name := strings.ToLower(strings.TrimSpace(decl.Property))
	value := strings.TrimSpace(decl.Value)
	switch {
	case name == "text-decoration":
		switch value {
		case "underline":
			return OptProps{Underline: Ptr(true)}, nil
		case "line-through":
			return OptProps{Strikeout: Ptr(true)}, nil
		case "none":
			return OptProps{Underline: Ptr(false), Strikeout: Ptr(false)}, nil
		}
		return OptProps{}, &ParseError{Kind: BadPropValue, Prop: name, Value: value}
	case canonicalKey(name) == "font-size":
		value = strings.TrimSuffix(value, "px")
	}
	return parseProp(name, value)
}
