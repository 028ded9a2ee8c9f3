package rich

import (
	"math"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/text/font"
)

// StyleSpan is a styled byte range of parsed text.
type StyleSpan struct {
	Start, End int
	Props      OptProps
}

// Parsed is markup split into plain text and style spans. Spans are listed
// in the order their tags close.
type Parsed struct {
	Text  string
	Spans []StyleSpan
}

// Builder returns a builder for the parsed text styled with root.
func (p *Parsed) Builder(root Props) *Builder {
	b := NewBuilder(p.Text, root)
	for _, sp := range p.Spans {
		b.AddSpan(sp.Start, sp.End, sp.Props)
	}
	return b
}

// Parse parses rich-text markup. Errors are *ParseError.
func Parse(markup string) (*Parsed, error) {
	return ParseWithClasses(markup, nil)
}

// ParseWithClasses parses markup where bare words may name one of
// classes. User classes take precedence over built-in ones.
func ParseWithClasses(markup string, classes Classes) (*Parsed, error) {
	p := parser{classes: classes}
	return p.parse(markup)
}

// openTag is an entry of the parser stack.
type openTag struct {
	textPos int
	span    Span
	keys    []string
	props   OptProps
}

type parser struct {
	classes Classes
}

func (p *parser) parse(markup string) (*Parsed, error) {
	lx := newLexer(markup)
	stack := arraylist.New()
	var buf strings.Builder
	out := &Parsed{}

	for {
		tok, ok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch tok.kind {
		case tokText:
			buf.WriteString(tok.text)
		case tokOpen:
			props, err := p.tagProps(tok.span, tok.open)
			if err != nil {
				return nil, err
			}
			keys := make([]string, len(tok.open))
			for i, tp := range tok.open {
				keys[i] = canonicalKey(tp.name)
			}
			stack.Add(&openTag{textPos: buf.Len(), span: tok.span, keys: keys, props: props})
		case tokClose:
			idx := matchTag(stack, tok.close)
			if idx < 0 {
				return nil, &ParseError{Kind: UnmatchedTag, Span: tok.span}
			}
			v, _ := stack.Get(idx)
			stack.Remove(idx)
			open := v.(*openTag)
			out.Spans = append(out.Spans, StyleSpan{Start: open.textPos, End: buf.Len(), Props: open.props})
		}
	}

	if v, ok := stack.Get(0); ok {
		return nil, &ParseError{Kind: UnmatchedTag, Span: v.(*openTag).span}
	}
	out.Text = buf.String()
	return out, nil
}

// matchTag returns the index of the innermost open tag naming every key
// of a closing tag, or -1. A closing tag without keys closes the innermost
// tag.
func matchTag(stack *arraylist.List, keys []string) int {
	for i := stack.Size() - 1; i >= 0; i-- {
		v, _ := stack.Get(i)
		open := v.(*openTag)
		all := true
		for _, k := range keys {
			if !containsKey(open.keys, canonicalKey(k)) {
				all = false
				break
			}
		}
		if all {
			return i
		}
	}
	return -1
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// propAliases maps every property name to its canonical name.
var propAliases = map[string]string{
	"font-size":    "font-size",
	"size":         "font-size",
	"sz":           "font-size",
	"font-family":  "font-family",
	"font":         "font-family",
	"family":       "font-family",
	"ff":           "font-family",
	"font-weight":  "font-weight",
	"weight":       "font-weight",
	"fw":           "font-weight",
	"font-style":   "font-style",
	"style":        "font-style",
	"fs":           "font-style",
	"font-width":   "font-width",
	"width":        "font-width",
	"font-stretch": "font-width",
	"stretch":      "font-width",
	"color":        "fill",
	"fill":         "fill",
	"outline":      "stroke",
	"stroke":       "stroke",
	"underline":    "underline",
	"strikeout":    "strikeout",
}

// canonicalKey lets a closing tag name a property by any of its aliases.
// Other words are classes and are kept as is.
func canonicalKey(name string) string {
	if c, ok := propAliases[name]; ok {
		return c
	}
	return name
}

func (p *parser) tagProps(span Span, items []tagProp) (OptProps, error) {
	var props OptProps
	for _, it := range items {
		if it.value == "" {
			o, err := p.class(span, it.name)
			if err != nil {
				return OptProps{}, err
			}
			props = props.Merge(o)
			continue
		}
		o, err := parseProp(it.name, it.value)
		if err != nil {
			return OptProps{}, withSpan(err, span)
		}
		props = props.Merge(o)
	}
	return props, nil
}

// class resolves a bare word: a user class, a built-in class or a fill
// color, in that order.
func (p *parser) class(span Span, name string) (OptProps, error) {
	if o, ok := p.classes.lookup(name); ok {
		return o, nil
	}
	if o, ok := builtinClasses[name]; ok {
		return o, nil
	}
	if c, err := color.ParseSpec(name); err == nil {
		return OptProps{Fill: &c}, nil
	}
	return OptProps{}, &ParseError{Kind: UnknownClass, Span: span, Prop: name}
}

// parseProp parses a key=value pair. Errors carry no span yet.
func parseProp(name, value string) (OptProps, error) {
	bad := &ParseError{Kind: BadPropValue, Prop: name, Value: value}
	var o OptProps
	switch propAliases[name] {
	case "font-size":
		sz, err := strconv.ParseFloat(value, 64)
		if err != nil || sz <= 0 || math.IsInf(sz, 0) || math.IsNaN(sz) {
			return o, bad
		}
		o.Size = &sz
	case "font-family":
		fams, err := font.ParseFamilies(value)
		if err != nil {
			return o, bad
		}
		o.Families = fams
	case "font-weight":
		w, err := font.ParseWeight(value)
		if err != nil {
			return o, bad
		}
		o.Weight = &w
	case "font-style":
		s, err := font.ParseStyle(value)
		if err != nil {
			return o, bad
		}
		o.Style = &s
	case "font-width":
		w, err := font.ParseWidth(value)
		if err != nil {
			return o, bad
		}
		o.Width = &w
	case "fill":
		c, err := color.ParseSpec(value)
		if err != nil {
			return o, bad
		}
		o.Fill = &c
	case "stroke":
		c, err := color.ParseSpec(value)
		if err != nil {
			return o, bad
		}
		o.Stroke = &c
	case "underline", "strikeout":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return o, bad
		}
		if propAliases[name] == "underline" {
			o.Underline = &v
		} else {
			o.Strikeout = &v
		}
	default:
		return o, &ParseError{Kind: UnknownClass, Prop: name}
	}
	return o, nil
}

func withSpan(err error, span Span) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Span = span
	}
	return err
}

// builtinClasses are the bare words understood without user classes.
var builtinClasses = func() map[string]OptProps {
	m := make(map[string]OptProps)
	weights := map[string]font.Weight{
		"thin":        font.WeightThin,
		"extra-light": font.WeightExtraLight,
		"light":       font.WeightLight,
		"medium":      font.WeightMedium,
		"semi-bold":   font.WeightSemiBold,
		"bold":        font.WeightBold,
		"extra-bold":  font.WeightExtraBold,
		"extrabold":   font.WeightExtraBold,
		"black":       font.WeightBlack,
	}
	for name, w := range weights {
		m[name] = OptProps{Weight: Ptr(w)}
	}
	widths := map[string]font.Width{
		"ultra-condensed": font.WidthUltraCondensed,
		"extra-condensed": font.WidthExtraCondensed,
		"condensed":       font.WidthCondensed,
		"semi-condensed":  font.WidthSemiCondensed,
		"semi-expanded":   font.WidthSemiExpanded,
		"expanded":        font.WidthExpanded,
		"extra-expanded":  font.WidthExtraExpanded,
		"ultra-expanded":  font.WidthUltraExpanded,
	}
	for name, w := range widths {
		m[name] = OptProps{Width: Ptr(w)}
	}
	m["italic"] = OptProps{Style: Ptr(font.StyleItalic)}
	m["oblique"] = OptProps{Style: Ptr(font.StyleOblique)}
	m["normal"] = OptProps{
		Weight: Ptr(font.WeightNormal),
		Width:  Ptr(font.WidthNormal),
		Style:  Ptr(font.StyleNormal),
	}
	m["underline"] = OptProps{Underline: Ptr(true)}
	m["strikeout"] = OptProps{Strikeout: Ptr(true)}
	return m
}()
