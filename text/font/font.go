package font

import (
	"fmt"
	"slices"
)

// Font is a font query: families in order of preference plus the aspect of
// the wanted face. It is a value type; the With methods return modified
// copies.
type Font struct {
	families []Family
	weight   Weight
	width    Width
	style    Style
}

// New returns a normal font of the given families. Without families the
// font uses sans-serif.
func New(families ...Family) Font {
	if len(families) == 0 {
		families = []Family{GenericFamily(SansSerif)}
	}
	return Font{
		families: slices.Clone(families),
		weight:   WeightNormal,
		width:    WidthNormal,
		style:    StyleNormal,
	}
}

// Default returns a normal sans-serif font.
func Default() Font {
	return New()
}

// MustParse returns a normal font for a CSS font-family list. It panics if
// the list is invalid.
func MustParse(families string) Font {
	fams, err := ParseFamilies(families)
	if err != nil {
		panic(err)
	}
	return New(fams...)
}

// Families returns the family list.
func (f Font) Families() []Family {
	if len(f.families) == 0 {
		return []Family{GenericFamily(SansSerif)}
	}
	return slices.Clone(f.families)
}

func (f Font) Weight() Weight {
	if f.weight == 0 {
		return WeightNormal
	}
	return f.weight
}

func (f Font) Width() Width {
	if !f.width.valid() {
		return WidthNormal
	}
	return f.width
}

func (f Font) Style() Style { return f.style }

func (f Font) WithFamilies(families ...Family) Font {
	f.families = slices.Clone(families)
	return f
}

func (f Font) WithWeight(w Weight) Font {
	f.weight = w
	return f
}

func (f Font) WithWidth(w Width) Font {
	f.width = w
	return f
}

func (f Font) WithStyle(s Style) Font {
	f.style = s
	return f
}

// Equal reports whether both fonts describe the same query.
func (f Font) Equal(other Font) bool {
	return slices.Equal(f.Families(), other.Families()) &&
		f.Weight() == other.Weight() &&
		f.Width() == other.Width() &&
		f.Style() == other.Style()
}

func (f Font) String() string {
	return fmt.Sprintf("%s %s %s %s", FormatFamilies(f.Families()), f.Weight(), f.Width(), f.Style())
}
