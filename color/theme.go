package color

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Theme holds the colors figure elements refer to through a [Spec].
type Theme struct {
	Background   RGBA
	Foreground   RGBA
	Grid         RGBA
	LegendFill   RGBA
	LegendBorder RGBA
	Palette      []RGBA
}

// Slot returns the color of slot s.
func (t *Theme) Slot(s Slot) RGBA {
	switch s {
	case SlotBackground:
		return t.Background
	case SlotForeground:
		return t.Foreground
	case SlotGrid:
		return t.Grid
	case SlotLegendFill:
		return t.LegendFill
	case SlotLegendBorder:
		return t.LegendBorder
	}
	panic(fmt.Sprintf("color: invalid slot %d", int(s)))
}

// Light is a theme with dark text on white.
func Light() *Theme {
	return &Theme{
		Background:   White,
		Foreground:   Black,
		Grid:         FromRGBA(0, 0, 0, 40),
		LegendFill:   FromRGBA(255, 255, 255, 200),
		LegendBorder: Black,
		Palette:      category10(),
	}
}

// Dark is a theme with light text on a dark background.
func Dark() *Theme {
	return &Theme{
		Background:   FromRGB(0x1e, 0x1e, 0x1e),
		Foreground:   FromRGB(0xe0, 0xe0, 0xe0),
		Grid:         FromRGBA(255, 255, 255, 40),
		LegendFill:   FromRGBA(0x1e, 0x1e, 0x1e, 200),
		LegendBorder: FromRGB(0xe0, 0xe0, 0xe0),
		Palette:      category10(),
	}
}

func category10() []RGBA {
	return []RGBA{
		FromRGB(0x1f, 0x77, 0xb4),
		FromRGB(0xff, 0x7f, 0x0e),
		FromRGB(0x2c, 0xa0, 0x2c),
		FromRGB(0xd6, 0x27, 0x28),
		FromRGB(0x94, 0x67, 0xbd),
		FromRGB(0x8c, 0x56, 0x4b),
		FromRGB(0xe3, 0x77, 0xc2),
		FromRGB(0x7f, 0x7f, 0x7f),
		FromRGB(0xbc, 0xbd, 0x22),
		FromRGB(0x17, 0xbe, 0xcf),
	}
}

// Format selects the syntax of a theme file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// ErrUnknownFormat is returned by LoadTheme for an unsupported Format.
var ErrUnknownFormat = errors.New("color: unknown theme format")

// themeFile is the on-disk shape of a theme. Colors are strings in any
// syntax accepted by Parse. Missing slots inherit from Base.
type themeFile struct {
	Base         string   `toml:"base" yaml:"base"`
	Background   *RGBA    `toml:"background" yaml:"background"`
	Foreground   *RGBA    `toml:"foreground" yaml:"foreground"`
	Grid         *RGBA    `toml:"grid" yaml:"grid"`
	LegendFill   *RGBA    `toml:"legend-fill" yaml:"legend-fill"`
	LegendBorder *RGBA    `toml:"legend-border" yaml:"legend-border"`
	Palette      []string `toml:"palette" yaml:"palette"`
}

// LoadTheme decodes a theme file. The optional "base" key selects "light"
// (default) or "dark" as the starting point.
//
//	base = "dark"
//	grid = "rgba(255, 255, 255, 20%)"
//	palette = ["#e41a1c", "#377eb8", "steelblue"]
func LoadTheme(r io.Reader, format Format) (*Theme, error) {
	var f themeFile
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&f)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&f)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("color: decoding theme: %w", err)
	}

	var t *Theme
	switch f.Base {
	case "", "light":
		t = Light()
	case "dark":
		t = Dark()
	default:
		return nil, fmt.Errorf("color: unknown base theme %q", f.Base)
	}

	set := func(dst *RGBA, src *RGBA) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.Background, f.Background)
	set(&t.Foreground, f.Foreground)
	set(&t.Grid, f.Grid)
	set(&t.LegendFill, f.LegendFill)
	set(&t.LegendBorder, f.LegendBorder)

	if len(f.Palette) > 0 {
		t.Palette = make([]RGBA, 0, len(f.Palette))
		for _, s := range f.Palette {
			c, err := Parse(s)
			if err != nil {
				return nil, fmt.Errorf("color: theme palette: %w", err)
			}
			t.Palette = append(t.Palette, c)
		}
	}
	return t, nil
}
