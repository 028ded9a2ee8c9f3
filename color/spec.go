package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot names a color of a [Theme].
type Slot int

const (
	SlotBackground Slot = iota
	SlotForeground
	SlotGrid
	SlotLegendFill
	SlotLegendBorder
)

var slotNames = [...]string{
	SlotBackground:   "background",
	SlotForeground:   "foreground",
	SlotGrid:         "grid",
	SlotLegendFill:   "legend-fill",
	SlotLegendBorder: "legend-border",
}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return "Slot(" + strconv.Itoa(int(s)) + ")"
	}
	return slotNames[s]
}

// ParseSlot parses a slot name as returned by [Slot.String].
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

type specKind uint8

const (
	specDirect specKind = iota
	specSlot
	specPalette
)

// Spec is a color that is either given directly or relative to a theme.
// Styling structures hold Specs; drawing resolves them with [Resolve].
type Spec struct {
	kind  specKind
	rgba  RGBA
	slot  Slot
	index uint32
}

// Direct is a literal color.
func Direct(c RGBA) Spec {
	return Spec{kind: specDirect, rgba: c}
}

// FromSlot refers to a theme slot.
func FromSlot(s Slot) Spec {
	return Spec{kind: specSlot, slot: s}
}

// Palette refers to the i-th palette entry. The index wraps around the
// palette length.
func Palette(i uint32) Spec {
	return Spec{kind: specPalette, index: i}
}

// IsDirect reports whether the spec holds a literal color, returning it.
func (s Spec) IsDirect() (RGBA, bool) {
	return s.rgba, s.kind == specDirect
}

func (s Spec) String() string {
	switch s.kind {
	case specSlot:
		return "theme." + s.slot.String()
	case specPalette:
		return "palette." + strconv.FormatUint(uint64(s.index), 10)
	default:
		return s.rgba.String()
	}
}

// ParseSpec parses a literal color (see [Parse]), "theme.<slot>" or
// "palette.<n>".
func ParseSpec(s string) (Spec, error) {
	raw := strings.TrimSpace(s)
	if name, ok := strings.CutPrefix(raw, "theme."); ok {
		slot, ok := ParseSlot(name)
		if !ok {
			return Spec{}, fmt.Errorf("color: unknown theme slot %q", name)
		}
		return FromSlot(slot), nil
	}
	if idx, ok := strings.CutPrefix(raw, "palette."); ok {
		n, err := strconv.ParseUint(idx, 10, 32)
		if err != nil {
			return Spec{}, fmt.Errorf("color: bad palette index %q: %w", idx, err)
		}
		return Palette(uint32(n)), nil
	}
	c, err := Parse(raw)
	if err != nil {
		return Spec{}, err
	}
	return Direct(c), nil
}

// Resolve returns the concrete color of s under theme. A palette spec on a
// theme without palette resolves to the foreground.
func Resolve(s Spec, theme *Theme) RGBA {
	switch s.kind {
	case specSlot:
		return theme.Slot(s.slot)
	case specPalette:
		if len(theme.Palette) == 0 {
			return theme.Foreground
		}
		return theme.Palette[int(s.index%uint32(len(theme.Palette)))]
	default:
		return s.rgba
	}
}
