// Package shaping turns a run of text into positioned glyphs with the
// HarfBuzz port of github.com/go-text/typesetting.
package shaping

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/font"
)

// Glyph is a shaped glyph. Advances and offsets are in layout units with
// Y up, as produced by the shaper.
type Glyph struct {
	ID font.GID

	// Cluster is the byte offset, in the shaped text, of the first
	// character of the glyph's cluster.
	Cluster int

	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// Feature is an OpenType feature setting such as "kern" or "liga".
type Feature struct {
	Tag   string
	Value uint32
}

// Kern enables kerning.
var Kern = Feature{Tag: "kern", Value: 1}

// Request describes one run to shape. Text is the whole line; only
// Text[Start:End] is shaped, the rest is context for contextual features
// such as Arabic joining.
type Request struct {
	Text       string
	Start, End int
	Dir        text.ScriptDir
	Face       *font.ResolvedFace
	Size       float64
	Features   []Feature

	// Language is a BCP 47 tag. Empty means "en".
	Language string
}

// shaperPool pools HarfbuzzShaper instances. They keep internal buffers and
// are not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape shapes the run. Glyphs come in visual order for the run direction,
// as HarfBuzz returns them.
func Shape(req Request) []Glyph {
	if req.Start >= req.End || req.Face == nil {
		return nil
	}
	runes, offsets := decode(req.Text)
	runStart, runEnd := runeIndex(offsets, req.Start), runeIndex(offsets, req.End)

	lang := req.Language
	if lang == "" {
		lang = "en"
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  runStart,
		RunEnd:    runEnd,
		Direction: mapDirection(req.Dir),
		Face:      req.Face.Face(),
		Size:      floatToFixed(req.Size),
		Script:    detectScript(runes[runStart:runEnd]),
		Language:  language.NewLanguage(lang),
	}
	for _, f := range req.Features {
		input.FontFeatures = append(input.FontFeatures, shaping.FontFeature{
			Tag:   opentype.MustNewTag(f.Tag),
			Value: f.Value,
		})
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	for i, g := range out.Glyphs {
		cluster := g.ClusterIndex
		if cluster < 0 || cluster >= len(offsets) {
			cluster = runStart
		}
		glyphs[i] = Glyph{
			ID:       g.GlyphID,
			Cluster:  offsets[cluster],
			XAdvance: fixedToFloat(g.XAdvance),
			YAdvance: fixedToFloat(g.YAdvance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return glyphs
}

// decode returns the runes of s and the byte offset of each, followed by
// len(s).
func decode(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

// runeIndex returns the index of the rune starting at byte offset off.
func runeIndex(offsets []int, off int) int {
	lo, hi := 0, len(offsets)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if offsets[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func mapDirection(d text.ScriptDir) di.Direction {
	switch d {
	case text.RTL:
		return di.DirectionRTL
	case text.TTB:
		return di.DirectionTTB
	case text.BTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript returns the script of the first character that has one.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		s := language.LookupScript(r)
		if s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
