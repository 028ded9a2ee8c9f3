// Package bidi splits a line of text into directional runs in visual order.
//
// It sequences the Unicode Bidirectional Algorithm of
// golang.org/x/text/unicode/bidi: the paragraph is resolved into runs of one
// direction, then the runs are reordered for display so that consuming them
// from left to right renders the line correctly.
package bidi

import (
	"slices"

	xbidi "golang.org/x/text/unicode/bidi"

	"github.com/gogpu/ggplot/text"
)

// Level is a bidi embedding level. Odd levels are right-to-left.
type Level uint8

const (
	LevelLTR Level = 0
	LevelRTL Level = 1
)

// IsRTL reports whether the level is right-to-left.
func (l Level) IsRTL() bool {
	return l%2 == 1
}

func (l Level) dir() text.ScriptDir {
	if l.IsRTL() {
		return text.RTL
	}
	return text.LTR
}

// Run is a byte range of text with a single direction.
type Run struct {
	Start, End int
	Dir        text.ScriptDir
}

// Len returns the length of the run in bytes.
func (r Run) Len() int {
	return r.End - r.Start
}

// Algo produces the visual runs of successive lines of a text.
//
// A fixed Algo returns every line as a single run. An automatic Algo runs
// the bidi algorithm and remembers the paragraph level of the first line
// that has one, so that the following lines share its base direction.
type Algo struct {
	fixed bool
	dir   text.ScriptDir
	level *Level
}

// Fixed returns an Algo that never reorders and reports dir for every run.
func Fixed(dir text.ScriptDir) *Algo {
	return &Algo{fixed: true, dir: dir}
}

// Auto returns an Algo running the bidi algorithm. A nil level lets the
// first strong character of the first line decide the base direction.
func Auto(level *Level) *Algo {
	a := &Algo{}
	if level != nil {
		l := *level
		a.level = &l
	}
	return a
}

// StartDir is the base direction of the text: the fixed direction, the
// recorded paragraph direction, or LTR when none is known yet.
func (a *Algo) StartDir() text.ScriptDir {
	if a.fixed {
		return a.dir
	}
	if a.level != nil {
		return a.level.dir()
	}
	return text.LTR
}

// VisualRuns returns the runs of line in visual order. Offsets are shifted
// by start so they index the enclosing text. The result holds at least one
// run, and the runs partition [start, start+len(line)).
func (a *Algo) VisualRuns(line string, start int) []Run {
	if a.fixed {
		return []Run{{Start: start, End: start + len(line), Dir: a.dir}}
	}

	para, ok := a.paragraphLevel(line)
	runs := resolve(line, para)
	if len(runs) == 0 {
		return []Run{{Start: start, End: start + len(line), Dir: a.StartDir()}}
	}
	if a.level == nil && ok {
		a.level = &para
	}
	runs = reorder(runs)

	out := make([]Run, len(runs))
	for i, r := range runs {
		out[i] = Run{Start: start + r.start, End: start + r.end, Dir: r.level.dir()}
	}
	return out
}

// paragraphLevel returns the recorded level, else the level of the first
// strong character. ok is false when neither is known.
func (a *Algo) paragraphLevel(line string) (Level, bool) {
	if a.level != nil {
		return *a.level, true
	}
	if rtl, ok := text.ScriptIsRTL(line); ok {
		if rtl {
			return LevelRTL, true
		}
		return LevelLTR, true
	}
	return LevelLTR, false
}

type levelRun struct {
	start, end int
	level      Level
}

// resolve returns the level runs of line in logical order.
func resolve(line string, para Level) []levelRun {
	if line == "" {
		return nil
	}
	// Byte offset of every rune, plus the end.
	offsets := make([]int, 0, len(line)+1)
	for i := range line {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(line))
	n := len(offsets) - 1

	// Runes default to the paragraph level. This also covers runes the
	// ordering leaves out.
	levels := make([]Level, n)
	for i := range levels {
		levels[i] = para
	}

	def := xbidi.Neutral
	if para.IsRTL() {
		def = xbidi.RightToLeft
	}
	var p xbidi.Paragraph
	if _, err := p.SetString(line, xbidi.DefaultDirection(def)); err == nil {
		if ord, err := p.Order(); err == nil {
			for i := 0; i < ord.NumRuns(); i++ {
				run := ord.Run(i)
				lo, hi := run.Pos()
				lvl := embed(para, run.Direction() == xbidi.RightToLeft)
				for j := max(lo, 0); j <= hi && j < n; j++ {
					levels[j] = lvl
				}
			}
		}
	}

	var runs []levelRun
	for i := 0; i < n; {
		j := i + 1
		for j < n && levels[j] == levels[i] {
			j++
		}
		runs = append(runs, levelRun{start: offsets[i], end: offsets[j], level: levels[i]})
		i = j
	}
	return runs
}

// embed returns the level of a run inside a paragraph of level para.
func embed(para Level, rtl bool) Level {
	switch {
	case rtl && para.IsRTL(), !rtl && !para.IsRTL():
		return para
	default:
		return para + 1
	}
}

// reorder applies rule L2 of the bidi algorithm: from the highest level down
// to the lowest odd level, reverse every sequence of runs at that level or
// higher.
func reorder(runs []levelRun) []levelRun {
	var highest, lowestOdd Level = 0, 255
	for _, r := range runs {
		highest = max(highest, r.level)
		if r.level.IsRTL() {
			lowestOdd = min(lowestOdd, r.level)
		}
	}
	if lowestOdd == 255 {
		return runs
	}
	out := slices.Clone(runs)
	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(out); {
			if out[i].level < lvl {
				i++
				continue
			}
			j := i
			for j < len(out) && out[j].level >= lvl {
				j++
			}
			slices.Reverse(out[i:j])
			i = j
		}
	}
	return out
}
