package font

import "strings"

// ID identifies a face inside a Database.
type ID uint32

// FaceInfo describes a face loaded in a Database.
type FaceInfo struct {
	ID ID

	// Families lists the family names of the face, typographic family first.
	Families       []string
	PostScriptName string

	// Index is the index of the face inside its collection file.
	Index int

	// Path is the file the face was loaded from, empty for in-memory data.
	Path string

	Weight Weight
	Width  Width
	Style  Style

	// Ranges is the OS/2 Unicode coverage declared by the face.
	Ranges UnicodeRanges

	// Variable reports a face holding an fvar table.
	Variable bool
}

// HasFamily reports whether the face belongs to the named family, ignoring
// case.
func (fi *FaceInfo) HasFamily(name string) bool {
	for _, f := range fi.Families {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// Family returns the primary family name.
func (fi *FaceInfo) Family() string {
	if len(fi.Families) == 0 {
		return ""
	}
	return fi.Families[0]
}

func (fi *FaceInfo) sameAspect(other *FaceInfo) bool {
	return fi.Style == other.Style && fi.Weight == other.Weight && fi.Width == other.Width
}

// BestMatch runs the CSS Level 3 font matching algorithm over candidates of
// one family and returns the index of the selected face, or -1 when there
// are no candidates. The steps run in a fixed order: stretch, then style,
// then weight. Font size is not considered and remaining ties go to the
// earliest candidate.
func BestMatch(candidates []FaceInfo, weight Weight, width Width, style Style) int {
	if len(candidates) == 0 {
		return -1
	}
	set := make([]int, len(candidates))
	for i := range set {
		set[i] = i
	}

	stretch := matchWidth(candidates, set, width)
	set = retain(set, func(i int) bool { return candidates[i].Width == stretch })

	var prefs [3]Style
	switch style {
	case StyleItalic:
		prefs = [3]Style{StyleItalic, StyleOblique, StyleNormal}
	case StyleOblique:
		prefs = [3]Style{StyleOblique, StyleItalic, StyleNormal}
	default:
		prefs = [3]Style{StyleNormal, StyleOblique, StyleItalic}
	}
	for _, s := range prefs {
		if anyMatch(candidates, set, func(fi *FaceInfo) bool { return fi.Style == s }) {
			set = retain(set, func(i int) bool { return candidates[i].Style == s })
			break
		}
	}
	if len(set) == 0 {
		return -1
	}

	w := matchWeight(candidates, set, weight)
	set = retain(set, func(i int) bool { return candidates[i].Weight == w })
	return set[0]
}

func matchWidth(candidates []FaceInfo, set []int, query Width) Width {
	if anyMatch(candidates, set, func(fi *FaceInfo) bool { return fi.Width == query }) {
		return query
	}
	narrower := func(fi *FaceInfo) bool { return fi.Width < query }
	wider := func(fi *FaceInfo) bool { return fi.Width > query }
	first, then := narrower, wider
	if query > WidthNormal {
		first, then = wider, narrower
	}
	dist := func(fi *FaceInfo) int { return absInt(int(fi.Width) - int(query)) }
	if i := closest(candidates, set, first, dist); i >= 0 {
		return candidates[i].Width
	}
	return candidates[closest(candidates, set, then, dist)].Width
}

func matchWeight(candidates []FaceInfo, set []int, query Weight) Weight {
	has := func(w Weight) bool {
		return anyMatch(candidates, set, func(fi *FaceInfo) bool { return fi.Weight == w })
	}
	switch {
	case has(query):
		return query
	case query >= 400 && query < 450 && has(WeightMedium):
		return WeightMedium
	case query >= 450 && query <= 500 && has(WeightNormal):
		return WeightNormal
	}
	lighter := func(fi *FaceInfo) bool { return fi.Weight <= query }
	heavier := func(fi *FaceInfo) bool { return fi.Weight >= query }
	first, then := lighter, heavier
	if query > 500 {
		first, then = heavier, lighter
	}
	dist := func(fi *FaceInfo) int { return absInt(int(fi.Weight) - int(query)) }
	if i := closest(candidates, set, first, dist); i >= 0 {
		return candidates[i].Weight
	}
	return candidates[closest(candidates, set, then, dist)].Weight
}

// closest returns the first candidate of set accepted by keep with the
// smallest distance, or -1.
func closest(candidates []FaceInfo, set []int, keep func(*FaceInfo) bool, dist func(*FaceInfo) int) int {
	best, bestDist := -1, 0
	for _, i := range set {
		fi := &candidates[i]
		if !keep(fi) {
			continue
		}
		if d := dist(fi); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func anyMatch(candidates []FaceInfo, set []int, pred func(*FaceInfo) bool) bool {
	for _, i := range set {
		if pred(&candidates[i]) {
			return true
		}
	}
	return false
}

func retain(set []int, keep func(int) bool) []int {
	out := set[:0]
	for _, i := range set {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
