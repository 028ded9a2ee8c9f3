package shaping

import (
	"slices"

	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/font"
)

// Segment is a byte range of a run shaped with a single face.
type Segment struct {
	Start, End int
	Face       *font.ResolvedFace
	Glyphs     []Glyph
}

// FallbackFunc returns a face, not in tried, covering every character of s.
type FallbackFunc func(s string, tried []font.ID) (*font.ResolvedFace, bool)

// ShapeWithFallback shapes req, then reshapes every range of characters the
// face has no glyph for with a face returned by fallback. Ranges no face
// covers keep the missing glyphs of the first face. Segments come in visual
// order for the run direction.
func ShapeWithFallback(req Request, fallback FallbackFunc) []Segment {
	if req.Start >= req.End || req.Face == nil {
		return nil
	}
	segs := shapeFallback(req, fallback, []font.ID{req.Face.ID()})
	if req.Dir == text.RTL || req.Dir == text.BTT {
		slices.Reverse(segs)
	}
	return segs
}

// shapeFallback returns the segments of req in logical order.
func shapeFallback(req Request, fallback FallbackFunc, tried []font.ID) []Segment {
	glyphs := Shape(req)
	missing := missingRanges(glyphs, req.End)
	if len(missing) == 0 || fallback == nil {
		return []Segment{{Start: req.Start, End: req.End, Face: req.Face, Glyphs: glyphs}}
	}

	var segs []Segment
	covered := func(start, end int) {
		if start < end {
			sub := req
			sub.Start, sub.End = start, end
			segs = append(segs, Segment{Start: start, End: end, Face: req.Face, Glyphs: Shape(sub)})
		}
	}
	pos := req.Start
	for _, m := range missing {
		covered(pos, m[0])
		sub := req
		sub.Start, sub.End = m[0], m[1]
		face, ok := fallback(req.Text[m[0]:m[1]], tried)
		if !ok {
			segs = append(segs, Segment{Start: m[0], End: m[1], Face: req.Face, Glyphs: Shape(sub)})
		} else {
			sub.Face = face
			segs = append(segs, shapeFallback(sub, fallback, append(slices.Clip(tried), face.ID()))...)
		}
		pos = m[1]
	}
	covered(pos, req.End)
	return segs
}

// missingRanges returns the sorted, merged byte ranges of the clusters
// holding a glyph 0. A cluster ends where the next larger cluster starts.
func missingRanges(glyphs []Glyph, end int) [][2]int {
	hasMissing := false
	for _, g := range glyphs {
		if g.ID == 0 {
			hasMissing = true
			break
		}
	}
	if !hasMissing {
		return nil
	}

	starts := make([]int, 0, len(glyphs))
	for _, g := range glyphs {
		starts = append(starts, g.Cluster)
	}
	slices.Sort(starts)
	starts = slices.Compact(starts)

	var out [][2]int
	for _, g := range glyphs {
		if g.ID != 0 {
			continue
		}
		i, _ := slices.BinarySearch(starts, g.Cluster)
		r := [2]int{g.Cluster, end}
		if i+1 < len(starts) {
			r[1] = starts[i+1]
		}
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b [2]int) int { return a[0] - b[0] })

	merged := out[:1]
	for _, r := range out[1:] {
		last := &merged[len(merged)-1]
		if r[0] <= last[1] {
			last[1] = max(last[1], r[1])
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
