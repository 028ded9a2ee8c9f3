package rich

import (
	"cmp"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/bidi"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/shaping"
)

type span struct {
	start, end int
	props      OptProps
}

// Builder collects text and style overlays to lay out.
type Builder struct {
	text   string
	root   Props
	layout Layout
	spans  []span
}

// NewBuilder returns a builder for s styled with root. The layout defaults
// to Horizontal{}.
func NewBuilder(s string, root Props) *Builder {
	return &Builder{text: s, root: root, layout: Horizontal{}}
}

// WithLayout sets the layout policy.
func (b *Builder) WithLayout(l Layout) *Builder {
	b.layout = l
	return b
}

// AddSpan overlays props on text[start:end]. It panics if start > end or
// if either offset is not on a rune boundary.
func (b *Builder) AddSpan(start, end int, props OptProps) {
	if start > end || end > len(b.text) || start < 0 {
		panic(fmt.Sprintf("rich: invalid span [%d, %d) in text of length %d", start, end, len(b.text)))
	}
	if !runeBoundary(b.text, start) || !runeBoundary(b.text, end) {
		panic(fmt.Sprintf("rich: span [%d, %d) is not on rune boundaries", start, end))
	}
	b.spans = append(b.spans, span{start: start, end: end, props: props})
}

func runeBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

// buildCtx holds the state of one ShapeAndLayout call.
type buildCtx struct {
	db    *font.Database
	algo  *bidi.Algo
	faces *faceCache

	// order lists span indices by start, ties in insertion order. Folding
	// active spans in this order resolves properties.
	order []int
}

// ShapeAndLayout shapes every line and lays the text out.
//
// It fails with a *font.NoSuchFontError when no face matches the font of
// some text, and with a *font.FaceParsingError when a face cannot be
// prepared.
func (b *Builder) ShapeAndLayout(db *font.Database) (*Text, error) {
	t := &Text{text: b.text, layout: b.layout}
	if b.text == "" {
		return t, nil
	}

	ctx := &buildCtx{db: db, faces: newFaceCache(db)}
	switch l := b.layout.(type) {
	case Vertical:
		ctx.algo = bidi.Fixed(l.Dir.scriptDir())
	case Horizontal:
		ctx.algo = bidiAlgo(l.Dir)
	default:
		panic(fmt.Sprintf("rich: unknown layout %T", b.layout))
	}
	ctx.order = make([]int, len(b.spans))
	for i := range ctx.order {
		ctx.order[i] = i
	}
	slices.SortStableFunc(ctx.order, func(i, j int) int {
		return cmp.Compare(b.spans[i].start, b.spans[j].start)
	})

	lines, err := b.shapeLines(ctx)
	if err != nil {
		return nil, err
	}
	t.lines = lines

	switch l := b.layout.(type) {
	case Vertical:
		b.layoutVertical(t.lines, l)
	case Horizontal:
		b.layoutHorizontal(t.lines, l)
	}
	t.bbox = t.lines[0].BBox
	for i := 1; i < len(t.lines); i++ {
		t.bbox = t.bbox.Unite(t.lines[i].BBox)
	}
	return t, nil
}

func bidiAlgo(d Direction) *bidi.Algo {
	switch d {
	case LTR:
		return bidi.Fixed(text.LTR)
	case RTL:
		return bidi.Fixed(text.RTL)
	case MixedLTR:
		l := bidi.LevelLTR
		return bidi.Auto(&l)
	case MixedRTL:
		l := bidi.LevelRTL
		return bidi.Auto(&l)
	default:
		return bidi.Auto(nil)
	}
}

// shapeLines splits the text on line terminators: LF, CR LF, NEL, LS and
// PS. A terminator at the very end does not open an empty last line.
func (b *Builder) shapeLines(ctx *buildCtx) ([]Line, error) {
	var lines []Line
	start := 0
	prevCR := false
	for i, r := range b.text {
		eol, lineEnd := 0, i
		switch r {
		case '\r':
			prevCR = true
			continue
		case '\n':
			eol = 1
			if prevCR {
				eol, lineEnd = 2, i-1
			}
		case '\u0085':
			eol = 2
		case '\u2028', '\u2029':
			eol = 3
		}
		prevCR = false
		if eol == 0 {
			continue
		}
		ln, err := b.shapeLine(ctx, start, lineEnd, eol)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ln)
		start = lineEnd + eol
	}
	if start < len(b.text) {
		ln, err := b.shapeLine(ctx, start, len(b.text), 0)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

// shapeLine cuts the line at bidi run edges and at the edges of spans that
// change the font, and shapes every piece. Shapes come in visual order.
func (b *Builder) shapeLine(ctx *buildCtx, start, end, eol int) (Line, error) {
	ln := Line{Start: start, End: end, EOL: eol}
	if start == end {
		// An empty line keeps the height of the font it would be written in.
		props := b.propsAt(ctx, start)
		face, err := ctx.faces.selectFace(props.Font, "")
		if err != nil {
			return ln, err
		}
		ln.MainDir = ctx.algo.StartDir()
		ln.Metrics = face.Metrics(props.Size)
		return ln, nil
	}

	runs := ctx.algo.VisualRuns(b.text[start:end], start)
	ln.MainDir = ctx.algo.StartDir()

	cuts := treeset.NewWithIntComparator()
	for _, sp := range b.spans {
		if sp.props.AffectsShape() {
			cuts.Add(sp.start, sp.end)
		}
	}
	for _, run := range runs {
		pieces := boundaries(run.Start, run.End, cuts)
		if run.Dir == text.RTL || run.Dir == text.BTT {
			slices.Reverse(pieces)
		}
		for _, p := range pieces {
			shapes, err := b.shapeSpan(ctx, p[0], p[1], run.Dir)
			if err != nil {
				return ln, err
			}
			ln.Shapes = append(ln.Shapes, shapes...)
		}
	}

	ln.Metrics = ln.Shapes[0].Metrics
	for i := 1; i < len(ln.Shapes); i++ {
		ln.Metrics = ln.Metrics.Union(ln.Shapes[i].Metrics)
	}
	return ln, nil
}

// shapeSpan shapes text[start:end] and splits it into props spans at every
// span edge. Characters missing from the selected face are shaped with a
// fallback face, each face giving its own ShapeSpan.
func (b *Builder) shapeSpan(ctx *buildCtx, start, end int, dir text.ScriptDir) ([]ShapeSpan, error) {
	edges := treeset.NewWithIntComparator()
	for _, sp := range b.spans {
		edges.Add(sp.start, sp.end)
	}
	pieces := boundaries(start, end, edges)
	spans := make([]PropsSpan, len(pieces))
	for i, p := range pieces {
		spans[i] = PropsSpan{Start: p[0], End: p[1], Props: b.propsAt(ctx, p[0]), BBox: text.EmptyBBox}
	}

	// Spans differ only by properties that keep the glyphs.
	props := spans[0].Props
	face, err := ctx.faces.selectFace(props.Font, b.text[start:end])
	if err != nil {
		return nil, err
	}
	info := face.Info()
	ggplot.Logger().Debug("rich: shaping span",
		"start", start, "end", end, "dir", dir, "face", face.ID(), "family", info.Family(), "size", props.Size)

	var resolveErr error
	fallback := func(s string, tried []font.ID) (*font.ResolvedFace, bool) {
		id, ok := ctx.faces.db.SelectFaceFallback(s, tried)
		if !ok {
			return nil, false
		}
		fb, err := ctx.faces.resolve(id, props.Font)
		if err != nil {
			resolveErr = err
			return nil, false
		}
		ggplot.Logger().Debug("rich: fallback face", "text", s, "face", id)
		return fb, true
	}
	segs := shaping.ShapeWithFallback(shaping.Request{
		Text:     b.text,
		Start:    start,
		End:      end,
		Dir:      dir,
		Face:     face,
		Size:     props.Size,
		Features: []shaping.Feature{shaping.Kern},
	}, fallback)
	if resolveErr != nil {
		return nil, resolveErr
	}

	out := make([]ShapeSpan, 0, len(segs))
	for _, seg := range segs {
		glyphs := make([]Glyph, len(seg.Glyphs))
		for i, g := range seg.Glyphs {
			glyphs[i] = Glyph{
				ID:       g.ID,
				Cluster:  g.Cluster,
				XAdvance: g.XAdvance,
				YAdvance: g.YAdvance,
				XOffset:  g.XOffset,
				YOffset:  g.YOffset,
			}
		}
		out = append(out, ShapeSpan{
			Start:   seg.Start,
			End:     seg.End,
			Dir:     dir,
			FaceID:  seg.Face.ID(),
			Font:    props.Font,
			Size:    props.Size,
			Metrics: seg.Face.Metrics(props.Size),
			Glyphs:  glyphs,
			Spans:   clipSpans(spans, seg.Start, seg.End),
			BBox:    text.EmptyBBox,
		})
	}
	return out, nil
}

// clipSpans returns the parts of spans lying inside [start, end).
func clipSpans(spans []PropsSpan, start, end int) []PropsSpan {
	var out []PropsSpan
	for _, sp := range spans {
		s, e := max(sp.Start, start), min(sp.End, end)
		if s < e {
			sp.Start, sp.End = s, e
			out = append(out, sp)
		}
	}
	return out
}

// propsAt folds the spans covering byte offset p onto the root props.
func (b *Builder) propsAt(ctx *buildCtx, p int) Props {
	props := b.root
	for _, i := range ctx.order {
		sp := &b.spans[i]
		if sp.start > p {
			break
		}
		if p < sp.end {
			props = props.Apply(sp.props)
		}
	}
	return props
}

// boundaries cuts [start, end) at the offsets of edges lying strictly
// inside it.
func boundaries(start, end int, edges *treeset.Set) [][2]int {
	var out [][2]int
	prev := start
	for _, v := range edges.Values() {
		e := v.(int)
		if e <= start {
			continue
		}
		if e >= end {
			break
		}
		out = append(out, [2]int{prev, e})
		prev = e
	}
	return append(out, [2]int{prev, end})
}

type faceKey struct {
	id     font.ID
	weight font.Weight
	width  font.Width
}

// faceCache resolves each face once per call, per variation coordinates.
type faceCache struct {
	db    *font.Database
	faces map[faceKey]*font.ResolvedFace
}

func newFaceCache(db *font.Database) *faceCache {
	return &faceCache{db: db, faces: make(map[faceKey]*font.ResolvedFace)}
}

// selectFace picks the face for s, preferring faces declaring coverage of
// its characters.
func (c *faceCache) selectFace(f font.Font, s string) (*font.ResolvedFace, error) {
	id, ok := c.db.SelectFaceForStr(f, s)
	if !ok {
		id, ok = c.db.SelectFace(f)
	}
	if !ok {
		return nil, &font.NoSuchFontError{Font: f}
	}
	return c.resolve(id, f)
}

func (c *faceCache) resolve(id font.ID, f font.Font) (*font.ResolvedFace, error) {
	key := faceKey{id: id, weight: f.Weight(), width: f.Width()}
	if face, ok := c.faces[key]; ok {
		return face, nil
	}
	face, err := c.db.Resolve(id, f)
	if err != nil {
		return nil, err
	}
	c.faces[key] = face
	return face, nil
}
