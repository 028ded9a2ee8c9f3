// Package line shapes and lays out a single line of text in one font.
//
// The line is split into bidi runs, each run is shaped with the face the
// font resolves to for its characters, and the glyphs are positioned so
// that the origin (0, 0) is the anchor selected by the alignment options.
// Coordinates are Y-down.
package line

import (
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/text"
	"github.com/gogpu/ggplot/text/bidi"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/shaping"
)

// Glyph is a positioned glyph. Transform maps the glyph outline, in font
// units with Y up, to line space.
type Glyph struct {
	ID        font.GID
	Cluster   int
	XAdvance  float64
	YAdvance  float64
	XOffset   float64
	YOffset   float64
	Transform geom.Transform
}

// Shape is a run of glyphs sharing one face and one direction, in visual
// order.
type Shape struct {
	FaceID     font.ID
	Start, End int
	Dir        text.ScriptDir
	Metrics    font.ScaledMetrics
	Glyphs     []Glyph
}

// Width returns the sum of the horizontal advances.
func (s *Shape) Width() float64 {
	w := 0.0
	for _, g := range s.Glyphs {
		w += g.XAdvance
	}
	return w
}

// Option configures New.
type Option func(*config)

type config struct {
	align    text.Align
	verAlign text.VerAlign
	anchor   text.Anchor
	dir      *text.ScriptDir
}

// WithAlign sets the horizontal alignment. The default is text.AlignStart.
// Justify behaves as Start for a single line.
func WithAlign(a text.Align) Option {
	return func(c *config) { c.align = a }
}

// WithVerAlign sets the vertical alignment. The default is text.Baseline.
func WithVerAlign(v text.VerAlign) Option {
	return func(c *config) { c.verAlign = v }
}

// WithAnchor sets the horizontal anchor. The default anchors at X = 0.
func WithAnchor(a text.Anchor) Option {
	return func(c *config) { c.anchor = a }
}

// WithDirection forces the direction of the whole line, bypassing the bidi
// algorithm.
func WithDirection(d text.ScriptDir) Option {
	return func(c *config) { c.dir = &d }
}

// LineText is a shaped and positioned line of text.
type LineText struct {
	text     string
	align    text.Align
	verAlign text.VerAlign
	size     float64
	font     font.Font
	bbox     text.BBox
	mainDir  text.ScriptDir
	metrics  font.ScaledMetrics
	shapes   []Shape
}

// New shapes s with font f at the given size.
//
// It fails with a *font.NoSuchFontError when no face matches f for a run,
// and with a *font.FaceParsingError when a face cannot be prepared. No
// partial line is returned.
func New(s string, f font.Font, size float64, db *font.Database, opts ...Option) (*LineText, error) {
	cfg := config{align: text.AlignStart, verAlign: text.Baseline}
	for _, opt := range opts {
		opt(&cfg)
	}

	lt := &LineText{
		text:     s,
		align:    cfg.align,
		verAlign: cfg.verAlign,
		size:     size,
		font:     f,
		mainDir:  text.LTR,
	}
	if s == "" {
		return lt, nil
	}

	var algo *bidi.Algo
	var known bool
	switch {
	case cfg.dir != nil:
		algo = bidi.Fixed(*cfg.dir)
		lt.mainDir, known = *cfg.dir, true
	default:
		var level *bidi.Level
		if rtl, ok := text.ScriptIsRTL(s); ok {
			l := bidi.LevelLTR
			lt.mainDir = text.LTR
			if rtl {
				l = bidi.LevelRTL
				lt.mainDir = text.RTL
			}
			level, known = &l, true
		}
		algo = bidi.Auto(level)
	}
	runs := algo.VisualRuns(s, 0)
	if !known {
		lt.mainDir = runs[0].Dir
	}

	faces := make(map[font.ID]*font.ResolvedFace)
	for _, run := range runs {
		shapes, err := shapeRun(s, run, f, size, db, faces)
		if err != nil {
			return nil, err
		}
		lt.shapes = append(lt.shapes, shapes...)
	}

	lt.metrics = lt.shapes[0].Metrics
	for _, sh := range lt.shapes[1:] {
		lt.metrics = lt.metrics.Union(sh.Metrics)
	}
	lt.position(cfg.anchor)
	return lt, nil
}

// shapeRun shapes one bidi run. Characters missing from the selected face
// are shaped with a fallback face of the same aspect, giving one Shape per
// face used.
func shapeRun(s string, run bidi.Run, f font.Font, size float64, db *font.Database, faces map[font.ID]*font.ResolvedFace) ([]Shape, error) {
	face, err := resolveFace(db, f, s[run.Start:run.End], faces)
	if err != nil {
		return nil, err
	}
	var resolveErr error
	fallback := func(str string, tried []font.ID) (*font.ResolvedFace, bool) {
		id, ok := db.SelectFaceFallback(str, tried)
		if !ok {
			return nil, false
		}
		fb, err := resolveID(db, id, f, faces)
		if err != nil {
			resolveErr = err
			return nil, false
		}
		return fb, true
	}
	segs := shaping.ShapeWithFallback(shaping.Request{
		Text:  s,
		Start: run.Start,
		End:   run.End,
		Dir:   run.Dir,
		Face:  face,
		Size:  size,
	}, fallback)
	if resolveErr != nil {
		return nil, resolveErr
	}

	shapes := make([]Shape, 0, len(segs))
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
		shapes = append(shapes, Shape{
			FaceID:  seg.Face.ID(),
			Start:   seg.Start,
			End:     seg.End,
			Dir:     run.Dir,
			Metrics: seg.Face.Metrics(size),
			Glyphs:  glyphs,
		})
	}
	return shapes, nil
}

// resolveFace selects the face for a run, preferring faces declaring
// coverage of its characters.
func resolveFace(db *font.Database, f font.Font, run string, cache map[font.ID]*font.ResolvedFace) (*font.ResolvedFace, error) {
	id, ok := db.SelectFaceForStr(f, run)
	if !ok {
		id, ok = db.SelectFace(f)
	}
	if !ok {
		return nil, &font.NoSuchFontError{Font: f}
	}
	return resolveID(db, id, f, cache)
}

func resolveID(db *font.Database, id font.ID, f font.Font, cache map[font.ID]*font.ResolvedFace) (*font.ResolvedFace, error) {
	if face, ok := cache[id]; ok {
		return face, nil
	}
	face, err := db.Resolve(id, f)
	if err != nil {
		return nil, err
	}
	cache[id] = face
	return face, nil
}

// position computes the glyph transforms and the bounding box.
func (lt *LineText) position(anchor text.Anchor) {
	width := 0.0
	for i := range lt.shapes {
		width += lt.shapes[i].Width()
	}

	y := lt.verAlign.Offset(lt.metrics.Line())
	xStart := lt.align.StartX(width, lt.mainDir, anchor)
	top := y - lt.metrics.Ascent
	bottom := y - lt.metrics.Descent

	x := xStart
	for i := range lt.shapes {
		sh := &lt.shapes[i]
		scale := sh.Metrics.Scale
		for j := range sh.Glyphs {
			g := &sh.Glyphs[j]
			g.Transform = geom.FlipY().
				Then(geom.Scale(scale, scale)).
				ThenTranslate(x+g.XOffset, y-g.YOffset)
			x += g.XAdvance
			y -= g.YAdvance
		}
	}
	lt.bbox = text.BBox{Top: top, Right: x, Bottom: bottom, Left: xStart}
}

func (lt *LineText) Text() string                { return lt.text }
func (lt *LineText) Align() text.Align           { return lt.align }
func (lt *LineText) VerAlign() text.VerAlign     { return lt.verAlign }
func (lt *LineText) FontSize() float64           { return lt.size }
func (lt *LineText) Font() font.Font             { return lt.font }
func (lt *LineText) MainDir() text.ScriptDir     { return lt.mainDir }
func (lt *LineText) Metrics() font.ScaledMetrics { return lt.metrics }
func (lt *LineText) Shapes() []Shape             { return lt.shapes }

// BBox returns the typographic box: from the start to the end of the pen
// horizontally, from the ascent to the descent vertically. It does not
// depend on glyph ink.
func (lt *LineText) BBox() text.BBox { return lt.bbox }

func (lt *LineText) Width() float64  { return lt.bbox.Width() }
func (lt *LineText) Height() float64 { return lt.bbox.Height() }

// IsEmpty reports a line without glyphs.
func (lt *LineText) IsEmpty() bool {
	return len(lt.shapes) == 0
}
