package font

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/internal/cache"
)

var (
	tagOS2  = opentype.MustNewTag("OS/2")
	tagFvar = opentype.MustNewTag("fvar")
)

// Database is a collection of font faces.
//
// Faces are parsed once when loaded; the parsed fonts are immutable and
// shared by every ResolvedFace. Database is safe for concurrent use, and
// queries may run while other goroutines load fonts.
type Database struct {
	mu      sync.RWMutex
	faces   []FaceInfo
	fonts   []*gtfont.Font
	generic [len(genericNames)]string

	// gen counts the changes that can alter a selection: loaded faces and
	// generic families. selected caches SelectFace results per generation.
	gen      uint64
	selected *cache.Cache[selectKey, selection]
}

type selectKey struct {
	gen   uint64
	query string
}

type selection struct {
	id ID
	ok bool
}

// selectionCacheSize bounds the number of cached SelectFace queries.
const selectionCacheSize = 256

// Option configures a Database created by NewDatabase.
type Option func(*dbConfig)

type dbConfig struct {
	bundled bool
	system  bool
	dirs    []string
}

// WithBundledFonts loads the fonts shipped with the module: the Go fonts and
// Latin Modern Roman.
func WithBundledFonts() Option {
	return func(c *dbConfig) {
		c.bundled = true
	}
}

// WithSystemFonts loads the fonts installed on the system.
func WithSystemFonts() Option {
	return func(c *dbConfig) {
		c.system = true
	}
}

// WithFontDirs loads every font file found under the given directories.
func WithFontDirs(dirs ...string) Option {
	return func(c *dbConfig) {
		c.dirs = append(c.dirs, dirs...)
	}
}

// NewDatabase creates a database and loads the fonts selected by opts.
// Font files that fail to parse are skipped and logged.
func NewDatabase(opts ...Option) *Database {
	var cfg dbConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	db := &Database{selected: cache.New[selectKey, selection](selectionCacheSize)}
	db.generic[Serif] = "Times New Roman"
	db.generic[SansSerif] = "Arial"
	db.generic[Cursive] = "Comic Sans MS"
	db.generic[Fantasy] = "Impact"
	db.generic[Monospace] = "Courier New"

	if cfg.bundled {
		db.loadBundled()
	}
	for _, dir := range cfg.dirs {
		if _, err := db.LoadFontsDir(dir); err != nil {
			ggplot.Logger().Warn("font: cannot load font directory", "dir", dir, "err", err)
		}
	}
	if cfg.system {
		db.LoadSystemFonts()
	}
	return db
}

// SetSerifFamily sets the family used for the serif generic family.
func (db *Database) SetSerifFamily(name string) { db.setGeneric(Serif, name) }

// SetSansSerifFamily sets the family used for the sans-serif generic family.
func (db *Database) SetSansSerifFamily(name string) { db.setGeneric(SansSerif, name) }

// SetCursiveFamily sets the family used for the cursive generic family.
func (db *Database) SetCursiveFamily(name string) { db.setGeneric(Cursive, name) }

// SetFantasyFamily sets the family used for the fantasy generic family.
func (db *Database) SetFantasyFamily(name string) { db.setGeneric(Fantasy, name) }

// SetMonospaceFamily sets the family used for the monospace generic family.
func (db *Database) SetMonospaceFamily(name string) { db.setGeneric(Monospace, name) }

func (db *Database) setGeneric(g Generic, name string) {
	db.mu.Lock()
	db.generic[g] = name
	db.gen++
	db.mu.Unlock()
	db.selected.Clear()
}

// LoadFontData parses a font file (TTF, OTF, TTC or OTC) and adds its faces.
// It returns the IDs of the new faces.
func (db *Database) LoadFontData(data []byte) ([]ID, error) {
	return db.load(data, "")
}

// LoadFontFile reads and loads a font file.
func (db *Database) LoadFontFile(path string) ([]ID, error) {
	// #nosec G304 -- font path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return db.load(data, path)
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}

// LoadFontsDir loads every font file under dir, recursively. Files that fail
// to parse are skipped. It returns the number of faces added.
func (db *Database) LoadFontsDir(dir string) (int, error) {
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}
		ids, err := db.LoadFontFile(path)
		if err != nil {
			ggplot.Logger().Warn("font: skipping font file", "path", path, "err", err)
			return nil
		}
		n += len(ids)
		return nil
	})
	return n, err
}

// LoadSystemFonts loads the fonts installed on the system and returns the
// number of faces added.
func (db *Database) LoadSystemFonts() int {
	n := 0
	for _, path := range findfont.List() {
		if !isFontFile(path) {
			continue
		}
		ids, err := db.LoadFontFile(path)
		if err != nil {
			ggplot.Logger().Warn("font: skipping font file", "path", path, "err", err)
			continue
		}
		n += len(ids)
	}
	ggplot.Logger().Info("font: system fonts loaded", "faces", n)
	return n
}

// LoadSystemFont locates an installed font file by name, such as "arial" or
// "DejaVuSans.ttf", and loads it.
func (db *Database) LoadSystemFont(name string) ([]ID, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return db.LoadFontFile(path)
}

func (db *Database) load(data []byte, path string) ([]ID, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	loaders, err := opentype.NewLoaders(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	// The names table is read with x/image; fonts it rejects keep the
	// family reported by the face description.
	coll, _ := sfnt.ParseCollection(data)

	infos := make([]FaceInfo, 0, len(loaders))
	fonts := make([]*gtfont.Font, 0, len(loaders))
	for i, ld := range loaders {
		ft, err := gtfont.NewFont(ld)
		if err != nil {
			return nil, fmt.Errorf("font: face %d: %w", i, err)
		}
		info := describe(gtfont.NewFace(ft), ld)
		info.Index = i
		info.Path = path
		info.Families, info.PostScriptName = faceNames(coll, i, info.Families)
		infos = append(infos, info)
		fonts = append(fonts, ft)
	}

	db.mu.Lock()
	ids := make([]ID, len(infos))
	for i := range infos {
		id := ID(len(db.faces))
		infos[i].ID = id
		ids[i] = id
		db.faces = append(db.faces, infos[i])
		db.fonts = append(db.fonts, fonts[i])
	}
	db.gen++
	db.mu.Unlock()
	db.selected.Clear()

	for _, info := range infos {
		ggplot.Logger().Debug("font: loaded face",
			"id", info.ID, "family", info.Family(), "weight", info.Weight,
			"width", info.Width, "style", info.Style)
	}
	return ids, nil
}

// describe fills the aspect of a face from its description, refined by the
// OS/2 table when present.
func describe(face *gtfont.Face, ld *opentype.Loader) FaceInfo {
	desc := face.Describe()
	info := FaceInfo{
		Weight: Weight(desc.Aspect.Weight),
		Width:  WidthFromPercent(float64(desc.Aspect.Stretch) * 100),
		Style:  StyleNormal,
	}
	if desc.Family != "" {
		info.Families = []string{desc.Family}
	}
	if desc.Aspect.Style == gtfont.StyleItalic {
		info.Style = StyleItalic
	}
	if info.Weight == 0 {
		info.Weight = WeightNormal
	}

	if os2, err := ld.RawTableTo(tagOS2, nil); err == nil {
		t := parseOS2(os2)
		if t.weight >= 1 && t.weight <= 1000 {
			info.Weight = t.weight
		}
		if t.width.valid() {
			info.Width = t.width
		}
		if t.oblique && info.Style == StyleNormal {
			info.Style = StyleOblique
		}
		info.Ranges = t.ranges
	}
	if _, err := ld.RawTableTo(tagFvar, nil); err == nil {
		info.Variable = true
	}
	return info
}

type os2Info struct {
	weight  Weight
	width   Width
	oblique bool
	ranges  UnicodeRanges
}

// parseOS2 reads the fields of the OS/2 table the database needs. Fields
// past the end of a truncated table are left zero.
func parseOS2(b []byte) os2Info {
	u16 := func(off int) uint16 {
		if off+2 > len(b) {
			return 0
		}
		return uint16(b[off])<<8 | uint16(b[off+1])
	}
	u32 := func(off int) uint32 {
		return uint32(u16(off))<<16 | uint32(u16(off+2))
	}
	var info os2Info
	info.weight = Weight(u16(4))
	info.width = Width(u16(6))
	for i := range info.ranges {
		info.ranges[i] = u32(42 + 4*i)
	}
	const fsSelectionOblique = 1 << 9
	info.oblique = u16(62)&fsSelectionOblique != 0
	return info
}

func faceNames(coll *sfnt.Collection, index int, fallback []string) (families []string, postscript string) {
	if coll == nil {
		return fallback, ""
	}
	f, err := coll.Font(index)
	if err != nil {
		return fallback, ""
	}
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDTypographicFamily, sfnt.NameIDFamily} {
		name, err := f.Name(&buf, id)
		if err == nil && name != "" && !slices.Contains(families, name) {
			families = append(families, name)
		}
	}
	for _, name := range fallback {
		if !slices.Contains(families, name) {
			families = append(families, name)
		}
	}
	postscript, _ = f.Name(&buf, sfnt.NameIDPostScript)
	return families, postscript
}

// Len returns the number of faces.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.faces)
}

// Faces returns a snapshot of the loaded faces.
func (db *Database) Faces() []FaceInfo {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return slices.Clone(db.faces)
}

// Face returns the description of a face.
func (db *Database) Face(id ID) (FaceInfo, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if int(id) >= len(db.faces) {
		return FaceInfo{}, false
	}
	return db.faces[id], true
}

func (db *Database) parsed(id ID) (*gtfont.Font, FaceInfo, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if int(id) >= len(db.fonts) {
		return nil, FaceInfo{}, false
	}
	return db.fonts[id], db.faces[id], true
}

// SelectFace returns the face matching f. Families are tried in order and
// the first one holding any face wins; within a family the CSS matching
// algorithm picks the face.
func (db *Database) SelectFace(f Font) (ID, bool) {
	db.mu.RLock()
	key := selectKey{gen: db.gen, query: f.String()}
	db.mu.RUnlock()
	if sel, ok := db.selected.Get(key); ok {
		return sel.id, sel.ok
	}
	id, ok := db.query(f, nil)
	db.selected.Set(key, selection{id, ok})
	return id, ok
}

// SelectFaceForStr is SelectFace restricted to faces whose declared Unicode
// coverage includes every block used by s. Faces declaring no coverage at
// all are kept.
func (db *Database) SelectFaceForStr(f Font, s string) (ID, bool) {
	want := ForString(s)
	return db.query(f, func(fi *FaceInfo) bool {
		return fi.Ranges.IsEmpty() || fi.Ranges.Superset(want)
	})
}

func (db *Database) query(f Font, keep func(*FaceInfo) bool) (ID, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var candidates []FaceInfo
	for _, fam := range f.Families() {
		for _, name := range db.familyNames(fam) {
			candidates = candidates[:0]
			for i := range db.faces {
				fi := &db.faces[i]
				if fi.HasFamily(name) && (keep == nil || keep(fi)) {
					candidates = append(candidates, *fi)
				}
			}
			if i := BestMatch(candidates, f.Weight(), f.Width(), f.Style()); i >= 0 {
				return candidates[i].ID, true
			}
		}
	}
	return 0, false
}

// bundledGeneric names the bundled families tried for a generic family
// after the configured one. The Latin Modern files name their family
// "Latin Modern Roman"; the TeX name is kept for other builds of the font.
var bundledGeneric = map[Generic][]string{
	Serif:     {"Latin Modern Roman", "LM Roman 10"},
	SansSerif: {"Go"},
	Monospace: {"Go Mono"},
}

func (db *Database) familyNames(f Family) []string {
	g := f.Generic()
	if g == NotGeneric {
		return []string{f.Name()}
	}
	names := []string{db.generic[g]}
	for _, b := range bundledGeneric[g] {
		if !strings.EqualFold(b, db.generic[g]) {
			names = append(names, b)
		}
	}
	return names
}

// SelectFaceFallback returns the first face not in tried that covers every
// character of s and has the style, weight and width of tried[0].
func (db *Database) SelectFaceFallback(s string, tried []ID) (ID, bool) {
	if len(tried) == 0 {
		return 0, false
	}
	base, ok := db.Face(tried[0])
	if !ok {
		return 0, false
	}
	for _, fi := range db.Faces() {
		if slices.Contains(tried, fi.ID) || !fi.sameAspect(&base) {
			continue
		}
		if db.HasChars(fi.ID, s) {
			return fi.ID, true
		}
	}
	return 0, false
}

// SelectFaceFallbackRune is SelectFaceFallback for a single character.
func (db *Database) SelectFaceFallbackRune(r rune, tried []ID) (ID, bool) {
	return db.SelectFaceFallback(string(r), tried)
}

// HasChar reports whether the face maps r to a glyph.
func (db *Database) HasChar(id ID, r rune) bool {
	ft, _, ok := db.parsed(id)
	if !ok {
		return false
	}
	_, has := gtfont.NewFace(ft).NominalGlyph(r)
	return has
}

// HasChars reports whether the face maps every character of s to a glyph.
func (db *Database) HasChars(id ID, s string) bool {
	ft, _, ok := db.parsed(id)
	if !ok {
		return false
	}
	face := gtfont.NewFace(ft)
	for _, r := range s {
		if _, has := face.NominalGlyph(r); !has {
			return false
		}
	}
	return true
}
