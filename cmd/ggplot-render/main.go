// Command ggplot-render renders rich-text markup to a PNG image and checks
// figure description files.
//
//	ggplot-render -markup '[bold]Hello[/bold] [color=red]world[/color]' -o hello.png
//	ggplot-render -check figure.plot
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/dsl"
	"github.com/gogpu/ggplot/geom"
	"github.com/gogpu/ggplot/surface"
	"github.com/gogpu/ggplot/text/font"
	"github.com/gogpu/ggplot/text/rich"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	markup   string
	output   string
	size     float64
	padding  float64
	theme    string
	classes  string
	check    string
	fontDirs string
	system   bool
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("ggplot-render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.markup, "markup", "", "rich-text markup to render")
	fs.StringVar(&cfg.output, "o", "text.png", "output image file")
	fs.Float64Var(&cfg.size, "size", 24, "font size in pixels")
	fs.Float64Var(&cfg.padding, "padding", 8, "padding around the text in pixels")
	fs.StringVar(&cfg.theme, "theme", "", "theme file (.toml or .yaml)")
	fs.StringVar(&cfg.classes, "classes", "", "CSS file defining markup classes")
	fs.StringVar(&cfg.check, "check", "", "figure description file to check instead of rendering")
	fs.StringVar(&cfg.fontDirs, "fonts", "", "extra font directories, separated by "+string(os.PathListSeparator))
	fs.BoolVar(&cfg.system, "system-fonts", false, "load system fonts")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if cfg.verbose {
		ggplot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer ggplot.SetLogger(nil)
	}

	if cfg.check != "" {
		return check(cfg.check, stdout, stderr)
	}
	if cfg.markup == "" {
		fmt.Fprintln(stderr, "ggplot-render: -markup or -check is required")
		fs.Usage()
		return 2
	}
	if err := render(&cfg); err != nil {
		var pe *rich.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(stderr, "ggplot-render: %v\n  %s\n  %s\n", err, cfg.markup, caret(pe.Span))
		} else {
			fmt.Fprintf(stderr, "ggplot-render: %v\n", err)
		}
		return 1
	}
	fmt.Fprintf(stdout, "saved %s\n", cfg.output)
	return 0
}

func check(path string, stdout, stderr io.Writer) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "ggplot-render: %v\n", err)
		return 1
	}
	input := string(data)
	props, err := dsl.Parse(input)
	if err != nil {
		fmt.Fprintf(stderr, "%s:%s\n", path, dsl.Diagnostic(input, err))
		return 1
	}
	fmt.Fprintf(stdout, "%s: ok, %d top-level properties\n", path, len(props))
	return 0
}

func render(cfg *config) error {
	if cfg.size <= 0 || math.IsNaN(cfg.size) || math.IsInf(cfg.size, 0) {
		return fmt.Errorf("invalid font size %v", cfg.size)
	}

	var opts []font.Option
	opts = append(opts, font.WithBundledFonts())
	if cfg.system {
		opts = append(opts, font.WithSystemFonts())
	}
	if cfg.fontDirs != "" {
		opts = append(opts, font.WithFontDirs(filepath.SplitList(cfg.fontDirs)...))
	}
	db := font.NewDatabase(opts...)

	theme := color.Light()
	if cfg.theme != "" {
		t, err := loadTheme(cfg.theme)
		if err != nil {
			return err
		}
		theme = t
	}

	var classes rich.Classes
	if cfg.classes != "" {
		sheet, err := os.ReadFile(cfg.classes)
		if err != nil {
			return err
		}
		if classes, err = rich.ParseClassSheet(string(sheet)); err != nil {
			return fmt.Errorf("%s: %w", cfg.classes, err)
		}
	}

	parsed, err := rich.ParseWithClasses(cfg.markup, classes)
	if err != nil {
		return err
	}
	root := rich.NewProps(cfg.size)
	root.Fill = rich.Ptr(color.FromSlot(color.SlotForeground))
	txt, err := parsed.Builder(root).ShapeAndLayout(db)
	if err != nil {
		return err
	}

	bbox, err := txt.VisualBBox(db)
	if err != nil {
		return err
	}
	if bbox.IsEmpty() {
		bbox = txt.BBox()
	}
	w := int(math.Ceil(bbox.Width() + 2*cfg.padding))
	h := int(math.Ceil(bbox.Height() + 2*cfg.padding))

	s := surface.NewImageSurface(w, h, surface.WithFonts(db), surface.WithTheme(theme))
	if err := s.Prepare(geom.Sz(float64(w), float64(h))); err != nil {
		return err
	}
	if err := s.Fill(surface.Themed(color.SlotBackground)); err != nil {
		return err
	}
	err = s.DrawTextLayout(&surface.RichText{
		Text:      txt,
		Transform: geom.Translate(cfg.padding-bbox.Left, cfg.padding-bbox.Top),
	})
	if err != nil {
		return err
	}
	return s.Save(cfg.output)
}

func loadTheme(path string) (*color.Theme, error) {
	var format color.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = color.FormatTOML
	case ".yaml", ".yml":
		format = color.FormatYAML
	default:
		return nil, fmt.Errorf("%s: unknown theme format", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return color.LoadTheme(f, format)
}

func caret(span rich.Span) string {
	n := max(span.End-span.Start, 1)
	return strings.Repeat(" ", max(span.Start, 0)) + strings.Repeat("^", n)
}
