package font

import (
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggplot"
)

// bundledFonts are the font files loaded by WithBundledFonts.
var bundledFonts = []struct {
	name string
	data []byte
}{
	{"Go Regular", goregular.TTF},
	{"Go Bold", gobold.TTF},
	{"Go Italic", goitalic.TTF},
	{"Go Bold Italic", gobolditalic.TTF},
	{"Go Mono", gomono.TTF},
	{"Go Mono Bold", gomonobold.TTF},
	{"LM Roman 10 Regular", lmroman10regular.TTF},
	{"LM Roman 10 Bold", lmroman10bold.TTF},
	{"LM Roman 10 Italic", lmroman10italic.TTF},
	{"LM Roman 10 Bold Italic", lmroman10bolditalic.TTF},
}

func (db *Database) loadBundled() {
	for _, f := range bundledFonts {
		if _, err := db.LoadFontData(f.data); err != nil {
			ggplot.Logger().Warn("font: skipping bundled font", "name", f.name, "err", err)
		}
	}
}
