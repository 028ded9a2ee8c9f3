package color

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"golang.org/x/image/colornames"
)

// nameTrie indexes the lower-case CSS/SVG color names for suggestions.
var nameTrie = func() *trie.Trie {
	t := trie.New()
	for _, name := range colornames.Names {
		t.Add(name, nil)
	}
	return t
}()

// Lookup returns the named CSS/SVG color. Names are case-insensitive.
func Lookup(name string) (RGBA, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{c.R, c.G, c.B, c.A}, true
}

// Names returns all known color names in lexical order.
func Names() []string {
	out := make([]string, len(colornames.Names))
	copy(out, colornames.Names)
	sort.Strings(out)
	return out
}

// Suggest returns the known color names sharing the longest non-empty
// prefix with name, sorted. It returns nil when not even the first letter
// matches.
func Suggest(name string) []string {
	key := strings.ToLower(strings.TrimSpace(name))
	for n := len(key); n > 0; n-- {
		found := nameTrie.PrefixSearch(key[:n])
		if len(found) > 0 {
			sort.Strings(found)
			return found
		}
	}
	return nil
}
