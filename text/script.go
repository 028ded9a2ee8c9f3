package text

import "golang.org/x/text/unicode/bidi"

// ScriptIsRTL scans s for its first strongly directional character.
// Left-to-right characters and embeddings yield (false, true); right-to-left
// and Arabic letters yield (true, true). Text holding Arabic numbers but no
// strong character is considered right-to-left. Otherwise the direction is
// unknown and ok is false.
func ScriptIsRTL(s string) (rtl, ok bool) {
	arabicNumber := false
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L, bidi.LRE, bidi.LRO, bidi.LRI:
			return false, true
		case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
			return true, true
		case bidi.AN:
			arabicNumber = true
		}
	}
	if arabicNumber {
		return true, true
	}
	return false, false
}
