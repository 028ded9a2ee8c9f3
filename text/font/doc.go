// Package font describes fonts and resolves them to concrete faces.
//
// A [Font] is a query: an ordered list of families plus a weight, a width
// and a style. A [Database] holds parsed faces and answers queries with the
// CSS Level 3 font matching algorithm (stretch, then style, then weight).
// SelectFaceForStr additionally restricts candidates to faces whose declared
// Unicode coverage includes the text, and SelectFaceFallback looks for any
// face with the same aspect covering characters a first choice lacks.
//
// Faces are parsed with github.com/go-text/typesetting. Resolving a face for
// a font returns a [ResolvedFace], a private view of the face with variation
// coordinates applied, so shared faces are never mutated.
//
// Basic usage:
//
//	db := font.NewDatabase(font.WithBundledFonts())
//	id, ok := db.SelectFace(font.Default().WithWeight(font.WeightBold))
//	if !ok {
//	    // no face
//	}
//	face, err := db.Resolve(id, f)
//	m := face.Metrics(12)
package font
