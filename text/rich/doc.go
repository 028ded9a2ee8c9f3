// Package rich lays out multi-line text whose style varies along the
// string.
//
// A [Builder] holds the text, the root [Props] and any number of [OptProps]
// overlays on byte ranges. Overlays may nest or overlap; at every position
// the active overlays are folded onto the root in the order they start.
// ShapeAndLayout splits the text into lines, each line into shapes that
// share one face, one direction and one font query, and each shape into
// [PropsSpan]s sharing the remaining paint properties. Lines are laid out
// horizontally or, with a [Vertical] layout, as columns.
//
// Styled text is usually written in markup and turned into a Builder by
// [Parse]:
//
//	parsed, err := rich.Parse("Some [bold;fill=red]bold red[/bold;fill] text")
//	if err != nil {
//	    return err
//	}
//	layout, err := parsed.Builder(rich.NewProps(14)).ShapeAndLayout(db)
//
// Tags open with [prop=value;class] and close with [/prop;class]. A closing
// tag closes the innermost open tag naming all of its keys. \[ and \\ escape
// a bracket and a backslash.
package rich
