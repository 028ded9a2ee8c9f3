// Package text holds the vocabulary shared by the text layout packages:
// directions, alignments, bounding boxes and the outline callback used to
// extract glyph paths.
//
// The pipeline itself lives in sub-packages:
//
//   - font: font queries, the face Database and CSS font matching
//   - bidi: visual runs of a line
//   - shaping: HarfBuzz shaping of one run
//   - line: a single line of text in a single font
//   - rich: multi-line, multi-style text and its markup
package text
