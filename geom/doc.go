// Package geom provides the value types shared by text layout and drawing:
// sizes, points, rectangles, 2D affine transforms, paddings and paths.
//
// All types use float64 coordinates in a Y-down space. They are small
// values and are passed and returned by value, except [Path] and
// [PathBuilder] which own growable buffers.
package geom
