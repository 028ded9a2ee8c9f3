// Package dsl parses figure descriptions.
//
// A description is a list of properties. Property names are kebab-case,
// type and enum names are PascalCase:
//
//	figure: {
//	    title: "Subplots " "over two lines"
//	    size: 800, 600
//	    plot: {
//	        x-axis: "x", Ticks, Grid
//	        series: Line {
//	            x-data: [0, 0.5, 1]
//	            y-data: [1, 2, 4]
//	        }
//	    }
//	    legend // a property without value
//	}
//
// Values are strings, integers, floats, enum names, comma separated
// sequences of those, bracketed arrays of a single type and braced
// structs. Adjacent string literals are concatenated. Comments run from
// // to the end of the line.
//
// Parse returns the syntax tree of package ast. Errors are *Error and carry
// the byte span of the offending input; Diagnostic renders them for
// display.
package dsl
