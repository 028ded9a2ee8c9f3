package dsl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gogpu/ggplot/internal/cursor"
)

// Diagnostic renders err against the input it was produced from:
//
//	2:6: unterminated string
//	2 | foo: "bar
//	  |      ^^^^^
//	help: to include a newline in a string, ...
//
// Errors other than *Error are returned as their message.
func Diagnostic(input string, err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	start := min(max(e.Span.Start, 0), len(input))
	end := min(max(e.Span.End, start), len(input))

	cur := cursor.New(input)
	for cur.Pos().Index < start {
		cur.Next()
	}
	pos := cur.Pos()

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := len(input)
	if i := strings.IndexByte(input[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	src := strings.TrimSuffix(input[lineStart:lineEnd], "\r")
	end = min(end, lineStart+len(src))

	var pad strings.Builder
	for _, r := range input[lineStart:start] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	carets := max(runewidth.StringWidth(input[start:max(start, end)]), 1)

	gutter := strconv.Itoa(pos.Line)
	blank := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d: %s\n", pos.Line, pos.Column, e.Message())
	fmt.Fprintf(&b, "%s | %s\n", gutter, src)
	fmt.Fprintf(&b, "%s | %s%s", blank, pad.String(), strings.Repeat("^", carets))
	if help := e.Help(); help != "" {
		fmt.Fprintf(&b, "\nhelp: %s", help)
	}
	return b.String()
}
