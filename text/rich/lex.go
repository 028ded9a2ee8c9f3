package rich

import (
	"strings"

	"github.com/gogpu/ggplot/internal/cursor"
)

type tokenKind uint8

const (
	tokText tokenKind = iota
	tokOpen
	tokClose
)

// tagProp is an item of an opening tag: a bare word, or a key=value pair
// when value is not empty.
type tagProp struct {
	name  string
	value string
}

type token struct {
	kind tokenKind
	span Span

	text  string    // tokText
	open  []tagProp // tokOpen
	close []string  // tokClose
}

// lexer splits markup into text runs and tags.
type lexer struct {
	cur cursor.Cursor
}

func newLexer(markup string) *lexer {
	return &lexer{cur: cursor.New(markup)}
}

// next returns the next token. ok is false at the end of the input.
func (l *lexer) next() (tok token, ok bool, err error) {
	start := l.cur.Pos().Index
	r, more := l.cur.Peek()
	if !more {
		return token{}, false, nil
	}
	if r == '[' {
		l.cur.Next()
		tok, err = l.tag(start)
	} else {
		tok, err = l.literal()
	}
	if err != nil {
		return token{}, false, err
	}
	tok.span = Span{Start: start, End: l.cur.Pos().Index}
	return tok, true, nil
}

func (l *lexer) literal() (token, error) {
	var buf strings.Builder
	for {
		pos := l.cur.Pos().Index
		r, ok := l.cur.Peek()
		if !ok || r == '[' {
			break
		}
		l.cur.Next()
		if r != '\\' {
			buf.WriteRune(r)
			continue
		}
		esc, ok := l.cur.Next()
		if !ok {
			return token{}, &ParseError{Kind: UnexpectedEndOfStr, Span: Span{pos, pos}}
		}
		if esc != '[' && esc != '\\' {
			return token{}, &ParseError{Kind: InvalidEscSequence, Span: Span{pos, l.cur.Pos().Index}, Char: esc}
		}
		buf.WriteRune(esc)
	}
	return token{kind: tokText, text: buf.String()}, nil
}

// tag reads a tag whose opening bracket at start is consumed.
func (l *lexer) tag(start int) (token, error) {
	closing := l.cur.NextIf('/')

	var items []string
	for {
		r, ok := l.cur.Peek()
		switch {
		case !ok:
			return token{}, &ParseError{Kind: UnterminatedTag, Span: Span{start, l.cur.Pos().Index}}
		case r == ']':
			l.cur.Next()
			return makeTag(closing, items), nil
		case r == ';':
			l.cur.Next()
		default:
			items = append(items, l.item())
		}
	}
}

// item reads up to the next ; or ] without consuming it.
func (l *lexer) item() string {
	start := l.cur.Pos().Index
	for {
		r, ok := l.cur.Peek()
		if !ok || r == ']' || r == ';' {
			return l.cur.Input()[start:l.cur.Pos().Index]
		}
		l.cur.Next()
	}
}

func makeTag(closing bool, items []string) token {
	if closing {
		keys := make([]string, len(items))
		for i, it := range items {
			keys[i] = strings.TrimSpace(it)
		}
		return token{kind: tokClose, close: keys}
	}
	props := make([]tagProp, len(items))
	for i, it := range items {
		name, value, _ := strings.Cut(it, "=")
		props[i] = tagProp{name: strings.TrimSpace(name), value: strings.TrimSpace(value)}
	}
	return token{kind: tokOpen, open: props}
}
