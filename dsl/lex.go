package dsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/ggplot/dsl/ast"
	"github.com/gogpu/ggplot/internal/cursor"
)

type tokenKind uint8

const (
	tokKebab tokenKind = iota
	tokPascal
	tokOpenPar
	tokClosePar
	tokOpenBracket
	tokCloseBracket
	tokOpenBrace
	tokCloseBrace
	tokColon
	tokComma
	tokStr
	tokInt
	tokFloat
	tokSpace
	tokComment
	tokEOL
)

var punct = map[rune]tokenKind{
	'(': tokOpenPar,
	')': tokClosePar,
	'[': tokOpenBracket,
	']': tokCloseBracket,
	'{': tokOpenBrace,
	'}': tokCloseBrace,
	':': tokColon,
	',': tokComma,
}

// token is a lexeme. text holds identifiers and decoded strings.
type token struct {
	kind  tokenKind
	span  ast.Span
	text  string
	int   int64
	float float64
}

type lexer struct {
	cur cursor.Cursor
}

func newLexer(input string) *lexer {
	return &lexer{cur: cursor.New(input)}
}

func (l *lexer) pos() int {
	return l.cur.Pos().Index
}

// next returns the next token. ok is false at the end of the input.
func (l *lexer) next() (tok token, ok bool, err error) {
	start := l.pos()
	r, more := l.cur.Next()
	if !more {
		return token{}, false, nil
	}
	if k, isPunct := punct[r]; isPunct {
		tok.kind = k
	} else {
		switch {
		case r == '\n':
			tok.kind = tokEOL
		case r == '\r':
			tok.kind = tokEOL
			err = l.expect('\n')
		case r == '"':
			tok.kind = tokStr
			tok.text, err = l.str(start)
		case r == '-' || r == '+' || isDigit(r):
			tok, err = l.number(start)
		case isLower(r):
			tok.kind = tokKebab
			tok.text, err = l.kebab(start)
		case isUpper(r):
			tok.kind = tokPascal
			tok.text, err = l.pascal(start)
		case r == '/':
			tok.kind = tokComment
			err = l.comment()
		case isSpace(r):
			tok.kind = tokSpace
			for {
				if r, ok := l.cur.Peek(); !ok || !isSpace(r) {
					break
				}
				l.cur.Next()
			}
		default:
			err = &Error{
				Kind:  UnexpectedChar,
				Span:  ast.Span{Start: start, End: l.pos()},
				Found: strconv.QuoteRune(r),
			}
		}
	}
	if err != nil {
		return token{}, false, err
	}
	tok.span = ast.Span{Start: start, End: l.pos()}
	return tok, true, nil
}

// expect consumes want or fails.
func (l *lexer) expect(want rune) error {
	pos := l.pos()
	r, ok := l.cur.Next()
	if !ok {
		return &Error{Kind: UnexpectedEndOfFile, Span: ast.Span{Start: pos, End: pos}}
	}
	if r != want {
		return &Error{
			Kind:     UnexpectedChar,
			Span:     ast.Span{Start: pos, End: l.pos()},
			Found:    strconv.QuoteRune(r),
			Expected: strconv.QuoteRune(want),
		}
	}
	return nil
}

// comment reads a line comment whose first slash is consumed, up to and
// including the end of line.
func (l *lexer) comment() error {
	if err := l.expect('/'); err != nil {
		return err
	}
	for {
		r, ok := l.cur.Next()
		switch {
		case !ok || r == '\n':
			return nil
		case r == '\r':
			return l.expect('\n')
		}
	}
}

func (l *lexer) str(start int) (string, error) {
	var buf strings.Builder
	for {
		pos := l.pos()
		r, ok := l.cur.Next()
		switch {
		case !ok:
			return "", &Error{Kind: UnexpectedEndOfFile, Span: ast.Span{Start: pos, End: pos}}
		case r == '"':
			return buf.String(), nil
		case r == '\n' || r == '\r':
			if r == '\r' {
				if err := l.expect('\n'); err != nil {
					return "", err
				}
			}
			return "", &Error{Kind: UnterminatedString, Span: ast.Span{Start: start, End: l.pos()}}
		case r == '\\':
			c, err := l.escape(pos)
			if err != nil {
				return "", err
			}
			buf.WriteRune(c)
		default:
			buf.WriteRune(r)
		}
	}
}

func (l *lexer) escape(start int) (rune, error) {
	r, ok := l.cur.Next()
	if !ok {
		return 0, &Error{Kind: UnexpectedEndOfFile, Span: ast.Span{Start: start, End: start}}
	}
	switch r {
	case '\\', '"':
		return r, nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	}
	return 0, &Error{Kind: InvalidEscSequence, Span: ast.Span{Start: start, End: l.pos()}, Found: string(r)}
}

// number reads an integer or a float. An exponent sign is only accepted
// right after the exponent mark.
func (l *lexer) number(start int) (token, error) {
	wasExp := false
	for {
		r, ok := l.cur.Peek()
		switch {
		case ok && (isDigit(r) || r == '.'):
			wasExp = false
		case ok && (r == 'e' || r == 'E'):
			wasExp = true
		case ok && (r == '+' || r == '-') && wasExp:
			wasExp = false
		default:
			s := l.cur.Input()[start:l.pos()]
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return token{kind: tokInt, int: n}, nil
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return token{kind: tokFloat, float: f}, nil
			}
			return token{}, &Error{Kind: InvalidNumber, Span: ast.Span{Start: start, End: l.pos()}, Text: s}
		}
		l.cur.Next()
	}
}

// kebab reads a lower-case identifier whose words are joined by single
// hyphens.
func (l *lexer) kebab(start int) (string, error) {
	invalid, lastHyphen := false, false
	for {
		r, ok := l.cur.Peek()
		if !ok || !(isLower(r) || isUpper(r) || isDigit(r) || r == '-' || r == '_') {
			break
		}
		l.cur.Next()
		if isUpper(r) || r == '_' || (r == '-' && lastHyphen) {
			invalid = true
		}
		lastHyphen = r == '-'
	}
	s := l.cur.Input()[start:l.pos()]
	if invalid {
		return "", &Error{Kind: InvalidKebabIdent, Span: ast.Span{Start: start, End: l.pos()}, Text: s}
	}
	return s, nil
}

// pascal reads an identifier of letters and digits starting upper case.
func (l *lexer) pascal(start int) (string, error) {
	invalid := false
	for {
		r, ok := l.cur.Peek()
		if !ok || !(isLower(r) || isUpper(r) || isDigit(r) || r == '-' || r == '_') {
			break
		}
		l.cur.Next()
		if r == '-' || r == '_' {
			invalid = true
		}
	}
	s := l.cur.Input()[start:l.pos()]
	if invalid {
		return "", &Error{Kind: InvalidPascalIdent, Span: ast.Span{Start: start, End: l.pos()}, Text: s}
	}
	return s, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\f' }
