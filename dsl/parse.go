package dsl

import (
	"strconv"

	"github.com/gogpu/ggplot/dsl/ast"
)

// Parse parses a figure description into its top-level properties.
// Errors are *Error.
func Parse(input string) ([]ast.Prop, error) {
	p := &parser{input: input, lx: newLexer(input)}
	props, err := p.propList()
	if err != nil {
		return nil, err
	}
	if err := p.skipComEOL(); err != nil {
		return nil, err
	}
	if tok, ok, err := p.peek(); err != nil {
		return nil, err
	} else if ok {
		return nil, p.unexpected(tok, "property")
	}
	return props, nil
}

// parser is a recursive descent parser with one token of lookahead.
type parser struct {
	input string
	lx    *lexer

	tok    token
	tokOK  bool
	tokErr error
	peeked bool

	// last is the span of the last consumed token.
	last ast.Span
}

func (p *parser) peek() (token, bool, error) {
	if !p.peeked {
		p.tok, p.tokOK, p.tokErr = p.lx.next()
		p.peeked = true
	}
	return p.tok, p.tokOK, p.tokErr
}

// bump consumes the peeked token.
func (p *parser) bump() {
	p.peeked = false
	p.last = p.tok.span
}

// next consumes a token, failing at the end of the input.
func (p *parser) next() (token, error) {
	tok, ok, err := p.peek()
	if err != nil {
		return token{}, err
	}
	if !ok {
		return token{}, &Error{Kind: UnexpectedEndOfInput, Span: p.last}
	}
	p.bump()
	return tok, nil
}

// peekKind reports whether the next token is of kind k.
func (p *parser) peekKind(k tokenKind) (bool, error) {
	tok, ok, err := p.peek()
	return ok && tok.kind == k, err
}

func (p *parser) skipSpaces() error {
	for {
		sp, err := p.peekKind(tokSpace)
		if err != nil || !sp {
			return err
		}
		p.bump()
	}
}

// skipComEOL skips spaces, comments and line ends.
func (p *parser) skipComEOL() error {
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return err
		}
		if !ok || (tok.kind != tokSpace && tok.kind != tokComment && tok.kind != tokEOL) {
			return nil
		}
		p.bump()
	}
}

func (p *parser) unexpected(tok token, expected string) *Error {
	found := "end of line"
	if tok.kind != tokEOL {
		found = strconv.Quote(p.input[tok.span.Start:tok.span.End])
	}
	return &Error{Kind: UnexpectedToken, Span: tok.span, Found: found, Expected: expected}
}

// propList reads properties until a token that cannot start one.
func (p *parser) propList() ([]ast.Prop, error) {
	props := []ast.Prop{}
	for {
		if err := p.skipComEOL(); err != nil {
			return nil, err
		}
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok || tok.kind != tokKebab {
			return props, nil
		}
		p.bump()
		prop := ast.Prop{Name: ast.Ident{Span: tok.span, Name: tok.text}}

		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		colon, err := p.peekKind(tokColon)
		if err != nil {
			return nil, err
		}
		if colon {
			p.bump()
			if err := p.skipSpaces(); err != nil {
				return nil, err
			}
			if prop.Value, err = p.value(); err != nil {
				return nil, err
			}
		}
		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
}

func (p *parser) value() (ast.Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokStr, tokInt, tokFloat:
		s, err := p.scalar(tok)
		if err != nil {
			return nil, err
		}
		return p.scalarOrSeq(s)
	case tokPascal:
		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		brace, err := p.peekKind(tokOpenBrace)
		if err != nil {
			return nil, err
		}
		if brace {
			p.bump()
			return p.structBody(tok.span.Start, &ast.Ident{Span: tok.span, Name: tok.text})
		}
		return p.scalarOrSeq(ast.Scalar{Kind: ast.Enum, Loc: tok.span, Text: tok.text})
	case tokOpenBrace:
		return p.structBody(tok.span.Start, nil)
	case tokOpenBracket:
		return p.array(tok.span.Start)
	}
	return nil, p.unexpected(tok, "value")
}

// scalar converts a consumed scalar token. Strings absorb the literals
// following them.
func (p *parser) scalar(tok token) (ast.Scalar, error) {
	switch tok.kind {
	case tokInt:
		return ast.Scalar{Kind: ast.Int, Loc: tok.span, Int: tok.int}, nil
	case tokFloat:
		return ast.Scalar{Kind: ast.Float, Loc: tok.span, Float: tok.float}, nil
	case tokPascal:
		return ast.Scalar{Kind: ast.Enum, Loc: tok.span, Text: tok.text}, nil
	}
	span, s, err := p.concat(tok)
	return ast.Scalar{Kind: ast.Str, Loc: span, Text: s}, err
}

// concat joins the string literals following tok, across spaces, line
// ends and comments.
func (p *parser) concat(tok token) (ast.Span, string, error) {
	span, s := tok.span, tok.text
	for {
		if err := p.skipComEOL(); err != nil {
			return span, s, err
		}
		next, ok, err := p.peek()
		if err != nil {
			return span, s, err
		}
		if !ok || next.kind != tokStr {
			return span, s, nil
		}
		p.bump()
		span.End = next.span.End
		s += next.text
	}
}

func isScalar(k tokenKind) bool {
	return k == tokStr || k == tokInt || k == tokFloat || k == tokPascal
}

// scalarOrSeq returns first, or the sequence it starts when a comma
// follows. A trailing comma is allowed.
func (p *parser) scalarOrSeq(first ast.Scalar) (ast.Value, error) {
	if err := p.skipSpaces(); err != nil {
		return nil, err
	}
	comma, err := p.peekKind(tokComma)
	if err != nil {
		return nil, err
	}
	if !comma {
		return &first, nil
	}
	p.bump()

	seq := &ast.Seq{Loc: first.Loc, Scalars: []ast.Scalar{first}}
	seq.Loc.End = p.last.End
	for {
		if err := p.skipComEOL(); err != nil {
			return nil, err
		}
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok || !isScalar(tok.kind) {
			return seq, nil
		}
		p.bump()
		s, err := p.scalar(tok)
		if err != nil {
			return nil, err
		}
		seq.Scalars = append(seq.Scalars, s)
		seq.Loc.End = s.Loc.End

		if err := p.skipSpaces(); err != nil {
			return nil, err
		}
		if comma, err = p.peekKind(tokComma); err != nil {
			return nil, err
		}
		if !comma {
			return seq, nil
		}
		p.bump()
		seq.Loc.End = p.last.End
	}
}

// structBody reads the properties and the closing brace of a struct
// opened at start.
func (p *parser) structBody(start int, typ *ast.Ident) (ast.Value, error) {
	props, err := p.propList()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokCloseBrace {
		return nil, p.unexpected(tok, "'}'")
	}
	return &ast.Struct{Loc: ast.Span{Start: start, End: tok.span.End}, Type: typ, Props: props}, nil
}

// array reads the elements and the closing bracket of an array opened at
// start. Elements share one type; integers following or preceding floats
// are promoted.
func (p *parser) array(start int) (ast.Value, error) {
	arr := &ast.Array{}
	for n := 0; ; n++ {
		if err := p.skipComEOL(); err != nil {
			return nil, err
		}
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokCloseBracket {
			arr.Loc = ast.Span{Start: start, End: tok.span.End}
			return arr, nil
		}
		if n > 0 {
			if tok.kind != tokComma {
				return nil, p.unexpected(tok, "',' or ']'")
			}
			if err := p.skipComEOL(); err != nil {
				return nil, err
			}
			if tok, err = p.next(); err != nil {
				return nil, err
			}
			if tok.kind == tokCloseBracket {
				arr.Loc = ast.Span{Start: start, End: tok.span.End}
				return arr, nil
			}
		}
		if err := p.element(arr, tok); err != nil {
			return nil, err
		}
	}
}

func (p *parser) element(arr *ast.Array, tok token) error {
	switch {
	case tok.kind == tokStr && (arr.Kind == ast.EmptyArray || arr.Kind == ast.StrArray):
		_, s, err := p.concat(tok)
		if err != nil {
			return err
		}
		arr.Kind = ast.StrArray
		arr.Strs = append(arr.Strs, s)
	case tok.kind == tokInt && (arr.Kind == ast.EmptyArray || arr.Kind == ast.IntArray):
		arr.Kind = ast.IntArray
		arr.Ints = append(arr.Ints, tok.int)
	case tok.kind == tokInt && arr.Kind == ast.FloatArray:
		arr.Floats = append(arr.Floats, float64(tok.int))
	case tok.kind == tokFloat && arr.Kind != ast.StrArray:
		if arr.Kind == ast.IntArray {
			for _, v := range arr.Ints {
				arr.Floats = append(arr.Floats, float64(v))
			}
			arr.Ints = nil
		}
		arr.Kind = ast.FloatArray
		arr.Floats = append(arr.Floats, tok.float)
	default:
		expected := "array element"
		switch arr.Kind {
		case ast.StrArray:
			expected = "string"
		case ast.IntArray, ast.FloatArray:
			expected = "number"
		}
		return p.unexpected(tok, expected)
	}
	return nil
}
