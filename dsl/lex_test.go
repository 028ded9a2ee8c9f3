package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/dsl/ast"
)

func lexAll(input string) ([]token, error) {
	lx := newLexer(input)
	var toks []token
	for {
		tok, ok, err := lx.next()
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func kinds(t *testing.T, input string) []tokenKind {
	t.Helper()
	toks, err := lexAll(input)
	require.NoError(t, err)
	ks := make([]tokenKind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.kind
	}
	return ks
}

func TestLexIdents(t *testing.T) {
	toks, err := lexAll("foo-bar baz42 Foo Bar42")
	require.NoError(t, err)
	require.Len(t, toks, 7)
	assert.Equal(t, token{kind: tokKebab, span: ast.Span{Start: 0, End: 7}, text: "foo-bar"}, toks[0])
	assert.Equal(t, "baz42", toks[2].text)
	assert.Equal(t, tokPascal, toks[4].kind)
	assert.Equal(t, "Foo", toks[4].text)
	assert.Equal(t, "Bar42", toks[6].text)
}

func TestLexNumbers(t *testing.T) {
	toks, err := lexAll("123 -42 3.14 +2.7e-3 1E5")
	require.NoError(t, err)
	require.Len(t, toks, 9)
	assert.Equal(t, tokInt, toks[0].kind)
	assert.Equal(t, int64(123), toks[0].int)
	assert.Equal(t, int64(-42), toks[2].int)
	assert.Equal(t, tokFloat, toks[4].kind)
	assert.Equal(t, 3.14, toks[4].float)
	assert.Equal(t, 2.7e-3, toks[6].float)
	assert.Equal(t, 1e5, toks[8].float)
}

func TestLexStrings(t *testing.T) {
	toks, err := lexAll(`"hello" "world\n" "foo\\bar" "say \"hi\""`)
	require.NoError(t, err)
	var strs []string
	for _, tok := range toks {
		if tok.kind == tokStr {
			strs = append(strs, tok.text)
		}
	}
	assert.Equal(t, []string{"hello", "world\n", `foo\bar`, `say "hi"`}, strs)
	assert.Equal(t, ast.Span{Start: 0, End: 7}, toks[0].span)
}

func TestLexStructural(t *testing.T) {
	assert.Equal(t, []tokenKind{
		tokOpenBrace, tokSpace, tokCloseBrace, tokSpace,
		tokOpenBracket, tokSpace, tokCloseBracket, tokSpace,
		tokOpenPar, tokClosePar, tokSpace,
		tokColon, tokSpace, tokComma,
	}, kinds(t, "{ } [ ] () : ,"))
}

func TestLexCommentsAndEOL(t *testing.T) {
	assert.Equal(t, []tokenKind{tokComment, tokKebab, tokEOL, tokComment, tokKebab},
		kinds(t, "// comment\nfoo\n//x\r\nbar"))
	assert.Equal(t, []tokenKind{tokComment}, kinds(t, "// bar"))
	assert.Equal(t, []tokenKind{tokKebab, tokSpace, tokKebab}, kinds(t, "foo \t bar"))
	assert.Equal(t, []tokenKind{tokKebab, tokEOL, tokKebab}, kinds(t, "foo\r\nbar"))
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
		span  ast.Span
	}{
		{"foo: 1\n / bar", UnexpectedChar, ast.Span{Start: 9, End: 10}},
		{"foo\rbar", UnexpectedChar, ast.Span{Start: 4, End: 5}},
		{"foo: @", UnexpectedChar, ast.Span{Start: 5, End: 6}},
		{"foo /", UnexpectedEndOfFile, ast.Span{Start: 5, End: 5}},
		{`"abc`, UnexpectedEndOfFile, ast.Span{Start: 4, End: 4}},
		{"\"abc\ndef\"", UnterminatedString, ast.Span{Start: 0, End: 5}},
		{`"a\qb"`, InvalidEscSequence, ast.Span{Start: 2, End: 4}},
		{"1.2.3", InvalidNumber, ast.Span{Start: 0, End: 5}},
		{"x: -", InvalidNumber, ast.Span{Start: 3, End: 4}},
		{"foo--bar", InvalidKebabIdent, ast.Span{Start: 0, End: 8}},
		{"foo_bar", InvalidKebabIdent, ast.Span{Start: 0, End: 7}},
		{"fooBar", InvalidKebabIdent, ast.Span{Start: 0, End: 6}},
		{"Foo-Bar", InvalidPascalIdent, ast.Span{Start: 0, End: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := lexAll(tt.input)
			require.Error(t, err)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.span, e.Span)
		})
	}
}

func TestLexErrorMessages(t *testing.T) {
	_, err := lexAll("foo: 1\n / bar")
	assert.EqualError(t, err, "dsl: unexpected character: expected '/', found ' ' at 9..10")

	_, err = lexAll(`"a\qb"`)
	assert.EqualError(t, err, `dsl: invalid escape sequence: \q at 2..4`)

	_, err = lexAll("foo_bar")
	assert.EqualError(t, err, "dsl: invalid kebab-case identifier: foo_bar at 0..7")
}
