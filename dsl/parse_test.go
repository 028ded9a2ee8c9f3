package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/dsl/ast"
)

func sp(start, end int) ast.Span {
	return ast.Span{Start: start, End: end}
}

func parseOne(t *testing.T, input string) ast.Prop {
	t.Helper()
	props, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, props, 1)
	return props[0]
}

func TestParseEmpty(t *testing.T) {
	props, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, props)

	props, err = Parse("  // only a comment\n\n")
	require.NoError(t, err)
	assert.Empty(t, props)
}

func TestParseBareProp(t *testing.T) {
	p := parseOne(t, "foo")
	assert.Equal(t, ast.Prop{Name: ast.Ident{Span: sp(0, 3), Name: "foo"}}, p)
	assert.Equal(t, sp(0, 3), p.Span())
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		input string
		want  *ast.Scalar
	}{
		{"foo: 1234", &ast.Scalar{Kind: ast.Int, Loc: sp(5, 9), Int: 1234}},
		{"foo: 12.34", &ast.Scalar{Kind: ast.Float, Loc: sp(5, 10), Float: 12.34}},
		{`foo: "string"`, &ast.Scalar{Kind: ast.Str, Loc: sp(5, 13), Text: "string"}},
		{`foo: "a" "b" "c"`, &ast.Scalar{Kind: ast.Str, Loc: sp(5, 16), Text: "abc"}},
		{"foo: \"a\" // c\n  \"b\"", &ast.Scalar{Kind: ast.Str, Loc: sp(5, 19), Text: "ab"}},
		{"foo: Bar", &ast.Scalar{Kind: ast.Enum, Loc: sp(5, 8), Text: "Bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := parseOne(t, tt.input)
			assert.Equal(t, "foo", p.Name.Name)
			assert.Equal(t, tt.want, p.Value)
			assert.Equal(t, sp(0, tt.want.Loc.End), p.Span())
		})
	}
}

func TestParseSeq(t *testing.T) {
	p := parseOne(t, "foo: 1, 2, 3")
	assert.Equal(t, &ast.Seq{
		Loc: sp(5, 12),
		Scalars: []ast.Scalar{
			{Kind: ast.Int, Loc: sp(5, 6), Int: 1},
			{Kind: ast.Int, Loc: sp(8, 9), Int: 2},
			{Kind: ast.Int, Loc: sp(11, 12), Int: 3},
		},
	}, p.Value)

	p = parseOne(t, `x-axis: "x", Ticks, Grid`)
	seq, ok := p.Value.(*ast.Seq)
	require.True(t, ok)
	require.Len(t, seq.Scalars, 3)
	assert.Equal(t, ast.Str, seq.Scalars[0].Kind)
	assert.Equal(t, ast.Enum, seq.Scalars[1].Kind)
	assert.Equal(t, "Grid", seq.Scalars[2].Text)

	// Sequences may wrap after a comma.
	p = parseOne(t, "size: 800,\n    600")
	seq, ok = p.Value.(*ast.Seq)
	require.True(t, ok)
	assert.Len(t, seq.Scalars, 2)
}

func TestParseArrays(t *testing.T) {
	tests := []struct {
		input string
		want  *ast.Array
	}{
		{"foo: [1, 2, 3]", &ast.Array{Loc: sp(5, 14), Kind: ast.IntArray, Ints: []int64{1, 2, 3}}},
		{"foo: [1.1, 2.2, 3.3]", &ast.Array{Loc: sp(5, 20), Kind: ast.FloatArray, Floats: []float64{1.1, 2.2, 3.3}}},
		{`foo: ["a", "b", "c"]`, &ast.Array{Loc: sp(5, 20), Kind: ast.StrArray, Strs: []string{"a", "b", "c"}}},
		{"foo: [1, 2.5, 3]", &ast.Array{Loc: sp(5, 16), Kind: ast.FloatArray, Floats: []float64{1, 2.5, 3}}},
		{"foo: []", &ast.Array{Loc: sp(5, 7)}},
		{"foo: [\n  1,\n  2, // two\n]", &ast.Array{Loc: sp(5, 25), Kind: ast.IntArray, Ints: []int64{1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := parseOne(t, tt.input)
			assert.Equal(t, tt.want, p.Value)
			assert.Equal(t, tt.want.Len(), p.Value.(*ast.Array).Len())
		})
	}
}

func TestParseStructs(t *testing.T) {
	p := parseOne(t, "foo: Bar { baz: 1 }")
	assert.Equal(t, &ast.Struct{
		Loc:  sp(5, 19),
		Type: &ast.Ident{Span: sp(5, 8), Name: "Bar"},
		Props: []ast.Prop{{
			Name:  ast.Ident{Span: sp(11, 14), Name: "baz"},
			Value: &ast.Scalar{Kind: ast.Int, Loc: sp(16, 17), Int: 1},
		}},
	}, p.Value)

	p = parseOne(t, "foo: { bar: 2 }")
	st, ok := p.Value.(*ast.Struct)
	require.True(t, ok)
	assert.Nil(t, st.Type)
	assert.Equal(t, sp(5, 15), st.Loc)
	require.Len(t, st.Props, 1)
	assert.Equal(t, sp(7, 10), st.Props[0].Name.Span)

	p = parseOne(t, "foo: { }")
	st = p.Value.(*ast.Struct)
	assert.Equal(t, sp(5, 8), st.Loc)
	assert.Empty(t, st.Props)
}

func TestParseDocument(t *testing.T) {
	const doc = `
// comment
figure: {
    title: "Subplots"
    subplots: 2, 1
    legend
    plot: {
        series: Line {
            x-data: [0, 0.5, 1]
            y-data: "y"
        }
    }
}

bar: 2 // another comment
`
	props, err := Parse(doc)
	require.NoError(t, err)
	require.Len(t, props, 2)
	assert.Equal(t, "figure", props[0].Name.Name)
	assert.Equal(t, "bar", props[1].Name.Name)

	fig := props[0].Value.(*ast.Struct)
	assert.True(t, fig.HasProp("legend"))
	legend, ok := fig.Prop("legend")
	require.True(t, ok)
	assert.Nil(t, legend.Value)

	plot, ok := fig.TakeProp("plot")
	require.True(t, ok)
	assert.False(t, fig.HasProp("plot"))
	assert.Len(t, fig.Props, 3)

	series, ok := plot.Value.(*ast.Struct).Prop("series")
	require.True(t, ok)
	line := series.Value.(*ast.Struct)
	assert.Equal(t, "Line", line.Type.Name)
	xdata, _ := line.Prop("x-data")
	assert.Equal(t, []float64{0, 0.5, 1}, xdata.Value.(*ast.Array).Floats)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		kind     ErrorKind
		span     ast.Span
		expected string
	}{
		{"foo: \"bar\nbaz", UnterminatedString, sp(5, 10), ""},
		{"foo: {\n bar: 1\n", UnexpectedEndOfInput, sp(14, 15), ""},
		{"foo:", UnexpectedEndOfInput, sp(3, 4), ""},
		{"foo: ,", UnexpectedToken, sp(5, 6), "value"},
		{"foo: { 1 }", UnexpectedToken, sp(7, 8), "'}'"},
		{"foo: 1 }", UnexpectedToken, sp(7, 8), "property"},
		{"Foo: 1", UnexpectedToken, sp(0, 3), "property"},
		{"foo: [1 2]", UnexpectedToken, sp(8, 9), "',' or ']'"},
		{`foo: [1, "a"]`, UnexpectedToken, sp(9, 12), "number"},
		{`foo: ["a", 1]`, UnexpectedToken, sp(11, 12), "string"},
		{"foo: [:]", UnexpectedToken, sp(6, 7), "array element"},
		{"foo: 1\n / bar", UnexpectedChar, sp(9, 10), "'/'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.span, e.Span)
			assert.Equal(t, tt.expected, e.Expected)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	_, err := Parse("foo: \"bar\nbaz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
	assert.NotEmpty(t, err.(*Error).Help())

	_, err = Parse("foo: {\n bar: 1\n")
	assert.Contains(t, err.Error(), "unexpected end of input")

	_, err = Parse("foo: { 1 }")
	assert.EqualError(t, err, `dsl: unexpected token "1" (expected '}') at 7..8`)
}
