package rich

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/text/font"
)

func lexAll(t *testing.T, markup string) []token {
	t.Helper()
	lx := newLexer(markup)
	var toks []token
	for {
		tok, ok, err := lx.next()
		require.NoError(t, err)
		if !ok {
			return toks
		}
		tok.span = Span{}
		toks = append(toks, tok)
	}
}

func TestLex(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   []token
	}{
		{
			name:   "simple tag",
			markup: "Some [bold]bold[/bold] text",
			want: []token{
				{kind: tokText, text: "Some "},
				{kind: tokOpen, open: []tagProp{{name: "bold"}}},
				{kind: tokText, text: "bold"},
				{kind: tokClose, close: []string{"bold"}},
				{kind: tokText, text: " text"},
			},
		},
		{
			name:   "escape",
			markup: `Some \[bold]bold\[/bold] \\text`,
			want:   []token{{kind: tokText, text: `Some [bold]bold[/bold] \text`}},
		},
		{
			name:   "prop tag",
			markup: "Some [fs=12]small[/fs] text",
			want: []token{
				{kind: tokText, text: "Some "},
				{kind: tokOpen, open: []tagProp{{name: "fs", value: "12"}}},
				{kind: tokText, text: "small"},
				{kind: tokClose, close: []string{"fs"}},
				{kind: tokText, text: " text"},
			},
		},
		{
			name:   "multiple props",
			markup: "Some [fs=12;ff=Arial]small[/fs;ff] text",
			want: []token{
				{kind: tokText, text: "Some "},
				{kind: tokOpen, open: []tagProp{{name: "fs", value: "12"}, {name: "ff", value: "Arial"}}},
				{kind: tokText, text: "small"},
				{kind: tokClose, close: []string{"fs", "ff"}},
				{kind: tokText, text: " text"},
			},
		},
		{
			name:   "escape inside tag",
			markup: `Freq. [italic]\[Hz][/italic]`,
			want: []token{
				{kind: tokText, text: "Freq. "},
				{kind: tokOpen, open: []tagProp{{name: "italic"}}},
				{kind: tokText, text: "[Hz]"},
				{kind: tokClose, close: []string{"italic"}},
			},
		},
		{
			name:   "spaces are trimmed",
			markup: "[ fill = red ; bold ]",
			want:   []token{{kind: tokOpen, open: []tagProp{{name: "fill", value: "red"}, {name: "bold"}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexAll(t, tt.markup))
		})
	}
}

func TestLexSpans(t *testing.T) {
	lx := newLexer("ab[bold]c")
	var spans []Span
	for {
		tok, ok, err := lx.next()
		require.NoError(t, err)
		if !ok {
			break
		}
		spans = append(spans, tok.span)
	}
	assert.Equal(t, []Span{{0, 2}, {2, 8}, {8, 9}}, spans)
}

func TestParseBold(t *testing.T) {
	p, err := Parse("[bold]text[/bold]")
	require.NoError(t, err)
	assert.Equal(t, "text", p.Text)
	require.Len(t, p.Spans, 1)
	assert.Equal(t, StyleSpan{Start: 0, End: 4, Props: OptProps{Weight: Ptr(font.WeightBold)}}, p.Spans[0])
}

func TestParseEscape(t *testing.T) {
	p, err := Parse(`\[bold]text\[/bold]`)
	require.NoError(t, err)
	assert.Equal(t, "[bold]text[/bold]", p.Text)
	assert.Empty(t, p.Spans)
}

func TestParseProps(t *testing.T) {
	red := color.Direct(color.FromRGB(255, 0, 0))
	tests := []struct {
		markup string
		want   OptProps
	}{
		{"[sz=12]x[/sz]", OptProps{Size: Ptr(12.0)}},
		{"[font-size=9.5]x[/font-size]", OptProps{Size: Ptr(9.5)}},
		{"[ff='Noto Sans', serif]x[/ff]", OptProps{Families: []font.Family{font.Named("Noto Sans"), font.GenericFamily(font.Serif)}}},
		{"[fw=600]x[/fw]", OptProps{Weight: Ptr(font.Weight(600))}},
		{"[style=oblique]x[/style]", OptProps{Style: Ptr(font.StyleOblique)}},
		{"[stretch=condensed]x[/stretch]", OptProps{Width: Ptr(font.WidthCondensed)}},
		{"[color=red]x[/color]", OptProps{Fill: &red}},
		{"[outline=#f00]x[/outline]", OptProps{Stroke: &red}},
		{"[underline=false]x[/underline]", OptProps{Underline: Ptr(false)}},
		{"[red]x[/red]", OptProps{Fill: &red}},
		{"[italic;strikeout]x[/italic;strikeout]", OptProps{Style: Ptr(font.StyleItalic), Strikeout: Ptr(true)}},
		{"[normal]x[/normal]", OptProps{Weight: Ptr(font.WeightNormal), Width: Ptr(font.WidthNormal), Style: Ptr(font.StyleNormal)}},
	}
	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			p, err := Parse(tt.markup)
			require.NoError(t, err)
			assert.Equal(t, "x", p.Text)
			require.Len(t, p.Spans, 1)
			assert.Equal(t, tt.want, p.Spans[0].Props)
		})
	}
}

func TestParseNesting(t *testing.T) {
	p, err := Parse("a[bold;fill=red]b[italic]c[/bold;color]d[/italic]e")
	require.NoError(t, err)
	assert.Equal(t, "abcde", p.Text)
	require.Len(t, p.Spans, 2)

	// The first closing tag names aliases of the outer tag and skips the
	// inner one.
	assert.Equal(t, 1, p.Spans[0].Start)
	assert.Equal(t, 3, p.Spans[0].End)
	assert.NotNil(t, p.Spans[0].Props.Weight)
	assert.Equal(t, 2, p.Spans[1].Start)
	assert.Equal(t, 4, p.Spans[1].End)
	assert.NotNil(t, p.Spans[1].Props.Style)
}

func TestParseSubsetClose(t *testing.T) {
	p, err := Parse("[bold;italic]x[/italic]y")
	require.NoError(t, err)
	require.Len(t, p.Spans, 1)
	assert.Equal(t, StyleSpan{Start: 0, End: 1, Props: OptProps{Weight: Ptr(font.WeightBold), Style: Ptr(font.StyleItalic)}}, p.Spans[0])

	p, err = Parse("[bold]x[/]")
	require.NoError(t, err)
	require.Len(t, p.Spans, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		markup string
		kind   ErrorKind
		span   Span
	}{
		{"[bold]text", UnmatchedTag, Span{0, 6}},
		{"a[bold]b[italic]c[/italic]", UnmatchedTag, Span{1, 7}},
		{"text[/bold]", UnmatchedTag, Span{4, 11}},
		{"[bold]x[/italic]", UnmatchedTag, Span{7, 16}},
		{"x[bold", UnterminatedTag, Span{1, 6}},
		{"x[/bold", UnterminatedTag, Span{1, 7}},
		{`a\nb`, InvalidEscSequence, Span{1, 3}},
		{`ab\`, UnexpectedEndOfStr, Span{2, 2}},
		{"ab[", UnterminatedTag, Span{2, 3}},
		{"ab[/", UnterminatedTag, Span{2, 4}},
		{"[nosuchclass]x[/nosuchclass]", UnknownClass, Span{0, 13}},
		{"[nosuch=1]x[/nosuch]", UnknownClass, Span{0, 10}},
		{"[sz=big]x[/sz]", BadPropValue, Span{0, 8}},
		{"[sz=-1]x[/sz]", BadPropValue, Span{0, 7}},
		{"[fw=heavyish]x[/fw]", BadPropValue, Span{0, 13}},
		{"[fill=notacolor]x[/fill]", BadPropValue, Span{0, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			_, err := Parse(tt.markup)
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.span, pe.Span)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestParseBadPropValueMessage(t *testing.T) {
	_, err := Parse("[ff=Arial,]x[/ff]")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "ff", pe.Prop)
	assert.Equal(t, "Arial,", pe.Value)
	assert.Equal(t, "rich: bad value 'Arial,' for property 'ff' at 0..11", pe.Error())
}

func TestParseUserClasses(t *testing.T) {
	classes := Classes{
		"title": {Size: Ptr(18.0), Weight: Ptr(font.WeightBold)},
		"bold":  {Weight: Ptr(font.WeightBlack)},
	}
	p, err := ParseWithClasses("[title]T[/title] [bold]b[/bold]", classes)
	require.NoError(t, err)
	require.Len(t, p.Spans, 2)
	assert.Equal(t, classes["title"], p.Spans[0].Props)
	assert.Equal(t, font.WeightBlack, *p.Spans[1].Props.Weight, "user classes win over built-ins")
}

func TestParsedBuilder(t *testing.T) {
	p, err := Parse("Some [underline]RICH[/underline]")
	require.NoError(t, err)
	b := p.Builder(NewProps(12))
	require.Len(t, b.spans, 1)
	assert.Equal(t, 5, b.spans[0].start)
	assert.Equal(t, 9, b.spans[0].end)
}
