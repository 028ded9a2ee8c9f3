package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    Weight
		wantErr bool
	}{
		{"bold", WeightBold, false},
		{"Semi-Bold", WeightSemiBold, false},
		{"extrabold", WeightExtraBold, false},
		{"350", 350, false},
		{"1000", 1000, false},
		{"0", 0, true},
		{"1001", 0, true},
		{"heavyish", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeight(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWidth(t *testing.T) {
	w, err := ParseWidth("condensed")
	require.NoError(t, err)
	assert.Equal(t, WidthCondensed, w)

	w, err = ParseWidth("112.5%")
	require.NoError(t, err)
	assert.Equal(t, WidthSemiExpanded, w)

	w, err = ParseWidth("80%")
	require.NoError(t, err)
	assert.Equal(t, WidthCondensed, w)

	_, err = ParseWidth("narrow")
	assert.Error(t, err)

	assert.Equal(t, 200.0, WidthUltraExpanded.Percent())
	assert.Equal(t, "semi-condensed", WidthSemiCondensed.String())
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("Italic")
	require.NoError(t, err)
	assert.Equal(t, StyleItalic, s)
	_, err = ParseStyle("slanted")
	assert.Error(t, err)
}

func TestParseFamilies(t *testing.T) {
	valid := []struct {
		in   string
		want []Family
	}{
		{"sans-serif", []Family{GenericFamily(SansSerif)}},
		{"Noto Sans Math", []Family{Named("Noto Sans Math")}},
		{"'Noto Sans', 'Open Sans', sans-serif", []Family{Named("Noto Sans"), Named("Open Sans"), GenericFamily(SansSerif)}},
		{"Arial, sans-serif", []Family{Named("Arial"), GenericFamily(SansSerif)}},
		{`"Times New Roman", serif`, []Family{Named("Times New Roman"), GenericFamily(Serif)}},
	}
	for _, tt := range valid {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFamilies(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := ParseFamilies(FormatFamilies(got))
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}

	invalid := []string{
		"'Noto Sans', Open Sans, sans-serif",
		"Arial, sans-serif, ",
		"'', sans-serif",
		"",
	}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseFamilies(in)
			var famErr *InvalidFamilyError
			assert.ErrorAs(t, err, &famErr)
		})
	}
}

func TestFontDefaults(t *testing.T) {
	var zero Font
	assert.Equal(t, []Family{GenericFamily(SansSerif)}, zero.Families())
	assert.Equal(t, WeightNormal, zero.Weight())
	assert.Equal(t, WidthNormal, zero.Width())
	assert.True(t, zero.Equal(Default()))

	bold := Default().WithWeight(WeightBold)
	assert.False(t, bold.Equal(Default()))
	assert.Equal(t, WeightNormal, Default().Weight())

	f := MustParse("'Noto Sans', serif").WithStyle(StyleItalic)
	assert.Equal(t, "'Noto Sans', serif 400 normal italic", f.String())
}
