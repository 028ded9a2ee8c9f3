package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func face(id ID, w Weight, width Width, s Style) FaceInfo {
	return FaceInfo{ID: id, Families: []string{"Test"}, Weight: w, Width: width, Style: s}
}

func TestBestMatchWeight(t *testing.T) {
	set := []FaceInfo{
		face(0, 300, WidthNormal, StyleNormal),
		face(1, 400, WidthNormal, StyleNormal),
		face(2, 500, WidthNormal, StyleNormal),
		face(3, 700, WidthNormal, StyleNormal),
	}
	tests := []struct {
		name   string
		set    []FaceInfo
		weight Weight
		want   int
	}{
		{"exact", set, 700, 3},
		{"450 prefers 400", set, 450, 1},
		{"420 prefers 500", []FaceInfo{set[0], set[2], set[3]}, 420, 1},
		{"480 without 400 goes lighter", []FaceInfo{set[0], set[2], set[3]}, 480, 0},
		{"350 goes lighter first", set, 350, 0},
		{"600 goes heavier first", set, 600, 3},
		{"900 falls back to heaviest", set, 900, 3},
		{"100 falls back to lightest", set, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestMatch(tt.set, tt.weight, WidthNormal, StyleNormal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestMatchStyle(t *testing.T) {
	set := []FaceInfo{
		face(0, 400, WidthNormal, StyleNormal),
		face(1, 400, WidthNormal, StyleOblique),
	}
	assert.Equal(t, 1, BestMatch(set, 400, WidthNormal, StyleItalic))
	assert.Equal(t, 0, BestMatch(set, 400, WidthNormal, StyleNormal))

	italicOnly := []FaceInfo{face(0, 400, WidthNormal, StyleItalic)}
	assert.Equal(t, 0, BestMatch(italicOnly, 400, WidthNormal, StyleNormal))
}

func TestBestMatchStretchBeforeWeight(t *testing.T) {
	set := []FaceInfo{
		face(0, 400, WidthCondensed, StyleNormal),
		face(1, 700, WidthNormal, StyleNormal),
		face(2, 400, WidthExpanded, StyleNormal),
	}
	// Stretch wins over an exact weight match.
	assert.Equal(t, 1, BestMatch(set, 400, WidthNormal, StyleNormal))
	// Narrow queries look narrower first, wide queries wider first.
	assert.Equal(t, 0, BestMatch(set, 400, WidthSemiCondensed, StyleNormal))
	assert.Equal(t, 2, BestMatch(set, 400, WidthSemiExpanded, StyleNormal))
	assert.Equal(t, 0, BestMatch(set, 400, WidthUltraCondensed, StyleNormal))
}

func TestBestMatchDeterministic(t *testing.T) {
	set := []FaceInfo{
		face(0, 400, WidthNormal, StyleNormal),
		face(1, 400, WidthNormal, StyleNormal),
	}
	for range 10 {
		assert.Equal(t, 0, BestMatch(set, 400, WidthNormal, StyleNormal))
	}
	assert.Equal(t, -1, BestMatch(nil, 400, WidthNormal, StyleNormal))
}

func TestUnicodeRanges(t *testing.T) {
	assert.Equal(t, 0, RangeBit('A'))
	assert.Equal(t, 11, RangeBit('א'))
	assert.Equal(t, 13, RangeBit('م'))
	assert.Equal(t, 59, RangeBit('中'))
	assert.Equal(t, -1, RangeBit(0x0860))

	latin := ForString("Hello")
	assert.True(t, latin.Has(0))
	mixed := ForString("Hello שלום")
	assert.True(t, mixed.Has(0))
	assert.True(t, mixed.Has(11))

	assert.True(t, mixed.Superset(latin))
	assert.False(t, latin.Superset(mixed))
	assert.True(t, UnicodeRanges{}.IsEmpty())
	assert.True(t, UnicodeRanges{}.Set(122).Has(122))
}
