package rich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/ggplot/color"
	"github.com/gogpu/ggplot/text/font"
)

func TestOptPropsMerge(t *testing.T) {
	red := color.Direct(color.FromRGB(255, 0, 0))
	base := OptProps{Weight: Ptr(font.WeightBold), Size: Ptr(10.0)}
	got := base.Merge(OptProps{Size: Ptr(12.0), Fill: &red})
	assert.Equal(t, font.WeightBold, *got.Weight)
	assert.Equal(t, 12.0, *got.Size)
	assert.Equal(t, &red, got.Fill)
	assert.Equal(t, 10.0, *base.Size, "merge leaves the receiver alone")
}

func TestOptPropsAffectsShape(t *testing.T) {
	tests := []struct {
		name   string
		props  OptProps
		shape  bool
		isZero bool
	}{
		{"empty", OptProps{}, false, true},
		{"size", OptProps{Size: Ptr(3.0)}, true, false},
		{"families", OptProps{Families: []font.Family{font.GenericFamily(font.Serif)}}, true, false},
		{"style", OptProps{Style: Ptr(font.StyleItalic)}, true, false},
		{"underline", OptProps{Underline: Ptr(false)}, false, false},
		{"stroke", OptProps{Stroke: Ptr(color.Direct(color.White))}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shape, tt.props.AffectsShape())
			assert.Equal(t, tt.isZero, tt.props.IsEmpty())
		})
	}
}

func TestPropsApply(t *testing.T) {
	root := NewProps(12)
	assert.Equal(t, font.Default(), root.Font)
	assert.Equal(t, color.Direct(color.Black), *root.Fill)
	assert.Nil(t, root.Stroke)

	red := color.Direct(color.FromRGB(255, 0, 0))
	p := root.Apply(OptProps{
		Weight:    Ptr(font.WeightBold),
		Size:      Ptr(20.0),
		Fill:      &red,
		Underline: Ptr(true),
	})
	assert.Equal(t, font.WeightBold, p.Font.Weight())
	assert.Equal(t, 20.0, p.Size)
	assert.Equal(t, red, *p.Fill)
	assert.True(t, p.Underline)
	assert.False(t, p.Strikeout)

	// The resolved props do not alias the overlay.
	red = color.Direct(color.White)
	assert.Equal(t, color.Direct(color.FromRGB(255, 0, 0)), *p.Fill)

	assert.Equal(t, root, root.Apply(OptProps{}))
	assert.Equal(t, 12.0, root.Size)
}
