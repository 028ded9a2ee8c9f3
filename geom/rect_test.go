package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectConstructors(t *testing.T) {
	r := FromXYWH(1, 2, 10, 20)
	assert.Equal(t, 2.0, r.Top())
	assert.Equal(t, 11.0, r.Right())
	assert.Equal(t, 22.0, r.Bottom())
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, r, FromTRBL(2, 11, 22, 1))
	assert.Equal(t, r, FromPS(Pt(1, 2), Sz(10, 20)))
	assert.Equal(t, r, FromCorners(Pt(11, 22), Pt(1, 2)))
	assert.Equal(t, Pt(6, 12), r.Center())
}

func TestRectPadAndGrow(t *testing.T) {
	r := FromXYWH(0, 0, 100, 50)
	tests := []struct {
		name string
		pad  Padding
		want Rect
	}{
		{"even", Even(5), FromXYWH(5, 5, 90, 40)},
		{"center", Center(2, 10), FromXYWH(10, 2, 80, 46)},
		{"custom", Custom(1, 2, 3, 4), FromXYWH(4, 1, 94, 46)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Pad(tt.pad)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, r, got.Grow(tt.pad))
		})
	}
}

func TestPaddingSums(t *testing.T) {
	p := Custom(1, 2, 3, 4)
	assert.Equal(t, 4.0, p.SumV())
	assert.Equal(t, 6.0, p.SumH())
	c := Center(3, 7)
	assert.Equal(t, 3.0, c.Top())
	assert.Equal(t, 7.0, c.Right())
	assert.Equal(t, 3.0, c.Bottom())
	assert.Equal(t, 7.0, c.Left())
}

func TestRectUnite(t *testing.T) {
	a := FromTRBL(0, 10, 10, 0)
	b := FromTRBL(5, 20, 8, -3)
	assert.Equal(t, FromTRBL(0, 20, 10, -3), a.Unite(b))

	assert.Nil(t, UniteOpt(nil, nil))
	got := UniteOpt(&a, nil)
	require.NotNil(t, got)
	assert.Equal(t, a, *got)
	got = UniteOpt(nil, &b)
	require.NotNil(t, got)
	assert.Equal(t, b, *got)
	got = UniteOpt(&a, &b)
	require.NotNil(t, got)
	assert.Equal(t, a.Unite(b), *got)
}

func TestRectTransform(t *testing.T) {
	r := FromXYWH(0, 0, 10, 20)
	assert.Equal(t, FromXYWH(5, 5, 10, 20), r.Transform(Translate(5, 5)))

	rot := r.Transform(Rotate(math.Pi / 2))
	assert.InDelta(t, -20.0, rot.Left(), 1e-9)
	assert.InDelta(t, 0.0, rot.Right(), 1e-9)
	assert.InDelta(t, 0.0, rot.Top(), 1e-9)
	assert.InDelta(t, 10.0, rot.Bottom(), 1e-9)
}

func TestRectSides(t *testing.T) {
	r := FromTRBL(0, 10, 10, 0)
	assert.Equal(t, FromTRBL(-5, 10, 10, 0), r.WithTop(-5))
	assert.Equal(t, FromTRBL(0, 15, 10, 0), r.WithRight(15))
	assert.Equal(t, FromTRBL(0, 10, 12, 0), r.WithBottom(12))
	assert.Equal(t, FromTRBL(0, 10, 10, 3), r.WithLeft(3))
	assert.True(t, r.ContainsPoint(Pt(10, 10)))
	assert.False(t, r.ContainsPoint(Pt(10.1, 5)))
}

func TestRectToPath(t *testing.T) {
	r := FromXYWH(1, 2, 3, 4)
	p := r.ToPath()
	require.NotNil(t, p)
	assert.Equal(t, []Verb{MoveTo, LineTo, LineTo, LineTo, Close}, p.Verbs())
	assert.Equal(t, r, p.Bounds())
}

func TestRectIntersect(t *testing.T) {
	a := FromXYWH(0, 0, 10, 10)

	got, ok := a.Intersect(FromXYWH(5, -5, 10, 10))
	require.True(t, ok)
	assert.Equal(t, FromTRBL(0, 10, 5, 5), got)

	_, ok = a.Intersect(FromXYWH(10, 0, 5, 5))
	assert.False(t, ok, "touching edges do not overlap")

	got, ok = a.Intersect(FromXYWH(2, 2, 3, 3))
	require.True(t, ok)
	assert.Equal(t, FromXYWH(2, 2, 3, 3), got)
}
