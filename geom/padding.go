package geom

// Padding is an inner spacing around a rectangle's content.
// It has three forms, built with [Even], [Center] and [Custom].
type Padding struct {
	top, right, bottom, left float64
}

// Margin is an outer spacing. It shares the representation of [Padding].
type Margin = Padding

// Even is the same spacing on all four sides.
func Even(p float64) Padding {
	return Padding{p, p, p, p}
}

// Center is a vertical spacing v (top and bottom) and a horizontal
// spacing h (left and right).
func Center(v, h float64) Padding {
	return Padding{v, h, v, h}
}

// Custom sets each side independently.
func Custom(top, right, bottom, left float64) Padding {
	return Padding{top, right, bottom, left}
}

func (p Padding) Top() float64    { return p.top }
func (p Padding) Right() float64  { return p.right }
func (p Padding) Bottom() float64 { return p.bottom }
func (p Padding) Left() float64   { return p.left }

// SumV is the total vertical spacing.
func (p Padding) SumV() float64 { return p.top + p.bottom }

// SumH is the total horizontal spacing.
func (p Padding) SumH() float64 { return p.left + p.right }
