package text

// Justification distributes the extra space of a justified line or column.
// Lines with whitespace get the space added after each whitespace glyph;
// lines without any are stretched glyph by glyph.
type Justification struct {
	gap  float64
	fact float64
	size float64
}

// NewJustification computes the stretch of a line of natural length size
// holding ws whitespace characters to reach target. When target is not
// larger than size the line is left untouched.
func NewJustification(target, size float64, ws int) Justification {
	if target <= size || size <= 0 {
		return Justification{fact: 1, size: size}
	}
	if ws > 0 {
		return Justification{gap: (target - size) / float64(ws), fact: 1, size: target}
	}
	return Justification{fact: target / size, size: target}
}

// NoJustification leaves advances unchanged.
func NoJustification(size float64) Justification {
	return Justification{fact: 1, size: size}
}

// Size is the justified length.
func (j Justification) Size() float64 {
	return j.size
}

// IsNoop reports whether advances are left unchanged.
func (j Justification) IsNoop() bool {
	return j.gap == 0 && j.fact == 1
}

// Advance returns the justified advance of a glyph.
func (j Justification) Advance(adv float64, whitespace bool) float64 {
	if whitespace {
		return adv*j.fact + j.gap
	}
	return adv * j.fact
}
