// Package ast is the syntax tree of figure descriptions.
package ast

// Span is a byte range [Start, End) of the source.
type Span struct {
	Start, End int
}

// Ident is a property name or a type name.
type Ident struct {
	Span Span
	Name string
}

// Prop is a property. Value is nil for a bare name such as "grid".
type Prop struct {
	Name  Ident
	Value Value
}

// Span covers the name and the value.
func (p *Prop) Span() Span {
	if p.Value == nil {
		return p.Name.Span
	}
	return Span{Start: p.Name.Span.Start, End: p.Value.Span().End}
}

// Value is one of *Scalar, *Seq, *Array or *Struct. Loc is the span of
// the value in the source.
type Value interface {
	Span() Span
	isValue()
}

// ScalarKind is the type of a Scalar.
type ScalarKind uint8

const (
	Enum ScalarKind = iota
	Str
	Int
	Float
)

func (k ScalarKind) String() string {
	switch k {
	case Enum:
		return "enum"
	case Str:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Scalar is a single value. Text holds the name of an Enum and the
// content of a Str.
type Scalar struct {
	Kind  ScalarKind
	Loc   Span
	Text  string
	Int   int64
	Float float64
}

// Number returns the value of an Int or a Float.
func (s *Scalar) Number() (float64, bool) {
	switch s.Kind {
	case Int:
		return float64(s.Int), true
	case Float:
		return s.Float, true
	}
	return 0, false
}

// Seq is a comma separated list of scalars, possibly of mixed kinds.
type Seq struct {
	Loc     Span
	Scalars []Scalar
}

// ArrayKind is the element type of an Array.
type ArrayKind uint8

const (
	EmptyArray ArrayKind = iota
	IntArray
	FloatArray
	StrArray
)

// Array is a bracketed list of one scalar type. Integers mixed with
// floats are promoted to a FloatArray.
type Array struct {
	Loc    Span
	Kind   ArrayKind
	Ints   []int64
	Floats []float64
	Strs   []string
}

// Len is the number of elements.
func (a *Array) Len() int {
	switch a.Kind {
	case IntArray:
		return len(a.Ints)
	case FloatArray:
		return len(a.Floats)
	case StrArray:
		return len(a.Strs)
	}
	return 0
}

// Struct is a braced list of properties, with an optional type name.
type Struct struct {
	Loc   Span
	Type  *Ident
	Props []Prop
}

// HasProp reports whether s has a property called name.
func (s *Struct) HasProp(name string) bool {
	return s.index(name) >= 0
}

// Prop returns the first property called name.
func (s *Struct) Prop(name string) (*Prop, bool) {
	i := s.index(name)
	if i < 0 {
		return nil, false
	}
	return &s.Props[i], true
}

// TakeProp removes and returns the first property called name.
func (s *Struct) TakeProp(name string) (Prop, bool) {
	i := s.index(name)
	if i < 0 {
		return Prop{}, false
	}
	p := s.Props[i]
	s.Props = append(s.Props[:i], s.Props[i+1:]...)
	return p, true
}

func (s *Struct) index(name string) int {
	for i := range s.Props {
		if s.Props[i].Name.Name == name {
			return i
		}
	}
	return -1
}

func (s *Scalar) Span() Span { return s.Loc }
func (s *Seq) Span() Span    { return s.Loc }
func (a *Array) Span() Span  { return a.Loc }
func (s *Struct) Span() Span { return s.Loc }

func (*Scalar) isValue() {}
func (*Seq) isValue()    {}
func (*Array) isValue()  {}
func (*Struct) isValue() {}
