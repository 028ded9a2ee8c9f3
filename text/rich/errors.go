package rich

import "fmt"

// Span is a byte range [Start, End) of the markup.
type Span struct {
	Start, End int
}

// ErrorKind classifies markup errors.
type ErrorKind uint8

const (
	// UnmatchedTag is an opening tag never closed, or a closing tag that
	// closes nothing.
	UnmatchedTag ErrorKind = iota
	// UnterminatedTag is a tag missing its closing bracket.
	UnterminatedTag
	// InvalidEscSequence is a backslash followed by anything but [ or \.
	InvalidEscSequence
	// UnexpectedEndOfStr is markup ending after a backslash.
	UnexpectedEndOfStr
	// UnknownClass is a property or class that is neither built in, user
	// defined nor a color.
	UnknownClass
	// BadPropValue is a known property with a value it cannot take.
	BadPropValue
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedTag:
		return "unmatched tag"
	case UnterminatedTag:
		return "unterminated tag"
	case InvalidEscSequence:
		return "invalid escape sequence"
	case UnexpectedEndOfStr:
		return "unexpected end of string"
	case UnknownClass:
		return "unknown class or property"
	case BadPropValue:
		return "bad property value"
	default:
		return "unknown error"
	}
}

// ParseError reports invalid markup. Char is set for InvalidEscSequence,
// Prop for UnknownClass and BadPropValue, and Value for BadPropValue.
type ParseError struct {
	Kind  ErrorKind
	Span  Span
	Char  rune
	Prop  string
	Value string
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case InvalidEscSequence:
		msg = fmt.Sprintf("invalid escape sequence: \\%c", e.Char)
	case UnknownClass:
		msg = fmt.Sprintf("unknown class or property: '%s'", e.Prop)
	case BadPropValue:
		msg = fmt.Sprintf("bad value '%s' for property '%s'", e.Value, e.Prop)
	default:
		msg = e.Kind.String()
	}
	return fmt.Sprintf("rich: %s at %d..%d", msg, e.Span.Start, e.Span.End)
}
