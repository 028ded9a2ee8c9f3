package dsl

import (
	"fmt"

	"github.com/gogpu/ggplot/dsl/ast"
)

// ErrorKind classifies DSL errors.
type ErrorKind uint8

const (
	// UnexpectedChar is a character that starts no token, or a character
	// other than the one a token requires.
	UnexpectedChar ErrorKind = iota
	UnexpectedEndOfFile
	// UnterminatedString is a string literal interrupted by a newline.
	UnterminatedString
	InvalidEscSequence
	InvalidNumber
	InvalidKebabIdent
	InvalidPascalIdent

	// UnexpectedEndOfInput is a document ending inside a value.
	UnexpectedEndOfInput
	UnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "unexpected character"
	case UnexpectedEndOfFile:
		return "unexpected end of file"
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscSequence:
		return "invalid escape sequence"
	case InvalidNumber:
		return "invalid number"
	case InvalidKebabIdent:
		return "invalid kebab-case identifier"
	case InvalidPascalIdent:
		return "invalid pascal-case identifier"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case UnexpectedToken:
		return "unexpected token"
	default:
		return "unknown error"
	}
}

const strBreakHelp = "to include a newline in a string, use \\n; " +
	"to break a long string over several lines, concatenate literals"

// Error is a lexical or syntax error.
//
// Found is the offending character or token text. Expected, when set,
// names what was expected instead. Text is the invalid literal of
// InvalidNumber and the identifier errors.
type Error struct {
	Kind     ErrorKind
	Span     ast.Span
	Found    string
	Expected string
	Text     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dsl: %s at %d..%d", e.Message(), e.Span.Start, e.Span.End)
}

// Message describes the error without its position.
func (e *Error) Message() string {
	switch e.Kind {
	case UnexpectedChar:
		if e.Expected != "" {
			return fmt.Sprintf("unexpected character: expected %s, found %s", e.Expected, e.Found)
		}
		return fmt.Sprintf("unexpected character %s", e.Found)
	case InvalidEscSequence:
		return fmt.Sprintf("invalid escape sequence: \\%s", e.Found)
	case InvalidNumber, InvalidKebabIdent, InvalidPascalIdent:
		return fmt.Sprintf("%s: %s", e.Kind, e.Text)
	case UnexpectedToken:
		if e.Expected != "" {
			return fmt.Sprintf("unexpected token %s (expected %s)", e.Found, e.Expected)
		}
		return fmt.Sprintf("unexpected token %s", e.Found)
	default:
		return e.Kind.String()
	}
}

// Help returns a hint on fixing the error, or "".
func (e *Error) Help() string {
	if e.Kind == UnterminatedString {
		return strBreakHelp
	}
	return ""
}
