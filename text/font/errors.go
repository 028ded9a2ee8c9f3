package font

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchFont is matched by every NoSuchFontError.
	ErrNoSuchFont = errors.New("font: no such font")

	// ErrEmptyFontData is returned when loading empty font data.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrUnknownFace is returned for an ID the database does not hold.
	ErrUnknownFace = errors.New("font: unknown face id")
)

// NoSuchFontError is returned when no face matches a font query.
type NoSuchFontError struct {
	Font Font
}

func (e *NoSuchFontError) Error() string {
	return fmt.Sprintf("font: no face matches %s", e.Font)
}

// Is makes errors.Is(err, ErrNoSuchFont) report true.
func (e *NoSuchFontError) Is(target error) bool {
	return target == ErrNoSuchFont
}

// FaceParsingError wraps a failure to parse the data of a face.
type FaceParsingError struct {
	ID  ID
	Err error
}

func (e *FaceParsingError) Error() string {
	return fmt.Sprintf("font: parsing face %d: %v", e.ID, e.Err)
}

func (e *FaceParsingError) Unwrap() error {
	return e.Err
}
