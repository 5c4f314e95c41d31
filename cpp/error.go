package cpp

import "fmt"

type ErrorLoc struct {
	Err error
	Pos FilePos
}

func ErrWithLoc(e error, pos FilePos) error {
	return ErrorLoc{
		Err: e,
		Pos: pos,
	}
}

func (e ErrorLoc) Error() string {
	return fmt.Sprintf("%s at %s", e.Err, e.Pos)
}

func (e ErrorLoc) Unwrap() error {
	return e.Err
}

// ScanError is returned when the scanner meets a character that is not
// whitespace, part of a comment, an identifier or supported punctuation.
type ScanError struct {
	Char rune
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}
