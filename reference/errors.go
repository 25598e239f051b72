package reference

import (
	"fmt"
	"unicode/utf8"
)

// ParseError is returned by every parser in this package. Pos is the byte
// offset of the offending character within Text.
type ParseError struct {
	Text    string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d in %q", e.Message, e.Pos, e.Text)
}

func invalidCharacter(text string, pos int) *ParseError {
	r, _ := utf8.DecodeRuneInString(text[pos:])

	return &ParseError{
		Text:    text,
		Pos:     pos,
		Message: fmt.Sprintf("Invalid character %q", r),
	}
}

func emptyText(text string, pos int, what string) *ParseError {
	return &ParseError{
		Text:    text,
		Pos:     pos,
		Message: "Missing " + what,
	}
}
