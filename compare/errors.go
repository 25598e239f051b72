package compare

import (
	"fmt"
	"unicode/utf8"
)

//go:generate go tool stringer -type=ParseErrorKind -output=parseerrorkind_string.go

// ParseErrorKind classifies parse and construction failures.
type ParseErrorKind int

const (
	_ ParseErrorKind = iota // zero value is invalid

	InvalidCharacter
	MissingAssignment
	MissingName
	Empty
	DuplicateReference
	MixedAxis

	// ParseErrorKindTotal bounds loops over ParseErrorKind starting at the zero
	// value, so it is one more than the number of parse error kinds.
	ParseErrorKindTotal = int(iota)
)

// ParseError reports where comparator text is wrong. Pos is the byte offset
// into Text, or -1 when the error concerns constructed values rather than
// text.
type ParseError struct {
	Text    string
	Pos     int
	Kind    ParseErrorKind
	Message string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return e.Message
	}

	return fmt.Sprintf("%s at %d in %q", e.Message, e.Pos, e.Text)
}

func invalidCharacter(text string, pos int) *ParseError {
	r, _ := utf8.DecodeRuneInString(text[pos:])

	return &ParseError{
		Text:    text,
		Pos:     pos,
		Kind:    InvalidCharacter,
		Message: fmt.Sprintf("Invalid character %q", r),
	}
}

func missing(text string, kind ParseErrorKind, message string) *ParseError {
	return &ParseError{Text: text, Pos: len(text), Kind: kind, Message: message}
}
