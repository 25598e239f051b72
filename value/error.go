package value

import (
	"strconv"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

// ErrorKind is one of the spreadsheet error codes.
type ErrorKind int

const (
	ErrorNull ErrorKind = iota + 1
	ErrorDiv0
	ErrorValue
	ErrorRef
	ErrorName
	ErrorNum
	ErrorNA
	ErrorError
	ErrorSpill
	ErrorCalc
)

var errorKindTexts = map[ErrorKind]string{
	ErrorNull:  "#NULL!",
	ErrorDiv0:  "#DIV/0!",
	ErrorValue: "#VALUE!",
	ErrorRef:   "#REF!",
	ErrorName:  "#NAME?",
	ErrorNum:   "#NUM!",
	ErrorNA:    "#N/A",
	ErrorError: "#ERROR",
	ErrorSpill: "#SPILL!",
	ErrorCalc:  "#CALC!",
}

// Text returns the canonical display text, for example "#DIV/0!".
func (k ErrorKind) Text() string {
	if text, ok := errorKindTexts[k]; ok {
		return text
	}

	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ErrorKind) String() string {
	return k.Text()
}

// ParseErrorKind returns the kind whose display text matches exactly.
func ParseErrorKind(text string) (ErrorKind, bool) {
	for kind, t := range errorKindTexts {
		if t == text {
			return kind, true
		}
	}

	return 0, false
}

// Error is a spreadsheet error value, for example the result of dividing by
// zero. It also satisfies the error interface.
type Error struct {
	Kind    ErrorKind
	Message string
	// Value optionally carries what caused the error, e.g. the missing cell.
	Value any
}

// NewError returns an error of kind with an optional message.
func NewError(kind ErrorKind, message string) Error {
	return Error{Kind: kind, Message: message}
}

// MissingCell is the error produced when a formula references a cell that
// does not exist.
func MissingCell(cell reference.Cell) Error {
	return Error{Kind: ErrorName, Value: cell}
}

// IsMissingCell reports whether the error stands for an absent cell.
func (e Error) IsMissingCell() bool {
	if e.Kind != ErrorName {
		return false
	}

	_, ok := e.Value.(reference.Cell)
	return ok
}

// SetNameString fills an empty message of a missing cell error with the name
// of the cell, leaving other errors untouched.
func (e Error) SetNameString() Error {
	if e.IsMissingCell() && e.Message == "" {
		e.Message = "Cell not found: " + e.Value.(reference.Cell).String()
	}

	return e
}

// Text returns the display text of the error kind.
func (e Error) Text() string {
	return e.Kind.Text()
}

func (e Error) Error() string {
	if e.Message == "" {
		return e.Kind.Text()
	}

	return e.Kind.Text() + " " + e.Message
}
