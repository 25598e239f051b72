package compare

import (
	"errors"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

const (
	assignment     = '='
	nameSeparator  = ','
	entrySeparator = ';'
)

type parseState int

const (
	columnOrRowStart parseState = iota
	columnOrRow
	nameStart
	name
)

// entry is a parsed spec with the offset where its text begins.
type entry struct {
	spec Spec
	pos  int
}

// parse scans text once, left to right. Entry separators are only accepted
// when list is true.
func parse(text string, list bool) ([]entry, error) {
	var (
		entries   []entry
		refStart  int
		nameBegin int
		ref       reference.ColumnOrRow
		names     []NameAndDirection
	)

	state := columnOrRowStart

	endName := func(end int) error {
		n, err := parseName(text, nameBegin, end)
		if err != nil {
			return err
		}

		names = append(names, n)

		return nil
	}

	endEntry := func() {
		entries = append(entries, entry{spec: Spec{Reference: ref, Names: names}, pos: refStart})
		ref, names = nil, nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch state {
		case columnOrRowStart:
			if !isReferenceChar(c) {
				return nil, invalidCharacter(text, i)
			}

			refStart, state = i, columnOrRow
		case columnOrRow:
			switch {
			case c == assignment:
				r, err := parseReference(text, refStart, i)
				if err != nil {
					return nil, err
				}

				ref, state = r, nameStart
			case !isReferenceChar(c):
				return nil, invalidCharacter(text, i)
			}
		case nameStart:
			if !isLetter(c) {
				return nil, invalidCharacter(text, i)
			}

			nameBegin, state = i, name
		case name:
			switch {
			case c == nameSeparator:
				if err := endName(i); err != nil {
					return nil, err
				}

				state = nameStart
			case c == entrySeparator && list:
				if err := endName(i); err != nil {
					return nil, err
				}

				endEntry()
				state = columnOrRowStart
			case !isNameChar(c):
				return nil, invalidCharacter(text, i)
			}
		}
	}

	switch state {
	case columnOrRowStart:
		if len(entries) == 0 {
			return nil, missing(text, Empty, "Missing column or row")
		}

		return nil, missing(text, Empty, "Missing column or row after ';'")
	case columnOrRow:
		if _, err := parseReference(text, refStart, len(text)); err != nil {
			return nil, err
		}

		return nil, missing(text, MissingAssignment, "Missing '='")
	case nameStart:
		return nil, missing(text, MissingName, "Missing comparator name")
	case name:
		if err := endName(len(text)); err != nil {
			return nil, err
		}

		endEntry()
	}

	return entries, nil
}

// parseReference parses text[start:end] as a column or row, moving errors
// into the coordinates of text.
func parseReference(text string, start, end int) (reference.ColumnOrRow, error) {
	ref, err := reference.ParseColumnOrRow(text[start:end])
	if err == nil {
		return ref, nil
	}

	var pe *reference.ParseError
	if !errors.As(err, &pe) {
		return nil, err
	}

	return nil, &ParseError{Text: text, Pos: start + pe.Pos, Kind: InvalidCharacter, Message: pe.Message}
}

// parseName reports a bad name at its first character.
func parseName(text string, start, end int) (NameAndDirection, error) {
	n, err := ParseNameAndDirection(text[start:end])
	if err != nil {
		return NameAndDirection{}, &ParseError{Text: text, Pos: start, Kind: InvalidCharacter, Message: err.Error()}
	}

	return n, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isReferenceChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '$'
}

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-'
}
