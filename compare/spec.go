package compare

import (
	"fmt"
	"strings"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

// NameAndDirection is a comparator name with the direction it sorts in.
type NameAndDirection struct {
	Name      plugin.Name
	Direction Direction
}

// ParseNameAndDirection accepts a comparator name, optionally followed by
// ReversedSuffix.
func ParseNameAndDirection(text string) (NameAndDirection, error) {
	direction := Ascending
	if base, ok := strings.CutSuffix(text, ReversedSuffix); ok && base != "" {
		text, direction = base, Descending
	}

	name, err := plugin.ParseName(text)
	if err != nil {
		return NameAndDirection{}, err
	}

	return NameAndDirection{Name: name, Direction: direction}, nil
}

func (n NameAndDirection) String() string {
	if n.Direction == Descending {
		return n.Name.String() + ReversedSuffix
	}

	return n.Name.String()
}

// Spec sorts by the values in one column or row, using each named
// comparator in turn to break ties.
type Spec struct {
	Reference reference.ColumnOrRow
	Names     []NameAndDirection
}

// NewSpec fails without a reference or without names.
func NewSpec(ref reference.ColumnOrRow, names ...NameAndDirection) (Spec, error) {
	if ref == nil {
		return Spec{}, &ParseError{Pos: -1, Kind: Empty, Message: "Missing column or row"}
	}

	if len(names) == 0 {
		return Spec{}, &ParseError{Pos: -1, Kind: MissingName, Message: "Missing comparator name for " + ref.String()}
	}

	return Spec{Reference: ref, Names: append([]NameAndDirection(nil), names...)}, nil
}

// ParseSpec parses a single entry such as "A=number,text-reversed".
func ParseSpec(text string) (Spec, error) {
	entries, err := parse(text, false)
	if err != nil {
		return Spec{}, err
	}

	return entries[0].spec, nil
}

// Axis returns the axis of the reference.
func (s Spec) Axis() reference.Axis {
	return s.Reference.Axis()
}

// String returns the text ParseSpec accepts.
func (s Spec) String() string {
	names := make([]string, len(s.Names))
	for i, n := range s.Names {
		names[i] = n.String()
	}

	return s.Reference.String() + "=" + strings.Join(names, ",")
}

// SpecList is an ordered list of specs over distinct references of a
// single axis.
type SpecList []Spec

// NewSpecList fails when references mix columns and rows or denote the
// same column or row, ignoring "$".
func NewSpecList(specs ...Spec) (SpecList, error) {
	if err := checkList(specs, nil, ""); err != nil {
		return nil, err
	}

	return append(SpecList(nil), specs...), nil
}

// ParseSpecList parses entries separated by ";".
func ParseSpecList(text string) (SpecList, error) {
	entries, err := parse(text, true)
	if err != nil {
		return nil, err
	}

	specs := make([]Spec, len(entries))
	positions := make([]int, len(entries))

	for i, e := range entries {
		specs[i], positions[i] = e.spec, e.pos
	}

	if err := checkList(specs, positions, text); err != nil {
		return nil, err
	}

	return specs, nil
}

// checkList requires complete entries on one axis with distinct references.
// When positions are given errors point at the offending entry in text.
func checkList(specs []Spec, positions []int, text string) error {
	fail := func(i int, kind ParseErrorKind, message string) error {
		pos := -1
		if positions != nil {
			pos = positions[i]
		}

		return &ParseError{Text: text, Pos: pos, Kind: kind, Message: message}
	}

	for i, s := range specs {
		if s.Reference == nil || len(s.Names) == 0 {
			return fail(i, Empty, fmt.Sprintf("Entry %d is incomplete", i+1))
		}

		if i == 0 {
			continue
		}

		if want := specs[0].Axis(); s.Axis() != want {
			return fail(i, MixedAxis, fmt.Sprintf("Expected %s but got %s %s", want, s.Axis(), s.Reference))
		}

		for _, before := range specs[:i] {
			if reference.EqualIgnoringAbsolute(before.Reference, s.Reference) {
				return fail(i, DuplicateReference, fmt.Sprintf("Duplicate %s %s", s.Axis(), s.Reference))
			}
		}
	}

	return nil
}

func (l SpecList) String() string {
	entries := make([]string, len(l))
	for i, s := range l {
		entries[i] = s.String()
	}

	return strings.Join(entries, ";")
}
