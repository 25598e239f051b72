package value

import (
	"golang.org/x/text/language"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

// Formula holds the text a user entered and what evaluating it produced.
type Formula struct {
	Text string
	// Value is the computed value, nil for a blank cell.
	Value any
	// Error is set when evaluation failed and takes precedence over Value.
	Error *Error
}

// Cell is a spreadsheet cell with its formula result and optional
// attachments. Attachments are selector texts interpreted by plugins.
type Cell struct {
	Reference reference.Cell
	Formula   Formula

	Style     map[string]string
	Formatter string
	Parser    string
	Validator string
	Locale    language.Tag
}

// NewCell returns a cell holding an already computed value. A value of type
// Error or *Error is stored as the formula error.
func NewCell(ref reference.Cell, v any) *Cell {
	cell := &Cell{Reference: ref}

	switch e := v.(type) {
	case Error:
		cell.Formula.Error = &e
	case *Error:
		cell.Formula.Error = e
	default:
		cell.Formula.Value = v
	}

	return cell
}

// Value returns the formula error if present, otherwise the computed value.
// A nil cell has a nil value.
func (c *Cell) Value() any {
	if c == nil {
		return nil
	}

	if c.Formula.Error != nil {
		return *c.Formula.Error
	}

	return c.Formula.Value
}

// IsBlank reports whether the cell is absent or holds no value.
func (c *Cell) IsBlank() bool {
	return c.Value() == nil
}
