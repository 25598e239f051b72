package reference

import (
	"strings"
)

// Cell is a single cell such as "B2".
type Cell struct {
	Column Column
	Row    Row
}

// NewCell returns a relative cell reference.
func NewCell(column, row int) Cell {
	return Cell{Column: NewColumn(column), Row: NewRow(row)}
}

func (c Cell) Kind() Kind { return KindCell }
func (c Cell) Axis() Axis { return AxisNone }

func (c Cell) String() string {
	return c.Column.String() + c.Row.String()
}

// EqualIgnoringAbsolute compares cells by position only.
func (c Cell) EqualIgnoringAbsolute(other Cell) bool {
	return c.Column.Value == other.Column.Value && c.Row.Value == other.Row.Value
}

// ParseCell parses text such as "A1" or "$A$1".
func ParseCell(text string) (Cell, error) {
	cell, end, err := parseCellPrefix(text, 0)
	if err != nil {
		return Cell{}, err
	}

	if end < len(text) {
		return Cell{}, invalidCharacter(text, end)
	}

	return cell, nil
}

func parseCellPrefix(text string, pos int) (Cell, int, error) {
	column, i, err := parseColumnPrefix(text, pos)
	if err != nil {
		return Cell{}, i, err
	}

	row, i, err := parseRowPrefix(text, i)
	if err != nil {
		return Cell{}, i, err
	}

	return Cell{Column: column, Row: row}, i, nil
}

// CellRange is a rectangular block of cells.
type CellRange struct {
	Begin, End Cell
}

func (r CellRange) Kind() Kind { return KindCellRange }
func (r CellRange) Axis() Axis { return AxisNone }

func (r CellRange) String() string {
	return r.Begin.String() + ":" + r.End.String()
}

// ColumnRange is an inclusive run of whole columns.
type ColumnRange struct {
	Begin, End Column
}

func (r ColumnRange) Kind() Kind { return KindColumnRange }
func (r ColumnRange) Axis() Axis { return AxisColumn }

func (r ColumnRange) String() string {
	return r.Begin.String() + ":" + r.End.String()
}

// RowRange is an inclusive run of whole rows.
type RowRange struct {
	Begin, End Row
}

func (r RowRange) Kind() Kind { return KindRowRange }
func (r RowRange) Axis() Axis { return AxisRow }

func (r RowRange) String() string {
	return r.Begin.String() + ":" + r.End.String()
}

// ParseSelection parses any selection: a cell, column, row, one of their
// ranges, or a label.
func ParseSelection(text string) (Selection, error) {
	if colon := strings.IndexByte(text, ':'); colon >= 0 {
		return parseRange(text, colon)
	}

	if cell, err := ParseCell(text); err == nil {
		return cell, nil
	}

	if column, err := ParseColumn(text); err == nil {
		return column, nil
	}

	if row, err := ParseRow(text); err == nil {
		return row, nil
	}

	label, err := ParseLabel(text)
	if err != nil {
		return nil, err
	}

	return label, nil
}

func parseRange(text string, colon int) (Selection, error) {
	left := text[:colon]
	right := text[colon+1:]

	shift := func(err error) error {
		if pe, ok := err.(*ParseError); ok {
			return &ParseError{Text: text, Pos: pe.Pos + colon + 1, Message: pe.Message}
		}

		return err
	}

	if begin, err := ParseCell(left); err == nil {
		end, err := ParseCell(right)
		if err != nil {
			return nil, shift(err)
		}

		return CellRange{Begin: begin, End: end}, nil
	}

	if begin, err := ParseColumn(left); err == nil {
		end, err := ParseColumn(right)
		if err != nil {
			return nil, shift(err)
		}

		return ColumnRange{Begin: begin, End: end}, nil
	}

	begin, err := ParseRow(left)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			return nil, &ParseError{Text: text, Pos: pe.Pos, Message: pe.Message}
		}

		return nil, err
	}

	end, err := ParseRow(right)
	if err != nil {
		return nil, shift(err)
	}

	return RowRange{Begin: begin, End: end}, nil
}
