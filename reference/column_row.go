package reference

import (
	"strconv"
	"strings"
)

const (
	// MaxColumns is the number of addressable columns, "A" through "XFD".
	MaxColumns = 16384
	// MaxRows is the number of addressable rows, "1" through "1048576".
	MaxRows = 1048576

	absoluteMarker = '$'
)

// Column is a zero based column index, displayed as letters.
type Column struct {
	Value    int
	Absolute bool
}

// NewColumn returns a relative column; it panics if value is out of range.
func NewColumn(value int) Column {
	if value < 0 || value >= MaxColumns {
		panic("column " + strconv.Itoa(value) + " out of range 0.." + strconv.Itoa(MaxColumns-1))
	}

	return Column{Value: value}
}

func (c Column) Kind() Kind       { return KindColumn }
func (c Column) Axis() Axis       { return AxisColumn }
func (c Column) Index() int       { return c.Value }
func (c Column) IsAbsolute() bool { return c.Absolute }

// SetAbsolute returns a copy with the absolute marker set.
func (c Column) SetAbsolute(absolute bool) Column {
	c.Absolute = absolute
	return c
}

// Letters returns the column letters without any absolute marker.
func (c Column) Letters() string {
	n := c.Value + 1

	var buf [4]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}

	return string(buf[i:])
}

func (c Column) String() string {
	if c.Absolute {
		return "$" + c.Letters()
	}

	return c.Letters()
}

// Row is a zero based row index, displayed one based.
type Row struct {
	Value    int
	Absolute bool
}

// NewRow returns a relative row; it panics if value is out of range.
func NewRow(value int) Row {
	if value < 0 || value >= MaxRows {
		panic("row " + strconv.Itoa(value) + " out of range 0.." + strconv.Itoa(MaxRows-1))
	}

	return Row{Value: value}
}

func (r Row) Kind() Kind       { return KindRow }
func (r Row) Axis() Axis       { return AxisRow }
func (r Row) Index() int       { return r.Value }
func (r Row) IsAbsolute() bool { return r.Absolute }

// SetAbsolute returns a copy with the absolute marker set.
func (r Row) SetAbsolute(absolute bool) Row {
	r.Absolute = absolute
	return r
}

func (r Row) String() string {
	s := strconv.Itoa(r.Value + 1)
	if r.Absolute {
		return "$" + s
	}

	return s
}

// ParseColumn parses text such as "A", "$AB" or "xfd".
func ParseColumn(text string) (Column, error) {
	column, end, err := parseColumnPrefix(text, 0)
	if err != nil {
		return Column{}, err
	}

	if end < len(text) {
		return Column{}, invalidCharacter(text, end)
	}

	return column, nil
}

// ParseRow parses text such as "1" or "$12".
func ParseRow(text string) (Row, error) {
	row, end, err := parseRowPrefix(text, 0)
	if err != nil {
		return Row{}, err
	}

	if end < len(text) {
		return Row{}, invalidCharacter(text, end)
	}

	return row, nil
}

// ParseColumnOrRow parses a single column or a single row. Text containing
// any letter is treated as a column, otherwise as a row, so "1A" fails on
// the leading digit.
func ParseColumnOrRow(text string) (ColumnOrRow, error) {
	if strings.IndexFunc(text, isLetter) >= 0 {
		column, err := ParseColumn(text)
		if err != nil {
			return nil, err
		}

		return column, nil
	}

	row, err := ParseRow(text)
	if err != nil {
		return nil, err
	}

	return row, nil
}

// parseColumnPrefix consumes an optional "$" and column letters starting at
// pos, returning the offset of the first unconsumed character.
func parseColumnPrefix(text string, pos int) (Column, int, error) {
	if pos >= len(text) {
		return Column{}, pos, emptyText(text, pos, "column")
	}

	var column Column
	i := pos
	if text[i] == absoluteMarker {
		column.Absolute = true
		i++
	}

	start := i
	value := 0
	for i < len(text) && isLetter(rune(text[i])) {
		value = value*26 + int(upper(text[i])-'A') + 1
		if value > MaxColumns {
			return Column{}, i, &ParseError{
				Text:    text,
				Pos:     start,
				Message: "Invalid column " + strconv.Quote(text[start:i+1]) + " > XFD",
			}
		}
		i++
	}

	if i == start {
		if i >= len(text) {
			return Column{}, i, emptyText(text, i, "column")
		}

		return Column{}, i, invalidCharacter(text, i)
	}

	column.Value = value - 1

	return column, i, nil
}

// parseRowPrefix consumes an optional "$" and row digits starting at pos.
func parseRowPrefix(text string, pos int) (Row, int, error) {
	if pos >= len(text) {
		return Row{}, pos, emptyText(text, pos, "row")
	}

	var row Row
	i := pos
	if text[i] == absoluteMarker {
		row.Absolute = true
		i++
	}

	start := i
	value := 0
	for i < len(text) && isDigit(rune(text[i])) {
		value = value*10 + int(text[i]-'0')
		if value > MaxRows {
			return Row{}, i, &ParseError{
				Text:    text,
				Pos:     start,
				Message: "Invalid row " + strconv.Quote(text[start:i+1]) + " > " + strconv.Itoa(MaxRows),
			}
		}
		i++
	}

	if i == start {
		if i >= len(text) {
			return Row{}, i, emptyText(text, i, "row")
		}

		return Row{}, i, invalidCharacter(text, i)
	}

	if value == 0 {
		return Row{}, i, invalidCharacter(text, start)
	}

	row.Value = value - 1

	return row, i, nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}
