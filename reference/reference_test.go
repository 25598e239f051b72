package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		text     string
		value    int
		absolute bool
	}{
		{"A", 0, false},
		{"a", 0, false},
		{"Z", 25, false},
		{"AA", 26, false},
		{"$B", 1, true},
		{"XFD", MaxColumns - 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			column, err := ParseColumn(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.value, column.Value)
			assert.Equal(t, tt.absolute, column.Absolute)
		})
	}
}

func TestParseColumn_Invalid(t *testing.T) {
	tests := []struct {
		text string
		pos  int
	}{
		{"1", 0},
		{"A1", 1},
		{"$", 1},
		{"", 0},
		{"XFE", 0},
		{"A-", 1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseColumn(tt.text)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.pos, pe.Pos)
		})
	}
}

func TestColumn_String(t *testing.T) {
	assert.Equal(t, "A", NewColumn(0).String())
	assert.Equal(t, "Z", NewColumn(25).String())
	assert.Equal(t, "AA", NewColumn(26).String())
	assert.Equal(t, "$AZ", NewColumn(51).SetAbsolute(true).String())
	assert.Equal(t, "XFD", NewColumn(MaxColumns-1).String())
}

func TestNewColumn_OutOfRange(t *testing.T) {
	assert.Panics(t, func() { NewColumn(-1) })
	assert.Panics(t, func() { NewColumn(MaxColumns) })
}

func TestParseRow(t *testing.T) {
	row, err := ParseRow("12")
	require.NoError(t, err)
	assert.Equal(t, 11, row.Value)
	assert.False(t, row.Absolute)
	assert.Equal(t, "12", row.String())

	row, err = ParseRow("$3")
	require.NoError(t, err)
	assert.Equal(t, "$3", row.String())

	_, err = ParseRow("0")
	require.Error(t, err)

	_, err = ParseRow("1048577")
	require.Error(t, err)
}

func TestParseColumnOrRow(t *testing.T) {
	ref, err := ParseColumnOrRow("B")
	require.NoError(t, err)
	assert.Equal(t, AxisColumn, ref.Axis())
	assert.Equal(t, 1, ref.Index())

	ref, err = ParseColumnOrRow("$7")
	require.NoError(t, err)
	assert.Equal(t, AxisRow, ref.Axis())
	assert.Equal(t, 6, ref.Index())
	assert.True(t, ref.IsAbsolute())

	_, err = ParseColumnOrRow("1A")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Pos)
	assert.Equal(t, `Invalid character '1' at 0 in "1A"`, pe.Error())
}

func TestEqualIgnoringAbsolute(t *testing.T) {
	assert.True(t, EqualIgnoringAbsolute(NewColumn(1), NewColumn(1).SetAbsolute(true)))
	assert.False(t, EqualIgnoringAbsolute(NewColumn(1), NewRow(1)))
	assert.False(t, EqualIgnoringAbsolute(NewRow(1), NewRow(2)))
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{"A1", KindCell},
		{"$B$2", KindCell},
		{"A1:C3", KindCellRange},
		{"A", KindColumn},
		{"A:C", KindColumnRange},
		{"3", KindRow},
		{"1:4", KindRowRange},
		{"Total_Sales", KindLabel},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			selection, err := ParseSelection(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, selection.Kind())
			assert.Equal(t, tt.text, selection.String())
		})
	}
}

func TestParseSelection_RangeErrorOffset(t *testing.T) {
	_, err := ParseSelection("A1:B!")

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Pos)
	assert.Equal(t, "A1:B!", pe.Text)
}

func TestParseLabel(t *testing.T) {
	_, err := ParseLabel("A1")
	require.Error(t, err)

	_, err = ParseLabel("1abc")
	require.Error(t, err)

	label, err := ParseLabel("_hidden.total")
	require.NoError(t, err)
	assert.Equal(t, KindLabel, label.Kind())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "KindColumnRange", KindColumnRange.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, 8, KindTotal)
	assert.Equal(t, KindLabel, Kind(KindTotal-1))
	assert.Equal(t, "Kind(8)", Kind(KindTotal).String())
}
