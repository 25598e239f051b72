package compare

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

func asc(name string) NameAndDirection {
	return NameAndDirection{Name: plugin.MustName(name), Direction: Ascending}
}

func desc(name string) NameAndDirection {
	return NameAndDirection{Name: plugin.MustName(name), Direction: Descending}
}

func column(index int) reference.Column {
	return reference.NewColumn(index)
}

func row(index int) reference.Row {
	return reference.NewRow(index)
}

func TestParseNameAndDirection(t *testing.T) {
	tests := []struct {
		text     string
		expected NameAndDirection
	}{
		{"text", asc("text")},
		{"text-reversed", desc("text")},
		{"day-of-month-reversed", desc("day-of-month")},
		{"number-reversed-reversed", desc("number-reversed")},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n, err := ParseNameAndDirection(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
			assert.Equal(t, tt.text, n.String())
		})
	}

	_, err := ParseNameAndDirection("-reversed")
	assert.ErrorIs(t, err, plugin.ErrInvalidName)
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		text     string
		expected Spec
	}{
		{"A=number,text", Spec{Reference: column(0), Names: []NameAndDirection{asc("number"), asc("text")}}},
		{"$B=text-reversed", Spec{Reference: column(1).SetAbsolute(true), Names: []NameAndDirection{desc("text")}}},
		{"12=date", Spec{Reference: row(11), Names: []NameAndDirection{asc("date")}}},
		{"xfd=year,month-of-year-reversed", Spec{Reference: column(reference.MaxColumns - 1), Names: []NameAndDirection{asc("year"), desc("month-of-year")}}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			spec, err := ParseSpec(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, spec, spew.Sdump(spec))
		})
	}
}

func TestSpec_StringRoundTrip(t *testing.T) {
	for _, text := range []string{"A=number,text", "$A=text-reversed", "$7=time,nano-of-second-reversed"} {
		spec, err := ParseSpec(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, spec.String())

		again, err := ParseSpec(spec.String())
		require.NoError(t, err)
		assert.Equal(t, spec, again)
	}

	lower, err := ParseSpec("ab=text")
	require.NoError(t, err)
	assert.Equal(t, "AB=text", lower.String())
}

func TestParseSpec_Errors(t *testing.T) {
	tests := []struct {
		text    string
		kind    ParseErrorKind
		pos     int
		message string
	}{
		{"", Empty, 0, "Missing column or row"},
		{"A", MissingAssignment, 1, "Missing '='"},
		{"A=", MissingName, 2, "Missing comparator name"},
		{"A=number,", MissingName, 9, "Missing comparator name"},
		{"1A=number", InvalidCharacter, 0, "Invalid character '1'"},
		{"A1=number", InvalidCharacter, 1, "Invalid character '1'"},
		{"0=number", InvalidCharacter, 0, "Invalid character '0'"},
		{"=number", InvalidCharacter, 0, "Invalid character '='"},
		{"A=1number", InvalidCharacter, 2, "Invalid character '1'"},
		{"A=-reversed", InvalidCharacter, 2, "Invalid character '-'"},
		{"A=number;B=text", InvalidCharacter, 8, "Invalid character ';'"},
		{"A=num ber", InvalidCharacter, 5, "Invalid character ' '"},
		{"A=numbér", InvalidCharacter, 6, "Invalid character 'é'"},
		{"XFE=text", InvalidCharacter, 0, `Invalid column "XFE" > XFD`},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseSpec(tt.text)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), spew.Sdump(err))
			assert.Equal(t, tt.kind, pe.Kind, pe.Kind.String())
			assert.Equal(t, tt.pos, pe.Pos)
			assert.Equal(t, tt.message, pe.Message)
			assert.Equal(t, tt.text, pe.Text)
		})
	}
}

func TestParseSpecList(t *testing.T) {
	list, err := ParseSpecList("A=number;B=text-reversed,date")
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, Spec{Reference: column(0), Names: []NameAndDirection{asc("number")}}, list[0])
	assert.Equal(t, Spec{Reference: column(1), Names: []NameAndDirection{desc("text"), asc("date")}}, list[1])
	assert.Equal(t, "A=number;B=text-reversed,date", list.String())

	rows, err := ParseSpecList("3=text;1=number")
	require.NoError(t, err)
	assert.Equal(t, "3=text;1=number", rows.String())
}

func TestParseSpecList_Errors(t *testing.T) {
	tests := []struct {
		text    string
		kind    ParseErrorKind
		pos     int
		message string
	}{
		{"", Empty, 0, "Missing column or row"},
		{"A=number;", Empty, 9, "Missing column or row after ';'"},
		{"A=number;;", InvalidCharacter, 9, "Invalid character ';'"},
		{"A=number;B", MissingAssignment, 10, "Missing '='"},
		{"A=text;2=number", MixedAxis, 7, "Expected column but got row 2"},
		{"1=text;A=number", MixedAxis, 7, "Expected row but got column A"},
		{"A=text;$A=number", DuplicateReference, 7, "Duplicate column $A"},
		{"A=text;B=date;b=time", DuplicateReference, 14, "Duplicate column B"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseSpecList(tt.text)
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe), spew.Sdump(err))
			assert.Equal(t, tt.kind, pe.Kind, pe.Kind.String())
			assert.Equal(t, tt.pos, pe.Pos)
			assert.Equal(t, tt.message, pe.Message)
		})
	}
}

func TestNewSpec(t *testing.T) {
	_, err := NewSpec(nil, asc("text"))
	assert.Equal(t, "Missing column or row", err.Error())

	_, err = NewSpec(column(0))
	assert.Equal(t, "Missing comparator name for A", err.Error())

	names := []NameAndDirection{asc("text")}
	spec, err := NewSpec(column(0), names...)
	require.NoError(t, err)

	names[0] = desc("number")
	assert.Equal(t, "A=text", spec.String())
}

func TestNewSpecList(t *testing.T) {
	a, _ := NewSpec(column(0), asc("text"))
	b, _ := NewSpec(column(1), asc("number"))
	r, _ := NewSpec(row(0), asc("number"))

	list, err := NewSpecList(a, b)
	require.NoError(t, err)
	assert.Equal(t, "A=text;B=number", list.String())

	_, err = NewSpecList(a, r)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, MixedAxis, pe.Kind)
	assert.Equal(t, -1, pe.Pos)
	assert.Equal(t, "Expected column but got row 1", err.Error())

	_, err = NewSpecList(a, Spec{Reference: column(0).SetAbsolute(true), Names: b.Names})
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, DuplicateReference, pe.Kind)

	_, err = NewSpecList(a, Spec{Reference: column(2)})
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, Empty, pe.Kind)
	assert.Equal(t, "Entry 2 is incomplete", pe.Message)
}

func TestParseErrorKind_Total(t *testing.T) {
	assert.Equal(t, 7, ParseErrorKindTotal)
	assert.Equal(t, MixedAxis, ParseErrorKind(ParseErrorKindTotal-1))

	for k := ParseErrorKind(1); int(k) < ParseErrorKindTotal; k++ {
		assert.NotContains(t, k.String(), "ParseErrorKind(")
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := ParseSpec("A=")
	assert.Equal(t, `Missing comparator name at 2 in "A="`, err.Error())
	assert.Equal(t, "MissingName", MissingName.String())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Flip())
	assert.Equal(t, Ascending, Descending.Flip())
	assert.Equal(t, Less, Ascending.Apply(Less))
	assert.Equal(t, More, Descending.Apply(Less))
	assert.Equal(t, Equal, Descending.Apply(Equal))
	assert.Equal(t, "Descending", Descending.String())
	assert.Equal(t, 3, DirectionTotal)
	assert.Equal(t, Descending, Direction(DirectionTotal-1))
	assert.Equal(t, "Direction(3)", Direction(DirectionTotal).String())
}

func TestOrdering(t *testing.T) {
	assert.Equal(t, Less, OrderingOf(-7))
	assert.Equal(t, Equal, OrderingOf(0))
	assert.Equal(t, More, OrderingOf(3))
	assert.Equal(t, More, Less.Reverse())
	assert.Equal(t, "LESS", Less.String())
	assert.Equal(t, "EQUAL", Equal.String())
}
