package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/convert"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

func testContext() Context {
	return NewContext(convert.DefaultContext(), convert.General(convert.ErrorToText()))
}

func cell(v any) *value.Cell {
	return value.NewCell(reference.NewCell(0, 0), v)
}

func compile(t *testing.T, text string) *Compiled {
	t.Helper()

	spec, err := ParseSpec(text)
	require.NoError(t, err)

	compiled, err := spec.Compile(Provider(), testContext())
	require.NoError(t, err)

	return compiled
}

func TestCompiled_Compare(t *testing.T) {
	monday := value.NewDate(2024, time.January, 1)
	sunday := value.NewDate(2024, time.January, 7)

	tests := []struct {
		name        string
		spec        string
		left, right any
		expected    Ordering
	}{
		{"number", "A=number", 2, 10, Less},
		{"number reversed", "A=number-reversed", 2, 10, More},
		{"text from numbers", "A=text", 2, 10, More},
		{"number from text", "A=number", "2", "10", Less},
		{"text collation", "A=text", "apple", "Banana", Less},
		{"text case sensitive", "A=text", "abc", "ABC", Less},
		{"text case insensitive", "A=text-case-insensitive", "abc", "ABC", Equal},
		{"boolean", "A=boolean", false, true, Less},
		{"boolean from numbers", "A=boolean", 5, 0, More},
		{"date", "A=date", sunday, monday, More},
		{"date from serial", "A=date", 36526, value.NewDate(2000, time.January, 2), Less},
		{"date time", "A=date-time", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), More},
		{"time", "A=time", value.NewTime(8, 0, 0, 0), value.NewTime(9, 0, 0, 0), Less},
		{"year", "A=year", value.NewDate(1999, time.December, 31), monday, Less},
		{"month of year ignores year", "A=month-of-year", value.NewDate(2030, time.February, 1), value.NewDate(1990, time.March, 1), Less},
		{"day of month", "A=day-of-month", value.NewDate(2024, time.March, 5), value.NewDate(2000, time.January, 5), Equal},
		{"day of year", "A=day-of-year", value.NewDate(2024, time.February, 1), value.NewDate(2023, time.January, 31), More},
		{"day of week starts monday", "A=day-of-week", monday, sunday, Less},
		{"hour of day", "A=hour-of-day", value.NewTime(13, 0, 0, 0), value.NewTime(2, 0, 0, 0), More},
		{"hour of am pm", "A=hour-of-am-pm", value.NewTime(13, 0, 0, 0), value.NewTime(2, 0, 0, 0), Less},
		{"minute of hour", "A=minute-of-hour", value.NewTime(1, 30, 0, 0), value.NewTime(23, 29, 0, 0), More},
		{"seconds of minute", "A=seconds-of-minute", value.NewTime(1, 0, 5, 0), value.NewTime(1, 0, 5, 0), Equal},
		{"nano of second", "A=nano-of-second", value.NewTime(1, 0, 0, 1), value.NewTime(0, 0, 0, 2), Less},
		{"tie broken by second name", "A=day-of-month,month-of-year", value.NewDate(2024, time.March, 5), value.NewDate(2024, time.January, 5), More},
		{"all equal", "A=year,month-of-year", monday, value.NewDate(2024, time.January, 31), Equal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled := compile(t, tt.spec)
			got := compiled.Compare(cell(tt.left), cell(tt.right), testContext())
			assert.Equal(t, tt.expected, got, "%s %s", tt.spec, spew.Sdump(tt.left, tt.right))
		})
	}
}

func TestCompiled_MissingSortsLast(t *testing.T) {
	ctx := testContext()

	for _, spec := range []string{"A=number", "A=number-reversed"} {
		compiled := compile(t, spec)

		assert.Equal(t, More, compiled.Compare(nil, cell(1), ctx), spec)
		assert.Equal(t, Less, compiled.Compare(cell(1), nil, ctx), spec)
		assert.Equal(t, Equal, compiled.Compare(nil, nil, ctx), spec)
		assert.Equal(t, More, compiled.Compare(cell(nil), cell(1), ctx), spec)

		// text that is not a number is missing to a number comparator
		assert.Equal(t, More, compiled.Compare(cell("abc"), cell(1), ctx), spec)
		assert.Equal(t, Equal, compiled.Compare(cell("abc"), cell("xyz"), ctx), spec)
	}
}

func TestCompiled_MissingFallsThroughToNextName(t *testing.T) {
	compiled := compile(t, "A=number,text")

	got := compiled.Compare(cell("apple"), cell("banana"), testContext())
	assert.Equal(t, Less, got)
}

func TestCompiled_ErrorValues(t *testing.T) {
	div0 := value.NewError(value.ErrorDiv0, "")

	text := compile(t, "A=text")
	assert.Equal(t, Less, text.Compare(cell(div0), cell("a"), testContext()), "errors compare by display text")

	number := compile(t, "A=number")
	assert.Equal(t, More, number.Compare(cell(div0), cell(1), testContext()))

	zeros := NewContext(convert.DefaultContext(), convert.General(convert.ErrorToNumber()))
	assert.Equal(t, More, number.Compare(cell(value.NewError(value.ErrorNull, "")), cell(-1), zeros))

	core, logs := observer.New(zapcore.DebugLevel)
	base := convert.DefaultContext()
	base.Log = zap.New(core)
	throwing := NewContext(base, convert.General(convert.ErrorThrowing()))

	assert.Equal(t, More, number.Compare(cell(div0), cell(1), throwing))
	assert.Equal(t, Less, number.Compare(cell(1), cell(div0), throwing))
	assert.Equal(t, 2, logs.FilterMessage("error value sorts as missing").Len())

	assert.Equal(t, Less, text.Compare(cell(div0), cell("a"), throwing), "text still gets the display text")
}

func TestSpec_Compile_UnknownName(t *testing.T) {
	spec, err := ParseSpec("B=number,nunber")
	require.NoError(t, err)

	_, err = spec.Compile(Provider(), testContext())
	require.Error(t, err)
	assert.ErrorIs(t, err, plugin.ErrUnknownName)
	assert.Equal(t, "B: Unknown comparator nunber", err.Error())

	var unknown *plugin.UnknownNameError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"number"}, unknown.Suggestions)
}

func TestSpec_Compile_Aliases(t *testing.T) {
	aliases, err := plugin.NewAliasSet[Comparator](Provider(), plugin.Alias{
		Name:   plugin.MustName("amount"),
		Target: plugin.MustSelector("number"),
	})
	require.NoError(t, err)

	spec, err := ParseSpec("A=amount-reversed")
	require.NoError(t, err)

	compiled, err := spec.Compile(aliases, testContext())
	require.NoError(t, err)
	assert.Equal(t, More, compiled.Compare(cell(1), cell(2), testContext()))
	assert.Equal(t, "A=amount-reversed", compiled.String())
}

type testRow struct {
	id    string
	cells map[int]any
}

func (r testRow) cellAt(ref reference.ColumnOrRow) *value.Cell {
	v, ok := r.cells[ref.Index()]
	if !ok {
		return nil
	}

	return value.NewCell(reference.NewCell(ref.Index(), 0), v)
}

func ids(rows []testRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}

	return out
}

func TestSortRows(t *testing.T) {
	list, err := ParseSpecList("B=text;A=number-reversed")
	require.NoError(t, err)

	ctx := testContext()
	compiled, err := list.Compile(Provider(), ctx)
	require.NoError(t, err)

	rows := []testRow{
		{"r1", map[int]any{0: 1, 1: "pear"}},
		{"r2", map[int]any{0: 5, 1: "apple"}},
		{"r3", map[int]any{0: 9, 1: "pear"}},
		{"r4", map[int]any{0: 3}},
		{"r5", map[int]any{0: 2, 1: "Apple"}},
		{"r6", map[int]any{0: 5, 1: "apple"}},
		{"r7", map[int]any{1: "pear"}},
	}

	SortRows(rows, compiled, testRow.cellAt, ctx)

	assert.Equal(t, []string{"r2", "r6", "r5", "r3", "r1", "r7", "r4"}, ids(rows))
}

func TestCompiledList_Compare(t *testing.T) {
	list, err := ParseSpecList("1=number;2=text")
	require.NoError(t, err)

	ctx := testContext()
	compiled, err := list.Compile(Provider(), ctx)
	require.NoError(t, err)

	cells := func(values ...any) func(reference.ColumnOrRow) *value.Cell {
		return func(ref reference.ColumnOrRow) *value.Cell {
			return cell(values[ref.Index()])
		}
	}

	assert.Equal(t, Equal, compiled.Compare(cells(1, "a"), cells(1, "a"), ctx))
	assert.Equal(t, Less, compiled.Compare(cells(1, "a"), cells(1, "b"), ctx))
	assert.Equal(t, More, compiled.Compare(cells(2, "a"), cells(1, "b"), ctx))

	_, err = SpecList{{Reference: row(0)}}.Compile(Provider(), ctx)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, MissingName, pe.Kind)
}

func TestProvider(t *testing.T) {
	infos := Provider().Infos()
	require.Len(t, infos, 17)
	assert.Equal(t, "boolean", infos[0].Name.String())
	assert.Equal(t, "year", infos[len(infos)-1].Name.String())

	_, err := Provider().Resolve(plugin.MustSelector("text (1)"), testContext())
	assert.EqualError(t, err, "Comparator text should have no values")

	for _, info := range infos {
		c, err := Provider().ResolveName(info.Name, nil, testContext())
		require.NoError(t, err, info.Name)
		assert.NotNil(t, c.Type(), info.Name)
	}
}
