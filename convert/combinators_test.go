package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

func constant(v any) Converter {
	return Func(func(any, reflect.Type, Context) Outcome { return Success(v) })
}

func failing(msg string) Converter {
	return Func(func(any, reflect.Type, Context) Outcome { return Failuref("%s", msg) })
}

func TestIdentity(t *testing.T) {
	ctx := DefaultContext()

	out := Identity().Convert(1, value.IntType, ctx)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 1, out.Value())

	out = Identity().Convert(1, value.Float64Type, ctx)
	assert.ErrorIs(t, out.Err(), ErrUnsupportedConversion)
	assert.False(t, Identity().CanConvert(nil, value.IntType, ctx))
}

func TestCast(t *testing.T) {
	ctx := DefaultContext()

	out := Cast().Convert(reference.NewColumn(0), value.SelectionType, ctx)
	require.True(t, out.IsSuccess())

	assert.True(t, Cast().CanConvert("x", value.AnyType, ctx))
	assert.False(t, Cast().CanConvert("x", value.IntType, ctx))
}

func TestSequence(t *testing.T) {
	ctx := DefaultContext()
	c := Sequence(booleanToNumber, value.NumberType, numberToText)

	s, err := To[string](c, true, ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", s)

	out := Sequence(failing("first"), value.NumberType, constant("never")).Convert(true, value.StringType, ctx)
	assert.EqualError(t, out.Err(), "conversion failed: first")
}

func TestFirstOf(t *testing.T) {
	ctx := DefaultContext()

	out := FirstOf(Unsupported("no"), constant("b"), constant("c")).Convert(1, value.StringType, ctx)
	require.True(t, out.IsSuccess())
	assert.Equal(t, "b", out.Value())

	c := FirstOf(failing("one"), failing("two"))
	out = c.Convert(1, value.StringType, ctx)
	assert.EqualError(t, out.Err(), "conversion failed: two")
	assert.False(t, c.CanConvert(1, value.StringType, ctx))

	out = FirstOf().Convert(1, value.StringType, ctx)
	assert.ErrorIs(t, out.Err(), ErrUnsupportedConversion)
}

func TestTryOrFail(t *testing.T) {
	ctx := DefaultContext()

	panicking := func(v any) Body {
		return func(any, reflect.Type, Context) (any, error) { panic(v) }
	}

	out := TryOrFail(panicking(fmt.Errorf("%w: boom", value.ErrArithmetic))).Convert(1, value.IntType, ctx)
	require.False(t, out.IsSuccess())
	assert.ErrorIs(t, out.Err(), value.ErrArithmetic)
	assert.ErrorIs(t, out.Err(), ErrConversionFailed)

	assert.Panics(t, func() {
		TryOrFail(panicking(errors.New("not allowed"))).Convert(1, value.IntType, ctx)
	})
	assert.PanicsWithValue(t, "text", func() {
		TryOrFail(panicking("text")).Convert(1, value.IntType, ctx)
	})

	_, err := strconv.Atoi("x")
	out = TryOrFail(panicking(err), strconv.ErrSyntax).Convert(1, value.IntType, ctx)
	assert.ErrorIs(t, out.Err(), strconv.ErrSyntax)

	out = TryOrFail(func(any, reflect.Type, Context) (any, error) { return nil, errors.New("plain") }).Convert(1, value.IntType, ctx)
	assert.ErrorIs(t, out.Err(), ErrConversionFailed)
	assert.EqualError(t, out.Err(), "conversion failed: plain")
}

func TestTryOrFail_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := DefaultContext()
	ctx.Log = zap.New(core)

	out := textToNumber.Convert("abc", value.NumberType, ctx)
	require.False(t, out.IsSuccess())

	entries := logs.FilterMessage("conversion failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "string", entries[0].ContextMap()["source"])
	assert.Equal(t, "value.Number", entries[0].ContextMap()["target"])
}

func TestUnsupported(t *testing.T) {
	ctx := DefaultContext()
	c := Unsupported("a date has no time of day")

	assert.False(t, c.CanConvert(value.NewDate(2000, 1, 1), value.TimeType, ctx))

	out := c.Convert(value.NewDate(2000, 1, 1), value.TimeType, ctx)
	assert.ErrorIs(t, out.Err(), ErrUnsupportedConversion)
	assert.Contains(t, out.Err().Error(), "a date has no time of day")
}

func TestNamed(t *testing.T) {
	c := Named("custom", Identity())
	assert.Equal(t, "custom", fmt.Sprint(c))
	assert.Equal(t, Identity(), unwrap(c))
	assert.Equal(t, "first of (identity, cast)", fmt.Sprint(FirstOf(Identity(), Cast())))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success(1)", Success(1).String())
	assert.True(t, Outcome{}.IsSuccess())

	f := Failure(nil)
	assert.ErrorIs(t, f.Err(), ErrConversionFailed)
	assert.Equal(t, "failure(conversion failed)", f.String())

	v, err := Success("x").Get()
	assert.Equal(t, "x", v)
	assert.NoError(t, err)
}

func TestTo_WrongType(t *testing.T) {
	_, err := To[int](constant("text"), 1, DefaultContext())
	assert.ErrorIs(t, err, ErrConversionFailed)
}
