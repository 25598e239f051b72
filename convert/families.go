package convert

import (
	"fmt"
	"reflect"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// maxSerial is the serial day number of 9999-12-31, the last date a number
// may convert to.
const maxSerial = 2958465

// through normalizes the source with from, transforms the canonical value
// with to and represents the result as the target type.
func through[S any](from func(any, Context) (S, error), to func(S, Context) (any, error)) Converter {
	return TryOrFail(func(v any, target reflect.Type, ctx Context) (any, error) {
		s, err := from(v, ctx)
		if err != nil {
			return nil, err
		}

		c, err := to(s, ctx)
		if err != nil {
			return nil, err
		}

		return represent(c, target)
	})
}

// same converts between representations of one category.
func same[S any](from func(any, Context) (S, error)) Converter {
	return FirstOf(Cast(), through(from, func(s S, _ Context) (any, error) { return s, nil }))
}

// viaNumber converts through the canonical number, used for the
// non-zero-is-true boolean rule.
func viaNumber(toNumber Converter) Converter {
	return Sequence(toNumber, value.NumberType, numberToBoolean)
}

var (
	booleanToBoolean  = Named("Boolean->Boolean", same(boolOf))
	booleanToDate     = Named("Boolean->Date", through(boolOf, booleanDate))
	booleanToDateTime = Named("Boolean->DateTime", through(boolOf, booleanDateTime))
	booleanToNumber   = Named("Boolean->Number", through(boolOf, booleanNumber))
	booleanToText     = Named("Boolean->Text", through(boolOf, formatBoolean))
	booleanToTime     = Named("Boolean->Time", through(boolOf, booleanTime))

	dateToBoolean  = Named("Date->Boolean", viaNumber(dateToNumber))
	dateToDate     = Named("Date->Date", same(dateOf))
	dateToDateTime = Named("Date->DateTime", through(dateOf, dateMidnight))
	dateToNumber   = Named("Date->Number", through(dateOf, dateSerial))
	dateToText     = Named("Date->Text", through(dateOf, formatDate))
	dateToTime     = Unsupported("a date has no time of day")

	dateTimeToBoolean  = Named("DateTime->Boolean", viaNumber(dateTimeToNumber))
	dateTimeToDate     = Named("DateTime->Date", through(dateTimeOf, dateTimeDate))
	dateTimeToDateTime = Named("DateTime->DateTime", same(dateTimeOf))
	dateTimeToNumber   = Named("DateTime->Number", through(dateTimeOf, dateTimeSerial))
	dateTimeToText     = Named("DateTime->Text", through(dateTimeOf, formatDateTime))
	dateTimeToTime     = Named("DateTime->Time", through(dateTimeOf, dateTimeTime))

	numberToBoolean  = Named("Number->Boolean", through(numberOf, numberBoolean))
	numberToDate     = Named("Number->Date", through(numberOf, numberDate))
	numberToDateTime = Named("Number->DateTime", through(numberOf, numberDateTime))
	numberToNumber   = Named("Number->Number", same(numberOf))
	numberToText     = Named("Number->Text", through(numberOf, formatNumber))
	numberToTime     = Named("Number->Time", through(numberOf, numberTime))

	textToNumber   = Named("Text->Number", through(textOf, parseNumber))
	textToBoolean  = Named("Text->Boolean", FirstOf(through(textOf, parseBoolean), viaNumber(textToNumber)))
	textToDate     = Named("Text->Date", through(textOf, parseDate))
	textToDateTime = Named("Text->DateTime", through(textOf, parseDateTime))
	textToText     = Named("Text->Text", same(textOf))
	textToTime     = Named("Text->Time", through(textOf, parseTime))

	timeToBoolean  = Named("Time->Boolean", viaNumber(timeToNumber))
	timeToDate     = Unsupported("a time of day has no date")
	timeToDateTime = Named("Time->DateTime", through(timeOf, timeOnEpoch))
	timeToNumber   = Named("Time->Number", through(timeOf, timeFraction))
	timeToText     = Named("Time->Text", through(timeOf, formatTime))
	timeToTime     = Named("Time->Time", same(timeOf))
)

// Boolean values map to fixed canonical values: true is serial day 1, one
// second past midnight or the number 1; false is day 0, midnight or 0.

func booleanNumber(b bool, ctx Context) (any, error) {
	if b {
		return ctx.NumberKind().One(), nil
	}

	return ctx.NumberKind().Zero(), nil
}

func booleanDate(b bool, ctx Context) (any, error) {
	return value.DateFromSerial(boolSerial(b), ctx.DateOffset()), nil
}

func booleanDateTime(b bool, ctx Context) (any, error) {
	return value.DateFromSerial(boolSerial(b), ctx.DateOffset()).Time(), nil
}

func booleanTime(b bool, _ Context) (any, error) {
	if b {
		return value.NewTime(0, 0, 1, 0), nil
	}

	return value.Time{}, nil
}

func boolSerial(b bool) int64 {
	if b {
		return 1
	}

	return 0
}

func numberBoolean(n value.Number, _ Context) (any, error) {
	return !n.IsZero(), nil
}

func dateMidnight(d value.Date, _ Context) (any, error) {
	return d.Time(), nil
}

func dateSerial(d value.Date, ctx Context) (any, error) {
	return ctx.NumberKind().FromInt(d.Serial(ctx.DateOffset())), nil
}

func dateTimeDate(t time.Time, _ Context) (any, error) {
	return value.DateOf(t), nil
}

func dateTimeTime(t time.Time, _ Context) (any, error) {
	return value.TimeOf(t), nil
}

func dateTimeSerial(t time.Time, ctx Context) (any, error) {
	kind := ctx.NumberKind()
	days := kind.FromInt(value.DateOf(t).Serial(ctx.DateOffset()))

	return days.Add(value.TimeOf(t).FractionOfDay(kind)), nil
}

func numberDate(n value.Number, ctx Context) (any, error) {
	serial, err := serialDays(n)
	if err != nil {
		return nil, err
	}

	return value.DateFromSerial(serial, ctx.DateOffset()), nil
}

func numberDateTime(n value.Number, ctx Context) (any, error) {
	serial, err := serialDays(n)
	if err != nil {
		return nil, err
	}

	return value.DateFromSerial(serial, ctx.DateOffset()).At(value.TimeFromFraction(n)), nil
}

func numberTime(n value.Number, _ Context) (any, error) {
	return value.TimeFromFraction(n), nil
}

func serialDays(n value.Number) (int64, error) {
	d := n.Floor().Decimal()
	if d.Abs().GreaterThan(decimal.NewFromInt(maxSerial)) {
		return 0, fmt.Errorf("%w: %s is outside the date range", value.ErrArithmetic, n)
	}

	return d.IntPart(), nil
}

func timeOnEpoch(t value.Time, ctx Context) (any, error) {
	return value.DateFromSerial(0, ctx.DateOffset()).At(t), nil
}

func timeFraction(t value.Time, ctx Context) (any, error) {
	return t.FractionOfDay(ctx.NumberKind()), nil
}
