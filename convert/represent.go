package convert

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/timeofday"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

var (
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	bigFloatType = reflect.TypeOf((*big.Float)(nil))
	bigRatType   = reflect.TypeOf((*big.Rat)(nil))
)

// Each category has one canonical Go type that conversions work in:
// bool, value.Date, time.Time, value.Number, string and value.Time. The
// functions below normalize any representation of a category to its
// canonical type, and represent turns a canonical value into the
// representation a caller asked for.

func boolOf(v any, _ Context) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a boolean", ErrUnsupportedConversion, v)
	}

	return b, nil
}

// textOf is the single normalization step for text: a Character is a one
// character string.
func textOf(v any, _ Context) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case value.Character:
		return s.String(), nil
	default:
		return "", fmt.Errorf("%w: %T is not text", ErrUnsupportedConversion, v)
	}
}

func dateOf(v any, _ Context) (value.Date, error) {
	switch d := v.(type) {
	case value.Date:
		return d, nil
	case *date.Date:
		return value.DateFromProto(d)
	default:
		return value.Date{}, fmt.Errorf("%w: %T is not a date", ErrUnsupportedConversion, v)
	}
}

func dateTimeOf(v any, _ Context) (time.Time, error) {
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %T is not a date time", ErrUnsupportedConversion, v)
	}

	return t, nil
}

func timeOf(v any, _ Context) (value.Time, error) {
	switch t := v.(type) {
	case value.Time:
		return t, nil
	case *timeofday.TimeOfDay:
		return value.TimeFromProto(t)
	default:
		return value.Time{}, fmt.Errorf("%w: %T is not a time", ErrUnsupportedConversion, v)
	}
}

// numberOf accepts every representation of the Number category. Numbers
// other than value.Number are created with the context number kind.
func numberOf(v any, ctx Context) (value.Number, error) {
	kind := ctx.NumberKind()

	switch n := v.(type) {
	case value.Number:
		return n, nil
	case decimal.Decimal:
		return kind.FromDecimal(n), nil
	case *big.Int:
		return kind.FromDecimal(decimal.NewFromBigInt(n, 0)), nil
	case *big.Float:
		if n.IsInf() {
			return value.Number{}, fmt.Errorf("%w: %v is not a finite number", value.ErrArithmetic, n)
		}
		return parseDecimal(n.Text('g', -1), kind)
	case *big.Rat:
		return parseDecimal(n.FloatString(decimal.DivisionPrecision), kind)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kind.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kind.FromDecimal(decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)), nil
	case reflect.Float32:
		return parseDecimal(strconv.FormatFloat(rv.Float(), 'g', -1, 32), kind)
	case reflect.Float64:
		return kind.FromFloat(rv.Float()), nil
	default:
		return value.Number{}, fmt.Errorf("%w: %T is not a number", ErrUnsupportedConversion, v)
	}
}

func parseDecimal(s string, kind value.NumberKind) (value.Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return value.Number{}, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	return kind.FromDecimal(d), nil
}

// represent returns a canonical value as the requested target type of the
// same category.
func represent(canonical any, target reflect.Type) (any, error) {
	if target == nil || target == value.AnyType {
		return canonical, nil
	}

	switch c := canonical.(type) {
	case bool:
		if target == value.BoolType {
			return c, nil
		}
	case string:
		return textAs(c, target)
	case value.Number:
		return numberAs(c, target)
	case value.Date:
		switch target {
		case value.DateType:
			return c, nil
		case value.ProtoDateType:
			return c.Proto(), nil
		}
	case value.Time:
		switch target {
		case value.TimeType:
			return c, nil
		case value.ProtoTimeType:
			return c.Proto(), nil
		}
	case time.Time:
		if target == value.DateTimeType {
			return c, nil
		}
	}

	if reflect.TypeOf(canonical).AssignableTo(target) {
		return canonical, nil
	}

	return nil, unsupportedError(canonical, target)
}

func textAs(s string, target reflect.Type) (any, error) {
	switch target {
	case value.StringType:
		return s, nil
	case value.CharacterType:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return nil, fmt.Errorf("%w: %q is not a single character", ErrConversionFailed, s)
		}
		return value.Character(r), nil
	}

	if value.StringType.AssignableTo(target) {
		return s, nil
	}

	return nil, unsupportedError(s, target)
}

// numberAs converts a number to any numeric representation. Fractions and
// out of range values for integer targets are arithmetic errors.
func numberAs(n value.Number, target reflect.Type) (any, error) {
	switch target {
	case value.NumberType:
		return n, nil
	case value.DecimalType:
		return n.Decimal(), nil
	case bigIntType:
		if !n.IsInteger() {
			return nil, notInteger(n)
		}
		return n.Decimal().BigInt(), nil
	case bigFloatType:
		f, _, err := big.ParseFloat(n.Decimal().String(), 10, 128, big.ToNearestEven)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", value.ErrArithmetic, err)
		}
		return f, nil
	case bigRatType:
		return n.Decimal().Rat(), nil
	}

	rv := reflect.New(target).Elem()

	switch target.Kind() {
	case reflect.Float32, reflect.Float64:
		f := n.Float64()
		if rv.OverflowFloat(f) {
			return nil, overflow(n, target)
		}
		rv.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsInteger() {
			return nil, notInteger(n)
		}
		i := n.Decimal().BigInt()
		if !i.IsInt64() || rv.OverflowInt(i.Int64()) {
			return nil, overflow(n, target)
		}
		rv.SetInt(i.Int64())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if !n.IsInteger() {
			return nil, notInteger(n)
		}
		i := n.Decimal().BigInt()
		if !i.IsUint64() || rv.OverflowUint(i.Uint64()) {
			return nil, overflow(n, target)
		}
		rv.SetUint(i.Uint64())
	default:
		if value.NumberType.AssignableTo(target) {
			return n, nil
		}
		return nil, unsupportedError(n, target)
	}

	return rv.Interface(), nil
}

func notInteger(n value.Number) error {
	return fmt.Errorf("%w: %s is not an integer", value.ErrArithmetic, n)
}

func overflow(n value.Number, target reflect.Type) error {
	return fmt.Errorf("%w: %s overflows %s", value.ErrArithmetic, n, target)
}
