package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Identity succeeds when the value already has the target type.
func Identity() Converter { return identity{} }

type identity struct{}

func (identity) CanConvert(v any, target reflect.Type, _ Context) bool {
	return v != nil && reflect.TypeOf(v) == target
}

func (i identity) Convert(v any, target reflect.Type, ctx Context) Outcome {
	if !i.CanConvert(v, target, ctx) {
		return unsupported(v, target)
	}

	return Success(v)
}

func (identity) String() string { return "identity" }

// Cast succeeds when the value is assignable to the target type unchanged,
// for example any value to an interface it implements.
func Cast() Converter { return cast{} }

type cast struct{}

func (cast) CanConvert(v any, target reflect.Type, _ Context) bool {
	if target == nil || target == value.AnyType {
		return true
	}

	return v != nil && reflect.TypeOf(v).AssignableTo(target)
}

func (c cast) Convert(v any, target reflect.Type, ctx Context) Outcome {
	if !c.CanConvert(v, target, ctx) {
		return unsupported(v, target)
	}

	return Success(v)
}

func (cast) String() string { return "cast" }

// Sequence converts with first to intermediate, then with second from
// there to the target.
func Sequence(first Converter, intermediate reflect.Type, second Converter) Converter {
	return sequence{first: first, intermediate: intermediate, second: second}
}

type sequence struct {
	first        Converter
	intermediate reflect.Type
	second       Converter
}

func (s sequence) CanConvert(v any, target reflect.Type, ctx Context) bool {
	return s.Convert(v, target, ctx).IsSuccess()
}

func (s sequence) Convert(v any, target reflect.Type, ctx Context) Outcome {
	out := s.first.Convert(v, s.intermediate, ctx)
	if !out.IsSuccess() {
		return out
	}

	return s.second.Convert(out.Value(), target, ctx)
}

func (s sequence) String() string {
	return fmt.Sprintf("%v then %v", s.first, s.second)
}

// FirstOf tries each converter in order and returns the first success. When
// all fail the error of the last one is returned.
func FirstOf(converters ...Converter) Converter {
	return firstOf(converters)
}

type firstOf []Converter

func (f firstOf) CanConvert(v any, target reflect.Type, ctx Context) bool {
	for _, c := range f {
		if c.CanConvert(v, target, ctx) {
			return true
		}
	}

	return false
}

func (f firstOf) Convert(v any, target reflect.Type, ctx Context) Outcome {
	out := unsupported(v, target)

	for _, c := range f {
		out = c.Convert(v, target, ctx)
		if out.IsSuccess() {
			return out
		}
	}

	return out
}

func (f firstOf) String() string {
	names := make([]string, len(f))
	for i, c := range f {
		names[i] = fmt.Sprint(c)
	}

	return "first of (" + strings.Join(names, ", ") + ")"
}

// Body is the function run by TryOrFail. Returning an error fails the
// conversion.
type Body func(v any, target reflect.Type, ctx Context) (any, error)

// DefaultAllowed lists the panic errors TryOrFail recovers when called
// without an allow list.
var DefaultAllowed = []error{value.ErrArithmetic}

// TryOrFail runs body. Returned errors become failures, as do panics whose
// value is an error matching one of allow (errors.Is). Any other panic is
// not recovered.
func TryOrFail(body Body, allow ...error) Converter {
	if len(allow) == 0 {
		allow = DefaultAllowed
	}

	return tryOrFail{body: body, allow: allow}
}

type tryOrFail struct {
	body  Body
	allow []error
}

func (t tryOrFail) CanConvert(v any, target reflect.Type, ctx Context) bool {
	return t.Convert(v, target, ctx).IsSuccess()
}

func (t tryOrFail) Convert(v any, target reflect.Type, ctx Context) (out Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err, ok := r.(error)
		if !ok || !t.allowed(err) {
			panic(r)
		}

		out = t.fail(v, target, ctx, err)
	}()

	result, err := t.body(v, target, ctx)
	if err != nil {
		return t.fail(v, target, ctx, err)
	}

	return Success(result)
}

func (t tryOrFail) allowed(err error) bool {
	for _, a := range t.allow {
		if errors.Is(err, a) {
			return true
		}
	}

	return false
}

func (t tryOrFail) fail(v any, target reflect.Type, ctx Context, err error) Outcome {
	ctx.Logger().Debug("conversion failed",
		zap.String("source", fmt.Sprintf("%T", v)),
		zap.Stringer("target", target),
		zap.Error(err),
	)

	if errors.Is(err, ErrUnsupportedConversion) || errors.Is(err, ErrConversionFailed) {
		return Failure(err)
	}

	return Failure(fmt.Errorf("%w: %w", ErrConversionFailed, err))
}

func (tryOrFail) String() string { return "try" }

// Unsupported never converts. It marks matrix cells that are deliberately
// empty, such as Date to Time.
func Unsupported(reason string) Converter {
	return unsupportedConverter{reason: reason}
}

type unsupportedConverter struct {
	reason string
}

func (unsupportedConverter) CanConvert(any, reflect.Type, Context) bool { return false }

func (u unsupportedConverter) Convert(v any, target reflect.Type, _ Context) Outcome {
	return Failure(fmt.Errorf("%w: %T to %v: %s", ErrUnsupportedConversion, v, target, u.reason))
}

func (u unsupportedConverter) String() string { return "unsupported: " + u.reason }

// Named attaches a name to c, used by String and diagnostics.
func Named(name string, c Converter) Converter {
	return named{name: name, Converter: c}
}

type named struct {
	name string
	Converter
}

func (n named) String() string { return n.name }

// Unwrap returns the named converter.
func (n named) Unwrap() Converter { return n.Converter }

// unwrap strips Named layers.
func unwrap(c Converter) Converter {
	for {
		u, ok := c.(interface{ Unwrap() Converter })
		if !ok {
			return c
		}

		c = u.Unwrap()
	}
}
