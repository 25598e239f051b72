package convert

import (
	"fmt"
	"reflect"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Converter converts values to a target type.
type Converter interface {
	// CanConvert reports whether Convert would succeed.
	CanConvert(v any, target reflect.Type, ctx Context) bool
	Convert(v any, target reflect.Type, ctx Context) Outcome
}

// Func adapts a function to a Converter. CanConvert runs the conversion and
// reports whether it succeeded.
type Func func(v any, target reflect.Type, ctx Context) Outcome

func (f Func) CanConvert(v any, target reflect.Type, ctx Context) bool {
	return f(v, target, ctx).IsSuccess()
}

func (f Func) Convert(v any, target reflect.Type, ctx Context) Outcome {
	return f(v, target, ctx)
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// To converts v with c and returns the result as a T. A successful nil
// result is the zero T.
func To[T any](c Converter, v any, ctx Context) (T, error) {
	var zero T

	out := c.Convert(v, TypeOf[T](), ctx)
	if !out.IsSuccess() {
		return zero, out.Err()
	}

	if out.Value() == nil {
		return zero, nil
	}

	t, ok := out.Value().(T)
	if !ok {
		return zero, fmt.Errorf("%w: converter returned %T, want %s", ErrConversionFailed, out.Value(), TypeOf[T]())
	}

	return t, nil
}

func unsupported(v any, target reflect.Type) Outcome {
	return Failure(unsupportedError(v, target))
}

func unsupportedError(v any, target reflect.Type) error {
	return fmt.Errorf("%w: %T to %v", ErrUnsupportedConversion, v, target)
}

// shortcut handles the cases that never need the matrix: any target, nil
// values and values that already have the target type.
func shortcut(v any, target reflect.Type, ctx Context) (Outcome, bool) {
	switch {
	case target == nil || target == value.AnyType:
		return Success(v), true
	case isNil(v):
		return missing(target, ctx), true
	case reflect.TypeOf(v) == target:
		return Success(v), true
	}

	return Outcome{}, false
}

// missing converts nil: numeric targets get the context missing number, all
// other targets get nil.
func missing(target reflect.Type, ctx Context) Outcome {
	category, ok := value.ClassifyType(target)
	if !ok || category != value.CategoryNumber {
		return Success(nil)
	}

	n, err := numberAs(ctx.MissingNumber(), target)
	if err != nil {
		return Failure(fmt.Errorf("%w: %w", ErrConversionFailed, err))
	}

	return Success(n)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	c, ok := v.(*value.Cell)
	return ok && c == nil
}
