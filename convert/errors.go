package convert

import (
	"reflect"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// PropagatedError is the panic value raised by the throwing error
// converter. It carries the spreadsheet error so an evaluator can recover
// it with CatchPropagated and use it as the result.
type PropagatedError struct {
	Value value.Error
}

func (e *PropagatedError) Error() string {
	return "propagated spreadsheet error " + e.Value.Error()
}

// CatchPropagated runs fn. If fn panics with a *PropagatedError the error
// value becomes a successful outcome and is also returned; any other panic
// continues.
func CatchPropagated(fn func() Outcome) (out Outcome, propagated *value.Error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		p, ok := r.(*PropagatedError)
		if !ok {
			panic(r)
		}

		out, propagated = Success(p.Value), &p.Value
	}()

	return fn(), nil
}

func errorOf(v any) (value.Error, bool) {
	switch e := v.(type) {
	case value.Error:
		return e, true
	case *value.Error:
		if e != nil {
			return *e, true
		}
	}

	return value.Error{}, false
}

func targetIs(target reflect.Type, category value.Category) bool {
	c, ok := value.ClassifyType(target)
	return ok && c == category
}

// ErrorToText converts an error to the display text of its kind, "#REF!"
// for example.
func ErrorToText() Converter {
	return Named("error-to-text", Func(func(v any, target reflect.Type, _ Context) Outcome {
		e, ok := errorOf(v)
		if !ok || !targetIs(target, value.CategoryText) {
			return unsupported(v, target)
		}

		s, err := textAs(e.Text(), target)
		if err != nil {
			return Failure(err)
		}

		return Success(s)
	}))
}

// ErrorToNumber converts a missing cell or #NULL! error to the zero of the
// context number kind. Other errors are unsupported.
func ErrorToNumber() Converter {
	return Named("error-to-number", Func(func(v any, target reflect.Type, ctx Context) Outcome {
		e, ok := errorOf(v)
		if !ok || !targetIs(target, value.CategoryNumber) || !(e.IsMissingCell() || e.Kind == value.ErrorNull) {
			return unsupported(v, target)
		}

		n, err := numberAs(ctx.NumberKind().Zero(), target)
		if err != nil {
			return Failure(err)
		}

		return Success(n)
	}))
}

// ErrorThrowing panics with a *PropagatedError for every error value, after
// naming the cell of a missing cell error. It never produces a value, so
// CanConvert always reports false. Recover with CatchPropagated.
func ErrorThrowing() Converter {
	return errorThrowing{}
}

type errorThrowing struct{}

func (errorThrowing) CanConvert(any, reflect.Type, Context) bool {
	return false
}

func (errorThrowing) Convert(v any, target reflect.Type, _ Context) Outcome {
	e, ok := errorOf(v)
	if !ok {
		return unsupported(v, target)
	}

	panic(&PropagatedError{Value: e.SetNameString()})
}

func (errorThrowing) String() string { return "error-throwing" }

// errorFamily converts Error values: text targets always get the display
// text, everything else goes to policy, which is ErrorToNumber or
// ErrorThrowing.
func errorFamily(policy Converter) Converter {
	return FirstOf(Cast(), ErrorToText(), policy)
}
