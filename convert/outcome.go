package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedConversion marks a source and target pair with no
	// converter, for example Date to Time.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrConversionFailed marks a supported pair whose value could not be
	// converted, for example text that is not a number.
	ErrConversionFailed = errors.New("conversion failed")
)

// Outcome is the result of a conversion: a value or an error. The zero
// Outcome is a successful nil.
type Outcome struct {
	value any
	err   error
}

func Success(v any) Outcome {
	return Outcome{value: v}
}

// Failure returns a failed outcome. A nil err is replaced by
// ErrConversionFailed so the outcome still fails.
func Failure(err error) Outcome {
	if err == nil {
		err = ErrConversionFailed
	}

	return Outcome{err: err}
}

// Failuref returns a failure wrapping ErrConversionFailed.
func Failuref(format string, args ...any) Outcome {
	return Outcome{err: fmt.Errorf("%w: %s", ErrConversionFailed, fmt.Sprintf(format, args...))}
}

func (o Outcome) IsSuccess() bool { return o.err == nil }

// Value returns the converted value, nil on failure.
func (o Outcome) Value() any { return o.value }

func (o Outcome) Err() error { return o.err }

// Get returns the value and error together.
func (o Outcome) Get() (any, error) { return o.value, o.err }

func (o Outcome) String() string {
	if o.err != nil {
		return "failure(" + o.err.Error() + ")"
	}

	return fmt.Sprintf("success(%v)", o.value)
}
