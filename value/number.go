package value

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrArithmetic is the panic value (wrapped) raised when a number cannot be
// represented, for example a NaN double converted to a decimal.
var ErrArithmetic = errors.New("arithmetic error")

// NumberKind selects the backing representation of a Number.
type NumberKind int

const (
	NumberKindDecimal NumberKind = iota + 1 // fixed point, github.com/shopspring/decimal
	NumberKindDouble                        // binary floating point, float64
)

// ParseNumberKind accepts "decimal" or "double".
func ParseNumberKind(s string) (NumberKind, error) {
	switch s {
	case "decimal":
		return NumberKindDecimal, nil
	case "double":
		return NumberKindDouble, nil
	default:
		return 0, fmt.Errorf("unknown number kind %q, expected decimal or double", s)
	}
}

func (k NumberKind) String() string {
	switch k {
	case NumberKindDecimal:
		return "decimal"
	case NumberKindDouble:
		return "double"
	default:
		return "NumberKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Zero returns the zero of this kind.
func (k NumberKind) Zero() Number {
	return k.FromInt(0)
}

// One returns the one of this kind.
func (k NumberKind) One() Number {
	return k.FromInt(1)
}

func (k NumberKind) FromInt(i int64) Number {
	if k == NumberKindDouble {
		return Number{kind: NumberKindDouble, f: float64(i)}
	}

	return Number{kind: NumberKindDecimal, d: decimal.NewFromInt(i)}
}

func (k NumberKind) FromFloat(f float64) Number {
	if k == NumberKindDouble {
		return Number{kind: NumberKindDouble, f: f}
	}

	return Number{kind: NumberKindDecimal, d: decimalFromFloat(f)}
}

func (k NumberKind) FromDecimal(d decimal.Decimal) Number {
	if k == NumberKindDouble {
		return Number{kind: NumberKindDouble, f: d.InexactFloat64()}
	}

	return Number{kind: NumberKindDecimal, d: d}
}

// Number is an opaque spreadsheet number backed either by a decimal or a
// float64. The zero Number is a decimal zero.
type Number struct {
	kind NumberKind
	d    decimal.Decimal
	f    float64
}

// NewDecimal returns a decimal backed number.
func NewDecimal(d decimal.Decimal) Number {
	return Number{kind: NumberKindDecimal, d: d}
}

// NewDouble returns a float64 backed number.
func NewDouble(f float64) Number {
	return Number{kind: NumberKindDouble, f: f}
}

// Kind returns the backing kind.
func (n Number) Kind() NumberKind {
	if n.kind == 0 {
		return NumberKindDecimal
	}

	return n.kind
}

// SetKind returns the same quantity with a different backing kind.
func (n Number) SetKind(kind NumberKind) Number {
	if n.Kind() == kind {
		return n
	}

	if kind == NumberKindDouble {
		return NewDouble(n.Float64())
	}

	return NewDecimal(n.Decimal())
}

// Decimal returns the value as a decimal. It panics with an error wrapping
// ErrArithmetic for NaN or infinite doubles.
func (n Number) Decimal() decimal.Decimal {
	if n.Kind() == NumberKindDouble {
		return decimalFromFloat(n.f)
	}

	return n.d
}

// Float64 returns the nearest float64.
func (n Number) Float64() float64 {
	if n.Kind() == NumberKindDouble {
		return n.f
	}

	return n.d.InexactFloat64()
}

// Cmp compares two numbers, using float comparison when either is a double.
func (n Number) Cmp(other Number) int {
	if n.Kind() == NumberKindDouble || other.Kind() == NumberKindDouble {
		return cmp.Compare(n.Float64(), other.Float64())
	}

	return n.d.Cmp(other.d)
}

// Equal compares quantities, ignoring the backing kind.
func (n Number) Equal(other Number) bool {
	return n.Cmp(other) == 0
}

func (n Number) Sign() int {
	if n.Kind() == NumberKindDouble {
		switch {
		case n.f > 0:
			return 1
		case n.f < 0:
			return -1
		default:
			return 0
		}
	}

	return n.d.Sign()
}

func (n Number) IsZero() bool {
	return n.Sign() == 0
}

// IsInteger reports whether the number has no fractional part.
func (n Number) IsInteger() bool {
	if n.Kind() == NumberKindDouble {
		return !math.IsInf(n.f, 0) && n.f == math.Trunc(n.f)
	}

	return n.d.IsInteger()
}

// Add returns n+other; the result is a double when either operand is.
func (n Number) Add(other Number) Number {
	if n.Kind() == NumberKindDouble || other.Kind() == NumberKindDouble {
		return NewDouble(n.Float64() + other.Float64())
	}

	return NewDecimal(n.d.Add(other.d))
}

// Mul returns n*other; the result is a double when either operand is.
func (n Number) Mul(other Number) Number {
	if n.Kind() == NumberKindDouble || other.Kind() == NumberKindDouble {
		return NewDouble(n.Float64() * other.Float64())
	}

	return NewDecimal(n.d.Mul(other.d))
}

func (n Number) Neg() Number {
	if n.Kind() == NumberKindDouble {
		return NewDouble(-n.f)
	}

	return NewDecimal(n.d.Neg())
}

// Floor returns the largest integer not greater than n.
func (n Number) Floor() Number {
	if n.Kind() == NumberKindDouble {
		return NewDouble(math.Floor(n.f))
	}

	return NewDecimal(n.d.Floor())
}

// String returns the plain text form, without grouping or exponent.
func (n Number) String() string {
	if n.Kind() == NumberKindDouble {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}

	return n.d.String()
}

func decimalFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Errorf("%w: %v is not a finite number", ErrArithmetic, f))
	}

	return decimal.NewFromFloat(f)
}
