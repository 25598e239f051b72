package value

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/timeofday"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
)

// Character is a single character of text. It converts exactly like a one
// character string.
type Character rune

func (c Character) String() string {
	return string(rune(c))
}

// Representative types, usable as conversion targets.
var (
	AnyType       = reflect.TypeOf((*any)(nil)).Elem()
	BoolType      = reflect.TypeOf(false)
	StringType    = reflect.TypeOf("")
	CharacterType = reflect.TypeOf(Character(0))
	DateType      = reflect.TypeOf(Date{})
	DateTimeType  = reflect.TypeOf(time.Time{})
	TimeType      = reflect.TypeOf(Time{})
	NumberType    = reflect.TypeOf(Number{})
	DecimalType   = reflect.TypeOf(decimal.Decimal{})
	Float64Type   = reflect.TypeOf(float64(0))
	IntType       = reflect.TypeOf(0)
	ErrorType     = reflect.TypeOf(Error{})
	CellType      = reflect.TypeOf((*Cell)(nil))

	SelectionType = reflect.TypeOf((*reference.Selection)(nil)).Elem()
	ColumnType    = reflect.TypeOf(reference.Column{})
	RowType       = reflect.TypeOf(reference.Row{})
	CellRefType   = reflect.TypeOf(reference.Cell{})

	ProtoDateType = reflect.TypeOf((*date.Date)(nil))
	ProtoTimeType = reflect.TypeOf((*timeofday.TimeOfDay)(nil))

	errorPtrType  = reflect.TypeOf((*Error)(nil))
	cellValueType = reflect.TypeOf(Cell{})
	bigIntType    = reflect.TypeOf((*big.Int)(nil))
	bigFloatType  = reflect.TypeOf((*big.Float)(nil))
	bigRatType    = reflect.TypeOf((*big.Rat)(nil))
)

// Classify returns the category of a runtime value. It panics when the
// value fits no category: callers must filter unsupported values first.
func Classify(v any) Category {
	category, ok := TryClassify(v)
	if !ok {
		panic(fmt.Sprintf("value %v of type %T has no category", v, v))
	}

	return category
}

// TryClassify is Classify without the panic.
func TryClassify(v any) (Category, bool) {
	switch x := v.(type) {
	case nil:
		return CategoryNull, true
	case *Cell:
		if x == nil {
			return CategoryNull, true
		}
		return CategoryCell, true
	case Cell:
		return CategoryCell, true
	case Error, *Error:
		return CategoryError, true
	case reference.Selection:
		return CategorySelection, true
	case bool:
		return CategoryBoolean, true
	case string, Character:
		return CategoryText, true
	case Date, *date.Date:
		return CategoryDate, true
	case time.Time:
		return CategoryDateTime, true
	case Time, *timeofday.TimeOfDay:
		return CategoryTime, true
	case Number, decimal.Decimal, *big.Int, *big.Float, *big.Rat:
		return CategoryNumber, true
	}

	return ClassifyType(reflect.TypeOf(v))
}

// ClassifyType applies the Classify priority order to a type, so a single
// function selects both the source row and the target column of the
// conversion matrix.
func ClassifyType(t reflect.Type) (Category, bool) {
	if t == nil {
		return CategoryNull, true
	}

	switch t {
	case CellType, cellValueType:
		return CategoryCell, true
	case ErrorType, errorPtrType:
		return CategoryError, true
	}

	if t == SelectionType || (t.Kind() != reflect.Interface && t.Implements(SelectionType)) {
		return CategorySelection, true
	}

	switch t {
	case BoolType:
		return CategoryBoolean, true
	case StringType, CharacterType:
		return CategoryText, true
	case DateType, ProtoDateType:
		return CategoryDate, true
	case DateTimeType:
		return CategoryDateTime, true
	case TimeType, ProtoTimeType:
		return CategoryTime, true
	case NumberType, DecimalType, bigIntType, bigFloatType, bigRatType:
		return CategoryNumber, true
	}

	if IsNumericKind(t.Kind()) {
		return CategoryNumber, true
	}

	return 0, false
}

// IsNumericKind reports whether values of kind k are plain Go numbers.
func IsNumericKind(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}
