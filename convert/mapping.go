package convert

import (
	"reflect"
	"strings"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/diagnostic"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Row holds the converters from one source category, indexed by target
// category in value.MatrixCategories order.
type Row [value.MatrixSize]Converter

// NewRow lists the converters of one source category by target category.
// Every argument is positional, so adding a category breaks every call.
func NewRow(boolean, date, dateTime, number, text, time Converter) Row {
	return Row{boolean, date, dateTime, number, text, time}
}

// Mapping is the immutable conversion matrix over the six matrix
// categories. It is safe for concurrent use.
type Mapping struct {
	rows [value.MatrixSize]Row
}

// NewMapping assembles a matrix from one row per source category.
func NewMapping(boolean, date, dateTime, number, text, time Row) *Mapping {
	return &Mapping{rows: [value.MatrixSize]Row{boolean, date, dateTime, number, text, time}}
}

// Cell returns the converter from source to target, or nil when either
// category is outside the matrix or the cell is empty.
func (m *Mapping) Cell(source, target value.Category) Converter {
	if !source.IsMatrix() || !target.IsMatrix() {
		return nil
	}

	return m.rows[source.MatrixIndex()][target.MatrixIndex()]
}

func (m *Mapping) CanConvert(v any, target reflect.Type, ctx Context) bool {
	return m.Convert(v, target, ctx).IsSuccess()
}

// Convert converts matrix category values. It panics when v has no
// category at all.
func (m *Mapping) Convert(v any, target reflect.Type, ctx Context) Outcome {
	if out, ok := shortcut(v, target, ctx); ok {
		return out
	}

	source := value.Classify(v)

	dest, ok := value.ClassifyType(target)
	if !ok {
		return unsupported(v, target)
	}

	c := m.Cell(source, dest)
	if c == nil {
		return unsupported(v, target)
	}

	return c.Convert(v, target, ctx)
}

// Verify reports empty cells as errors and deliberately unsupported cells
// as infos.
func (m *Mapping) Verify() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, source := range value.MatrixCategories {
		for _, target := range value.MatrixCategories {
			pair := categoryName(source) + "->" + categoryName(target)

			switch c := unwrap(m.Cell(source, target)).(type) {
			case nil:
				d.AddError("missing-converter", "no converter", pair, "")
			case unsupportedConverter:
				d.AddInfo("unsupported", c.reason, pair, "")
			}
		}
	}

	return d
}

func categoryName(c value.Category) string {
	return strings.TrimPrefix(c.String(), "Category")
}

// matrix is the conversion matrix used by the general converters.
var matrix = NewMapping(
	NewRow(booleanToBoolean, booleanToDate, booleanToDateTime, booleanToNumber, booleanToText, booleanToTime),
	NewRow(dateToBoolean, dateToDate, dateToDateTime, dateToNumber, dateToText, dateToTime),
	NewRow(dateTimeToBoolean, dateTimeToDate, dateTimeToDateTime, dateTimeToNumber, dateTimeToText, dateTimeToTime),
	NewRow(numberToBoolean, numberToDate, numberToDateTime, numberToNumber, numberToText, numberToTime),
	NewRow(textToBoolean, textToDate, textToDateTime, textToNumber, textToText, textToTime),
	NewRow(timeToBoolean, timeToDate, timeToDateTime, timeToNumber, timeToText, timeToTime),
)

// Matrix returns the conversion matrix of the general converters.
func Matrix() *Mapping {
	return matrix
}
