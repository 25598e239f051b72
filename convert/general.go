package convert

import (
	"reflect"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// General returns the converter for every category. Cells convert their
// value, errors go to FirstOf(ErrorToText(), policy), selections convert
// to text and other selections, and everything else goes through Matrix.
// policy should be ErrorToNumber or ErrorThrowing.
func General(policy Converter) Converter {
	return &general{mapping: matrix, errors: errorFamily(policy)}
}

type general struct {
	mapping *Mapping
	errors  Converter
}

// CanConvert follows the routing of Convert but asks the error policy
// instead of running it, so an ErrorThrowing policy reports false rather
// than panicking.
func (g *general) CanConvert(v any, target reflect.Type, ctx Context) bool {
	if out, ok := shortcut(v, target, ctx); ok {
		return out.IsSuccess()
	}

	switch value.Classify(v) {
	case value.CategoryCell:
		return g.CanConvert(cellValue(v), target, ctx)
	case value.CategoryError:
		return g.errors.CanConvert(v, target, ctx)
	}

	return g.Convert(v, target, ctx).IsSuccess()
}

func (g *general) Convert(v any, target reflect.Type, ctx Context) Outcome {
	if out, ok := shortcut(v, target, ctx); ok {
		return out
	}

	switch value.Classify(v) {
	case value.CategoryCell:
		return g.Convert(cellValue(v), target, ctx)
	case value.CategoryError:
		return g.errors.Convert(v, target, ctx)
	case value.CategorySelection:
		return selections.Convert(v, target, ctx)
	}

	if targetIs(target, value.CategorySelection) {
		return selections.Convert(v, target, ctx)
	}

	return g.mapping.Convert(v, target, ctx)
}

func (g *general) String() string { return "general" }

func cellValue(v any) any {
	switch c := v.(type) {
	case *value.Cell:
		return c.Value()
	case value.Cell:
		return c.Value()
	default:
		return nil
	}
}
