package convert

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// selections converts selections to text and to other selection types,
// and parses text into selections. Labels resolve through the context when
// the target cannot hold a label.
var selections = Named("selection", FirstOf(Cast(), TryOrFail(convertSelection)))

func convertSelection(v any, target reflect.Type, ctx Context) (any, error) {
	dest, ok := value.ClassifyType(target)
	if !ok {
		return nil, unsupportedError(v, target)
	}

	switch dest {
	case value.CategoryText:
		sel, ok := v.(reference.Selection)
		if !ok {
			return nil, unsupportedError(v, target)
		}
		return textAs(sel.String(), target)
	case value.CategorySelection:
		sel, err := selectionOf(v, ctx)
		if err != nil {
			return nil, err
		}
		return selectionAs(sel, target, ctx)
	default:
		return nil, unsupportedError(v, target)
	}
}

func selectionOf(v any, ctx Context) (reference.Selection, error) {
	if sel, ok := v.(reference.Selection); ok {
		return sel, nil
	}

	s, err := textOf(v, ctx)
	if err != nil {
		return nil, err
	}

	sel, err := reference.ParseSelection(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	return sel, nil
}

func selectionAs(sel reference.Selection, target reflect.Type, ctx Context) (any, error) {
	if reflect.TypeOf(sel).AssignableTo(target) {
		return sel, nil
	}

	label, ok := sel.(reference.Label)
	if !ok {
		return nil, unsupportedError(sel, target)
	}

	resolved, ok := ctx.ResolveLabel(label)
	if !ok {
		return nil, fmt.Errorf("%w: label %q not found", ErrConversionFailed, label)
	}

	if !reflect.TypeOf(resolved).AssignableTo(target) {
		return nil, unsupportedError(resolved, target)
	}

	return resolved, nil
}
