package convert

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Kind labels converters in provider errors.
const Kind = "converter"

const infoURL = "https://github.com/mP1/walkingkooka-spreadsheet-sub024/convert/"

var provider = newProvider()

// Provider returns the built-in converters by name:
//
//	general           every category, errors other than text become zero or fail
//	general-throwing  every category, errors other than text panic
//	simple            the six matrix categories only
//	error-to-text     error display text
//	error-to-number   missing cell errors to zero
//	error-throwing    panics with the error
//	boolean           general, restricted to boolean targets
//	number            general, restricted to number targets
//	text              general, restricted to text targets
//	collection        the first converter of its parameters that succeeds
func Provider() *plugin.Registry[Converter] {
	return provider
}

func newProvider() *plugin.Registry[Converter] {
	general := General(ErrorToNumber())

	var r *plugin.Registry[Converter]

	r = plugin.NewRegistry(Kind,
		fixed("general", general),
		fixed("general-throwing", General(ErrorThrowing())),
		fixed("simple", matrix),
		fixed("error-to-text", ErrorToText()),
		fixed("error-to-number", ErrorToNumber()),
		fixed("error-throwing", ErrorThrowing()),
		fixed("boolean", restrict(value.CategoryBoolean, general)),
		fixed("number", restrict(value.CategoryNumber, general)),
		fixed("text", restrict(value.CategoryText, general)),
		plugin.Entry[Converter]{
			Info: info("collection"),
			Factory: func(params string, values []any, ctx plugin.Context) (Converter, error) {
				return collection(r, params, values, ctx)
			},
		},
	)

	return r
}

func info(name string) plugin.Info {
	return plugin.Info{Name: plugin.MustName(name), URL: infoURL + name}
}

func fixed(name string, c Converter) plugin.Entry[Converter] {
	return plugin.Fixed(Kind, info(name), c)
}

// restrict only converts to targets of category.
func restrict(category value.Category, c Converter) Converter {
	return Named(strings.ToLower(categoryName(category)), Func(func(v any, target reflect.Type, ctx Context) Outcome {
		if !targetIs(target, category) {
			return unsupported(v, target)
		}

		return c.Convert(v, target, ctx)
	}))
}

// collection resolves each space separated parameter as a converter name,
// or takes the values as converters, and tries them in order.
func collection(p plugin.Provider[Converter], params string, values []any, ctx plugin.Context) (Converter, error) {
	var converters []Converter

	for _, field := range strings.Fields(params) {
		sel, err := plugin.ParseSelector(field)
		if err != nil {
			return nil, err
		}

		c, err := p.Resolve(sel, ctx)
		if err != nil {
			return nil, err
		}

		converters = append(converters, c)
	}

	for i, v := range values {
		c, ok := v.(Converter)
		if !ok {
			return nil, fmt.Errorf("collection value %d: %T is not a %s", i, v, Kind)
		}

		converters = append(converters, c)
	}

	if len(converters) == 0 {
		return nil, fmt.Errorf("collection needs at least one %s", Kind)
	}

	return FirstOf(converters...), nil
}
