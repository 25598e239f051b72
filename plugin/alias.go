package plugin

import (
	"fmt"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/diagnostic"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/match"
)

// Alias is an alternate name for a selector of a wrapped provider.
//
// A plain alias stands for its whole Target and accepts no parameters of
// its own. A Defaults alias only supplies default parameters: parameters or
// values given where it is used replace Target.Params.
type Alias struct {
	Name     Name
	Target   Selector
	Defaults bool
	URL      string
}

// AliasSet resolves aliases and forwards every other name to the wrapped
// provider.
type AliasSet[T any] struct {
	provider Provider[T]
	aliases  map[Name]Alias
	order    []Name
}

var _ Provider[int] = (*AliasSet[int])(nil)

// NewAliasSet fails when an alias name is used twice.
func NewAliasSet[T any](provider Provider[T], aliases ...Alias) (*AliasSet[T], error) {
	a := &AliasSet[T]{
		provider: provider,
		aliases:  make(map[Name]Alias, len(aliases)),
	}

	for _, alias := range aliases {
		if _, dup := a.aliases[alias.Name]; dup {
			return nil, fmt.Errorf("duplicate alias %s", alias.Name)
		}

		a.aliases[alias.Name] = alias
		a.order = append(a.order, alias.Name)
	}

	return a, nil
}

func (a *AliasSet[T]) Resolve(selector Selector, ctx Context) (T, error) {
	alias, ok := a.aliases[selector.Name]
	if !ok {
		return a.provider.Resolve(selector, ctx)
	}

	if !alias.Defaults {
		if selector.Params != "" {
			var zero T
			return zero, noValues(alias.Name)
		}

		return a.provider.Resolve(alias.Target, ctx)
	}

	target := alias.Target
	if selector.Params != "" {
		target.Params = selector.Params
	}

	return a.provider.Resolve(target, ctx)
}

func (a *AliasSet[T]) ResolveName(name Name, values []any, ctx Context) (T, error) {
	alias, ok := a.aliases[name]
	if !ok {
		return a.provider.ResolveName(name, values, ctx)
	}

	if len(values) == 0 {
		return a.provider.Resolve(alias.Target, ctx)
	}

	if !alias.Defaults {
		var zero T
		return zero, noValues(alias.Name)
	}

	return a.provider.ResolveName(alias.Target.Name, values, ctx)
}

func noValues(name Name) error {
	return fmt.Errorf("Alias %s should have no values", name)
}

// Infos merges the aliases with the wrapped provider's infos. An alias
// replaces a provider info of the same name.
func (a *AliasSet[T]) Infos() []Info {
	infos := make([]Info, 0, len(a.order))
	for _, name := range a.order {
		infos = append(infos, Info{Name: name, URL: a.aliases[name].URL})
	}

	return SortInfos(append(infos, a.provider.Infos()...))
}

// Verify warns about aliases whose target the wrapped provider does not
// publish.
func (a *AliasSet[T]) Verify() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	known := make(map[Name]bool)
	for _, info := range a.provider.Infos() {
		known[info.Name] = true
	}

	names := InfoNames(a.provider.Infos())

	for _, name := range a.order {
		target := a.aliases[name].Target
		if known[target.Name] {
			continue
		}

		d.AddWarning("unknown-alias-target",
			fmt.Sprintf("target %s not found", target.Name),
			"", name.String(),
			match.Suggest(target.Name.String(), names, match.DefaultSuggestions)...)
	}

	return d
}
