package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/internal/match"
)

// ErrUnknownName is matched by every *UnknownNameError.
var ErrUnknownName = errors.New("unknown name")

// Context is what providers need from the caller while resolving.
type Context interface {
	Logger() *zap.Logger
}

// Provider resolves selectors, or names with positional values, to
// instances of T.
type Provider[T any] interface {
	Resolve(selector Selector, ctx Context) (T, error)
	ResolveName(name Name, values []any, ctx Context) (T, error)
	// Infos lists every name the provider resolves, sorted by name.
	Infos() []Info
}

// UnknownNameError reports a name no provider knows.
type UnknownNameError struct {
	Kind        string
	Name        Name
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	return "Unknown " + e.Kind + " " + e.Name.String()
}

func (e *UnknownNameError) Is(target error) bool {
	return target == ErrUnknownName
}

// Hint returns the error message followed by close names, if any.
func (e *UnknownNameError) Hint() string {
	if len(e.Suggestions) == 0 {
		return e.Error()
	}

	return e.Error() + ", did you mean " + strings.Join(e.Suggestions, ", ") + "?"
}

func unknownName(kind string, name Name, infos []Info) *UnknownNameError {
	return &UnknownNameError{
		Kind:        kind,
		Name:        name,
		Suggestions: match.Suggest(name.String(), InfoNames(infos), match.DefaultSuggestions),
	}
}

// Factory creates an instance from selector parameters, or from positional
// values when resolved by name.
type Factory[T any] func(params string, values []any, ctx Context) (T, error)

// Entry registers a factory under the name of its info.
type Entry[T any] struct {
	Info    Info
	Factory Factory[T]
}

// Fixed returns an entry that always resolves to instance and rejects
// parameters and values.
func Fixed[T any](kind string, info Info, instance T) Entry[T] {
	return Entry[T]{
		Info: info,
		Factory: func(params string, values []any, _ Context) (T, error) {
			if params != "" || len(values) > 0 {
				var zero T
				return zero, fmt.Errorf("%s %s should have no values", titleCase(kind), info.Name)
			}

			return instance, nil
		},
	}
}

// Registry is a Provider over a static list of entries.
type Registry[T any] struct {
	kind    string
	entries map[Name]Entry[T]
	infos   []Info
}

var _ Provider[int] = (*Registry[int])(nil)

// NewRegistry builds a registry. kind names what it provides, for example
// "comparator", and appears in errors. Registering a name twice panics.
func NewRegistry[T any](kind string, entries ...Entry[T]) *Registry[T] {
	r := &Registry[T]{
		kind:    kind,
		entries: make(map[Name]Entry[T], len(entries)),
		infos:   make([]Info, 0, len(entries)),
	}

	for _, e := range entries {
		if _, dup := r.entries[e.Info.Name]; dup {
			panic(fmt.Sprintf("duplicate %s %s", kind, e.Info.Name))
		}

		r.entries[e.Info.Name] = e
		r.infos = append(r.infos, e.Info)
	}

	sort.Slice(r.infos, func(i, j int) bool { return r.infos[i].Name < r.infos[j].Name })

	return r
}

// Kind returns the label used in errors.
func (r *Registry[T]) Kind() string { return r.kind }

// Has reports whether name is registered.
func (r *Registry[T]) Has(name Name) bool {
	_, ok := r.entries[name]
	return ok
}

func (r *Registry[T]) Resolve(selector Selector, ctx Context) (T, error) {
	return r.create(selector.Name, selector.Params, nil, ctx)
}

func (r *Registry[T]) ResolveName(name Name, values []any, ctx Context) (T, error) {
	return r.create(name, "", values, ctx)
}

func (r *Registry[T]) create(name Name, params string, values []any, ctx Context) (T, error) {
	e, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, unknownName(r.kind, name, r.infos)
	}

	ctx.Logger().Debug("resolving "+r.kind,
		zap.Stringer("name", name),
		zap.String("params", params),
		zap.Int("values", len(values)),
	)

	return e.Factory(params, values, ctx)
}

// Infos returns a copy of the registered infos, sorted by name.
func (r *Registry[T]) Infos() []Info {
	return append([]Info(nil), r.infos...)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
