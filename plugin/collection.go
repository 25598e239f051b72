package plugin

import (
	"fmt"
)

// Collection merges providers under one namespace.
type Collection[T any] struct {
	kind      string
	providers []Provider[T]
	owners    map[Name]int
	infos     []Info
}

var _ Provider[int] = (*Collection[int])(nil)

// NewCollection fails when two providers publish the same name.
func NewCollection[T any](kind string, providers ...Provider[T]) (*Collection[T], error) {
	c := &Collection[T]{
		kind:      kind,
		providers: providers,
		owners:    make(map[Name]int),
	}

	for i, p := range providers {
		for _, info := range p.Infos() {
			if _, dup := c.owners[info.Name]; dup {
				return nil, fmt.Errorf("duplicate %s %s", kind, info.Name)
			}

			c.owners[info.Name] = i
			c.infos = append(c.infos, info)
		}
	}

	c.infos = SortInfos(c.infos)

	return c, nil
}

func (c *Collection[T]) Resolve(selector Selector, ctx Context) (T, error) {
	i, ok := c.owners[selector.Name]
	if !ok {
		var zero T
		return zero, unknownName(c.kind, selector.Name, c.infos)
	}

	return c.providers[i].Resolve(selector, ctx)
}

func (c *Collection[T]) ResolveName(name Name, values []any, ctx Context) (T, error) {
	i, ok := c.owners[name]
	if !ok {
		var zero T
		return zero, unknownName(c.kind, name, c.infos)
	}

	return c.providers[i].ResolveName(name, values, ctx)
}

func (c *Collection[T]) Infos() []Info {
	return append([]Info(nil), c.infos...)
}
