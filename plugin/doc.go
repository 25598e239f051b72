// Package plugin resolves named instances, such as converters and
// comparators, from text selectors.
//
// A Selector is a Name followed by free text parameters, for example
// "collection number text". A Registry builds instances from a static list
// of factories, an AliasSet maps alternate names onto selectors of a wrapped
// provider and a Collection merges several providers under one namespace.
// All of them are immutable once built and safe for concurrent use.
package plugin
