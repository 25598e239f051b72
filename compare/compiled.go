package compare

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/convert"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

type resolved struct {
	name       NameAndDirection
	comparator Comparator
}

// Compiled is a Spec with its comparators resolved.
type Compiled struct {
	Reference   reference.ColumnOrRow
	comparators []resolved
}

// Compile resolves every comparator name through provider.
func (s Spec) Compile(provider plugin.Provider[Comparator], ctx Context) (*Compiled, error) {
	if len(s.Names) == 0 {
		return nil, &ParseError{Pos: -1, Kind: MissingName, Message: "Missing comparator name for " + s.Reference.String()}
	}

	compiled := &Compiled{Reference: s.Reference, comparators: make([]resolved, 0, len(s.Names))}

	for _, n := range s.Names {
		c, err := provider.ResolveName(n.Name, nil, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Reference, err)
		}

		compiled.comparators = append(compiled.comparators, resolved{name: n, comparator: c})
	}

	return compiled, nil
}

// Compare orders two cells. Each comparator sees both values converted to
// its type; a value that is blank or does not convert is missing and sorts
// after every present value whatever the direction. The first comparator
// that does not find the values equal decides.
func (c *Compiled) Compare(left, right *value.Cell, ctx Context) Ordering {
	for _, r := range c.comparators {
		a, aok := convertFor(left, r, ctx)
		b, bok := convertFor(right, r, ctx)

		var o Ordering

		switch {
		case !aok && !bok:
			continue
		case !aok:
			o = More
		case !bok:
			o = Less
		default:
			o = r.name.Direction.Apply(r.comparator.Compare(a, b, ctx))
		}

		if o != Equal {
			return o
		}
	}

	return Equal
}

func (c *Compiled) String() string {
	names := make([]NameAndDirection, len(c.comparators))
	for i, r := range c.comparators {
		names[i] = r.name
	}

	return Spec{Reference: c.Reference, Names: names}.String()
}

func convertFor(cell *value.Cell, r resolved, ctx Context) (any, bool) {
	if cell.IsBlank() {
		return nil, false
	}

	target := r.comparator.Type()

	out, propagated := convert.CatchPropagated(func() convert.Outcome {
		return ctx.Converter().Convert(cell, target, ctx)
	})

	switch {
	case propagated != nil:
		ctx.Logger().Debug("error value sorts as missing",
			zap.Stringer("cell", cell.Reference),
			zap.String("comparator", r.name.String()))

		return nil, false
	case !out.IsSuccess():
		ctx.Logger().Debug("value sorts as missing",
			zap.Stringer("cell", cell.Reference),
			zap.String("comparator", r.name.String()),
			zap.Error(out.Err()))

		return nil, false
	case out.Value() == nil:
		return nil, false
	}

	return out.Value(), true
}

// CompiledList applies compiled specs in order until one decides.
type CompiledList []*Compiled

// Compile resolves every spec of the list.
func (l SpecList) Compile(provider plugin.Provider[Comparator], ctx Context) (CompiledList, error) {
	compiled := make(CompiledList, 0, len(l))

	for _, s := range l {
		c, err := s.Compile(provider, ctx)
		if err != nil {
			return nil, err
		}

		compiled = append(compiled, c)
	}

	return compiled, nil
}

// Compare orders two rows or columns. cells looks up the cell of a row at
// the reference of each spec and may return nil.
func (l CompiledList) Compare(left, right func(reference.ColumnOrRow) *value.Cell, ctx Context) Ordering {
	for _, c := range l {
		if o := c.Compare(left(c.Reference), right(c.Reference), ctx); o != Equal {
			return o
		}
	}

	return Equal
}

// SortRows sorts rows in place. Rows the list finds equal keep their order.
func SortRows[R any](rows []R, list CompiledList, cellAt func(R, reference.ColumnOrRow) *value.Cell, ctx Context) {
	lookup := func(row R) func(reference.ColumnOrRow) *value.Cell {
		return func(ref reference.ColumnOrRow) *value.Cell { return cellAt(row, ref) }
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return list.Compare(lookup(rows[i]), lookup(rows[j]), ctx) == Less
	})
}
