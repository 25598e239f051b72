package compare

// Ordering is the result of a comparison.
type Ordering int

const (
	Less  Ordering = -1
	Equal Ordering = 0
	More  Ordering = 1
)

// OrderingOf maps the sign of c, as returned by cmp.Compare, to an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return More
	default:
		return Equal
	}
}

// Reverse swaps Less and More.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case More:
		return "MORE"
	default:
		return "EQUAL"
	}
}
