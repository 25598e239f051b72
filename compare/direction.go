package compare

//go:generate go tool stringer -type=Direction -output=direction_string.go

// ReversedSuffix appended to a comparator name selects Descending.
const ReversedSuffix = "-reversed"

// Direction is the sort direction of one comparator.
type Direction int

const (
	_ Direction = iota // zero value is invalid

	Ascending
	Descending

	// DirectionTotal bounds loops over Direction starting at the zero value, so
	// it is one more than the number of directions.
	DirectionTotal = int(iota)
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}

	return Descending
}

// Apply orients a natural ordering.
func (d Direction) Apply(o Ordering) Ordering {
	if d == Descending {
		return o.Reverse()
	}

	return o
}
