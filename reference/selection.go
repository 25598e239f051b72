package reference

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies the shape of a Selection.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindCell
	KindCellRange
	KindColumn
	KindColumnRange
	KindRow
	KindRowRange
	KindLabel

	// KindTotal bounds loops over Kind starting at the zero value, so it is one
	// more than the number of selection kinds.
	KindTotal = int(iota)
)

// Axis tells whether a selection is column or row oriented.
type Axis int

const (
	AxisNone Axis = iota
	AxisColumn
	AxisRow
)

// String returns "column", "row" or "none".
func (a Axis) String() string {
	switch a {
	case AxisColumn:
		return "column"
	case AxisRow:
		return "row"
	default:
		return "none"
	}
}

// Selection is any reference to a region of a spreadsheet.
type Selection interface {
	Kind() Kind
	Axis() Axis
	String() string
}

// ColumnOrRow is a single column or a single row.
type ColumnOrRow interface {
	Selection

	// Index is the zero based column or row index.
	Index() int
	IsAbsolute() bool
}

// EqualIgnoringAbsolute reports whether two column-or-row references denote
// the same column or row, regardless of "$" markers.
func EqualIgnoringAbsolute(a, b ColumnOrRow) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Axis() == b.Axis() && a.Index() == b.Index()
}
