package value

//go:generate go tool stringer -type=Category -output=category_string.go

type Category int

const (
	_ Category = iota // skip zero value, it marks an unclassified value

	CategoryBoolean
	CategoryDate
	CategoryDateTime
	CategoryNumber
	CategoryText
	CategoryTime
	CategorySelection
	CategoryError
	CategoryCell
	CategoryNull

	// CategoryTotal bounds loops over Category starting at the zero value, so it
	// is one more than the number of categories defined.
	CategoryTotal = int(iota)
)

// MatrixSize is the number of categories that index the conversion matrix.
const MatrixSize = 6

// MatrixCategories lists the matrix categories in row/column order.
var MatrixCategories = [MatrixSize]Category{
	CategoryBoolean,
	CategoryDate,
	CategoryDateTime,
	CategoryNumber,
	CategoryText,
	CategoryTime,
}

// IsMatrix reports whether the category is one of the six conversion matrix
// rows and columns.
func (c Category) IsMatrix() bool {
	return c >= CategoryBoolean && c <= CategoryTime
}

// MatrixIndex returns the zero based matrix position of the category. It
// panics for categories outside the matrix.
func (c Category) MatrixIndex() int {
	if !c.IsMatrix() {
		panic("category has no conversion matrix index: " + c.String())
	}

	return int(c - CategoryBoolean)
}

// IsTemporal reports whether the category is Date, DateTime or Time.
func (c Category) IsTemporal() bool {
	switch c {
	default:
		return false
	case CategoryDate, CategoryDateTime, CategoryTime:
		return true
	}
}
