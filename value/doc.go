// Package value defines the runtime values held by spreadsheet cells and the
// closed set of categories used to dispatch conversions between them.
//
// Every value belongs to exactly one Category:
//
//	Boolean    bool
//	Date       Date, *date.Date
//	DateTime   time.Time
//	Number     Number, decimal.Decimal, *big.Int, *big.Float, *big.Rat,
//	           float32/64, every int and uint, any other numeric kind
//	Text       string, Character
//	Time       Time, *timeofday.TimeOfDay
//	Selection  any reference.Selection
//	Error      Error, *Error
//	Cell       *Cell, Cell
//	Null       nil
//
// Classify and ClassifyType test candidates in that fixed priority order, so a
// Character is Text even though its underlying kind is numeric, and an
// unknown named numeric type still classifies as Number.
package value
