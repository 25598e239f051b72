// Package compare orders spreadsheet cells.
//
// Comparators compare two values of one type and are resolved by name from
// a plugin provider. A Spec pairs a column or row with a list of comparator
// names, and is written in a small text language:
//
//	A=day-of-month,month-of-year;B=number-reversed
//
// Entries are separated by ";", the reference and its names by "=", and the
// names by ",". A "-reversed" suffix sorts that key descending. Compiling a
// Spec resolves every name and gives a comparator over two cells: each cell
// value is converted to the type a comparator wants, blank or unconvertible
// values sort last, and later names break ties of earlier ones.
package compare
