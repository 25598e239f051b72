// Package reference provides spreadsheet selections: cells, columns, rows,
// their ranges and labels.
//
// Selections are immutable values. Every parser reports failures with a
// *ParseError carrying the offending character offset, so callers embedding a
// reference inside larger text (for example a comparator list such as
// "A=number;B=text") can translate the offset into their own coordinates.
//
// Text forms:
//   - Column: "A", "$XFD" (letters, case-insensitive, optional "$" absolute marker)
//   - Row: "1", "$1048576"
//   - Cell: "B2", "$B$2"
//   - Ranges: "A1:C3", "A:C", "1:3"
//   - Label: "Total_Sales" (letter or underscore first, never a valid cell)
package reference
