// Package convert converts spreadsheet values between categories.
//
// A Converter turns a value into a requested target type and reports the
// result as an Outcome. Expected failures are failed Outcomes, never panics.
// The general converter first handles the trivial cases (any target, nil,
// same type), then unwraps cells, routes errors and selections to their own
// families, and finally dispatches on the source and target categories
// through a Mapping: a fixed six by six table of converters assembled from a
// handful of combinators.
//
//	            Boolean  Date  DateTime  Number  Text  Time
//	Boolean        =      b       b        b      b     b
//	Date           n      =       x        x      x     -
//	DateTime       n      x       =        x      x     x
//	Number         x      x       x        =      x     x
//	Text           x      x       x        x      =     x
//	Time           n      -       x        x      x     =
//
// "=" converts between representations of one category, "b" maps true and
// false to canonical values, "n" goes through Number where non-zero is
// true, "x" is a direct conversion and "-" is never supported.
package convert
