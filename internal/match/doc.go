// Package match finds names close to a misspelt one, for "did you mean"
// hints in unknown name errors.
package match
