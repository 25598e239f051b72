// Package diagnostic collects structured errors, warnings and infos produced
// while verifying static configuration, such as the conversion matrix or an
// alias file, before it is put to use.
//
// Key capabilities:
//   - Missing matrix cells reported as errors
//   - Explicitly unsupported conversions reported as infos
//   - Alias targets that resolve to nothing reported as warnings
//   - Suggestions for misspelled names
package diagnostic
