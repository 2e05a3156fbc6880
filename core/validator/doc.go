// Package validator decides whether the distribution of each configured
// field of an observation table stays within its declared bounds.
//
// The package provides:
//   - Check for a single field: tail statistics, central tendency, outlier
//     rows and a pass/fail verdict per check
//   - CheckAll for a whole suite, accumulating per-field outcomes into a
//     Report without letting one field abort the others
//   - Typed structural errors (MissingFieldError, EmptyTableError,
//     InvalidBoundsError) distinct from statistical violations, which are
//     reported outcomes rather than errors
package validator
