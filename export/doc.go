// Package export serializes a validated schedule grid to CSV. It is
// the only persistence surface of the module, and it is gated: a grid
// whose ViolationSet is missing or non-empty is never written, in any
// form, partial or whole.
//
// Two shapes are offered:
//
//   - WriteGrid — the flat wide table: header row of day labels, one
//     row per position, blank-padded cells. This is the schedule's
//     canonical export and has no schema beyond "columns are day
//     labels, cells are course names or blank".
//   - WriteRows / MarshalRows — a long-form roster (course, day label,
//     day index), one row per placed course, convenient for feeding
//     spreadsheets or downstream tooling.
//
// Errors
//
//   - ErrViolations if the schedule has not been validated clean.
//   - ErrNilGrid propagated for a nil grid.
package export
