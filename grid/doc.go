// Package grid provides the schedule grid: the tabular, day-indexed,
// user-editable projection of a coloring, plus the inverse mapping an
// editor's output back into course→day assignments.
//
// What
//
//   - FromColoring groups courses into "Day 1", "Day 2", … columns in
//     ascending day order, catalog order within a day, padding shorter
//     columns with blank cells to a common row count.
//   - CourseDays is the inverse: every non-blank cell contributes its
//     column's day index to that cell's course. A course recorded under
//     more than one day is exactly what the validate package flags —
//     the grid's shape deliberately does not prevent it.
//   - New re-pads raw columns coming back from an editor that added or
//     removed rows.
//   - NormalizeCells trims and title-cases cell text. It belongs to the
//     external "apply changes" action: projection and inverse projection
//     never alter course identifiers on their own.
//
// Determinism
//
//	Grids are plain values built in day/catalog order; CourseDays sorts
//	and de-duplicates every day list, so equal grids always map to
//	deeply equal results.
//
// Errors
//
//   - ErrNilGrid   if a nil grid pointer is passed.
//   - ErrDayLabel  if a column label does not parse as "Day N" (N ≥ 1).
//     This aborts the whole inverse mapping — a half-parsed grid would
//     silently corrupt validation downstream.
package grid
