// Package validate checks an edited schedule grid against the original
// enrollments and reports every inconsistency as structured data.
//
// What
//
//   - Schedule inverts the grid (grid.CourseDays), then enumerates two
//     violation categories in one pass:
//   - MultiDay: a course listed under more than one day.
//   - StudentConflicts: a student with two or more of their courses
//     landing on the same day. All conflicting courses of one
//     (student, day) pair form a single de-duplicated bucket — three
//     mutually conflicting courses report once as a set of three,
//     never as three pairwise entries.
//   - Violations are expected, recoverable user states: they are data
//     in a ViolationSet, never errors. Validation enumerates all of
//     them; it never short-circuits on the first hit.
//   - Validation is read-only and recomputed fresh on every call from
//     the current grid and enrollments — there is no partial update.
//
// Determinism
//
//	Every slice in a ViolationSet is sorted (days ascending, courses
//	and students lexicographically), so re-validating an unchanged grid
//	yields a deeply equal result regardless of map iteration order.
//
// Errors
//
//   - grid.ErrDayLabel / grid.ErrNilGrid propagated from the inverse
//     projection; these abort the call — scheduling conflicts cannot be
//     distinguished from garbage on a half-parsed grid.
//   - catalog.ErrEmptyEnrollment if an empty selection reaches the
//     validator.
package validate
