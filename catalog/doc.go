// Package catalog defines the identifier types shared by every
// examsched package — Course, Student, Catalog, Enrollments — and the
// input validation that guards the scheduling core.
//
// What
//
//   - Course and Student are opaque string identifiers.
//   - Catalog is the fixed, ordered course universe. Courses nobody
//     selected still exist (they become isolated conflict-graph nodes),
//     and catalog position is the deterministic tie-break key used by
//     the greedy colorer.
//   - Enrollments maps each student to the courses they take. Selection
//     order carries no meaning and duplicates collapse.
//   - CheckEnrollments rejects malformed input before any graph is
//     built: an empty selection or a course outside the catalog is a
//     caller error, never silently dropped.
//
// Determinism
//
//	Catalog is a slice, so iteration over the course universe is always
//	in catalog order. Enrollments is a map; packages that consume it
//	must never let map iteration order leak into results.
//
// Errors
//
//   - ErrEmptyEnrollment  if a student reaches the core with no courses.
//   - ErrUnknownCourse    if an enrollment references a course outside
//     the catalog.
//
// Both are sentinels: wrap sites add the student/course context, and
// callers test with errors.Is.
package catalog
