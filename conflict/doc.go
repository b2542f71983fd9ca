// Package conflict builds the course conflict graph from per-student
// enrollments: nodes are catalog courses, and an edge joins two courses
// whenever at least one student takes both.
//
// What
//
//   - Build validates the enrollments, then links every unordered pair
//     of distinct courses inside each student's selection — a full
//     pairwise clique per student. Linking only consecutive (or cyclic)
//     selections under-counts conflicts: a student taking four courses
//     produces six edges here, never four.
//   - The resulting Graph is simple (no self-loops; co-occurrence in
//     many students collapses to one edge), undirected, and immutable
//     once built.
//   - Courses nobody selected remain in the graph as degree-0 nodes.
//
// Why
//
//	A proper coloring of this graph is exactly an exam-day assignment
//	with no double-booked student; the coloring package consumes it.
//
// Determinism
//
//	The edge set depends only on the input, not on map iteration order.
//	Courses and Neighbors return slices in catalog order, so every
//	traversal of the graph is reproducible.
//
// Complexity (S = students, k = max courses per student, V = catalog)
//
//   - Build:  O(V + S·k²) time, O(V + E) memory.
//   - Degree, HasEdge: O(1). Neighbors: O(V) (catalog-order scan).
//
// Errors
//
//   - catalog.ErrEmptyEnrollment / catalog.ErrUnknownCourse from Build
//     on malformed input.
//   - ErrCourseNotFound from accessors given a course outside the graph.
package conflict
