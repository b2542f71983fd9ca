// Package coloring assigns each course a non-negative day index so
// that no two conflicting courses share a day, using the Welsh–Powell
// largest-degree-first greedy heuristic.
//
// What
//
//   - Greedy orders courses by descending conflict degree (ties broken
//     by catalog position), then gives each the smallest day index not
//     already taken by an earlier-colored neighbor.
//   - The Result maps every catalog course — isolated ones included —
//     to a day, and reports DayCount = 1 + the highest index used.
//   - An empty catalog yields an empty Result with DayCount 0: "zero
//     days needed" is a valid answer, not an error.
//
// Why
//
//	A proper coloring of the conflict graph is exactly a feasible exam
//	timetable at day granularity; fewer colors means fewer exam days.
//
// Guarantee & limitation
//
//	The result is always a proper coloring: adjacent courses never
//	share a day, and DayCount is at least the size of the largest
//	single-student course clique. It upper-bounds — but need not
//	equal — the graph's chromatic number. That gap is a documented
//	property of the heuristic, not a bug.
//
// Determinism
//
//	Ordering is fully specified (degree desc, then catalog order), so
//	identical graphs always produce identical Results.
//
// Complexity (V = courses, E = conflicts)
//
//   - Time:   O(V·logV + V·E) worst case, O(V·logV + E) typical.
//   - Memory: O(V).
//
// Errors
//
//   - ErrNilGraph if the graph pointer is nil.
package coloring
