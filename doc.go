// Package examsched assigns exam days to courses so that no student
// ever has two exams on the same day, using as few days as the greedy
// heuristic can manage.
//
// 🚀 What is examsched?
//
//	A small, pure-Go toolkit built around one graph-coloring idea:
//		• catalog/  — course & student identifiers, enrollment validation
//		• conflict/ — conflict-graph construction (one edge per co-taken pair)
//		• coloring/ — Welsh–Powell greedy day assignment
//		• grid/     — the editable day-by-day schedule table and its inverse
//		• validate/ — structured detection of multi-day courses & double-booked students
//		• export/   — violation-gated CSV serialization of a finished schedule
//		• render/   — presentation-only options for external visualizers
//
// ✨ Why choose examsched?
//
//   - Stateless by design – every operation is a total function over an
//     explicit snapshot; the caller owns all session state
//   - Deterministic – identical input always yields an identical
//     schedule, grid, and violation report
//   - Honest about limits – the greedy colorer upper-bounds the
//     chromatic number, it does not promise to reach it
//
// Quick ASCII example (one student taking Math, Science and History):
//
//	    Math───Science
//	      \       /
//	       History
//
//	a triangle of conflicts, so the three exams need three distinct days.
//
// Dive into the per-package doc.go files for contracts, complexity
// notes, and error taxonomies.
//
//	go get github.com/katalvlaran/examsched
package examsched
