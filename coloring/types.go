// This file declares the coloring Result type and sentinel errors.
package coloring

import (
	"errors"

	"github.com/katalvlaran/examsched/catalog"
)

// ErrNilGraph is returned if a nil graph pointer is passed to Greedy.
var ErrNilGraph = errors.New("coloring: graph is nil")

// Result holds the outcome of a greedy coloring:
//   - Days: map from course to its zero-based day index, total over
//     the catalog (isolated courses included).
//   - DayCount: 1 + the highest day index used; 0 for an empty catalog.
type Result struct {
	Days     map[catalog.Course]int
	DayCount int
}

// DayOf returns the day index assigned to course and whether the
// course was part of the colored catalog.
func (r *Result) DayOf(course catalog.Course) (int, bool) {
	day, ok := r.Days[course]
	return day, ok
}
