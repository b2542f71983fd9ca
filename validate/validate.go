// This file declares the ViolationSet type and the Schedule validator.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/grid"
)

// ViolationSet aggregates every inconsistency found in one validation
// pass. A nil-free, empty set means the grid is a valid schedule.
type ViolationSet struct {
	// MultiDay maps each course appearing under more than one day to
	// its sorted day-index list (always length > 1).
	MultiDay map[catalog.Course][]int

	// StudentConflicts maps student → day index → the sorted set of
	// that student's courses sharing the day (always length > 1).
	StudentConflicts map[catalog.Student]map[int][]catalog.Course
}

// Empty reports whether no violations were found.
func (v *ViolationSet) Empty() bool {
	return len(v.MultiDay) == 0 && len(v.StudentConflicts) == 0
}

// Len returns the total number of violations: one per multi-day
// course plus one per (student, day) conflict bucket.
func (v *ViolationSet) Len() int {
	n := len(v.MultiDay)
	for _, byDay := range v.StudentConflicts {
		n += len(byDay)
	}
	return n
}

// String renders a stable, human-readable report: one summary line per
// check, then one detail line per violation, sorted.
func (v *ViolationSet) String() string {
	var b strings.Builder

	if len(v.MultiDay) == 0 {
		b.WriteString("[  OK]: multi-day course check.\n")
	} else {
		b.WriteString("[FAIL]: multi-day course check.\n")
		courses := lo.Keys(v.MultiDay)
		sort.Slice(courses, func(i, j int) bool { return courses[i] < courses[j] })
		for _, c := range courses {
			labels := lo.Map(v.MultiDay[c], func(day int, _ int) string { return grid.DayLabel(day) })
			fmt.Fprintf(&b, "- course %q scheduled on %d days: %s\n", c, len(labels), strings.Join(labels, ", "))
		}
	}

	if len(v.StudentConflicts) == 0 {
		b.WriteString("[  OK]: student conflict check.\n")
	} else {
		b.WriteString("[FAIL]: student conflict check.\n")
		students := lo.Keys(v.StudentConflicts)
		sort.Slice(students, func(i, j int) bool { return students[i] < students[j] })
		for _, s := range students {
			days := lo.Keys(v.StudentConflicts[s])
			sort.Ints(days)
			for _, day := range days {
				names := lo.Map(v.StudentConflicts[s][day], func(c catalog.Course, _ int) string { return string(c) })
				fmt.Fprintf(&b, "- student %q has %d exams on %s: %s\n",
					s, len(names), grid.DayLabel(day), strings.Join(names, ", "))
			}
		}
	}
	return b.String()
}

// Schedule validates an edited grid against the original enrollments.
// It never mutates the grid and never stops at the first violation.
// Returns grid.ErrDayLabel or grid.ErrNilGrid if the grid cannot be
// inverted, and catalog.ErrEmptyEnrollment for an empty selection;
// scheduling conflicts themselves are reported in the ViolationSet,
// not as errors.
func Schedule(g *grid.Grid, enr catalog.Enrollments) (*ViolationSet, error) {
	courseDays, err := grid.CourseDays(g)
	if err != nil {
		return nil, err
	}

	vs := &ViolationSet{
		MultiDay:         make(map[catalog.Course][]int),
		StudentConflicts: make(map[catalog.Student]map[int][]catalog.Course),
	}

	// Category 1: a course placed under more than one day.
	for course, days := range courseDays {
		if len(days) > 1 {
			vs.MultiDay[course] = days
		}
	}

	// Category 2: a student with >= 2 of their courses on one day.
	// Bucket per (student, day); membership de-duplicated and sorted.
	for _, student := range enr.Students() {
		courses := lo.Uniq(enr[student])
		if len(courses) == 0 {
			return nil, fmt.Errorf("%w: student %q", catalog.ErrEmptyEnrollment, student)
		}

		byDay := make(map[int][]catalog.Course)
		for _, course := range courses {
			for _, day := range courseDays[course] {
				byDay[day] = append(byDay[day], course)
			}
		}
		for day, clash := range byDay {
			if len(clash) < 2 {
				continue
			}
			sort.Slice(clash, func(i, j int) bool { return clash[i] < clash[j] })
			if vs.StudentConflicts[student] == nil {
				vs.StudentConflicts[student] = make(map[int][]catalog.Course)
			}
			vs.StudentConflicts[student][day] = clash
		}
	}
	return vs, nil
}
