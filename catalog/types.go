// This file declares Course, Student, Catalog, Enrollments,
// sentinel errors, and the CheckEnrollments input guard.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for enrollment validation.
var (
	// ErrEmptyEnrollment indicates a student with no selected courses
	// reached the core. Empty selections must be filtered upstream.
	ErrEmptyEnrollment = errors.New("catalog: enrollment has no courses")

	// ErrUnknownCourse indicates an enrollment references a course
	// that is not part of the catalog.
	ErrUnknownCourse = errors.New("catalog: course not in catalog")
)

// Course uniquely identifies a course within a Catalog.
type Course string

// Student uniquely identifies a student within an Enrollments set.
type Student string

// Catalog is the fixed, ordered universe of courses. Position in the
// slice is the canonical tie-break key for deterministic results.
type Catalog []Course

// Index returns the catalog position of course, or -1 if absent.
func (c Catalog) Index(course Course) int {
	for i, have := range c {
		if have == course {
			return i
		}
	}
	return -1
}

// Contains reports whether course is part of the catalog.
func (c Catalog) Contains(course Course) bool {
	return c.Index(course) >= 0
}

// Clone returns an independent copy of the catalog.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Enrollments maps each student to the courses they take.
// Selection order is irrelevant; duplicates carry no meaning.
type Enrollments map[Student][]Course

// Students returns the student identifiers in lexicographic order,
// so callers can iterate enrollments deterministically.
func (e Enrollments) Students() []Student {
	out := make([]Student, 0, len(e))
	for s := range e {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CheckEnrollments verifies that every enrollment is non-empty and
// references only catalog courses. It returns the first offending
// entry wrapped around ErrEmptyEnrollment or ErrUnknownCourse, walking
// students in lexicographic order so the reported entry is stable.
func CheckEnrollments(cat Catalog, enr Enrollments) error {
	for _, student := range enr.Students() {
		courses := enr[student]
		if len(courses) == 0 {
			return fmt.Errorf("%w: student %q", ErrEmptyEnrollment, student)
		}
		for _, course := range courses {
			if !cat.Contains(course) {
				return fmt.Errorf("%w: student %q selected %q", ErrUnknownCourse, student, course)
			}
		}
	}
	return nil
}
