// This file declares the Graph type, the Build constructor, and the
// read-only adjacency accessors.
package conflict

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/examsched/catalog"
)

// ErrCourseNotFound is returned by accessors for a course that is not
// part of the graph's catalog.
var ErrCourseNotFound = errors.New("conflict: course not in graph")

// Graph is the immutable course conflict graph. Nodes are all catalog
// courses (selected or not); an edge marks a pair of courses some
// student takes together.
type Graph struct {
	cat   catalog.Catalog
	index map[catalog.Course]int
	adj   []map[int]struct{} // adjacency sets, keyed by catalog index
	edges int
}

// Build validates enr against cat and constructs the conflict graph.
// Every unordered pair of distinct courses within one student's
// selection becomes an edge; duplicate selections collapse first.
// Returns catalog.ErrEmptyEnrollment or catalog.ErrUnknownCourse on
// malformed input.
func Build(cat catalog.Catalog, enr catalog.Enrollments) (*Graph, error) {
	if err := catalog.CheckEnrollments(cat, enr); err != nil {
		return nil, err
	}

	g := &Graph{
		cat:   cat.Clone(),
		index: make(map[catalog.Course]int, len(cat)),
		adj:   make([]map[int]struct{}, len(cat)),
	}
	for i, course := range g.cat {
		g.index[course] = i
		g.adj[i] = make(map[int]struct{})
	}

	for _, courses := range enr {
		selected := lo.Uniq(courses)
		for i := 0; i < len(selected); i++ {
			for j := i + 1; j < len(selected); j++ {
				g.addEdge(g.index[selected[i]], g.index[selected[j]])
			}
		}
	}
	return g, nil
}

// addEdge links u and v, collapsing repeats into a single edge.
func (g *Graph) addEdge(u, v int) {
	if u == v {
		return
	}
	if _, dup := g.adj[u][v]; dup {
		return
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.edges++
}

// Order returns the number of nodes (catalog size).
func (g *Graph) Order() int { return len(g.cat) }

// EdgeCount returns the number of distinct conflict edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Catalog returns a copy of the course universe in catalog order.
func (g *Graph) Catalog() catalog.Catalog { return g.cat.Clone() }

// Courses returns all nodes in catalog order.
func (g *Graph) Courses() []catalog.Course { return g.cat.Clone() }

// HasCourse reports whether course is a node of the graph.
func (g *Graph) HasCourse(course catalog.Course) bool {
	_, ok := g.index[course]
	return ok
}

// Degree returns the number of courses conflicting with course.
// Returns ErrCourseNotFound for a course outside the graph.
func (g *Graph) Degree(course catalog.Course) (int, error) {
	i, ok := g.index[course]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrCourseNotFound, course)
	}
	return len(g.adj[i]), nil
}

// HasEdge reports whether u and v conflict. Unknown courses simply
// have no edges.
func (g *Graph) HasEdge(u, v catalog.Course) bool {
	ui, ok := g.index[u]
	if !ok {
		return false
	}
	vi, ok := g.index[v]
	if !ok {
		return false
	}
	_, ok = g.adj[ui][vi]
	return ok
}

// Neighbors returns the courses conflicting with course, in catalog
// order. Returns ErrCourseNotFound for a course outside the graph.
func (g *Graph) Neighbors(course catalog.Course) ([]catalog.Course, error) {
	i, ok := g.index[course]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCourseNotFound, course)
	}
	out := make([]catalog.Course, 0, len(g.adj[i]))
	for j, other := range g.cat {
		if _, adjacent := g.adj[i][j]; adjacent {
			out = append(out, other)
		}
	}
	return out, nil
}
