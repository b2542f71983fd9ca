// This file implements the Welsh–Powell largest-degree-first greedy
// coloring over a conflict.Graph.
package coloring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/conflict"
)

// Greedy colors g with the Welsh–Powell heuristic and returns a proper
// coloring: for every conflict edge (u,v), Days[u] != Days[v].
// Returns ErrNilGraph for a nil graph. An empty graph yields an empty
// Result with DayCount 0.
func Greedy(g *conflict.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Courses() is in catalog order; a stable sort by descending degree
	// keeps catalog order as the tie-break, making runs reproducible.
	order := g.Courses()
	degree := make(map[catalog.Course]int, len(order))
	for _, c := range order {
		d, err := g.Degree(c)
		if err != nil {
			return nil, fmt.Errorf("coloring: degree of %q: %w", c, err)
		}
		degree[c] = d
	}
	sort.SliceStable(order, func(i, j int) bool {
		return degree[order[i]] > degree[order[j]]
	})

	res := &Result{Days: make(map[catalog.Course]int, len(order))}
	for _, c := range order {
		nbrs, err := g.Neighbors(c)
		if err != nil {
			return nil, fmt.Errorf("coloring: neighbors of %q: %w", c, err)
		}

		// Collect the days already taken around c, then pick the
		// smallest free one. Isolated courses always land on day 0.
		taken := make(map[int]bool, len(nbrs))
		for _, n := range nbrs {
			if day, colored := res.Days[n]; colored {
				taken[day] = true
			}
		}
		day := 0
		for taken[day] {
			day++
		}
		res.Days[c] = day
		if day+1 > res.DayCount {
			res.DayCount = day + 1
		}
	}
	return res, nil
}
