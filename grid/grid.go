// This file declares the Grid and Column types, the projection from a
// coloring, the inverse projection, and day-label helpers.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/coloring"
)

// Sentinel errors for grid operations.
var (
	// ErrNilGrid indicates a nil grid pointer was passed.
	ErrNilGrid = errors.New("grid: grid is nil")

	// ErrDayLabel indicates a column label cannot be parsed as "Day N".
	ErrDayLabel = errors.New("grid: malformed day label")
)

// dayLabelPrefix is the fixed prefix of every well-formed column label.
const dayLabelPrefix = "Day "

// Column is one day of the schedule: a label ("Day 1", "Day 2", …)
// and its cells, blank-padded to the grid's common row count.
type Column struct {
	Label string
	Cells []string
}

// Grid is the editable schedule table. It is a plain value: editors
// may copy and rewrite it freely, the core never mutates one in place.
type Grid struct {
	Columns []Column
}

// DayLabel formats the label for a zero-based day index.
func DayLabel(index int) string {
	return dayLabelPrefix + strconv.Itoa(index+1)
}

// ParseDayLabel parses a "Day N" label into its zero-based day index.
// N must be a plain positive decimal — "day 1", "Day 0", "Day 01" and
// "Day +2" are all ErrDayLabel.
func ParseDayLabel(label string) (int, error) {
	rest, ok := strings.CutPrefix(label, dayLabelPrefix)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrDayLabel, label)
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || rest != strconv.Itoa(n) {
		return 0, fmt.Errorf("%w: %q", ErrDayLabel, label)
	}
	return n - 1, nil
}

// New builds a grid from raw columns, cloning them and padding every
// column with blank cells to the tallest column's height. Use it to
// re-shape ragged output from an external editor.
func New(columns []Column) *Grid {
	g := &Grid{Columns: make([]Column, len(columns))}
	height := 0
	for _, col := range columns {
		if len(col.Cells) > height {
			height = len(col.Cells)
		}
	}
	for i, col := range columns {
		cells := make([]string, height)
		copy(cells, col.Cells)
		g.Columns[i] = Column{Label: col.Label, Cells: cells}
	}
	return g
}

// FromColoring projects a coloring onto a schedule grid: one column
// per day in ascending order, courses in catalog order within a day,
// all columns padded to the longest. A nil or empty result yields an
// empty grid.
func FromColoring(res *coloring.Result, cat catalog.Catalog) *Grid {
	if res == nil || res.DayCount == 0 {
		return &Grid{}
	}
	columns := make([]Column, res.DayCount)
	for day := range columns {
		columns[day].Label = DayLabel(day)
	}
	for _, course := range cat {
		if day, ok := res.DayOf(course); ok && day >= 0 && day < len(columns) {
			columns[day].Cells = append(columns[day].Cells, string(course))
		}
	}
	return New(columns)
}

// Days returns the number of day columns.
func (g *Grid) Days() int { return len(g.Columns) }

// Rows returns the common row count (0 for an empty grid).
func (g *Grid) Rows() int {
	if len(g.Columns) == 0 {
		return 0
	}
	return len(g.Columns[0].Cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	return New(g.Columns)
}

// CourseDays inverts a grid into a map from course text to the sorted,
// de-duplicated day indices it appears under. Whitespace-only cells
// are ignored; non-blank cell text is taken verbatim — normalization
// is a separate, explicit step (NormalizeCells). Any malformed column
// label aborts with ErrDayLabel before a single cell is recorded.
func CourseDays(g *Grid) (map[catalog.Course][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	// Parse every label up front: partial data must never escape.
	days := make([]int, len(g.Columns))
	for i, col := range g.Columns {
		day, err := ParseDayLabel(col.Label)
		if err != nil {
			return nil, err
		}
		days[i] = day
	}

	out := make(map[catalog.Course][]int)
	for i, col := range g.Columns {
		for _, cell := range col.Cells {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			course := catalog.Course(cell)
			out[course] = append(out[course], days[i])
		}
	}
	for course, list := range out {
		sort.Ints(list)
		out[course] = dedupSorted(list)
	}
	return out, nil
}

// dedupSorted collapses adjacent duplicates in a sorted slice.
func dedupSorted(list []int) []int {
	kept := list[:1]
	for _, d := range list[1:] {
		if d != kept[len(kept)-1] {
			kept = append(kept, d)
		}
	}
	return kept
}
