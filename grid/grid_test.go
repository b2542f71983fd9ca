package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/coloring"
	"github.com/katalvlaran/examsched/conflict"
	"github.com/katalvlaran/examsched/grid"
)

// schedule builds a coloring for the given enrollments.
func schedule(t *testing.T, cat catalog.Catalog, enr catalog.Enrollments) *coloring.Result {
	t.Helper()
	g, err := conflict.Build(cat, enr)
	require.NoError(t, err)
	res, err := coloring.Greedy(g)
	require.NoError(t, err)
	return res
}

// TestParseDayLabel covers the strict label grammar.
func TestParseDayLabel(t *testing.T) {
	for label, want := range map[string]int{
		"Day 1":  0,
		"Day 2":  1,
		"Day 12": 11,
	} {
		got, err := grid.ParseDayLabel(label)
		assert.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
	for _, label := range []string{
		"day 1", "Day 0", "Day -1", "Day 01", "Day +2", "Day", "Day ", "Day x", "Exam 1", "Day 1 ", "",
	} {
		_, err := grid.ParseDayLabel(label)
		assert.ErrorIs(t, err, grid.ErrDayLabel, "label %q must be rejected", label)
	}
}

// TestDayLabel_RoundTrip keeps formatting and parsing inverse.
func TestDayLabel_RoundTrip(t *testing.T) {
	for i := 0; i < 5; i++ {
		got, err := grid.ParseDayLabel(grid.DayLabel(i))
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

// TestFromColoring_ShapeAndPadding checks labels, day grouping,
// catalog order within a day, and blank padding.
func TestFromColoring_ShapeAndPadding(t *testing.T) {
	cat := catalog.Catalog{"Math", "Science", "History", "Art", "Music"}
	// Alice's triangle forces 3 days; Art and Music are isolated and
	// join Math on day 0.
	res := schedule(t, cat, catalog.Enrollments{"Alice": {"Math", "Science", "History"}})

	g := grid.FromColoring(res, cat)
	require.Equal(t, 3, g.Days())
	assert.Equal(t, "Day 1", g.Columns[0].Label)
	assert.Equal(t, "Day 3", g.Columns[2].Label)

	assert.Equal(t, []string{"Math", "Art", "Music"}, g.Columns[0].Cells,
		"day 0 holds Math plus isolated courses, catalog order")
	assert.Equal(t, []string{"Science", "", ""}, g.Columns[1].Cells, "short columns blank-padded")
	assert.Equal(t, []string{"History", "", ""}, g.Columns[2].Cells)
	assert.Equal(t, 3, g.Rows())
}

// TestFromColoring_Empty yields an empty grid for nil or empty input.
func TestFromColoring_Empty(t *testing.T) {
	assert.Zero(t, grid.FromColoring(nil, nil).Days())
	res := schedule(t, catalog.Catalog{}, nil)
	assert.Zero(t, grid.FromColoring(res, catalog.Catalog{}).Days())
}

// TestCourseDays_RoundTrip: inverting an unedited projection gives
// every course a single-element day list equal to its coloring entry.
func TestCourseDays_RoundTrip(t *testing.T) {
	cat := catalog.Catalog{"Math", "Science", "History", "Art"}
	res := schedule(t, cat, catalog.Enrollments{
		"Student1": {"Math", "Science"},
		"Student2": {"History", "Art"},
	})

	days, err := grid.CourseDays(grid.FromColoring(res, cat))
	require.NoError(t, err)
	require.Len(t, days, len(cat))
	for _, c := range cat {
		assert.Equal(t, []int{res.Days[c]}, days[c], "course %s", c)
	}
}

// TestCourseDays_EditedGrid records multi-day placements and ignores
// blank or whitespace-only cells.
func TestCourseDays_EditedGrid(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"Math", "  ", "Science"}},
		{Label: "Day 2", Cells: []string{"Math", "", "Math"}},
	})

	days, err := grid.CourseDays(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, days["Math"], "multi-day course records both days, deduped")
	assert.Equal(t, []int{0}, days["Science"])
	assert.Len(t, days, 2, "blank and whitespace cells contribute nothing")
}

// TestCourseDays_VerbatimCells: cell text is never silently altered,
// so " Math" and "Math" are distinct identifiers until normalization.
func TestCourseDays_VerbatimCells(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{" Math"}},
		{Label: "Day 2", Cells: []string{"Math"}},
	})
	days, err := grid.CourseDays(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, days[" Math"])
	assert.Equal(t, []int{1}, days["Math"])
}

// TestCourseDays_BadLabelFatal: one malformed label aborts the whole
// inverse mapping — no partial data.
func TestCourseDays_BadLabelFatal(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"Math"}},
		{Label: "Second Day", Cells: []string{"Science"}},
	})
	days, err := grid.CourseDays(g)
	assert.ErrorIs(t, err, grid.ErrDayLabel)
	assert.Nil(t, days)

	_, err = grid.CourseDays(nil)
	assert.ErrorIs(t, err, grid.ErrNilGrid)
}

// TestNew_PadsRaggedColumns re-shapes editor output with uneven rows.
func TestNew_PadsRaggedColumns(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"Math", "Science", "History"}},
		{Label: "Day 2", Cells: []string{"Art"}},
	})
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, []string{"Art", "", ""}, g.Columns[1].Cells)
}

// TestClone_Independent guards against aliasing between copies.
func TestClone_Independent(t *testing.T) {
	g := grid.New([]grid.Column{{Label: "Day 1", Cells: []string{"Math"}}})
	dup := g.Clone()
	dup.Columns[0].Cells[0] = "Science"
	assert.Equal(t, "Math", g.Columns[0].Cells[0])
}

// TestNormalizeCells trims and title-cases without touching labels,
// blanks, or the input grid.
func TestNormalizeCells(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"  computer science ", "MATH", ""}},
	})
	norm := grid.NormalizeCells(g)

	assert.Equal(t, []string{"Computer Science", "Math", ""}, norm.Columns[0].Cells)
	assert.Equal(t, "Day 1", norm.Columns[0].Label)
	assert.Equal(t, "  computer science ", g.Columns[0].Cells[0], "input grid untouched")
	assert.Nil(t, grid.NormalizeCells(nil))
}
