package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/export"
	"github.com/katalvlaran/examsched/grid"
	"github.com/katalvlaran/examsched/validate"
)

// validated returns a two-day grid together with its (clean)
// validation result.
func validated(t *testing.T) (*grid.Grid, *validate.ViolationSet) {
	t.Helper()
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"Math", "History"}},
		{Label: "Day 2", Cells: []string{"Science", ""}},
	})
	vs, err := validate.Schedule(g, catalog.Enrollments{
		"Student1": {"Math", "Science"},
	})
	require.NoError(t, err)
	require.True(t, vs.Empty())
	return g, vs
}

// TestWriteGrid_Wide pins the canonical wide-table layout.
func TestWriteGrid_Wide(t *testing.T) {
	g, vs := validated(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteGrid(&buf, g, vs))

	want := "Day 1,Day 2\nMath,Science\nHistory,\n"
	assert.Equal(t, want, buf.String())
}

// TestExport_RefusedOnViolations: no artifact, in any form, for a
// dirty or unvalidated schedule.
func TestExport_RefusedOnViolations(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 1", Cells: []string{"Math", "Science"}},
	})
	dirty, err := validate.Schedule(g, catalog.Enrollments{"Student1": {"Math", "Science"}})
	require.NoError(t, err)
	require.False(t, dirty.Empty())

	var buf bytes.Buffer
	assert.ErrorIs(t, export.WriteGrid(&buf, g, dirty), export.ErrViolations)
	assert.ErrorIs(t, export.WriteRows(&buf, g, dirty), export.ErrViolations)
	_, err = export.MarshalRows(g, dirty)
	assert.ErrorIs(t, err, export.ErrViolations)
	assert.Zero(t, buf.Len(), "refused export must not emit partial output")

	// nil ViolationSet means "never validated": refused as well.
	assert.ErrorIs(t, export.WriteGrid(&buf, g, nil), export.ErrViolations)

	path := filepath.Join(t.TempDir(), "schedule.csv")
	assert.ErrorIs(t, export.WriteGridFile(path, g, dirty), export.ErrViolations)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file may be created on refusal")
}

// TestMarshalRows_LongForm pins the gocsv roster shape.
func TestMarshalRows_LongForm(t *testing.T) {
	g, vs := validated(t)
	got, err := export.MarshalRows(g, vs)
	require.NoError(t, err)

	want := "course,day,day_index\n" +
		"Math,Day 1,0\n" +
		"History,Day 1,0\n" +
		"Science,Day 2,1\n"
	assert.Equal(t, want, got)
}

// TestRows_ParsedDayIndex: reordered columns keep truthful indices,
// and bad labels surface as grid.ErrDayLabel.
func TestRows_ParsedDayIndex(t *testing.T) {
	g := grid.New([]grid.Column{
		{Label: "Day 2", Cells: []string{"Science"}},
		{Label: "Day 1", Cells: []string{"Math"}},
	})
	rows, err := export.Rows(g)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].DayIndex)
	assert.Equal(t, 0, rows[1].DayIndex)

	bad := grid.New([]grid.Column{{Label: "Monday", Cells: []string{"Math"}}})
	_, err = export.Rows(bad)
	assert.ErrorIs(t, err, grid.ErrDayLabel)
}

// TestWriteGridFile writes and re-reads the artifact.
func TestWriteGridFile(t *testing.T) {
	g, vs := validated(t)
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, export.WriteGridFile(path, g, vs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Day 1,Day 2\nMath,Science\nHistory,\n", string(data))

	assert.ErrorIs(t, export.WriteGrid(&bytes.Buffer{}, nil, vs), grid.ErrNilGrid)
}
