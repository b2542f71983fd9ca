// This file implements the violation-gated CSV writers.
package export

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/examsched/grid"
	"github.com/katalvlaran/examsched/validate"
)

// ErrViolations is returned when export is requested for a schedule
// that has not been validated violation-free.
var ErrViolations = errors.New("export: schedule has violations")

// ScheduleRow is one placed course in the long-form roster export.
type ScheduleRow struct {
	Course   string `csv:"course"`
	DayLabel string `csv:"day"`
	DayIndex int    `csv:"day_index"`
}

// guard rejects export unless vs proves the grid is violation-free.
// A nil ViolationSet means "never validated" and is refused too.
func guard(g *grid.Grid, vs *validate.ViolationSet) error {
	if g == nil {
		return grid.ErrNilGrid
	}
	if vs == nil || !vs.Empty() {
		return ErrViolations
	}
	return nil
}

// WriteGrid writes the wide table: a header of day labels, then one
// record per row position with blank-padded cells.
func WriteGrid(w io.Writer, g *grid.Grid, vs *validate.ViolationSet) error {
	if err := guard(g, vs); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, g.Days())
	for i, col := range g.Columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for row := 0; row < g.Rows(); row++ {
		record := make([]string, g.Days())
		for i, col := range g.Columns {
			record[i] = col.Cells[row]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGridFile writes the wide table to path, replacing any existing
// file. No file is produced when the guard refuses.
func WriteGridFile(path string, g *grid.Grid, vs *validate.ViolationSet) error {
	if err := guard(g, vs); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return WriteGrid(out, g, vs)
}

// Rows flattens the grid into long-form roster rows in column order,
// skipping blank cells. The day index comes from the parsed label, not
// the column position, so reordered columns stay truthful. Returns
// grid.ErrDayLabel for a label that does not parse.
func Rows(g *grid.Grid) ([]*ScheduleRow, error) {
	var rows []*ScheduleRow
	for _, col := range g.Columns {
		day, err := grid.ParseDayLabel(col.Label)
		if err != nil {
			return nil, err
		}
		for _, cell := range col.Cells {
			if cell == "" {
				continue
			}
			rows = append(rows, &ScheduleRow{
				Course:   cell,
				DayLabel: col.Label,
				DayIndex: day,
			})
		}
	}
	return rows, nil
}

// WriteRows writes the long-form roster as CSV.
func WriteRows(w io.Writer, g *grid.Grid, vs *validate.ViolationSet) error {
	if err := guard(g, vs); err != nil {
		return err
	}
	rows, err := Rows(g)
	if err != nil {
		return err
	}
	return gocsv.Marshal(&rows, w)
}

// MarshalRows returns the long-form roster as a CSV string.
func MarshalRows(g *grid.Grid, vs *validate.ViolationSet) (string, error) {
	if err := guard(g, vs); err != nil {
		return "", err
	}
	rows, err := Rows(g)
	if err != nil {
		return "", err
	}
	return gocsv.MarshalString(&rows)
}
