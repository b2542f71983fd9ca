// Command examsched computes an exam-day schedule from per-student
// course selections, validates it (or a hand-edited revision of it),
// and exports the result as CSV once it is violation-free.
//
// Usage:
//
//	examsched -input students.json [-out schedule.csv] [-edited edited.csv] [-apply] [-long]
//
// The input file is a JSON object:
//
//	{
//	  "catalog":  ["Math", "Science", "History"],
//	  "students": {"Student 1": ["Math", "Science"]},
//	  "render":   {"layout": "spring", "nodeSize": 20}
//	}
//
// With -edited, the given grid CSV is validated against the
// enrollments instead of the fresh projection; -apply first trims and
// title-cases its cells the way the interactive editor's "apply
// changes" action does. Export is refused while violations remain.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"github.com/katalvlaran/examsched/catalog"
	"github.com/katalvlaran/examsched/coloring"
	"github.com/katalvlaran/examsched/conflict"
	"github.com/katalvlaran/examsched/export"
	"github.com/katalvlaran/examsched/grid"
	"github.com/katalvlaran/examsched/render"
	"github.com/katalvlaran/examsched/validate"
)

// input mirrors the JSON input file.
type input struct {
	Catalog  []string            `mapstructure:"catalog"`
	Students map[string][]string `mapstructure:"students"`
	Render   map[string]any      `mapstructure:"render"`
}

func main() {
	inputPtr := flag.String("input", "", "Path to the JSON input file (catalog + students, required)")
	outPtr := flag.String("out", "", "Path for the CSV export; if empty, the CSV is written to the standard output")
	editedPtr := flag.String("edited", "", "Path to an edited schedule grid CSV to validate instead of the fresh projection")
	applyPtr := flag.Bool("apply", false, "Trim and title-case the edited grid's cells before validating")
	longPtr := flag.Bool("long", false, "Export the long-form roster (course,day,day_index) instead of the wide table")
	flag.Parse()

	if *inputPtr == "" {
		log.Fatal("an input file must be specified")
	}

	in, err := inputFromJSON(*inputPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	cat := catalog.Catalog(lo.Map(in.Catalog, func(s string, _ int) catalog.Course { return catalog.Course(s) }))
	enr := catalog.Enrollments{}
	for student, courses := range in.Students {
		enr[catalog.Student(student)] = lo.Map(courses, func(s string, _ int) catalog.Course { return catalog.Course(s) })
	}

	// Presentation config is validated up front so a bad palette or
	// layout fails fast, but it never influences the schedule below.
	opts := render.DefaultOptions()
	if in.Render != nil {
		if opts, err = render.Decode(in.Render); err != nil {
			log.Fatalf("invalid render options: %v", err)
		}
	}

	g, err := conflict.Build(cat, enr)
	if err != nil {
		log.Fatalf("cannot build conflict graph: %v", err)
	}
	res, err := coloring.Greedy(g)
	if err != nil {
		log.Fatalf("cannot color conflict graph: %v", err)
	}
	fmt.Printf("Courses: %d, conflicts: %d\n", g.Order(), g.EdgeCount())
	fmt.Printf("Minimum number of exam days (greedy upper bound): %d\n", res.DayCount)

	table := grid.FromColoring(res, cat)
	if *editedPtr != "" {
		if table, err = gridFromCSV(*editedPtr); err != nil {
			log.Fatalf("cannot read edited grid: %v", err)
		}
		if *applyPtr {
			table = grid.NormalizeCells(table)
		}
	}
	printGrid(table, opts)

	vs, err := validate.Schedule(table, enr)
	if err != nil {
		log.Fatalf("cannot validate schedule: %v", err)
	}
	fmt.Print(vs.String())
	if !vs.Empty() {
		fmt.Println("Export refused: fix the violations above and validate again.")
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outPtr != "" {
		f, err := os.Create(*outPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer f.Close()
		out = f
	}
	if *longPtr {
		err = export.WriteRows(out, table, vs)
	} else {
		err = export.WriteGrid(out, table, vs)
	}
	if err != nil {
		log.Fatalf("cannot export schedule: %v", err)
	}
	if *outPtr != "" {
		fmt.Printf("Schedule exported to %s\n", *outPtr)
	}
}

// inputFromJSON reads the JSON input file and decodes it through a
// loosely-typed map, so unknown keys are tolerated.
func inputFromJSON(path string) (input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, err
	}
	var raw map[string]any
	if err = json.Unmarshal(data, &raw); err != nil {
		return input{}, err
	}
	var in input
	if err = mapstructure.Decode(raw, &in); err != nil {
		return input{}, err
	}
	return in, nil
}

// gridFromCSV reads a schedule grid CSV: header row of day labels,
// then one record per row position. Ragged records are tolerated and
// re-padded.
func gridFromCSV(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &grid.Grid{}, nil
	}

	columns := lo.Map(records[0], func(label string, _ int) grid.Column { return grid.Column{Label: label} })
	for _, record := range records[1:] {
		for i := range columns {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}
			columns[i].Cells = append(columns[i].Cells, cell)
		}
	}
	return grid.New(columns), nil
}

// printGrid renders the table and a per-day color legend for external
// visualizers. Colors are presentation only.
func printGrid(g *grid.Grid, opts render.Options) {
	for day, col := range g.Columns {
		fmt.Printf("%-8s (%s):", col.Label, opts.ColorForDay(day))
		for _, cell := range col.Cells {
			if cell != "" {
				fmt.Printf(" %s", cell)
			}
		}
		fmt.Println()
	}
}
