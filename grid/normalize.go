package grid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCells returns a copy of g with every cell trimmed and
// title-cased ("  computer science " → "Computer Science"). This is
// the external "apply changes" action: callers invoke it explicitly
// before re-validating an edited grid. Labels are left untouched and
// blank cells stay blank. A nil grid stays nil.
func NormalizeCells(g *Grid) *Grid {
	if g == nil {
		return nil
	}
	caser := cases.Title(language.English)
	out := g.Clone()
	for i := range out.Columns {
		for j, cell := range out.Columns[i].Cells {
			out.Columns[i].Cells[j] = caser.String(strings.TrimSpace(cell))
		}
	}
	return out
}
