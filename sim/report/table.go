// Package report renders a ResultMatrix as the final hit-rate table.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pagereplace-sim/pagereplace-sim/sim"
	"github.com/pagereplace-sim/pagereplace-sim/sim/policy"
)

// notApplicable fills cells whose hit rate is undefined (skipped configuration
// or empty reference string).
const notApplicable = "n/a"

// Render writes the hit-rate table for a completed sweep. Columns follow the
// algorithm ID order (OPT, FIFO, LRU, MRU); one data row per evaluated page
// size. The page-size-0 sentinel row carries no evaluated cells and is omitted,
// and no rate is ever computed without the HitRate guard.
func Render(w io.Writer, matrix *sim.ResultMatrix) {
	table := tablewriter.NewWriter(w)

	header := []string{"Page Size"}
	for _, alg := range policy.All() {
		header = append(header, fmt.Sprintf("%s (Hit Rate)", alg))
	}
	table.SetHeader(header)

	for _, row := range matrix.Rows {
		if skippedRow(row) {
			continue
		}
		cells := []string{fmt.Sprintf("%d", row.PageSize)}
		for _, alg := range policy.All() {
			cells = append(cells, formatCell(row.Cells[alg]))
		}
		table.Append(cells)
	}
	table.Render()
}

// skippedRow reports whether every cell of the row is unevaluated.
func skippedRow(row sim.SweepRow) bool {
	for _, res := range row.Cells {
		if !res.Skipped() {
			return false
		}
	}
	return true
}

func formatCell(res policy.Result) string {
	rate, ok := res.HitRate()
	if !ok {
		return notApplicable
	}
	return fmt.Sprintf("%.6f", rate)
}
