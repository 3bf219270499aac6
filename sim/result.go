package sim

import (
	"github.com/pagereplace-sim/pagereplace-sim/sim/policy"
)

// ProcessRow maps each algorithm to its result for a single simulated process.
type ProcessRow map[policy.Algorithm]policy.Result

// SweepRow accumulates results for one page size across every simulated process.
// Cells hold elementwise miss/total sums; for the page-size-0 sentinel row every
// cell stays policy.Skipped no matter how many processes ran.
type SweepRow struct {
	PageSize int
	Cells    map[policy.Algorithm]policy.Result
}

// NewSweepRow creates an empty accumulated row for the given page size.
func NewSweepRow(pageSize int) SweepRow {
	return SweepRow{
		PageSize: pageSize,
		Cells:    make(map[policy.Algorithm]policy.Result, len(policy.All())),
	}
}

// Merge folds one process's results into the row. The first result for an
// algorithm seeds its cell; subsequent results add Miss and Total elementwise.
// Addition is commutative and associative, so merge order across processes does
// not affect the totals. Skipped results never accumulate into evaluated cells.
func (r *SweepRow) Merge(pr ProcessRow) {
	for alg, res := range pr {
		cell, ok := r.Cells[alg]
		if !ok || cell.Skipped() {
			r.Cells[alg] = res
			continue
		}
		if res.Skipped() {
			continue
		}
		cell.Miss += res.Miss
		cell.Total += res.Total
		r.Cells[alg] = cell
	}
}

// ResultMatrix is the full sweep output: one SweepRow per candidate page size, in
// page-size order starting at the sentinel row for page size 0. Row order is
// semantically meaningful — it is the x-axis of the final report.
type ResultMatrix struct {
	Rows []SweepRow
}

// Append adds a completed row. Rows must arrive in page-size order; the sweep is
// the only writer.
func (m *ResultMatrix) Append(row SweepRow) {
	m.Rows = append(m.Rows, row)
}
