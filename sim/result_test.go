package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pagereplace-sim/pagereplace-sim/sim/policy"
)

func processRow(opt, fifo, lru, mru policy.Result) ProcessRow {
	return ProcessRow{
		policy.OPT:  opt,
		policy.FIFO: fifo,
		policy.LRU:  lru,
		policy.MRU:  mru,
	}
}

func TestSweepRow_Merge_FirstRowSeedsCells(t *testing.T) {
	// GIVEN an empty accumulated row
	row := NewSweepRow(2)

	// WHEN the first process row is merged
	pr := processRow(
		policy.Result{Miss: 7, Total: 100},
		policy.Result{Miss: 9, Total: 100},
		policy.Result{Miss: 10, Total: 100},
		policy.Result{Miss: 8, Total: 100},
	)
	row.Merge(pr)

	// THEN every cell equals the seeded result
	for alg, want := range pr {
		assert.Equal(t, want, row.Cells[alg], "%s", alg)
	}
}

func TestSweepRow_Merge_SumsElementwise(t *testing.T) {
	row := NewSweepRow(2)
	row.Merge(processRow(
		policy.Result{Miss: 7, Total: 100},
		policy.Result{Miss: 9, Total: 100},
		policy.Result{Miss: 10, Total: 100},
		policy.Result{Miss: 8, Total: 100},
	))
	row.Merge(processRow(
		policy.Result{Miss: 3, Total: 100},
		policy.Result{Miss: 5, Total: 100},
		policy.Result{Miss: 6, Total: 100},
		policy.Result{Miss: 4, Total: 100},
	))

	assert.Equal(t, policy.Result{Miss: 10, Total: 200}, row.Cells[policy.OPT])
	assert.Equal(t, policy.Result{Miss: 14, Total: 200}, row.Cells[policy.FIFO])
	assert.Equal(t, policy.Result{Miss: 16, Total: 200}, row.Cells[policy.LRU])
	assert.Equal(t, policy.Result{Miss: 12, Total: 200}, row.Cells[policy.MRU])
}

func TestSweepRow_Merge_OrderIndependent(t *testing.T) {
	// GIVEN three distinct process rows
	prs := []ProcessRow{
		processRow(policy.Result{Miss: 1, Total: 10}, policy.Result{Miss: 2, Total: 10}, policy.Result{Miss: 3, Total: 10}, policy.Result{Miss: 4, Total: 10}),
		processRow(policy.Result{Miss: 5, Total: 10}, policy.Result{Miss: 6, Total: 10}, policy.Result{Miss: 7, Total: 10}, policy.Result{Miss: 8, Total: 10}),
		processRow(policy.Result{Miss: 0, Total: 10}, policy.Result{Miss: 9, Total: 10}, policy.Result{Miss: 1, Total: 10}, policy.Result{Miss: 2, Total: 10}),
	}

	// WHEN they are merged in different orders
	forward := NewSweepRow(1)
	for _, pr := range prs {
		forward.Merge(pr)
	}
	backward := NewSweepRow(1)
	for i := len(prs) - 1; i >= 0; i-- {
		backward.Merge(prs[i])
	}

	// THEN the accumulated cells are identical
	assert.Equal(t, forward.Cells, backward.Cells)
}

func TestSweepRow_Merge_SkippedResultsNeverAccumulate(t *testing.T) {
	// GIVEN a sentinel row merged from several skipped process rows
	row := NewSweepRow(0)
	skipped := processRow(policy.Skipped, policy.Skipped, policy.Skipped, policy.Skipped)
	for i := 0; i < 5; i++ {
		row.Merge(skipped)
	}

	// THEN the cells stay exactly (-1, -1) regardless of process count
	for _, alg := range policy.All() {
		assert.Equal(t, policy.Skipped, row.Cells[alg], "%s", alg)
	}
}
