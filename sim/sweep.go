package sim

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// pageGeometry derives the per-process page count and the RAM frame capacity for
// one candidate page size. Page size 0 is the skip sentinel: nothing fits, the
// configuration is not evaluated.
func pageGeometry(pageSize, ramSize, processSize int) (pagesPerProcess, frameCapacity int) {
	if pageSize == 0 {
		return SkipProcess, SkipProcess
	}
	return (processSize + pageSize - 1) / pageSize, ramSize / pageSize
}

// RunSweep evaluates every candidate page size from 0 to min(RAMSize,
// ProcessSize) and returns the accumulated ResultMatrix, one row per page size in
// sweep order.
//
// Within a page size the cfg.Processes runs fan out across worker goroutines.
// Each worker owns a pre-derived RNG stream and writes only its own slot of the
// results slice; the fold into the SweepRow happens after all workers finish, on
// the sweep goroutine. The matrix is therefore a pure function of cfg — the same
// config and seed produce identical results at any worker count.
func RunSweep(cfg SweepConfig) (*ResultMatrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	prng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	maxPageSize := min(cfg.RAMSize, cfg.ProcessSize)
	matrix := &ResultMatrix{Rows: make([]SweepRow, 0, maxPageSize+1)}

	for pageSize := 0; pageSize <= maxPageSize; pageSize++ {
		pages, frames := pageGeometry(pageSize, cfg.RAMSize, cfg.ProcessSize)
		logrus.Debugf("sweep: pageSize=%d pagesPerProcess=%d frameCapacity=%d processes=%d",
			pageSize, pages, frames, cfg.Processes)

		// Derive every process's RNG stream before workers start; PartitionedRNG
		// is not safe for concurrent derivation.
		rngs := make([]*rand.Rand, cfg.Processes)
		for p := range rngs {
			rngs[p] = prng.ForSubsystem(SubsystemProcess(pageSize, p))
		}

		rows := make([]ProcessRow, cfg.Processes)
		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for p := 0; p < cfg.Processes; p++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(p int) {
				defer wg.Done()
				defer func() { <-sem }()
				rows[p] = RunProcess(rngs[p], pages, frames)
			}(p)
		}
		wg.Wait()

		row := NewSweepRow(pageSize)
		for _, pr := range rows {
			row.Merge(pr)
		}
		matrix.Append(row)
	}
	return matrix, nil
}
