package sim

import (
	"math/rand"

	"github.com/pagereplace-sim/pagereplace-sim/sim/policy"
	"github.com/pagereplace-sim/pagereplace-sim/sim/workload"
)

// SkipProcess is the sentinel value for pagesPerProcess and frameCapacity when
// the swept page size is 0 and the configuration is not evaluated.
const SkipProcess = -1

// RunProcess simulates one process: it generates a fresh reference string and
// evaluates all four algorithms against it. When pagesPerProcess is the
// SkipProcess sentinel, no trace is generated and no policy is invoked; every
// algorithm reports policy.Skipped.
//
// A fresh trace and fresh per-policy state are used on every call, so no state
// leaks between processes or page sizes.
func RunProcess(rng *rand.Rand, pagesPerProcess, frameCapacity int) ProcessRow {
	if pagesPerProcess == SkipProcess {
		row := make(ProcessRow, len(policy.All()))
		for _, alg := range policy.All() {
			row[alg] = policy.Skipped
		}
		return row
	}
	trace := workload.ReferenceString(rng, pagesPerProcess)
	return EvaluateAll(trace, frameCapacity)
}

// EvaluateAll runs every algorithm over a fixed reference string. Exposed
// separately from RunProcess so a known trace can be driven through the full
// policy set (regression fixtures, determinism checks).
func EvaluateAll(trace []int, frameCapacity int) ProcessRow {
	row := make(ProcessRow, len(policy.All()))
	for _, alg := range policy.All() {
		row[alg] = policy.Evaluate(alg, trace, frameCapacity)
	}
	return row
}
