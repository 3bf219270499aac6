// Package policy implements the four page-replacement algorithms the analyzer
// compares: OPT, FIFO, LRU, and MRU.
//
// Every evaluation is a pure function from (reference string, frame capacity) to a
// hit/miss Result. All working state — resident sets, arrival queues, recency maps,
// lookahead tables — is scoped to a single Evaluate call, so evaluations of
// different algorithms or different processes are safe to run concurrently over a
// shared, read-only reference string.
package policy

import "fmt"

// Algorithm identifies one of the supported page-replacement algorithms.
// The numeric values fix the column order of the final report.
type Algorithm int

const (
	OPT Algorithm = iota + 1 // evicts the page referenced furthest in the future
	FIFO                     // evicts the earliest-arrived page
	LRU                      // evicts the least-recently referenced page
	MRU                      // evicts the most-recently referenced page
)

// All returns the algorithms in report column order.
func All() []Algorithm {
	return []Algorithm{OPT, FIFO, LRU, MRU}
}

func (a Algorithm) String() string {
	switch a {
	case OPT:
		return "OPT"
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case MRU:
		return "MRU"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Result holds the outcome of evaluating one algorithm over one reference string.
// Invariant for evaluated results: 0 <= Miss <= Total.
type Result struct {
	Miss  int // references whose page was not resident
	Total int // length of the reference string
}

// Skipped is the result of a configuration that was never evaluated
// (page size 0 in a sweep). Callers must check Skipped() before computing rates.
var Skipped = Result{Miss: -1, Total: -1}

// Skipped reports whether this result marks a not-evaluated configuration.
func (r Result) Skipped() bool {
	return r.Total < 0
}

// HitRate returns (Total-Miss)/Total and true, or (0, false) when the rate is
// undefined (skipped result or empty reference string).
func (r Result) HitRate() (float64, bool) {
	if r.Total <= 0 {
		return 0, false
	}
	return float64(r.Total-r.Miss) / float64(r.Total), true
}

// Evaluate runs one algorithm over a reference string with the given frame
// capacity. The reference string is never mutated. frameCapacity must be >= 0;
// capacity 0 means no page is ever resident and every reference misses.
func Evaluate(a Algorithm, trace []int, frameCapacity int) Result {
	switch a {
	case OPT:
		return evaluateOPT(trace, frameCapacity)
	case FIFO:
		return evaluateFIFO(trace, frameCapacity)
	case LRU:
		return evaluateLRU(trace, frameCapacity)
	case MRU:
		return evaluateMRU(trace, frameCapacity)
	default:
		panic(fmt.Sprintf("unknown algorithm %d", int(a)))
	}
}
