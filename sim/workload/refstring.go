// Package workload generates the synthetic page-reference strings the analyzer
// drives its replacement policies with.
package workload

import "math/rand"

// RefsPerPage is the number of references generated per page of a process:
// a process with N pages produces a reference string of length 100*N.
const RefsPerPage = 100

// ReferenceString generates one process's page-reference string. Each of the
// RefsPerPage*pagesPerProcess elements is drawn independently and uniformly from
// [1, pagesPerProcess]. The string is generated once and never mutated afterwards.
//
// pagesPerProcess must be >= 1; the page-size-0 skip sentinel is filtered by the
// process runner and never reaches this function.
func ReferenceString(rng *rand.Rand, pagesPerProcess int) []int {
	trace := make([]int, RefsPerPage*pagesPerProcess)
	for i := range trace {
		trace[i] = rng.Intn(pagesPerProcess) + 1
	}
	return trace
}
