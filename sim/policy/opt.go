package policy

// evaluateOPT implements Belady's optimal algorithm. It needs full-trace
// lookahead: next[i] is the index of the next occurrence of trace[i] after i, or
// len(trace) when the page never occurs again.
//
// Residency is keyed by page id, with the page's current next-occurrence index as
// the value. Keying by id matters: several residents may share the same
// next-occurrence index (any two pages that never occur again both carry the
// len(trace) sentinel), and an index-keyed set would collapse them into one entry
// and lose track of residency. A full miss evicts the resident with the largest
// next-occurrence index; ties break toward the smallest page id.
func evaluateOPT(trace []int, frameCapacity int) Result {
	total := len(trace)
	if frameCapacity == 0 {
		return Result{Miss: total, Total: total}
	}

	next := make([]int, total)
	upcoming := make(map[int]int) // page id -> earliest index seen so far (scanning backwards)
	for i := total - 1; i >= 0; i-- {
		if j, ok := upcoming[trace[i]]; ok {
			next[i] = j
		} else {
			next[i] = total
		}
		upcoming[trace[i]] = i
	}

	// resident maps page id -> next-occurrence index as of the current position.
	resident := make(map[int]int, frameCapacity)

	miss := 0
	for i, page := range trace {
		if _, ok := resident[page]; ok {
			resident[page] = next[i]
			continue
		}
		miss++
		if len(resident) == frameCapacity {
			victim, furthest := 0, -1
			for p, occ := range resident {
				if occ > furthest || (occ == furthest && p < victim) {
					victim, furthest = p, occ
				}
			}
			delete(resident, victim)
		}
		resident[page] = next[i]
	}
	return Result{Miss: miss, Total: total}
}
