package policy

// evaluateMRU is the mirror image of LRU: same resident set and last-used-index
// bookkeeping, but a full miss evicts the page with the *largest* last-used index.
// Ties break toward the smallest page id.
func evaluateMRU(trace []int, frameCapacity int) Result {
	total := len(trace)
	if frameCapacity == 0 {
		return Result{Miss: total, Total: total}
	}

	resident := make(map[int]int, frameCapacity)

	miss := 0
	for i, page := range trace {
		if _, ok := resident[page]; !ok {
			miss++
			if len(resident) == frameCapacity {
				victim, newest := 0, -1
				for p, used := range resident {
					if used > newest || (used == newest && p < victim) {
						victim, newest = p, used
					}
				}
				delete(resident, victim)
			}
		}
		resident[page] = i
	}
	return Result{Miss: miss, Total: total}
}
