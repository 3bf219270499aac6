package policy

// evaluateLRU evicts the resident page with the smallest last-used index.
// Every reference, hit or miss, bumps the page's last-used index to the current
// trace position. Ties on last-used index break toward the smallest page id so
// the outcome does not depend on map iteration order.
func evaluateLRU(trace []int, frameCapacity int) Result {
	total := len(trace)
	if frameCapacity == 0 {
		return Result{Miss: total, Total: total}
	}

	// resident maps page id -> last-used trace index.
	resident := make(map[int]int, frameCapacity)

	miss := 0
	for i, page := range trace {
		if _, ok := resident[page]; !ok {
			miss++
			if len(resident) == frameCapacity {
				victim, oldest := 0, total
				for p, used := range resident {
					if used < oldest || (used == oldest && p < victim) {
						victim, oldest = p, used
					}
				}
				delete(resident, victim)
			}
		}
		resident[page] = i
	}
	return Result{Miss: miss, Total: total}
}
