package policy

// evaluateFIFO evicts in strict arrival order: the page that has been resident
// longest leaves first, regardless of how recently it was referenced. Arrival
// order is a total order, so FIFO needs no tie-break.
func evaluateFIFO(trace []int, frameCapacity int) Result {
	total := len(trace)
	if frameCapacity == 0 {
		return Result{Miss: total, Total: total}
	}

	resident := make(map[int]struct{}, frameCapacity)
	arrivals := make([]int, 0, frameCapacity)

	miss := 0
	for _, page := range trace {
		if _, ok := resident[page]; ok {
			continue
		}
		miss++
		if len(resident) == frameCapacity {
			delete(resident, arrivals[0])
			arrivals = arrivals[1:]
		}
		resident[page] = struct{}{}
		arrivals = append(arrivals, page)
	}
	return Result{Miss: miss, Total: total}
}
