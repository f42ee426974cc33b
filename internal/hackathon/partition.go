package hackathon

// Partition splits total across workers by even division with remainder.
// Worker i receives total/workers, plus one if i < total%workers, so the
// counts sum to total and differ by at most one.
func Partition(total, workers int) ([]int, error) {
	if workers <= 0 {
		return nil, NewConfigurationError("worker count must be at least 1, got %d", workers)
	}
	if total < 0 {
		return nil, NewConfigurationError("total must not be negative, got %d", total)
	}

	base, extra := total/workers, total%workers
	counts := make([]int, workers)
	for i := range counts {
		counts[i] = base
		if i < extra {
			counts[i]++
		}
	}
	return counts, nil
}

// offsets returns the running start index for each partition count.
func offsets(counts []int) []int {
	starts := make([]int, len(counts))
	next := 0
	for i, c := range counts {
		starts[i] = next
		next += c
	}
	return starts
}
