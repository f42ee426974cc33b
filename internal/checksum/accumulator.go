package checksum

import "sync"

// Accumulator is a shared checksum guarded by a single mutex.
//
// The accumulated value is only reachable through MergeInto and Sum; callers
// never mutate it directly.
//
// Thread-safety: all methods are safe for concurrent use.
type Accumulator struct {
	mu    sync.Mutex
	sum   Checksum
	count int64
}

// NewAccumulator creates an accumulator holding the identity.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// MergeInto folds a locally computed batch into the shared value.
// n is the number of digests in the batch and is tracked for reporting only.
func (a *Accumulator) MergeInto(local Checksum, n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum = Merge(a.sum, local)
	a.count += int64(n)
}

// Sum returns the current accumulated value.
func (a *Accumulator) Sum() Checksum {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sum
}

// Count returns how many digests have been merged so far.
func (a *Accumulator) Count() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}
