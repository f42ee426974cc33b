// Package queue provides an unbounded multi-producer multi-consumer FIFO.
package queue

import "sync"

// Queue is a thread-safe, unbounded FIFO.
//
// Send order is preserved per producer; no ordering is implied between
// items enqueued by different goroutines.
//
// The queue uses a channel for signaling so consumers can block in a select
// together with other queues and ctx.Done() instead of busy-polling:
//
//	for {
//	    if v, ok := q.TryDequeue(); ok {
//	        return v
//	    }
//	    select {
//	    case <-ctx.Done():
//	        return ctx.Err()
//	    case <-q.Wait():
//	    }
//	}
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{} // buffered, size 1
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		items:  make([]T, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue adds an item to the back of the queue.
// Returns false if the queue is closed.
func (q *Queue[T]) Enqueue(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.items = append(q.items, v)
	q.notifyLocked()
	return true
}

// TryDequeue removes and returns the front item without blocking.
// Returns (zero, false) if the queue is empty.
//
// If items remain after the dequeue the signal is re-armed, so one wakeup
// per enqueue is enough to fan out to several waiting consumers.
func (q *Queue[T]) TryDequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}

	v := q.items[0]
	// Clear the slot so the backing array does not pin the item.
	q.items[0] = zero

	if len(q.items) == 1 {
		q.items = q.items[:0]
	} else {
		q.items = q.items[1:]
		q.notifyLocked()
	}

	return v, true
}

// Wait returns a channel that signals when items may be available.
// After Close the channel is closed and always ready.
func (q *Queue[T]) Wait() <-chan struct{} {
	return q.signal
}

// Notify re-arms the signal if the queue is non-empty. Consumers that
// consumed a wakeup without dequeuing call this so the wakeup is not lost.
func (q *Queue[T]) Notify() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) > 0 {
		q.notifyLocked()
	}
}

// Len returns the current queue length.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// IsEmpty reports whether the queue currently holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Close signals that no more items will be enqueued.
// Wakes all waiters by closing the signal channel. Remaining items can
// still be drained with TryDequeue.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}

// notifyLocked signals availability without blocking; the buffer of one
// coalesces repeated signals. Caller must hold q.mu.
func (q *Queue[T]) notifyLocked() {
	if q.closed {
		return
	}
	select {
	case q.signal <- struct{}{}:
	default:
	}
}
