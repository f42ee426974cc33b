package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_EnqueueDequeue(t *testing.T) {
	q := New[string]()

	ok := q.Enqueue("idea-1")
	require.True(t, ok, "enqueue should succeed")

	got, ok := q.TryDequeue()
	require.True(t, ok, "dequeue should succeed")
	assert.Equal(t, "idea-1", got)
}

func TestQueue_FIFO(t *testing.T) {
	q := New[string]()

	for _, s := range []string{"A", "B", "C"} {
		q.Enqueue(s)
	}

	for _, want := range []string{"A", "B", "C"} {
		got, ok := q.TryDequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestQueue_TryDequeue_Empty(t *testing.T) {
	q := New[int]()

	_, ok := q.TryDequeue()
	assert.False(t, ok, "dequeue from empty queue should return false")
	assert.True(t, q.IsEmpty())
}

func TestQueue_Wait_SignalsOnEnqueue(t *testing.T) {
	q := New[int]()

	done := make(chan int)
	go func() {
		for {
			if v, ok := q.TryDequeue(); ok {
				done <- v
				return
			}
			<-q.Wait()
		}
	}()

	time.Sleep(10 * time.Millisecond)
	q.Enqueue(42)

	select {
	case v := <-done:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("waiter did not wake on enqueue")
	}
}

func TestQueue_TryDequeue_RearmsSignal(t *testing.T) {
	q := New[int]()
	q.Enqueue(1)
	q.Enqueue(2)

	// Drain the coalesced signal.
	<-q.Wait()

	_, ok := q.TryDequeue()
	require.True(t, ok)

	select {
	case <-q.Wait():
	default:
		t.Fatal("signal should be re-armed while items remain")
	}
}

func TestQueue_Notify(t *testing.T) {
	q := New[int]()

	q.Notify()
	select {
	case <-q.Wait():
		t.Fatal("notify on empty queue should not signal")
	default:
	}

	q.Enqueue(1)
	<-q.Wait()
	q.Notify()
	select {
	case <-q.Wait():
	default:
		t.Fatal("notify on non-empty queue should signal")
	}
}

func TestQueue_Close(t *testing.T) {
	q := New[int]()
	q.Enqueue(7)
	q.Close()

	assert.True(t, q.Closed())
	assert.False(t, q.Enqueue(8), "enqueue after close should return false")

	// Remaining items are still drained.
	v, ok := q.TryDequeue()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	select {
	case <-q.Wait():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("wait channel should be closed")
	}

	// Idempotent.
	q.Close()
}

func TestQueue_ConcurrentProducersConsumers(t *testing.T) {
	const producers = 4
	const perProducer = 500
	const consumers = 4

	q := New[int]()
	var produced sync.WaitGroup
	for p := 0; p < producers; p++ {
		produced.Add(1)
		go func(p int) {
			defer produced.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(p*perProducer + i)
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]int)
	var consumed sync.WaitGroup
	stop := make(chan struct{})
	for c := 0; c < consumers; c++ {
		consumed.Add(1)
		go func() {
			defer consumed.Done()
			for {
				if v, ok := q.TryDequeue(); ok {
					mu.Lock()
					seen[v]++
					mu.Unlock()
					continue
				}
				select {
				case <-q.Wait():
				case <-stop:
					// Final drain after producers finished.
					for {
						v, ok := q.TryDequeue()
						if !ok {
							return
						}
						mu.Lock()
						seen[v]++
						mu.Unlock()
					}
				}
			}
		}()
	}

	produced.Wait()
	close(stop)
	consumed.Wait()

	require.Len(t, seen, producers*perProducer)
	for v, n := range seen {
		assert.Equal(t, 1, n, "item %d dequeued more than once", v)
	}
}
