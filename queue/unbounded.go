// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync/atomic"

	"code.hybscloud.com/spin"
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// node is one link of the chain. A node starts unlinked, becomes
// reachable when some enqueuer CASes it into a next pointer, serves as
// the sentinel once a dequeuer CASes head onto it, and is reclaimed by
// the GC after the next dequeue unlinks it.
type node[T any] struct {
	next atomic.Pointer[node[T]]
	data T
}

// Unbounded is a Michael–Scott multi-producer multi-consumer queue.
//
// head always points at the sentinel: its payload slot is logically
// consumed and the first live element, if any, is sentinel.next. tail
// points at the last linked node, possibly one step stale; both
// enqueuers and dequeuers repair a stale tail before proceeding.
//
// The zero Unbounded is not usable; create one with [New].
type Unbounded[T any] struct {
	_    pad
	head atomic.Pointer[node[T]] // sentinel
	_    pad
	tail atomic.Pointer[node[T]] // last linked node, possibly stale
	_    pad
	drop func(T)
}

// New creates an empty queue. The chain starts as a single sentinel
// node referenced by both head and tail.
func New[T any](opts ...Option[T]) *Unbounded[T] {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &Unbounded[T]{drop: cfg.drop}
	sentinel := &node[T]{}
	q.head.Store(sentinel)
	q.tail.Store(sentinel)
	return q
}

// Enqueue adds an element to the queue. Never fails; the error return
// satisfies [Producer] and is always nil.
//
// Safe for any number of concurrent enqueuers.
func (q *Unbounded[T]) Enqueue(elem *T) error {
	n := &node[T]{data: *elem}

	sw := spin.Wait{}
	for {
		tail := q.tail.Load()
		next := tail.next.Load()

		if next != nil {
			// The recorded tail is stale: another enqueue linked its
			// node but has not swung tail yet. Help it along, retry.
			q.tail.CompareAndSwap(tail, next)
			continue
		}

		// Linking is the linearization point. The CAS publishes the
		// fully constructed node: a thread that observes the link also
		// observes the payload.
		if tail.next.CompareAndSwap(nil, n) {
			// Best effort; on failure the next operation's helping
			// step repairs tail.
			q.tail.CompareAndSwap(tail, n)
			return nil
		}
		sw.Once()
	}
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// Safe for any number of concurrent dequeuers.
func (q *Unbounded[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		next := head.next.Load()

		if head == tail {
			if next == nil {
				var zero T
				return zero, ErrWouldBlock
			}
			// An enqueue is mid-flight; help advance tail, retry.
			q.tail.CompareAndSwap(tail, next)
			continue
		}

		if next == nil {
			// Inconsistent snapshot: head moved between the loads.
			sw.Once()
			continue
		}

		// Winning this CAS claims next's payload and makes the old
		// sentinel unreachable from any future traversal. The payload
		// is read strictly after the win: the loser of a race on the
		// same node never touches it.
		if q.head.CompareAndSwap(head, next) {
			elem := next.data
			var zero T
			next.data = zero // next is the new sentinel; slot is dead
			return elem, nil
		}
		sw.Once()
	}
}

// Drain removes every element currently in the queue, invoking the
// [WithDrop] hook per element. Concurrent enqueues may outrun a drain;
// the caller is responsible for stopping producers first when a full
// drain is required. The queue remains usable afterwards.
func (q *Unbounded[T]) Drain() {
	for {
		elem, err := q.Dequeue()
		if err != nil {
			return
		}
		if q.drop != nil {
			q.drop(elem)
		}
	}
}

var _ Queue[int] = (*Unbounded[int])(nil)
