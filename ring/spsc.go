// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/atomix"

// SPSC is a single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with cached index optimization.
// The producer caches the consumer's tail cursor, and vice versa,
// reducing cross-core cache line traffic to the rare full/empty
// boundary cases.
//
// One goroutine may call Push and one may call Pop, concurrently.
// SPSC is a single shared struct; callers that want the producer and
// consumer roles separated into non-duplicable handles use [New].
//
// Memory: O(capacity) with no per-slot overhead.
type SPSC[T any] struct {
	_          pad
	head       atomix.Uint64 // producer cursor; consumer acquires it
	_          pad
	cachedTail uint64 // producer's cached view of tail
	_          pad
	tail       atomix.Uint64 // consumer cursor; producer acquires it
	_          pad
	cachedHead uint64 // consumer's cached view of head
	_          pad
	buffer     []T
	capacity   uint64
}

// NewSPSC creates an SPSC queue with the given capacity.
// Panics if capacity < 1.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	return &SPSC[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Push appends an element (producer only).
// Returns ErrWouldBlock if the queue is full; the queue is unchanged.
func (q *SPSC[T]) Push(elem *T) error {
	head := q.head.LoadRelaxed()
	if head-q.cachedTail == q.capacity {
		q.cachedTail = q.tail.LoadAcquire()
		if head-q.cachedTail == q.capacity {
			return ErrWouldBlock
		}
	}

	q.buffer[head%q.capacity] = *elem
	q.head.StoreRelease(head + 1)
	return nil
}

// Pop removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Pop() (T, error) {
	tail := q.tail.LoadRelaxed()
	if tail == q.cachedHead {
		q.cachedHead = q.head.LoadAcquire()
		if tail == q.cachedHead {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := q.buffer[tail%q.capacity]
	var zero T
	q.buffer[tail%q.capacity] = zero
	q.tail.StoreRelease(tail + 1)
	return elem, nil
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.capacity)
}
