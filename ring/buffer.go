// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// Buffer is a bounded FIFO for use by a single goroutine.
//
// Buffer is the sequential baseline of the ring family: two plain
// cursors, no atomics, no padding. It is not safe for concurrent use
// from any two goroutines; for that, see [SPSC] and [New].
type Buffer[T any] struct {
	buffer   []T
	capacity uint64
	head     uint64 // counts values pushed
	tail     uint64 // counts values popped
}

// NewBuffer creates a Buffer with the given capacity.
// Panics if capacity < 1.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	return &Buffer[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
	}
}

// Push appends an element.
// Returns ErrWouldBlock if the buffer is full; the buffer is unchanged.
func (b *Buffer[T]) Push(elem *T) error {
	if b.head-b.tail == b.capacity {
		return ErrWouldBlock
	}
	b.buffer[b.head%b.capacity] = *elem
	b.head++
	return nil
}

// Pop removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the buffer is empty.
func (b *Buffer[T]) Pop() (T, error) {
	if b.head == b.tail {
		var zero T
		return zero, ErrWouldBlock
	}
	elem := b.buffer[b.tail%b.capacity]
	var zero T
	b.buffer[b.tail%b.capacity] = zero
	b.tail++
	return elem, nil
}

// Len returns the number of buffered elements.
func (b *Buffer[T]) Len() int {
	return int(b.head - b.tail)
}

// Cap returns the buffer capacity.
func (b *Buffer[T]) Cap() int {
	return int(b.capacity)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.head == b.tail
}

// Full reports whether the buffer is at capacity.
func (b *Buffer[T]) Full() bool {
	return b.head-b.tail == b.capacity
}
