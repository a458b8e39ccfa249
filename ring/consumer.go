// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/syncx"

// Consumer is the pop side of a ring created by [New].
//
// Exactly one goroutine may use a Consumer. The handle keeps a private
// copy of the producer's head cursor and reloads the shared cursor
// only when the local view says the buffer is empty.
type Consumer[T any] struct {
	noCopy     noCopy
	h          syncx.Shared[state[T]]
	cachedHead uint64
	closed     bool
}

// Pop removes and returns the oldest element.
// Returns (zero-value, ErrWouldBlock) if the buffer is empty; the
// buffer is unchanged.
func (c *Consumer[T]) Pop() (T, error) {
	if c.closed {
		panic("ring: pop on closed consumer")
	}
	s := c.h.Value()

	tail := s.tail.LoadRelaxed()
	if tail == c.cachedHead {
		c.cachedHead = s.head.LoadAcquire()
		if tail == c.cachedHead {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := s.buffer[tail%s.capacity]
	var zero T
	s.buffer[tail%s.capacity] = zero
	s.tail.StoreRelease(tail + 1)
	return elem, nil
}

// Peek grants zero-copy access to the oldest element.
// Returns ErrWouldBlock if the buffer is empty.
//
// The slot stays owned by the consumer until [Popper.Release], which
// clears it and frees it for reuse by the producer. Releasing in a
// defer consumes the element exactly once even when the caller exits
// early through an error path. At most one peek may be outstanding.
func (c *Consumer[T]) Peek() (Popper[T], error) {
	if c.closed {
		panic("ring: peek on closed consumer")
	}
	s := c.h.Value()

	tail := s.tail.LoadRelaxed()
	if tail == c.cachedHead {
		c.cachedHead = s.head.LoadAcquire()
		if tail == c.cachedHead {
			return Popper[T]{}, ErrWouldBlock
		}
	}

	return Popper[T]{s: s, tail: tail}, nil
}

// Cap returns the buffer capacity.
func (c *Consumer[T]) Cap() int {
	return int(c.h.Value().capacity)
}

// Close releases the consumer's share of the buffer. The buffer is
// drained and dropped when both handles are closed. Close is
// idempotent; using the consumer after Close panics.
func (c *Consumer[T]) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.h.Release()
}

// Popper is a scoped accessor to the oldest occupied slot.
//
// The tail cursor moves only in Release, with a release store, after
// the slot has been cleared. A producer observing the advanced tail is
// guaranteed the slot is safe to overwrite. Release is idempotent, so
// a deferred Release consumes the slot at most once.
type Popper[T any] struct {
	s    *state[T]
	tail uint64
	done bool
}

// Value returns the slot holding the oldest element. The pointer must
// not be used after Release.
func (pp *Popper[T]) Value() *T {
	if pp.done {
		panic("ring: popper used after release")
	}
	return &pp.s.buffer[pp.tail%pp.s.capacity]
}

// Release consumes the element: clears the slot and returns it to the
// producer.
func (pp *Popper[T]) Release() {
	if pp.done {
		return
	}
	pp.done = true
	var zero T
	pp.s.buffer[pp.tail%pp.s.capacity] = zero
	pp.s.tail.StoreRelease(pp.tail + 1)
}
