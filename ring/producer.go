// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "code.hybscloud.com/syncx"

// Producer is the push side of a ring created by [New].
//
// Exactly one goroutine may use a Producer. The handle keeps a private
// copy of the consumer's tail cursor and reloads the shared cursor
// only when the local view says the buffer is full, so the common push
// touches no shared cache line except the slot and its own head.
type Producer[T any] struct {
	noCopy     noCopy
	h          syncx.Shared[state[T]]
	cachedTail uint64
	closed     bool
}

// Push appends an element.
// Returns ErrWouldBlock if the buffer is full; the buffer and the
// element are unchanged and the caller keeps ownership of the value.
func (p *Producer[T]) Push(elem *T) error {
	if p.closed {
		panic("ring: push on closed producer")
	}
	s := p.h.Value()

	head := s.head.LoadRelaxed()
	if head-p.cachedTail == s.capacity {
		p.cachedTail = s.tail.LoadAcquire()
		if head-p.cachedTail == s.capacity {
			return ErrWouldBlock
		}
	}

	s.buffer[head%s.capacity] = *elem
	s.head.StoreRelease(head + 1)
	return nil
}

// Reserve grants zero-copy access to the next free slot.
// Returns ErrWouldBlock if the buffer is full.
//
// The caller writes the value through [Pusher.Value] and publishes it
// with [Pusher.Commit]; until then the consumer cannot observe the
// slot. At most one reservation may be outstanding.
func (p *Producer[T]) Reserve() (Pusher[T], error) {
	if p.closed {
		panic("ring: reserve on closed producer")
	}
	s := p.h.Value()

	head := s.head.LoadRelaxed()
	if head-p.cachedTail == s.capacity {
		p.cachedTail = s.tail.LoadAcquire()
		if head-p.cachedTail == s.capacity {
			return Pusher[T]{}, ErrWouldBlock
		}
	}

	return Pusher[T]{s: s, head: head}, nil
}

// Cap returns the buffer capacity.
func (p *Producer[T]) Cap() int {
	return int(p.h.Value().capacity)
}

// Close releases the producer's share of the buffer. The buffer is
// drained and dropped when both handles are closed. Close is
// idempotent; using the producer after Close panics.
func (p *Producer[T]) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.h.Release()
}

// Pusher is a scoped accessor to one reserved slot.
//
// The head cursor moves only in Commit, with a release store, so the
// published cursor is never visible before the slot contents are fully
// written. Commit is idempotent: deferring it guarantees publication
// on every exit path without risking a double advance.
type Pusher[T any] struct {
	s    *state[T]
	head uint64
	done bool
}

// Value returns the reserved slot. The pointer must not be used after
// Commit.
func (ps *Pusher[T]) Value() *T {
	if ps.done {
		panic("ring: pusher used after commit")
	}
	return &ps.s.buffer[ps.head%ps.s.capacity]
}

// Commit publishes the reserved slot to the consumer.
func (ps *Pusher[T]) Commit() {
	if ps.done {
		return
	}
	ps.done = true
	ps.s.head.StoreRelease(ps.head + 1)
}
