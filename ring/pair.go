// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"code.hybscloud.com/atomix"

	"code.hybscloud.com/syncx"
)

// state is the ring storage jointly owned by a Producer/Consumer pair
// through a reference-counted handle. Layout matches [SPSC] except
// that the cached cursor views live in the handles, keeping the shared
// struct read-mostly outside the two cursor lines.
type state[T any] struct {
	_        pad
	head     atomix.Uint64 // producer cursor
	_        pad
	tail     atomix.Uint64 // consumer cursor
	_        pad
	buffer   []T
	capacity uint64
	drop     func(T)
}

// drain releases every element still buffered. Called with exclusive
// ownership (the last handle is gone), so relaxed cursor reads are
// about clarity, not synchronization.
func (s *state[T]) drain() {
	head := s.head.Load()
	var zero T
	for tail := s.tail.Load(); tail < head; tail++ {
		elem := s.buffer[tail%s.capacity]
		s.buffer[tail%s.capacity] = zero
		if s.drop != nil {
			s.drop(elem)
		}
	}
	s.tail.Store(head)
}

// New creates a bounded SPSC ring buffer of the given capacity and
// returns its two handles. The handles are bound to one shared buffer
// and cannot be duplicated: exactly one goroutine may use the
// Producer and exactly one the Consumer, which is what enforces the
// single-producer/single-consumer precondition.
//
// Each handle must be closed when its side is done. The buffer is
// released when both handles are closed; remaining elements are
// drained through the [WithDrop] hook at that point.
//
// Panics if capacity < 1.
func New[T any](capacity int, opts ...Option[T]) (*Producer[T], *Consumer[T]) {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	st := state[T]{
		buffer:   make([]T, capacity),
		capacity: uint64(capacity),
		drop:     cfg.drop,
	}
	h := syncx.NewShared(st, (*state[T]).drain)

	p := &Producer[T]{h: h}
	c := &Consumer[T]{h: h.Clone()}
	return p, c
}

// noCopy signals go vet when a handle is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
