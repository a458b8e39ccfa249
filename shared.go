// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "code.hybscloud.com/atomix"

// Shared is a reference-counted handle granting joint ownership of a
// value of type T.
//
// Clone produces another handle to the same value; Release drops a
// handle. When the last handle is released the drop hook runs exactly
// once, after an acquire-release decrement that makes every other
// handle's prior writes visible to it.
//
// Shared provides shared read access through Value. Mut yields
// exclusive mutable access only when the handle is observably the sole
// owner.
//
// Handles are passed by value; treat each copy obtained through Clone
// as one reference, and do not duplicate a handle by plain assignment.
type Shared[T any] struct {
	s *sharedState[T]
}

type sharedState[T any] struct {
	refs  atomix.Int64
	drop  func(*T)
	value T
}

// NewShared creates a value with a single owning handle. drop, if
// non-nil, runs when the last handle is released.
func NewShared[T any](value T, drop func(*T)) Shared[T] {
	s := &sharedState[T]{drop: drop, value: value}
	s.refs.StoreRelaxed(1)
	return Shared[T]{s: s}
}

// Clone returns a new handle to the same value.
//
// The increment is relaxed: creating a reference requires no
// synchronization, only the eventual final decrement does.
func (h Shared[T]) Clone() Shared[T] {
	h.s.refs.Add(1)
	return Shared[T]{s: h.s}
}

// Value returns the shared value. The pointer stays valid until this
// handle is released.
func (h Shared[T]) Value() *T {
	return &h.s.value
}

// Mut returns the value for exclusive mutation if this is the only
// live handle. The acquire load ensures all writes made through
// already-released handles are visible.
func (h Shared[T]) Mut() (*T, bool) {
	if h.s.refs.LoadAcquire() != 1 {
		return nil, false
	}
	return &h.s.value, true
}

// Refs returns the current reference count. Meaningful only as a
// debugging aid; the count may change concurrently.
func (h Shared[T]) Refs() int64 {
	return h.s.refs.Load()
}

// Release drops this handle. The last release runs the drop hook.
// Releasing more handles than were created panics.
func (h Shared[T]) Release() {
	switch n := h.s.refs.AddAcqRel(-1); {
	case n == 0:
		if h.s.drop != nil {
			h.s.drop(&h.s.value)
		}
	case n < 0:
		panic("syncx: release of a dead shared handle")
	}
}
