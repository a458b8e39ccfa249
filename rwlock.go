// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"math"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/syncx/internal/futex"
)

// rwWriteLocked is the reserved state value meaning "write-locked".
// Any smaller value is the number of active readers.
const rwWriteLocked int32 = math.MaxInt32

// RWLock is a reader/writer lock protecting a value of type T.
//
// Many readers may hold the lock concurrently, or one writer
// exclusively. The whole lock state lives in a single counter:
// 0 means unlocked, n < MaxInt32 means n active readers, and MaxInt32
// means write-locked.
//
// The zero RWLock is not usable; create one with [NewRWLock].
type RWLock[T any] struct {
	state atomix.Int32
	value T
}

// NewRWLock creates an RWLock protecting value.
func NewRWLock[T any](value T) *RWLock[T] {
	return &RWLock[T]{value: value}
}

// Read acquires the lock for shared reading, blocking while a writer
// holds it.
func (l *RWLock[T]) Read() *ReadGuard[T] {
	s := l.state.LoadRelaxed()
	for {
		if s < rwWriteLocked {
			if s == rwWriteLocked-1 {
				panic("syncx: too many readers")
			}
			if l.state.CompareAndSwapAcqRel(s, s+1) {
				return &ReadGuard[T]{l: l}
			}
			s = l.state.LoadRelaxed()
			continue
		}
		futex.Wait(&l.state, rwWriteLocked)
		s = l.state.LoadRelaxed()
	}
}

// Write acquires the lock exclusively, blocking while any reader or
// writer holds it.
func (l *RWLock[T]) Write() *WriteGuard[T] {
	for !l.state.CompareAndSwapAcqRel(0, rwWriteLocked) {
		if s := l.state.LoadRelaxed(); s != 0 {
			futex.Wait(&l.state, s)
		}
	}
	return &WriteGuard[T]{l: l}
}

// ReadGuard grants shared read access to an [RWLock]'s value.
type ReadGuard[T any] struct {
	l    *RWLock[T]
	done bool
}

// Value returns the protected value. Mutating through a read guard is
// a data race; the pointer must not be retained past Unlock.
func (g *ReadGuard[T]) Value() *T {
	if g.done {
		panic("syncx: guard used after unlock")
	}
	return &g.l.value
}

// Unlock releases the read share. The last reader out wakes a waiting
// writer, if any.
func (g *ReadGuard[T]) Unlock() {
	if g.done {
		panic("syncx: unlock of unlocked rwlock")
	}
	g.done = true
	if g.l.state.AddAcqRel(-1) == 0 {
		futex.Wake(&g.l.state)
	}
}

// WriteGuard grants exclusive access to an [RWLock]'s value.
type WriteGuard[T any] struct {
	l    *RWLock[T]
	done bool
}

// Value returns the protected value. The pointer must not be retained
// past Unlock.
func (g *WriteGuard[T]) Value() *T {
	if g.done {
		panic("syncx: guard used after unlock")
	}
	return &g.l.value
}

// Unlock releases the write lock and wakes all waiting readers and
// writers.
func (g *WriteGuard[T]) Unlock() {
	if g.done {
		panic("syncx: unlock of unlocked rwlock")
	}
	g.done = true
	g.l.state.StoreRelease(0)
	futex.Wake(&g.l.state)
}
