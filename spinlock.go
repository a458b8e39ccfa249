// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a mutual-exclusion lock that busy-waits instead of
// parking. Intended only for very short critical sections where the
// cost of a context switch exceeds the expected hold time; anywhere
// else, use [Mutex].
//
// The zero SpinLock is not usable; create one with [NewSpinLock].
type SpinLock[T any] struct {
	locked atomix.Int32
	value  T
}

// NewSpinLock creates a SpinLock protecting value.
func NewSpinLock[T any](value T) *SpinLock[T] {
	return &SpinLock[T]{value: value}
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock[T]) Lock() *SpinGuard[T] {
	sw := spin.Wait{}
	for !l.locked.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
	return &SpinGuard[T]{l: l}
}

// SpinGuard grants exclusive access to a [SpinLock]'s value.
type SpinGuard[T any] struct {
	l    *SpinLock[T]
	done bool
}

// Value returns the protected value. The pointer must not be retained
// past Unlock.
func (g *SpinGuard[T]) Value() *T {
	if g.done {
		panic("syncx: guard used after unlock")
	}
	return &g.l.value
}

// Unlock releases the lock.
func (g *SpinGuard[T]) Unlock() {
	if g.done {
		panic("syncx: unlock of unlocked spinlock")
	}
	g.done = true
	g.l.locked.StoreRelease(0)
}
