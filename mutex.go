// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"code.hybscloud.com/syncx/internal/futex"
)

// Mutex state word values.
//
// The three-state encoding lets Unlock skip the wake syscall path
// entirely when no goroutine ever blocked on the lock.
const (
	mutexUnlocked  int32 = 0
	mutexLocked    int32 = 1 // locked, nobody waiting
	mutexContended int32 = 2 // locked, waiters parked
)

// mutexSpinLimit bounds optimistic spinning before parking.
const mutexSpinLimit = 100

// Mutex is a mutual-exclusion lock protecting a value of type T.
//
// Lock returns a [Guard] granting exclusive access to the value until
// the guard is unlocked. Contending goroutines spin briefly, then park
// on an OS-level wait mechanism keyed to the lock's state word rather
// than burning CPU.
//
// The zero Mutex is not usable; create one with [NewMutex].
type Mutex[T any] struct {
	state atomix.Int32
	value T
}

// NewMutex creates a Mutex protecting value.
func NewMutex[T any](value T) *Mutex[T] {
	return &Mutex[T]{value: value}
}

// Lock acquires the mutex, blocking until it is available, and
// returns the guard granting access to the protected value.
func (m *Mutex[T]) Lock() *Guard[T] {
	if !m.state.CompareAndSwapAcqRel(mutexUnlocked, mutexLocked) {
		m.lockContended()
	}
	return &Guard[T]{m: m}
}

// TryLock acquires the mutex without blocking.
// Returns (nil, false) if the mutex is held.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	if !m.state.CompareAndSwapAcqRel(mutexUnlocked, mutexLocked) {
		return nil, false
	}
	return &Guard[T]{m: m}, true
}

func (m *Mutex[T]) lockContended() {
	// Spin while the holder runs without waiters; if waiters are
	// already parked the holder is likely descheduled and spinning
	// is wasted work.
	sw := spin.Wait{}
	for i := 0; i < mutexSpinLimit && m.state.LoadRelaxed() == mutexLocked; i++ {
		sw.Once()
	}

	if m.state.CompareAndSwapAcqRel(mutexUnlocked, mutexLocked) {
		return
	}

	for m.swapState(mutexContended) != mutexUnlocked {
		futex.Wait(&m.state, mutexContended)
	}
}

// swapState atomically replaces the state word, returning the old
// value. Acquire-release so a successful 0→locked transition pairs
// with the previous holder's release.
func (m *Mutex[T]) swapState(new int32) int32 {
	for {
		old := m.state.LoadRelaxed()
		if m.state.CompareAndSwapAcqRel(old, new) {
			return old
		}
	}
}

// Guard grants exclusive access to a [Mutex]'s value.
//
// A guard must be unlocked exactly once. Unlocking twice panics.
type Guard[T any] struct {
	m    *Mutex[T]
	done bool
}

// Value returns the protected value. The pointer must not be retained
// past Unlock.
func (g *Guard[T]) Value() *T {
	if g.done {
		panic("syncx: guard used after unlock")
	}
	return &g.m.value
}

// Unlock releases the mutex, waking one parked goroutine if any.
func (g *Guard[T]) Unlock() {
	if g.done {
		panic("syncx: unlock of unlocked mutex")
	}
	g.done = true
	if g.m.swapState(mutexUnlocked) == mutexContended {
		futex.Wake(&g.m.state)
	}
}
