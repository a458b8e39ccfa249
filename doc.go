// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package syncx provides inter-goroutine communication primitives.
//
// The package is a small toolkit built in three layers:
//
//   - Blocking primitives: [Mutex], [RWLock], [SpinLock], [Cond],
//     [OneShot], [Chan]: guarded locks and channels for callers that
//     want to park instead of spin.
//   - Shared ownership: [Shared], a reference-counted handle used to
//     hold one value jointly from several places and release it
//     deterministically when the last handle goes away.
//   - Lock-free queues: the subpackages ring (bounded
//     single-producer/single-consumer ring buffer) and queue
//     (unbounded multi-producer/multi-consumer linked queue).
//
// # Guarded Locks
//
// Locks in this package protect a value, not a code region. Lock
// returns a guard that grants access to the value and must be released
// exactly once:
//
//	m := syncx.NewMutex(0)
//
//	g := m.Lock()
//	*g.Value()++
//	g.Unlock()
//
// The guard style makes the protected state explicit and keeps lock
// and unlock paired on every return path when combined with defer.
//
// # Parking
//
// Contended Lock calls spin briefly and then park the goroutine on an
// internal wait table keyed to the lock's state word. Wakeups follow
// state changes; spurious wakeups are possible and all wait loops
// recheck their condition.
//
// # Condition Variables
//
// [Cond] pairs with [Mutex]. Wait atomically releases the supplied
// guard, parks, and returns a reacquired guard:
//
//	g := m.Lock()
//	for !conditionHolds(g.Value()) {
//	    g = cond.Wait(g)
//	}
//
// # One-Shot and Blocking Channels
//
// [OneShot] transfers a single value between two goroutines; misuse
// (sending twice, receiving before a message is ready) is a
// programming error and panics. [Chan] is a blocking multi-producer
// single-consumer channel layered on [Mutex] and [Cond].
//
// # Shared Ownership
//
// [Shared] counts references with relaxed increments and an
// acquire-release decrement, so the final Release observes every other
// handle's prior writes before running the drop hook. The ring
// subpackage uses it to hold one buffer from a producer handle and a
// consumer handle at once.
//
// # Race Detection
//
// Atomic operations with explicit memory orderings establish
// happens-before edges the race detector cannot observe, so some
// concurrent tests are gated on [RaceEnabled].
package syncx
