// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import (
	"code.hybscloud.com/atomix"

	"code.hybscloud.com/syncx/internal/futex"
)

// Cond is a condition variable paired with a [Mutex].
//
// The counter records notifications. Wait snapshots the counter before
// releasing the guard; a notification between the release and the park
// changes the counter and the park returns immediately, so wakeups are
// never lost.
//
// The zero Cond is ready to use.
type Cond[T any] struct {
	counter atomix.Int32
}

// NotifyOne wakes at least one goroutine blocked in Wait, if any.
func (c *Cond[T]) NotifyOne() {
	c.counter.Add(1)
	futex.Wake(&c.counter)
}

// NotifyAll wakes all goroutines blocked in Wait.
func (c *Cond[T]) NotifyAll() {
	c.counter.Add(1)
	futex.Wake(&c.counter)
}

// Wait atomically releases g, parks until notified, and returns a
// freshly acquired guard on the same mutex.
//
// Spurious returns are possible; callers recheck their condition in a
// loop:
//
//	g := m.Lock()
//	for !ready(g.Value()) {
//	    g = c.Wait(g)
//	}
func (c *Cond[T]) Wait(g *Guard[T]) *Guard[T] {
	seq := c.counter.LoadRelaxed()
	m := g.m
	g.Unlock()

	futex.Wait(&c.counter, seq)

	return m.Lock()
}
