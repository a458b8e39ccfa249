// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "github.com/eapache/queue"

// Chan is a blocking multi-producer single-consumer channel.
//
// Chan layers [Mutex] and [Cond] over a FIFO queue: Send appends under
// the lock and notifies, Receive parks until an item is available.
// Every operation takes the lock, so throughput is far below the
// lock-free queues in the ring and queue subpackages; Chan exists for
// callers that want simple blocking semantics.
type Chan[T any] struct {
	items *Mutex[*queue.Queue]
	ready Cond[*queue.Queue]
}

// NewChan creates an empty channel.
func NewChan[T any]() *Chan[T] {
	return &Chan[T]{items: NewMutex(queue.New())}
}

// Send appends a message and wakes the receiver. Safe for concurrent
// use by any number of senders. Never blocks beyond the lock hold.
func (c *Chan[T]) Send(message T) {
	g := c.items.Lock()
	(*g.Value()).Add(message)
	g.Unlock()
	c.ready.NotifyOne()
}

// Receive removes and returns the oldest message, blocking until one
// is available. Only one goroutine may receive.
func (c *Chan[T]) Receive() T {
	g := c.items.Lock()
	for {
		q := *g.Value()
		if q.Length() > 0 {
			message := q.Remove().(T)
			g.Unlock()
			return message
		}
		g = c.ready.Wait(g)
	}
}

// TryReceive removes and returns the oldest message without blocking.
// Returns (zero-value, false) if the channel is empty.
func (c *Chan[T]) TryReceive() (T, bool) {
	g := c.items.Lock()
	defer g.Unlock()
	q := *g.Value()
	if q.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.Remove().(T), true
}

// Len returns the number of queued messages at some instant.
func (c *Chan[T]) Len() int {
	g := c.items.Lock()
	defer g.Unlock()
	return (*g.Value()).Length()
}
