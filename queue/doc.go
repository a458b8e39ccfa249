// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides an unbounded multi-producer multi-consumer
// lock-free FIFO queue.
//
// [Unbounded] is a Michael–Scott singly-linked queue: a chain of
// heap-allocated nodes behind atomic pointers, with a permanent
// sentinel node at the head. Any number of goroutines may enqueue and
// dequeue concurrently; all coordination is compare-and-swap loops
// with the classic "helping" step: a thread that finds the tail
// pointer lagging advances it on behalf of the mid-flight enqueuer
// before retrying its own operation.
//
// # Usage
//
//	q := queue.New[Event]()
//
//	// Any producer
//	ev := Event{ID: 7}
//	q.Enqueue(&ev) // never fails
//
//	// Any consumer
//	ev, err := q.Dequeue()
//	if queue.IsWouldBlock(err) {
//	    // queue is empty - try again later
//	}
//
// # Progress
//
// The queue is lock-free, not wait-free: on every contended step some
// thread completes its operation in a bounded number of steps, but an
// individual thread can retry indefinitely under sustained contention.
// There is no blocking, no timeout, and no length; a caller that wants
// to wait layers a condition variable or backoff on top.
//
// # Ownership and Reclamation
//
// Every node is owned at each instant by exactly one of: the chain,
// the single thread that won the head-advancing CAS, or the garbage
// collector. Winning the head CAS is the one and only transfer point;
// the winner reads the payload strictly after the CAS, then clears the
// slot in the new sentinel so consumed values are not retained by the
// chain. The unlinked former sentinel is reclaimed by the GC, which is
// what makes the CAS protocol safe without hazard pointers or epochs.
//
// # Teardown
//
// Drain removes every remaining element, invoking the [WithDrop] hook
// per element. The final sentinel is left to the GC; the queue stays
// usable after Drain.
package queue
