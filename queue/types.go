// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs; the
// queue stores a copy of the pointed-to value, so the original can be
// modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue adds an element to the queue.
	// For unbounded queues the returned error is always nil.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// Queue is the combined producer-consumer interface.
//
// The interface intentionally excludes length because accurate counts
// in lock-free algorithms require expensive cross-core
// synchronization. Track counts in application logic when needed.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
}
