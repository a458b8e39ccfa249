// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx

import "code.hybscloud.com/atomix"

// One-shot channel states. The word moves strictly forward:
// empty → writing → ready → taken.
const (
	oneShotEmpty   int32 = 0
	oneShotWriting int32 = 1
	oneShotReady   int32 = 2
	oneShotTaken   int32 = 3
)

// OneShot transfers a single value from one goroutine to another.
//
// The API's pre- and post-conditions make misuse avoidable by
// construction, so misuse is a programming error and panics: Send may
// be called at most once, and Receive only after Ready reports true.
//
// OneShot does not block. A receiver that wants to wait polls Ready
// (typically with an iox.Backoff) or arranges its own wakeup.
//
// The zero OneShot is ready to use. A OneShot must not be copied.
type OneShot[T any] struct {
	state atomix.Int32
	value T
}

// Send stores the message and makes it visible to the receiver.
// Panics if called more than once.
func (c *OneShot[T]) Send(value T) {
	if !c.state.CompareAndSwapAcqRel(oneShotEmpty, oneShotWriting) {
		panic("syncx: send on a used one-shot channel")
	}
	c.value = value
	// The message is fully written before it is published.
	c.state.StoreRelease(oneShotReady)
}

// Ready reports whether a message is available.
func (c *OneShot[T]) Ready() bool {
	return c.state.LoadRelaxed() == oneShotReady
}

// Receive takes the message. Panics if no message is ready, including
// when the message was already received.
func (c *OneShot[T]) Receive() T {
	if !c.state.CompareAndSwapAcqRel(oneShotReady, oneShotTaken) {
		panic("syncx: receive on a one-shot channel with no message")
	}
	value := c.value
	var zero T
	c.value = zero
	return value
}
