// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides bounded single-producer single-consumer ring
// buffers.
//
// The package keeps the whole evolution of the design, from a plain
// sequential buffer to a zero-copy handle pair:
//
//   - [Buffer]: unsynchronized bounded FIFO for one goroutine.
//   - [SPSC]: atomic cursors with acquire/release publication and a
//     cached view of the opposite cursor; one struct shared by exactly
//     one producer goroutine and one consumer goroutine.
//   - [New]: the same algorithm split into a non-duplicable
//     [Producer]/[Consumer] handle pair that jointly owns the buffer
//     and offers zero-copy slot access through [Pusher] and [Popper].
//
// # Cursors
//
// Two monotonically increasing 64-bit cursors describe the buffer:
// head counts values pushed, tail counts values popped, and the slot
// for a cursor value is cursor mod capacity. At every observable
// instant 0 ≤ head−tail ≤ capacity. head is written only by the
// producer side and tail only by the consumer side; each side reads
// the other's cursor with an acquire load that pairs with the owner's
// release store, so an observed cursor advance guarantees the slot
// contents it covers are visible too. Both cursors are cache-line
// padded so the producer's head traffic does not invalidate the line
// the consumer polls, and vice versa.
//
// Each side also keeps a private copy of the other side's cursor and
// reloads the shared cursor only when the local view says the buffer
// is full (producer) or empty (consumer). In the common case an
// operation touches no shared cache line except the slot itself.
//
// # Full and Empty
//
// Operations never block. Push on a full buffer and Pop on an empty
// buffer return [ErrWouldBlock] and change nothing; whether and when
// to retry is the caller's policy:
//
//	p, c := ring.New[int](1024)
//
//	backoff := iox.Backoff{}
//	for p.Push(&v) != nil {
//	    backoff.Wait()
//	}
//
// # Single Producer, Single Consumer
//
// Strictly one goroutine may push and one may pop at a time. The
// handle pair enforces this structurally: New returns exactly one
// Producer and one Consumer, neither has a Clone method, and both
// carry no-copy markers. Violating the discipline anyway is undefined
// behavior; it is not detected at runtime.
//
// # Zero-Copy Access
//
// Reserve and Peek hand out short-lived accessors bound to one slot.
// The cursor publication happens when the accessor is released, never
// before, so the consumer cannot observe a half-written value and a
// peeked slot is consumed at most once even when the caller's code
// exits early through an error path:
//
//	ps, err := p.Reserve()
//	if err == nil {
//	    ps.Value().ID = 7      // write in place
//	    ps.Commit()            // publish
//	}
//
//	pp, err := c.Peek()
//	if err == nil {
//	    defer pp.Release()     // consume on every exit path
//	    use(pp.Value())
//	}
//
// # Teardown
//
// The handle pair jointly owns the buffer through a reference-counted
// handle. Close each side when done; the last Close drains the
// remaining elements and invokes the hook installed with [WithDrop]
// exactly once per element.
package ring
