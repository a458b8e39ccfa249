// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"github.com/valyala/fastrand"

	"code.hybscloud.com/syncx"
	"code.hybscloud.com/syncx/ring"
)

// =============================================================================
// SPSC - Basic Operations
// =============================================================================

func TestSPSCBasic(t *testing.T) {
	q := ring.NewSPSC[int](4)

	if q.Cap() != 4 {
		t.Fatalf("Cap: got %d, want 4", q.Cap())
	}

	// Push to capacity
	for i := range 4 {
		v := i + 100
		if err := q.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	// Full queue returns ErrWouldBlock
	v := 999
	if err := q.Push(&v); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
	}

	// Pop in FIFO order
	for i := range 4 {
		val, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if val != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, val, i+100)
		}
	}

	// Empty queue returns ErrWouldBlock
	if _, err := q.Pop(); !errors.Is(err, ring.ErrWouldBlock) {
		t.Fatalf("Pop on empty: got %v, want ErrWouldBlock", err)
	}
}

// TestSPSCFullLeavesStateUnmodified verifies a failed push has no side
// effects: the buffered sequence drains unchanged afterwards.
func TestSPSCFullLeavesStateUnmodified(t *testing.T) {
	q := ring.NewSPSC[int](2)

	for i := range 2 {
		v := i
		if err := q.Push(&v); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}
	for range 3 {
		v := 777
		if err := q.Push(&v); !errors.Is(err, ring.ErrWouldBlock) {
			t.Fatalf("Push on full: got %v, want ErrWouldBlock", err)
		}
	}

	for i := range 2 {
		val, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if val != i {
			t.Fatalf("Pop(%d): got %d, want %d (state modified by failed push)", i, val, i)
		}
	}
}

// =============================================================================
// SPSC - Stress (FIFO exactness across goroutines)
// =============================================================================

// TestSPSCStress streams 0..n through the queue with one producer and
// one consumer and requires the exact sequence on the far side:
// FIFO order, no loss, no duplication. Capacity 1 degenerates to a
// rendezvous and exercises every full/empty boundary.
func TestSPSCStress(t *testing.T) {
	if syncx.RaceEnabled {
		t.Skip("skip: memory orderings on separate atomics are invisible to the race detector")
	}

	for _, capacity := range []int{1, 2, 1024} {
		t.Run(fmt.Sprintf("cap%d", capacity), func(t *testing.T) {
			const n = 100000
			q := ring.NewSPSC[int](capacity)
			deadline := time.Now().Add(30 * time.Second)

			go func() {
				backoff := iox.Backoff{}
				for i := range n {
					v := i
					for q.Push(&v) != nil {
						if time.Now().After(deadline) {
							return
						}
						backoff.Wait()
					}
					backoff.Reset()
					// Random stalls shake out full/empty edge interleavings.
					if fastrand.Uint32n(256) == 0 {
						runtime.Gosched()
					}
				}
			}()

			backoff := iox.Backoff{}
			for i := 0; i < n; {
				val, err := q.Pop()
				if err != nil {
					if time.Now().After(deadline) {
						t.Fatalf("timeout at element %d", i)
					}
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if val != i {
					t.Fatalf("sequence broken: got %d, want %d", val, i)
				}
				i++
			}

			if _, err := q.Pop(); !errors.Is(err, ring.ErrWouldBlock) {
				t.Fatalf("Pop after drain: got %v, want ErrWouldBlock", err)
			}
		})
	}
}
