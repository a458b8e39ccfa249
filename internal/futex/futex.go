// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package futex provides a wait/wake table for blocking primitives.
//
// The table emulates futex semantics in user space: a goroutine parks
// against the current value of an atomic state word and is woken after
// the word changes. Waiters hash to a fixed set of buckets; the value
// is rechecked under the bucket lock, so a wake issued after a state
// change can never be lost. Wake is a broadcast per bucket: waiters
// on a colliding address wake spuriously and go back to sleep, which
// futex semantics permit.
package futex

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/atomix"
)

const numBuckets = 64

type bucket struct {
	mu   sync.Mutex
	cond *sync.Cond
}

var buckets [numBuckets]bucket

func init() {
	for i := range buckets {
		buckets[i].cond = sync.NewCond(&buckets[i].mu)
	}
}

func bucketOf(addr *atomix.Int32) *bucket {
	h := uintptr(unsafe.Pointer(addr))
	// Fibonacci hashing on the address; low bits are alignment zeros.
	h = (h >> 4) * 0x9e3779b97f4a7c15
	return &buckets[h%numBuckets]
}

// Wait parks the calling goroutine while *addr holds old.
// Returns immediately if the word has already changed. May return
// spuriously; callers recheck their condition in a loop.
func Wait(addr *atomix.Int32, old int32) {
	b := bucketOf(addr)
	b.mu.Lock()
	for addr.Load() == old {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// Wake wakes every goroutine parked on addr's bucket. Call after
// storing a new value into the word.
func Wake(addr *atomix.Int32) {
	b := bucketOf(addr)
	b.mu.Lock()
	b.cond.Broadcast()
	b.mu.Unlock()
}
