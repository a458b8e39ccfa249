// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/syncx"
)

func BenchmarkMutexUncontended(b *testing.B) {
	m := syncx.NewMutex(0)
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		g := m.Lock()
		*g.Value()++
		g.Unlock()
	}
}

func BenchmarkMutexContended(b *testing.B) {
	m := syncx.NewMutex(0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := m.Lock()
			*g.Value()++
			g.Unlock()
		}
	})
}

func BenchmarkStdMutexContended(b *testing.B) {
	var mu sync.Mutex
	var v int
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			v++
			mu.Unlock()
		}
	})
	_ = v
}

func BenchmarkSpinLockContended(b *testing.B) {
	l := syncx.NewSpinLock(0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := l.Lock()
			*g.Value()++
			g.Unlock()
		}
	})
}

func BenchmarkRWLockRead(b *testing.B) {
	l := syncx.NewRWLock(0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			g := l.Read()
			_ = *g.Value()
			g.Unlock()
		}
	})
}

func BenchmarkSharedCloneRelease(b *testing.B) {
	h := syncx.NewShared(0, nil)
	defer h.Release()
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Clone().Release()
		}
	})
}

func BenchmarkChanSendReceive(b *testing.B) {
	c := syncx.NewChan[int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		c.Send(i)
		_ = c.Receive()
	}
}
