// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package ring_test

import (
	"fmt"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/syncx/ring"
)

// ExampleNew demonstrates a two-stage pipeline over a handle pair.
func ExampleNew() {
	p, c := ring.New[int](8)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer c.Close()
		backoff := iox.Backoff{}
		for n := 0; n < 5; {
			v, err := c.Pop()
			if err != nil {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			fmt.Println(v)
			n++
		}
	}()

	for i := 1; i <= 5; i++ {
		v := i * 10
		backoff := iox.Backoff{}
		for p.Push(&v) != nil {
			backoff.Wait()
		}
	}
	p.Close()
	<-done

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleProducer_Reserve demonstrates writing a value in place.
func ExampleProducer_Reserve() {
	p, c := ring.New[[8]byte](4)
	defer p.Close()
	defer c.Close()

	ps, err := p.Reserve()
	if err == nil {
		copy(ps.Value()[:], "payload")
		ps.Commit()
	}

	v, _ := c.Pop()
	fmt.Printf("%s\n", v[:7])

	// Output:
	// payload
}
