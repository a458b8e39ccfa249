// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package syncx_test

import (
	"testing"
	"time"

	"code.hybscloud.com/iox"

	"code.hybscloud.com/syncx"
)

// =============================================================================
// One-Shot Channel
// =============================================================================

func TestOneShotBasic(t *testing.T) {
	var ch syncx.OneShot[string]

	if ch.Ready() {
		t.Fatal("new channel should not be ready")
	}

	ch.Send("hello")
	if !ch.Ready() {
		t.Fatal("channel should be ready after send")
	}

	if got := ch.Receive(); got != "hello" {
		t.Fatalf("Receive: got %q, want %q", got, "hello")
	}
	if ch.Ready() {
		t.Fatal("channel should not be ready after receive")
	}
}

func TestOneShotCrossGoroutine(t *testing.T) {
	if syncx.RaceEnabled {
		t.Skip("skip: atomix state words are invisible to the race detector")
	}

	var ch syncx.OneShot[int]

	go ch.Send(42)

	deadline := time.Now().Add(10 * time.Second)
	backoff := iox.Backoff{}
	for !ch.Ready() {
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for message")
		}
		backoff.Wait()
	}

	if got := ch.Receive(); got != 42 {
		t.Fatalf("Receive: got %d, want 42", got)
	}
}

func TestOneShotDoubleSendPanics(t *testing.T) {
	var ch syncx.OneShot[int]
	ch.Send(1)

	defer func() {
		if recover() == nil {
			t.Fatal("second Send should panic")
		}
	}()
	ch.Send(2)
}

func TestOneShotEarlyReceivePanics(t *testing.T) {
	var ch syncx.OneShot[int]

	defer func() {
		if recover() == nil {
			t.Fatal("Receive before Send should panic")
		}
	}()
	ch.Receive()
}

func TestOneShotDoubleReceivePanics(t *testing.T) {
	var ch syncx.OneShot[int]
	ch.Send(1)
	ch.Receive()

	defer func() {
		if recover() == nil {
			t.Fatal("second Receive should panic")
		}
	}()
	ch.Receive()
}
