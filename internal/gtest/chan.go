package gtest

import (
	"testing"
	"time"
)

// ScaleMs returns a duration of ms milliseconds.
// It exists so that every timing-sensitive helper reads from the same place.
func ScaleMs(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// ReceiveSoon attempts to receive a value from ch.
// If the receive does not complete within 100ms, t.Fatal is called.
func ReceiveSoon[T any](t testing.TB, ch <-chan T) T {
	t.Helper()
	return ReceiveOrTimeout(t, ch, ScaleMs(100))
}

// ReceiveOrTimeout attempts to receive a value from ch within d.
func ReceiveOrTimeout[T any](t testing.TB, ch <-chan T, d time.Duration) T {
	t.Helper()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before receive")
		}
		return v
	case <-timer.C:
		t.Fatalf("no value received within %s", d)
	}

	panic("unreachable")
}

// SendSoon attempts to send v on ch.
// If the send does not complete within 100ms, t.Fatal is called.
func SendSoon[T any](t testing.TB, ch chan<- T, v T) {
	t.Helper()

	timer := time.NewTimer(ScaleMs(100))
	defer timer.Stop()

	select {
	case ch <- v:
		// Okay.
	case <-timer.C:
		t.Fatalf("could not send within 100ms")
	}
}

// NotSending fails the test if ch has a value ready to receive.
func NotSending[T any](t testing.TB, ch <-chan T) {
	t.Helper()

	select {
	case v := <-ch:
		t.Fatalf("expected no value, received %v", v)
	default:
		// Okay.
	}
}

// NotSendingSoon fails the test if ch delivers a value within 50ms.
func NotSendingSoon[T any](t testing.TB, ch <-chan T) {
	t.Helper()

	timer := time.NewTimer(ScaleMs(50))
	defer timer.Stop()

	select {
	case v := <-ch:
		t.Fatalf("expected no value, received %v", v)
	case <-timer.C:
		// Okay.
	}
}

// IsClosed reports whether ch is already closed, without blocking.
func IsClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
