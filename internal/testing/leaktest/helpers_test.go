package leaktest

import (
	"testing"
	"time"
)

// recordingTB captures Errorf calls so a failing check can be asserted on
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	CheckNoGoroutineLeak(t, 0, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	go func() { <-stop }()

	start := time.Now()
	checker.Check(0)

	if !rec.failed {
		t.Error("Expected leaked goroutine to be reported")
	}
	if time.Since(start) < settleTimeout {
		t.Error("Expected Check to wait for stragglers before failing")
	}
}
