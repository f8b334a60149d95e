package chrome

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func waitApplied(t *testing.T, applied <-chan NativeHandle) NativeHandle {
	t.Helper()
	select {
	case h := <-applied:
		return h
	case <-time.After(2 * time.Second):
		t.Fatal("refresh never fired")
		return 0
	}
}

func TestSchedulerFiresOncePerWindow(t *testing.T) {
	applied := make(chan NativeHandle, 8)
	s := NewScheduler(
		func(fn func()) { fn() },
		func(h NativeHandle) { applied <- h },
		zerolog.Nop(),
	)
	defer s.Destroy()

	s.Request(1, time.Millisecond)
	if h := waitApplied(t, applied); h != 1 {
		t.Fatalf("applied handle %d, want 1", h)
	}
	if s.Pending(1) {
		t.Fatal("request still pending after firing")
	}
}

func TestSchedulerSupersedesPendingRequest(t *testing.T) {
	applied := make(chan NativeHandle, 8)
	s := NewScheduler(
		func(fn func()) { fn() },
		func(h NativeHandle) { applied <- h },
		zerolog.Nop(),
	)
	defer s.Destroy()

	// The long request is replaced before it can fire; exactly one
	// refresh lands.
	s.Request(7, time.Hour)
	s.Request(7, time.Millisecond)
	waitApplied(t, applied)

	select {
	case <-applied:
		t.Fatal("superseded request fired anyway")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSchedulerCancel(t *testing.T) {
	applied := make(chan NativeHandle, 8)
	s := NewScheduler(
		func(fn func()) { fn() },
		func(h NativeHandle) { applied <- h },
		zerolog.Nop(),
	)
	defer s.Destroy()

	s.Request(3, 10*time.Millisecond)
	s.Cancel(3)
	if s.Pending(3) {
		t.Fatal("cancelled request still pending")
	}
	select {
	case <-applied:
		t.Fatal("cancelled request fired")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSchedulerDestroyDropsOutstandingWork(t *testing.T) {
	applied := make(chan NativeHandle, 8)
	s := NewScheduler(
		func(fn func()) { fn() },
		func(h NativeHandle) { applied <- h },
		zerolog.Nop(),
	)

	s.Request(5, 10*time.Millisecond)
	s.Destroy()
	s.Request(6, time.Millisecond)

	select {
	case h := <-applied:
		t.Fatalf("refresh %d fired after destroy", h)
	case <-time.After(60 * time.Millisecond):
	}
	// Second destroy is a no-op.
	s.Destroy()
}

func TestSchedulerTracksWindowsIndependently(t *testing.T) {
	applied := make(chan NativeHandle, 8)
	s := NewScheduler(
		func(fn func()) { fn() },
		func(h NativeHandle) { applied <- h },
		zerolog.Nop(),
	)
	defer s.Destroy()

	s.Request(1, time.Millisecond)
	s.Request(2, time.Millisecond)

	seen := map[NativeHandle]bool{}
	seen[waitApplied(t, applied)] = true
	seen[waitApplied(t, applied)] = true
	if !seen[1] || !seen[2] {
		t.Fatalf("expected refreshes for both windows, got %v", seen)
	}
}

func TestNewSchedulerPanicsOnNilFuncs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil post")
		}
	}()
	NewScheduler(nil, func(NativeHandle) {}, zerolog.Nop())
}
