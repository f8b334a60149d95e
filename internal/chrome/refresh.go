package chrome

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Scheduler coalesces deferred composition refreshes per window.
//
// Compositor attribute changes made right after a state transition
// (show, maximize, activate) are sometimes not honored synchronously, so
// the fix is re-applied a little later. At most one request is pending
// per window: a new request supersedes the old timer instead of stacking
// a duplicate. Firing is marshalled through the post function onto the
// thread that owns the message pump; nothing here blocks.
type Scheduler struct {
	mu        sync.Mutex
	post      func(func())
	apply     func(NativeHandle)
	pending   map[NativeHandle]*time.Timer
	destroyed bool
	log       zerolog.Logger
}

// NewScheduler builds a scheduler. post marshals work onto the
// main-loop thread; apply re-applies the chrome attributes for a window.
func NewScheduler(post func(func()), apply func(NativeHandle), log zerolog.Logger) *Scheduler {
	if post == nil {
		panic("chrome.NewScheduler: post function cannot be nil")
	}
	if apply == nil {
		panic("chrome.NewScheduler: apply function cannot be nil")
	}
	return &Scheduler{
		post:    post,
		apply:   apply,
		pending: make(map[NativeHandle]*time.Timer),
		log:     log.With().Str("component", "refresh-scheduler").Logger(),
	}
}

// Request queues a refresh for the window after delay, replacing any
// refresh already pending for it.
func (s *Scheduler) Request(h NativeHandle, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	if t, ok := s.pending[h]; ok {
		t.Stop()
	}
	s.pending[h] = time.AfterFunc(delay, func() { s.fire(h) })
}

func (s *Scheduler) fire(h NativeHandle) {
	s.mu.Lock()
	if s.destroyed {
		delete(s.pending, h)
		s.mu.Unlock()
		return
	}
	delete(s.pending, h)
	post := s.post
	s.mu.Unlock()

	post(func() {
		s.mu.Lock()
		dead := s.destroyed
		s.mu.Unlock()
		if dead {
			return
		}
		s.apply(h)
	})
}

// Cancel drops any pending refresh for the window. No-op when nothing
// is pending.
func (s *Scheduler) Cancel(h NativeHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.pending[h]; ok {
		t.Stop()
		delete(s.pending, h)
	}
}

// Pending reports whether a refresh is queued for the window.
func (s *Scheduler) Pending(h NativeHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[h]
	return ok
}

// Destroy cancels everything outstanding. Subsequent requests are
// dropped; calling Destroy again is a no-op.
func (s *Scheduler) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	for h, t := range s.pending {
		t.Stop()
		delete(s.pending, h)
	}
}
