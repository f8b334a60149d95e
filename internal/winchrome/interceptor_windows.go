//go:build windows

package winchrome

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sys/windows"

	"github.com/bnema/chromeless/internal/chrome"
)

// Interceptor subclasses native windows by swapping their window
// procedure for a shared dispatcher. The previous procedure is kept per
// handle and every unhandled message is forwarded to it, so the host
// toolkit keeps working underneath the chrome layer.
type Interceptor struct {
	mu        sync.Mutex
	prevProcs map[chrome.NativeHandle]uintptr
	log       zerolog.Logger
}

// NewInterceptor creates the message interceptor. One interceptor can
// serve any number of windows; the dispatch callback is process-wide.
func NewInterceptor(log zerolog.Logger) *Interceptor {
	return &Interceptor{
		prevProcs: make(map[chrome.NativeHandle]uintptr),
		log:       log.With().Str("component", "winchrome").Logger(),
	}
}

var (
	dispatchOnce sync.Once
	dispatchProc uintptr

	// active is the interceptor whose prevProcs the shared callback
	// consults. A single process hosts a single interceptor.
	activeMu sync.Mutex
	active   *Interceptor
)

// Install swaps the window procedure of h for the chrome dispatcher.
// Returns ErrInstallFailed when h is not a live window or the swap is
// rejected.
func (ic *Interceptor) Install(h chrome.NativeHandle) error {
	if r, _, _ := procIsWindow.Call(uintptr(h)); r == 0 {
		return fmt.Errorf("handle %#x is not a window: %w", uintptr(h), chrome.ErrInstallFailed)
	}

	dispatchOnce.Do(func() {
		dispatchProc = windows.NewCallback(dispatch)
	})
	activeMu.Lock()
	active = ic
	activeMu.Unlock()

	ic.mu.Lock()
	defer ic.mu.Unlock()
	if _, dup := ic.prevProcs[h]; dup {
		return fmt.Errorf("handle %#x: %w", uintptr(h), chrome.ErrAlreadyInstalled)
	}

	prev, _, callErr := procSetWindowLongPtrW.Call(uintptr(h), gwlpWndProc, dispatchProc)
	if prev == 0 {
		return fmt.Errorf("SetWindowLongPtrW: %v: %w", callErr, chrome.ErrInstallFailed)
	}
	ic.prevProcs[h] = prev

	ic.log.Debug().Uint64("handle", uint64(h)).Msg("window procedure installed")
	return nil
}

// Uninstall restores the original window procedure. Calling it for a
// handle that was never installed, or a second time, is a no-op: the
// window may already be torn down by the time the owner shuts down.
func (ic *Interceptor) Uninstall(h chrome.NativeHandle) error {
	ic.mu.Lock()
	prev, ok := ic.prevProcs[h]
	if ok {
		delete(ic.prevProcs, h)
	}
	ic.mu.Unlock()
	if !ok {
		return nil
	}

	if r, _, _ := procIsWindow.Call(uintptr(h)); r == 0 {
		// Window already destroyed; nothing to restore.
		return nil
	}
	procSetWindowLongPtrW.Call(uintptr(h), gwlpWndProc, prev)
	ic.log.Debug().Uint64("handle", uint64(h)).Msg("window procedure restored")
	return nil
}

func (ic *Interceptor) previous(h chrome.NativeHandle) (uintptr, bool) {
	ic.mu.Lock()
	defer ic.mu.Unlock()
	prev, ok := ic.prevProcs[h]
	return prev, ok
}

// dispatch is the subclassed window procedure. It resolves the owning
// chrome context by handle and forwards everything the context does not
// claim. Runs on the message-pump thread, possibly reentrantly while a
// forwarded call is still on the stack.
func dispatch(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	h := chrome.NativeHandle(hwnd)

	if ctx := chrome.LookupContext(h); ctx != nil {
		if handled, result := ctx.HandleNativeMessage(msg, wparam, lparam); handled {
			return result
		}
	}

	activeMu.Lock()
	ic := active
	activeMu.Unlock()
	if ic != nil {
		if prev, ok := ic.previous(h); ok {
			r, _, _ := procCallWindowProcW.Call(prev, hwnd, uintptr(msg), wparam, lparam)
			return r
		}
	}
	r, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wparam, lparam)
	return r
}
