package chrome

import "errors"

var (
	// ErrInstallFailed means the native message handler could not be
	// swapped; the window keeps its native decorations. Not retryable
	// without a fresh window.
	ErrInstallFailed = errors.New("chrome: message handler installation failed")

	// ErrUnsupportedPlatform means the host platform exposes no native
	// window pipeline to intercept. Expected on non-Windows backends,
	// not exceptional.
	ErrUnsupportedPlatform = errors.New("chrome: frameless chrome not supported on this platform")

	// ErrAttributeFailed means a compositor attribute call did not take.
	// Visuals may degrade but interaction keeps working; callers log and
	// continue.
	ErrAttributeFailed = errors.New("chrome: compositor attribute update failed")

	// ErrAlreadyInstalled means a context already owns the native handle.
	ErrAlreadyInstalled = errors.New("chrome: window already has a chrome context")
)
