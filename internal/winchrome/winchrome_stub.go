//go:build !windows

package winchrome

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/chromeless/internal/chrome"
)

// Available reports whether the Win32 chrome backend can run here.
func Available() bool {
	return false
}

// Backend is a placeholder on non-Windows builds. Every operation
// fails with ErrUnsupportedPlatform; it exists so callers compile on
// all platforms.
type Backend struct{}

// NewBackend always fails off Windows.
func NewBackend(log zerolog.Logger) (*Backend, error) {
	return nil, fmt.Errorf("win32 backend requires windows: %w", chrome.ErrUnsupportedPlatform)
}

func (b *Backend) Bounds(chrome.NativeHandle) (chrome.Bounds, error) {
	return chrome.Bounds{}, chrome.ErrUnsupportedPlatform
}

func (b *Backend) SetBounds(chrome.NativeHandle, chrome.Bounds) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) BeginInteractiveMove(chrome.NativeHandle, int, int) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) BeginInteractiveResize(chrome.NativeHandle, chrome.HitRegion, int, int) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) Maximize(chrome.NativeHandle) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) Restore(chrome.NativeHandle, chrome.Bounds) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) Minimize(chrome.NativeHandle) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) Close(chrome.NativeHandle) error {
	return chrome.ErrUnsupportedPlatform
}

func (b *Backend) ApplyChrome(chrome.NativeHandle, chrome.Metrics) error {
	return chrome.ErrUnsupportedPlatform
}

// Interceptor is a placeholder on non-Windows builds.
type Interceptor struct{}

// NewInterceptor returns an interceptor whose Install always fails.
func NewInterceptor(log zerolog.Logger) *Interceptor {
	return &Interceptor{}
}

func (ic *Interceptor) Install(h chrome.NativeHandle) error {
	return fmt.Errorf("win32 interception requires windows: %w", chrome.ErrUnsupportedPlatform)
}

func (ic *Interceptor) Uninstall(h chrome.NativeHandle) error {
	return nil
}

// CompositionEnabled reports whether desktop composition is active.
func CompositionEnabled() bool {
	return false
}
