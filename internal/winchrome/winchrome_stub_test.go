//go:build !windows

package winchrome

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bnema/chromeless/internal/chrome"
)

func TestStubReportsUnsupported(t *testing.T) {
	if Available() {
		t.Fatal("win32 backend must not report available off windows")
	}
	if _, err := NewBackend(zerolog.Nop()); !errors.Is(err, chrome.ErrUnsupportedPlatform) {
		t.Fatalf("NewBackend error = %v, want ErrUnsupportedPlatform", err)
	}

	ic := NewInterceptor(zerolog.Nop())
	if err := ic.Install(1); !errors.Is(err, chrome.ErrUnsupportedPlatform) {
		t.Fatalf("Install error = %v, want ErrUnsupportedPlatform", err)
	}
	if err := ic.Uninstall(1); err != nil {
		t.Fatalf("Uninstall must be a no-op, got %v", err)
	}
}
