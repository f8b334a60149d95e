//go:build windows

package winchrome

import (
	"fmt"
	"unsafe"

	"github.com/bnema/chromeless/internal/chrome"
)

// ApplyChrome re-applies the non-client styling the compositor drops
// across show, restore and composition-change transitions. Failures are
// cosmetic: the window stays frameless and functional, so callers log
// and continue.
func (b *Backend) ApplyChrome(h chrome.NativeHandle, m chrome.Metrics) error {
	// A one pixel frame sheet keeps the DWM shadow on a window whose
	// whole frame is client area.
	mg := margins{Left: 1, Right: 1, Top: 1, Bottom: 1}
	if hr, _, _ := procDwmExtendFrame.Call(uintptr(h), uintptr(unsafe.Pointer(&mg))); hr != 0 {
		return fmt.Errorf("DwmExtendFrameIntoClientArea hr=%#x: %w", hr, chrome.ErrAttributeFailed)
	}

	policy := int32(dwmNCRPEnabled)
	if hr, _, _ := procDwmSetAttribute.Call(uintptr(h), dwmwaNCRenderingPolicy,
		uintptr(unsafe.Pointer(&policy)), unsafe.Sizeof(policy)); hr != 0 {
		return fmt.Errorf("DwmSetWindowAttribute hr=%#x: %w", hr, chrome.ErrAttributeFailed)
	}

	// Force a WM_NCCALCSIZE round trip so the new frame takes effect.
	procSetWindowPos.Call(uintptr(h), 0, 0, 0, 0, 0,
		swpNoSize|swpNoMove|swpNoZOrder|swpNoActivate|swpFrameChanged)
	procInvalidateRect.Call(uintptr(h), 0, 1)
	return nil
}

// CompositionEnabled reports whether desktop composition is active.
// Always true since Windows 8, still probed for diagnostics.
func CompositionEnabled() bool {
	if dwmapi.Load() != nil {
		return false
	}
	var enabled int32
	if hr, _, _ := procDwmIsEnabled.Call(uintptr(unsafe.Pointer(&enabled))); hr != 0 {
		return false
	}
	return enabled != 0
}
