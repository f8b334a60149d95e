//go:build windows

package winchrome

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/bnema/chromeless/internal/chrome"
)

// Available reports whether the Win32 chrome backend can run here.
func Available() bool {
	return user32.Load() == nil
}

// Backend drives native windows through user32. All calls are expected
// on the message-pump thread, matching where the dispatcher runs.
type Backend struct {
	log zerolog.Logger
}

// NewBackend returns the Win32 backend.
func NewBackend(log zerolog.Logger) (*Backend, error) {
	if err := user32.Load(); err != nil {
		return nil, fmt.Errorf("user32 unavailable: %v: %w", err, chrome.ErrUnsupportedPlatform)
	}
	return &Backend{log: log.With().Str("component", "winchrome").Logger()}, nil
}

func (b *Backend) Bounds(h chrome.NativeHandle) (chrome.Bounds, error) {
	var r rect
	ret, _, callErr := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return chrome.Bounds{}, fmt.Errorf("GetWindowRect: %v", callErr)
	}
	return chrome.Bounds{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Right - r.Left),
		Height: int(r.Bottom - r.Top),
	}, nil
}

func (b *Backend) SetBounds(h chrome.NativeHandle, bounds chrome.Bounds) error {
	ret, _, callErr := procSetWindowPos.Call(uintptr(h), 0,
		uintptr(bounds.X), uintptr(bounds.Y),
		uintptr(bounds.Width), uintptr(bounds.Height),
		swpNoZOrder|swpNoActivate)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos: %v", callErr)
	}
	return nil
}

// BeginInteractiveMove hands the drag to the OS loop. Replaying the
// button-down as a caption click keeps snap assist and monitor DPI
// transitions working; the anchor is implicit in the cursor position.
func (b *Backend) BeginInteractiveMove(h chrome.NativeHandle, anchorX, anchorY int) error {
	procReleaseCapture.Call()
	procSendMessageW.Call(uintptr(h), chrome.WM_NCLBUTTONDOWN, chrome.HTCAPTION, 0)
	return nil
}

// BeginInteractiveResize starts the OS modal size loop from the given
// edge or corner.
func (b *Backend) BeginInteractiveResize(h chrome.NativeHandle, edge chrome.HitRegion, anchorX, anchorY int) error {
	cmd, ok := resizeCommands[edge]
	if !ok {
		return fmt.Errorf("region %v is not a resize edge", edge)
	}
	procReleaseCapture.Call()
	procSendMessageW.Call(uintptr(h), wmSysCommand, cmd, 0)
	return nil
}

func (b *Backend) Maximize(h chrome.NativeHandle) error {
	procShowWindow.Call(uintptr(h), swShowMaximize)
	return nil
}

func (b *Backend) Restore(h chrome.NativeHandle, to chrome.Bounds) error {
	procShowWindow.Call(uintptr(h), swRestore)
	if !to.Empty() {
		return b.SetBounds(h, to)
	}
	return nil
}

func (b *Backend) Minimize(h chrome.NativeHandle) error {
	procShowWindow.Call(uintptr(h), swShowMinimize)
	return nil
}

func (b *Backend) Close(h chrome.NativeHandle) error {
	ret, _, callErr := procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostMessageW(WM_CLOSE): %v", callErr)
	}
	return nil
}

// IsMaximized probes the real placement, which can disagree with the
// tracked flag after external snap gestures.
func (b *Backend) IsMaximized(h chrome.NativeHandle) (bool, error) {
	var wp windowPlacement
	wp.Length = uint32(unsafe.Sizeof(wp))
	ret, _, callErr := procGetWindowPlacement.Call(uintptr(h), uintptr(unsafe.Pointer(&wp)))
	if ret == 0 {
		return false, fmt.Errorf("GetWindowPlacement: %v", callErr)
	}
	return wp.ShowCmd == showCmdMaximized, nil
}

var resizeCommands = map[chrome.HitRegion]uintptr{
	chrome.RegionLeft:        scSizeLeft,
	chrome.RegionRight:       scSizeRight,
	chrome.RegionTop:         scSizeTop,
	chrome.RegionTopLeft:     scSizeTopLeft,
	chrome.RegionTopRight:    scSizeTopRight,
	chrome.RegionBottom:      scSizeBottom,
	chrome.RegionBottomLeft:  scSizeBottomLeft,
	chrome.RegionBottomRight: scSizeBottomRight,
}
