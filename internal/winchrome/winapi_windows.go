//go:build windows

package winchrome

import (
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	dwmapi = windows.NewLazySystemDLL("dwmapi.dll")

	procGetWindowLongPtrW  = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW  = user32.NewProc("SetWindowLongPtrW")
	procCallWindowProcW    = user32.NewProc("CallWindowProcW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procGetWindowRect      = user32.NewProc("GetWindowRect")
	procSetWindowPos       = user32.NewProc("SetWindowPos")
	procGetWindowPlacement = user32.NewProc("GetWindowPlacement")
	procShowWindow         = user32.NewProc("ShowWindow")
	procSendMessageW       = user32.NewProc("SendMessageW")
	procPostMessageW       = user32.NewProc("PostMessageW")
	procReleaseCapture     = user32.NewProc("ReleaseCapture")
	procInvalidateRect     = user32.NewProc("InvalidateRect")
	procIsWindow           = user32.NewProc("IsWindow")

	procDwmExtendFrame  = dwmapi.NewProc("DwmExtendFrameIntoClientArea")
	procDwmSetAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
	procDwmIsEnabled    = dwmapi.NewProc("DwmIsCompositionEnabled")
)

const (
	gwlpWndProc = ^uintptr(3) // GWLP_WNDPROC (-4) as a uintptr

	wmClose      = 0x0010
	wmSysCommand = 0x0112

	scSize     = 0xF000
	scMove     = 0xF010
	scMinimize = 0xF020
	scMaximize = 0xF030
	scRestore  = 0xF120

	// SC_SIZE direction suffixes (WMSZ_* + 0xF000).
	scSizeLeft        = scSize + 1
	scSizeRight       = scSize + 2
	scSizeTop         = scSize + 3
	scSizeTopLeft     = scSize + 4
	scSizeTopRight    = scSize + 5
	scSizeBottom      = scSize + 6
	scSizeBottomLeft  = scSize + 7
	scSizeBottomRight = scSize + 8

	swShowNormal   = 1
	swShowMinimize = 6
	swShowMaximize = 3
	swRestore      = 9

	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020

	// DWMWA_NCRENDERING_POLICY with DWMNCRP_ENABLED.
	dwmwaNCRenderingPolicy = 2
	dwmNCRPEnabled         = 2

	showCmdMaximized = 3
)

type point struct {
	X, Y int32
}

type rect struct {
	Left, Top, Right, Bottom int32
}

type windowPlacement struct {
	Length         uint32
	Flags          uint32
	ShowCmd        uint32
	MinPosition    point
	MaxPosition    point
	NormalPosition rect
}

// margins is the DWM MARGINS struct for frame extension.
type margins struct {
	Left, Right, Top, Bottom int32
}
