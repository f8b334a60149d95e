package chrome

// Native message ids and hit-test results mirrored from the Win32
// pipeline. They live here, not in winchrome, so message routing stays
// portable and testable; the Windows dispatcher is a thin syscall shim
// over HandleNativeMessage.
const (
	WM_SIZE                  = 0x0005
	WM_ACTIVATE              = 0x0006
	WM_SHOWWINDOW            = 0x0018
	WM_NCCALCSIZE            = 0x0083
	WM_NCHITTEST             = 0x0084
	WM_NCLBUTTONDOWN         = 0x00A1
	WM_NCLBUTTONUP           = 0x00A2
	WM_NCLBUTTONDBLCLK       = 0x00A3
	WM_DWMCOMPOSITIONCHANGED = 0x031E
)

// Hit-test result codes.
const (
	HTCLIENT      = 1
	HTCAPTION     = 2
	HTMINBUTTON   = 8
	HTMAXBUTTON   = 9
	HTLEFT        = 10
	HTRIGHT       = 11
	HTTOP         = 12
	HTTOPLEFT     = 13
	HTTOPRIGHT    = 14
	HTBOTTOM      = 15
	HTBOTTOMLEFT  = 16
	HTBOTTOMRIGHT = 17
	HTCLOSE       = 20
)

// WM_SIZE request kinds.
const (
	SIZE_RESTORED  = 0
	SIZE_MINIMIZED = 1
	SIZE_MAXIMIZED = 2
)

var hitCodes = map[HitRegion]uintptr{
	RegionClient:         HTCLIENT,
	RegionCaption:        HTCAPTION,
	RegionTop:            HTTOP,
	RegionBottom:         HTBOTTOM,
	RegionLeft:           HTLEFT,
	RegionRight:          HTRIGHT,
	RegionTopLeft:        HTTOPLEFT,
	RegionTopRight:       HTTOPRIGHT,
	RegionBottomLeft:     HTBOTTOMLEFT,
	RegionBottomRight:    HTBOTTOMRIGHT,
	RegionMinimizeButton: HTMINBUTTON,
	RegionMaximizeButton: HTMAXBUTTON,
	RegionCloseButton:    HTCLOSE,
}

// HitCode converts a region to its native hit-test answer.
func HitCode(r HitRegion) uintptr {
	if code, ok := hitCodes[r]; ok {
		return code
	}
	return HTCLIENT
}

// pointFromLParam unpacks the signed 16-bit screen coordinates carried
// by mouse messages. Negative values are real on multi-monitor setups.
func pointFromLParam(lparam uintptr) (int, int) {
	x := int(int16(lparam & 0xFFFF))
	y := int(int16((lparam >> 16) & 0xFFFF))
	return x, y
}

// HandleNativeMessage answers hit-test, geometry and caption-button
// queries directly and observes state-transition messages without
// consuming them. Returns handled=false for everything the caller must
// forward to the previously installed handler.
//
// The dispatcher can re-enter this method while a forwarded call is
// still on the stack (synchronous size/move notifications); all state
// it touches lives on the context, so reentrant calls stay consistent.
func (c *Context) HandleNativeMessage(msg uint32, wparam, lparam uintptr) (bool, uintptr) {
	switch msg {
	case WM_NCCALCSIZE:
		// Claim the whole frame as client area; the caption and borders
		// are drawn by the application.
		if wparam != 0 {
			return true, 0
		}
		return false, 0

	case WM_NCHITTEST:
		x, y := pointFromLParam(lparam)
		b, err := c.backend.Bounds(c.handle)
		if err != nil {
			return true, HTCLIENT
		}
		m := c.Metrics()
		region := Classify(x-b.X, y-b.Y, b.Width, b.Height,
			m.CaptionHeight, m.BorderWidth, m.ButtonClusterWidth())
		if c.state.IsMaximized() && region.IsEdge() {
			// No resize borders while maximized.
			return true, HTCLIENT
		}
		return true, HitCode(region)

	case WM_NCLBUTTONDOWN:
		switch wparam {
		case HTMINBUTTON, HTMAXBUTTON, HTCLOSE:
			c.pressedNC = wparam
			return true, 0
		}
		return false, 0

	case WM_NCLBUTTONUP:
		pressed := c.pressedNC
		c.pressedNC = 0
		if pressed != 0 && wparam == pressed {
			c.activateNCButton(pressed)
			return true, 0
		}
		return false, 0

	case WM_NCLBUTTONDBLCLK:
		if wparam == HTCAPTION {
			if err := c.controller.ToggleMaximize(); err != nil {
				c.log.Warn().Err(err).Msg("caption double-click toggle failed")
			}
			return true, 0
		}
		return false, 0

	case WM_SIZE:
		// Observe only; the original handler still sees the message.
		switch wparam {
		case SIZE_MAXIMIZED:
			c.controller.SetMaximizedExternally(true)
		case SIZE_RESTORED:
			c.controller.SetMaximizedExternally(false)
		}
		return false, 0

	case WM_SHOWWINDOW, WM_DWMCOMPOSITIONCHANGED:
		c.scheduler.Request(c.handle, c.refreshDelay)
		return false, 0

	case WM_ACTIVATE:
		if wparam != 0 {
			c.scheduler.Request(c.handle, c.refreshDelay)
		}
		return false, 0
	}
	return false, 0
}

func (c *Context) activateNCButton(code uintptr) {
	var err error
	switch code {
	case HTMINBUTTON:
		err = c.controller.Minimize()
	case HTMAXBUTTON:
		err = c.controller.ToggleMaximize()
	case HTCLOSE:
		err = c.controller.Close()
	}
	if err != nil {
		c.log.Warn().Err(err).Uint64("button", uint64(code)).Msg("caption button action failed")
	}
}
