package chrome

// NativeHandle identifies a toolkit window to the platform backend: an
// HWND on Windows, an X11 window id elsewhere. Opaque to this package.
type NativeHandle uintptr

// Metrics are the fixed chrome dimensions used for hit-testing and the
// compositor attributes derived from them.
type Metrics struct {
	// CaptionHeight is the height of the draggable title strip in px.
	CaptionHeight int
	// BorderWidth is the thickness of the resize borders in px.
	BorderWidth int
	// ButtonWidth is the width of one caption button slot in px.
	ButtonWidth int
	// AeroSnapEnabled selects the OS-native move primitive for drags so
	// the compositor's snap overlay stays active. When false the
	// controller translates the window itself.
	AeroSnapEnabled bool
}

// ButtonClusterWidth is the total width of the minimize/maximize/close
// cluster anchored to the caption's right edge.
func (m Metrics) ButtonClusterWidth() int {
	return 3 * m.ButtonWidth
}

// DefaultMetrics matches a conventional desktop title bar.
func DefaultMetrics() Metrics {
	return Metrics{
		CaptionHeight:   32,
		BorderWidth:     8,
		ButtonWidth:     46,
		AeroSnapEnabled: true,
	}
}

// Backend is the native window surface the controller drives.
// Implementations live in winchrome (Win32) and x11chrome (EWMH); tests
// use in-memory fakes. All methods are called from the thread that owns
// the native message pump.
type Backend interface {
	// Bounds returns the window rectangle in screen coordinates.
	Bounds(h NativeHandle) (Bounds, error)

	// SetBounds moves and resizes the window directly, without engaging
	// any compositor move affordance.
	SetBounds(h NativeHandle, b Bounds) error

	// BeginInteractiveMove hands the drag to the OS using its native
	// move primitive. The anchor is the pointer-down position in
	// window-relative coordinates; passing it through is what keeps the
	// compositor's snap preview engaged.
	BeginInteractiveMove(h NativeHandle, anchorX, anchorY int) error

	// BeginInteractiveResize hands an edge or corner resize to the OS.
	BeginInteractiveResize(h NativeHandle, edge HitRegion, anchorX, anchorY int) error

	Maximize(h NativeHandle) error

	// Restore leaves the maximized state and, when to is non-empty,
	// reapplies that geometry.
	Restore(h NativeHandle, to Bounds) error

	Minimize(h NativeHandle) error
	Close(h NativeHandle) error

	// ApplyChrome re-applies the non-client styling and compositor
	// attributes for the current metrics and forces a repaint. Failures
	// wrap ErrAttributeFailed and are non-fatal.
	ApplyChrome(h NativeHandle, m Metrics) error
}
