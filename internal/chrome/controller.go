package chrome

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DragPhase is the controller's position in the drag state machine.
type DragPhase string

const (
	DragIdle    DragPhase = "idle"
	DragPending DragPhase = "pending"
	DragActive  DragPhase = "dragging"
)

// dragStartThreshold is the pointer travel in px before a pending drag
// becomes a move. Matches the usual system drag rectangle.
const dragStartThreshold = 4

// defaultDoubleClickWindow bounds caption double-click detection when
// the toolkit does not synthesize double-click events itself.
const defaultDoubleClickWindow = 400 * time.Millisecond

// Controller runs the caption drag and maximize/restore state machine
// for one window. Pointer input arrives in window-relative coordinates
// via the Bridge; native commands go out through the Backend. The
// controller never repositions the window pixel-by-pixel while snap is
// enabled: it defers to the OS move primitive so snap-assist keeps
// working.
type Controller struct {
	handle  NativeHandle
	backend Backend
	state   *WindowState

	// metricsMu guards metrics against config-reload writes arriving
	// off the pump thread.
	metricsMu sync.Mutex
	metrics   Metrics

	phase             DragPhase
	manualDrag        bool
	pressedButton     HitRegion
	lastCaptionDown   time.Time
	doubleClickWindow time.Duration

	onTransition func()
	now          func() time.Time
	log          zerolog.Logger
}

// NewController wires a controller to a window. The transition hook, if
// set later, fires after every maximize/restore so the owner can queue a
// composition refresh.
func NewController(handle NativeHandle, backend Backend, state *WindowState, metrics Metrics, log zerolog.Logger) *Controller {
	return &Controller{
		handle:            handle,
		backend:           backend,
		state:             state,
		metrics:           metrics,
		phase:             DragIdle,
		pressedButton:     RegionClient,
		doubleClickWindow: defaultDoubleClickWindow,
		now:               time.Now,
		log:               log.With().Str("component", "drag-controller").Logger(),
	}
}

// SetTransitionHook registers the callback fired after window-state
// transitions (maximize, restore, external changes).
func (c *Controller) SetTransitionHook(fn func()) {
	c.onTransition = fn
}

// SetMetrics swaps the chrome dimensions used for hit-testing.
func (c *Controller) SetMetrics(m Metrics) {
	c.metricsMu.Lock()
	c.metrics = m
	c.metricsMu.Unlock()
}

func (c *Controller) metricsSnapshot() Metrics {
	c.metricsMu.Lock()
	defer c.metricsMu.Unlock()
	return c.metrics
}

// Phase returns the current drag phase, for observability.
func (c *Controller) Phase() DragPhase {
	return c.phase
}

// IsMaximized reports the tracked maximize state.
func (c *Controller) IsMaximized() bool {
	return c.state.IsMaximized()
}

func (c *Controller) classify(x, y int, b Bounds) HitRegion {
	m := c.metricsSnapshot()
	return Classify(x, y, b.Width, b.Height,
		m.CaptionHeight, m.BorderWidth, m.ButtonClusterWidth())
}

// PointerDown feeds a primary-button press in window-relative
// coordinates. Returns true when the press landed on chrome.
func (c *Controller) PointerDown(x, y int) bool {
	b, err := c.backend.Bounds(c.handle)
	if err != nil {
		c.log.Debug().Err(err).Msg("bounds query failed on pointer-down")
		return false
	}

	region := c.classify(x, y, b)
	switch {
	case region.IsButton():
		c.pressedButton = region
		return true

	case region == RegionCaption:
		if c.isDoubleClick() {
			if err := c.ToggleMaximize(); err != nil {
				c.log.Warn().Err(err).Msg("double-click toggle failed")
			}
			return true
		}
		// Dragging from a maximized window is a deliberate no-op; the
		// caller decides whether to restore first.
		if c.state.IsMaximized() {
			return true
		}
		c.state.BeginDrag(b.X+x, b.Y+y, b.X, b.Y)
		c.phase = DragPending
		return true

	case region.IsEdge():
		if c.state.IsMaximized() {
			return true
		}
		if err := c.backend.BeginInteractiveResize(c.handle, region, x, y); err != nil {
			c.log.Warn().Err(err).Stringer("edge", region).Msg("native resize unavailable")
		}
		return true
	}
	return false
}

// isDoubleClick tracks caption press timing; a detected double-click
// resets the window so a third press cannot toggle again.
func (c *Controller) isDoubleClick() bool {
	now := c.now()
	if !c.lastCaptionDown.IsZero() && now.Sub(c.lastCaptionDown) <= c.doubleClickWindow {
		c.lastCaptionDown = time.Time{}
		return true
	}
	c.lastCaptionDown = now
	return false
}

// PointerMove feeds pointer motion in window-relative coordinates.
// Returns true while a drag is pending or active.
func (c *Controller) PointerMove(x, y int) bool {
	switch c.phase {
	case DragPending:
		return c.confirmDrag(x, y)
	case DragActive:
		if c.manualDrag {
			c.moveToCursor(x, y)
		}
		return true
	}
	return false
}

// confirmDrag promotes a pending drag once the pointer travels past the
// threshold, engaging the OS move primitive (or the manual fallback when
// snap is disabled or the platform has no such primitive).
func (c *Controller) confirmDrag(x, y int) bool {
	sess := c.state.Drag()
	if !sess.Active {
		c.phase = DragIdle
		return false
	}
	b, err := c.backend.Bounds(c.handle)
	if err != nil {
		return true
	}
	curX, curY := b.X+x, b.Y+y
	if abs(curX-sess.StartCursorX) < dragStartThreshold && abs(curY-sess.StartCursorY) < dragStartThreshold {
		return true
	}

	c.phase = DragActive
	if c.metricsSnapshot().AeroSnapEnabled {
		anchorX := sess.StartCursorX - sess.StartWindowX
		anchorY := sess.StartCursorY - sess.StartWindowY
		err := c.backend.BeginInteractiveMove(c.handle, anchorX, anchorY)
		if err == nil {
			return true
		}
		c.log.Warn().Err(err).Msg("native move unavailable, translating manually")
	}
	c.manualDrag = true
	c.moveToCursor(x, y)
	return true
}

// moveToCursor applies the screen-space pointer delta to the anchored
// window origin. Only used on the manual fallback path.
func (c *Controller) moveToCursor(x, y int) {
	sess := c.state.Drag()
	if !sess.Active {
		return
	}
	b, err := c.backend.Bounds(c.handle)
	if err != nil {
		return
	}
	nx, ny := dragTarget(sess, b.X+x, b.Y+y)
	if err := c.backend.SetBounds(c.handle, Bounds{X: nx, Y: ny, Width: b.Width, Height: b.Height}); err != nil {
		c.log.Debug().Err(err).Msg("manual move failed")
	}
}

// dragTarget translates the drag anchor by the cursor's screen-space
// delta: the window origin that keeps the grab point under the pointer.
func dragTarget(sess DragSession, cursorX, cursorY int) (int, int) {
	return sess.StartWindowX + (cursorX - sess.StartCursorX),
		sess.StartWindowY + (cursorY - sess.StartCursorY)
}

// PointerUp feeds a primary-button release. Caption button actions fire
// here, only when the release is still over the pressed slot.
func (c *Controller) PointerUp(x, y int) bool {
	consumed := c.phase != DragIdle
	c.phase = DragIdle
	c.manualDrag = false
	c.state.ClearDrag()

	if c.pressedButton != RegionClient {
		pressed := c.pressedButton
		c.pressedButton = RegionClient
		if b, err := c.backend.Bounds(c.handle); err == nil && c.classify(x, y, b) == pressed {
			c.activateButton(pressed)
		}
		return true
	}
	return consumed
}

func (c *Controller) activateButton(region HitRegion) {
	var err error
	switch region {
	case RegionMinimizeButton:
		err = c.Minimize()
	case RegionMaximizeButton:
		err = c.ToggleMaximize()
	case RegionCloseButton:
		err = c.Close()
	}
	if err != nil {
		c.log.Warn().Err(err).Stringer("button", region).Msg("caption button action failed")
	}
}

// CaptureLost aborts any drag when the toolkit loses pointer capture.
func (c *Controller) CaptureLost() {
	c.phase = DragIdle
	c.manualDrag = false
	c.pressedButton = RegionClient
	c.state.ClearDrag()
}

// SetMaximizedExternally syncs the tracked state with a transition the
// OS performed on its own (taskbar, snap, another process). Any drag in
// flight is abandoned.
func (c *Controller) SetMaximizedExternally(maximized bool) {
	if c.state.IsMaximized() == maximized {
		return
	}
	c.phase = DragIdle
	c.manualDrag = false
	c.state.SetMaximized(maximized)
	c.state.ClearDrag()
	c.fireTransition()
}

// ToggleMaximize switches between the normal and maximized states.
// The pre-maximize geometry is saved before the native call so restore
// reproduces it exactly.
func (c *Controller) ToggleMaximize() error {
	if c.state.IsMaximized() {
		target := c.state.NormalBounds()
		if err := c.backend.Restore(c.handle, target); err != nil {
			return err
		}
		c.state.SetMaximized(false)
	} else {
		if b, err := c.backend.Bounds(c.handle); err == nil {
			c.state.SaveNormalBounds(b)
		} else {
			c.log.Warn().Err(err).Msg("could not record restore bounds")
		}
		if err := c.backend.Maximize(c.handle); err != nil {
			return err
		}
		c.state.SetMaximized(true)
	}
	c.fireTransition()
	return nil
}

// Minimize passes through to the native window. The maximize flag is
// left untouched so restoring from the taskbar returns to the right
// presentation.
func (c *Controller) Minimize() error {
	return c.backend.Minimize(c.handle)
}

// Close passes through to the native window.
func (c *Controller) Close() error {
	return c.backend.Close(c.handle)
}

func (c *Controller) fireTransition() {
	if c.onTransition != nil {
		c.onTransition()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
