package chrome

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(backend Backend) (*Bridge, *Controller) {
	state := NewWindowState()
	ctrl := NewController(7, backend, state, Metrics{
		CaptionHeight: 30, BorderWidth: 8, ButtonWidth: 40, AeroSnapEnabled: false,
	}, zerolog.Nop())
	return NewBridge(ctrl, backend, 7), ctrl
}

func TestBridgeConsumesCaptionPress(t *testing.T) {
	backend := newFakeBackend(Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	consumed := bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 300, Y: 15})
	require.True(t, consumed)
	assert.Equal(t, DragPending, ctrl.Phase())
}

func TestBridgeIgnoresClientPress(t *testing.T) {
	backend := newFakeBackend(Bounds{Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	consumed := bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 400, Y: 300})
	assert.False(t, consumed)
	assert.Equal(t, DragIdle, ctrl.Phase())
}

func TestBridgeTranslatesScreenCoordinates(t *testing.T) {
	backend := newFakeBackend(Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	// Screen (450,115) is window-relative (350,15): inside the caption.
	consumed := bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 450, Y: 115, Screen: true})
	require.True(t, consumed)
	assert.Equal(t, DragPending, ctrl.Phase())
}

func TestBridgeDropsScreenEventsWhenBoundsUnknown(t *testing.T) {
	backend := newFakeBackend(Bounds{Width: 800, Height: 600})
	backend.boundsErr = errFakeUnsupported
	bridge, _ := newTestBridge(backend)

	consumed := bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 450, Y: 115, Screen: true})
	assert.False(t, consumed)
}

func TestBridgePassesSecondaryButtonsThrough(t *testing.T) {
	backend := newFakeBackend(Bounds{Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	consumed := bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, Button: ButtonSecondary, X: 300, Y: 15})
	assert.False(t, consumed, "context-menu clicks belong to the host")
	assert.Equal(t, DragIdle, ctrl.Phase())
}

func TestBridgeDragSequenceThroughEvents(t *testing.T) {
	backend := newFakeBackend(Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	require.True(t, bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 350, Y: 15}))
	require.True(t, bridge.HandlePlatformEvent(PointerEvent{Kind: PointerMove, X: 400, Y: -5}))
	assert.Equal(t, DragActive, ctrl.Phase())
	assert.Equal(t, Bounds{X: 150, Y: 80, Width: 800, Height: 600}, backend.bounds)

	require.True(t, bridge.HandlePlatformEvent(PointerEvent{Kind: PointerUp, X: 400, Y: -5}))
	assert.Equal(t, DragIdle, ctrl.Phase())
}

func TestBridgeWindowEventsObservedNotConsumed(t *testing.T) {
	backend := newFakeBackend(Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	assert.False(t, bridge.HandlePlatformEvent(WindowEvent{Kind: WindowMaximized}))
	assert.True(t, ctrl.IsMaximized())

	assert.False(t, bridge.HandlePlatformEvent(&WindowEvent{Kind: WindowRestored}))
	assert.False(t, ctrl.IsMaximized())
}

func TestBridgeCaptureLostAbandonsDrag(t *testing.T) {
	backend := newFakeBackend(Bounds{X: 100, Y: 100, Width: 800, Height: 600})
	bridge, ctrl := newTestBridge(backend)

	require.True(t, bridge.HandlePlatformEvent(PointerEvent{Kind: PointerDown, X: 350, Y: 15}))
	bridge.HandlePlatformEvent(WindowEvent{Kind: WindowCaptureLost})
	assert.Equal(t, DragIdle, ctrl.Phase())
}

func TestBridgeUnknownEventsPassThrough(t *testing.T) {
	backend := newFakeBackend(Bounds{Width: 800, Height: 600})
	bridge, _ := newTestBridge(backend)

	assert.False(t, bridge.HandlePlatformEvent("scroll"))
	assert.False(t, bridge.HandlePlatformEvent(nil))
}
