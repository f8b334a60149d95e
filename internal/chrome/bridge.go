package chrome

// PointerKind discriminates pointer events arriving from the toolkit.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
)

// PointerButton identifies which pointer button an event refers to.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a pointer event from the application's event loop.
// Coordinates are window-relative unless Screen is set, in which case
// the bridge translates them before hit-testing.
type PointerEvent struct {
	Kind   PointerKind
	Button PointerButton
	X      int
	Y      int
	Screen bool
}

// WindowEventKind discriminates window-lifecycle events.
type WindowEventKind int

const (
	WindowMaximized WindowEventKind = iota
	WindowRestored
	WindowShown
	WindowFocused
	WindowCaptureLost
)

// WindowEvent is a window-lifecycle notification from the toolkit.
type WindowEvent struct {
	Kind WindowEventKind
}

// Bridge adapts generic toolkit events to drag-controller calls. It
// consumes pointer events that land on chrome and lets everything else
// pass through untouched (returns false) so the host keeps dispatching
// them normally.
type Bridge struct {
	ctrl    *Controller
	backend Backend
	handle  NativeHandle
}

// NewBridge wires a bridge to a controller and the window it serves.
func NewBridge(ctrl *Controller, backend Backend, handle NativeHandle) *Bridge {
	return &Bridge{ctrl: ctrl, backend: backend, handle: handle}
}

// HandlePlatformEvent feeds one toolkit event through the chrome layer.
// The return value is whether the event was consumed.
func (b *Bridge) HandlePlatformEvent(ev any) bool {
	switch e := ev.(type) {
	case PointerEvent:
		return b.handlePointer(e)
	case *PointerEvent:
		return b.handlePointer(*e)
	case WindowEvent:
		b.observeWindowEvent(e)
		return false
	case *WindowEvent:
		b.observeWindowEvent(*e)
		return false
	}
	return false
}

func (b *Bridge) handlePointer(e PointerEvent) bool {
	if e.Kind != PointerMove && e.Button != ButtonPrimary {
		return false
	}
	x, y := e.X, e.Y
	if e.Screen {
		bounds, err := b.backend.Bounds(b.handle)
		if err != nil {
			return false
		}
		x -= bounds.X
		y -= bounds.Y
	}
	switch e.Kind {
	case PointerDown:
		return b.ctrl.PointerDown(x, y)
	case PointerMove:
		return b.ctrl.PointerMove(x, y)
	case PointerUp:
		return b.ctrl.PointerUp(x, y)
	}
	return false
}

// observeWindowEvent syncs controller state with lifecycle changes the
// toolkit reports. These events are never consumed: the host's own
// handlers still need them.
func (b *Bridge) observeWindowEvent(e WindowEvent) {
	switch e.Kind {
	case WindowMaximized:
		b.ctrl.SetMaximizedExternally(true)
	case WindowRestored:
		b.ctrl.SetMaximizedExternally(false)
	case WindowCaptureLost:
		b.ctrl.CaptureLost()
	}
}
