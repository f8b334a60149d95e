package chrome

// Bounds is a window rectangle in screen coordinates.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the bounds describe a zero-area rectangle.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// DragSession records the pointer and window anchors of a caption drag.
// Anchors are screen coordinates captured at pointer-down.
type DragSession struct {
	Active       bool
	StartCursorX int
	StartCursorY int
	StartWindowX int
	StartWindowY int
}

// WindowState is the per-window record of restore geometry, maximize
// state and the in-flight drag session. It is a plain value store; the
// controller owns all transition rules.
type WindowState struct {
	normal    Bounds
	maximized bool
	drag      DragSession
}

// NewWindowState returns an empty state for a window in the normal
// (non-maximized) presentation.
func NewWindowState() *WindowState {
	return &WindowState{}
}

// SaveNormalBounds records the geometry to restore to after a maximize.
// Zero-area bounds are ignored so the restore target always stays valid.
// Callers must save before requesting the native maximize, never after.
func (s *WindowState) SaveNormalBounds(b Bounds) {
	if b.Empty() {
		return
	}
	s.normal = b
}

// NormalBounds returns the last saved non-maximized geometry.
func (s *WindowState) NormalBounds() Bounds {
	return s.normal
}

// SetMaximized flips the maximize flag. Entering the maximized state
// invalidates any drag in progress.
func (s *WindowState) SetMaximized(maximized bool) {
	s.maximized = maximized
	if maximized {
		s.drag = DragSession{}
	}
}

// IsMaximized reports the current maximize flag.
func (s *WindowState) IsMaximized() bool {
	return s.maximized
}

// BeginDrag opens a drag session anchored at the given screen-space
// cursor position and window origin.
func (s *WindowState) BeginDrag(cursorX, cursorY, windowX, windowY int) {
	s.drag = DragSession{
		Active:       true,
		StartCursorX: cursorX,
		StartCursorY: cursorY,
		StartWindowX: windowX,
		StartWindowY: windowY,
	}
}

// Drag returns the current drag session, active or not.
func (s *WindowState) Drag() DragSession {
	return s.drag
}

// ClearDrag closes any drag session.
func (s *WindowState) ClearDrag() {
	s.drag = DragSession{}
}
