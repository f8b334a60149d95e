package chrome

import "errors"

// fakeBackend is an in-memory Backend for controller and context tests.
type fakeBackend struct {
	bounds    Bounds
	maximized bool

	nativeMoveErr   error
	nativeResizeErr error
	boundsErr       error

	moveAnchors   [][2]int
	resizeEdges   []HitRegion
	setBoundsLog  []Bounds
	appliedChrome []Metrics
	minimized     int
	closed        int
}

var errFakeUnsupported = errors.New("fake: not supported")

func newFakeBackend(b Bounds) *fakeBackend {
	return &fakeBackend{bounds: b}
}

func (f *fakeBackend) Bounds(NativeHandle) (Bounds, error) {
	if f.boundsErr != nil {
		return Bounds{}, f.boundsErr
	}
	return f.bounds, nil
}

func (f *fakeBackend) SetBounds(_ NativeHandle, b Bounds) error {
	f.bounds = b
	f.setBoundsLog = append(f.setBoundsLog, b)
	return nil
}

func (f *fakeBackend) BeginInteractiveMove(_ NativeHandle, anchorX, anchorY int) error {
	if f.nativeMoveErr != nil {
		return f.nativeMoveErr
	}
	f.moveAnchors = append(f.moveAnchors, [2]int{anchorX, anchorY})
	return nil
}

func (f *fakeBackend) BeginInteractiveResize(_ NativeHandle, edge HitRegion, _, _ int) error {
	if f.nativeResizeErr != nil {
		return f.nativeResizeErr
	}
	f.resizeEdges = append(f.resizeEdges, edge)
	return nil
}

func (f *fakeBackend) Maximize(NativeHandle) error {
	f.maximized = true
	f.bounds = Bounds{X: 0, Y: 0, Width: 1920, Height: 1040}
	return nil
}

func (f *fakeBackend) Restore(_ NativeHandle, to Bounds) error {
	f.maximized = false
	if !to.Empty() {
		f.bounds = to
	}
	return nil
}

func (f *fakeBackend) Minimize(NativeHandle) error {
	f.minimized++
	return nil
}

func (f *fakeBackend) Close(NativeHandle) error {
	f.closed++
	return nil
}

func (f *fakeBackend) ApplyChrome(_ NativeHandle, m Metrics) error {
	f.appliedChrome = append(f.appliedChrome, m)
	return nil
}

// fakeInterceptor records install/uninstall calls for lifecycle tests.
type fakeInterceptor struct {
	installs   []NativeHandle
	uninstalls []NativeHandle
	installErr error
}

func (f *fakeInterceptor) Install(h NativeHandle) error {
	if f.installErr != nil {
		return f.installErr
	}
	f.installs = append(f.installs, h)
	return nil
}

func (f *fakeInterceptor) Uninstall(h NativeHandle) error {
	f.uninstalls = append(f.uninstalls, h)
	return nil
}
