// Package x11chrome implements the frameless chrome backend for X11
// sessions over EWMH. Caption drags hand off to the window manager via
// _NET_WM_MOVERESIZE, which is what keeps WM-side snapping and edge
// resistance working; maximize and restore go through _NET_WM_STATE.
package x11chrome

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/rs/zerolog"

	"github.com/bnema/chromeless/internal/chrome"
)

// _NET_WM_MOVERESIZE directions, per the EWMH spec.
const (
	moveResizeSizeTopLeft     = 0
	moveResizeSizeTop         = 1
	moveResizeSizeTopRight    = 2
	moveResizeSizeRight       = 3
	moveResizeSizeBottomRight = 4
	moveResizeSizeBottom      = 5
	moveResizeSizeBottomLeft  = 6
	moveResizeSizeLeft        = 7
	moveResizeMove            = 8
)

// _NET_WM_STATE actions.
const (
	stateRemove = 0
	stateAdd    = 1
)

// Available reports whether an X11 display is reachable.
func Available() bool {
	return os.Getenv("DISPLAY") != ""
}

// Backend drives native windows through the EWMH protocol.
type Backend struct {
	xu  *xgbutil.XUtil
	log zerolog.Logger
}

// NewBackend connects to the X server. Fails with
// ErrUnsupportedPlatform when no display is reachable, so callers can
// fall back to native decorations.
func NewBackend(log zerolog.Logger) (*Backend, error) {
	if !Available() {
		return nil, fmt.Errorf("no DISPLAY: %w", chrome.ErrUnsupportedPlatform)
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %v: %w", err, chrome.ErrUnsupportedPlatform)
	}
	return &Backend{xu: xu, log: log.With().Str("component", "x11chrome").Logger()}, nil
}

// Disconnect closes the X server connection.
func (b *Backend) Disconnect() {
	b.xu.Conn().Close()
}

func (b *Backend) window(h chrome.NativeHandle) xproto.Window {
	return xproto.Window(h)
}

func (b *Backend) Bounds(h chrome.NativeHandle) (chrome.Bounds, error) {
	win := xwindow.New(b.xu, b.window(h))
	geom, err := win.DecorGeometry()
	if err != nil {
		return chrome.Bounds{}, fmt.Errorf("window geometry: %w", err)
	}
	return chrome.Bounds{X: geom.X(), Y: geom.Y(), Width: geom.Width(), Height: geom.Height()}, nil
}

func (b *Backend) SetBounds(h chrome.NativeHandle, bounds chrome.Bounds) error {
	err := ewmh.MoveresizeWindow(b.xu, b.window(h), bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if err != nil {
		// Some WMs ignore the EWMH request; configure directly.
		xwindow.New(b.xu, b.window(h)).MoveResize(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	}
	return nil
}

// BeginInteractiveMove asks the window manager to run the drag. The
// anchor is window-relative; the protocol wants root coordinates of the
// grab point.
func (b *Backend) BeginInteractiveMove(h chrome.NativeHandle, anchorX, anchorY int) error {
	bounds, err := b.Bounds(h)
	if err != nil {
		return err
	}
	return b.moveResize(h, bounds.X+anchorX, bounds.Y+anchorY, moveResizeMove)
}

// BeginInteractiveResize asks the window manager to run the resize from
// the given edge or corner.
func (b *Backend) BeginInteractiveResize(h chrome.NativeHandle, edge chrome.HitRegion, anchorX, anchorY int) error {
	direction, ok := resizeDirections[edge]
	if !ok {
		return fmt.Errorf("region %v is not a resize edge", edge)
	}
	bounds, err := b.Bounds(h)
	if err != nil {
		return err
	}
	return b.moveResize(h, bounds.X+anchorX, bounds.Y+anchorY, direction)
}

// moveResize sends _NET_WM_MOVERESIZE to the root window. Built
// manually because the xgbutil helper panics on this library version.
func (b *Backend) moveResize(h chrome.NativeHandle, rootX, rootY, direction int) error {
	atomReply, err := xproto.InternAtom(b.xu.Conn(), false,
		uint16(len("_NET_WM_MOVERESIZE")), "_NET_WM_MOVERESIZE").Reply()
	if err != nil {
		return fmt.Errorf("intern _NET_WM_MOVERESIZE: %w", err)
	}

	const button = 1
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: b.window(h),
		Type:   atomReply.Atom,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(rootX), uint32(rootY), uint32(direction), button, 0,
		}),
	}
	return xproto.SendEventChecked(
		b.xu.Conn(),
		false,
		b.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (b *Backend) Maximize(h chrome.NativeHandle) error {
	return b.setMaximized(h, stateAdd)
}

func (b *Backend) Restore(h chrome.NativeHandle, to chrome.Bounds) error {
	if err := b.setMaximized(h, stateRemove); err != nil {
		return err
	}
	if !to.Empty() {
		return b.SetBounds(h, to)
	}
	return nil
}

func (b *Backend) setMaximized(h chrome.NativeHandle, action int) error {
	win := b.window(h)
	if err := ewmh.WmStateReq(b.xu, win, action, "_NET_WM_STATE_MAXIMIZED_HORZ"); err != nil {
		return fmt.Errorf("toggle horizontal maximize: %w", err)
	}
	if err := ewmh.WmStateReq(b.xu, win, action, "_NET_WM_STATE_MAXIMIZED_VERT"); err != nil {
		return fmt.Errorf("toggle vertical maximize: %w", err)
	}
	return nil
}

// IsMaximized probes the live _NET_WM_STATE, which can disagree with
// the tracked flag after WM-side gestures.
func (b *Backend) IsMaximized(h chrome.NativeHandle) (bool, error) {
	states, err := ewmh.WmStateGet(b.xu, b.window(h))
	if err != nil {
		return false, fmt.Errorf("read window state: %w", err)
	}
	horz, vert := false, false
	for _, s := range states {
		switch s {
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			horz = true
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			vert = true
		}
	}
	return horz && vert, nil
}

func (b *Backend) Minimize(h chrome.NativeHandle) error {
	const iconicState = 3
	atomReply, err := xproto.InternAtom(b.xu.Conn(), false,
		uint16(len("WM_CHANGE_STATE")), "WM_CHANGE_STATE").Reply()
	if err != nil {
		return fmt.Errorf("intern WM_CHANGE_STATE: %w", err)
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: b.window(h),
		Type:   atomReply.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{iconicState, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(
		b.xu.Conn(),
		false,
		b.xu.RootWin(),
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

func (b *Backend) Close(h chrome.NativeHandle) error {
	return ewmh.CloseWindow(b.xu, b.window(h))
}

// ApplyChrome is a light operation on X11: compositing attributes are
// the WM's business, so only undecorated-window hints would apply and
// those are set once at window creation by the toolkit.
func (b *Backend) ApplyChrome(h chrome.NativeHandle, m chrome.Metrics) error {
	return nil
}

var resizeDirections = map[chrome.HitRegion]int{
	chrome.RegionLeft:        moveResizeSizeLeft,
	chrome.RegionRight:       moveResizeSizeRight,
	chrome.RegionTop:         moveResizeSizeTop,
	chrome.RegionBottom:      moveResizeSizeBottom,
	chrome.RegionTopLeft:     moveResizeSizeTopLeft,
	chrome.RegionTopRight:    moveResizeSizeTopRight,
	chrome.RegionBottomLeft:  moveResizeSizeBottomLeft,
	chrome.RegionBottomRight: moveResizeSizeBottomRight,
}
