// Package chrome implements frameless window chrome: hit-testing for a
// custom-drawn caption and borders, the drag/maximize state machine, and
// the deferred compositor refresh that keeps the custom frame in sync
// with asynchronous window-state changes. Platform message plumbing
// lives in winchrome and x11chrome; this package is toolkit-agnostic.
package chrome

// HitRegion identifies the semantic window region under the cursor.
type HitRegion int

const (
	RegionClient HitRegion = iota
	RegionCaption
	RegionTop
	RegionBottom
	RegionLeft
	RegionRight
	RegionTopLeft
	RegionTopRight
	RegionBottomLeft
	RegionBottomRight
	RegionMinimizeButton
	RegionMaximizeButton
	RegionCloseButton
)

var regionNames = map[HitRegion]string{
	RegionClient:         "client",
	RegionCaption:        "caption",
	RegionTop:            "top",
	RegionBottom:         "bottom",
	RegionLeft:           "left",
	RegionRight:          "right",
	RegionTopLeft:        "top-left",
	RegionTopRight:       "top-right",
	RegionBottomLeft:     "bottom-left",
	RegionBottomRight:    "bottom-right",
	RegionMinimizeButton: "minimize-button",
	RegionMaximizeButton: "maximize-button",
	RegionCloseButton:    "close-button",
}

func (r HitRegion) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsEdge reports whether the region is a resize border or corner.
func (r HitRegion) IsEdge() bool {
	switch r {
	case RegionTop, RegionBottom, RegionLeft, RegionRight,
		RegionTopLeft, RegionTopRight, RegionBottomLeft, RegionBottomRight:
		return true
	}
	return false
}

// IsButton reports whether the region is a caption button slot.
func (r HitRegion) IsButton() bool {
	switch r {
	case RegionMinimizeButton, RegionMaximizeButton, RegionCloseButton:
		return true
	}
	return false
}

// Classify maps a window-relative cursor position to a hit region.
//
// Precedence: corners beat everything, caption buttons beat the caption,
// the caption beats single resize edges where the strips overlap.
// Out-of-bounds coordinates classify as client so a stray native message
// can never produce a resize cursor for a point outside the window.
func Classify(cursorX, cursorY, windowWidth, windowHeight, captionHeight, borderWidth, buttonClusterWidth int) HitRegion {
	if windowWidth <= 0 || windowHeight <= 0 {
		return RegionClient
	}
	if cursorX < 0 || cursorY < 0 || cursorX >= windowWidth || cursorY >= windowHeight {
		return RegionClient
	}

	onTop := cursorY < borderWidth
	onBottom := cursorY > windowHeight-borderWidth
	onLeft := cursorX < borderWidth
	onRight := cursorX > windowWidth-borderWidth

	switch {
	case onTop && onLeft:
		return RegionTopLeft
	case onTop && onRight:
		return RegionTopRight
	case onBottom && onLeft:
		return RegionBottomLeft
	case onBottom && onRight:
		return RegionBottomRight
	}

	if cursorY < captionHeight {
		if buttonClusterWidth > 0 && cursorX >= windowWidth-buttonClusterWidth {
			return captionButtonAt(cursorX, windowWidth, buttonClusterWidth)
		}
		return RegionCaption
	}

	switch {
	case onTop:
		return RegionTop
	case onBottom:
		return RegionBottom
	case onLeft:
		return RegionLeft
	case onRight:
		return RegionRight
	}
	return RegionClient
}

// captionButtonAt resolves a point inside the button cluster to its slot.
// The cluster holds three equal-width slots anchored to the right edge:
// minimize, maximize, close, with close outermost.
func captionButtonAt(cursorX, windowWidth, buttonClusterWidth int) HitRegion {
	slotWidth := buttonClusterWidth / 3
	if slotWidth <= 0 {
		return RegionCloseButton
	}
	switch slot := (windowWidth - 1 - cursorX) / slotWidth; {
	case slot <= 0:
		return RegionCloseButton
	case slot == 1:
		return RegionMaximizeButton
	default:
		return RegionMinimizeButton
	}
}
