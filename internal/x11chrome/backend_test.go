package x11chrome

import (
	"testing"

	"github.com/bnema/chromeless/internal/chrome"
)

func TestAvailableFollowsDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	if Available() {
		t.Fatal("available without DISPLAY")
	}
	t.Setenv("DISPLAY", ":0")
	if !Available() {
		t.Fatal("not available with DISPLAY set")
	}
}

func TestResizeDirectionsCoverAllEdges(t *testing.T) {
	edges := []chrome.HitRegion{
		chrome.RegionLeft, chrome.RegionRight, chrome.RegionTop, chrome.RegionBottom,
		chrome.RegionTopLeft, chrome.RegionTopRight, chrome.RegionBottomLeft, chrome.RegionBottomRight,
	}
	seen := make(map[int]chrome.HitRegion, len(edges))
	for _, e := range edges {
		d, ok := resizeDirections[e]
		if !ok {
			t.Fatalf("no protocol direction for %v", e)
		}
		if prev, dup := seen[d]; dup {
			t.Fatalf("direction %d mapped from both %v and %v", d, prev, e)
		}
		seen[d] = e
	}
	if _, ok := resizeDirections[chrome.RegionCaption]; ok {
		t.Fatal("caption must not map to a resize direction")
	}
}
