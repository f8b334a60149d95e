package chrome

import "testing"

func TestNormalBoundsRoundTrip(t *testing.T) {
	s := NewWindowState()
	want := Bounds{X: 100, Y: 100, Width: 800, Height: 600}
	s.SaveNormalBounds(want)
	s.SetMaximized(true)

	if got := s.NormalBounds(); got != want {
		t.Fatalf("NormalBounds() = %+v, want %+v", got, want)
	}
	s.SetMaximized(false)
	if got := s.NormalBounds(); got != want {
		t.Fatalf("NormalBounds() after restore = %+v, want %+v", got, want)
	}
}

func TestSaveNormalBoundsRejectsEmpty(t *testing.T) {
	s := NewWindowState()
	valid := Bounds{X: 10, Y: 20, Width: 300, Height: 200}
	s.SaveNormalBounds(valid)
	s.SaveNormalBounds(Bounds{})
	s.SaveNormalBounds(Bounds{X: 5, Y: 5, Width: 0, Height: 100})

	if got := s.NormalBounds(); got != valid {
		t.Fatalf("empty bounds overwrote restore target: %+v", got)
	}
}

func TestMaximizeClearsDragSession(t *testing.T) {
	s := NewWindowState()
	s.BeginDrag(450, 115, 100, 100)
	if !s.Drag().Active {
		t.Fatal("expected active drag session")
	}
	s.SetMaximized(true)
	if s.Drag().Active {
		t.Fatal("drag session survived maximize")
	}
}

func TestDragSessionAnchors(t *testing.T) {
	s := NewWindowState()
	s.BeginDrag(450, 115, 100, 100)
	sess := s.Drag()
	if sess.StartCursorX != 450 || sess.StartCursorY != 115 {
		t.Fatalf("cursor anchor = (%d,%d), want (450,115)", sess.StartCursorX, sess.StartCursorY)
	}
	if sess.StartWindowX != 100 || sess.StartWindowY != 100 {
		t.Fatalf("window anchor = (%d,%d), want (100,100)", sess.StartWindowX, sess.StartWindowY)
	}
	s.ClearDrag()
	if s.Drag().Active {
		t.Fatal("ClearDrag left session active")
	}
}
