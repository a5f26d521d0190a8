package editor

import (
	"strings"
	"testing"

	"github.com/marcus/echoarea/internal/heightmgr"
)

func newTestWindow(lines int) *Window {
	content := strings.TrimSuffix(strings.Repeat("line\n", lines), "\n")
	return NewWindow(Scratch(content), 8)
}

func TestWindowViewRoundTrip(t *testing.T) {
	w := newTestWindow(100)
	w.Resize(80, 10)

	if err := w.SetView(heightmgr.View{Top: 50, Line: 55, Col: 2}); err != nil {
		t.Fatal(err)
	}

	// Shrinking the window (a growing echo region does this) may clamp
	// the offset; restoring the snapshot must bring it back.
	snap, err := w.View()
	if err != nil {
		t.Fatal(err)
	}
	w.Resize(80, 7)
	if err := w.SetView(snap); err != nil {
		t.Fatal(err)
	}

	got, _ := w.View()
	if got.Top != 50 {
		t.Errorf("Top = %d, want restored 50", got.Top)
	}
	if got.Line != 55 || got.Col != 2 {
		t.Errorf("cursor = %d:%d, want 55:2", got.Line, got.Col)
	}
}

func TestWindowSetViewClampsToBuffer(t *testing.T) {
	w := newTestWindow(10)
	w.Resize(80, 5)

	if err := w.SetView(heightmgr.View{Top: 0, Line: 500, Col: 500}); err != nil {
		t.Fatal(err)
	}
	got, _ := w.View()
	if got.Line != 9 {
		t.Errorf("Line = %d, want clamped to last line 9", got.Line)
	}
	if got.Col != 4 {
		t.Errorf("Col = %d, want clamped to line width 4", got.Col)
	}
}

func TestWindowCursorScrollsViewport(t *testing.T) {
	w := newTestWindow(100)
	w.Resize(80, 10)

	w.JumpTo(42)
	if top := w.Top(); top > 42 || top+10 <= 42 {
		t.Errorf("Top = %d, cursor line 42 must be visible", top)
	}

	w.MoveCursor(-42, 0)
	if w.Top() != 0 {
		t.Errorf("Top = %d, want scrolled back to 0", w.Top())
	}
}

func TestWindowHalfPage(t *testing.T) {
	w := newTestWindow(100)
	w.Resize(80, 10)

	w.HalfPage(1)
	line, _ := w.Cursor()
	if line != 6 {
		t.Errorf("cursor line = %d, want 6 after half page down", line)
	}
}
