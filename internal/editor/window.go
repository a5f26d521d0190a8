package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/marcus/echoarea/internal/heightmgr"
)

// Window is one visible pane over a buffer. It implements
// heightmgr.Window so the height manager can snapshot and restore its
// scroll position across region resizes.
type Window struct {
	buf *Buffer
	vp  viewport.Model

	line, col int // cursor position in the buffer
	tabWidth  int
}

// NewWindow creates a window over buf.
func NewWindow(buf *Buffer, tabWidth int) *Window {
	if tabWidth < 1 {
		tabWidth = 8
	}
	w := &Window{buf: buf, vp: viewport.New(0, 0), tabWidth: tabWidth}
	w.syncContent()
	return w
}

// Resize sets the window's render size in cells. The scroll offset is
// clamped by the viewport; callers that need it preserved snapshot the
// view first.
func (w *Window) Resize(width, height int) {
	if height < 1 {
		height = 1
	}
	w.vp.Width = width
	w.vp.Height = height
	w.syncContent()
}

// View implements heightmgr.Window.
func (w *Window) View() (heightmgr.View, error) {
	return heightmgr.View{Top: w.vp.YOffset, Line: w.line, Col: w.col}, nil
}

// SetView implements heightmgr.Window.
func (w *Window) SetView(v heightmgr.View) error {
	w.line = w.clampLine(v.Line)
	w.col = w.clampCol(w.line, v.Col)
	w.vp.SetYOffset(v.Top)
	return nil
}

// MoveCursor moves the cursor by dLine/dCol and keeps it visible.
func (w *Window) MoveCursor(dLine, dCol int) {
	w.line = w.clampLine(w.line + dLine)
	w.col = w.clampCol(w.line, w.col+dCol)
	w.ensureVisible()
}

// JumpTo places the cursor on an absolute line.
func (w *Window) JumpTo(line int) {
	w.line = w.clampLine(line)
	w.col = w.clampCol(w.line, w.col)
	w.ensureVisible()
}

// HalfPage scrolls by half the window height, negative for up.
func (w *Window) HalfPage(dir int) {
	step := w.vp.Height / 2
	if step < 1 {
		step = 1
	}
	w.line = w.clampLine(w.line + dir*step)
	w.vp.SetYOffset(w.vp.YOffset + dir*step)
	w.ensureVisible()
}

// Cursor returns the cursor position (1-based for display).
func (w *Window) Cursor() (line, col int) {
	return w.line + 1, w.col + 1
}

// Buffer returns the window's buffer.
func (w *Window) Buffer() *Buffer { return w.buf }

// Top returns the first visible buffer line.
func (w *Window) Top() int { return w.vp.YOffset }

// Render returns the visible lines.
func (w *Window) Render() string {
	return w.vp.View()
}

// syncContent pushes the buffer into the viewport. Called after buffer
// reloads and resizes.
func (w *Window) syncContent() {
	tab := strings.Repeat(" ", w.tabWidth)
	lines := make([]string, w.buf.LineCount())
	for i := range lines {
		lines[i] = strings.ReplaceAll(w.buf.Line(i), "\t", tab)
	}
	w.vp.SetContent(strings.Join(lines, "\n"))
}

// Reload re-syncs after the buffer changed and clamps the cursor.
func (w *Window) Reload() {
	w.syncContent()
	w.line = w.clampLine(w.line)
	w.col = w.clampCol(w.line, w.col)
	w.ensureVisible()
}

func (w *Window) ensureVisible() {
	if w.vp.Height < 1 {
		return
	}
	if w.line < w.vp.YOffset {
		w.vp.SetYOffset(w.line)
	} else if w.line >= w.vp.YOffset+w.vp.Height {
		w.vp.SetYOffset(w.line - w.vp.Height + 1)
	}
}

func (w *Window) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if max := w.buf.LineCount() - 1; line > max {
		return max
	}
	return line
}

func (w *Window) clampCol(line, col int) int {
	if col < 0 {
		return 0
	}
	if max := len([]rune(w.buf.Line(line))); col > max {
		return max
	}
	return col
}
