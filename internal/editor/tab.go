package editor

import "github.com/marcus/echoarea/internal/heightmgr"

// Tab is a page of windows. Each tab keeps its own echo region height,
// the integer setting the height manager grows and restores.
type Tab struct {
	windows      []*Window
	current      int
	regionHeight int
}

// NewTab creates a tab with one window.
func NewTab(w *Window) *Tab {
	return &Tab{windows: []*Window{w}, regionHeight: 1}
}

// Windows implements heightmgr.Tab.
func (t *Tab) Windows() []heightmgr.Window {
	out := make([]heightmgr.Window, len(t.windows))
	for i, w := range t.windows {
		out[i] = w
	}
	return out
}

// CurrentWindow implements heightmgr.Tab.
func (t *Tab) CurrentWindow() heightmgr.Window {
	return t.Active()
}

// SetRegionHeight implements heightmgr.Tab.
func (t *Tab) SetRegionHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	t.regionHeight = rows
}

// RegionHeight returns the tab's echo region height.
func (t *Tab) RegionHeight() int { return t.regionHeight }

// Active returns the focused window.
func (t *Tab) Active() *Window {
	if len(t.windows) == 0 {
		return nil
	}
	return t.windows[t.current]
}

// Split adds a window over the same buffer below the focused one and
// focuses it.
func (t *Tab) Split(tabWidth int) *Window {
	w := NewWindow(t.Active().Buffer(), tabWidth)
	t.windows = append(t.windows, w)
	t.current = len(t.windows) - 1
	return w
}

// CycleWindow focuses the next window.
func (t *Tab) CycleWindow() {
	if len(t.windows) > 0 {
		t.current = (t.current + 1) % len(t.windows)
	}
}
