package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/echoarea/internal/heightmgr"
	"github.com/marcus/echoarea/internal/msg"
)

// Columns the status-line indicators occupy on the last screen row,
// matching what the renderer reserves for them.
const (
	rulerWidth   = 18
	showCmdWidth = 11
)

// Host adapts the editor to heightmgr.Host. Timer and deferred
// callbacks are shipped through the program's message queue so all
// manager state mutates on the update loop.
type Host struct {
	m    *Model
	send func(tea.Msg)

	unsafe   bool
	keyWatch func()
}

var _ heightmgr.Host = (*Host)(nil)

// SetSend wires the running program's Send. Until it is set, timer and
// deferred callbacks run synchronously; tests rely on that.
func (h *Host) SetSend(send func(tea.Msg)) {
	h.send = send
}

func (h *Host) deliver(fn func()) {
	if h.send == nil {
		fn()
		return
	}
	h.send(msg.CallbackMsg{Fn: fn})
}

// RegionHeight implements heightmgr.Host.
func (h *Host) RegionHeight() int {
	return h.m.activeTab().RegionHeight()
}

// SetRegionHeight implements heightmgr.Host.
func (h *Host) SetRegionHeight(rows int) {
	h.m.activeTab().SetRegionHeight(rows)
	h.m.layout()
}

// Option implements heightmgr.Host.
func (h *Host) Option(name heightmgr.Option) bool {
	switch name {
	case heightmgr.OptionRuler:
		return h.m.ruler
	case heightmgr.OptionShowCmd:
		return h.m.showcmd
	}
	return false
}

// SetOption implements heightmgr.Host.
func (h *Host) SetOption(name heightmgr.Option, on bool) {
	switch name {
	case heightmgr.OptionRuler:
		h.m.ruler = on
	case heightmgr.OptionShowCmd:
		h.m.showcmd = on
	}
}

// Columns implements heightmgr.Host.
func (h *Host) Columns() int {
	return h.m.width
}

// EchoSpace implements heightmgr.Host. It is the column budget left
// for a short message on the last row once the enabled status-line
// indicators have taken their share.
func (h *Host) EchoSpace() int {
	space := h.m.width - 1
	if h.m.ruler {
		space -= rulerWidth
	}
	if h.m.showcmd {
		space -= showCmdWidth
	}
	if space < 0 {
		space = 0
	}
	return space
}

// CurrentTab implements heightmgr.Host.
func (h *Host) CurrentTab() heightmgr.Tab {
	return h.m.activeTab()
}

// Tabs implements heightmgr.Host.
func (h *Host) Tabs() []heightmgr.Tab {
	out := make([]heightmgr.Tab, len(h.m.tabs))
	for i, t := range h.m.tabs {
		out[i] = t
	}
	return out
}

// Redraw implements heightmgr.Host. Bubble Tea repaints after every
// update, so this only recomputes the layout.
func (h *Host) Redraw() {
	h.m.layout()
}

// ClearRegion implements heightmgr.Host.
func (h *Host) ClearRegion() {
	h.m.echoText = ""
	h.m.echoErr = false
}

// AfterFunc implements heightmgr.Host.
func (h *Host) AfterFunc(d time.Duration, fn func()) heightmgr.Timer {
	return time.AfterFunc(d, func() {
		h.deliver(fn)
	})
}

// WatchKeys implements heightmgr.Host. The editor consults the watch
// on every key press; it is one-shot and consumed before the callback
// runs.
func (h *Host) WatchKeys(fn func()) func() {
	h.keyWatch = fn
	return func() { h.keyWatch = nil }
}

// fireKeyWatch runs and consumes the pending key watch, if any.
func (h *Host) fireKeyWatch() {
	if h.keyWatch == nil {
		return
	}
	fn := h.keyWatch
	h.keyWatch = nil
	fn()
}

// Defer implements heightmgr.Host.
func (h *Host) Defer(fn func()) {
	h.deliver(fn)
}

// UnsafeContext implements heightmgr.Host. True while a watcher
// notification is being handled; view state must not move under the
// renderer there.
func (h *Host) UnsafeContext() bool {
	return h.unsafe
}
