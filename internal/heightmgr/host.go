// Package heightmgr manages a transient, auto-sizing echo area at the
// bottom of a terminal editor. It measures text about to be displayed,
// temporarily grows the region to fit it, and shrinks the region back
// after a timeout, a key press, or a mode change, restoring window
// views so the resize is invisible to window contents.
package heightmgr

import "time"

// View captures a window's scroll position and cursor.
type View struct {
	Top  int `json:"top"`  // first visible buffer line
	Line int `json:"line"` // cursor line
	Col  int `json:"col"`  // cursor column
}

// Window is a single editor window whose view can be saved and restored.
type Window interface {
	View() (View, error)
	SetView(View) error
}

// Tab is a page of windows sharing one echo region height.
type Tab interface {
	Windows() []Window
	CurrentWindow() Window
	SetRegionHeight(rows int)
}

// Timer is an armed one-shot timer. Stop reports whether the callback
// was prevented from running.
type Timer interface {
	Stop() bool
}

// Option names a cosmetic display option that shares the last-row
// column budget with echoed messages.
type Option string

const (
	OptionRuler   Option = "ruler"   // line:col indicator in the status line
	OptionShowCmd Option = "showcmd" // pending key display in the status line
)

// cosmeticOptions are disabled during an override and restored after.
var cosmeticOptions = [...]Option{OptionRuler, OptionShowCmd}

// Host supplies every capability the manager consumes from the editor.
// All callbacks (timer fire, deferred funcs, key watch) must be
// delivered on the host's main execution context; the manager performs
// no locking of its own.
type Host interface {
	// RegionHeight and SetRegionHeight access the echo region height
	// setting for the current tab.
	RegionHeight() int
	SetRegionHeight(rows int)

	// Option and SetOption access the cosmetic display options.
	Option(name Option) bool
	SetOption(name Option, on bool)

	// Columns is the terminal width. EchoSpace is the column budget
	// available to a short unwrapped message on the last screen row.
	Columns() int
	EchoSpace() int

	CurrentTab() Tab
	Tabs() []Tab

	// Redraw forces a repaint. ClearRegion erases the echo region's
	// displayed content without changing its height.
	Redraw()
	ClearRegion()

	// AfterFunc schedules fn after d on the main execution context.
	AfterFunc(d time.Duration, fn func()) Timer

	// WatchKeys installs a one-shot observer invoked on the next input
	// event. The returned cancel uninstalls it; calling cancel after
	// the observer has fired is harmless.
	WatchKeys(fn func()) (cancel func())

	// Defer runs fn at the next safe scheduling opportunity.
	Defer(fn func())

	// UnsafeContext reports whether mutating window or view state is
	// currently forbidden (e.g. inside a fast-path notification hook).
	UnsafeContext() bool
}
