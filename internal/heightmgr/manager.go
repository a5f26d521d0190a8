package heightmgr

import (
	"log/slog"
	"strings"
	"time"
)

// Defaults and limits for Config.
const (
	DefaultMaxLines = 5
	DefaultDuration = 2 * time.Second
	MinDuration     = 100 * time.Millisecond
)

// Config controls when the region grows and how it reverts. It is
// fixed for the lifetime of a Manager.
type Config struct {
	// MaxLines is the hard cap on region growth. Messages needing more
	// rows never trigger an override.
	MaxLines int

	// Duration is how long a grown region lingers before reverting.
	Duration time.Duration

	// RemoveOnKey waits for the next key press after Duration elapses
	// instead of reverting immediately.
	RemoveOnKey bool

	// ClearAlways forces a clear/revert cycle for every message, even
	// ones that fit the region as-is.
	ClearAlways bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MaxLines:    DefaultMaxLines,
		Duration:    DefaultDuration,
		RemoveOnKey: true,
	}
}

func (c Config) normalize() Config {
	if c.MaxLines < 1 {
		c.MaxLines = DefaultMaxLines
	}
	if c.Duration < MinDuration {
		c.Duration = MinDuration
	}
	return c
}

// Chunk is one styled fragment of an echoed message.
type Chunk struct {
	Text string
	Attr int
}

// Manager grows the echo region to fit oversized messages and shrinks
// it back once they have been seen. One Manager exists per editor and
// every method must run on the host's main execution context.
type Manager struct {
	host Host
	cfg  Config
	log  *slog.Logger

	active            bool
	inExcludedMode    bool
	processedTick     bool
	deactivatePending bool
	baseline          int
	saved             map[Option]bool
	revert            reverter
}

// New builds a Manager around the given host. A nil logger falls back
// to slog.Default.
func New(host Host, cfg Config, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	m := &Manager{host: host, cfg: cfg.normalize(), log: log}
	m.revert.host = host
	return m
}

// Config returns the normalized configuration in effect.
func (m *Manager) Config() Config { return m.cfg }

// Active reports whether the region is currently grown or overridden.
func (m *Manager) Active() bool { return m.active }

// HandleText decides whether text needs a taller region and applies
// the override. It is a silent no-op in the excluded mode, in unsafe
// contexts, and for the second and later messages of a scheduling tick.
func (m *Manager) HandleText(text string) {
	if m.inExcludedMode || m.host.UnsafeContext() {
		return
	}
	if m.processedTick {
		// A second interception point saw the same tick's output; let
		// the region come down on the next safe opportunity instead of
		// re-deciding.
		m.scheduleDeactivate()
		return
	}
	m.processedTick = true
	m.deactivatePending = false

	snap := m.captureViews()

	// Measurement always starts from the un-overridden baseline so
	// successive messages cannot compound growth.
	m.restoreOptions()
	if !m.active {
		m.baseline = m.host.RegionHeight()
	}

	rows, override := Measure(text, m.host.Columns(), m.host.EchoSpace(), m.host.RegionHeight())
	fits := rows <= m.baseline && !override
	if (fits || rows > m.cfg.MaxLines) && !m.cfg.ClearAlways {
		// Either the message already fits, or it is too large to ever
		// reasonably show.
		m.deactivate(snap)
		return
	}

	m.active = true
	m.revert.arm(m.cfg.Duration, m.cfg.RemoveOnKey, m.Deactivate, m.scheduleDeactivate)
	if override {
		m.disableOptions()
	}
	height := rows
	if height > m.cfg.MaxLines {
		// Reachable only with ClearAlways; the cap is absolute.
		height = m.baseline
	}
	if height < m.baseline {
		height = m.baseline
	}
	m.host.SetRegionHeight(height)
	m.restoreViews(snap)
	m.host.Redraw()
}

// HandleEcho routes an echoed payload into HandleText and returns the
// concatenated text for the host to display unchanged. Payloads with
// no displayable text are passed through untouched.
func (m *Manager) HandleEcho(chunks []Chunk) string {
	if len(chunks) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Text)
	}
	text := b.String()
	if text == "" {
		return text
	}
	m.HandleText(text)
	return text
}

// Deactivate reverts the region to its baseline height, restores the
// cosmetic options and window views, and cancels any outstanding
// reversion trigger. No-op unless active; safe to call repeatedly.
func (m *Manager) Deactivate() {
	if !m.active {
		return
	}
	m.deactivate(m.captureViews())
}

func (m *Manager) deactivate(snap []savedView) {
	if !m.active {
		return
	}
	m.active = false
	for _, t := range m.host.Tabs() {
		t.SetRegionHeight(m.baseline)
	}
	if m.cfg.ClearAlways {
		m.host.ClearRegion()
	}
	m.restoreOptions()
	m.revert.cancel()
	m.host.SetRegionHeight(m.baseline)
	m.restoreViews(snap)
	m.host.Redraw()
}

// scheduleDeactivate requests a Deactivate on the next safe scheduling
// opportunity. Repeated requests coalesce; mode entry and fresh
// activations cancel the pending request by clearing the flag.
func (m *Manager) scheduleDeactivate() {
	if m.deactivatePending {
		return
	}
	m.deactivatePending = true
	m.host.Defer(func() {
		if !m.deactivatePending {
			return
		}
		m.deactivatePending = false
		m.Deactivate()
	})
}

// ModeEntered marks the start of the excluded mode (e.g. command-line
// entry). The manager goes dormant until ModeLeft.
func (m *Manager) ModeEntered() {
	m.inExcludedMode = true
	m.deactivatePending = false
	m.Deactivate()
}

// ModeLeft marks the end of the excluded mode. The next message
// re-decides from scratch.
func (m *Manager) ModeLeft() {
	m.inExcludedMode = false
	m.Deactivate()
}

// Resized reports a terminal resize. Sizing assumptions are stale, so
// the region reverts and the next message re-decides.
func (m *Manager) Resized() {
	m.Deactivate()
}

// Tick marks a scheduling tick boundary: the per-tick duplicate
// suppression resets, and a grown region with no reversion trigger
// armed gets a deferred one so it cannot stay grown indefinitely.
func (m *Manager) Tick() {
	m.processedTick = false
	if m.active && !m.deactivatePending && m.revert.idle() {
		m.scheduleDeactivate()
	}
}

// disableOptions saves and turns off the cosmetic options so the last
// screen row is fully available to the message.
func (m *Manager) disableOptions() {
	if m.saved == nil {
		m.saved = make(map[Option]bool, len(cosmeticOptions))
	}
	for _, o := range cosmeticOptions {
		if _, ok := m.saved[o]; ok {
			continue
		}
		m.saved[o] = m.host.Option(o)
		m.host.SetOption(o, false)
	}
}

// restoreOptions puts back exactly the option values saved by
// disableOptions. Idempotent.
func (m *Manager) restoreOptions() {
	for o, v := range m.saved {
		m.host.SetOption(o, v)
	}
	m.saved = nil
}
