package editor

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/echoarea/internal/config"
	"github.com/marcus/echoarea/internal/heightmgr"
	"github.com/marcus/echoarea/internal/history"
	"github.com/marcus/echoarea/internal/keymap"
	"github.com/marcus/echoarea/internal/msg"
	"github.com/marcus/echoarea/internal/styles"
)

// Mode is the editor's interaction mode.
type Mode int

const (
	// ModeNormal is the default mode.
	ModeNormal Mode = iota
	// ModeCmdline is active command-line entry; the height manager
	// stays dormant while it lasts.
	ModeCmdline
)

// tickInterval is the scheduling tick the height manager's per-tick
// duplicate suppression is keyed to.
const tickInterval = 250 * time.Millisecond

// Model is the root Bubble Tea model for the editor.
type Model struct {
	cfg *config.Config
	km  *keymap.Registry
	log *slog.Logger

	width, height int
	ready         bool

	tabs   []*Tab
	curTab int

	mode    Mode
	cmdline textinput.Model
	pending string // keys shown by the showcmd indicator

	// The two cosmetic display options the height manager may
	// temporarily disable.
	ruler   bool
	showcmd bool

	echoText string
	echoErr  bool

	hist *history.Log
	mgr  *heightmgr.Manager
	host *Host

	quitting bool
}

// New builds the editor around a buffer.
func New(cfg *config.Config, buf *Buffer, log *slog.Logger) *Model {
	if log == nil {
		log = slog.Default()
	}

	styles.ApplyTheme(cfg.UI.Theme)

	km := keymap.NewRegistry()
	keymap.RegisterDefaults(km)

	ti := textinput.New()
	ti.Prompt = ":"
	ti.CharLimit = 256

	m := &Model{
		cfg:     cfg,
		km:      km,
		log:     log,
		tabs:    []*Tab{NewTab(NewWindow(buf, cfg.Editor.TabWidth))},
		cmdline: ti,
		ruler:   cfg.UI.Ruler,
		showcmd: cfg.UI.ShowCmd,
		hist:    history.New(cfg.Editor.HistorySize),
	}
	m.host = &Host{m: m}
	m.mgr = heightmgr.New(m.host, heightmgr.Config{
		MaxLines:    cfg.Region.MaxLines,
		Duration:    cfg.Region.Duration,
		RemoveOnKey: cfg.Region.RemoveOnKey,
		ClearAlways: cfg.Region.ClearAlways,
	}, log)
	return m
}

// Host returns the editor's host adapter, for wiring the running
// program's Send.
func (m *Model) Host() *Host { return m.host }

// Manager returns the height manager.
func (m *Model) Manager() *heightmgr.Manager { return m.mgr }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return msg.TickMsg{}
	})
}

func (m *Model) activeTab() *Tab {
	return m.tabs[m.curTab]
}

func (m *Model) activeWindow() *Window {
	return m.activeTab().Active()
}

// layout resizes every window of the current tab to the space left
// over by the tab bar, the status lines, and the echo region.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	tab := m.activeTab()
	rows := m.height - tab.RegionHeight()
	if len(m.tabs) > 1 {
		rows-- // tab bar
	}
	rows -= len(tab.windows) // one status line per window
	if rows < len(tab.windows) {
		rows = len(tab.windows)
	}
	per := rows / len(tab.windows)
	extra := rows % len(tab.windows)
	for i, w := range tab.windows {
		h := per
		if i < extra {
			h++
		}
		w.Resize(m.width, h)
	}
}

// showMessage routes text through the height manager and displays it.
func (m *Model) showMessage(text string, isErr bool) {
	if text == "" {
		return
	}
	m.mgr.HandleText(text)
	m.echoText = text
	m.echoErr = isErr
	m.hist.Add(text)
}

// showEcho routes a chunked payload through the height manager and
// displays whatever it passes through.
func (m *Model) showEcho(chunks []heightmgr.Chunk) {
	text := m.mgr.HandleEcho(chunks)
	if text == "" {
		return
	}
	m.echoText = text
	m.echoErr = false
	m.hist.Add(text)
}

// enterCmdline switches to command-line entry, the mode the height
// manager must stay dormant in.
func (m *Model) enterCmdline() {
	m.mode = ModeCmdline
	m.pending = ""
	m.echoText = ""
	m.cmdline.SetValue("")
	m.cmdline.Focus()
	m.mgr.ModeEntered()
}

// leaveCmdline returns to normal mode.
func (m *Model) leaveCmdline() {
	m.mode = ModeNormal
	m.cmdline.Blur()
	m.mgr.ModeLeft()
}
