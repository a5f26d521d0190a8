package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/echoarea/internal/msg"
)

// Update implements tea.Model.
func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKey(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.mgr.Resized()
		m.layout()
		return m, nil

	case msg.TickMsg:
		m.mgr.Tick()
		return m, tickCmd()

	case msg.PrintMsg:
		m.showMessage(message.Text, false)
		return m, nil

	case msg.EchoMsg:
		m.showEcho(message.Chunks)
		return m, nil

	case msg.CallbackMsg:
		if message.Fn != nil {
			message.Fn()
		}
		return m, nil

	case msg.FileChangedMsg:
		return m, m.handleFileChanged(message)
	}

	return m, nil
}

// handleFileChanged reloads the buffer and surfaces a notification.
// Watcher deliveries are a fast-path context where the height manager
// must not move view state, so the note is shown with the unsafe guard
// raised.
func (m *Model) handleFileChanged(message msg.FileChangedMsg) tea.Cmd {
	win := m.activeWindow()
	if win == nil {
		return nil
	}
	buf := win.Buffer()
	if buf.Path != message.Path {
		return nil
	}
	if err := buf.Reload(); err != nil {
		m.log.Warn("reload buffer", "path", message.Path, "error", err)
		m.showMessage("E211: file reload failed: "+err.Error(), true)
		return nil
	}
	for _, t := range m.tabs {
		for _, w := range t.windows {
			if w.Buffer() == buf {
				w.Reload()
			}
		}
	}

	m.host.unsafe = true
	m.showMessage(`"`+buf.Name()+`" reloaded from disk`, false)
	m.host.unsafe = false
	return nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending one-shot key watch consumes the event's arrival but
	// not the key itself.
	m.host.fireKeyWatch()

	if m.mode == ModeCmdline {
		return m.handleCmdlineKey(key)
	}
	return m.handleNormalKey(key)
}

func (m *Model) handleCmdlineKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.km.Lookup(key.String(), "cmdline")
	if ok {
		switch cmd {
		case "quit":
			m.quitting = true
			return m, tea.Quit
		case "cancel":
			m.leaveCmdline()
			return m, nil
		case "execute":
			line := m.cmdline.Value()
			m.leaveCmdline()
			return m, m.execute(line)
		}
	}

	var c tea.Cmd
	m.cmdline, c = m.cmdline.Update(key)
	return m, c
}

func (m *Model) handleNormalKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := key.String()
	cmd, ok := m.km.Lookup(k, "normal")
	if !ok {
		m.pending = ""
		return m, nil
	}
	m.pending = k

	win := m.activeWindow()
	switch cmd {
	case "quit":
		m.quitting = true
		return m, tea.Quit
	case "command-mode":
		m.enterCmdline()
	case "cursor-down":
		win.MoveCursor(1, 0)
	case "cursor-up":
		win.MoveCursor(-1, 0)
	case "cursor-left":
		win.MoveCursor(0, -1)
	case "cursor-right":
		win.MoveCursor(0, 1)
	case "half-page-down":
		win.HalfPage(1)
	case "half-page-up":
		win.HalfPage(-1)
	case "cursor-top":
		win.JumpTo(0)
	case "cursor-bottom":
		win.JumpTo(win.Buffer().LineCount() - 1)
	case "next-window":
		m.activeTab().CycleWindow()
	case "next-tab":
		m.curTab = (m.curTab + 1) % len(m.tabs)
		m.layout()
	case "prev-tab":
		m.curTab = (m.curTab - 1 + len(m.tabs)) % len(m.tabs)
		m.layout()
	case "yank-message":
		return m, m.yankLastMessage()
	case "show-messages":
		return m, m.showMessages()
	}
	return m, nil
}
