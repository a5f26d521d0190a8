package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/echoarea/internal/msg"
)

// execute runs an ex-style command line entered in cmdline mode. It is
// called after the mode has been left, so resulting messages go
// through the height manager normally.
func (m *Model) execute(line string) tea.Cmd {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "q", "quit":
		m.quitting = true
		return tea.Quit

	case "echo":
		return msg.Print(arg)

	case "messages", "mes":
		return m.showMessages()

	case "set":
		return m.setOption(arg)

	case "split", "sp":
		m.activeTab().Split(m.cfg.Editor.TabWidth)
		m.layout()
		return nil

	case "tabnew":
		m.tabs = append(m.tabs, NewTab(NewWindow(m.activeWindow().Buffer(), m.cfg.Editor.TabWidth)))
		m.curTab = len(m.tabs) - 1
		m.layout()
		return nil

	default:
		return msg.Print(fmt.Sprintf("E492: not an editor command: %s", name))
	}
}

// setOption handles :set for the settings the height manager touches.
func (m *Model) setOption(arg string) tea.Cmd {
	switch {
	case arg == "ruler":
		m.ruler = true
	case arg == "noruler":
		m.ruler = false
	case arg == "showcmd":
		m.showcmd = true
	case arg == "noshowcmd":
		m.showcmd = false
	case strings.HasPrefix(arg, "cmdheight="):
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "cmdheight="))
		if err != nil || n < 1 {
			return msg.Print("E521: number required after =: " + arg)
		}
		m.activeTab().SetRegionHeight(n)
		m.layout()
	case arg == "":
		return msg.Print(m.optionSummary())
	default:
		return msg.Print("E518: unknown option: " + arg)
	}
	return nil
}

func (m *Model) optionSummary() string {
	onOff := func(on bool, name string) string {
		if on {
			return "  " + name
		}
		return "no" + name
	}
	return strings.Join([]string{
		onOff(m.ruler, "ruler"),
		onOff(m.showcmd, "showcmd"),
		fmt.Sprintf("  cmdheight=%d", m.activeTab().RegionHeight()),
	}, "\n")
}

// showMessages prints the message log, the multi-line output that most
// often needs a grown region.
func (m *Model) showMessages() tea.Cmd {
	entries := m.hist.All()
	if len(entries) == 0 {
		return msg.Print("no messages")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Repeats > 1 {
			lines = append(lines, fmt.Sprintf("%s (x%d)", e.Text, e.Repeats))
			continue
		}
		lines = append(lines, e.Text)
	}
	return msg.Print(strings.Join(lines, "\n"))
}

// yankLastMessage copies the newest logged message to the system
// clipboard.
func (m *Model) yankLastMessage() tea.Cmd {
	last, ok := m.hist.Last()
	if !ok {
		return msg.Print("no message to yank")
	}
	if err := clipboard.WriteAll(last.Text); err != nil {
		m.log.Warn("clipboard write", "error", err)
		return msg.Print("E850: clipboard unavailable")
	}
	return msg.Print("yanked message to clipboard")
}
