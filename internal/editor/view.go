package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/echoarea/internal/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready || m.quitting {
		return ""
	}

	var b strings.Builder
	if len(m.tabs) > 1 {
		b.WriteString(m.renderTabBar())
		b.WriteString("\n")
	}

	tab := m.activeTab()
	for i, w := range tab.windows {
		b.WriteString(w.Render())
		b.WriteString("\n")
		b.WriteString(m.renderStatusLine(w, i == tab.current))
		b.WriteString("\n")
	}

	b.WriteString(m.renderEchoArea(tab.RegionHeight()))
	return b.String()
}

func (m *Model) renderTabBar() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Active().Buffer().Name())
		if i == m.curTab {
			parts[i] = styles.TabActive.Render(label)
			continue
		}
		parts[i] = styles.TabInactive.Render(label)
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return ansi.Truncate(bar, m.width, "")
}

func (m *Model) renderStatusLine(w *Window, active bool) string {
	style := styles.StatusLine
	if active {
		style = styles.StatusLineActive
	}

	name := " " + w.Buffer().Name() + " "

	var right string
	if m.showcmd {
		right += styles.ShowCmd.Render(fmt.Sprintf("%*s ", showCmdWidth-1, m.pending))
	}
	if m.ruler {
		line, col := w.Cursor()
		right += styles.Ruler.Render(fmt.Sprintf("%*s ", rulerWidth-1, fmt.Sprintf("%d:%d", line, col)))
	}

	gap := m.width - lipgloss.Width(name) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return ansi.Truncate(style.Render(name+strings.Repeat(" ", gap))+right, m.width, "")
}

// renderEchoArea renders the transient message region at its current
// height. In cmdline mode the last row shows the command prompt.
func (m *Model) renderEchoArea(height int) string {
	rows := make([]string, height)

	if m.echoText != "" {
		style := styles.EchoArea
		if m.echoErr {
			style = styles.EchoError
		}
		wrapped := strings.Split(ansi.Hardwrap(m.echoText, m.width, false), "\n")
		for i := 0; i < height && i < len(wrapped); i++ {
			rows[i] = style.Render(wrapped[i])
		}
	}

	if m.mode == ModeCmdline {
		rows[height-1] = styles.CmdLine.Render(ansi.Truncate(m.cmdline.View(), m.width, ""))
	}

	return strings.Join(rows, "\n")
}
