package msg

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/echoarea/internal/heightmgr"
)

// PrintMsg carries literal text about to be shown in the echo area.
type PrintMsg struct {
	Text string
}

// EchoMsg carries a chunked echo payload (styled fragments).
type EchoMsg struct {
	Chunks []heightmgr.Chunk
}

// CallbackMsg delivers a host callback (timer fire, deferred func)
// onto the update loop so manager state only mutates there.
type CallbackMsg struct {
	Fn func()
}

// FileChangedMsg reports that the file backing a buffer changed on
// disk. Delivered from the watcher goroutine.
type FileChangedMsg struct {
	Path string
}

// TickMsg marks a scheduling tick boundary.
type TickMsg struct{}

// Print returns a command that routes text through the echo area.
func Print(text string) tea.Cmd {
	return func() tea.Msg {
		return PrintMsg{Text: text}
	}
}

// Echo returns a command that routes a chunked payload through the
// echo area.
func Echo(chunks []heightmgr.Chunk) tea.Cmd {
	return func() tea.Msg {
		return EchoMsg{Chunks: chunks}
	}
}
