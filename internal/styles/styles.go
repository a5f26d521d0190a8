package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	// Background colors
	BgStatusLine = lipgloss.Color("#1F2937")
	BgStatusActv = lipgloss.Color("#374151")
)

// Editor chrome styles
var (
	// StatusLine is the per-window status bar.
	StatusLine = lipgloss.NewStyle().
			Foreground(TextSecondary).
			Background(BgStatusLine)

	// StatusLineActive highlights the focused window's status bar.
	StatusLineActive = lipgloss.NewStyle().
				Foreground(TextPrimary).
				Background(BgStatusActv).
				Bold(true)

	// Ruler renders the line:col indicator.
	Ruler = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgStatusLine)

	// ShowCmd renders the pending-keys indicator.
	ShowCmd = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgStatusLine)

	// EchoArea renders transient messages.
	EchoArea = lipgloss.NewStyle().
			Foreground(TextPrimary)

	// EchoError renders error messages in the echo area.
	EchoError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// CmdLine renders the command-line prompt row.
	CmdLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	// TabActive and TabInactive render the tab list.
	TabActive = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgStatusActv).
			Bold(true).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(BgStatusLine).
			Padding(0, 1)

	// Muted is for secondary annotations like repeat counts.
	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
)
