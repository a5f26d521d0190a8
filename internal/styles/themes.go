package styles

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the color set a theme assigns to the editor chrome.
type Palette struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`

	BgStatusLine string `json:"bgStatusLine"`
	BgStatusActv string `json:"bgStatusActive"`
}

// Theme is a named palette.
type Theme struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Colors      Palette `json:"colors"`
}

var (
	// DefaultTheme is the dark theme applied at startup.
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: Palette{
			Success:       "#10B981",
			Warning:       "#F59E0B",
			Error:         "#EF4444",
			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			BgStatusLine:  "#1F2937",
			BgStatusActv:  "#374151",
		},
	}

	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: Palette{
			Success:       "#047857",
			Warning:       "#B45309",
			Error:         "#B91C1C",
			TextPrimary:   "#111827",
			TextSecondary: "#4B5563",
			TextMuted:     "#9CA3AF",
			BgStatusLine:  "#E5E7EB",
			BgStatusActv:  "#D1D5DB",
		},
	}
)

var (
	themeMu       sync.Mutex
	currentTheme  = "default"
	themeRegistry = map[string]Theme{
		"default": DefaultTheme,
		"light":   LightTheme,
	}
)

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	themeMu.Lock()
	defer themeMu.Unlock()
	if t, ok := themeRegistry[name]; ok {
		return t
	}
	return DefaultTheme
}

// CurrentTheme returns the name of the theme last applied.
func CurrentTheme() string {
	themeMu.Lock()
	defer themeMu.Unlock()
	return currentTheme
}

// ThemeNames lists registered theme names, sorted.
func ThemeNames() []string {
	themeMu.Lock()
	defer themeMu.Unlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterTheme adds or replaces a theme in the registry.
func RegisterTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	themeRegistry[theme.Name] = theme
}

// ApplyTheme applies a theme by name, updating all style variables.
func ApplyTheme(name string) {
	theme := GetTheme(name)
	applyColors(theme.Colors)
	themeMu.Lock()
	currentTheme = theme.Name
	themeMu.Unlock()
}

func applyColors(c Palette) {
	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	BgStatusLine = lipgloss.Color(c.BgStatusLine)
	BgStatusActv = lipgloss.Color(c.BgStatusActv)

	rebuildStyles()
}

// rebuildStyles recreates all lipgloss styles with current colors.
func rebuildStyles() {
	StatusLine = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgStatusLine)

	StatusLineActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgStatusActv).
		Bold(true)

	Ruler = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgStatusLine)

	ShowCmd = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgStatusLine)

	EchoArea = lipgloss.NewStyle().
		Foreground(TextPrimary)

	EchoError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	CmdLine = lipgloss.NewStyle().
		Foreground(TextPrimary)

	TabActive = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgStatusActv).
		Bold(true).
		Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgStatusLine).
		Padding(0, 1)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)
}
