package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: "quit", Context: "global"},

		// Normal mode
		{Key: "q", Command: "quit", Context: "normal"},
		{Key: ":", Command: "command-mode", Context: "normal"},
		{Key: "j", Command: "cursor-down", Context: "normal"},
		{Key: "down", Command: "cursor-down", Context: "normal"},
		{Key: "k", Command: "cursor-up", Context: "normal"},
		{Key: "up", Command: "cursor-up", Context: "normal"},
		{Key: "h", Command: "cursor-left", Context: "normal"},
		{Key: "left", Command: "cursor-left", Context: "normal"},
		{Key: "l", Command: "cursor-right", Context: "normal"},
		{Key: "right", Command: "cursor-right", Context: "normal"},
		{Key: "ctrl+d", Command: "half-page-down", Context: "normal"},
		{Key: "ctrl+u", Command: "half-page-up", Context: "normal"},
		{Key: "g", Command: "cursor-top", Context: "normal"},
		{Key: "G", Command: "cursor-bottom", Context: "normal"},
		{Key: "w", Command: "next-window", Context: "normal"},
		{Key: "tab", Command: "next-tab", Context: "normal"},
		{Key: "shift+tab", Command: "prev-tab", Context: "normal"},
		{Key: "y", Command: "yank-message", Context: "normal"},
		{Key: "m", Command: "show-messages", Context: "normal"},

		// Command-line mode
		{Key: "esc", Command: "cancel", Context: "cmdline"},
		{Key: "enter", Command: "execute", Context: "cmdline"},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
