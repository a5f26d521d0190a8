// Package keymap maps key presses to editor commands by context.
package keymap

// Binding associates a key with a command in a context. Context ""
// or "global" applies everywhere.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands, preferring the active context
// over global bindings.
type Registry struct {
	byContext map[string]map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byContext: make(map[string]map[string]string)}
}

// RegisterBinding adds a binding, replacing any existing binding for
// the same key and context.
func (r *Registry) RegisterBinding(b Binding) {
	ctx := b.Context
	if ctx == "" {
		ctx = "global"
	}
	m, ok := r.byContext[ctx]
	if !ok {
		m = make(map[string]string)
		r.byContext[ctx] = m
	}
	m[b.Key] = b.Command
}

// Lookup resolves key in context, falling back to global bindings.
// The second return is false when no binding matches.
func (r *Registry) Lookup(key, context string) (string, bool) {
	if m, ok := r.byContext[context]; ok {
		if cmd, ok := m[key]; ok {
			return cmd, true
		}
	}
	if m, ok := r.byContext["global"]; ok {
		if cmd, ok := m[key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// Bindings returns all bindings for a context, for help display.
func (r *Registry) Bindings(context string) []Binding {
	m := r.byContext[context]
	out := make([]Binding, 0, len(m))
	for k, cmd := range m {
		out = append(out, Binding{Key: k, Command: cmd, Context: context})
	}
	return out
}
