package keymap

import "testing"

func TestLookupContextOverGlobal(t *testing.T) {
	r := NewRegistry()
	r.RegisterBinding(Binding{Key: "q", Command: "quit", Context: "global"})
	r.RegisterBinding(Binding{Key: "q", Command: "close-pane", Context: "normal"})

	if cmd, ok := r.Lookup("q", "normal"); !ok || cmd != "close-pane" {
		t.Errorf("Lookup(q, normal) = %q, want context binding close-pane", cmd)
	}
	if cmd, ok := r.Lookup("q", "cmdline"); !ok || cmd != "quit" {
		t.Errorf("Lookup(q, cmdline) = %q, want global fallback quit", cmd)
	}
}

func TestLookupUnbound(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("z", "normal"); ok {
		t.Error("unbound key should not resolve")
	}
}

func TestDefaultsRegister(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if cmd, ok := r.Lookup(":", "normal"); !ok || cmd != "command-mode" {
		t.Errorf("Lookup(:, normal) = %q, want command-mode", cmd)
	}
	if cmd, ok := r.Lookup("esc", "cmdline"); !ok || cmd != "cancel" {
		t.Errorf("Lookup(esc, cmdline) = %q, want cancel", cmd)
	}
	if cmd, ok := r.Lookup("ctrl+c", "cmdline"); !ok || cmd != "quit" {
		t.Errorf("Lookup(ctrl+c, cmdline) = %q, want global quit", cmd)
	}
}
