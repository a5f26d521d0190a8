package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBuffer(path)
	if err != nil {
		t.Fatal(err)
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
	if b.Line(1) != "two" {
		t.Errorf("Line(1) = %q, want two", b.Line(1))
	}
	if b.Name() != "a.txt" {
		t.Errorf("Name() = %q, want a.txt", b.Name())
	}
}

func TestLoadBufferMissingFile(t *testing.T) {
	b, err := LoadBuffer(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("missing file should yield an empty buffer, got %v", err)
	}
	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Error("missing file should yield a single empty line")
	}
}

func TestBufferReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadBuffer(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("new\nlines\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := b.Reload(); err != nil {
		t.Fatal(err)
	}
	if b.LineCount() != 2 || b.Line(0) != "new" {
		t.Errorf("Reload() left %v", b.Lines)
	}
}

func TestScratchName(t *testing.T) {
	if got := Scratch("x").Name(); got != "[scratch]" {
		t.Errorf("Name() = %q, want [scratch]", got)
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := Scratch("only")
	if b.Line(5) != "" {
		t.Error("out-of-range Line() should be empty")
	}
	if b.Line(-1) != "" {
		t.Error("negative Line() should be empty")
	}
}
