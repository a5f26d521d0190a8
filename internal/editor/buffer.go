// Package editor implements the demo terminal editor that hosts the
// echo-area height manager: windows and tabs, a normal/command-line
// mode split, and the print/echo interception points.
package editor

import (
	"os"
	"path/filepath"
	"strings"
)

// Buffer holds the lines of one file.
type Buffer struct {
	Path  string
	Lines []string
}

// LoadBuffer reads a file into a buffer. A missing file yields an
// empty buffer bound to the path.
func LoadBuffer(path string) (*Buffer, error) {
	b := &Buffer{Path: path, Lines: []string{""}}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, err
	}
	b.Lines = splitLines(string(data))
	return b, nil
}

// Scratch returns an unnamed buffer with the given content.
func Scratch(content string) *Buffer {
	return &Buffer{Lines: splitLines(content)}
}

// Reload re-reads the buffer's file from disk.
func (b *Buffer) Reload() error {
	if b.Path == "" {
		return nil
	}
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return err
	}
	b.Lines = splitLines(string(data))
	return nil
}

// Name returns a short display name for the buffer.
func (b *Buffer) Name() string {
	if b.Path == "" {
		return "[scratch]"
	}
	return filepath.Base(b.Path)
}

// Line returns line i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.Lines) {
		return ""
	}
	return b.Lines[i]
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
