// Package history keeps an in-memory log of messages shown in the echo
// area, backing the :messages command and yank-last-message.
package history

import (
	"time"

	"github.com/cespare/xxhash/v2"
)

// Entry is one logged message. Consecutive duplicates collapse into a
// single entry with a repeat count.
type Entry struct {
	Text    string
	Repeats int
	Last    time.Time
}

// Log is a fixed-capacity message log. Not safe for concurrent use;
// the editor appends from its update loop only.
type Log struct {
	capacity int
	entries  []Entry
	lastHash uint64
	now      func() time.Time
}

// New returns a log holding at most capacity entries. Capacities below
// one fall back to one.
func New(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity, now: time.Now}
}

// Add appends text to the log. Empty text is ignored. If text repeats
// the previous message, the existing entry's count bumps instead of a
// new entry being added.
func (l *Log) Add(text string) {
	if text == "" {
		return
	}
	h := xxhash.Sum64String(text)
	if n := len(l.entries); n > 0 && h == l.lastHash && l.entries[n-1].Text == text {
		l.entries[n-1].Repeats++
		l.entries[n-1].Last = l.now()
		return
	}
	l.lastHash = h
	l.entries = append(l.entries, Entry{Text: text, Repeats: 1, Last: l.now()})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Last returns the most recent entry and whether one exists.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// All returns the logged entries, oldest first. The returned slice is
// the log's own backing store; callers must not mutate it.
func (l *Log) All() []Entry {
	return l.entries
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.entries)
}
