package domain

import "time"

// ConsoleLimit caps the console; the oldest entry goes first.
const ConsoleLimit = 100

type EntryKind string

const (
	EntryInfo    EntryKind = "info"
	EntrySuccess EntryKind = "success"
	EntryWarning EntryKind = "warning"
	EntryError   EntryKind = "error"
)

type ConsoleEntry struct {
	Kind    EntryKind
	Message string
	At      time.Time
}

type Console struct {
	entries []ConsoleEntry
}

func (c *Console) Push(entry ConsoleEntry) {
	c.entries = append(c.entries, entry)
	if over := len(c.entries) - ConsoleLimit; over > 0 {
		c.entries = append(c.entries[:0:0], c.entries[over:]...)
	}
}

func (c *Console) Entries() []ConsoleEntry {
	out := make([]ConsoleEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Console) Clear() {
	c.entries = nil
}

func (c *Console) Len() int {
	return len(c.entries)
}
