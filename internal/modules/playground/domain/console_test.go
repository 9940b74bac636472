package domain

import (
	"strconv"
	"testing"
)

func TestConsoleKeepsMostRecentHundred(t *testing.T) {
	t.Parallel()
	c := &Console{}
	for i := 0; i < 150; i++ {
		c.Push(ConsoleEntry{Kind: EntryInfo, Message: strconv.Itoa(i)})
	}
	entries := c.Entries()
	if len(entries) != ConsoleLimit {
		t.Fatalf("expected %d entries, got %d", ConsoleLimit, len(entries))
	}
	for i, e := range entries {
		if e.Message != strconv.Itoa(50+i) {
			t.Fatalf("entry %d: expected %d, got %s", i, 50+i, e.Message)
		}
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("clear must empty the console")
	}
}

func TestConsoleEntriesIsACopy(t *testing.T) {
	t.Parallel()
	c := &Console{}
	c.Push(ConsoleEntry{Message: "a"})
	got := c.Entries()
	got[0].Message = "changed"
	if c.Entries()[0].Message != "a" {
		t.Fatalf("entries must not alias internal state")
	}
}
