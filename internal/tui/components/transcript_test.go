package components

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranscriptRetainsEntriesAcrossUpdate(t *testing.T) {
	tr := NewTranscript(80, 24)
	stamp := time.Date(2025, 8, 30, 15, 4, 5, 0, time.UTC)
	tr.Add(Entry{Timestamp: stamp, Kind: EntrySent, Text: "VERSION"})
	tr.Add(Entry{Timestamp: stamp, Kind: EntryReceived, Text: "1.1.2"})

	// Resizes flow through Update; the mutated viewport must stick to
	// the transcript rather than being thrown away.
	tr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := tr.View()
	for _, want := range []string{"VERSION", "1.1.2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lost entry %q after Update", want)
		}
	}
}

func TestTranscriptClear(t *testing.T) {
	tr := NewTranscript(80, 24)
	tr.Add(Entry{Timestamp: time.Now(), Kind: EntryError, Text: "no response from device"})
	tr.Clear()

	if strings.Contains(tr.View(), "no response") {
		t.Error("cleared transcript still renders old entries")
	}
}
