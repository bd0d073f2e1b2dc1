package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/CharaChorder/charachorder-go/internal/tui/styles"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryKind classifies a transcript line.
type EntryKind int

const (
	EntrySent EntryKind = iota
	EntryReceived
	EntryError
)

// Entry is one line of the command transcript.
type Entry struct {
	Timestamp time.Time
	Kind      EntryKind
	Text      string
}

// Transcript is a scrolling log of commands and replies backed by a
// bubbles viewport.
type Transcript struct {
	viewport viewport.Model
	entries  []Entry
}

func NewTranscript(width, height int) *Transcript {
	return &Transcript{
		viewport: viewport.New(width, height),
	}
}

func (t *Transcript) SetSize(width, height int) {
	t.viewport.Width = width
	t.viewport.Height = height
	t.refresh()
}

func (t *Transcript) Width() int {
	return t.viewport.Width
}

func (t *Transcript) Add(entry Entry) {
	t.entries = append(t.entries, entry)
	t.refresh()
}

func (t *Transcript) Clear() {
	t.entries = nil
	t.viewport.SetContent("")
}

func (t *Transcript) refresh() {
	lines := make([]string, len(t.entries))
	for i, e := range t.entries {
		lines[i] = formatEntry(e)
	}
	t.viewport.SetContent(strings.Join(lines, "\n"))
	t.viewport.GotoBottom()
}

func formatEntry(e Entry) string {
	timestamp := styles.TimestampStyle.Render(fmt.Sprintf("[%s]", e.Timestamp.Format("15:04:05.000")))

	var indicator string
	switch e.Kind {
	case EntrySent:
		indicator = styles.SentStyle.Render("↗ TX")
	case EntryReceived:
		indicator = styles.ReceivedStyle.Render("↙ RX")
	case EntryError:
		indicator = styles.ErrorStyle.Render("✗ ERR")
	}

	return fmt.Sprintf("%s %s %s", timestamp, indicator, e.Text)
}

func (t *Transcript) Update(msg tea.Msg) tea.Cmd {
	// Only window resizes reach the viewport; key bindings are handled
	// by the model.
	switch msg.(type) {
	case tea.WindowSizeMsg:
		var cmd tea.Cmd
		t.viewport, cmd = t.viewport.Update(msg)
		return cmd
	default:
		return nil
	}
}

func (t *Transcript) View() string {
	return t.viewport.View()
}
