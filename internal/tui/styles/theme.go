package styles

import (
	"github.com/CharaChorder/charachorder-go/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Transcript area
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Command input
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Surface2).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red)

	// Transcript entry fragments
	TimestampStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)

	SentStyle = lipgloss.NewStyle().
			Foreground(colors.Peach).
			Bold(true)

	ReceivedStyle = lipgloss.NewStyle().
			Foreground(colors.Sky).
			Bold(true)
)
