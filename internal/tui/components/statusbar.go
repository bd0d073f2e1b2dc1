package components

import (
	"fmt"

	"github.com/CharaChorder/charachorder-go/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

// DeviceInfo is the identity shown in the status bar.
type DeviceInfo struct {
	Name         string // e.g. "CharaChorder X S2"
	Port         string
	SerialNumber string
	Firmware     string // filled in once VERSION has been queried
}

// StatusBar renders a single-line status bar with mode, device identity
// and connection state.
type StatusBar struct {
	device DeviceInfo
	status string
	err    error
	width  int
}

func NewStatusBar(device DeviceInfo) *StatusBar {
	return &StatusBar{
		device: device,
		status: "Connecting...",
	}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetConnected() {
	sb.status = "Connected"
	sb.err = nil
}

func (sb *StatusBar) SetDisconnected(err error) {
	sb.status = "Disconnected"
	sb.err = err
}

func (sb *StatusBar) SetFirmware(version string) {
	sb.device.Firmware = version
}

func (sb *StatusBar) View(inputMode string, timestamp string) string {
	width := sb.width
	if width <= 0 {
		width = 80
	}

	// Mode indicator, nvim style.
	var modeStyle lipgloss.Style
	if inputMode == "INSERT" {
		modeStyle = lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Green).
			Bold(true).
			Padding(0, 1)
	} else {
		modeStyle = lipgloss.NewStyle().
			Foreground(colors.Base).
			Background(colors.Blue).
			Bold(true).
			Padding(0, 1)
	}
	mode := modeStyle.Render(inputMode)

	portStyle := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1)
	port := portStyle.Render(sb.device.Port)

	var connStyle lipgloss.Style
	var connIndicator string
	switch {
	case sb.err != nil:
		connStyle = lipgloss.NewStyle().Foreground(colors.Red)
		connIndicator = "✗"
	case sb.status == "Connected":
		connStyle = lipgloss.NewStyle().Foreground(colors.Green)
		connIndicator = "●"
	default:
		connStyle = lipgloss.NewStyle().Foreground(colors.Yellow)
		connIndicator = "○"
	}
	connection := connStyle.Render(connIndicator)

	identity := sb.device.Name
	if sb.device.Firmware != "" {
		identity = fmt.Sprintf("%s fw %s", identity, sb.device.Firmware)
	}
	identityStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1)
	deviceDetails := identityStyle.Render("⌨ " + identity)

	timeStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1)
	clock := timeStyle.Render(timestamp)

	dividerStyle := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1)
	divider := dividerStyle.Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, connection, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, deviceDetails, divider, clock)

	spacerWidth := width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	barStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(width)

	return barStyle.Render(lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide))
}
