/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CharaChorder/charachorder-go"
	"github.com/CharaChorder/charachorder-go/internal/tui/components"
	"github.com/CharaChorder/charachorder-go/internal/tui/keys"
	"github.com/CharaChorder/charachorder-go/internal/tui/models"
	"github.com/CharaChorder/charachorder-go/internal/tui/styles"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive Serial API prompt",
	Long: `Open an interactive terminal session against a CharaChorder device.

Commands are typed exactly as the Serial API expects them and each reply
is shown in a scrolling transcript with timestamps. Useful for exploring
the API or debugging device behavior.

Key bindings follow vim conventions: press i to enter insert mode and
type a command, Enter to send it, Escape to return to normal mode, and
q to quit. Use the arrow keys for command history.

Example commands to try:
  ID
  VERSION
  CML C0
  VAR B1 145
  RAM`,
	Run: func(cmd *cobra.Command, args []string) {
		device, err := pickDevice()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := runReplTUI(device); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// replUI is the Bubble Tea model for the repl command
type replUI struct {
	*models.ReplModel
	transcript *components.Transcript
	statusBar  *components.StatusBar
	input      *components.Input
	help       help.Model
	keys       keys.ReplKeys
}

func runReplTUI(device charachorder.Device) error {
	model := models.NewReplModel(device)
	m := replUI{
		ReplModel:  model,
		transcript: components.NewTranscript(0, 0),
		statusBar: components.NewStatusBar(components.DeviceInfo{
			Name:         device.Product.String(),
			Port:         device.Port,
			SerialNumber: device.SerialNumber,
		}),
		input: components.NewInput("Type a Serial API command and press Enter..."),
		help:  help.New(),
		keys:  keys.NewReplKeys(),
	}

	p := tea.NewProgram(&m, tea.WithAltScreen())

	// Open the session in the background so the UI comes up immediately.
	go func() {
		session, err := device.Open(sessionOptions()...)
		if err != nil {
			p.Send(models.ConnectionStatusMsg{Connected: false, Error: err})
			return
		}
		if !m.StoreSession(session) {
			// The user quit before the port opened.
			session.Close()
			return
		}

		firmware := ""
		ctx, cancel := context.WithTimeout(m.Context(), 5*time.Second)
		if version, err := session.GetVersion(ctx); err == nil {
			firmware = version
		}
		cancel()

		p.Send(models.ConnectionStatusMsg{Connected: true, Firmware: firmware})
	}()

	_, err := p.Run()
	m.Cleanup()
	return err
}

func (m *replUI) Init() tea.Cmd {
	return nil
}

func (m *replUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := 3
		statusBarHeight := 1
		verticalMarginHeight := inputHeight + statusBarHeight

		m.transcript.SetSize(msg.Width-2, msg.Height-verticalMarginHeight-2)
		m.input.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.SetReady(true)

	case models.ConnectionStatusMsg:
		m.SetConnected(msg.Connected)
		if msg.Error != nil {
			m.SetError(msg.Error)
			m.statusBar.SetDisconnected(msg.Error)
			m.transcript.Add(components.Entry{
				Timestamp: time.Now(),
				Kind:      components.EntryError,
				Text:      msg.Error.Error(),
			})
		} else {
			m.statusBar.SetConnected()
			if msg.Firmware != "" {
				m.statusBar.SetFirmware(msg.Firmware)
			}
			m.input.Focus()
		}

	case models.CommandResultMsg:
		for _, entry := range models.SessionEntry(msg) {
			m.transcript.Add(entry)
		}

	case tea.KeyMsg:
		if m.IsInInsertMode() {
			switch {
			case key.Matches(msg, m.keys.Escape):
				m.SetInputMode(models.InputModeNormal)
				m.input.Blur()
				return m, tea.Batch(cmds...)
			case key.Matches(msg, m.keys.Enter):
				if cmd := m.sendCommand(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				return m, tea.Batch(cmds...)
			case key.Matches(msg, m.keys.Up):
				m.input.NavigateHistoryUp()
				return m, tea.Batch(cmds...)
			case key.Matches(msg, m.keys.Down):
				m.input.NavigateHistoryDown()
				return m, tea.Batch(cmds...)
			}
		} else {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.Cleanup()
				return m, tea.Quit

			case key.Matches(msg, m.keys.InsertMode):
				m.SetInputMode(models.InputModeInsert)
				m.input.Focus()
				return m, tea.Batch(cmds...)

			case key.Matches(msg, m.keys.Clear):
				m.transcript.Clear()

			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
			}
		}
	}

	var cmd tea.Cmd
	if m.IsInInsertMode() {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, m.transcript.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

// sendCommand runs the typed command against the session off the UI loop.
func (m *replUI) sendCommand() tea.Cmd {
	command := strings.TrimSpace(m.input.Value())
	session := m.Session()
	if command == "" || session == nil {
		return nil
	}

	m.input.AddToHistory(command)
	m.input.SetValue("")

	sent := time.Now()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.Context(), 5*time.Second)
		defer cancel()

		fields, err := session.Execute(ctx, strings.Fields(command)...)
		return models.CommandResultMsg{
			Timestamp: sent,
			Command:   command,
			Fields:    fields,
			Err:       err,
		}
	}
}

func (m *replUI) View() string {
	var content string
	if m.IsReady() {
		content = styles.ContentBorderStyle.Render(m.transcript.View())
	} else {
		content = "Initializing..."
	}

	input := m.input.View(m.IsInInsertMode())
	timestamp := time.Now().Format("15:04:05")
	statusBar := m.statusBar.View(m.InputMode().String(), timestamp)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		input,
		statusBar,
	)
}
