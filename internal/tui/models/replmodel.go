package models

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/CharaChorder/charachorder-go"
	"github.com/CharaChorder/charachorder-go/internal/tui/components"
)

// InputMode represents the current input mode (vim-like).
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeInsert
)

func (m InputMode) String() string {
	switch m {
	case InputModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

// ConnectionStatusMsg reports the outcome of opening the session.
type ConnectionStatusMsg struct {
	Connected bool
	Firmware  string
	Error     error
}

// CommandResultMsg carries one finished Serial API round trip.
type CommandResultMsg struct {
	Timestamp time.Time
	Command   string
	Fields    []string
	Err       error
}

// ReplModel holds the state shared by the interactive prompt: the open
// session, the input mode, and lifecycle plumbing for the background
// goroutines.
type ReplModel struct {
	device charachorder.Device

	mu        sync.RWMutex
	session   *charachorder.Session
	connected bool
	err       error
	ready     bool
	inputMode InputMode

	ctx    context.Context
	cancel context.CancelFunc
}

func NewReplModel(device charachorder.Device) *ReplModel {
	ctx, cancel := context.WithCancel(context.Background())
	return &ReplModel{
		device: device,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (m *ReplModel) Device() charachorder.Device {
	return m.device
}

func (m *ReplModel) Session() *charachorder.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// StoreSession adopts a freshly opened session. It reports false when
// the model has already been cleaned up, in which case the caller still
// owns the session and must close it.
func (m *ReplModel) StoreSession(s *charachorder.Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctx.Err() != nil {
		return false
	}
	m.session = s
	return true
}

func (m *ReplModel) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

func (m *ReplModel) SetConnected(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = connected
}

func (m *ReplModel) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *ReplModel) IsReady() bool {
	return m.ready
}

func (m *ReplModel) SetReady(ready bool) {
	m.ready = ready
}

func (m *ReplModel) InputMode() InputMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputMode
}

func (m *ReplModel) SetInputMode(mode InputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputMode = mode
}

func (m *ReplModel) IsInInsertMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inputMode == InputModeInsert
}

func (m *ReplModel) Context() context.Context {
	return m.ctx
}

// Cleanup stops background goroutines and closes the session.
func (m *ReplModel) Cleanup() {
	m.cancel()

	m.mu.Lock()
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
	m.mu.Unlock()
}

// SessionEntry formats a command result as transcript entries.
func SessionEntry(msg CommandResultMsg) []components.Entry {
	entries := []components.Entry{{
		Timestamp: msg.Timestamp,
		Kind:      components.EntrySent,
		Text:      msg.Command,
	}}

	if msg.Err != nil {
		entries = append(entries, components.Entry{
			Timestamp: time.Now(),
			Kind:      components.EntryError,
			Text:      msg.Err.Error(),
		})
		return entries
	}

	reply := "(ok)"
	if len(msg.Fields) > 0 {
		reply = strings.Join(msg.Fields, " ")
	}
	entries = append(entries, components.Entry{
		Timestamp: time.Now(),
		Kind:      components.EntryReceived,
		Text:      reply,
	})
	return entries
}
