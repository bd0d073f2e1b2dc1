package charachorder

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/CharaChorder/charachorder-go/internal/serialport"
)

// conn is the subset of serialport.Port a session drives. Tests inject a
// scripted implementation.
type conn interface {
	ReadContext(ctx context.Context, buf []byte) (int, error)
	WriteContext(ctx context.Context, data []byte) (int, error)
	FlushInput() error
	Close() error
}

// Session owns one open serial connection to one enumerated device.
// Commands are synchronous round trips: the Serial API answers each
// request with a single space-separated reply line that echoes the
// command before the result fields.
//
// A session is safe for concurrent use; commands are serialized over the
// wire. After Close the session is invalid and command methods return
// ErrSessionClosed.
type Session struct {
	device Device

	mu     sync.Mutex
	port   conn
	closed bool
}

// Open opens a serial session to the device. The port is configured the
// way the Serial API expects (115200 8N1, one second reply timeout)
// unless overridden by options.
func (d Device) Open(opts ...serialport.Option) (*Session, error) {
	port, err := serialport.Open(d.Port, opts...)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", d.Port, err)
	}
	return &Session{device: d, port: port}, nil
}

// WithSession opens a session, runs fn, and closes the session again
// across both normal and erroring exits.
func WithSession(d Device, fn func(*Session) error, opts ...serialport.Option) error {
	s, err := d.Open(opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// Device returns the handle this session was opened from.
func (s *Session) Device() Device {
	return s.device
}

// Close releases the serial connection. Closing an already closed
// session returns ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	return s.port.Close()
}

// Execute performs one Serial API round trip: args are joined with
// spaces, sent CRLF-terminated, and the reply line is split into fields.
// The echoed command prefix is stripped; the remaining fields are
// returned. A reply opening with "UKN" yields ErrUnknownCommand.
func (s *Session) Execute(ctx context.Context, args ...string) ([]string, error) {
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	command := strings.Join(args, " ")

	// Drop any stale output (debug chatter, a half-read previous reply)
	// so the next line we read answers this command.
	if err := s.port.FlushInput(); err != nil {
		return nil, err
	}

	if _, err := s.port.WriteContext(ctx, []byte(command+"\r\n")); err != nil {
		return nil, fmt.Errorf("sending %q: %w", command, err)
	}

	line, err := s.readLine(ctx)
	if err != nil {
		return nil, fmt.Errorf("awaiting reply to %q: %w", command, err)
	}

	fields := strings.Split(line, " ")
	if fields[0] == "UKN" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if len(fields) < len(args) {
		return nil, fmt.Errorf("%w: %q", ErrMalformedReply, line)
	}
	return fields[len(args):], nil
}

// readLine reads until LF. The port's VTIME timeout makes a silent
// device surface as a zero-byte read, which we report as ErrNoResponse.
func (s *Session) readLine(ctx context.Context) (string, error) {
	var line bytes.Buffer
	buf := make([]byte, 256)

	for {
		n, err := s.port.ReadContext(ctx, buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", ErrNoResponse
		}

		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			line.Write(buf[:i])
			break
		}
		line.Write(buf[:n])
	}

	return strings.TrimRight(line.String(), "\r"), nil
}
