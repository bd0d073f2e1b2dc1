package charachorder

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex is a validated hexadecimal string as exchanged with the Serial API.
type Hex string

// ParseHex validates that s is a non-empty hex string.
func ParseHex(s string) (Hex, error) {
	if s == "" {
		return "", ErrInvalidHex
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	return Hex(strings.ToUpper(s)), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Chord is the pressed-key combination side of a chordmap: up to 12
// ten-bit action codes packed little-end-first into a 128-bit value,
// rendered on the wire as 32 hex digits.
type Chord struct {
	hi, lo uint64
}

const chordHexLen = 32

// ParseChord parses the wire representation of a chord.
func ParseChord(raw string) (Chord, error) {
	if len(raw) != chordHexLen {
		return Chord{}, fmt.Errorf("%w: chord must be %d hex digits, got %d", ErrInvalidHex, chordHexLen, len(raw))
	}
	hi, err := strconv.ParseUint(raw[:16], 16, 64)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	lo, err := strconv.ParseUint(raw[16:], 16, 64)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	return Chord{hi: hi, lo: lo}, nil
}

// NewChord packs a string of keys into a chord. The last key lands in
// the highest action slot, matching the firmware layout. Action codes
// are truncated to 10 bits.
func NewChord(text string) (Chord, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return Chord{}, fmt.Errorf("%w: empty chord", ErrInvalidHex)
	}
	if len(runes) > 12 {
		return Chord{}, ErrChordTooLong
	}

	var c Chord
	for p, r := range runes {
		shift := uint((12 - len(runes) + p) * 10)
		c.setAction(shift, uint16(r)&0x3FF)
	}
	return c, nil
}

func (c *Chord) setAction(shift uint, action uint16) {
	v := uint64(action)
	if shift >= 64 {
		c.hi |= v << (shift - 64)
		return
	}
	c.lo |= v << shift
	if shift+10 > 64 {
		c.hi |= v >> (64 - shift)
	}
}

func (c Chord) action(i int) uint16 {
	shift := uint(i * 10)
	if shift >= 64 {
		return uint16(c.hi>>(shift-64)) & 0x3FF
	}
	v := c.lo >> shift
	if shift+10 > 64 {
		v |= c.hi << (64 - shift)
	}
	return uint16(v) & 0x3FF
}

// Raw returns the 32-digit wire representation.
func (c Chord) Raw() string {
	return fmt.Sprintf("%016X%016X", c.hi, c.lo)
}

// Text decodes the chord into the keys it is made of, low slot first.
// Empty slots are skipped.
func (c Chord) Text() string {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		if a := c.action(i); a != 0 {
			b.WriteRune(rune(a))
		}
	}
	return b.String()
}

func (c Chord) String() string {
	return c.Text()
}

// ChordPhrase is the output side of a chordmap: a stream of action
// codes, two hex digits per byte. Codes below 32 are the high byte of a
// 10-bit action and combine with the following byte.
type ChordPhrase struct {
	raw string
}

// Action codes with dedicated output behavior.
const (
	actionLineBreak  = 296
	actionBackspace  = 298
	actionTab        = 299
	actionSpaceRight = 544
)

// ParseChordPhrase parses the wire representation of a phrase.
func ParseChordPhrase(raw string) (ChordPhrase, error) {
	if raw == "" || len(raw)%2 != 0 {
		return ChordPhrase{}, fmt.Errorf("%w: phrase must be an even number of hex digits", ErrInvalidHex)
	}
	h, err := ParseHex(raw)
	if err != nil {
		return ChordPhrase{}, err
	}
	return ChordPhrase{raw: string(h)}, nil
}

// NewChordPhrase encodes plain text as a phrase. Characters above 0xFF
// are written as a two-byte action code.
func NewChordPhrase(text string) ChordPhrase {
	var b strings.Builder
	for _, r := range text {
		action := uint32(r)
		if action > 0xFF {
			fmt.Fprintf(&b, "%02X", action>>8)
		}
		fmt.Fprintf(&b, "%02X", action&0xFF)
	}
	return ChordPhrase{raw: b.String()}
}

// Raw returns the wire representation.
func (p ChordPhrase) Raw() string {
	return p.raw
}

// Text decodes the phrase into the text the device would emit. Action
// codes without a printable form are rendered as "<code>".
func (p ChordPhrase) Text() string {
	codes := p.actionCodes()

	var out []string
	for _, code := range codes {
		switch {
		case code >= 32 && code <= 126:
			out = append(out, string(rune(code)))
		case code == actionLineBreak:
			out = append(out, "\n")
		case code == actionBackspace:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case code == actionTab:
			out = append(out, "\t")
		case code == actionSpaceRight:
			out = append(out, " ")
		default:
			out = append(out, fmt.Sprintf("<%d>", code))
		}
	}
	return strings.Join(out, "")
}

func (p ChordPhrase) String() string {
	return p.Text()
}

// actionCodes expands the byte stream into action codes, joining scan
// code prefix bytes (<32) with their low byte.
func (p ChordPhrase) actionCodes() []int {
	var codes []int
	for i := 0; i < len(p.raw); i += 2 {
		b, _ := strconv.ParseUint(p.raw[i:i+2], 16, 8)
		code := int(b)
		if code < 32 && i+3 < len(p.raw) {
			low, _ := strconv.ParseUint(p.raw[i+2:i+4], 16, 8)
			code = code<<8 | int(low)
			i += 2
		}
		codes = append(codes, code)
	}
	return codes
}
