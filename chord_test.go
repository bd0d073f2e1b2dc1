package charachorder

import (
	"errors"
	"strings"
	"testing"
)

func TestNewChordSingleKey(t *testing.T) {
	chord, err := NewChord("a")
	if err != nil {
		t.Fatalf("NewChord failed: %v", err)
	}

	// 'a' (0x61) in the highest slot: bits 110-119 of the 128-bit value.
	want := "00184000000000000000000000000000"
	if chord.Raw() != want {
		t.Errorf("Raw() = %s, want %s", chord.Raw(), want)
	}
	if chord.Text() != "a" {
		t.Errorf("Text() = %q, want \"a\"", chord.Text())
	}
}

func TestChordRoundTrip(t *testing.T) {
	tests := []string{
		"a",
		"th",
		"abc",
		"qwerty",
		"abcdefghijkl", // full 12 slots
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			chord, err := NewChord(text)
			if err != nil {
				t.Fatalf("NewChord(%q) failed: %v", text, err)
			}

			raw := chord.Raw()
			if len(raw) != 32 {
				t.Fatalf("Raw() has length %d, want 32", len(raw))
			}

			parsed, err := ParseChord(raw)
			if err != nil {
				t.Fatalf("ParseChord(%s) failed: %v", raw, err)
			}
			if parsed.Text() != text {
				t.Errorf("round trip: got %q, want %q", parsed.Text(), text)
			}
		})
	}
}

func TestNewChordRejectsBadInput(t *testing.T) {
	if _, err := NewChord(""); err == nil {
		t.Error("expected error for empty chord")
	}
	if _, err := NewChord("abcdefghijklm"); !errors.Is(err, ErrChordTooLong) {
		t.Errorf("expected ErrChordTooLong for 13 keys, got %v", err)
	}
}

func TestParseChordRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"too short", "ABCD"},
		{"too long", strings.Repeat("0", 33)},
		{"not hex", strings.Repeat("G", 32)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseChord(tt.raw); !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseChord(%q): expected ErrInvalidHex, got %v", tt.raw, err)
			}
		})
	}
}

func TestChordPhraseEncode(t *testing.T) {
	phrase := NewChordPhrase("Hello")
	if phrase.Raw() != "48656C6C6F" {
		t.Errorf("Raw() = %s, want 48656C6C6F", phrase.Raw())
	}
	if phrase.Text() != "Hello" {
		t.Errorf("Text() = %q, want \"Hello\"", phrase.Text())
	}
}

func TestChordPhraseWideRune(t *testing.T) {
	// Characters above 0xFF encode as a two-byte action code.
	phrase := NewChordPhrase("Ā")
	if phrase.Raw() != "0100" {
		t.Errorf("Raw() = %s, want 0100", phrase.Raw())
	}
}

func TestChordPhraseDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain ascii", "616263", "abc"},
		{"line break", "610128", "a\n"},          // 0x0128 = 296
		{"tab", "61012B62", "a\tb"},              // 0x012B = 299
		{"backspace pops", "6162012A", "a"},      // 0x012A = 298
		{"space right", "61022062", "a b"},       // 0x0220 = 544
		{"unprintable code", "7F", "<127>"},      // bare byte above ascii
		{"unknown action", "0100", "<256>"},      // combined two-byte code
		{"backspace on empty", "012A61", "a"},    // pop with nothing to pop
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phrase, err := ParseChordPhrase(tt.raw)
			if err != nil {
				t.Fatalf("ParseChordPhrase(%s) failed: %v", tt.raw, err)
			}
			if got := phrase.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseChordPhraseRejectsBadInput(t *testing.T) {
	tests := []string{"", "6", "61626", "XY"}

	for _, raw := range tests {
		if _, err := ParseChordPhrase(raw); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseChordPhrase(%q): expected ErrInvalidHex, got %v", raw, err)
		}
	}
}

func TestParseHex(t *testing.T) {
	h, err := ParseHex("00e4")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if h != "00E4" {
		t.Errorf("ParseHex normalized to %s, want 00E4", h)
	}

	if _, err := ParseHex(""); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("empty: expected ErrInvalidHex, got %v", err)
	}
	if _, err := ParseHex("zz"); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("non-hex: expected ErrInvalidHex, got %v", err)
	}
}
