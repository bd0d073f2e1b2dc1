package charachorder

import "testing"

func TestParameterNamesRoundTrip(t *testing.T) {
	for _, name := range ParameterNames() {
		p, err := ParameterByName(name)
		if err != nil {
			t.Errorf("ParameterByName(%q) failed: %v", name, err)
			continue
		}
		if p.String() != name {
			t.Errorf("Parameter(0x%02X).String() = %q, want %q", uint8(p), p.String(), name)
		}
	}
}

func TestParameterByNameUnknown(t *testing.T) {
	if _, err := ParameterByName("warp_drive"); err == nil {
		t.Error("expected error for unknown parameter name")
	}
}

func TestParameterStringUnknownCode(t *testing.T) {
	if got := Parameter(0xFE).String(); got != "parameter(0xFE)" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseKeymapCode(t *testing.T) {
	tests := []struct {
		input   string
		want    KeymapCode
		wantErr bool
	}{
		{"primary", KeymapPrimary, false},
		{"secondary", KeymapSecondary, false},
		{"tertiary", KeymapTertiary, false},
		{"A1", KeymapPrimary, false},
		{"a3", KeymapTertiary, false},
		{"quaternary", 0, true},
	}

	for _, tt := range tests {
		code, err := ParseKeymapCode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKeymapCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && code != tt.want {
			t.Errorf("ParseKeymapCode(%q) = %v, want %v", tt.input, code, tt.want)
		}
	}
}

func TestKeymapCodeString(t *testing.T) {
	if KeymapPrimary.String() != "primary" {
		t.Errorf("KeymapPrimary.String() = %q", KeymapPrimary.String())
	}
	if KeymapCode(0x10).String() != "keymap(0x10)" {
		t.Errorf("unknown code String() = %q", KeymapCode(0x10).String())
	}
}
