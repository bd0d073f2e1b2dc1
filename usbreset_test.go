package charachorder

import (
	"errors"
	"testing"
)

func TestFormatUSBPath(t *testing.T) {
	tests := []struct {
		bus      string
		device   string
		expected string
	}{
		{"5", "7", "005/007"},
		{"1", "2", "001/002"},
		{"123", "456", "123/456"},
		{"1", "10", "001/010"},
	}

	for _, tt := range tests {
		formatted, err := formatUSBPath(tt.bus, tt.device)
		if err != nil {
			t.Errorf("formatUSBPath(%q, %q) returned error: %v", tt.bus, tt.device, err)
			continue
		}
		if formatted != tt.expected {
			t.Errorf("formatUSBPath(%q, %q) = %q, expected %q",
				tt.bus, tt.device, formatted, tt.expected)
		}
	}
}

func TestFormatUSBPathBadInput(t *testing.T) {
	if _, err := formatUSBPath("abc", "7"); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable for bad bus number, got %v", err)
	}
	if _, err := formatUSBPath("5", ""); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable for bad device number, got %v", err)
	}
}

func TestResetUSBWithoutUSBInfo(t *testing.T) {
	d := Device{Port: "/dev/ttyACM0", Product: ProductOne}
	if err := ResetUSB(d); !errors.Is(err, ErrUSBInfoNotAvailable) {
		t.Errorf("expected ErrUSBInfoNotAvailable, got %v", err)
	}
}

func TestResetUSBBySerialNotFound(t *testing.T) {
	fakeHost(t)

	err := ResetUSBBySerial("NONEXISTENT_SERIAL")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("expected ErrDeviceNotFound for nonexistent serial, got %v", err)
	}
}

func TestIsUSBResetAvailable(t *testing.T) {
	// Cannot assume usbreset is installed, only that this does not panic.
	available := IsUSBResetAvailable()
	t.Logf("usbreset available: %v", available)
}
