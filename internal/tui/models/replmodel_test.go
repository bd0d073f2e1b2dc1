package models

import (
	"testing"

	"github.com/CharaChorder/charachorder-go"
)

func TestStoreSession(t *testing.T) {
	m := NewReplModel(charachorder.Device{Port: "/dev/ttyACM0"})

	s := &charachorder.Session{}
	if !m.StoreSession(s) {
		t.Fatal("StoreSession refused a session on a live model")
	}
	if m.Session() != s {
		t.Error("stored session not returned by Session()")
	}
}

func TestStoreSessionAfterCleanup(t *testing.T) {
	// A session opened in the background can lose the race against the
	// user quitting. The model must refuse it so the opener can close it.
	m := NewReplModel(charachorder.Device{Port: "/dev/ttyACM0"})
	m.Cleanup()

	if m.StoreSession(&charachorder.Session{}) {
		t.Error("StoreSession accepted a session after Cleanup")
	}
	if m.Session() != nil {
		t.Error("refused session must not be stored")
	}
}
