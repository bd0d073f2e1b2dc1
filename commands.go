package charachorder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Typed wrappers around the Serial API command set. Each method issues
// one command and parses the reply. Status replies use "0" for success.

// GetID returns the device identity string (company, model, chipset).
func (s *Session) GetID(ctx context.Context) (string, error) {
	fields, err := s.Execute(ctx, "ID")
	if err != nil {
		return "", err
	}
	return strings.Join(fields, " "), nil
}

// GetVersion returns the firmware version string.
func (s *Session) GetVersion(ctx context.Context) (string, error) {
	fields, err := s.Execute(ctx, "VERSION")
	if err != nil {
		return "", err
	}
	return firstField(fields)
}

// GetChordmapCount returns the number of chordmaps stored on the device.
func (s *Session) GetChordmapCount(ctx context.Context) (int, error) {
	fields, err := s.Execute(ctx, "CML", "C0")
	if err != nil {
		return 0, err
	}
	return intField(fields)
}

// GetChordmapAt returns the chord and its output phrase at a chordmap
// index. The index is validated against the device's chordmap count
// before touching the chordmap library.
func (s *Session) GetChordmapAt(ctx context.Context, index int) (Chord, ChordPhrase, error) {
	count, err := s.GetChordmapCount(ctx)
	if err != nil {
		return Chord{}, ChordPhrase{}, err
	}
	if index < 0 || index >= count {
		return Chord{}, ChordPhrase{}, fmt.Errorf("%w: chordmap index %d (count %d)", ErrIndexOutOfRange, index, count)
	}

	fields, err := s.Execute(ctx, "CML", "C1", strconv.Itoa(index))
	if err != nil {
		return Chord{}, ChordPhrase{}, err
	}
	if len(fields) < 3 {
		return Chord{}, ChordPhrase{}, fmt.Errorf("%w: want chord, phrase and status", ErrMalformedReply)
	}
	if fields[2] != "0" {
		return Chord{}, ChordPhrase{}, fmt.Errorf("%w: status %s", ErrCommandFailed, fields[2])
	}

	chord, err := ParseChord(fields[0])
	if err != nil {
		return Chord{}, ChordPhrase{}, err
	}
	phrase, err := ParseChordPhrase(fields[1])
	if err != nil {
		return Chord{}, ChordPhrase{}, err
	}
	return chord, phrase, nil
}

// GetChordmap returns the phrase mapped to a chord, or ErrChordNotFound
// when the chord has no mapping.
func (s *Session) GetChordmap(ctx context.Context, chord Chord) (ChordPhrase, error) {
	fields, err := s.Execute(ctx, "CML", "C2", chord.Raw())
	if err != nil {
		return ChordPhrase{}, err
	}
	raw, err := firstField(fields)
	if err != nil {
		return ChordPhrase{}, err
	}
	if raw == "0" {
		return ChordPhrase{}, fmt.Errorf("%w: %s", ErrChordNotFound, chord.Raw())
	}
	return ParseChordPhrase(raw)
}

// SetChordmap maps a chord to an output phrase.
func (s *Session) SetChordmap(ctx context.Context, chord Chord, phrase ChordPhrase) error {
	fields, err := s.Execute(ctx, "CML", "C3", chord.Raw(), phrase.Raw())
	if err != nil {
		return err
	}
	return statusField(fields)
}

// DeleteChordmap removes the mapping for a chord.
func (s *Session) DeleteChordmap(ctx context.Context, chord Chord) error {
	fields, err := s.Execute(ctx, "CML", "C4", chord.Raw())
	if err != nil {
		return err
	}
	return statusField(fields)
}

// Commit persists pending parameter changes to non-volatile storage.
func (s *Session) Commit(ctx context.Context) error {
	fields, err := s.Execute(ctx, "VAR", "B0")
	if err != nil {
		return err
	}
	return statusField(fields)
}

// GetParameter reads a device parameter.
func (s *Session) GetParameter(ctx context.Context, p Parameter) (int, error) {
	fields, err := s.Execute(ctx, "VAR", "B1", strconv.Itoa(int(p)))
	if err != nil {
		return 0, err
	}
	return intField(fields)
}

// SetParameter writes a device parameter. Call Commit to persist it.
func (s *Session) SetParameter(ctx context.Context, p Parameter, value int) error {
	fields, err := s.Execute(ctx, "VAR", "B2", strconv.Itoa(int(p)), strconv.Itoa(value))
	if err != nil {
		return err
	}
	return statusField(fields)
}

// GetKeymap reads the action id assigned to a keymap slot.
func (s *Session) GetKeymap(ctx context.Context, layer KeymapCode, index int) (int, error) {
	if err := s.checkKeymapIndex(index); err != nil {
		return 0, err
	}
	fields, err := s.Execute(ctx, "VAR", "B3", strconv.Itoa(int(layer)), strconv.Itoa(index))
	if err != nil {
		return 0, err
	}
	return intField(fields)
}

// SetKeymap assigns an action id to a keymap slot. Action ids live in
// the range 8-2047.
func (s *Session) SetKeymap(ctx context.Context, layer KeymapCode, index, actionID int) error {
	if err := s.checkKeymapIndex(index); err != nil {
		return err
	}
	if actionID < 8 || actionID > 2047 {
		return fmt.Errorf("%w: action id %d (must be 8-2047)", ErrActionOutOfRange, actionID)
	}
	fields, err := s.Execute(ctx, "VAR", "B4", strconv.Itoa(int(layer)), strconv.Itoa(index), strconv.Itoa(actionID))
	if err != nil {
		return err
	}
	return statusField(fields)
}

func (s *Session) checkKeymapIndex(index int) error {
	size := keymapSize(s.device.Product)
	if size == 0 {
		// Engine layouts are board-defined; let the firmware decide.
		return nil
	}
	if index < 0 || index >= size {
		return fmt.Errorf("%w: keymap index %d (must be 0-%d on the %s)", ErrIndexOutOfRange, index, size-1, s.device.Product)
	}
	return nil
}

// Restart reboots the device. The firmware resets before it can answer,
// so a silent reply is treated as success.
func (s *Session) Restart(ctx context.Context) error {
	return s.executeReset(ctx, "RST")
}

// FactoryReset restores factory defaults and reboots the device.
func (s *Session) FactoryReset(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "FACTORY")
}

// EnterBootloader reboots the device into its UF2 bootloader. The serial
// port re-enumerates under a different product id afterwards.
func (s *Session) EnterBootloader(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "BOOTLOADER")
}

// ResetParameters restores all parameters to defaults without a reboot.
func (s *Session) ResetParameters(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "PARAMS")
}

// ResetKeymaps restores all keymap layers to defaults.
func (s *Session) ResetKeymaps(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "KEYMAPS")
}

// AppendStarterChords adds the stock starter chordmaps.
func (s *Session) AppendStarterChords(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "STARTER")
}

// ClearChordmaps deletes every chordmap on the device.
func (s *Session) ClearChordmaps(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "CLEARCML")
}

// UpgradeChordmaps migrates stored chordmaps to the current format.
func (s *Session) UpgradeChordmaps(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "UPGRADECML")
}

// AppendFunctionalChords adds the stock functional chordmaps.
func (s *Session) AppendFunctionalChords(ctx context.Context) error {
	return s.executeReset(ctx, "RST", "FUNC")
}

func (s *Session) executeReset(ctx context.Context, args ...string) error {
	_, err := s.Execute(ctx, args...)
	if errors.Is(err, ErrNoResponse) {
		return nil
	}
	return err
}

// GetAvailableRAM returns the number of free bytes of device RAM.
func (s *Session) GetAvailableRAM(ctx context.Context) (int, error) {
	fields, err := s.Execute(ctx, "RAM")
	if err != nil {
		return 0, err
	}
	return intField(fields)
}

// Sim runs a firmware simulation subcommand (chord resolution dry runs)
// and returns the raw hex result.
func (s *Session) Sim(ctx context.Context, subcommand string, value Hex) (Hex, error) {
	fields, err := s.Execute(ctx, "SIM", subcommand, string(value))
	if err != nil {
		return "", err
	}
	raw, err := firstField(fields)
	if err != nil {
		return "", err
	}
	return ParseHex(raw)
}

func firstField(fields []string) (string, error) {
	if len(fields) == 0 || fields[0] == "" {
		return "", fmt.Errorf("%w: empty result", ErrMalformedReply)
	}
	return fields[0], nil
}

func intField(fields []string) (int, error) {
	raw, err := firstField(fields)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedReply, raw)
	}
	return v, nil
}

func statusField(fields []string) error {
	raw, err := firstField(fields)
	if err != nil {
		return err
	}
	if raw != "0" {
		return fmt.Errorf("%w: status %s", ErrCommandFailed, raw)
	}
	return nil
}
