// Package charachorder is a Go client for the CharaChorder Serial API,
// covering device discovery and the full command set: identity queries,
// chordmap management, parameters, keymaps and device resets.
//
// # Basic Usage
//
// Enumerate connected devices and query one:
//
//	devices, err := charachorder.ListDevices()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if len(devices) == 0 {
//	    log.Fatal("no CharaChorder devices found")
//	}
//
//	err = charachorder.WithSession(devices[0], func(s *charachorder.Session) error {
//	    id, err := s.GetID(context.Background())
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(id)
//	    return nil
//	})
//
// Sessions can also be managed manually:
//
//	s, err := devices[0].Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	version, err := s.GetVersion(ctx)
//	count, err := s.GetChordmapCount(ctx)
//
// # Device Discovery
//
// ListDevices scans the host serial registry and identifies CharaChorder
// hardware by its USB vendor and product ids; units sitting in their UF2
// bootloader are reported with BootloaderMode set. FindDevices narrows
// the scan to one model:
//
//	lites, err := charachorder.FindDevices(charachorder.ProductLite)
//
// # Chordmaps
//
// Chords and their output phrases travel as hex strings on the wire;
// Chord and ChordPhrase convert between that representation and text:
//
//	chord, err := charachorder.NewChord("abc")
//	phrase, err := s.GetChordmap(ctx, chord)
//	fmt.Println(phrase.Text())
//
// # Parameters and Keymaps
//
// Parameters are addressed by typed codes and persisted with Commit:
//
//	err = s.SetParameter(ctx, charachorder.ParamLEDBrightness, 30)
//	err = s.Commit(ctx)
//
//	action, err := s.GetKeymap(ctx, charachorder.KeymapPrimary, 12)
//
// # Error Handling
//
// Failures surface as wrapped sentinel errors; use errors.Is:
//
//	if errors.Is(err, charachorder.ErrUnknownCommand) {
//	    // firmware does not support this command
//	}
//
// # Commands
//
// Each session method is one synchronous round trip over the serial
// link. Execute is the raw escape hatch for commands without a typed
// wrapper:
//
//	fields, err := s.Execute(ctx, "CML", "C0")
//
// # Platform Support
//
// Discovery and the serial transport are Linux-only: ports are opened
// through termios and device metadata is read from sysfs.
package charachorder
