package charachorder

import "errors"

// Predefined error types for robust error handling
var (
	// Enumeration errors
	ErrUnknownProduct = errors.New("USB product id is not a known CharaChorder device")
	ErrUnknownVendor  = errors.New("USB vendor id is not a known CharaChorder vendor")
	ErrDeviceNotFound = errors.New("no CharaChorder device found")

	// Session errors
	ErrSessionClosed  = errors.New("session is closed")
	ErrEmptyCommand   = errors.New("empty serial command")
	ErrUnknownCommand = errors.New("device does not recognize the command")
	ErrNoResponse     = errors.New("no response from device")
	ErrMalformedReply = errors.New("malformed reply from device")
	ErrCommandFailed  = errors.New("device reported command failure")

	// Chordmap and keymap errors
	ErrChordNotFound    = errors.New("no chordmap for chord")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrActionOutOfRange = errors.New("action id out of range")
	ErrInvalidHex       = errors.New("value is not a hex string")
	ErrChordTooLong     = errors.New("chord has more than 12 actions")

	// USB-related errors
	ErrUSBInfoNotAvailable  = errors.New("USB device information not available")
	ErrUSBResetNotAvailable = errors.New("usbreset utility not available")
)
