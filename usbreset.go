package charachorder

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// ResetUSB performs a USB-level reset of the device. This can recover a
// unit whose firmware has stopped answering the Serial API without
// physically unplugging it.
//
// Requirements:
// - usbreset utility must be installed (from usbutils package)
// - Requires appropriate permissions (typically root/sudo)
//
// The device re-enumerates after the reset, so the port path held by the
// handle may no longer be valid.
func ResetUSB(d Device) error {
	if d.BusNumber == "" || d.DeviceNumber == "" {
		return ErrUSBInfoNotAvailable
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetNotAvailable
	}

	// usbreset expects zero-padded 3-digit bus and device numbers.
	usbPath, err := formatUSBPath(d.BusNumber, d.DeviceNumber)
	if err != nil {
		return err
	}

	cmd := exec.Command("usbreset", usbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	// Wait for the device to re-enumerate; USB devices typically take
	// 1-2 seconds to become available again.
	time.Sleep(2 * time.Second)

	return nil
}

// ResetUSBBySerial resets a device identified by its USB serial number.
// Useful when port paths changed after a previous reset.
func ResetUSBBySerial(serialNumber string) error {
	devices, err := ListDevices()
	if err != nil {
		return err
	}

	for _, d := range devices {
		if d.SerialNumber == serialNumber {
			return ResetUSB(d)
		}
	}

	return fmt.Errorf("%w: serial %s", ErrDeviceNotFound, serialNumber)
}

// formatUSBPath builds the bus/device argument usbreset expects.
func formatUSBPath(bus, device string) (string, error) {
	busNum, err := strconv.Atoi(bus)
	if err != nil {
		return "", fmt.Errorf("%w: bad bus number %q", ErrUSBInfoNotAvailable, bus)
	}
	devNum, err := strconv.Atoi(device)
	if err != nil {
		return "", fmt.Errorf("%w: bad device number %q", ErrUSBInfoNotAvailable, device)
	}
	return fmt.Sprintf("%03d/%03d", busNum, devNum), nil
}

// IsUSBResetAvailable checks if the usbreset utility is available in PATH.
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}
