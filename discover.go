package charachorder

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Filesystem roots, overridable in tests.
var (
	devRoot  = "/dev"
	sysfsTTY = "/sys/class/tty"
)

// Serial device names worth probing. CharaChorder hardware enumerates as
// USB CDC/ACM; ttyUSB is included for serial adapters in front of an Engine.
var portPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyACM\d+$`),
	regexp.MustCompile(`^ttyUSB\d+$`),
}

// ListDevices scans the host's serial port registry and returns every
// recognized CharaChorder device, sorted by port path. Ports that carry
// no USB metadata or belong to other hardware are skipped. An empty
// result with a nil error means nothing is connected.
func ListDevices() ([]Device, error) {
	entries, err := os.ReadDir(devRoot)
	if err != nil {
		return nil, err
	}

	var devices []Device
	for _, entry := range entries {
		name := entry.Name()
		if !matchesPortPattern(name) {
			continue
		}

		usb, err := readUSBInfo(name)
		if err != nil {
			continue
		}

		vendor, chipset, product, bootloader, err := classify(usb.vendorID, usb.productID)
		if err != nil {
			continue
		}

		devices = append(devices, Device{
			Port:           filepath.Join(devRoot, name),
			Product:        product,
			Chipset:        chipset,
			Vendor:         vendor,
			BootloaderMode: bootloader,
			VendorID:       usb.vendorID,
			ProductID:      usb.productID,
			SerialNumber:   usb.serial,
			Manufacturer:   usb.manufacturer,
			BusNumber:      usb.busNumber,
			DeviceNumber:   usb.deviceNumber,
		})
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Port < devices[j].Port
	})
	return devices, nil
}

// FindDevices returns connected devices of one product type.
func FindDevices(product Product) ([]Device, error) {
	devices, err := ListDevices()
	if err != nil {
		return nil, err
	}

	var filtered []Device
	for _, d := range devices {
		if d.Product == product {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

func matchesPortPattern(name string) bool {
	for _, pattern := range portPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// usbInfo is the USB metadata sysfs exposes for a tty device.
type usbInfo struct {
	vendorID     uint16
	productID    uint16
	serial       string
	manufacturer string
	busNumber    string
	deviceNumber string
}

// readUSBInfo resolves the /sys/class/tty/<name>/device symlink into the
// devices tree and walks upward to the USB device directory (the first
// ancestor carrying an idVendor file), then reads its descriptors. The
// symlink must be resolved before walking: a lexical ".." on the class
// side never reaches the USB device node.
func readUSBInfo(name string) (usbInfo, error) {
	dir, err := filepath.EvalSymlinks(filepath.Join(sysfsTTY, name, "device"))
	if err != nil {
		return usbInfo{}, ErrUSBInfoNotAvailable
	}

	// A CDC/ACM tty sits one or two interface levels below the USB
	// device node.
	for i := 0; i < 3; i++ {
		if _, err := os.Stat(filepath.Join(dir, "idVendor")); err == nil {
			return parseUSBDir(dir)
		}
		dir = filepath.Dir(dir)
	}
	return usbInfo{}, ErrUSBInfoNotAvailable
}

func parseUSBDir(dir string) (usbInfo, error) {
	vid, err := readHexAttr(dir, "idVendor")
	if err != nil {
		return usbInfo{}, err
	}
	pid, err := readHexAttr(dir, "idProduct")
	if err != nil {
		return usbInfo{}, err
	}

	return usbInfo{
		vendorID:     vid,
		productID:    pid,
		serial:       readAttr(dir, "serial"),
		manufacturer: readAttr(dir, "manufacturer"),
		busNumber:    readAttr(dir, "busnum"),
		deviceNumber: readAttr(dir, "devnum"),
	}, nil
}

func readAttr(dir, attr string) string {
	data, err := os.ReadFile(filepath.Join(dir, attr))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readHexAttr(dir, attr string) (uint16, error) {
	raw := readAttr(dir, attr)
	if raw == "" {
		return 0, ErrUSBInfoNotAvailable
	}
	v, err := strconv.ParseUint(raw, 16, 16)
	if err != nil {
		return 0, ErrUSBInfoNotAvailable
	}
	return uint16(v), nil
}
