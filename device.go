package charachorder

import "fmt"

// Product identifies a CharaChorder device model.
type Product int

const (
	ProductOne Product = iota
	ProductLite
	ProductX
	ProductEngine
)

func (p Product) String() string {
	switch p {
	case ProductOne:
		return "One"
	case ProductLite:
		return "Lite"
	case ProductX:
		return "X"
	case ProductEngine:
		return "Engine"
	default:
		return "Unknown"
	}
}

// ParseProduct parses a product name as used on the command line.
func ParseProduct(name string) (Product, error) {
	switch name {
	case "one", "One":
		return ProductOne, nil
	case "lite", "Lite":
		return ProductLite, nil
	case "x", "X":
		return ProductX, nil
	case "engine", "Engine":
		return ProductEngine, nil
	}
	return 0, fmt.Errorf("unknown product %q (valid: one, lite, x, engine)", name)
}

// Chipset identifies the microcontroller family a device is built on.
type Chipset int

const (
	ChipsetM0 Chipset = iota // SAMD21, the original One and Lite
	ChipsetS2                // ESP32-S2, current hardware
)

func (c Chipset) String() string {
	switch c {
	case ChipsetM0:
		return "M0"
	case ChipsetS2:
		return "S2"
	default:
		return "Unknown"
	}
}

// Vendor identifies the USB vendor a device enumerates under.
type Vendor int

const (
	VendorAdafruit Vendor = iota
	VendorEspressif
)

func (v Vendor) String() string {
	switch v {
	case VendorAdafruit:
		return "Adafruit"
	case VendorEspressif:
		return "Espressif"
	default:
		return "Unknown"
	}
}

// Device is an enumerated handle to one physical CharaChorder unit. It
// identifies the serial port the device is attached to together with the
// identity decoded from its USB descriptors. Device values are immutable;
// open a Session to talk to the hardware.
type Device struct {
	Port           string // serial device path, e.g. /dev/ttyACM0
	Product        Product
	Chipset        Chipset
	Vendor         Vendor
	BootloaderMode bool // device is in its UF2 bootloader, not running firmware

	// Raw USB metadata from sysfs
	VendorID     uint16
	ProductID    uint16
	SerialNumber string
	Manufacturer string
	BusNumber    string
	DeviceNumber string
}

func (d Device) String() string {
	return fmt.Sprintf("CharaChorder %s %s (%s)", d.Product, d.Chipset, d.Port)
}

// productIdentity records what a USB product id tells us about a device.
type productIdentity struct {
	product    Product
	bootloader bool
}

// knownProducts maps CharaChorder USB product ids to device models.
var knownProducts = map[uint16]productIdentity{
	0x800F: {ProductOne, false},    // One (M0)
	0x801C: {ProductLite, false},   // Lite (M0)
	0x812E: {ProductLite, false},   // Lite (S2)
	0x812F: {ProductLite, true},    // Lite (S2) UF2 bootloader
	0x818B: {ProductX, false},      // X (S2)
	0x818C: {ProductX, true},       // X (S2) UF2 bootloader
	0x818D: {ProductX, false},      // X (S2) host
	0x818E: {ProductX, true},       // X (S2) host UF2 bootloader
	0x8189: {ProductEngine, false}, // Engine (S2)
	0x818A: {ProductEngine, true},  // Engine (S2) UF2 bootloader
}

// vendorIdentity records what a USB vendor id tells us about a device.
type vendorIdentity struct {
	vendor  Vendor
	chipset Chipset
}

// knownVendors maps USB vendor ids CharaChorder ships under to chipsets.
var knownVendors = map[uint16]vendorIdentity{
	0x239A: {VendorAdafruit, ChipsetM0},
	0x303A: {VendorEspressif, ChipsetS2},
}

// classify decodes a VID/PID pair into a device identity. Returns
// ErrUnknownVendor or ErrUnknownProduct for hardware that is not a
// CharaChorder device.
func classify(vid, pid uint16) (Vendor, Chipset, Product, bool, error) {
	v, ok := knownVendors[vid]
	if !ok {
		return 0, 0, 0, false, fmt.Errorf("%w: %04x", ErrUnknownVendor, vid)
	}
	p, ok := knownProducts[pid]
	if !ok {
		return 0, 0, 0, false, fmt.Errorf("%w: %04x", ErrUnknownProduct, pid)
	}
	return v.vendor, v.chipset, p.product, p.bootloader, nil
}

// keymapSize returns the number of keymap slots a product exposes, or 0
// when the layout is not fixed (the Engine is board-defined).
func keymapSize(p Product) int {
	switch p {
	case ProductOne:
		return 90
	case ProductLite, ProductX:
		return 67
	default:
		return 0
	}
}
