package charachorder

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// fakeHost builds /dev and /sys/class/tty trees in a temp dir and points
// the package-level roots at them for the duration of the test.
func fakeHost(t *testing.T) (dev, sys string) {
	t.Helper()

	root := t.TempDir()
	dev = filepath.Join(root, "dev")
	sys = filepath.Join(root, "sys")
	for _, dir := range []string{dev, sys} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	origDev, origSys := devRoot, sysfsTTY
	devRoot, sysfsTTY = dev, sys
	t.Cleanup(func() {
		devRoot, sysfsTTY = origDev, origSys
	})
	return dev, sys
}

func addFakePort(t *testing.T, dev, sys, name string, attrs map[string]string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dev, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	deviceDir := filepath.Join(sys, name, "device")
	if err := os.MkdirAll(deviceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for attr, value := range attrs {
		if err := os.WriteFile(filepath.Join(deviceDir, attr), []byte(value+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListDevices(t *testing.T) {
	dev, sys := fakeHost(t)

	addFakePort(t, dev, sys, "ttyACM0", map[string]string{
		"idVendor":     "303a",
		"idProduct":    "818b",
		"serial":       "CCX0042",
		"manufacturer": "CharaChorder",
		"busnum":       "1",
		"devnum":       "7",
	})
	addFakePort(t, dev, sys, "ttyACM1", map[string]string{
		"idVendor":  "239a",
		"idProduct": "801c",
	})
	// A serial adapter that is not a CharaChorder.
	addFakePort(t, dev, sys, "ttyUSB0", map[string]string{
		"idVendor":  "0403",
		"idProduct": "6001",
	})
	// A port with no USB metadata at all.
	addFakePort(t, dev, sys, "ttyACM2", nil)

	devices, err := ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("found %d devices, want 2: %v", len(devices), devices)
	}

	// Sorted by port path.
	x := devices[0]
	if x.Port != filepath.Join(dev, "ttyACM0") {
		t.Errorf("first device port = %s", x.Port)
	}
	if x.Product != ProductX || x.Chipset != ChipsetS2 || x.Vendor != VendorEspressif {
		t.Errorf("first device identity = %v/%v/%v", x.Product, x.Chipset, x.Vendor)
	}
	if x.BootloaderMode {
		t.Error("X should not report bootloader mode")
	}
	if x.SerialNumber != "CCX0042" || x.Manufacturer != "CharaChorder" {
		t.Errorf("USB metadata = %q/%q", x.SerialNumber, x.Manufacturer)
	}
	if x.BusNumber != "1" || x.DeviceNumber != "7" {
		t.Errorf("bus/device = %q/%q", x.BusNumber, x.DeviceNumber)
	}

	lite := devices[1]
	if lite.Product != ProductLite || lite.Chipset != ChipsetM0 || lite.Vendor != VendorAdafruit {
		t.Errorf("second device identity = %v/%v/%v", lite.Product, lite.Chipset, lite.Vendor)
	}
}

func TestListDevicesBootloaderMode(t *testing.T) {
	dev, sys := fakeHost(t)

	addFakePort(t, dev, sys, "ttyACM0", map[string]string{
		"idVendor":  "303a",
		"idProduct": "812f",
	})

	devices, err := ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("found %d devices, want 1", len(devices))
	}
	if !devices[0].BootloaderMode {
		t.Error("expected bootloader mode")
	}
	if devices[0].Product != ProductLite {
		t.Errorf("product = %v, want Lite", devices[0].Product)
	}
}

func TestListDevicesEmpty(t *testing.T) {
	fakeHost(t)

	devices, err := ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("found %d devices in empty registry", len(devices))
	}
}

func TestFindDevices(t *testing.T) {
	dev, sys := fakeHost(t)

	addFakePort(t, dev, sys, "ttyACM0", map[string]string{
		"idVendor":  "303a",
		"idProduct": "818b", // X
	})
	addFakePort(t, dev, sys, "ttyACM1", map[string]string{
		"idVendor":  "303a",
		"idProduct": "812e", // Lite
	})

	lites, err := FindDevices(ProductLite)
	if err != nil {
		t.Fatalf("FindDevices failed: %v", err)
	}
	if len(lites) != 1 || lites[0].Product != ProductLite {
		t.Errorf("FindDevices(Lite) = %v", lites)
	}

	ones, err := FindDevices(ProductOne)
	if err != nil {
		t.Fatalf("FindDevices failed: %v", err)
	}
	if len(ones) != 0 {
		t.Errorf("FindDevices(One) = %v, want none", ones)
	}
}

func TestMatchesPortPattern(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"ttyACM0", true},
		{"ttyACM12", true},
		{"ttyUSB3", true},
		{"ttyS0", false},
		{"tty1", false},
		{"console", false},
		{"ptmx", false},
		{"ttyACM", false},
	}

	for _, tt := range tests {
		if got := matchesPortPattern(tt.name); got != tt.want {
			t.Errorf("matchesPortPattern(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// addSymlinkedPort builds the layout the kernel actually presents: the
// class-side device node is a symlink into the devices tree, and the USB
// descriptors sit depth parent directories above the link target.
func addSymlinkedPort(t *testing.T, dev, sys, name string, depth int, attrs map[string]string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dev, name), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	usbDir := filepath.Join(sys, "..", "devices", "usb1", "1-2-"+name)
	target := usbDir
	for i := 0; i < depth; i++ {
		target = filepath.Join(target, "level"+strconv.Itoa(i))
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatal(err)
	}
	for attr, value := range attrs {
		if err := os.WriteFile(filepath.Join(usbDir, attr), []byte(value+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	classDir := filepath.Join(sys, name)
	if err := os.MkdirAll(classDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(classDir, "device")); err != nil {
		t.Fatal(err)
	}
}

func TestListDevicesSymlinkedSysfs(t *testing.T) {
	// A CDC/ACM tty's device link points at the USB interface directory;
	// the descriptors live in its parent, reachable only by resolving the
	// symlink before walking up.
	dev, sys := fakeHost(t)

	addSymlinkedPort(t, dev, sys, "ttyACM0", 1, map[string]string{
		"idVendor":     "239a",
		"idProduct":    "800f",
		"serial":       "CC1-0031",
		"manufacturer": "CharaChorder",
		"busnum":       "1",
		"devnum":       "4",
	})

	devices, err := ListDevices()
	if err != nil {
		t.Fatalf("ListDevices failed: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("found %d devices behind symlinked sysfs, want 1", len(devices))
	}

	one := devices[0]
	if one.Product != ProductOne || one.Chipset != ChipsetM0 || one.Vendor != VendorAdafruit {
		t.Errorf("identity = %v/%v/%v", one.Product, one.Chipset, one.Vendor)
	}
	if one.SerialNumber != "CC1-0031" || one.BusNumber != "1" || one.DeviceNumber != "4" {
		t.Errorf("USB metadata = %q/%q/%q", one.SerialNumber, one.BusNumber, one.DeviceNumber)
	}
}

func TestReadUSBInfoSymlinkDepths(t *testing.T) {
	dev, sys := fakeHost(t)

	// Descriptors one and two parents above the resolved link target.
	addSymlinkedPort(t, dev, sys, "ttyACM0", 1, map[string]string{
		"idVendor":  "303a",
		"idProduct": "818b",
	})
	addSymlinkedPort(t, dev, sys, "ttyACM1", 2, map[string]string{
		"idVendor":  "303a",
		"idProduct": "818d",
	})

	for name, wantPID := range map[string]uint16{
		"ttyACM0": 0x818B,
		"ttyACM1": 0x818D,
	} {
		info, err := readUSBInfo(name)
		if err != nil {
			t.Fatalf("readUSBInfo(%s) failed: %v", name, err)
		}
		if info.vendorID != 0x303A || info.productID != wantPID {
			t.Errorf("%s ids = %04x/%04x, want 303a/%04x", name, info.vendorID, info.productID, wantPID)
		}
	}
}

func TestReadUSBInfoInterfaceLevels(t *testing.T) {
	// On real hardware the tty's device node is an interface directory;
	// the descriptors live one or two parents up.
	dev, sys := fakeHost(t)
	_ = dev

	deviceDir := filepath.Join(sys, "ttyACM0", "device")
	usbDir := filepath.Join(deviceDir, "..")
	if err := os.MkdirAll(deviceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for attr, value := range map[string]string{
		"idVendor":  "303a",
		"idProduct": "8189",
	} {
		if err := os.WriteFile(filepath.Join(usbDir, attr), []byte(value+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	info, err := readUSBInfo("ttyACM0")
	if err != nil {
		t.Fatalf("readUSBInfo failed: %v", err)
	}
	if info.vendorID != 0x303A || info.productID != 0x8189 {
		t.Errorf("ids = %04x/%04x, want 303a/8189", info.vendorID, info.productID)
	}
}
