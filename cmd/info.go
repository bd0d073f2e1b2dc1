/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display detailed information about a connected device",
	Long: `Display detailed information about a connected CharaChorder device.

Queries the device over its serial API for identity, firmware version,
free memory and chordmap count, and combines that with the USB metadata
gathered during enumeration.

Examples:
  charachorder info
  charachorder info --device /dev/ttyACM0`,
	Run: func(cmd *cobra.Command, args []string) {
		session, device, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()
		ctx := cmd.Context()

		fmt.Printf("Device Information: %s\n\n", device.Port)
		fmt.Printf("  Product:      %s\n", device.Product)
		fmt.Printf("  Chipset:      %s\n", device.Chipset)
		fmt.Printf("  Vendor:       %s\n", device.Vendor)
		if device.BootloaderMode {
			fmt.Printf("  State:        bootloader\n")
		}

		if id, err := session.GetID(ctx); err == nil {
			fmt.Printf("  Identity:     %s\n", id)
		}
		if version, err := session.GetVersion(ctx); err == nil {
			fmt.Printf("  Firmware:     %s\n", version)
		}
		if ram, err := session.GetAvailableRAM(ctx); err == nil {
			fmt.Printf("  Free RAM:     %d bytes\n", ram)
		}
		if count, err := session.GetChordmapCount(ctx); err == nil {
			fmt.Printf("  Chordmaps:    %d\n", count)
		}

		fmt.Println("\nUSB Device Information:")
		fmt.Printf("  Vendor ID:    %04x\n", device.VendorID)
		fmt.Printf("  Product ID:   %04x\n", device.ProductID)
		if device.SerialNumber != "" {
			fmt.Printf("  Serial:       %s\n", device.SerialNumber)
		}
		if device.Manufacturer != "" {
			fmt.Printf("  Manufacturer: %s\n", device.Manufacturer)
		}
		if device.BusNumber != "" {
			fmt.Printf("  Bus:          %s\n", device.BusNumber)
		}
		if device.DeviceNumber != "" {
			fmt.Printf("  Device:       %s\n", device.DeviceNumber)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
