/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/CharaChorder/charachorder-go"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected CharaChorder devices",
	Long: `List all CharaChorder devices connected to the system.

This command scans serial ports (ttyACM*, ttyUSB*) and reports every port
whose USB vendor and product IDs match a known CharaChorder device:
- CharaChorder One (M0)
- CharaChorder Lite (M0 and S2)
- CharaChorder X (S2)
- CharaChorder Engine (S2)

Devices in bootloader mode are flagged as such.`,
	Run: func(cmd *cobra.Command, args []string) {
		devices, err := charachorder.ListDevices()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing devices: %v\n", err)
			os.Exit(1)
		}

		productFilter, _ := cmd.Flags().GetString("product")
		tableFormat, _ := cmd.Flags().GetBool("table")

		if productFilter != "" {
			product, err := charachorder.ParseProduct(productFilter)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			filtered := devices[:0]
			for _, d := range devices {
				if d.Product == product {
					filtered = append(filtered, d)
				}
			}
			devices = filtered
		}

		if len(devices) == 0 {
			if productFilter != "" {
				fmt.Printf("No CharaChorder devices found matching product: %s\n", productFilter)
			} else {
				fmt.Println("No CharaChorder devices found")
			}
			return
		}

		if tableFormat {
			renderDeviceTable(devices)
		} else {
			renderDeviceSimple(devices)
		}
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().StringP("product", "p", "", "Filter by product: one, lite, x, engine")
	devicesCmd.Flags().Bool("table", false, "Display output in a styled table format")
}

// renderDeviceTable renders the device list in a styled static table format
func renderDeviceTable(devices []charachorder.Device) {
	fmt.Printf("Found %d CharaChorder device(s):\n\n", len(devices))

	portWidth := 15
	productWidth := 12
	chipsetWidth := 8
	serialWidth := 20
	stateWidth := 12

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
		portWidth, "Port",
		productWidth, "Product",
		chipsetWidth, "Chipset",
		serialWidth, "Serial",
		stateWidth, "State")
	fmt.Println(headerStyle.Render(header))

	for _, d := range devices {
		state := "ready"
		if d.BootloaderMode {
			state = "bootloader"
		}
		serial := d.SerialNumber
		if serial == "" {
			serial = "-"
		}
		row := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s",
			portWidth, d.Port,
			productWidth, d.Product.String(),
			chipsetWidth, d.Chipset.String(),
			serialWidth, serial,
			stateWidth, state)
		fmt.Println(cellStyle.Render(row))
	}
}

// renderDeviceSimple renders the device list in simple text format
func renderDeviceSimple(devices []charachorder.Device) {
	for _, d := range devices {
		line := d.String()
		if d.BootloaderMode {
			line += " [bootloader]"
		}
		if d.SerialNumber != "" {
			line += " serial=" + strings.TrimSpace(d.SerialNumber)
		}
		fmt.Println(line)
	}
}
