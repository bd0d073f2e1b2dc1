/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CharaChorder/charachorder-go"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart or reset a CharaChorder device",
	Long: `Restart or reset a CharaChorder device.

Without flags the device simply restarts. The flags select destructive
reset operations instead:

  --factory        restore factory defaults and restart
  --bootloader     restart into the bootloader for firmware flashing
  --params         reset parameters to defaults (no restart)
  --keymaps        reset keymaps to defaults (no restart)
  --starter        append the starter chordmaps
  --clear-chords   permanently delete all chordmaps
  --upgrade-chords upgrade chordmaps to the current format (may corrupt
                   chordmaps; back up first)
  --func-chords    append functional chordmaps

With --usb the device is instead reset at the USB level, which can
recover a hung device without unplugging it. This requires the usbreset
utility (from usbutils) and typically root permissions. The device
re-enumerates afterwards, so its port path may change.

Examples:
  charachorder reset
  charachorder reset --factory
  sudo charachorder reset --usb`,
	Run: func(cmd *cobra.Command, args []string) {
		usb, _ := cmd.Flags().GetBool("usb")
		if usb {
			runUSBReset()
			return
		}

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		ctx := cmd.Context()
		action, err := selectResetAction(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := action.run(session, ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(action.done)
	},
}

type resetAction struct {
	run  func(*charachorder.Session, context.Context) error
	done string
}

// selectResetAction maps the mutually exclusive reset flags to an action.
func selectResetAction(cmd *cobra.Command) (resetAction, error) {
	actions := []struct {
		flag string
		resetAction
	}{
		{"factory", resetAction{(*charachorder.Session).FactoryReset, "Factory reset complete, device restarting"}},
		{"bootloader", resetAction{(*charachorder.Session).EnterBootloader, "Device restarting into bootloader"}},
		{"params", resetAction{(*charachorder.Session).ResetParameters, "Parameters reset to defaults"}},
		{"keymaps", resetAction{(*charachorder.Session).ResetKeymaps, "Keymaps reset to defaults"}},
		{"starter", resetAction{(*charachorder.Session).AppendStarterChords, "Starter chordmaps appended"}},
		{"clear-chords", resetAction{(*charachorder.Session).ClearChordmaps, "All chordmaps deleted"}},
		{"upgrade-chords", resetAction{(*charachorder.Session).UpgradeChordmaps, "Chordmaps upgraded"}},
		{"func-chords", resetAction{(*charachorder.Session).AppendFunctionalChords, "Functional chordmaps appended"}},
	}

	var selected []resetAction
	for _, a := range actions {
		if set, _ := cmd.Flags().GetBool(a.flag); set {
			selected = append(selected, a.resetAction)
		}
	}

	switch len(selected) {
	case 0:
		return resetAction{(*charachorder.Session).Restart, "Device restarting"}, nil
	case 1:
		return selected[0], nil
	default:
		return resetAction{}, errors.New("reset flags are mutually exclusive")
	}
}

func runUSBReset() {
	if !charachorder.IsUSBResetAvailable() {
		fmt.Fprintln(os.Stderr, "Error: usbreset utility not available")
		fmt.Fprintln(os.Stderr, "Install with: sudo apt-get install usbutils")
		os.Exit(1)
	}

	device, err := pickDevice()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Resetting USB device: %s\n", device.Port)
	if err := charachorder.ResetUSB(device); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, charachorder.ErrUSBInfoNotAvailable) {
			fmt.Fprintln(os.Stderr, "This device does not appear to be a USB device")
		}
		os.Exit(1)
	}

	fmt.Println("USB device reset successfully")
	fmt.Println("Device will re-enumerate (port path may change)")
	fmt.Println("\nUse 'charachorder devices --table' to see updated device list")
}

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().Bool("factory", false, "Restore factory defaults")
	resetCmd.Flags().Bool("bootloader", false, "Restart into the bootloader")
	resetCmd.Flags().Bool("params", false, "Reset parameters to defaults")
	resetCmd.Flags().Bool("keymaps", false, "Reset keymaps to defaults")
	resetCmd.Flags().Bool("starter", false, "Append starter chordmaps")
	resetCmd.Flags().Bool("clear-chords", false, "Permanently delete all chordmaps")
	resetCmd.Flags().Bool("upgrade-chords", false, "Upgrade chordmaps to the current format")
	resetCmd.Flags().Bool("func-chords", false, "Append functional chordmaps")
	resetCmd.Flags().Bool("usb", false, "Perform a USB-level reset instead")
}
