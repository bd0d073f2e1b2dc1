/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CharaChorder/charachorder-go"
)

// keymapCmd represents the keymap command
var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Read and write keymap entries",
	Long: `Read and write entries in the device's keymaps.

Each device has three layers: primary, secondary and tertiary. A keymap
entry maps a physical switch position to an action id (8-2047). Changes
live in RAM until committed with "charachorder param commit".`,
}

// keymapGetCmd represents the keymap get command
var keymapGetCmd = &cobra.Command{
	Use:   "get <layer> <index>",
	Short: "Read the action id at a keymap position",
	Long: `Read the action id at a keymap position.

Examples:
  charachorder keymap get primary 0
  charachorder keymap get tertiary 12`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		layer, index, err := parseKeymapArgs(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		actionID, err := session.GetKeymap(cmd.Context(), layer, index)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s[%d] = %d\n", layer, index, actionID)
	},
}

// keymapSetCmd represents the keymap set command
var keymapSetCmd = &cobra.Command{
	Use:   "set <layer> <index> <action>",
	Short: "Write an action id to a keymap position",
	Long: `Write an action id to a keymap position.

Examples:
  charachorder keymap set primary 0 97
  charachorder keymap set secondary 12 276`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		layer, index, err := parseKeymapArgs(args[0], args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		actionID, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid action id %q\n", args[2])
			os.Exit(1)
		}

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.SetKeymap(cmd.Context(), layer, index, actionID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s[%d] = %d (uncommitted)\n", layer, index, actionID)
	},
}

func init() {
	rootCmd.AddCommand(keymapCmd)
	keymapCmd.AddCommand(keymapGetCmd)
	keymapCmd.AddCommand(keymapSetCmd)
}

func parseKeymapArgs(layerArg, indexArg string) (charachorder.KeymapCode, int, error) {
	layer, err := charachorder.ParseKeymapCode(layerArg)
	if err != nil {
		return 0, 0, err
	}
	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid keymap index %q", indexArg)
	}
	return layer, index, nil
}
