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

// paramCmd represents the param command
var paramCmd = &cobra.Command{
	Use:   "param",
	Short: "Read and write device parameters",
	Long: `Read and write the configurable parameters of a CharaChorder device.

Parameters control runtime behavior such as key scan rate, debounce
timings, chording thresholds, mouse movement and operating system
compatibility. Changes take effect immediately but live in RAM until
committed with "charachorder param commit".

Run "charachorder param names" for the full list of parameter names.`,
}

// paramGetCmd represents the param get command
var paramGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Read a parameter value from the device",
	Long: `Read a parameter value from the device.

Examples:
  charachorder param get operating_system
  charachorder param get key_scan_duration`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		param, err := resolveParameter(args[0])
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

		value, err := session.GetParameter(cmd.Context(), param)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %d\n", param, value)
	},
}

// paramSetCmd represents the param set command
var paramSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Write a parameter value to the device",
	Long: `Write a parameter value to the device.

The value is held in RAM until committed.

Examples:
  charachorder param set operating_system 1
  charachorder param set enable_spurring 0`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		param, err := resolveParameter(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		value, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid value %q\n", args[1])
			os.Exit(1)
		}

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.SetParameter(cmd.Context(), param, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %d (uncommitted)\n", param, value)
	},
}

// paramCommitCmd represents the param commit command
var paramCommitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Persist pending changes to device memory",
	Long: `Persist all pending parameter, keymap and chordmap changes from RAM
to the device's persistent memory so they survive a restart.`,
	Run: func(cmd *cobra.Command, args []string) {
		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.Commit(cmd.Context()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Committed")
	},
}

// paramNamesCmd represents the param names command
var paramNamesCmd = &cobra.Command{
	Use:   "names",
	Short: "List all known parameter names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range charachorder.ParameterNames() {
			fmt.Println(name)
		}
	},
}

// resolveParameter accepts a parameter name or its numeric code.
func resolveParameter(arg string) (charachorder.Parameter, error) {
	param, err := charachorder.ParameterByName(arg)
	if err == nil {
		return param, nil
	}
	if code, convErr := strconv.ParseUint(arg, 0, 8); convErr == nil {
		return charachorder.Parameter(code), nil
	}
	return 0, err
}

func init() {
	rootCmd.AddCommand(paramCmd)
	paramCmd.AddCommand(paramGetCmd)
	paramCmd.AddCommand(paramSetCmd)
	paramCmd.AddCommand(paramCommitCmd)
	paramCmd.AddCommand(paramNamesCmd)
}
