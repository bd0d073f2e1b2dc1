/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CharaChorder/charachorder-go"
	"github.com/CharaChorder/charachorder-go/internal/serialport"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "charachorder",
	Short: "Manage CharaChorder devices over their serial API",
	Long: `A command-line tool for CharaChorder One, Lite, X and Engine devices.

Discover connected devices, inspect firmware and memory, manage chordmaps,
tune parameters, remap keys and drive the device interactively over its
serial API.

Example usage:
  charachorder devices
  charachorder info
  charachorder chords list
  charachorder param get operating_system
  charachorder repl`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.charachorder.yaml)")
	rootCmd.PersistentFlags().StringP("device", "d", "", "serial port of the device (default: first detected)")
	rootCmd.PersistentFlags().IntP("baud", "b", 115200, "baud rate")
	rootCmd.PersistentFlags().IntP("timeout", "t", 1000, "read timeout in milliseconds")

	viper.BindPFlag("device", rootCmd.PersistentFlags().Lookup("device"))
	viper.BindPFlag("baud", rootCmd.PersistentFlags().Lookup("baud"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".charachorder" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".charachorder")
	}

	viper.SetEnvPrefix("CHARACHORDER")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sessionOptions builds serial options from the resolved configuration.
func sessionOptions() []serialport.Option {
	return []serialport.Option{
		serialport.WithBaudRate(viper.GetInt("baud")),
		serialport.WithReadTimeout(time.Duration(viper.GetInt("timeout")) * time.Millisecond),
	}
}

// pickDevice resolves the target device from --device or by enumeration.
func pickDevice() (charachorder.Device, error) {
	devices, err := charachorder.ListDevices()
	if err != nil {
		return charachorder.Device{}, fmt.Errorf("scanning for devices: %w", err)
	}

	if port := viper.GetString("device"); port != "" {
		for _, d := range devices {
			if d.Port == port {
				return d, nil
			}
		}
		return charachorder.Device{}, fmt.Errorf("no CharaChorder device on %s", port)
	}

	if len(devices) == 0 {
		return charachorder.Device{}, charachorder.ErrDeviceNotFound
	}
	return devices[0], nil
}

// openSession resolves the target device and opens a session on it.
func openSession() (*charachorder.Session, charachorder.Device, error) {
	device, err := pickDevice()
	if err != nil {
		return nil, charachorder.Device{}, err
	}
	session, err := device.Open(sessionOptions()...)
	if err != nil {
		return nil, device, fmt.Errorf("opening %s: %w", device.Port, err)
	}
	return session, device, nil
}
