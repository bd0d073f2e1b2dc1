/*
Copyright © 2025 CharaChorder
*/
package cmd

import (
	"fmt"
	"os"

	table "github.com/evertras/bubble-table/table"
	"github.com/spf13/cobra"

	"github.com/CharaChorder/charachorder-go"
)

// chordsCmd represents the chords command
var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Manage chordmaps on the device",
	Long: `Manage the chordmaps stored on a CharaChorder device.

A chordmap pairs a chord (a simultaneous key combination) with the phrase
the device outputs when that chord is pressed. Chordmaps live in the
device's persistent memory and survive restarts once committed.`,
}

// chordsListCmd represents the chords list command
var chordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all chordmaps stored on the device",
	Long: `List every chordmap stored on the device.

By default chords and phrases are decoded to text. Pass --raw to show
the hexadecimal wire representation instead.

Examples:
  charachorder chords list
  charachorder chords list --raw`,
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()
		ctx := cmd.Context()

		count, err := session.GetChordmapCount(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading chordmap count: %v\n", err)
			os.Exit(1)
		}

		if count == 0 {
			fmt.Println("No chordmaps stored on device")
			return
		}

		const (
			columnKeyIndex  = "index"
			columnKeyChord  = "chord"
			columnKeyPhrase = "phrase"
		)

		rows := make([]table.Row, 0, count)
		for i := 0; i < count; i++ {
			chord, phrase, err := session.GetChordmapAt(ctx, i)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading chordmap %d: %v\n", i, err)
				os.Exit(1)
			}

			chordText := chord.Text()
			phraseText := phrase.Text()
			if raw {
				chordText = chord.Raw()
				phraseText = phrase.Raw()
			}

			rows = append(rows, table.NewRow(table.RowData{
				columnKeyIndex:  i,
				columnKeyChord:  chordText,
				columnKeyPhrase: phraseText,
			}))
		}

		chordWidth := 24
		phraseWidth := 40
		if raw {
			chordWidth = 34
			phraseWidth = 44
		}

		t := table.New([]table.Column{
			table.NewColumn(columnKeyIndex, "#", 6),
			table.NewColumn(columnKeyChord, "Chord", chordWidth),
			table.NewColumn(columnKeyPhrase, "Phrase", phraseWidth),
		}).WithRows(rows).
			BorderRounded()

		fmt.Println(t.View())
		fmt.Printf("%d chordmap(s)\n", count)
	},
}

// chordsGetCmd represents the chords get command
var chordsGetCmd = &cobra.Command{
	Use:   "get <chord>",
	Short: "Look up the phrase mapped to a chord",
	Long: `Look up the phrase mapped to a chord.

The chord may be given as text (the characters forming the chord) or,
with --raw, as its 32-digit hexadecimal representation.

Examples:
  charachorder chords get th
  charachorder chords get --raw 00184000000000000000000000000000`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")

		chord, err := parseChordArg(args[0], raw)
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

		phrase, err := session.GetChordmap(cmd.Context(), chord)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if raw {
			fmt.Println(phrase.Raw())
		} else {
			fmt.Println(phrase.Text())
		}
	},
}

// chordsSetCmd represents the chords set command
var chordsSetCmd = &cobra.Command{
	Use:   "set <chord> <phrase>",
	Short: "Store a chordmap on the device",
	Long: `Store a chordmap on the device, replacing any existing phrase for
the chord.

Both arguments are text by default. With --raw the chord is a 32-digit
hex string and the phrase a hex byte stream.

The change lives in RAM until committed; run "charachorder param commit"
to persist it.

Examples:
  charachorder chords set th the
  charachorder chords set ky keyboard`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")

		chord, err := parseChordArg(args[0], raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var phrase charachorder.ChordPhrase
		if raw {
			phrase, err = charachorder.ParseChordPhrase(args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		} else {
			phrase = charachorder.NewChordPhrase(args[1])
		}

		session, _, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer session.Close()

		if err := session.SetChordmap(cmd.Context(), chord, phrase); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Stored chordmap %s -> %s\n", chord.Text(), phrase.Text())
	},
}

// chordsDeleteCmd represents the chords delete command
var chordsDeleteCmd = &cobra.Command{
	Use:   "delete <chord>",
	Short: "Delete a chordmap from the device",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")

		chord, err := parseChordArg(args[0], raw)
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

		if err := session.DeleteChordmap(cmd.Context(), chord); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted chordmap for %s\n", chord.Text())
	},
}

func init() {
	rootCmd.AddCommand(chordsCmd)
	chordsCmd.AddCommand(chordsListCmd)
	chordsCmd.AddCommand(chordsGetCmd)
	chordsCmd.AddCommand(chordsSetCmd)
	chordsCmd.AddCommand(chordsDeleteCmd)

	chordsCmd.PersistentFlags().Bool("raw", false, "Use hexadecimal wire representations instead of text")
}

// parseChordArg interprets a chord argument as text or raw hex.
func parseChordArg(arg string, raw bool) (charachorder.Chord, error) {
	if raw {
		return charachorder.ParseChord(arg)
	}
	return charachorder.NewChord(arg)
}
