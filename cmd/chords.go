package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/pitch"
)

var chordsRoot string

func init() {
	chordsCmd.Flags().StringVar(&chordsRoot, "root", "C4", "root note for spelled chord tones")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [name]",
	Short: "Lists chords, or shows one chord's tones and inversions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, key := range chord.Names() {
				ch, _ := chord.Get(key)
				fmt.Printf("%-14v %-8v %-10v %v\n", key, "C"+ch.Symbol, ch.Category, ch.DisplayName)
			}
			return nil
		}
		return showChord(args[0])
	},
}

func showChord(name string) error {
	ch, ok := chord.Get(name)
	if !ok {
		fmt.Printf("No chord named %q. Try `fretwise chords`.\n", name)
		return nil
	}

	root, err := pitch.Parse(chordsRoot)
	if err != nil {
		return err
	}

	fmt.Printf("%v (%v)\n", ch.DisplayName, ch.SymbolFor(root))
	fmt.Printf("intervals: %v\n", ch.Intervals)

	notes, err := ch.NotesForRoot(root)
	if err != nil {
		return err
	}
	var spelled []string
	for _, n := range notes {
		spelled = append(spelled, n.String())
	}
	fmt.Printf("tones: %v\n", strings.Join(spelled, " "))

	for _, inv := range ch.AvailableInversions() {
		voiced := ch.BuildVoicing(root, inv)
		var names []string
		for _, midi := range voiced {
			if n, err := pitch.FromMidi(midi, root.PreferFlats); err == nil {
				names = append(names, n.String())
			}
		}
		fmt.Printf("inversion %v: %v\n", inv, strings.Join(names, " "))
	}
	return nil
}
