package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
)

var scalesRoot string

func init() {
	scalesCmd.Flags().StringVar(&scalesRoot, "root", "C4", "root note for spelled degrees")
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales [name]",
	Short: "Lists scales, or shows one scale's degrees and modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, key := range scale.Names() {
				sc, _ := scale.Get(key)
				fmt.Printf("%-22v %v\n", key, sc.Name)
			}
			return nil
		}
		return showScale(args[0])
	},
}

func showScale(name string) error {
	sc, ok := scale.Get(name)
	if !ok {
		fmt.Printf("No scale named %q. Try `fretwise scales`.\n", name)
		return nil
	}

	root, err := pitch.Parse(scalesRoot)
	if err != nil {
		return err
	}

	fmt.Printf("%v\n", sc.Name)
	fmt.Printf("intervals: %v\n", sc.Intervals)

	notes, err := sc.NotesForRoot(root)
	if err != nil {
		return err
	}
	var spelled []string
	for _, n := range notes {
		spelled = append(spelled, n.String())
	}
	fmt.Printf("from %v: %v\n", root, strings.Join(spelled, " "))

	fmt.Println("modes:")
	for k := 0; k < sc.Len(); k++ {
		modeRoot, err := sc.ModeRoot(root, k)
		if err != nil {
			return err
		}
		fmt.Printf("  %-18v from %-4v %v\n", sc.ModeName(k), modeRoot, sc.ModeIntervals(k))
	}
	return nil
}
