package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	chordpkg "github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/instrument"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/voicing"
)

var (
	diagramTuning    string
	diagramFrets     int
	diagramInversion int
	diagramOctave    int
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	easyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hardStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	veryHardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func init() {
	diagramCmd.Flags().StringVar(&diagramTuning, "tuning", "standard", "built-in tuning name")
	diagramCmd.Flags().IntVar(&diagramFrets, "frets", constants.DefaultMaxFrets, "fret window to search")
	diagramCmd.Flags().IntVar(&diagramInversion, "inversion", 0, "inversion index (0 = root position)")
	diagramCmd.Flags().IntVar(&diagramOctave, "octave", constants.DefaultReferenceOctave, "octave of the chord root")
	rootCmd.AddCommand(diagramCmd)
}

var diagramCmd = &cobra.Command{
	Use:   "diagram <root> <chord>",
	Short: "Prints a playable chord diagram for a tuning",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDiagram(args[0], args[1])
	},
}

func printDiagram(rootText, chordName string) error {
	root, err := pitch.Parse(rootText)
	if err != nil {
		return err
	}
	tuning, ok := instrument.Tuning(diagramTuning)
	if !ok {
		return fmt.Errorf("unknown tuning %q (have: %v)", diagramTuning, strings.Join(instrument.TuningNames(), ", "))
	}

	candidates := voicing.BuildChordVoicing(
		root, diagramOctave, chordName, chordpkg.Inversion(diagramInversion), tuning, diagramFrets)
	fingering := voicing.OptimalFingering(candidates)
	report := voicing.AnalyzeDifficulty(fingering, voicing.DefaultThresholds)
	diagram := voicing.Diagram(fingering, len(tuning))

	ch, ok := chordpkg.Get(chordName)
	if !ok {
		fmt.Printf("No chord named %q. Try `fretwise chords`.\n", chordName)
		return nil
	}

	fmt.Println(headerStyle.Render(ch.SymbolFor(root) + "  (" + ch.DisplayName + ")"))
	if diagram.ShowPositionMarker {
		fmt.Printf("position: fret %v\n", diagram.StartFret)
	}

	// high string on top, like a chord chart
	for s := len(tuning) - 1; s >= 0; s-- {
		fmt.Printf("%-3v |%v\n", tuning[s].String(), fretCell(diagram.Tablature[s]))
	}

	fmt.Printf("difficulty: %v\n", styleFor(report.Difficulty).Render(report.Difficulty))
	if !report.Playable {
		fmt.Println(report.Reason)
	}
	return nil
}

func fretCell(fret int) string {
	switch fret {
	case model.MutedString:
		return "--x--"
	case 0:
		return "--o--"
	default:
		return "--" + strconv.Itoa(fret) + "--"
	}
}

func styleFor(difficulty string) lipgloss.Style {
	switch difficulty {
	case "easy":
		return easyStyle
	case "hard":
		return hardStyle
	default:
		return veryHardStyle
	}
}
