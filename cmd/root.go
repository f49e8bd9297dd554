package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Music theory engine for fretted instruments and keyboards",
	Long:  `Computes scales, chords, voicings and fretboard highlights for the trainer.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
