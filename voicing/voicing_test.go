package voicing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/instrument"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

func standardTuning() []pitch.Note {
	tuning, _ := instrument.Tuning("standard")
	return tuning
}

func TestCandidatesMatchChordTones(t *testing.T) {
	assert := assert.New(t)

	root := pitch.MustParse("C4")
	candidates := BuildChordVoicing(root, 3, "major", chord.RootPosition, standardTuning(), 5)
	assert.NotEmpty(candidates)

	rootMidi := pitch.MidiFor(root.PitchClass, 3)
	for _, c := range candidates {
		assert.Contains([]int{0, 4, 7}, c.IntervalFromRoot)
		assert.Equal(c.IntervalFromRoot == 0, c.IsRoot)
		assert.Equal(c.IntervalFromRoot, util.PosMod(c.MidiNote-rootMidi, 12))
		assert.Equal(c.MidiNote, standardTuning()[c.StringIndex].Midi()+c.FretNumber)
		assert.GreaterOrEqual(c.FretNumber, 0)
		assert.LessOrEqual(c.FretNumber, 5)
	}
}

func TestCandidateSlotGrouping(t *testing.T) {
	assert := assert.New(t)

	candidates := BuildChordVoicing(pitch.MustParse("C4"), 3, "major", chord.RootPosition, standardTuning(), 12)

	slots := make(map[int]map[int]bool)
	for _, c := range candidates {
		if slots[c.VoicingPosition] == nil {
			slots[c.VoicingPosition] = make(map[int]bool)
		}
		slots[c.VoicingPosition][c.IntervalFromRoot] = true
	}
	// one slot per chord tone, and a slot never mixes interval classes
	assert.Len(slots, 3)
	for slot, classes := range slots {
		assert.Len(classes, 1, "slot %v", slot)
	}
}

func TestInversionPutsBassInSlotZero(t *testing.T) {
	assert := assert.New(t)

	candidates := BuildChordVoicing(pitch.MustParse("C4"), 3, "dominant7", 1, standardTuning(), 12)
	for _, c := range candidates {
		if c.VoicingPosition == 0 {
			assert.Equal(4, c.IntervalFromRoot) // the third is the bass of inversion 1
		}
	}
}

func TestEmptyInputsYieldNothing(t *testing.T) {
	assert := assert.New(t)

	root := pitch.MustParse("C4")
	assert.Empty(BuildChordVoicing(root, 3, "mystery", chord.RootPosition, standardTuning(), 12))
	assert.Empty(BuildChordVoicing(root, 3, "major", chord.RootPosition, nil, 12))
	assert.Empty(BuildChordVoicing(root, 3, "major", chord.RootPosition, standardTuning(), 0))
	assert.Empty(BuildChordVoicing(root, 3, "major", chord.RootPosition, standardTuning(), -1))
}

func TestOptimalFingeringPicksLowestFret(t *testing.T) {
	assert := assert.New(t)

	candidates := []model.ChordTone{
		{StringIndex: 1, FretNumber: 3, VoicingPosition: 0},
		{StringIndex: 2, FretNumber: 1, VoicingPosition: 0},
		{StringIndex: 4, FretNumber: 6, VoicingPosition: 1},
		{StringIndex: 0, FretNumber: 6, VoicingPosition: 1}, // fret tie: lower string wins
	}
	selected := OptimalFingering(candidates)
	assert.Len(selected, 2)
	assert.Equal(model.ChordTone{StringIndex: 2, FretNumber: 1, VoicingPosition: 0}, selected[0])
	assert.Equal(model.ChordTone{StringIndex: 0, FretNumber: 6, VoicingPosition: 1}, selected[1])
}

func TestOptimalFingeringAllowsSharedString(t *testing.T) {
	assert := assert.New(t)

	candidates := []model.ChordTone{
		{StringIndex: 0, FretNumber: 0, VoicingPosition: 0},
		{StringIndex: 0, FretNumber: 3, VoicingPosition: 1},
	}
	selected := OptimalFingering(candidates)
	assert.Len(selected, 2)
	assert.Equal(0, selected[0].StringIndex)
	assert.Equal(0, selected[1].StringIndex)
}

func TestOptimalFingeringIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	forward := BuildChordVoicing(pitch.MustParse("G3"), 3, "dominant7", chord.RootPosition, standardTuning(), 12)
	reversed := make([]model.ChordTone, len(forward))
	for i, c := range forward {
		reversed[len(forward)-1-i] = c
	}
	assert.Equal(OptimalFingering(forward), OptimalFingering(reversed))
}

func TestDifficultyEmptySelection(t *testing.T) {
	assert := assert.New(t)

	report := AnalyzeDifficulty(nil, DefaultThresholds)
	assert.False(report.Playable)
	assert.Equal("impossible", report.Difficulty)
	assert.Equal("No valid fingering found", report.Reason)
}

func TestDifficultyClassification(t *testing.T) {
	assert := assert.New(t)

	easy := []model.ChordTone{
		{StringIndex: 0, FretNumber: 0},
		{StringIndex: 1, FretNumber: 2},
		{StringIndex: 2, FretNumber: 2},
	}
	report := AnalyzeDifficulty(easy, DefaultThresholds)
	assert.True(report.Playable)
	assert.Equal("easy", report.Difficulty)
	assert.Equal(3, report.StringSpan)
	assert.Equal(3, report.FretSpan)

	hard := []model.ChordTone{
		{StringIndex: 0, FretNumber: 1},
		{StringIndex: 4, FretNumber: 5},
	}
	assert.Equal("hard", AnalyzeDifficulty(hard, DefaultThresholds).Difficulty)

	veryHard := []model.ChordTone{
		{StringIndex: 0, FretNumber: 1},
		{StringIndex: 5, FretNumber: 9},
	}
	assert.Equal("very_hard", AnalyzeDifficulty(veryHard, DefaultThresholds).Difficulty)

	// open strings count at fret 0 and stretch the span
	openStretch := []model.ChordTone{
		{StringIndex: 0, FretNumber: 0},
		{StringIndex: 1, FretNumber: 4},
	}
	assert.Equal("hard", AnalyzeDifficulty(openStretch, DefaultThresholds).Difficulty)
}

func TestTablature(t *testing.T) {
	assert := assert.New(t)

	selected := []model.ChordTone{
		{StringIndex: 0, FretNumber: 3},
		{StringIndex: 1, FretNumber: 2},
		{StringIndex: 2, FretNumber: 0},
	}
	assert.Equal([]int{3, 2, 0, model.MutedString, model.MutedString, model.MutedString},
		Tablature(selected, 6))

	// a shared string shows its lowest fret
	doubled := append(selected, model.ChordTone{StringIndex: 0, FretNumber: 1})
	assert.Equal(1, Tablature(doubled, 6)[0])

	// positions beyond the instrument are ignored
	assert.Equal([]int{model.MutedString}, Tablature([]model.ChordTone{{StringIndex: 4, FretNumber: 2}}, 1))
}

func TestDiagram(t *testing.T) {
	assert := assert.New(t)

	selected := []model.ChordTone{
		{StringIndex: 0, FretNumber: 0},
		{StringIndex: 1, FretNumber: 2},
		{StringIndex: 2, FretNumber: 3},
	}
	d := Diagram(selected, 6)
	assert.Equal([]int{0, 2, 3, model.MutedString, model.MutedString, model.MutedString}, d.Tablature)
	assert.Equal(2, d.StartFret) // lowest fretted position; the open string doesn't count
	assert.Equal(4, d.FretSpan)  // frets 0..3
	assert.Equal([]int{3, 4, 5}, d.MutedStrings)
	assert.Equal([]int{0}, d.OpenStrings)
	assert.True(d.ShowPositionMarker)
}

func TestDiagramAllOpen(t *testing.T) {
	assert := assert.New(t)

	selected := []model.ChordTone{
		{StringIndex: 0, FretNumber: 0},
		{StringIndex: 1, FretNumber: 0},
	}
	d := Diagram(selected, 2)
	assert.Equal(0, d.StartFret)
	assert.False(d.ShowPositionMarker)
	assert.Empty(d.MutedStrings)
	assert.Equal([]int{0, 1}, d.OpenStrings)
}

func TestDiagramEmpty(t *testing.T) {
	assert := assert.New(t)

	d := Diagram(nil, 6)
	assert.Equal([]int{model.MutedString, model.MutedString, model.MutedString,
		model.MutedString, model.MutedString, model.MutedString}, d.Tablature)
	assert.Equal(0, d.StartFret)
	assert.Equal(0, d.FretSpan)
	assert.False(d.ShowPositionMarker)
	assert.Len(d.MutedStrings, 6)
	assert.Empty(d.OpenStrings)
}
