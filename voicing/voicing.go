// Package voicing searches an instrument's fret/string grid for one playable,
// graded fingering of a chord. The search is a generate→group→select
// pipeline: enumerate every fretting of every chord tone, group the
// candidates by chord-tone slot, then pick a deterministic minimum per slot.
package voicing

import (
	"sort"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// BuildChordVoicing enumerates every position on the given tuning (frets
// 0..maxFrets inclusive) that sounds a tone of the chord rooted at root's
// pitch class in the given octave. VoicingPosition numbers chord-tone slots
// with the inversion's bass tone as slot 0. Unknown chord names, an empty
// tuning, a non-positive fret window, or a fretboard with no matches all
// yield an empty result.
func BuildChordVoicing(root pitch.Note, octave int, chordName string, inversion chord.Inversion, tuning []pitch.Note, maxFrets int) []model.ChordTone {
	ch, ok := chord.Get(chordName)
	if !ok || len(tuning) == 0 || maxFrets <= 0 {
		return nil
	}

	slots := slotIndex(ch, inversion)
	rootMidi := pitch.MidiFor(root.PitchClass, octave)

	var candidates []model.ChordTone
	for s, open := range tuning {
		for fret := 0; fret <= maxFrets; fret++ {
			midi := open.Midi() + fret
			class := util.PosMod(midi-rootMidi, 12)
			slot, ok := slots[class]
			if !ok {
				continue
			}
			candidates = append(candidates, model.ChordTone{
				StringIndex:      s,
				FretNumber:       fret,
				MidiNote:         midi,
				IntervalFromRoot: class,
				IsRoot:           class == 0,
				VoicingPosition:  slot,
			})
		}
	}
	return candidates
}

// slotIndex maps each chord-tone class to its slot number, rotating so the
// inversion's bass tone is slot 0. Out-of-range inversions fall back to root
// position, same as voicing construction.
func slotIndex(ch chord.Chord, inversion chord.Inversion) map[int]int {
	n := len(ch.Intervals)
	bass := int(inversion)
	if bass < 0 || bass >= n {
		bass = 0
	}
	slots := make(map[int]int, n)
	for i := 0; i < n; i++ {
		class := util.PosMod(ch.Intervals[(bass+i)%n], 12)
		if _, taken := slots[class]; !taken {
			slots[class] = i
		}
	}
	return slots
}

// OptimalFingering keeps one position per chord-tone slot: the lowest fret,
// ties broken by the lowest string index. Two chosen positions may land on
// the same physical string; that is accepted. The result is ordered by slot.
func OptimalFingering(candidates []model.ChordTone) []model.ChordTone {
	best := make(map[int]model.ChordTone)
	for _, c := range candidates {
		cur, ok := best[c.VoicingPosition]
		if !ok || better(c, cur) {
			best[c.VoicingPosition] = c
		}
	}

	res := make([]model.ChordTone, 0, len(best))
	for _, slot := range util.SortedKeys(best) {
		res = append(res, best[slot])
	}
	return res
}

func better(a, b model.ChordTone) bool {
	if a.FretNumber != b.FretNumber {
		return a.FretNumber < b.FretNumber
	}
	return a.StringIndex < b.StringIndex
}

// Thresholds are the span sizes (strings or frets covered) separating easy,
// hard, and very hard fingerings.
type Thresholds struct {
	Easy int
	Hard int
}

var DefaultThresholds = Thresholds{Easy: constants.EasySpan, Hard: constants.HardSpan}

// AnalyzeDifficulty grades a chosen fingering. Spans use actual fret
// numbers, so an open string at fret 0 stretches the fret span.
func AnalyzeDifficulty(selected []model.ChordTone, th Thresholds) model.DifficultyReport {
	if len(selected) == 0 {
		return model.DifficultyReport{
			Playable:   false,
			Difficulty: "impossible",
			Reason:     "No valid fingering found",
		}
	}

	stringSpan := spanOf(selected, func(t model.ChordTone) int { return t.StringIndex })
	fretSpan := spanOf(selected, func(t model.ChordTone) int { return t.FretNumber })

	difficulty := "very_hard"
	switch {
	case stringSpan <= th.Easy && fretSpan <= th.Easy:
		difficulty = "easy"
	case stringSpan <= th.Hard && fretSpan <= th.Hard:
		difficulty = "hard"
	}

	return model.DifficultyReport{
		Playable:   true,
		Difficulty: difficulty,
		StringSpan: stringSpan,
		FretSpan:   fretSpan,
	}
}

func spanOf(tones []model.ChordTone, val func(model.ChordTone) int) int {
	lo, hi := val(tones[0]), val(tones[0])
	for _, t := range tones[1:] {
		lo = util.Min(lo, val(t))
		hi = util.Max(hi, val(t))
	}
	return hi - lo + 1
}

// Tablature emits one entry per string: the fret played there, or
// model.MutedString when no selected position occupies the string. If two
// selected positions share a string the lower fret is shown.
func Tablature(selected []model.ChordTone, stringCount int) []int {
	tab := make([]int, stringCount)
	for i := range tab {
		tab[i] = model.MutedString
	}
	for _, t := range selected {
		if t.StringIndex < 0 || t.StringIndex >= stringCount {
			continue
		}
		if tab[t.StringIndex] == model.MutedString || t.FretNumber < tab[t.StringIndex] {
			tab[t.StringIndex] = t.FretNumber
		}
	}
	return tab
}

// Diagram assembles the chord-box data the rendering layer draws from.
// StartFret is the lowest fretted (non-open) position, or 0 for an all-open
// shape; the position marker only shows for shapes above the nut.
func Diagram(selected []model.ChordTone, stringCount int) model.ChordDiagram {
	tab := Tablature(selected, stringCount)

	var muted, open []int
	for s, fret := range tab {
		switch fret {
		case model.MutedString:
			muted = append(muted, s)
		case 0:
			open = append(open, s)
		}
	}

	startFret := 0
	fretSpan := 0
	if len(selected) > 0 {
		fretSpan = spanOf(selected, func(t model.ChordTone) int { return t.FretNumber })
		frets := make([]int, 0, len(selected))
		for _, t := range selected {
			if t.FretNumber > 0 {
				frets = append(frets, t.FretNumber)
			}
		}
		if len(frets) > 0 {
			sort.Ints(frets)
			startFret = frets[0]
		}
	}

	return model.ChordDiagram{
		Tablature:          tab,
		StartFret:          startFret,
		FretSpan:           fretSpan,
		MutedStrings:       muted,
		OpenStrings:        open,
		ShowPositionMarker: startFret > 0,
	}
}
