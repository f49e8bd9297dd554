package instrument

import (
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/util"
)

// Config is the full selection state for one highlight computation. The
// mapper holds no memory between calls; the caller passes everything, every
// time.
//
// Interval selections are relative to a reference octave (the minimum of the
// selected set). Changing the octave set moves the reference and every
// highlighted pitch with it; absolute pitches are not preserved across a
// rebase. That relative-selection contract is what makes the mapper a pure
// function of this struct.
type Config struct {
	Root      pitch.Note
	Octaves   []int
	Intervals []int

	ViewMode  model.ViewMode
	Scale     string
	Chord     string
	Inversion int

	Geometry Geometry
}

// Highlight projects the selection onto the instrument. The result only ever
// contains midi notes the geometry can actually sound; selections that imply
// out-of-range pitches simply drop them. Unknown scale/chord names and
// unimplemented view modes yield an empty map, not an error.
func Highlight(cfg Config) model.HighlightMap {
	res := make(model.HighlightMap)
	switch cfg.ViewMode {
	case model.ViewScale:
		highlightScale(cfg, res)
	case model.ViewChordInversion:
		highlightChord(cfg, res)
	case model.ViewIntervals:
		highlightIntervals(cfg, res)
	}
	return res
}

func highlightScale(cfg Config, res model.HighlightMap) {
	sc, ok := scale.Get(cfg.Scale)
	if !ok {
		return
	}
	for _, octave := range cfg.Octaves {
		rootMidi := pitch.MidiFor(cfg.Root.PitchClass, octave)
		for _, iv := range sc.ModeIntervals(0) { // degrees plus the octave top
			include(res, rootMidi+iv, iv, cfg.Geometry)
		}
	}
}

func highlightChord(cfg Config, res model.HighlightMap) {
	ch, ok := chord.Get(cfg.Chord)
	if !ok {
		return
	}
	for _, octave := range cfg.Octaves {
		root := pitch.Note{
			PitchClass:  cfg.Root.PitchClass,
			Octave:      octave,
			PreferFlats: cfg.Root.PreferFlats,
		}
		for _, midi := range ch.BuildVoicing(root, chord.Inversion(cfg.Inversion)) {
			include(res, midi, midi-root.Midi(), cfg.Geometry)
		}
	}
}

func highlightIntervals(cfg Config, res model.HighlightMap) {
	refMidi := pitch.MidiFor(cfg.Root.PitchClass, referenceOctave(cfg.Octaves))
	for _, iv := range cfg.Intervals {
		include(res, refMidi+iv, iv, cfg.Geometry)
	}
}

func include(res model.HighlightMap, midi, interval int, geo Geometry) {
	if geo.Contains(midi) {
		res[midi] = RoleFor(interval)
	}
}

func referenceOctave(octaves []int) int {
	if len(octaves) == 0 {
		return constants.DefaultReferenceOctave
	}
	ref := octaves[0]
	for _, o := range octaves[1:] {
		ref = util.Min(ref, o)
	}
	return ref
}

// RoleFor is the highlight role token for a signed interval. Roles key off
// the interval class, so octave-equivalent intervals (0 and 12, -5 and 7)
// share a role.
func RoleFor(semitones int) string {
	return pitch.Interval(util.PosMod(semitones, 12)).Label()
}
