package instrument

import (
	"sort"

	"github.com/jsphweid/fretwise/pitch"
)

// Geometry is the playable surface of an instrument: either a set of open
// strings with a fret window (guitar-like) or a contiguous key range
// (keyboard-like). A Geometry answers one question: does a given absolute
// midi note physically exist on this instrument?
type Geometry struct {
	// fretted instruments: open strings low to high, frets playable 0..Frets
	Tuning []pitch.Note
	Frets  int

	// keyed instruments
	KeyStart pitch.Note
	KeyCount int
}

func Fretted(tuning []pitch.Note, frets int) Geometry {
	return Geometry{Tuning: tuning, Frets: frets}
}

func Keyed(start pitch.Note, keys int) Geometry {
	return Geometry{KeyStart: start, KeyCount: keys}
}

func (g Geometry) IsFretted() bool {
	return len(g.Tuning) > 0
}

func (g Geometry) Contains(midi int) bool {
	if midi < pitch.MidiMin || midi > pitch.MidiMax {
		return false
	}
	if g.IsFretted() {
		for _, open := range g.Tuning {
			d := midi - open.Midi()
			if d >= 0 && d <= g.Frets {
				return true
			}
		}
		return false
	}
	start := g.KeyStart.Midi()
	return g.KeyCount > 0 && midi >= start && midi < start+g.KeyCount
}

// AllMidi lists every distinct midi note on the instrument, ascending.
func (g Geometry) AllMidi() []int {
	seen := make(map[int]bool)
	if g.IsFretted() {
		for _, open := range g.Tuning {
			for f := 0; f <= g.Frets; f++ {
				m := open.Midi() + f
				if m >= pitch.MidiMin && m <= pitch.MidiMax {
					seen[m] = true
				}
			}
		}
	} else {
		for i := 0; i < g.KeyCount; i++ {
			m := g.KeyStart.Midi() + i
			if m >= pitch.MidiMin && m <= pitch.MidiMax {
				seen[m] = true
			}
		}
	}
	res := make([]int, 0, len(seen))
	for m := range seen {
		res = append(res, m)
	}
	sort.Ints(res)
	return res
}
