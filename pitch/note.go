package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwise/util"
)

const (
	MidiMin = 0
	MidiMax = 127
)

var (
	ErrNoteFormat = errors.New("malformed note")
	ErrMidiRange  = errors.New("midi value out of range")
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// semitone offset from C for each natural letter
var letterOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Note is an absolute pitch: a pitch class (0-11, C=0), an octave (C4 = middle
// C = midi 60), and the accidental convention to use when spelling it.
// The zero accidental convention is sharps; flats are used for notes
// constructed from a flat spelling or rooted on F.
type Note struct {
	PitchClass  int
	Octave      int
	PreferFlats bool
}

// Parse reads notes like "C4", "F#3", "Bb2", "A♭-1". Exactly one accidental
// is allowed; doubled accidentals are rejected. Returns ErrNoteFormat for bad
// text and ErrMidiRange when the note falls outside midi 0..127.
func Parse(text string) (Note, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return Note{}, fmt.Errorf("%w: %q", ErrNoteFormat, text)
	}

	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	base, ok := letterOffsets[letter]
	if !ok {
		return Note{}, fmt.Errorf("%w: bad letter in %q", ErrNoteFormat, text)
	}

	rest := s[1:]
	alter := 0
	switch {
	case strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, "♯"):
		alter = 1
	case strings.HasPrefix(rest, "b") || strings.HasPrefix(rest, "♭"):
		alter = -1
	}
	if alter != 0 {
		if rest[0] == '#' || rest[0] == 'b' {
			rest = rest[1:]
		} else {
			rest = rest[len("♯"):]
		}
		if strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, "♯") ||
			strings.HasPrefix(rest, "b") || strings.HasPrefix(rest, "♭") {
			return Note{}, fmt.Errorf("%w: doubled accidental in %q", ErrNoteFormat, text)
		}
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, fmt.Errorf("%w: bad octave in %q", ErrNoteFormat, text)
	}

	pc := util.PosMod(base+alter, 12)
	midi := MidiFor(pc, octave)
	if midi < MidiMin || midi > MidiMax {
		return Note{}, fmt.Errorf("%w: %q is midi %d", ErrMidiRange, text, midi)
	}

	return Note{
		PitchClass:  pc,
		Octave:      octave,
		PreferFlats: alter == -1 || letter == 'F',
	}, nil
}

// MustParse is for static note literals (tuning tables, tests). It panics on
// bad input, so never feed it anything user-supplied.
func MustParse(text string) Note {
	n, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return n
}

func FromMidi(midi int, preferFlats bool) (Note, error) {
	if midi < MidiMin || midi > MidiMax {
		return Note{}, fmt.Errorf("%w: %d", ErrMidiRange, midi)
	}
	return Note{
		PitchClass:  midi % 12,
		Octave:      midi/12 - 1,
		PreferFlats: preferFlats,
	}, nil
}

// MidiFor is the raw midi formula with no range check, for geometry math that
// filters candidates against an instrument range afterwards.
func MidiFor(pitchClass, octave int) int {
	return (octave+1)*12 + pitchClass
}

func (n Note) Midi() int {
	return MidiFor(n.PitchClass, n.Octave)
}

// Frequency is equal-tempered tuning at A4 = 440Hz.
func (n Note) Frequency() float64 {
	return 440 * math.Pow(2, float64(n.Midi()-69)/12)
}

// Name is the spelled pitch class without the octave, e.g. "C#" or "Db".
func (n Note) Name() string {
	return PitchClassName(n.PitchClass, n.PreferFlats)
}

// String is the parseable form, e.g. "C#4".
func (n Note) String() string {
	return n.Name() + strconv.Itoa(n.Octave)
}

func (n Note) Transpose(semitones int) (Note, error) {
	return FromMidi(n.Midi()+semitones, n.PreferFlats)
}

func PitchClassName(pitchClass int, preferFlats bool) string {
	pc := util.PosMod(pitchClass, 12)
	if preferFlats {
		return flatNames[pc]
	}
	return sharpNames[pc]
}
