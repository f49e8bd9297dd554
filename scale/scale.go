package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// Scale is a named set of ascending semitone offsets from an implicit root.
// The first interval is always 0 and no two intervals share a pitch class.
type Scale struct {
	Name      string
	Intervals []int
	ModeNames []string
}

var majorModeNames = []string{
	"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian",
}

var melodicMinorModeNames = []string{
	"Melodic Minor", "Dorian ♭2", "Lydian Augmented", "Lydian Dominant",
	"Mixolydian ♭6", "Locrian ♮2", "Altered",
}

var catalog = map[string]Scale{
	"major":          {Name: "Major", Intervals: []int{0, 2, 4, 5, 7, 9, 11}, ModeNames: majorModeNames},
	"minor":          {Name: "Natural Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
	"harmonic_minor": {Name: "Harmonic Minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}},
	"melodic_minor":  {Name: "Melodic Minor", Intervals: []int{0, 2, 3, 5, 7, 9, 11}, ModeNames: melodicMinorModeNames},

	"dorian":     {Name: "Dorian", Intervals: []int{0, 2, 3, 5, 7, 9, 10}},
	"phrygian":   {Name: "Phrygian", Intervals: []int{0, 1, 3, 5, 7, 8, 10}},
	"lydian":     {Name: "Lydian", Intervals: []int{0, 2, 4, 6, 7, 9, 11}},
	"mixolydian": {Name: "Mixolydian", Intervals: []int{0, 2, 4, 5, 7, 9, 10}},
	"locrian":    {Name: "Locrian", Intervals: []int{0, 1, 3, 5, 6, 8, 10}},

	"major_pentatonic": {Name: "Major Pentatonic", Intervals: []int{0, 2, 4, 7, 9}},
	"minor_pentatonic": {Name: "Minor Pentatonic", Intervals: []int{0, 3, 5, 7, 10}},
	"blues":            {Name: "Blues", Intervals: []int{0, 3, 5, 6, 7, 10}},

	"whole_tone":           {Name: "Whole Tone", Intervals: []int{0, 2, 4, 6, 8, 10}},
	"diminished_whole_half": {Name: "Diminished (Whole-Half)", Intervals: []int{0, 2, 3, 5, 6, 8, 9, 11}},
	"diminished_half_whole": {Name: "Diminished (Half-Whole)", Intervals: []int{0, 1, 3, 4, 6, 7, 9, 10}},
	"phrygian_dominant":     {Name: "Phrygian Dominant", Intervals: []int{0, 1, 4, 5, 7, 8, 10}},
	"double_harmonic":       {Name: "Double Harmonic", Intervals: []int{0, 1, 4, 5, 7, 8, 11}},
	"hungarian_minor":       {Name: "Hungarian Minor", Intervals: []int{0, 2, 3, 6, 7, 8, 11}},
	"hirajoshi":             {Name: "Hirajoshi", Intervals: []int{0, 2, 3, 7, 8}},
	"in_sen":                {Name: "In Sen", Intervals: []int{0, 1, 5, 7, 10}},
}

// Get looks up a scale by name ("major", "Harmonic Minor", ...). A miss
// returns the zero Scale and false, never an error: every downstream helper
// treats the zero Scale as "nothing to generate".
func Get(name string) (Scale, bool) {
	s, ok := catalog[normalize(name)]
	return s, ok
}

func Names() []string {
	return util.SortedKeys(catalog)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (s Scale) Len() int {
	return len(s.Intervals)
}

// ModeIntervals rotates the scale so degree k becomes the new zero and
// appends the compound octave, so the result always has Len()+1 elements.
func (s Scale) ModeIntervals(k int) []int {
	n := len(s.Intervals)
	if n == 0 {
		return nil
	}
	k = util.PosMod(k, n)
	res := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		res = append(res, util.PosMod(s.Intervals[(k+i)%n]-s.Intervals[k], 12))
	}
	res = append(res, 12)
	return res
}

// ModeRoot is the root of the k-th mode: the scale's k-th degree.
func (s Scale) ModeRoot(root pitch.Note, k int) (pitch.Note, error) {
	n := len(s.Intervals)
	if n == 0 {
		return root, nil
	}
	return root.Transpose(s.Intervals[util.PosMod(k, n)])
}

// ModeName returns the named mode where the scale carries names ("Dorian"),
// otherwise a generic "Mode k+1". The index wraps modulo the scale length.
func (s Scale) ModeName(k int) string {
	n := len(s.Intervals)
	if n == 0 {
		return ""
	}
	k = util.PosMod(k, n)
	if k < len(s.ModeNames) {
		return s.ModeNames[k]
	}
	return fmt.Sprintf("Mode %d", k+1)
}

// NotesForRoot spells every degree from the given root plus the octave above
// it, so a 7-note scale yields 8 notes. Spelling follows the root's
// convention. Fails only when a degree leaves the midi range.
func (s Scale) NotesForRoot(root pitch.Note) ([]pitch.Note, error) {
	if len(s.Intervals) == 0 {
		return nil, nil
	}
	res := make([]pitch.Note, 0, len(s.Intervals)+1)
	for _, iv := range append(append([]int{}, s.Intervals...), 12) {
		n, err := root.Transpose(iv)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// ContainsPitchClass reports whether queryPc is a degree of the scale rooted
// at rootPc, octave-insensitively.
func (s Scale) ContainsPitchClass(rootPc, queryPc int) bool {
	d := util.PosMod(queryPc-rootPc, 12)
	for _, iv := range s.Intervals {
		if util.PosMod(iv, 12) == d {
			return true
		}
	}
	return false
}
