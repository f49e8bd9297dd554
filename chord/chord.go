package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/fretwise/model"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// Chord is a named set of ascending semitone offsets from an implicit root,
// plus its display metadata. Symbol is the suffix appended to a root name
// ("m7", "dim"); it's empty for a plain major triad.
type Chord struct {
	Type        string
	Symbol      string
	DisplayName string
	Category    string
	Intervals   []int
}

// Inversion picks which chord tone is the bass: 0 is root position, 1 puts
// the second interval in the bass, and so on.
type Inversion int

const RootPosition Inversion = 0

var catalog = map[string]Chord{
	"major":      {Type: "major", Symbol: "", DisplayName: "Major", Category: "triad", Intervals: []int{0, 4, 7}},
	"minor":      {Type: "minor", Symbol: "m", DisplayName: "Minor", Category: "triad", Intervals: []int{0, 3, 7}},
	"diminished": {Type: "diminished", Symbol: "dim", DisplayName: "Diminished", Category: "triad", Intervals: []int{0, 3, 6}},
	"augmented":  {Type: "augmented", Symbol: "aug", DisplayName: "Augmented", Category: "triad", Intervals: []int{0, 4, 8}},
	"power":      {Type: "power", Symbol: "5", DisplayName: "Power Chord", Category: "power", Intervals: []int{0, 7}},

	"sus2": {Type: "sus2", Symbol: "sus2", DisplayName: "Suspended Second", Category: "suspended", Intervals: []int{0, 2, 7}},
	"sus4": {Type: "sus4", Symbol: "sus4", DisplayName: "Suspended Fourth", Category: "suspended", Intervals: []int{0, 5, 7}},

	"major6": {Type: "major6", Symbol: "6", DisplayName: "Major Sixth", Category: "sixth", Intervals: []int{0, 4, 7, 9}},
	"minor6": {Type: "minor6", Symbol: "m6", DisplayName: "Minor Sixth", Category: "sixth", Intervals: []int{0, 3, 7, 9}},

	"major7":      {Type: "major7", Symbol: "maj7", DisplayName: "Major Seventh", Category: "seventh", Intervals: []int{0, 4, 7, 11}},
	"minor7":      {Type: "minor7", Symbol: "m7", DisplayName: "Minor Seventh", Category: "seventh", Intervals: []int{0, 3, 7, 10}},
	"dominant7":   {Type: "dominant7", Symbol: "7", DisplayName: "Dominant Seventh", Category: "seventh", Intervals: []int{0, 4, 7, 10}},
	"minor7b5":    {Type: "minor7b5", Symbol: "m7♭5", DisplayName: "Half-Diminished Seventh", Category: "seventh", Intervals: []int{0, 3, 6, 10}},
	"diminished7": {Type: "diminished7", Symbol: "dim7", DisplayName: "Diminished Seventh", Category: "seventh", Intervals: []int{0, 3, 6, 9}},
	"minormajor7": {Type: "minormajor7", Symbol: "mMaj7", DisplayName: "Minor-Major Seventh", Category: "seventh", Intervals: []int{0, 3, 7, 11}},

	"add9":       {Type: "add9", Symbol: "add9", DisplayName: "Added Ninth", Category: "extended", Intervals: []int{0, 4, 7, 14}},
	"major9":     {Type: "major9", Symbol: "maj9", DisplayName: "Major Ninth", Category: "extended", Intervals: []int{0, 4, 7, 11, 14}},
	"minor9":     {Type: "minor9", Symbol: "m9", DisplayName: "Minor Ninth", Category: "extended", Intervals: []int{0, 3, 7, 10, 14}},
	"dominant9":  {Type: "dominant9", Symbol: "9", DisplayName: "Dominant Ninth", Category: "extended", Intervals: []int{0, 4, 7, 10, 14}},
	"dominant11": {Type: "dominant11", Symbol: "11", DisplayName: "Dominant Eleventh", Category: "extended", Intervals: []int{0, 4, 7, 10, 14, 17}},
	"dominant13": {Type: "dominant13", Symbol: "13", DisplayName: "Dominant Thirteenth", Category: "extended", Intervals: []int{0, 4, 7, 10, 14, 21}},
}

// Get looks up a chord by type name. A miss returns the zero Chord and
// false; the zero Chord generates nothing downstream.
func Get(name string) (Chord, bool) {
	c, ok := catalog[normalize(name)]
	return c, ok
}

func Names() []string {
	return util.SortedKeys(catalog)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

func (c Chord) Len() int {
	return len(c.Intervals)
}

// SymbolFor spells the chord symbol for a concrete root, e.g. "Bbm7".
func (c Chord) SymbolFor(root pitch.Note) string {
	return root.Name() + c.Symbol
}

// NotesForRoot spells each chord tone from the given root. Unlike scale note
// generation there is no appended octave note.
func (c Chord) NotesForRoot(root pitch.Note) ([]pitch.Note, error) {
	res := make([]pitch.Note, 0, len(c.Intervals))
	for _, iv := range c.Intervals {
		n, err := root.Transpose(iv)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// AvailableInversions enumerates one inversion per chord tone, root position
// first.
func (c Chord) AvailableInversions() []Inversion {
	res := make([]Inversion, len(c.Intervals))
	for i := range c.Intervals {
		res[i] = Inversion(i)
	}
	return res
}

// BuildVoicing realizes the chord as an ascending absolute midi list with
// the inversion's tone in the bass: tones below the bass are raised by whole
// octaves until they sit above it. An out-of-range inversion silently falls
// back to root position. Results may exceed the midi range; callers mapping
// onto an instrument filter against its geometry.
func (c Chord) BuildVoicing(root pitch.Note, inversion Inversion) []int {
	if len(c.Intervals) == 0 {
		return nil
	}

	bassIndex := int(inversion)
	if bassIndex < 0 || bassIndex >= len(c.Intervals) {
		bassIndex = 0
	}

	midis := make([]int, len(c.Intervals))
	for i, iv := range c.Intervals {
		midis[i] = root.Midi() + iv
	}

	bass := midis[bassIndex]
	for i := range midis {
		for midis[i] < bass {
			midis[i] += 12
		}
	}

	sort.Ints(midis)
	return midis
}

// IsVoicingComplete reports whether every chord-tone class is represented by
// at least one selected position.
func (c Chord) IsVoicingComplete(selected []model.ChordTone) bool {
	return len(c.Intervals) > 0 && len(c.missing(selected)) == 0
}

// MissingChordTones names the chord tones absent from the selection, spelled
// by the supplied root's convention.
func (c Chord) MissingChordTones(root pitch.Note, selected []model.ChordTone) []string {
	var names []string
	for _, iv := range c.missing(selected) {
		names = append(names, pitch.PitchClassName(root.PitchClass+iv, root.PreferFlats))
	}
	return names
}

func (c Chord) missing(selected []model.ChordTone) []int {
	covered := make(map[int]bool)
	for _, tone := range selected {
		covered[util.PosMod(tone.IntervalFromRoot, 12)] = true
	}
	var missing []int
	for _, iv := range c.Intervals {
		if !covered[util.PosMod(iv, 12)] {
			missing = append(missing, iv)
		}
	}
	return missing
}
