package model

// ViewMode selects what the instrument mapper projects onto the geometry.
type ViewMode string

const (
	ViewScale          ViewMode = "scale"
	ViewChordInversion ViewMode = "chord_inversion"
	ViewIntervals      ViewMode = "intervals"

	// Recognized but not yet implemented; mapping it yields an empty map.
	ViewChordPositions ViewMode = "chord_positions"
)

// HighlightMap maps an absolute midi note to its role token (the mod-12
// interval label relative to the selection root, e.g. "R", "♭3", "5").
// It only ever contains midi values physically present on the instrument.
type HighlightMap map[int]string

// MutedString marks a string with no selected position in tablature.
const MutedString = -1

// ChordTone ties one chord interval to one physical position on a fretted
// instrument. VoicingPosition groups every position that realizes the same
// chord-tone slot (all the places "the third" can be played).
type ChordTone struct {
	StringIndex      int  `json:"string_index"`
	FretNumber       int  `json:"fret_number"`
	MidiNote         int  `json:"midi_note"`
	IntervalFromRoot int  `json:"interval_from_root"`
	IsRoot           bool `json:"is_root"`
	VoicingPosition  int  `json:"voicing_position"`
}

type DifficultyReport struct {
	Playable   bool   `json:"playable"`
	Difficulty string `json:"difficulty"`
	Reason     string `json:"reason,omitempty"`
	StringSpan int    `json:"string_span"`
	FretSpan   int    `json:"fret_span"`
}

type ChordDiagram struct {
	Tablature          []int `json:"tablature"`
	StartFret          int   `json:"start_fret"`
	FretSpan           int   `json:"fret_span"`
	MutedStrings       []int `json:"muted_strings"`
	OpenStrings        []int `json:"open_strings"`
	ShowPositionMarker bool  `json:"show_position_marker"`
}
