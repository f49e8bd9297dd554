package model

// GeometryBody describes instrument geometry over the wire: either an
// ordered open-string tuning (low to high) with a fret window, or a
// contiguous key range. TuningName refers to the built-in tuning catalog and
// wins over an explicit Tuning list when both are present.
type GeometryBody struct {
	TuningName string   `json:"tuning_name,omitempty"`
	Tuning     []string `json:"tuning,omitempty"`
	Frets      int      `json:"frets,omitempty"`
	KeyStart   string   `json:"key_start,omitempty"`
	KeyCount   int      `json:"key_count,omitempty"`
}

type HighlightRequest struct {
	Root       string       `json:"root"`
	ViewMode   string       `json:"view_mode"`
	Scale      string       `json:"scale,omitempty"`
	Chord      string       `json:"chord,omitempty"`
	Inversion  int          `json:"inversion,omitempty"`
	Octaves    []int        `json:"octaves,omitempty"`
	Intervals  []int        `json:"intervals,omitempty"`
	Instrument GeometryBody `json:"instrument"`
}

type HighlightResponse struct {
	Notes HighlightMap `json:"notes"`
}

type VoicingRequest struct {
	Root       string       `json:"root"`
	Octave     int          `json:"octave"`
	Chord      string       `json:"chord"`
	Inversion  int          `json:"inversion,omitempty"`
	Instrument GeometryBody `json:"instrument"`
}

type VoicingResponse struct {
	Candidates []ChordTone      `json:"candidates"`
	Fingering  []ChordTone      `json:"fingering"`
	Difficulty DifficultyReport `json:"difficulty"`
	Tablature  []int            `json:"tablature"`
	Diagram    ChordDiagram     `json:"diagram"`
}

type QuizCheckRequest struct {
	Root   string `json:"root"`
	Scale  string `json:"scale,omitempty"`
	Chord  string `json:"chord,omitempty"`
	Answer Answer `json:"answer"`
}

type QuizCheckResponse struct {
	Correct bool     `json:"correct"`
	Missing []string `json:"missing,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

type ScaleInfo struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Intervals []int    `json:"intervals"`
	ModeNames []string `json:"mode_names,omitempty"`
	Notes     []string `json:"notes,omitempty"`
}

type ChordInfo struct {
	Key         string `json:"key"`
	Symbol      string `json:"symbol"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Intervals   []int  `json:"intervals"`
	Inversions  int    `json:"inversions"`
}

type IntervalInfo struct {
	Semitones int    `json:"semitones"`
	Label     string `json:"label"`
	Name      string `json:"name"`
	Quality   string `json:"quality"`
	Consonant bool   `json:"consonant"`
	Inversion int    `json:"inversion"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
