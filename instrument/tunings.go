package instrument

import (
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// standardTunings lists open strings low to high. Standard guitar is
// E2(40) A2(45) D3(50) G3(55) B3(59) E4(64).
var standardTunings = map[string][]pitch.Note{
	"standard": {
		pitch.MustParse("E2"), pitch.MustParse("A2"), pitch.MustParse("D3"),
		pitch.MustParse("G3"), pitch.MustParse("B3"), pitch.MustParse("E4"),
	},
	"drop_d": {
		pitch.MustParse("D2"), pitch.MustParse("A2"), pitch.MustParse("D3"),
		pitch.MustParse("G3"), pitch.MustParse("B3"), pitch.MustParse("E4"),
	},
	"open_g": {
		pitch.MustParse("D2"), pitch.MustParse("G2"), pitch.MustParse("D3"),
		pitch.MustParse("G3"), pitch.MustParse("B3"), pitch.MustParse("D4"),
	},
	"dadgad": {
		pitch.MustParse("D2"), pitch.MustParse("A2"), pitch.MustParse("D3"),
		pitch.MustParse("G3"), pitch.MustParse("A3"), pitch.MustParse("D4"),
	},
	"seven_string": {
		pitch.MustParse("B1"), pitch.MustParse("E2"), pitch.MustParse("A2"),
		pitch.MustParse("D3"), pitch.MustParse("G3"), pitch.MustParse("B3"),
		pitch.MustParse("E4"),
	},
	"bass": {
		pitch.MustParse("E1"), pitch.MustParse("A1"),
		pitch.MustParse("D2"), pitch.MustParse("G2"),
	},
	"ukulele": {
		pitch.MustParse("G4"), pitch.MustParse("C4"),
		pitch.MustParse("E4"), pitch.MustParse("A4"),
	},
}

// Tuning returns a copy of a built-in tuning's open strings, or false on an
// unknown name.
func Tuning(name string) ([]pitch.Note, bool) {
	t, ok := standardTunings[name]
	if !ok {
		return nil, false
	}
	return append([]pitch.Note{}, t...), true
}

func TuningNames() []string {
	return util.SortedKeys(standardTunings)
}
