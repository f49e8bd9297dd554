package pitch

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/fretwise/util"
)

// Interval is a signed semitone count. Negative values are descending.
type Interval int

const Octave Interval = 12

type Quality string

const (
	QualityPerfect    Quality = "perfect"
	QualityMajor      Quality = "major"
	QualityMinor      Quality = "minor"
	QualityAugmented  Quality = "augmented"
	QualityDiminished Quality = "diminished"
)

var simpleLabels = [12]string{
	"R", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♭6", "6", "♭7", "7",
}

var simpleNames = [12]string{
	"Unison", "Minor Second", "Major Second", "Minor Third", "Major Third",
	"Perfect Fourth", "Tritone", "Perfect Fifth", "Minor Sixth", "Major Sixth",
	"Minor Seventh", "Major Seventh",
}

// compound degree tables for semitones 12..24 (9th through 15th register)
var compoundLabels = [13]string{
	"O", "♭9", "9", "♭10", "10", "11", "♭12", "12", "♭13", "13", "♭14", "14", "15",
}

var compoundNames = [13]string{
	"Octave", "Flat Ninth", "Ninth", "Flat Tenth", "Tenth", "Eleventh",
	"Flat Twelfth", "Twelfth", "Flat Thirteenth", "Thirteenth",
	"Flat Fourteenth", "Fourteenth", "Fifteenth",
}

func (i Interval) Semitones() int {
	return int(i)
}

// PitchClass reduces the interval to 0..11, so octave-equivalent intervals
// (0 and 12, -5 and 7) land on the same value.
func (i Interval) PitchClass() int {
	return util.PosMod(int(i), 12)
}

// Label is the short display form: "5", "♭7", "9", "O3". Descending intervals
// carry a leading minus.
func (i Interval) Label() string {
	if i < 0 {
		return "-" + (-i).Label()
	}
	n := int(i)
	switch {
	case n <= 11:
		return simpleLabels[n]
	case n <= 24:
		return compoundLabels[n-12]
	case n%12 == 0:
		return "O" + strconv.Itoa(n/12)
	default:
		return fmt.Sprintf("%s+%doct", simpleLabels[n%12], n/12)
	}
}

func (i Interval) Name() string {
	if i < 0 {
		return "Descending " + (-i).Name()
	}
	n := int(i)
	switch {
	case n <= 11:
		return simpleNames[n]
	case n <= 24:
		return compoundNames[n-12]
	case n%12 == 0:
		return strconv.Itoa(n/12) + " Octaves"
	default:
		return fmt.Sprintf("%s + %d Octaves", simpleNames[n%12], n/12)
	}
}

func (i Interval) Quality() Quality {
	switch i.PitchClass() {
	case 0, 5, 7:
		return QualityPerfect
	case 2, 4, 9, 11:
		return QualityMajor
	case 1, 3, 8, 10:
		return QualityMinor
	default: // the tritone
		return QualityDiminished
	}
}

// IsConsonant reports whether the interval class is traditionally consonant:
// unison/octave, thirds, fifth, sixths.
func (i Interval) IsConsonant() bool {
	switch i.PitchClass() {
	case 0, 3, 4, 7, 8, 9:
		return true
	}
	return false
}

// Inverted flips the interval class within the octave. The unison inverts to
// the octave rather than to itself.
func (i Interval) Inverted() Interval {
	pc := i.PitchClass()
	if pc == 0 {
		return Octave
	}
	return Interval(12 - pc)
}

func (i Interval) Add(other Interval) Interval {
	return i + other
}

// Diff returns the absolute distance between two intervals. Operand order
// never matters; this is the documented contract, not an oversight.
func (i Interval) Diff(other Interval) Interval {
	return util.Abs(i - other)
}
