package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalLabels(t *testing.T) {
	cases := []struct {
		semitones int
		label     string
	}{
		{0, "R"},
		{2, "2"},
		{3, "♭3"},
		{6, "♭5"},
		{7, "5"},
		{10, "♭7"},
		{11, "7"},
		{12, "O"},
		{13, "♭9"},
		{14, "9"},
		{17, "11"},
		{21, "13"},
		{24, "15"},
		{26, "2+2oct"},
		{31, "5+2oct"},
		{36, "O3"},
		{-7, "-5"},
		{-14, "-9"},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v", c.semitones), func(t *testing.T) {
			assert.Equal(t, c.label, Interval(c.semitones).Label())
		})
	}
}

func TestIntervalNames(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Unison", Interval(0).Name())
	assert.Equal("Minor Third", Interval(3).Name())
	assert.Equal("Tritone", Interval(6).Name())
	assert.Equal("Perfect Fifth", Interval(7).Name())
	assert.Equal("Octave", Interval(12).Name())
	assert.Equal("Ninth", Interval(14).Name())
	assert.Equal("Fifteenth", Interval(24).Name())
	assert.Equal("Descending Perfect Fifth", Interval(-7).Name())
}

func TestIntervalQuality(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []int{0, 5, 7, 12, 19, 24} {
		assert.Equal(QualityPerfect, Interval(s).Quality(), s)
	}
	for _, s := range []int{2, 4, 9, 11, 14, 16} {
		assert.Equal(QualityMajor, Interval(s).Quality(), s)
	}
	for _, s := range []int{1, 3, 8, 10, 13, 15} {
		assert.Equal(QualityMinor, Interval(s).Quality(), s)
	}
	for _, s := range []int{6, 18} {
		assert.Equal(QualityDiminished, Interval(s).Quality(), s)
	}
}

func TestIntervalConsonance(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []int{0, 3, 4, 7, 8, 9, 12, 15, 16} {
		assert.True(Interval(s).IsConsonant(), s)
	}
	for _, s := range []int{1, 2, 5, 6, 10, 11, 13} {
		assert.False(Interval(s).IsConsonant(), s)
	}
}

func TestIntervalInversion(t *testing.T) {
	assert := assert.New(t)

	// the unison inverts to the octave by contract
	assert.Equal(Octave, Interval(0).Inverted())
	assert.Equal(Octave, Interval(12).Inverted())
	assert.Equal(Interval(5), Interval(7).Inverted())
	assert.Equal(Interval(8), Interval(4).Inverted())
	assert.Equal(Interval(5), Interval(19).Inverted())
	assert.Equal(Interval(5), Interval(-5).Inverted())
}

func TestIntervalArithmetic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Interval(11), Interval(4).Add(7))
	assert.Equal(Interval(-3), Interval(4).Add(-7))

	// subtraction returns the absolute distance no matter the operand order
	for a := Interval(-24); a <= 24; a++ {
		for b := Interval(-24); b <= 24; b++ {
			assert.Equal(a.Diff(b), b.Diff(a))
			assert.GreaterOrEqual(int(a.Diff(b)), 0)
		}
	}
	assert.Equal(Interval(3), Interval(7).Diff(10))
	assert.Equal(Interval(3), Interval(10).Diff(7))
}

func TestIntervalPitchClass(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Interval(12).PitchClass())
	assert.Equal(7, Interval(-5).PitchClass())
	assert.Equal(2, Interval(14).PitchClass())
}
