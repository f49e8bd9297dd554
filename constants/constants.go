package constants

import (
	"os"
	"strconv"
)

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetMaxFrets() int {
	if v := os.Getenv("MAX_FRETS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxFrets
}

// DefaultReferenceOctave anchors free interval selections when the caller
// hasn't picked any octave yet.
const DefaultReferenceOctave = 3

const DefaultMaxFrets = 12

// Difficulty span thresholds (frets or strings covered by one fingering).
const (
	EasySpan = 3
	HardSpan = 5
)
