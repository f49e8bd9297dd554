package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerNormalize(t *testing.T) {
	assert := assert.New(t)

	id := "C4"
	assert.Equal([]string{"C4"}, Answer{Single: &id}.Normalize())
	assert.Equal([]string{"C4", "E4", "G4"}, Answer{Multiple: []string{"G4", "C4", "E4"}}.Normalize())

	// duplicates collapse, across both shapes
	assert.Equal([]string{"C4", "E4"}, Answer{Single: &id, Multiple: []string{"E4", "C4", "E4"}}.Normalize())

	assert.Empty(Answer{}.Normalize())
	empty := ""
	assert.Empty(Answer{Single: &empty}.Normalize())
}
