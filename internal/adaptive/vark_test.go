package adaptive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
)

func allSameLetter(letter string) map[string]string {
	responses := make(map[string]string, VarkQuestionCount)
	for i := 1; i <= VarkQuestionCount; i++ {
		responses[fmt.Sprintf("q%d", i)] = letter
	}
	return responses
}

func TestClassifyVarkAllD(t *testing.T) {
	scores, style := ClassifyVark(allSameLetter("d"))

	assert.Equal(t, model.Visual, style)
	assert.Equal(t, 7, scores.Visual)
	assert.Equal(t, 3, scores.Aural)
	assert.Equal(t, 3, scores.ReadWrite)
	assert.Equal(t, 3, scores.Kinesthetic)
}

func TestClassifyVarkTieIsMultimodal(t *testing.T) {
	// 4/4/4/4 split built from the mapping table.
	responses := map[string]string{
		"q1": "d", "q2": "d", "q3": "d", "q4": "d", // Visual
		"q8": "d", "q9": "d", "q10": "d", "q11": "b", // Aural
		"q12": "d", "q13": "d", "q5": "a", "q6": "b", // ReadWrite
		"q14": "d", "q15": "d", "q16": "d", "q7": "c", // Kinesthetic
	}

	scores, style := ClassifyVark(responses)

	require.Equal(t, VarkScores{Visual: 4, Aural: 4, ReadWrite: 4, Kinesthetic: 4}, scores)
	assert.Equal(t, model.Multimodal, style)
}

func TestClassifyVarkStrictMax(t *testing.T) {
	// Any unique maximum wins outright.
	responses := allSameLetter("d")
	responses["q8"] = "a" // Visual 8, Aural 2
	_, style := ClassifyVark(responses)
	assert.Equal(t, model.Visual, style)
}

func TestValidateVarkResponses(t *testing.T) {
	err := ValidateVarkResponses(allSameLetter("a"))
	assert.NoError(t, err)

	short := allSameLetter("a")
	delete(short, "q16")
	err = ValidateVarkResponses(short)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q16")

	bad := allSameLetter("a")
	bad["q3"] = "e"
	err = ValidateVarkResponses(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q3")
}
