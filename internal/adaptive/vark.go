package adaptive

import (
	"fmt"

	"learnpath_backend/internal/model"
)

// VarkQuestionCount is the number of questionnaire answers a submission
// must carry; fewer is rejected at the endpoint.
const VarkQuestionCount = 16

// varkTable maps each question's answer letter to a style tag. The
// per-question permutations follow the questionnaire's option wording.
var varkTable = map[string]map[string]model.LearningStyle{
	"q1":  {"a": model.Aural, "b": model.ReadWrite, "c": model.Kinesthetic, "d": model.Visual},
	"q2":  {"a": model.Kinesthetic, "b": model.Aural, "c": model.ReadWrite, "d": model.Visual},
	"q3":  {"a": model.ReadWrite, "b": model.Kinesthetic, "c": model.Aural, "d": model.Visual},
	"q4":  {"a": model.Aural, "b": model.Kinesthetic, "c": model.ReadWrite, "d": model.Visual},
	"q5":  {"a": model.ReadWrite, "b": model.Aural, "c": model.Kinesthetic, "d": model.Visual},
	"q6":  {"a": model.Kinesthetic, "b": model.ReadWrite, "c": model.Aural, "d": model.Visual},
	"q7":  {"a": model.Aural, "b": model.ReadWrite, "c": model.Kinesthetic, "d": model.Visual},
	"q8":  {"a": model.Visual, "b": model.ReadWrite, "c": model.Kinesthetic, "d": model.Aural},
	"q9":  {"a": model.ReadWrite, "b": model.Visual, "c": model.Kinesthetic, "d": model.Aural},
	"q10": {"a": model.Kinesthetic, "b": model.Visual, "c": model.ReadWrite, "d": model.Aural},
	"q11": {"a": model.Visual, "b": model.Aural, "c": model.Kinesthetic, "d": model.ReadWrite},
	"q12": {"a": model.Aural, "b": model.Visual, "c": model.Kinesthetic, "d": model.ReadWrite},
	"q13": {"a": model.Kinesthetic, "b": model.Visual, "c": model.Aural, "d": model.ReadWrite},
	"q14": {"a": model.Visual, "b": model.Aural, "c": model.ReadWrite, "d": model.Kinesthetic},
	"q15": {"a": model.Aural, "b": model.ReadWrite, "c": model.Visual, "d": model.Kinesthetic},
	"q16": {"a": model.ReadWrite, "b": model.Visual, "c": model.Aural, "d": model.Kinesthetic},
}

// VarkScores are the four tallies of a classified submission.
type VarkScores struct {
	Visual      int `json:"visual"`
	Aural       int `json:"aural"`
	ReadWrite   int `json:"readWrite"`
	Kinesthetic int `json:"kinesthetic"`
}

// ValidateVarkResponses checks that every question q1..q16 is answered with
// a known letter.
func ValidateVarkResponses(responses map[string]string) error {
	for i := 1; i <= VarkQuestionCount; i++ {
		qid := fmt.Sprintf("q%d", i)
		letter, ok := responses[qid]
		if !ok {
			return fmt.Errorf("missing answer for %s", qid)
		}
		if _, ok := varkTable[qid][letter]; !ok {
			return fmt.Errorf("invalid answer %q for %s", letter, qid)
		}
	}
	return nil
}

// ClassifyVark tallies the answers and returns the dominant style. The
// dominant style must have a strictly greater count than every other tag;
// any tie at the maximum classifies as Multimodal.
func ClassifyVark(responses map[string]string) (VarkScores, model.LearningStyle) {
	var scores VarkScores
	for qid, letter := range responses {
		mapping, ok := varkTable[qid]
		if !ok {
			continue
		}
		switch mapping[letter] {
		case model.Visual:
			scores.Visual++
		case model.Aural:
			scores.Aural++
		case model.ReadWrite:
			scores.ReadWrite++
		case model.Kinesthetic:
			scores.Kinesthetic++
		}
	}

	tallies := []struct {
		style model.LearningStyle
		count int
	}{
		{model.Visual, scores.Visual},
		{model.Aural, scores.Aural},
		{model.ReadWrite, scores.ReadWrite},
		{model.Kinesthetic, scores.Kinesthetic},
	}

	best := tallies[0]
	tied := false
	for _, t := range tallies[1:] {
		if t.count > best.count {
			best = t
			tied = false
		} else if t.count == best.count {
			tied = true
		}
	}
	if tied {
		return scores, model.Multimodal
	}
	return scores, best.style
}
