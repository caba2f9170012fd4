package adaptive

import (
	"fmt"
	"sort"
	"strings"

	"learnpath_backend/internal/model"
)

// preferences orders content types per learning style, most preferred
// first. Unknown styles fall back to the Multimodal list.
var preferences = map[model.LearningStyle][]string{
	model.Visual:      {"video", "diagram", "visual_quiz"},
	model.Aural:       {"audio", "discussion", "video"},
	model.ReadWrite:   {"text", "pdf", "cheatsheet"},
	model.Kinesthetic: {"exercise", "coding", "quiz"},
	model.Multimodal:  {"video", "text", "audio", "quiz", "diagram", "exercise", "coding", "pdf", "cheatsheet", "discussion", "visual_quiz"},
}

var styleDescriptions = map[model.LearningStyle]string{
	model.Visual:      "you learn best from images, charts and spatial layouts",
	model.Aural:       "you learn best by listening and talking things through",
	model.ReadWrite:   "you learn best from reading and note-taking",
	model.Kinesthetic: "you learn best through hands-on practice",
	model.Multimodal:  "you learn well across several formats",
}

var typeDescriptions = map[string]string{
	"video":       "video lessons walk through concepts step by step",
	"diagram":     "diagrams lay out the structure at a glance",
	"visual_quiz": "visual quizzes test recognition of charts and figures",
	"audio":       "audio explanations you can listen to anywhere",
	"discussion":  "discussion threads let you talk the ideas through",
	"text":        "written articles cover the details in depth",
	"pdf":         "printable PDFs suit close reading",
	"cheatsheet":  "cheat sheets condense the key facts",
	"exercise":    "exercises make you apply the idea immediately",
	"coding":      "coding tasks give direct hands-on practice",
	"quiz":        "quizzes give active recall practice",
}

// RecommendedItem is a content item annotated with why it was picked.
type RecommendedItem struct {
	model.ContentItem
	RecommendationReason string `json:"recommendationReason"`
}

// ContentPartition splits a catalogue into the style's preferred items and
// the rest.
type ContentPartition struct {
	Recommended []RecommendedItem   `json:"recommended"`
	Other       []model.ContentItem `json:"other"`
}

// NormalizeStyle resolves the Aural/Auditory alias and maps anything
// unrecognized to Multimodal.
func NormalizeStyle(style string) model.LearningStyle {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case "visual":
		return model.Visual
	case "aural", "auditory":
		return model.Aural
	case "readwrite", "read/write", "read-write":
		return model.ReadWrite
	case "kinesthetic":
		return model.Kinesthetic
	default:
		return model.Multimodal
	}
}

// PartitionContent splits items into recommended vs other for the given
// style. Recommended items are ordered by the style's preference list,
// original order breaking ties; the partition is exhaustive and fully
// deterministic.
func PartitionContent(style string, items []model.ContentItem) ContentPartition {
	normalized := NormalizeStyle(style)
	preferred := preferences[normalized]

	rank := make(map[string]int, len(preferred))
	for i, t := range preferred {
		rank[t] = i
	}

	partition := ContentPartition{
		Recommended: []RecommendedItem{},
		Other:       []model.ContentItem{},
	}
	for _, item := range items {
		itemType := strings.ToLower(item.Type)
		if _, ok := rank[itemType]; ok {
			partition.Recommended = append(partition.Recommended, RecommendedItem{
				ContentItem:          item,
				RecommendationReason: recommendationReason(normalized, itemType),
			})
		} else {
			partition.Other = append(partition.Other, item)
		}
	}

	sort.SliceStable(partition.Recommended, func(i, j int) bool {
		return rank[strings.ToLower(partition.Recommended[i].Type)] < rank[strings.ToLower(partition.Recommended[j].Type)]
	})

	return partition
}

func recommendationReason(style model.LearningStyle, itemType string) string {
	return fmt.Sprintf("As a %s learner %s, and %s.", style, styleDescriptions[style], typeDescriptions[itemType])
}
