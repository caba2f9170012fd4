package adaptive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
)

func fixtureItems() []model.ContentItem {
	types := []string{"video", "text", "audio", "quiz", "diagram", "exercise", "coding", "pdf", "cheatsheet", "discussion", "visual_quiz"}
	items := make([]model.ContentItem, 0, len(types)+1)
	for _, t := range types {
		items = append(items, model.ContentItem{Title: t + " item", Type: t})
	}
	// Case variation must still match.
	items = append(items, model.ContentItem{Title: "shouting video", Type: "VIDEO"})
	return items
}

func TestPartitionCompleteness(t *testing.T) {
	items := fixtureItems()
	for _, style := range []string{"Visual", "Aural", "Auditory", "ReadWrite", "Kinesthetic", "Multimodal", "martian"} {
		p := PartitionContent(style, items)
		assert.Equalf(t, len(items), len(p.Recommended)+len(p.Other), "style %s loses items", style)

		preferred := preferences[NormalizeStyle(style)]
		for _, item := range p.Recommended {
			assert.Containsf(t, preferred, strings.ToLower(item.Type), "style %s recommended a non-preferred type %s", style, item.Type)
		}
	}
}

func TestPartitionVisualOrdering(t *testing.T) {
	p := PartitionContent("Visual", fixtureItems())

	require.Len(t, p.Recommended, 4) // video, VIDEO, diagram, visual_quiz
	assert.Equal(t, "video", strings.ToLower(p.Recommended[0].Type))
	assert.Equal(t, "video", strings.ToLower(p.Recommended[1].Type))
	assert.Equal(t, "diagram", strings.ToLower(p.Recommended[2].Type))
	assert.Equal(t, "visual_quiz", strings.ToLower(p.Recommended[3].Type))

	// Stable tie-break: original order within the same type.
	assert.Equal(t, "video item", p.Recommended[0].Title)
	assert.Equal(t, "shouting video", p.Recommended[1].Title)
}

func TestMultimodalIsSuperset(t *testing.T) {
	p := PartitionContent("Multimodal", fixtureItems())
	assert.Empty(t, p.Other)
}

func TestUnknownStyleFallsBackToMultimodal(t *testing.T) {
	items := fixtureItems()
	unknown := PartitionContent("no-such-style", items)
	multimodal := PartitionContent("Multimodal", items)
	assert.Equal(t, multimodal, unknown)
}

func TestRecommendationReasonDeterministic(t *testing.T) {
	items := fixtureItems()
	p1 := PartitionContent("Kinesthetic", items)
	p2 := PartitionContent("Kinesthetic", items)
	require.Equal(t, p1, p2)

	for _, item := range p1.Recommended {
		assert.Contains(t, item.RecommendationReason, "Kinesthetic")
		assert.NotEmpty(t, item.RecommendationReason)
	}
}

func TestAuralAlias(t *testing.T) {
	items := fixtureItems()
	assert.Equal(t, PartitionContent("Aural", items), PartitionContent("Auditory", items))
}
