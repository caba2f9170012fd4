package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/pkg/database"
)

func newContentFixture(t *testing.T) (*repository.MemoryStore, *ContentService) {
	t.Helper()
	store := repository.NewMemoryStore()
	store.SeedContent(database.DefaultContent())
	return store, NewContentService(store.Contents(), nil)
}

func TestContentListFiltersByType(t *testing.T) {
	_, svc := newContentFixture(t)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 11)

	videos, err := svc.List("video")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "video", videos[0].Type)

	// The type filter ignores case.
	videos, err = svc.List("VIDEO")
	require.NoError(t, err)
	assert.Len(t, videos, 1)
}

func TestPrioritizedOrdersByStylePreference(t *testing.T) {
	_, svc := newContentFixture(t)

	partition, err := svc.Prioritized(context.Background(), model.Visual)
	require.NoError(t, err)

	require.Len(t, partition.Recommended, 3)
	assert.Equal(t, "video", partition.Recommended[0].Type)
	assert.Equal(t, "diagram", partition.Recommended[1].Type)
	assert.Equal(t, "visual_quiz", partition.Recommended[2].Type)
	assert.Len(t, partition.Other, 8)
	for _, rec := range partition.Recommended {
		assert.NotEmpty(t, rec.RecommendationReason)
	}
}

// End-to-end over the services: the questionnaire decides the style and the
// style decides the recommendation order.
func TestQuestionnaireDrivesRecommendations(t *testing.T) {
	store, contentSvc := newContentFixture(t)

	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	varkSvc := NewVarkService(store.Varks(), store.Users())
	result, err := varkSvc.Submit(user, allDResponses())
	require.NoError(t, err)
	require.Equal(t, model.Visual, result.LearningStyle)

	partition, err := contentSvc.Prioritized(context.Background(), user.LearningStyle)
	require.NoError(t, err)
	require.NotEmpty(t, partition.Recommended)
	assert.Equal(t, "video", partition.Recommended[0].Type)
}
