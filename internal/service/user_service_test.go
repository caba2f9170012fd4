package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
)

func TestLeaderboardOrdersByXP(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewUserService(store.Users(), store.QuizAttempts(), store.WeakAreas(), nil)

	for i, xp := range []int{30, 90, 10, 50} {
		user := &model.User{
			Name:     fmt.Sprintf("user-%d", i),
			Email:    fmt.Sprintf("u%d@example.com", i),
			Password: "x",
			XP:       xp,
		}
		require.NoError(t, store.Users().Create(user))
	}

	entries, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, 90, entries[0].XP)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 10, entries[3].XP)
	assert.Equal(t, 4, entries[3].Rank)
}

func TestLeaderboardCapsAtTen(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewUserService(store.Users(), store.QuizAttempts(), store.WeakAreas(), nil)

	for i := 0; i < 15; i++ {
		user := &model.User{
			Name:     fmt.Sprintf("user-%02d", i),
			Email:    fmt.Sprintf("u%d@example.com", i),
			Password: "x",
			XP:       i,
		}
		require.NoError(t, store.Users().Create(user))
	}

	entries, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestInsightsAggregation(t *testing.T) {
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x", XP: 20}
	require.NoError(t, store.Users().Create(user))

	quizSvc := NewQuizService(store.QuizAttempts(), store.WeakAreas(), store.Users(), nil)
	_, err := quizSvc.CompleteQuiz(user, &QuizCompletion{
		CourseName: "cs", TopicID: "cs101", Score: 4, TotalQuestions: 5,
		WrongQuestions: []WrongQuestion{{QuestionText: "q", TopicLabel: "l"}},
	})
	require.NoError(t, err)
	_, err = quizSvc.CompleteQuiz(user, &QuizCompletion{
		CourseName: "math", TopicID: "math101", Score: 2, TotalQuestions: 5,
	})
	require.NoError(t, err)

	svc := NewUserService(store.Users(), store.QuizAttempts(), store.WeakAreas(), nil)
	insights, err := svc.Insights(user)
	require.NoError(t, err)

	assert.Equal(t, 2, insights.TotalQuizzes)
	assert.Equal(t, 2, insights.CoursesTouched)
	assert.InDelta(t, 60.0, insights.AverageScore, 1e-9)

	require.Len(t, insights.WeakTopics, 1)
	assert.Equal(t, "cs101", insights.WeakTopics[0].TopicID)
	assert.Equal(t, 1, insights.WeakTopics[0].Questions)
	assert.Equal(t, 1, insights.WeakTopics[0].WrongTotal)
}

func TestReviewWeakAreaChecksOwnership(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewUserService(store.Users(), store.QuizAttempts(), store.WeakAreas(), nil)

	area := &model.WeakArea{
		UserEmail:    "ada@example.com",
		CourseName:   "cs",
		TopicID:      "cs101",
		QuestionText: "q",
		WrongCount:   1,
	}
	require.NoError(t, store.WeakAreas().Save(area))

	_, err := svc.ReviewWeakArea("other@example.com", area.ID)
	assert.Error(t, err)

	reviewed, err := svc.ReviewWeakArea("ada@example.com", area.ID)
	require.NoError(t, err)
	assert.True(t, reviewed.Reviewed)
}
