package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
)

func newQuizFixture(t *testing.T) (*repository.MemoryStore, *QuizService, *model.User) {
	t.Helper()
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	svc := NewQuizService(store.QuizAttempts(), store.WeakAreas(), store.Users(), nil)
	return store, svc, user
}

func TestCompleteQuizAwardsXPOnce(t *testing.T) {
	store, svc, user := newQuizFixture(t)

	completion := &QuizCompletion{
		CourseName:     "cs",
		TopicID:        "cs101",
		Score:          4,
		TotalQuestions: 5,
	}

	result, err := svc.CompleteQuiz(user, completion)
	require.NoError(t, err)
	assert.True(t, result.XPGained)
	assert.Equal(t, 10, result.XPAmount)
	assert.Equal(t, 10, result.TotalXP)

	// Same topic again: score updates, no second grant.
	completion.Score = 5
	result, err = svc.CompleteQuiz(user, completion)
	require.NoError(t, err)
	assert.False(t, result.XPGained)
	assert.Equal(t, 0, result.XPAmount)
	assert.Equal(t, 10, result.TotalXP)

	stored, err := store.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.XP)

	attempt, err := store.QuizAttempts().FindByUserCourseTopic(user.ID, "cs", "cs101")
	require.NoError(t, err)
	assert.Equal(t, 5, attempt.Score)
	assert.True(t, attempt.XPAwarded)
}

func TestCompleteQuizDifferentTopicsEachAward(t *testing.T) {
	_, svc, user := newQuizFixture(t)

	for _, topic := range []string{"cs101", "cs102", "ds101"} {
		_, err := svc.CompleteQuiz(user, &QuizCompletion{
			CourseName: "cs", TopicID: topic, Score: 3, TotalQuestions: 5,
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 30, user.XP)
}

func TestCompleteQuizRecordsWeakAreas(t *testing.T) {
	store, svc, user := newQuizFixture(t)

	completion := &QuizCompletion{
		CourseName:     "cs",
		TopicID:        "cs101",
		Score:          3,
		TotalQuestions: 5,
		WrongQuestions: []WrongQuestion{
			{QuestionText: "What is a pointer?", TopicLabel: "Memory"},
		},
	}

	_, err := svc.CompleteQuiz(user, completion)
	require.NoError(t, err)

	areas, err := store.WeakAreas().ListByEmail(user.Email)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, 1, areas[0].WrongCount)

	// Missing the same question again bumps the count and clears review.
	_, err = svc.CompleteQuiz(user, completion)
	require.NoError(t, err)

	areas, err = store.WeakAreas().ListByEmail(user.Email)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, 2, areas[0].WrongCount)
	assert.False(t, areas[0].Reviewed)
}

func TestCompleteQuizAdvancesQuests(t *testing.T) {
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	questSvc := NewQuestService(store.Quests(), store.Users())
	svc := NewQuizService(store.QuizAttempts(), store.WeakAreas(), store.Users(), questSvc)

	_, err := svc.CompleteQuiz(user, &QuizCompletion{
		CourseName: "cs", TopicID: "cs101", Score: 5, TotalQuestions: 5,
	})
	require.NoError(t, err)

	quest, err := store.Quests().FindByUserSlug(user.ID, "first-steps")
	require.NoError(t, err)
	assert.True(t, quest.Completed)
	assert.True(t, quest.Rewarded)

	// 10 topic XP plus the 20 XP first-steps reward.
	stored, err := store.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stored.XP)
}
