package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

func newQuestFixture(t *testing.T) (*repository.MemoryStore, *QuestService, *model.User) {
	t.Helper()
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))
	return store, NewQuestService(store.Quests(), store.Users()), user
}

func TestQuestListInstantiatesTemplates(t *testing.T) {
	_, svc, user := newQuestFixture(t)

	quests, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, quests, 5)
	for _, q := range quests {
		assert.Equal(t, 0, q.Progress)
		assert.False(t, q.Completed)
	}

	// Listing again must not duplicate.
	quests, err = svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, quests, 5)
}

func TestQuestAdvanceClampsAndPaysOnce(t *testing.T) {
	store, svc, user := newQuestFixture(t)

	quest, err := svc.Advance(user, "know-thyself", 250)
	require.NoError(t, err)
	assert.Equal(t, 100, quest.Progress)
	assert.True(t, quest.Completed)
	assert.True(t, quest.Rewarded)
	assert.Equal(t, 30, user.XP)

	// A completed quest ignores further progress and never pays again.
	quest, err = svc.Advance(user, "know-thyself", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, quest.Progress)

	stored, err := store.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stored.XP)
}

func TestQuestAdvancePartialProgress(t *testing.T) {
	_, svc, user := newQuestFixture(t)

	quest, err := svc.Advance(user, "quiz-streak", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, quest.Progress)
	assert.False(t, quest.Completed)
	assert.Equal(t, 0, user.XP)
}

func TestQuestAdvanceUnknownSlug(t *testing.T) {
	_, svc, user := newQuestFixture(t)

	_, err := svc.Advance(user, "no-such-quest", 10)
	assert.ErrorIs(t, err, util.ErrQuestNotFound)
}

func TestQuestUpdateProgressSetsAbsoluteValue(t *testing.T) {
	_, svc, user := newQuestFixture(t)

	quests, err := svc.List(user.ID)
	require.NoError(t, err)

	var streak model.Quest
	for _, q := range quests {
		if q.Slug == "quiz-streak" {
			streak = q
		}
	}
	require.NotZero(t, streak.ID)

	quest, err := svc.UpdateProgress(user, streak.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, quest.Progress)

	// Absolute, not additive.
	quest, err = svc.UpdateProgress(user, streak.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, quest.Progress)
	assert.False(t, quest.Completed)
}

func TestQuestUpdateProgressRejectsForeignQuest(t *testing.T) {
	store, svc, user := newQuestFixture(t)

	other := &model.User{Name: "Eve", Email: "eve@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(other))
	quests, err := svc.List(other.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(user, quests[0].ID, 50)
	assert.ErrorIs(t, err, util.ErrQuestNotFound)

	_, err = svc.UpdateProgress(user, 9999, 50)
	assert.ErrorIs(t, err, util.ErrQuestNotFound)
}
