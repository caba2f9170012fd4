package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/adaptive"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

func newProgressFixture(t *testing.T) (*ProgressService, *model.User) {
	t.Helper()
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	svc := NewProgressService(store.Progress(), repository.NewGraphCurriculumRepository(nil))
	return svc, user
}

func TestSubmitPlacementSeedsUnlocks(t *testing.T) {
	svc, user := newProgressFixture(t)

	// All five placement answers correct: theta 5.0 opens everything the
	// thresholds allow.
	answers := []adaptive.PlacementAnswer{
		{QuestionIndex: 0, ChosenOption: 0},
		{QuestionIndex: 1, ChosenOption: 1},
		{QuestionIndex: 2, ChosenOption: 2},
		{QuestionIndex: 3, ChosenOption: 1},
		{QuestionIndex: 4, ChosenOption: 2},
	}

	outcome, err := svc.SubmitPlacement(user, answers)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, outcome.Theta, 1e-9)
	assert.ElementsMatch(t, []string{"cs101", "math101", "cs102", "ds101"}, outcome.UnlockedNodes)
}

func TestSubmitPlacementNeverShrinksUnlocks(t *testing.T) {
	svc, user := newProgressFixture(t)

	high := []adaptive.PlacementAnswer{
		{QuestionIndex: 0, ChosenOption: 0},
		{QuestionIndex: 1, ChosenOption: 1},
		{QuestionIndex: 2, ChosenOption: 2},
	}
	_, err := svc.SubmitPlacement(user, high)
	require.NoError(t, err)

	// A worse retake lowers theta but keeps every unlocked node.
	low := []adaptive.PlacementAnswer{{QuestionIndex: 0, ChosenOption: 3}}
	outcome, err := svc.SubmitPlacement(user, low)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, outcome.Theta, 1e-9)
	assert.Contains(t, outcome.UnlockedNodes, "cs102")
}

func TestCompleteNodeUnlocksDirectDependents(t *testing.T) {
	svc, user := newProgressFixture(t)

	progress, err := svc.CompleteNode(context.Background(), user, "cs102")
	require.NoError(t, err)

	assert.Contains(t, progress.CompletedNodes, "cs102")
	assert.Contains(t, progress.UnlockedNodes, "ds101")
	assert.Contains(t, progress.UnlockedNodes, "db101")
	// algo201 needs ds101 itself completed first.
	assert.NotContains(t, progress.UnlockedNodes, "algo201")
}

func TestCompleteNodeUnknownNode(t *testing.T) {
	svc, user := newProgressFixture(t)

	_, err := svc.CompleteNode(context.Background(), user, "nope")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCompleteNodeIsIdempotent(t *testing.T) {
	svc, user := newProgressFixture(t)

	first, err := svc.CompleteNode(context.Background(), user, "cs101")
	require.NoError(t, err)
	second, err := svc.CompleteNode(context.Background(), user, "cs101")
	require.NoError(t, err)

	assert.Equal(t, first.CompletedNodes, second.CompletedNodes)
	assert.Equal(t, first.UnlockedNodes, second.UnlockedNodes)
}

func TestGetInitializesRoots(t *testing.T) {
	svc, user := newProgressFixture(t)

	progress, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, progress.CompletedNodes)
	assert.ElementsMatch(t, []string{"cs101", "math101"}, progress.UnlockedNodes)
}
