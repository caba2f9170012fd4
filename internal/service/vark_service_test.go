package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
)

func allDResponses() map[string]string {
	responses := make(map[string]string, 16)
	for i := 1; i <= 16; i++ {
		responses[fmt.Sprintf("q%d", i)] = "d"
	}
	return responses
}

func TestVarkSubmitClassifiesAndUpdatesProfile(t *testing.T) {
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	svc := NewVarkService(store.Varks(), store.Users())

	result, err := svc.Submit(user, allDResponses())
	require.NoError(t, err)
	assert.Equal(t, model.Visual, result.LearningStyle)
	assert.Equal(t, 7, result.Scores.Visual)

	stored, err := store.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.VarkCompleted)
	assert.Equal(t, model.Visual, stored.LearningStyle)
}

func TestVarkSubmitOverwritesPreviousResponse(t *testing.T) {
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	svc := NewVarkService(store.Varks(), store.Users())

	_, err := svc.Submit(user, allDResponses())
	require.NoError(t, err)

	// All 'a' answers produce a different tally.
	responses := make(map[string]string, 16)
	for i := 1; i <= 16; i++ {
		responses[fmt.Sprintf("q%d", i)] = "a"
	}
	_, err = svc.Submit(user, responses)
	require.NoError(t, err)

	record, err := store.Varks().FindByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, "a", record.Responses["q1"])
	assert.NotEqual(t, 7, record.VisualScore)
}

func TestVarkSubmitRejectsIncomplete(t *testing.T) {
	store := repository.NewMemoryStore()
	user := &model.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, store.Users().Create(user))

	svc := NewVarkService(store.Varks(), store.Users())

	responses := allDResponses()
	delete(responses, "q9")

	_, err := svc.Submit(user, responses)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "q9")

	stored, err := store.Users().FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.VarkCompleted)
}
