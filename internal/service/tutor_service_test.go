package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	answer string
	err    error
	prompt string
}

func (s *stubProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func TestTutorAskPassesThroughAnswer(t *testing.T) {
	svc := &TutorService{Provider: &stubProvider{answer: "Use a for loop."}}

	answer := svc.Ask(context.Background(), "How do I repeat something?")
	assert.Equal(t, "Use a for loop.", answer)
}

func TestTutorAskFallsBackOnError(t *testing.T) {
	svc := &TutorService{Provider: &stubProvider{err: errors.New("rate limited")}}

	answer := svc.Ask(context.Background(), "anything")
	assert.Equal(t, TutorFallback, answer)
}

func TestTutorAskFallsBackWithoutProvider(t *testing.T) {
	svc := &TutorService{}

	answer := svc.Ask(context.Background(), "anything")
	assert.Equal(t, TutorFallback, answer)
}

func TestTutorFeedbackPromptCarriesOutcome(t *testing.T) {
	stub := &stubProvider{answer: "Nice work!"}
	svc := &TutorService{Provider: stub}

	feedback := svc.Feedback(context.Background(), "Data Structures", 3, 5)
	assert.Equal(t, "Nice work!", feedback)
	assert.Contains(t, stub.prompt, "3 out of 5")
	assert.Contains(t, stub.prompt, "Data Structures")
}
