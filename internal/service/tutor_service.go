package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"learnpath_backend/internal/config"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"
)

// TutorFallback is returned whenever the provider errors; the tutor never
// surfaces provider failures to the learner.
const TutorFallback = "I'm having trouble thinking right now. Please try again in a moment!"

const tutorSystemPrompt = "You are a friendly programming tutor for beginners. " +
	"Explain concepts simply, prefer short examples over long theory, and " +
	"encourage the learner. Keep answers under 300 words."

// TutorProvider generates one completion for one prompt. Implementations
// make a single attempt; retries and fallbacks are the service's job.
type TutorProvider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiProvider calls the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, cfg config.AIConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: tutorSystemPrompt}},
		},
	}
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

// OpenAIProvider speaks the chat-completions wire format against any
// compatible endpoint.
type OpenAIProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewOpenAIProvider(cfg config.AIConfig) *OpenAIProvider {
	return &OpenAIProvider{
		BaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *OpenAIProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model": p.Model,
		"messages": []chatMessage{
			{Role: "system", Content: tutorSystemPrompt},
			{Role: "user", Content: prompt},
		},
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("chat completion error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}

type TutorService struct {
	Provider TutorProvider
}

// NewTutorService picks a provider from config. No provider configured
// means every question gets the fallback answer, which keeps the endpoint
// alive in development.
func NewTutorService(ctx context.Context, cfg config.AIConfig) *TutorService {
	var provider TutorProvider
	switch cfg.Provider {
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg)
		if err != nil {
			logger.Log.Warn("gemini provider unavailable", zap.Error(err))
		} else {
			provider = p
		}
	case "openai":
		provider = NewOpenAIProvider(cfg)
	default:
		logger.Log.Info("no tutor provider configured")
	}
	return &TutorService{Provider: provider}
}

// Ask makes a single attempt against the provider and falls back to a
// fixed answer on any error.
func (s *TutorService) Ask(ctx context.Context, question string) string {
	if s.Provider == nil {
		monitoring.TutorFallbacks.Inc()
		return TutorFallback
	}

	answer, err := s.Provider.GenerateText(ctx, question)
	if err != nil {
		logger.Log.Warn("tutor generation failed", zap.Error(err))
		monitoring.TutorFallbacks.Inc()
		return TutorFallback
	}
	return answer
}

// Feedback builds an encouragement prompt from a finished quiz and asks
// the tutor for a short personalized note.
func (s *TutorService) Feedback(ctx context.Context, topicLabel string, score, total int) string {
	prompt := fmt.Sprintf(
		"A learner just scored %d out of %d on a quiz about %q. "+
			"Write two or three sentences of feedback: acknowledge the result, "+
			"name one thing to review if they missed questions, and encourage them.",
		score, total, topicLabel)
	return s.Ask(ctx, prompt)
}
