package utils

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface on Google's
// Gemini models. The genai client is created lazily so that a missing key is
// reported as a configuration failure at call time, like the OpenAI client.
type GeminiCompletionClient struct {
	mu     sync.Mutex
	client *genai.Client
	apiKey string
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) *GeminiCompletionClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiCompletionClient{
		apiKey: apiKey,
		model:  model,
	}
}

func (c *GeminiCompletionClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrProviderNotConfigured
	}

	c.mu.Lock()
	if c.client == nil {
		client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
		if err != nil {
			c.mu.Unlock()
			return "", fmt.Errorf("failed to create Gemini client: %w", err)
		}
		c.client = client
	}
	c.mu.Unlock()

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemDirective)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if content == "" {
		return "", ErrEmptyCompletion
	}
	log.Printf("Gemini completion returned %d bytes", len(content))
	return content, nil
}
