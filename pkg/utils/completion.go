package utils

import (
	"context"
	"fmt"
	"strings"
)

// SystemDirective pins the model to machine-readable output. Both providers
// send it alongside every itinerary prompt.
const SystemDirective = "You are a travel planning assistant that outputs only valid JSON objects suitable for an API response."

type CompletionClientInterface interface {
	// GenerateItinerary sends the rendered instruction to the model and
	// returns the raw text of the first completion choice.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// NewCompletionClient creates an OpenAI or Gemini client based on config.
// A missing API key is not an error here; clients report it per request so a
// misconfigured server still boots and surfaces the problem on use.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
