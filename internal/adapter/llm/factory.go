package llm

import (
	"context"
	"log"
)

// ModeMock selects the canned-response client.
const ModeMock = "MOCK"

// NewClient creates a generation client for the given mode. Mode MOCK
// returns the mock client; anything else returns the Gemini client.
func NewClient(ctx context.Context, mode, apiKey, model string, rps float64, burst int) (Client, error) {
	if mode == ModeMock {
		log.Println("mode MOCK detected, using mock generation client")
		return NewMockClient(), nil
	}
	return NewGeminiClient(ctx, apiKey, model, rps, burst)
}
