package ai

import (
	"context"
	"fmt"
)

// UnavailableGenerator stands in for the Vertex AI client when the process
// starts without Google Cloud credentials. Every call fails with the reason
// recorded at startup, so the AI routes answer with a server error instead of
// the whole process refusing to boot.
type UnavailableGenerator struct {
	reason error
}

// NewUnavailableGenerator records why the real client could not be built.
func NewUnavailableGenerator(reason error) *UnavailableGenerator {
	return &UnavailableGenerator{reason: reason}
}

func (g *UnavailableGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	return "", fmt.Errorf("ai client unavailable: %w", g.reason)
}

func (g *UnavailableGenerator) Chat(ctx context.Context, messages []ChatMessage, opts GenerateOptions) (string, error) {
	return "", fmt.Errorf("ai client unavailable: %w", g.reason)
}
