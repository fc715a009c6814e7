package ai

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/user/pension-backend/apperror"
	"github.com/user/pension-backend/config"
)

// modelName is the Vertex AI model every call targets.
const modelName = "gemini-pro"

// TextGenerator is the slice of the generative model the Service needs.
// VertexGenerator satisfies it; tests substitute fakes.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
	Chat(ctx context.Context, messages []ChatMessage, opts GenerateOptions) (string, error)
}

// VertexGenerator is the production TextGenerator, backed by the Vertex AI
// SDK. Credentials come from the ambient Google Cloud environment.
type VertexGenerator struct {
	client *genai.Client
}

// NewVertexGenerator connects to Vertex AI for the configured project and
// location. A missing project id is a configuration error.
func NewVertexGenerator(ctx context.Context, cfg *config.AIConfig) (*VertexGenerator, error) {
	if cfg.Project == "" {
		return nil, apperror.NewConfigError("GOOGLE_CLOUD_PROJECT is required for the AI endpoints", nil)
	}

	client, err := genai.NewClient(ctx, cfg.Project, cfg.Location)
	if err != nil {
		return nil, apperror.NewExternalServiceError("failed to create Vertex AI client", err)
	}
	return &VertexGenerator{client: client}, nil
}

// Close releases the underlying client.
func (g *VertexGenerator) Close() error {
	return g.client.Close()
}

// Generate runs a single-prompt generation.
func (g *VertexGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	model := g.model(opts)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("vertex generate: %w", err)
	}
	return responseText(resp)
}

// Chat runs a multi-turn generation: all but the last message become the
// session history, the last one is sent.
func (g *VertexGenerator) Chat(ctx context.Context, messages []ChatMessage, opts GenerateOptions) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("vertex chat: empty message list")
	}

	model := g.model(opts)
	session := model.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		session.History = append(session.History, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	resp, err := session.SendMessage(ctx, genai.Text(messages[len(messages)-1].Content))
	if err != nil {
		return "", fmt.Errorf("vertex chat: %w", err)
	}
	return responseText(resp)
}

func (g *VertexGenerator) model(opts GenerateOptions) *genai.GenerativeModel {
	model := g.client.GenerativeModel(modelName)
	if opts.Temperature != nil {
		model.SetTemperature(*opts.Temperature)
	}
	if opts.TopP != nil {
		model.SetTopP(*opts.TopP)
	}
	if opts.TopK != nil {
		model.SetTopK(*opts.TopK)
	}
	if opts.MaxTokens != nil {
		model.SetMaxOutputTokens(*opts.MaxTokens)
	}
	return model
}

// responseText flattens the first candidate's text parts.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("vertex response contained no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
