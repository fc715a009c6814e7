// Package ai is a thin wrapper around the generative-AI collaborator:
// prompt templates and option defaults on top of a TextGenerator, with every
// upstream failure mapped to an external-service error at this boundary.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/user/pension-backend/apperror"
)

// Generation defaults, matching what the endpoints always advertised.
var (
	defaultTemperature     float32 = 0.9
	defaultChatTemperature float32 = 0.7
	defaultTopP            float32 = 1
	defaultTopK            int32   = 40
	defaultMaxTokens       int32   = 2048
)

// Service exposes the AI operations the handlers serve.
type Service struct {
	generator TextGenerator
}

// NewService creates a new AI Service around a TextGenerator.
func NewService(generator TextGenerator) *Service {
	return &Service{generator: generator}
}

// Generate produces text for a free-form prompt.
func (s *Service) Generate(ctx context.Context, prompt string, opts *GenerateOptions) (string, error) {
	text, err := s.generator.Generate(ctx, prompt, withDefaults(opts, defaultTemperature))
	if err != nil {
		log.Printf("ai: generate failed: %v", err)
		return "", apperror.NewExternalServiceError("Failed to generate content", err)
	}
	return text, nil
}

// Chat produces the next turn of a conversation.
func (s *Service) Chat(ctx context.Context, messages []ChatMessage, opts *GenerateOptions) (string, error) {
	text, err := s.generator.Chat(ctx, messages, withDefaults(opts, defaultChatTemperature))
	if err != nil {
		log.Printf("ai: chat failed: %v", err)
		return "", apperror.NewExternalServiceError("Failed in chat interaction", err)
	}
	return text, nil
}

// AnalyzeSentiment asks the model for a sentiment verdict and re-exposes its
// JSON answer. A reply that is not valid JSON counts as an upstream failure.
func (s *Service) AnalyzeSentiment(ctx context.Context, text string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Analyze the sentiment of the following text and return a JSON object with
sentiment (POSITIVE, NEGATIVE, or NEUTRAL) and confidence score (0-1):
Text: %q`, text)

	reply, err := s.generator.Generate(ctx, prompt, withDefaults(nil, defaultTemperature))
	if err != nil {
		log.Printf("ai: sentiment analysis failed: %v", err)
		return nil, apperror.NewExternalServiceError("Failed to analyze sentiment", err)
	}

	return parseModelJSON(reply, "Failed to analyze sentiment")
}

// ExtractInfo asks the model to pull the named fields from the text.
func (s *Service) ExtractInfo(ctx context.Context, text string, fields []string) (json.RawMessage, error) {
	prompt := fmt.Sprintf(`Extract the following information from the text and return as JSON:
Fields to extract: %s
Text: %q`, strings.Join(fields, ", "), text)

	reply, err := s.generator.Generate(ctx, prompt, withDefaults(nil, defaultTemperature))
	if err != nil {
		log.Printf("ai: information extraction failed: %v", err)
		return nil, apperror.NewExternalServiceError("Failed to extract information", err)
	}

	return parseModelJSON(reply, "Failed to extract information")
}

// Summarize produces a summary with the requested length and tone.
func (s *Service) Summarize(ctx context.Context, text string, opts *SummarizeOptions) (string, error) {
	length := "brief"
	style := "neutral"
	if opts != nil {
		if opts.Length != "" {
			length = opts.Length
		}
		if opts.Style != "" {
			style = opts.Style
		}
	}

	prompt := fmt.Sprintf(`Summarize the following text in %s length with a %s tone:
%q`, length, style, text)

	reply, err := s.generator.Generate(ctx, prompt, withDefaults(nil, defaultTemperature))
	if err != nil {
		log.Printf("ai: summarization failed: %v", err)
		return "", apperror.NewExternalServiceError("Failed to generate summary", err)
	}
	return reply, nil
}

// withDefaults fills the option gaps the request left open.
func withDefaults(opts *GenerateOptions, temperature float32) GenerateOptions {
	out := GenerateOptions{
		Temperature: &temperature,
		TopP:        &defaultTopP,
		TopK:        &defaultTopK,
		MaxTokens:   &defaultMaxTokens,
	}
	if opts == nil {
		return out
	}
	if opts.Temperature != nil {
		out.Temperature = opts.Temperature
	}
	if opts.TopP != nil {
		out.TopP = opts.TopP
	}
	if opts.TopK != nil {
		out.TopK = opts.TopK
	}
	if opts.MaxTokens != nil {
		out.MaxTokens = opts.MaxTokens
	}
	return out
}

// parseModelJSON validates that a structured reply actually is JSON before
// passing it through verbatim.
func parseModelJSON(reply, failureMessage string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(reply)
	if !json.Valid([]byte(trimmed)) {
		log.Printf("ai: model returned non-JSON reply: %.100s", trimmed)
		return nil, apperror.NewExternalServiceError(failureMessage, nil)
	}
	return json.RawMessage(trimmed), nil
}
