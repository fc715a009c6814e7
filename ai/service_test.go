package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/pension-backend/apperror"
)

// fakeGenerator records the last call and replays a canned reply.
type fakeGenerator struct {
	reply string
	err   error

	lastPrompt   string
	lastMessages []ChatMessage
	lastOpts     GenerateOptions
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	g.lastPrompt = prompt
	g.lastOpts = opts
	return g.reply, g.err
}

func (g *fakeGenerator) Chat(ctx context.Context, messages []ChatMessage, opts GenerateOptions) (string, error) {
	g.lastMessages = messages
	g.lastOpts = opts
	return g.reply, g.err
}

func TestGenerateAppliesDefaults(t *testing.T) {
	gen := &fakeGenerator{reply: "hello"}
	service := NewService(gen)

	text, err := service.Generate(context.Background(), "say hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "say hello", gen.lastPrompt)

	opts := gen.lastOpts
	require.NotNil(t, opts.Temperature)
	assert.InDelta(t, 0.9, float64(*opts.Temperature), 0.001)
	require.NotNil(t, opts.TopP)
	assert.InDelta(t, 1.0, float64(*opts.TopP), 0.001)
	require.NotNil(t, opts.TopK)
	assert.Equal(t, int32(40), *opts.TopK)
	require.NotNil(t, opts.MaxTokens)
	assert.Equal(t, int32(2048), *opts.MaxTokens)
}

func TestGenerateKeepsCallerOptions(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	service := NewService(gen)

	temp := float32(0.2)
	maxTokens := int32(16)
	_, err := service.Generate(context.Background(), "p", &GenerateOptions{Temperature: &temp, MaxTokens: &maxTokens})
	require.NoError(t, err)

	assert.InDelta(t, 0.2, float64(*gen.lastOpts.Temperature), 0.001)
	assert.Equal(t, int32(16), *gen.lastOpts.MaxTokens)
	// Untouched fields still get defaults.
	assert.Equal(t, int32(40), *gen.lastOpts.TopK)
}

func TestChatUsesLowerTemperature(t *testing.T) {
	gen := &fakeGenerator{reply: "hi"}
	service := NewService(gen)

	messages := []ChatMessage{
		{Role: "user", Content: "hello"},
		{Role: "model", Content: "hi"},
		{Role: "user", Content: "how are you"},
	}
	text, err := service.Chat(context.Background(), messages, nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	assert.Equal(t, messages, gen.lastMessages)
	assert.InDelta(t, 0.7, float64(*gen.lastOpts.Temperature), 0.001)
}

func TestUpstreamFailureIs500(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	service := NewService(gen)

	_, err := service.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode())

	_, err = service.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "x"}}, nil)
	require.Error(t, err)

	_, err = service.AnalyzeSentiment(context.Background(), "text")
	require.Error(t, err)
}

func TestAnalyzeSentimentPromptAndParsing(t *testing.T) {
	gen := &fakeGenerator{reply: `{"sentiment":"POSITIVE","confidence":0.95}`}
	service := NewService(gen)

	verdict, err := service.AnalyzeSentiment(context.Background(), "great service")
	require.NoError(t, err)
	assert.JSONEq(t, `{"sentiment":"POSITIVE","confidence":0.95}`, string(verdict))

	assert.Contains(t, gen.lastPrompt, "Analyze the sentiment")
	assert.Contains(t, gen.lastPrompt, "POSITIVE, NEGATIVE, or NEUTRAL")
	assert.Contains(t, gen.lastPrompt, "great service")
}

func TestAnalyzeSentimentNonJSONReplyIs500(t *testing.T) {
	gen := &fakeGenerator{reply: "The sentiment is positive."}
	service := NewService(gen)

	_, err := service.AnalyzeSentiment(context.Background(), "text")
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode())
}

func TestExtractInfoPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: `{"name":"Muki","age":64}`}
	service := NewService(gen)

	extracted, err := service.ExtractInfo(context.Background(), "Muki is 64 years old", []string{"name", "age"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Muki","age":64}`, string(extracted))

	assert.Contains(t, gen.lastPrompt, "Extract the following information")
	assert.Contains(t, gen.lastPrompt, "name, age")
	assert.Contains(t, gen.lastPrompt, "Muki is 64 years old")
}

func TestSummarizeDefaultsAndOptions(t *testing.T) {
	gen := &fakeGenerator{reply: "a summary"}
	service := NewService(gen)

	summary, err := service.Summarize(context.Background(), "long text", nil)
	require.NoError(t, err)
	assert.Equal(t, "a summary", summary)
	assert.Contains(t, gen.lastPrompt, "brief length")
	assert.Contains(t, gen.lastPrompt, "neutral tone")

	_, err = service.Summarize(context.Background(), "long text", &SummarizeOptions{Length: "detailed", Style: "formal"})
	require.NoError(t, err)
	assert.Contains(t, gen.lastPrompt, "detailed length")
	assert.Contains(t, gen.lastPrompt, "formal tone")
}

func TestUnavailableGeneratorFailsEveryCall(t *testing.T) {
	gen := NewUnavailableGenerator(errors.New("missing project id"))
	service := NewService(gen)

	_, err := service.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode())
}
