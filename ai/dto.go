package ai

// GenerateOptions tunes a single generation call. Nil fields fall back to
// the service defaults.
type GenerateOptions struct {
	Temperature *float32 `json:"temperature"`
	TopP        *float32 `json:"topP"`
	TopK        *int32   `json:"topK"`
	MaxTokens   *int32   `json:"maxTokens"`
}

// ChatMessage is one turn of a conversation. Role is "user" or "model".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest is the payload for POST /api/ai/generate.
type GenerateRequest struct {
	Prompt  string           `json:"prompt"`
	Options *GenerateOptions `json:"options"`
}

// ChatRequest is the payload for POST /api/ai/chat.
type ChatRequest struct {
	Messages []ChatMessage    `json:"messages"`
	Options  *GenerateOptions `json:"options"`
}

// SentimentRequest is the payload for POST /api/ai/analyze-sentiment.
type SentimentRequest struct {
	Text string `json:"text"`
}

// ExtractRequest is the payload for POST /api/ai/extract-info.
type ExtractRequest struct {
	Text   string   `json:"text"`
	Fields []string `json:"fields"`
}

// SummarizeOptions tunes the summary prompt.
type SummarizeOptions struct {
	Length string `json:"length"`
	Style  string `json:"style"`
}

// SummarizeRequest is the payload for POST /api/ai/summarize.
type SummarizeRequest struct {
	Text    string            `json:"text"`
	Options *SummarizeOptions `json:"options"`
}

// TextResponse carries plain generated text.
type TextResponse struct {
	Text string `json:"text"`
}

// SummaryResponse carries a generated summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
