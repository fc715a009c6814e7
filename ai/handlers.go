package ai

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/pension-backend/apperror"
)

// Handlers bundles the HTTP handlers for the AI endpoints.
type Handlers struct {
	service *Service
}

// NewHandlers creates AI handlers backed by the given service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the AI routes on the given router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Post("/generate", h.HandleGenerate())
	r.Post("/chat", h.HandleChat())
	r.Post("/analyze-sentiment", h.HandleAnalyzeSentiment())
	r.Post("/extract-info", h.HandleExtractInfo())
	r.Post("/summarize", h.HandleSummarize())
}

// HandleGenerate generates text for a prompt
// @Summary Generate text
// @Description Generates text for a free-form prompt
// @Tags ai
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Prompt and options"
// @Success 200 {object} TextResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/ai/generate [post]
func (h *Handlers) HandleGenerate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("Invalid request body", err))
			return
		}
		if req.Prompt == "" {
			apperror.WriteError(w, r, apperror.NewValidationError("Prompt is required", nil))
			return
		}

		text, err := h.service.Generate(r.Context(), req.Prompt, req.Options)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, TextResponse{Text: text})
	}
}

// HandleChat continues a conversation
// @Summary Chat
// @Description Produces the next reply for a conversation history
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Conversation history and options"
// @Success 200 {object} TextResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/ai/chat [post]
func (h *Handlers) HandleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("Invalid request body", err))
			return
		}
		if len(req.Messages) == 0 {
			apperror.WriteError(w, r, apperror.NewValidationError("Messages are required", nil))
			return
		}

		text, err := h.service.Chat(r.Context(), req.Messages, req.Options)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, TextResponse{Text: text})
	}
}

// HandleAnalyzeSentiment analyzes sentiment of a text
// @Summary Analyze sentiment
// @Description Returns the sentiment verdict for a text as JSON
// @Tags ai
// @Accept json
// @Produce json
// @Param request body SentimentRequest true "Text to analyze"
// @Success 200 {object} object
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/ai/analyze-sentiment [post]
func (h *Handlers) HandleAnalyzeSentiment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SentimentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("Invalid request body", err))
			return
		}
		if req.Text == "" {
			apperror.WriteError(w, r, apperror.NewValidationError("Text is required", nil))
			return
		}

		verdict, err := h.service.AnalyzeSentiment(r.Context(), req.Text)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, verdict)
	}
}

// HandleExtractInfo extracts named fields from a text
// @Summary Extract information
// @Description Extracts the requested fields from a text as JSON
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ExtractRequest true "Text and field names"
// @Success 200 {object} object
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/ai/extract-info [post]
func (h *Handlers) HandleExtractInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("Invalid request body", err))
			return
		}
		if req.Text == "" || len(req.Fields) == 0 {
			apperror.WriteError(w, r, apperror.NewValidationError("Text and fields are required", nil))
			return
		}

		extracted, err := h.service.ExtractInfo(r.Context(), req.Text, req.Fields)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, extracted)
	}
}

// HandleSummarize summarizes a text
// @Summary Summarize text
// @Description Generates a summary with the requested length and tone
// @Tags ai
// @Accept json
// @Produce json
// @Param request body SummarizeRequest true "Text and summary options"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} apperror.ErrorResponse
// @Failure 401 {object} apperror.ErrorResponse
// @Failure 500 {object} apperror.ErrorResponse
// @Router /api/ai/summarize [post]
func (h *Handlers) HandleSummarize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SummarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewValidationError("Invalid request body", err))
			return
		}
		if req.Text == "" {
			apperror.WriteError(w, r, apperror.NewValidationError("Text is required", nil))
			return
		}

		summary, err := h.service.Summarize(r.Context(), req.Text, req.Options)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
	}
}
