package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emberhq/kindling/internal/domain"
	"github.com/emberhq/kindling/internal/observability"
)

// Handler handles HTTP requests. It is the boundary where Result failures
// translate into 4xx responses and unexpected errors into a generic 500.
type Handler struct {
	examples    *domain.ExampleService
	completions domain.CompletionClient
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(examples *domain.ExampleService, completions domain.CompletionClient) *Handler {
	return &Handler{
		examples:    examples,
		completions: completions,
	}
}

// Register wires the handler's routes into the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/examples", h.HandleCreateExample)
	mux.HandleFunc("GET /v1/examples", h.HandleListExamples)
	mux.HandleFunc("GET /v1/examples/{id}", h.HandleGetExample)
	mux.HandleFunc("DELETE /v1/examples/{id}", h.HandleDeleteExample)
	mux.HandleFunc("POST /v1/completions", h.HandleCompletion)
	mux.HandleFunc("POST /v1/chat/completions", h.HandleChatCompletion)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

// HandleCreateExample creates a new Example.
func (h *Handler) HandleCreateExample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	var input domain.CreateExampleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	result, err := h.examples.Create(ctx, input)
	if err != nil {
		logger.Error("create example failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	if !result.IsOk() {
		writeAppError(w, result.Err())
		return
	}

	writeJSON(w, http.StatusCreated, result.Value())
}

// HandleListExamples returns the full collection.
func (h *Handler) HandleListExamples(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	examples, err := h.examples.FindAll(ctx)
	if err != nil {
		observability.FromContext(ctx).Error("list examples failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	if examples == nil {
		examples = []domain.Example{}
	}
	writeJSON(w, http.StatusOK, examples)
}

// HandleGetExample returns a single Example by id.
func (h *Handler) HandleGetExample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.examples.FindByID(ctx, r.PathValue("id"))
	if err != nil {
		observability.FromContext(ctx).Error("get example failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	if !result.IsOk() {
		writeAppError(w, result.Err())
		return
	}

	writeJSON(w, http.StatusOK, result.Value())
}

// HandleDeleteExample removes an Example by id.
func (h *Handler) HandleDeleteExample(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.examples.Delete(ctx, r.PathValue("id"))
	if err != nil {
		observability.FromContext(ctx).Error("delete example failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	if !result.IsOk() {
		writeAppError(w, result.Err())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// completionRequest is the single-shot completion payload.
type completionRequest struct {
	Prompt       string  `json:"prompt"`
	Model        string  `json:"model,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
}

// chatRequest is the multi-turn chat payload.
type chatRequest struct {
	Messages    []domain.Message `json:"messages"`
	Model       string           `json:"model,omitempty"`
	Temperature float64          `json:"temperature,omitempty"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
	Stream      bool             `json:"stream,omitempty"`
}

// completionResponse carries the generated text back to the caller.
type completionResponse struct {
	Content string `json:"content"`
}

// HandleCompletion processes single-shot completion requests.
func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req completionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if req.Prompt == "" {
		writeErrorMessage(w, http.StatusBadRequest, "prompt is required")
		return
	}

	ctx = observability.WithModel(ctx, req.Model)
	logger := observability.FromContext(ctx)

	content, err := h.completions.Complete(ctx, req.Prompt, domain.CompletionOptions{
		Model:        req.Model,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
		SystemPrompt: req.SystemPrompt,
	})
	if err != nil {
		logger.Error("completion failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{Content: content})
}

// HandleChatCompletion processes multi-turn chat requests, streaming over SSE
// when the payload asks for it.
func (h *Handler) HandleChatCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if len(req.Messages) == 0 {
		writeErrorMessage(w, http.StatusBadRequest, "messages are required")
		return
	}

	ctx = observability.WithModel(ctx, req.Model)
	logger := observability.FromContext(ctx)
	logger.Info("chat request received",
		observability.Int("message_count", len(req.Messages)),
		observability.Bool("stream", req.Stream),
	)

	opts := domain.CompletionOptions{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.Stream {
		h.handleStream(w, r, req.Messages, opts)
		return
	}

	content, err := h.completions.Chat(ctx, req.Messages, opts)
	if err != nil {
		logger.Error("chat failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, completionResponse{Content: content})
}

func (h *Handler) handleStream(
	w http.ResponseWriter,
	r *http.Request,
	messages []domain.Message,
	opts domain.CompletionOptions,
) {
	ctx := r.Context()
	logger := observability.FromContext(ctx)

	// Set headers for SSE.
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	chunks, err := h.completions.Stream(ctx, messages, opts)
	if err != nil {
		logger.Error("stream failed", observability.Error(err))
		writeInternalError(w)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		writeErrorMessage(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	for {
		select {
		case <-ctx.Done():
			// Client disconnected.
			logger.Info("stream context done", observability.Error(ctx.Err()))
			return

		case chunk, chunkOk := <-chunks:
			if !chunkOk {
				logger.Info("stream completed normally")
				return
			}

			if chunk.Err != nil {
				// Log the cause, but surface only a generic signal: internal
				// detail must not reach the client.
				logger.Error("stream chunk error", observability.Error(chunk.Err))
				fmt.Fprint(w, "event: error\ndata: stream failed\n\n")
				flusher.Flush()
				return
			}

			data, err := json.Marshal(chunk)
			if err != nil {
				// Nothing serializable to send; end the stream.
				logger.Error("failed to encode stream chunk", observability.Error(err))
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", string(data))
			flusher.Flush()

			if chunk.Done {
				logger.Info("stream completed")
				return
			}
		}
	}
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, nothing left to do.
		return
	}
}

// writeAppError translates an expected domain failure into its HTTP shape.
func writeAppError(w http.ResponseWriter, appErr *domain.AppError) {
	writeJSON(w, appErr.HTTPStatus(), map[string]*domain.AppError{"error": appErr})
}

// writeErrorMessage answers with a bare error message in the same envelope.
func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]map[string]string{
		"error": {"message": message},
	})
}

// writeInternalError answers with a generic failure signal, leaking no
// internal detail.
func writeInternalError(w http.ResponseWriter) {
	writeErrorMessage(w, http.StatusInternalServerError, "internal error")
}
