package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"learnlog/internal/contextutil"
	"learnlog/internal/rag"
)

// QueryHandler handles HTTP requests for RAG queries.
type QueryHandler struct {
	ragEngine rag.Engine
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(ragEngine rag.Engine) *QueryHandler {
	return &QueryHandler{
		ragEngine: ragEngine,
	}
}

// PoweredResponse is the HTTP response payload for powered-mode queries.
type PoweredResponse struct {
	Response string `json:"response"`
}

// ServeHTTP handles POST /api/v1/rag/query.
//
// Simple mode responds with an ordered list of formatted learnings; powered
// mode responds with a single synthesized answer. Both consume one unit of
// the caller's monthly quota.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		logger.WarnContext(ctx, "query request without user identity")
		writeError(w, http.StatusUnauthorized, "", "User identity is required")
		return
	}

	var req rag.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, KindValidationError, "Invalid request body")
		return
	}

	// Enforce the length bound at the boundary too, so oversized payloads are
	// rejected before they can consume quota.
	if len(req.Query) > rag.MaxQueryLength {
		logger.WarnContext(ctx, "oversized query rejected at boundary", "query_length", len(req.Query))
		writeError(w, http.StatusBadRequest, KindValidationError, "Query length cannot exceed 500 characters")
		return
	}

	resp, err := h.ragEngine.Query(ctx, userID, req)
	if err != nil {
		h.handleQueryError(w, r, err)
		return
	}

	switch resp.Mode {
	case rag.ModePowered:
		writeJSON(w, http.StatusOK, PoweredResponse{Response: resp.Answer})
	default:
		writeJSON(w, http.StatusOK, resp.Results)
	}
}

// handleQueryError maps engine errors to HTTP status codes and error kinds.
func (h *QueryHandler) handleQueryError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var quotaErr *rag.QuotaExceededError
	if errors.As(err, &quotaErr) {
		logger.WarnContext(ctx, "query rejected by quota", "current_usage", quotaErr.Usage.CurrentUsage, "limit", quotaErr.Usage.Limit)
		writeJSON(w, http.StatusTooManyRequests, QuotaErrorResponse{
			Error:        "Monthly query limit reached",
			Kind:         KindQuotaExceeded,
			CurrentUsage: quotaErr.Usage.CurrentUsage,
			Limit:        quotaErr.Usage.Limit,
			Month:        quotaErr.Usage.Month,
		})
		return
	}

	var validationErr *rag.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "query rejected by validation", "field", validationErr.Field, "message", validationErr.Message)
		writeError(w, http.StatusBadRequest, KindValidationError, validationErr.Error())
		return
	}

	if errors.Is(err, rag.ErrRetrieval) {
		logger.ErrorContext(ctx, "query failed during retrieval", "error", err)
		writeError(w, http.StatusBadGateway, KindRetrievalFailure, "Failed to process query")
		return
	}

	if errors.Is(err, rag.ErrGeneration) {
		logger.ErrorContext(ctx, "query failed during generation", "error", err)
		writeError(w, http.StatusBadGateway, KindGenerationFailure, "Failed to generate a response")
		return
	}

	logger.ErrorContext(ctx, "query failed", "error", err)
	writeError(w, http.StatusInternalServerError, "", "Internal server error")
}
