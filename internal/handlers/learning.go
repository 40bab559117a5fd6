package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"learnlog/internal/contextutil"
	"learnlog/internal/learnings"
	"learnlog/internal/storage"
)

// LearningHandler handles HTTP requests for logging, listing, and deleting learnings.
type LearningHandler struct {
	service *learnings.Service
}

// NewLearningHandler creates a new LearningHandler.
func NewLearningHandler(service *learnings.Service) *LearningHandler {
	return &LearningHandler{
		service: service,
	}
}

// LearningResponse represents a learning in HTTP responses.
type LearningResponse struct {
	ID           string `json:"id"`
	ProjectID    int64  `json:"project_id"`
	FilePath     string `json:"file_path"`
	FunctionName string `json:"function_name,omitempty"`
	LibraryName  string `json:"library_name,omitempty"`
	Description  string `json:"description"`
	CodeSnippet  string `json:"code_snippet"`
}

func toLearningResponse(l *storage.LearningRecord) LearningResponse {
	return LearningResponse{
		ID:           l.ID,
		ProjectID:    l.ProjectID,
		FilePath:     l.FilePath,
		FunctionName: l.FunctionName,
		LibraryName:  l.LibraryName,
		Description:  l.Description,
		CodeSnippet:  l.CodeSnippet,
	}
}

// Log handles POST /api/v1/learnings.
func (h *LearningHandler) Log(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "", "User identity is required")
		return
	}

	var req learnings.LogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, KindValidationError, "Invalid request body")
		return
	}

	learning, err := h.service.Log(ctx, userID, req)
	if err != nil {
		var validationErr *learnings.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, KindValidationError, validationErr.Error())
			return
		}
		logger.ErrorContext(ctx, "failed to log learning", "error", err)
		writeError(w, http.StatusInternalServerError, "", "Failed to log learning")
		return
	}

	writeJSON(w, http.StatusCreated, toLearningResponse(learning))
}

// ListByProject handles GET /api/v1/projects/{projectID}/learnings.
func (h *LearningHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "", "User identity is required")
		return
	}

	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil || projectID <= 0 {
		writeError(w, http.StatusBadRequest, KindValidationError, "Invalid project ID")
		return
	}

	results, err := h.service.ListByProject(ctx, userID, projectID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list learnings", "project_id", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "", "Failed to list learnings")
		return
	}

	payload := make([]LearningResponse, 0, len(results))
	for i := range results {
		payload = append(payload, toLearningResponse(&results[i]))
	}

	writeJSON(w, http.StatusOK, payload)
}

// Delete handles DELETE /api/v1/learnings/{id}.
func (h *LearningHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusUnauthorized, "", "User identity is required")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, KindValidationError, "Learning ID is required")
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		switch {
		case errors.Is(err, learnings.ErrNotFound):
			writeError(w, http.StatusNotFound, "", "Learning not found")
		case errors.Is(err, learnings.ErrForbidden):
			writeError(w, http.StatusForbidden, "", "Not authorized to delete this learning")
		default:
			logger.ErrorContext(ctx, "failed to delete learning", "learning_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "", "Failed to delete learning")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Learning deleted successfully"})
}
