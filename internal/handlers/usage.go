package handlers

import (
	"net/http"

	"learnlog/internal/contextutil"
	"learnlog/internal/quota"
)

// UsageHandler handles HTTP requests for usage snapshots.
type UsageHandler struct {
	quota quota.Service
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(quotaService quota.Service) *UsageHandler {
	return &UsageHandler{
		quota: quotaService,
	}
}

// ServeHTTP handles GET /api/v1/usage.
// Reading the snapshot never consumes quota.
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	userID, ok := contextutil.UserIDFromContext(ctx)
	if !ok {
		logger.WarnContext(ctx, "usage request without user identity")
		writeError(w, http.StatusUnauthorized, "", "User identity is required")
		return
	}

	usage, err := h.quota.CurrentUsage(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read usage", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "", "Failed to read usage")
		return
	}

	writeJSON(w, http.StatusOK, usage)
}
