package handlers

import (
	"encoding/json"
	"net/http"
)

// Error kinds surfaced to API clients.
const (
	KindQuotaExceeded     = "quota_exceeded"
	KindValidationError   = "validation_error"
	KindRetrievalFailure  = "retrieval_failure"
	KindGenerationFailure = "generation_failure"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// QuotaErrorResponse is the error payload for quota rejections. It carries the
// usage snapshot so clients can display "N/limit used this month".
type QuotaErrorResponse struct {
	Error        string `json:"error"`
	Kind         string `json:"kind"`
	CurrentUsage int    `json:"current_usage"`
	Limit        int    `json:"limit"`
	Month        string `json:"month"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, kind, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error: message,
		Kind:  kind,
	})
}
