package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnlog/internal/handlers"
)

type stubChecker struct {
	exists bool
	err    error
}

func (s stubChecker) CollectionExists(_ context.Context, _ string) (bool, error) {
	return s.exists, s.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		checker    stubChecker
		wantStatus int
		wantHealth string
		wantCheck  string
	}{
		{
			name:       "healthy",
			checker:    stubChecker{exists: true},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
			wantCheck:  "ok",
		},
		{
			name:       "collection missing",
			checker:    stubChecker{exists: false},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
			wantCheck:  "error",
		},
		{
			name:       "vector store unreachable",
			checker:    stubChecker{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
			wantCheck:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := handlers.NewHealthHandler(tt.checker, "learnings")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp handlers.HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantHealth {
				t.Errorf("health = %q, want %q", resp.Status, tt.wantHealth)
			}
			if resp.Checks["vector_store"] != tt.wantCheck {
				t.Errorf("vector_store check = %q, want %q", resp.Checks["vector_store"], tt.wantCheck)
			}
			if resp.Timestamp == "" {
				t.Error("timestamp is empty")
			}
		})
	}
}
