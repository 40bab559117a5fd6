package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"learnlog/internal/contextutil"
)

func TestUserIdentity(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantID     int64
		wantLoaded bool
	}{
		{name: "valid id", header: "42", wantID: 42, wantLoaded: true},
		{name: "missing header", header: "", wantLoaded: false},
		{name: "non-numeric", header: "abc", wantLoaded: false},
		{name: "zero", header: "0", wantLoaded: false},
		{name: "negative", header: "-5", wantLoaded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotLoaded bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotLoaded = contextutil.UserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}

			UserIdentity(next).ServeHTTP(httptest.NewRecorder(), req)

			if gotLoaded != tt.wantLoaded {
				t.Fatalf("identity loaded = %v, want %v", gotLoaded, tt.wantLoaded)
			}
			if tt.wantLoaded && gotID != tt.wantID {
				t.Errorf("userID = %d, want %d", gotID, tt.wantID)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The context logger is always present; without the middleware this
		// falls back to slog.Default.
		sawLogger = contextutil.LoggerFromContext(r.Context()) != nil
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/usage", nil)
	LoggerMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if !sawLogger {
		t.Error("request context has no logger")
	}
}

func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight request reached the next handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/rag/query", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q, want request origin echoed", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization, X-User-ID" {
		t.Errorf("Allow-Headers = %q, missing identity header", got)
	}
}

func TestCORS_PassesThroughRequests(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	rec := httptest.NewRecorder()
	CORS(next).ServeHTTP(rec, req)

	if !called {
		t.Error("GET request did not reach the next handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want * without an Origin header", got)
	}
}
