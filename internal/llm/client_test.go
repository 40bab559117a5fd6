package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("expected /v1/chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("Model = %q, want %q", req.Model, "test-model")
		}
		if len(req.Messages) != 2 {
			t.Fatalf("got %d messages, want system + user", len(req.Messages))
		}
		if req.Messages[0].Role != "system" {
			t.Errorf("Messages[0].Role = %q, want system", req.Messages[0].Role)
		}
		if req.Messages[1].Role != "user" || req.Messages[1].Content != "test prompt" {
			t.Errorf("Messages[1] = %+v, want the user prompt", req.Messages[1])
		}
		if req.Temperature != defaultTemperature {
			t.Errorf("Temperature = %v, want %v", req.Temperature, defaultTemperature)
		}
		if req.MaxTokens != defaultMaxTokens {
			t.Errorf("MaxTokens = %v, want %v", req.MaxTokens, defaultMaxTokens)
		}

		resp := ChatResponse{
			ID: "chatcmpl-1",
			Choices: []ChatChoice{
				{Message: ChatChoiceMessage{Role: "assistant", Content: "test answer"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model")

	answer, err := client.Complete(context.Background(), "test prompt")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if answer != "test answer" {
		t.Errorf("Complete() = %q, want %q", answer, "test answer")
	}
}

func TestClient_Complete_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serverResp func(w http.ResponseWriter, r *http.Request)
		wantInErr  string
	}{
		{
			name: "bad status",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
			wantInErr: "bad status 429",
		},
		{
			name: "no choices",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(ChatResponse{})
			},
			wantInErr: "no choices",
		},
		{
			name: "malformed body",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			},
			wantInErr: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewClient(server.URL, "test-key", "test-model")

			_, err := client.Complete(context.Background(), "prompt")
			if err == nil {
				t.Fatal("Complete() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantInErr) {
				t.Errorf("Complete() error = %v, want to contain %q", err, tt.wantInErr)
			}
		})
	}
}
