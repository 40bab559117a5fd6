package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"learnlog/internal/handlers"
	"learnlog/internal/learnings"
	learnings_mocks "learnlog/internal/learnings/mocks"
	"learnlog/internal/storage"
	storage_mocks "learnlog/internal/storage/mocks"
	vectorstore_mocks "learnlog/internal/vectorstore/mocks"
)

func newViewRouter(t *testing.T) (http.Handler, *storage_mocks.MockLearningStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	learningStore := storage_mocks.NewMockLearningStore(ctrl)
	svc := learnings.NewService(
		learningStore,
		learnings_mocks.NewMockEmbedder(ctrl),
		vectorstore_mocks.NewMockVectorStore(ctrl),
		"learnings",
	)

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/learnings/{id}/view", handlers.NewLearningViewHandler(svc))
	return r, learningStore
}

func TestLearningViewHandler(t *testing.T) {
	router, store := newViewRouter(t)
	id := uuid.New().String()

	store.EXPECT().GetByID(gomock.Any(), id).Return(&storage.LearningRecord{
		ID:           id,
		UserID:       10,
		FilePath:     "internal/server/router.go",
		FunctionName: "NewRouter",
		Description:  "Use **chi** for routing",
		CodeSnippet:  "r := chi.NewRouter()",
	}, nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/learnings/"+id+"/view", nil), 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q, want HTML", got)
	}

	body := rec.Body.String()
	// The markdown description renders to HTML.
	if !strings.Contains(body, "<strong>chi</strong>") {
		t.Error("rendered page is missing the converted markdown description")
	}
	if !strings.Contains(body, "internal/server/router.go") {
		t.Error("rendered page is missing the file path")
	}
	if !strings.Contains(body, "r := chi.NewRouter()") {
		t.Error("rendered page is missing the code snippet")
	}
}

func TestLearningViewHandler_Errors(t *testing.T) {
	t.Run("missing identity", func(t *testing.T) {
		router, _ := newViewRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/learnings/"+uuid.New().String()+"/view", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("not found", func(t *testing.T) {
		router, store := newViewRouter(t)
		id := uuid.New().String()
		store.EXPECT().GetByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

		req := withUser(httptest.NewRequest(http.MethodGet, "/learnings/"+id+"/view", nil), 10)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("other user's learning", func(t *testing.T) {
		router, store := newViewRouter(t)
		id := uuid.New().String()
		store.EXPECT().GetByID(gomock.Any(), id).Return(&storage.LearningRecord{ID: id, UserID: 99}, nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/learnings/"+id+"/view", nil), 10)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})
}
