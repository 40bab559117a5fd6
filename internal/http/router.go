package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"learnlog/internal/handlers"
	"learnlog/internal/learnings"
	"learnlog/internal/quota"
	"learnlog/internal/rag"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	RAGEngine       rag.Engine
	QuotaService    quota.Service
	LearningService *learnings.Service
	VectorStore     handlers.CollectionChecker
	CollectionName  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(CORS)
	r.Use(LoggerMiddleware)
	r.Use(UserIdentity)

	queryHandler := handlers.NewQueryHandler(deps.RAGEngine)
	usageHandler := handlers.NewUsageHandler(deps.QuotaService)
	learningHandler := handlers.NewLearningHandler(deps.LearningService)
	learningViewHandler := handlers.NewLearningViewHandler(deps.LearningService)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)

	// Register API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Method(http.MethodPost, "/rag/query", queryHandler)
		r.Method(http.MethodGet, "/usage", usageHandler)
		r.Post("/learnings", learningHandler.Log)
		r.Get("/projects/{projectID}/learnings", learningHandler.ListByProject)
		r.Delete("/learnings/{id}", learningHandler.Delete)
	})

	// Browser view of a single learning
	r.Method(http.MethodGet, "/learnings/{id}/view", learningViewHandler)

	r.Method(http.MethodGet, "/api/health", healthHandler)

	return r
}
