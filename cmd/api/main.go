package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"learnlog/internal/config"
	"learnlog/internal/http"
	"learnlog/internal/learnings"
	"learnlog/internal/llm"
	"learnlog/internal/quota"
	"learnlog/internal/rag"
	"learnlog/internal/storage"
	"learnlog/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", level.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	learningRepo := storage.NewLearningRepo(db)
	usageRepo := storage.NewUsageRepo(db)

	// Initialize Qdrant vector store
	ctx := context.Background()

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Ensure collection exists with correct vector size
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.EmbeddingVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.EmbeddingVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingVectorSize)
	testEmbedding, err := embedder.EmbedText(ctx, "test")
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbedding) != cfg.EmbeddingVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.EmbeddingVectorSize, len(testEmbedding))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.EmbeddingVectorSize)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Create quota tracker
	quotaTracker := quota.NewTracker(usageRepo, cfg.MonthlyQueryLimit)
	slog.Info("Quota tracker initialized", "monthly_limit", cfg.MonthlyQueryLimit)

	// Create learnings service
	learningService := learnings.NewService(learningRepo, embedder, vectorStore, cfg.QdrantCollection)

	// Create RAG engine
	ragEngine := rag.NewEngine(
		quotaTracker,
		embedder,
		vectorStore,
		cfg.QdrantCollection,
		learningRepo,
		llmClient,
	)
	slog.Info("RAG engine initialized")

	// Create router with dependencies
	deps := &http.Deps{
		RAGEngine:       ragEngine,
		QuotaService:    quotaTracker,
		LearningService: learningService,
		VectorStore:     vectorStore,
		CollectionName:  cfg.QdrantCollection,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
