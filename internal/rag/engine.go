package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_collaborators.go -package=mocks learnlog/internal/rag Embedder,Completer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"learnlog/internal/contextutil"
	"learnlog/internal/quota"
	"learnlog/internal/storage"
	"learnlog/internal/vectorstore"
)

// Embedder converts text to a fixed-length vector.
// This interface is defined from the engine's perspective (consumer-first).
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Completer sends a prompt to the LLM and returns the answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine answers queries over a user's logged learnings.
type Engine interface {
	// Query runs the retrieval pipeline for one request: quota check,
	// validation, embedding, ranking, then simple formatting or powered
	// generation depending on the requested mode.
	Query(ctx context.Context, userID int64, req QueryRequest) (QueryResponse, error)
}

// ragEngine implements the Engine interface.
type ragEngine struct {
	quota        quota.Service
	embedder     Embedder
	vectorStore  vectorstore.VectorStore
	collection   string
	learningRepo storage.LearningStore
	llmClient    Completer
	logger       *slog.Logger
}

// NewEngine creates a new RAG engine.
func NewEngine(
	quotaService quota.Service,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	learningRepo storage.LearningStore,
	llmClient Completer,
) Engine {
	return &ragEngine{
		quota:        quotaService,
		embedder:     embedder,
		vectorStore:  vectorStore,
		collection:   collection,
		learningRepo: learningRepo,
		llmClient:    llmClient,
		logger:       slog.Default(),
	}
}

// Query answers a query against the user's learnings.
//
// Quota is consumed before validation, so an empty query still costs one unit
// of the monthly quota. A consumed unit is never rolled back, even when a
// later stage fails.
func (e *ragEngine) Query(ctx context.Context, userID int64, req QueryRequest) (QueryResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	mode := req.Mode
	if mode == "" {
		mode = ModeSimple
	}

	logger.InfoContext(ctx, "RAG query started",
		"user_id", userID,
		"mode", mode,
		"query_length", len(req.Query),
		"history_length", len(req.ConversationHistory),
	)

	allowed, err := e.quota.CheckAndConsume(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "quota check failed", "user_id", userID, "error", err)
		return QueryResponse{}, fmt.Errorf("failed to check quota: %w", err)
	}
	if !allowed {
		usage, err := e.quota.CurrentUsage(ctx, userID)
		if err != nil {
			logger.ErrorContext(ctx, "failed to read usage after quota rejection", "user_id", userID, "error", err)
			return QueryResponse{}, fmt.Errorf("failed to read usage: %w", err)
		}
		return QueryResponse{}, &QuotaExceededError{Usage: usage}
	}

	if strings.TrimSpace(req.Query) == "" {
		logger.WarnContext(ctx, "empty query rejected", "user_id", userID)
		return QueryResponse{}, &ValidationError{Field: "query", Message: "cannot be empty"}
	}
	if len(req.Query) > MaxQueryLength {
		logger.WarnContext(ctx, "oversized query rejected", "user_id", userID, "query_length", len(req.Query))
		return QueryResponse{}, &ValidationError{Field: "query", Message: fmt.Sprintf("cannot exceed %d characters", MaxQueryLength)}
	}
	if mode != ModeSimple && mode != ModePowered {
		logger.WarnContext(ctx, "unknown mode rejected", "user_id", userID, "mode", mode)
		return QueryResponse{}, &ValidationError{Field: "mode", Message: fmt.Sprintf("must be %q or %q", ModeSimple, ModePowered)}
	}

	queryVector, err := e.embedder.EmbedText(ctx, req.Query)
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed query", "user_id", userID, "error", err)
		return QueryResponse{}, fmt.Errorf("%w: embedding query text: %v", ErrRetrieval, err)
	}

	relevant, err := e.rank(ctx, userID, queryVector)
	if err != nil {
		return QueryResponse{}, err
	}

	if mode == ModeSimple {
		logger.InfoContext(ctx, "RAG query completed", "user_id", userID, "mode", mode, "results", len(relevant))
		return QueryResponse{
			Mode:    ModeSimple,
			Results: formatSimple(relevant),
		}, nil
	}

	prompt := composePrompt(req.Query, req.ConversationHistory, relevant)
	logger.DebugContext(ctx, "prompt composed", "user_id", userID, "prompt_length", len(prompt))

	answer, err := e.llmClient.Complete(ctx, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "user_id", userID, "error", err)
		return QueryResponse{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	logger.InfoContext(ctx, "RAG query completed", "user_id", userID, "mode", mode, "learnings_used", len(relevant), "answer_length", len(answer))
	return QueryResponse{
		Mode:   ModePowered,
		Answer: answer,
	}, nil
}

// rank searches the vector store for the user's nearest learnings, hydrates
// each hit from the database, and applies the relevance cutoff. The returned
// slice is ordered ascending by distance and holds at most topK entries.
func (e *ragEngine) rank(ctx context.Context, userID int64, queryVector []float32) ([]RankedLearning, error) {
	logger := contextutil.LoggerFromContext(ctx)

	hits, err := e.vectorStore.Search(ctx, e.collection, queryVector, topK, userID)
	if err != nil {
		logger.ErrorContext(ctx, "vector search failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: searching learning vectors: %v", ErrRetrieval, err)
	}

	ranked := make([]RankedLearning, 0, len(hits))
	for i, hit := range hits {
		learning, err := e.learningRepo.GetByID(ctx, hit.PointID)
		if err != nil {
			// The point has no matching row (e.g. a learning deleted mid-flight).
			logger.WarnContext(ctx, "failed to hydrate learning", "learning_id", hit.PointID, "error", err)
			continue
		}

		logger.DebugContext(ctx, "ranked candidate",
			"rank", i+1,
			"learning_id", hit.PointID,
			"distance", hit.Distance,
		)

		ranked = append(ranked, RankedLearning{
			Learning: *learning,
			Distance: hit.Distance,
		})
	}

	relevant := make([]RankedLearning, 0, len(ranked))
	for _, r := range ranked {
		if r.Distance < relevanceThreshold {
			relevant = append(relevant, r)
		}
	}

	logger.InfoContext(ctx, "ranking completed",
		"user_id", userID,
		"candidates", len(ranked),
		"relevant", len(relevant),
		"excluded", len(ranked)-len(relevant),
	)

	return relevant, nil
}
