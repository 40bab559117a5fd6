package learnings

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks learnlog/internal/learnings Embedder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"learnlog/internal/contextutil"
	"learnlog/internal/storage"
	"learnlog/internal/vectorstore"
)

// Embedder converts text to a fixed-length vector.
// This interface is defined from the service's perspective (consumer-first).
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

var (
	// ErrNotFound is returned when the requested learning does not exist.
	ErrNotFound = errors.New("learning not found")
	// ErrForbidden is returned when the learning belongs to another user.
	ErrForbidden = errors.New("learning not owned by user")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// LogRequest carries the fields of a new learning.
type LogRequest struct {
	ProjectID    int64  `json:"project_id"`
	FilePath     string `json:"file_path"`
	FunctionName string `json:"function_name,omitempty"`
	LibraryName  string `json:"library_name,omitempty"`
	Description  string `json:"description"`
	CodeSnippet  string `json:"code_snippet"`
}

// Service logs, lists, and deletes learnings. Each logged learning gets one
// UUID shared between its database row and its vector store point.
type Service struct {
	learningRepo storage.LearningStore
	embedder     Embedder
	vectorStore  vectorstore.VectorStore
	collection   string
	logger       *slog.Logger
}

// NewService creates a new learnings Service.
func NewService(learningRepo storage.LearningStore, embedder Embedder, vectorStore vectorstore.VectorStore, collection string) *Service {
	return &Service{
		learningRepo: learningRepo,
		embedder:     embedder,
		vectorStore:  vectorStore,
		collection:   collection,
		logger:       slog.Default(),
	}
}

// Log validates and stores a new learning: the description and snippet are
// embedded together, the row goes to the database, and the vector goes to the
// vector store under the same ID. A learning is immutable once logged.
func (s *Service) Log(ctx context.Context, userID int64, req LogRequest) (*storage.LearningRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Description) == "" {
		return nil, &ValidationError{Field: "description", Message: "cannot be empty"}
	}
	if strings.TrimSpace(req.CodeSnippet) == "" {
		return nil, &ValidationError{Field: "code_snippet", Message: "cannot be empty"}
	}
	if strings.TrimSpace(req.FilePath) == "" {
		return nil, &ValidationError{Field: "file_path", Message: "cannot be empty"}
	}
	if req.ProjectID <= 0 {
		return nil, &ValidationError{Field: "project_id", Message: "must be a positive integer"}
	}

	// Embed description and code together so either can match a later query.
	fullText := fmt.Sprintf("%s\n\n%s", req.Description, req.CodeSnippet)
	vector, err := s.embedder.EmbedText(ctx, fullText)
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed learning", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to embed learning: %w", err)
	}

	learning := &storage.LearningRecord{
		ID:           uuid.New().String(),
		ProjectID:    req.ProjectID,
		UserID:       userID,
		FilePath:     normalizeFilePath(req.FilePath),
		FunctionName: req.FunctionName,
		LibraryName:  req.LibraryName,
		Description:  req.Description,
		CodeSnippet:  req.CodeSnippet,
	}

	if err := s.learningRepo.Insert(ctx, learning); err != nil {
		logger.ErrorContext(ctx, "failed to insert learning", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to store learning: %w", err)
	}

	point := vectorstore.Point{
		ID:  learning.ID,
		Vec: vector,
		Meta: map[string]any{
			"user_id":    learning.UserID,
			"project_id": learning.ProjectID,
		},
	}
	if err := s.vectorStore.Upsert(ctx, s.collection, []vectorstore.Point{point}); err != nil {
		// Roll back the row so the database and vector store stay in sync.
		if delErr := s.learningRepo.Delete(ctx, learning.ID); delErr != nil {
			logger.ErrorContext(ctx, "failed to roll back learning after upsert failure", "learning_id", learning.ID, "error", delErr)
		}
		logger.ErrorContext(ctx, "failed to index learning", "learning_id", learning.ID, "error", err)
		return nil, fmt.Errorf("failed to index learning: %w", err)
	}

	logger.InfoContext(ctx, "learning logged", "learning_id", learning.ID, "user_id", userID, "project_id", learning.ProjectID)
	return learning, nil
}

// Get returns a learning owned by the given user.
func (s *Service) Get(ctx context.Context, userID int64, id string) (*storage.LearningRecord, error) {
	learning, err := s.learningRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load learning: %w", err)
	}
	if learning.UserID != userID {
		return nil, ErrForbidden
	}
	return learning, nil
}

// ListByProject returns the user's learnings for one project, newest first.
func (s *Service) ListByProject(ctx context.Context, userID, projectID int64) ([]storage.LearningRecord, error) {
	all, err := s.learningRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list learnings: %w", err)
	}

	// Project ownership lives outside this service, so filter defensively by
	// the denormalized user ID on each row.
	owned := make([]storage.LearningRecord, 0, len(all))
	for _, learning := range all {
		if learning.UserID == userID {
			owned = append(owned, learning)
		}
	}
	return owned, nil
}

// Delete removes a learning's row and vector point after an ownership check.
func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	learning, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.learningRepo.Delete(ctx, learning.ID); err != nil {
		return fmt.Errorf("failed to delete learning: %w", err)
	}
	if err := s.vectorStore.Delete(ctx, s.collection, []string{learning.ID}); err != nil {
		// The row is gone; a stale point only costs storage and is skipped at
		// query time when hydration misses.
		logger.WarnContext(ctx, "failed to delete learning vector", "learning_id", learning.ID, "error", err)
	}

	logger.InfoContext(ctx, "learning deleted", "learning_id", learning.ID, "user_id", userID)
	return nil
}

// normalizeFilePath strips absolute prefixes so stored paths are relative to
// the project root regardless of where the client ran.
func normalizeFilePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	// Windows-style absolute paths keep everything after the drive segment.
	if strings.Contains(p, ":") {
		if parts := strings.SplitN(p, "/", 2); len(parts) == 2 {
			p = parts[1]
		}
	}
	return p
}
