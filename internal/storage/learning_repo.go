package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_learning_store.go -package=mocks learnlog/internal/storage LearningStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// LearningStore defines the interface for learning storage operations.
type LearningStore interface {
	// Insert inserts a single learning into the database.
	// The learning.ID must be set (UUID) before calling this method.
	Insert(ctx context.Context, learning *LearningRecord) error
	// GetByID gets a learning by its ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*LearningRecord, error)
	// ListByProject returns all learnings for a project, newest first.
	// Returns an empty slice if none exist (not an error).
	ListByProject(ctx context.Context, projectID int64) ([]LearningRecord, error)
	// Delete removes a learning by its ID. Returns ErrNotFound if no row was deleted.
	Delete(ctx context.Context, id string) error
}

// LearningRepo provides methods for learning operations.
// It implements the LearningStore interface.
type LearningRepo struct {
	db *sql.DB
}

// NewLearningRepo creates a new LearningRepo.
func NewLearningRepo(db *sql.DB) *LearningRepo {
	return &LearningRepo{db: db}
}

// Insert inserts a single learning into the database.
// The learning.ID must be set (UUID) before calling this method.
func (r *LearningRepo) Insert(ctx context.Context, learning *LearningRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learnings (id, project_id, user_id, file_path, function_name, library_name, description, code_snippet)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		learning.ID, learning.ProjectID, learning.UserID, learning.FilePath,
		learning.FunctionName, learning.LibraryName, learning.Description, learning.CodeSnippet,
	)
	if err != nil {
		return fmt.Errorf("failed to insert learning: %w", err)
	}
	return nil
}

// GetByID gets a learning by its ID. Returns ErrNotFound if not found.
func (r *LearningRepo) GetByID(ctx context.Context, id string) (*LearningRecord, error) {
	var learning LearningRecord
	var createdAtStr string
	var functionName, libraryName sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, user_id, file_path, function_name, library_name, description, code_snippet, created_at
		 FROM learnings WHERE id = ?`,
		id,
	).Scan(&learning.ID, &learning.ProjectID, &learning.UserID, &learning.FilePath,
		&functionName, &libraryName, &learning.Description, &learning.CodeSnippet, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query learning: %w", err)
	}

	learning.FunctionName = functionName.String
	learning.LibraryName = libraryName.String

	learning.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &learning, nil
}

// ListByProject returns all learnings for a project, newest first.
// Returns an empty slice if none exist (not an error).
func (r *LearningRepo) ListByProject(ctx context.Context, projectID int64) ([]LearningRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, user_id, file_path, function_name, library_name, description, code_snippet, created_at
		 FROM learnings WHERE project_id = ? ORDER BY created_at DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query learnings: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	learnings := make([]LearningRecord, 0)
	for rows.Next() {
		var learning LearningRecord
		var createdAtStr string
		var functionName, libraryName sql.NullString

		if err := rows.Scan(&learning.ID, &learning.ProjectID, &learning.UserID, &learning.FilePath,
			&functionName, &libraryName, &learning.Description, &learning.CodeSnippet, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan learning: %w", err)
		}

		learning.FunctionName = functionName.String
		learning.LibraryName = libraryName.String

		learning.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}

		learnings = append(learnings, learning)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return learnings, nil
}

// Delete removes a learning by its ID. Returns ErrNotFound if no row was deleted.
func (r *LearningRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM learnings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete learning: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// parseTimestamp parses a SQLite DATETIME string.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	// Try alternative format (SQLite might use different format)
	return time.Parse(time.RFC3339, s)
}
