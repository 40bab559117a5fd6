package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_usage_store.go -package=mocks learnlog/internal/storage UsageStore

import (
	"context"
	"database/sql"
	"fmt"
)

// UsageStore defines the interface for monthly usage record operations.
type UsageStore interface {
	// Get returns the usage record for (user, month). Returns ErrNotFound if none exists.
	Get(ctx context.Context, userID int64, monthKey string) (*UsageRecord, error)
	// Create inserts a new usage record with the given count.
	Create(ctx context.Context, userID int64, monthKey string, count int) error
	// Increment adds one to the count of an existing (user, month) record.
	Increment(ctx context.Context, userID int64, monthKey string) error
	// DeleteOtherMonths removes the user's records whose month key differs from monthKey.
	DeleteOtherMonths(ctx context.Context, userID int64, monthKey string) error
}

// UsageRepo provides methods for usage record operations.
// It implements the UsageStore interface.
type UsageRepo struct {
	db *sql.DB
}

// NewUsageRepo creates a new UsageRepo.
func NewUsageRepo(db *sql.DB) *UsageRepo {
	return &UsageRepo{db: db}
}

// Get returns the usage record for (user, month). Returns ErrNotFound if none exists.
func (r *UsageRepo) Get(ctx context.Context, userID int64, monthKey string) (*UsageRecord, error) {
	var record UsageRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, month_key, powered_queries_count FROM usage_limits WHERE user_id = ? AND month_key = ?",
		userID, monthKey,
	).Scan(&record.ID, &record.UserID, &record.MonthKey, &record.Count)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query usage record: %w", err)
	}

	return &record, nil
}

// Create inserts a new usage record with the given count.
func (r *UsageRepo) Create(ctx context.Context, userID int64, monthKey string, count int) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO usage_limits (user_id, month_key, powered_queries_count) VALUES (?, ?, ?)",
		userID, monthKey, count,
	)
	if err != nil {
		return fmt.Errorf("failed to create usage record: %w", err)
	}
	return nil
}

// Increment adds one to the count of an existing (user, month) record.
func (r *UsageRepo) Increment(ctx context.Context, userID int64, monthKey string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE usage_limits SET powered_queries_count = powered_queries_count + 1 WHERE user_id = ? AND month_key = ?",
		userID, monthKey,
	)
	if err != nil {
		return fmt.Errorf("failed to increment usage record: %w", err)
	}
	return nil
}

// DeleteOtherMonths removes the user's records whose month key differs from monthKey.
// Called when the first request of a new month creates a fresh record, so stale
// counters don't accumulate without a scheduled cleanup job.
func (r *UsageRepo) DeleteOtherMonths(ctx context.Context, userID int64, monthKey string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM usage_limits WHERE user_id = ? AND month_key != ?",
		userID, monthKey,
	)
	if err != nil {
		return fmt.Errorf("failed to delete stale usage records: %w", err)
	}
	return nil
}
