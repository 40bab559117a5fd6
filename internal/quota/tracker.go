package quota

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_service.go -package=mocks learnlog/internal/quota Service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"learnlog/internal/contextutil"
	"learnlog/internal/storage"
)

// monthKeyFormat buckets usage counters by UTC calendar month ("2006-01").
const monthKeyFormat = "2006-01"

// Usage is a read-only snapshot of a user's consumption for the current month.
type Usage struct {
	CurrentUsage int    `json:"current_usage"`
	Limit        int    `json:"limit"`
	Month        string `json:"month"`
}

// Service tracks per-user monthly query consumption.
type Service interface {
	// CheckAndConsume consumes one unit of the user's monthly quota.
	// Returns false without mutating anything when the limit is already reached.
	CheckAndConsume(ctx context.Context, userID int64) (bool, error)
	// CurrentUsage returns the user's usage for the current month.
	// A user with no record this month reports zero usage.
	CurrentUsage(ctx context.Context, userID int64) (Usage, error)
}

// Tracker implements Service on top of a UsageStore.
//
// The check-then-increment sequence is not transactional: two concurrent
// requests from the same user can both pass the limit check before either
// increments, overshooting the limit by a small margin. That imprecision is
// accepted; the counter never goes backwards.
type Tracker struct {
	store storage.UsageStore
	limit int
	now   func() time.Time
}

// NewTracker creates a new Tracker with the given monthly limit.
func NewTracker(store storage.UsageStore, limit int) *Tracker {
	return &Tracker{
		store: store,
		limit: limit,
		now:   time.Now,
	}
}

// NewTrackerWithClock creates a Tracker with an injected clock so tests can
// simulate month rollovers deterministically.
func NewTrackerWithClock(store storage.UsageStore, limit int, now func() time.Time) *Tracker {
	return &Tracker{
		store: store,
		limit: limit,
		now:   now,
	}
}

// CheckAndConsume consumes one unit of the user's monthly quota.
//
// The first request of a new month deletes the user's stale records from
// previous months before creating the fresh counter; cleanup is opportunistic,
// there is no scheduled job.
func (t *Tracker) CheckAndConsume(ctx context.Context, userID int64) (bool, error) {
	logger := contextutil.LoggerFromContext(ctx)
	monthKey := t.now().UTC().Format(monthKeyFormat)

	record, err := t.store.Get(ctx, userID, monthKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("failed to read usage record: %w", err)
	}

	if record == nil {
		if err := t.store.DeleteOtherMonths(ctx, userID, monthKey); err != nil {
			return false, fmt.Errorf("failed to clean up stale usage records: %w", err)
		}
		if err := t.store.Create(ctx, userID, monthKey, 1); err != nil {
			return false, fmt.Errorf("failed to create usage record: %w", err)
		}
		logger.InfoContext(ctx, "usage record created for new month", "user_id", userID, "month", monthKey)
		return true, nil
	}

	if record.Count >= t.limit {
		logger.WarnContext(ctx, "monthly query limit reached", "user_id", userID, "month", monthKey, "count", record.Count, "limit", t.limit)
		return false, nil
	}

	if err := t.store.Increment(ctx, userID, monthKey); err != nil {
		return false, fmt.Errorf("failed to increment usage record: %w", err)
	}

	return true, nil
}

// CurrentUsage returns the user's usage for the current month.
func (t *Tracker) CurrentUsage(ctx context.Context, userID int64) (Usage, error) {
	monthKey := t.now().UTC().Format(monthKeyFormat)

	record, err := t.store.Get(ctx, userID, monthKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return Usage{}, fmt.Errorf("failed to read usage record: %w", err)
	}

	usage := Usage{
		CurrentUsage: 0,
		Limit:        t.limit,
		Month:        monthKey,
	}
	if record != nil {
		usage.CurrentUsage = record.Count
	}

	return usage, nil
}
