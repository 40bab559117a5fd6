package quota_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"learnlog/internal/quota"
	"learnlog/internal/storage"
	storage_mocks "learnlog/internal/storage/mocks"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestStore opens a migrated temp database and returns a real UsageRepo.
func newTestStore(t *testing.T) *storage.UsageRepo {
	t.Helper()

	db, err := storage.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return storage.NewUsageRepo(db)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTracker_CheckAndConsume_FirstRequestOfMonth(t *testing.T) {
	repo := newTestStore(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	tracker := quota.NewTrackerWithClock(repo, 300, fixedClock(now))
	ctx := context.Background()

	allowed, err := tracker.CheckAndConsume(ctx, 1)
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !allowed {
		t.Fatal("CheckAndConsume() = false, want true for first request of month")
	}

	usage, err := tracker.CurrentUsage(ctx, 1)
	if err != nil {
		t.Fatalf("CurrentUsage() error = %v", err)
	}
	if usage.CurrentUsage != 1 {
		t.Errorf("CurrentUsage = %d, want 1", usage.CurrentUsage)
	}
	if usage.Month != "2025-03" {
		t.Errorf("Month = %q, want %q", usage.Month, "2025-03")
	}
}

func TestTracker_CheckAndConsume_LimitBoundary(t *testing.T) {
	repo := newTestStore(t)
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	tracker := quota.NewTrackerWithClock(repo, 300, fixedClock(now))
	ctx := context.Background()

	// Seed a record with 299 queries already consumed this month.
	if err := repo.Create(ctx, 7, "2025-03", 299); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// The 300th query is allowed.
	allowed, err := tracker.CheckAndConsume(ctx, 7)
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !allowed {
		t.Fatal("CheckAndConsume() = false, want true for 300th query")
	}

	// The 301st query in the same month is rejected without mutation.
	allowed, err = tracker.CheckAndConsume(ctx, 7)
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if allowed {
		t.Fatal("CheckAndConsume() = true, want false once limit is reached")
	}

	usage, err := tracker.CurrentUsage(ctx, 7)
	if err != nil {
		t.Fatalf("CurrentUsage() error = %v", err)
	}
	if usage.CurrentUsage != 300 || usage.Limit != 300 {
		t.Errorf("usage = %d/%d, want 300/300", usage.CurrentUsage, usage.Limit)
	}
	if usage.Month != "2025-03" {
		t.Errorf("Month = %q, want %q", usage.Month, "2025-03")
	}
}

func TestTracker_CheckAndConsume_MonthRollover(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	// Exhaust March completely.
	march := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)
	tracker := quota.NewTrackerWithClock(repo, 300, fixedClock(march))
	if err := repo.Create(ctx, 3, "2025-03", 300); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if allowed, _ := tracker.CheckAndConsume(ctx, 3); allowed {
		t.Fatal("CheckAndConsume() = true, want false with exhausted quota")
	}

	// Crossing the month boundary resets the effective count.
	april := time.Date(2025, time.April, 1, 0, 30, 0, 0, time.UTC)
	tracker = quota.NewTrackerWithClock(repo, 300, fixedClock(april))

	allowed, err := tracker.CheckAndConsume(ctx, 3)
	if err != nil {
		t.Fatalf("CheckAndConsume() error = %v", err)
	}
	if !allowed {
		t.Fatal("CheckAndConsume() = false, want true after month rollover")
	}

	usage, err := tracker.CurrentUsage(ctx, 3)
	if err != nil {
		t.Fatalf("CurrentUsage() error = %v", err)
	}
	if usage.CurrentUsage != 1 {
		t.Errorf("CurrentUsage = %d, want 1 after rollover", usage.CurrentUsage)
	}
	if usage.Month != "2025-04" {
		t.Errorf("Month = %q, want %q", usage.Month, "2025-04")
	}

	// The stale March record was cleaned up when the April record was created.
	if _, err := repo.Get(ctx, 3, "2025-03"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get(2025-03) error = %v, want ErrNotFound after cleanup", err)
	}
}

func TestTracker_CurrentUsage_NoRecord(t *testing.T) {
	repo := newTestStore(t)
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	tracker := quota.NewTrackerWithClock(repo, 300, fixedClock(now))

	usage, err := tracker.CurrentUsage(context.Background(), 42)
	if err != nil {
		t.Fatalf("CurrentUsage() error = %v", err)
	}
	if usage.CurrentUsage != 0 {
		t.Errorf("CurrentUsage = %d, want 0 for user with no record", usage.CurrentUsage)
	}
	if usage.Limit != 300 {
		t.Errorf("Limit = %d, want 300", usage.Limit)
	}
	if usage.Month != "2025-06" {
		t.Errorf("Month = %q, want %q", usage.Month, "2025-06")
	}
}

func TestTracker_CheckAndConsume_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storage_mocks.NewMockUsageStore(ctrl)
	mockStore.EXPECT().
		Get(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, errors.New("disk on fire"))

	tracker := quota.NewTracker(mockStore, 300)

	if _, err := tracker.CheckAndConsume(context.Background(), 1); err == nil {
		t.Fatal("CheckAndConsume() error = nil, want store error to propagate")
	}
}
