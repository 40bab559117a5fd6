package storage

import "time"

// LearningRecord represents a logged code learning in the database.
// A learning is immutable once inserted; there is no update path.
// The embedding itself lives in the vector store under the same ID.
type LearningRecord struct {
	ID           string // UUID (same as the vector store point ID)
	ProjectID    int64
	UserID       int64
	FilePath     string // Relative path within the project
	FunctionName string // Optional, empty when not provided
	LibraryName  string // Optional, empty when not provided
	Description  string
	CodeSnippet  string
	CreatedAt    time.Time
}

// UsageRecord tracks how many queries a user has made in a calendar month.
// Exactly one record exists per (user_id, month_key) pair.
type UsageRecord struct {
	ID       int64
	UserID   int64
	MonthKey string // Format "2006-01" (UTC)
	Count    int
}
