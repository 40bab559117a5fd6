package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks learnlog/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a single nearest-neighbor match.
// Distance is the Euclidean distance to the query vector; lower means more similar.
type SearchResult struct {
	PointID  string
	Distance float32
	Meta     map[string]any
}

// VectorStore defines the interface for vector storage operations.
// Every search is scoped to a single user; cross-user results must never leak.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns up to k nearest neighbors of query among the given user's
	// points, ordered ascending by distance.
	Search(ctx context.Context, collection string, query []float32, k int, userID int64) ([]SearchResult, error)

	// Delete removes points by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error
}
