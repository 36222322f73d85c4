// Package store provides the persistent vector index used for retrieval.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/sukoon/internal/model"
)

var (
	// ErrDuplicateID is returned when an insert repeats an id already in the
	// collection or within the same batch. The whole batch is rejected.
	ErrDuplicateID = errors.New("duplicate document id")
	// ErrDimensionMismatch is returned when a vector's length differs from
	// the collection's established dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrLengthMismatch is returned when documents and vectors differ in count.
	ErrLengthMismatch = errors.New("documents and vectors differ in length")
	// ErrCollectionNotFound is returned for operations on a missing collection.
	ErrCollectionNotFound = errors.New("collection not found")
)

// VectorStore is a persistent nearest-neighbor index keyed by collection.
type VectorStore interface {
	// Initialize creates the collection if needed. Calling it again is a no-op.
	Initialize(ctx context.Context, collection string) error

	// AddDocuments inserts docs with their vectors. len(docs) must equal
	// len(vectors) and ids must be new to the collection.
	AddDocuments(ctx context.Context, collection string, docs []model.KnowledgeDocument, vectors [][]float32) error

	// Search returns up to k documents ordered by ascending cosine distance.
	Search(ctx context.Context, collection string, query []float32, k int) ([]model.Passage, error)

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// Clear removes every document from the collection, keeping the collection.
	Clear(ctx context.Context, collection string) error

	// Close closes the store.
	Close() error
}
