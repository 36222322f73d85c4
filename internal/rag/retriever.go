// Package rag turns a query into knowledge-base passages and loads the
// knowledge base into the vector store.
package rag

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/model"
	"github.com/rcliao/sukoon/internal/store"
)

// DefaultTopK is the number of passages retrieved per message.
const DefaultTopK = 2

// Searcher is the read side of the vector store.
type Searcher interface {
	Search(ctx context.Context, collection string, query []float32, k int) ([]model.Passage, error)
}

// Retriever composes an embedder and a vector index.
type Retriever struct {
	embedder   embedding.Embedder
	index      Searcher
	collection string
	timeout    time.Duration

	mismatchLogged atomic.Bool
}

// NewRetriever returns a retriever over collection. A zero timeout means the
// caller's context alone bounds each lookup.
func NewRetriever(e embedding.Embedder, index Searcher, collection string, timeout time.Duration) *Retriever {
	return &Retriever{embedder: e, index: index, collection: collection, timeout: timeout}
}

// Retrieve embeds query and returns up to k passages, most similar first.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]model.Passage, error) {
	if k <= 0 {
		k = DefaultTopK
	}
	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	passages, err := r.index.Search(ctx, r.collection, vec, k)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", r.collection, err)
	}
	return passages, nil
}

// Retrieval is the outcome of a lookup that is not allowed to fail the
// caller. When Err is set, Passages is empty.
type Retrieval struct {
	Passages []model.Passage
	Err      error
}

// Available reports whether the backend answered.
func (r Retrieval) Available() bool { return r.Err == nil }

// Context is the prompt contribution, "" when unavailable or empty.
func (r Retrieval) Context() string { return FormatContextForPrompt(r.Passages) }

// ErrUnavailable marks a retrieval that could not run at all.
var ErrUnavailable = errors.New("retrieval unavailable")

// Lookup runs Retrieve under the configured timeout and folds any failure
// into the result. A nil receiver yields an unavailable result.
func (r *Retriever) Lookup(ctx context.Context, query string, k int) Retrieval {
	if r == nil {
		return Retrieval{Err: ErrUnavailable}
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	passages, err := r.Retrieve(ctx, query, k)
	if err != nil {
		if errors.Is(err, store.ErrDimensionMismatch) && r.mismatchLogged.CompareAndSwap(false, true) {
			logger.Warn("query embeddings do not match the indexed collection; run `sukoon ingest --reset` to rebuild it",
				"collection", r.collection, "embedder", r.embedder.Name(), "dims", r.embedder.Dims())
		}
		return Retrieval{Err: err}
	}
	return Retrieval{Passages: passages}
}

// FormatContextForPrompt joins passage contents with a blank line. Nothing
// else is emitted: no ids, metadata, ranks or markers.
func FormatContextForPrompt(passages []model.Passage) string {
	if len(passages) == 0 {
		return ""
	}
	parts := make([]string, 0, len(passages))
	for _, p := range passages {
		parts = append(parts, p.Content)
	}
	return strings.Join(parts, "\n\n")
}
