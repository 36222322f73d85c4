package rag

import (
	"context"
	"fmt"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/store"
)

// IndexResult summarizes one indexing run.
type IndexResult struct {
	Collection string `json:"collection"`
	Documents  int    `json:"documents"`
	Embedder   string `json:"embedder"`
	Skipped    bool   `json:"skipped,omitempty"`
}

// Index loads dir and adds every document to collection. Re-indexing
// without clearing fails with store.ErrDuplicateID.
func Index(ctx context.Context, vs store.VectorStore, e embedding.Embedder, dir, collection string) (*IndexResult, error) {
	if err := vs.Initialize(ctx, collection); err != nil {
		return nil, fmt.Errorf("initialize %s: %w", collection, err)
	}

	docs, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	res := &IndexResult{Collection: collection, Embedder: e.Name()}
	if len(docs) == 0 {
		logger.Warn("knowledge base is empty", "dir", dir)
		return res, nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	vectors, err := e.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed knowledge base: %w", err)
	}
	if err := vs.AddDocuments(ctx, collection, docs, vectors); err != nil {
		return nil, fmt.Errorf("add documents: %w", err)
	}

	res.Embedder = e.Name()
	res.Documents = len(docs)
	logger.Info("indexed knowledge base", "collection", collection, "documents", len(docs), "embedder", res.Embedder)
	return res, nil
}

// EnsureIndexed indexes dir only when collection holds no documents yet.
func EnsureIndexed(ctx context.Context, vs store.VectorStore, e embedding.Embedder, dir, collection string) (*IndexResult, error) {
	if err := vs.Initialize(ctx, collection); err != nil {
		return nil, fmt.Errorf("initialize %s: %w", collection, err)
	}
	n, err := vs.Count(ctx, collection)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return &IndexResult{Collection: collection, Documents: n, Embedder: e.Name(), Skipped: true}, nil
	}
	return Index(ctx, vs, e, dir, collection)
}
