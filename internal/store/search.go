package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/model"
)

// Search scans the collection and returns the k nearest documents by cosine
// distance. Ties keep insertion order. Safe for concurrent use.
func (s *SQLiteStore) Search(ctx context.Context, collection string, query []float32, k int) ([]model.Passage, error) {
	if k <= 0 {
		return nil, nil
	}

	dims, err := collectionDims(ctx, s.db, collection)
	if err != nil {
		return nil, err
	}
	if dims == 0 {
		return nil, nil
	}
	if len(query) != dims {
		return nil, fmt.Errorf("%w: query has %d dims, collection has %d", ErrDimensionMismatch, len(query), dims)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, metadata, vector FROM documents WHERE collection = ? ORDER BY rowid`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Passage
	for rows.Next() {
		d, vec, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, model.Passage{
			ID:       d.ID,
			Content:  d.Content,
			Metadata: d.Metadata,
			Distance: embedding.CosineDistance(query, vec),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
