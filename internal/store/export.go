package store

import (
	"context"

	"github.com/rcliao/sukoon/internal/model"
)

// ExportAll returns every document in the collection in insertion order.
// Vectors are omitted; they are derived data.
func (s *SQLiteStore) ExportAll(ctx context.Context, collection string) ([]model.KnowledgeDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, metadata, vector FROM documents WHERE collection = ? ORDER BY rowid`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.KnowledgeDocument
	for rows.Next() {
		d, _, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
