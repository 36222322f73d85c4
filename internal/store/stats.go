package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string            `json:"db_path"`
	DBSizeBytes int64             `json:"db_size_bytes"`
	Collections []CollectionStats `json:"collections"`
}

// CollectionStats holds per-collection counts.
type CollectionStats struct {
	Name       string         `json:"name"`
	Dims       int            `json:"dims"`
	Documents  int            `json:"documents"`
	Batches    int            `json:"batches"`
	Categories map[string]int `json:"categories,omitempty"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	if info, err := os.Stat(s.path); err == nil {
		st.DBSizeBytes = info.Size()
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, COALESCE(c.dims, 0), COUNT(d.id), COUNT(DISTINCT d.batch_id)
		FROM collections c LEFT JOIN documents d ON d.collection = c.name
		GROUP BY c.name ORDER BY c.name`)
	if err != nil {
		return st, err
	}
	for rows.Next() {
		var cs CollectionStats
		if err := rows.Scan(&cs.Name, &cs.Dims, &cs.Documents, &cs.Batches); err != nil {
			rows.Close()
			return st, err
		}
		st.Collections = append(st.Collections, cs)
	}
	rows.Close()

	for i := range st.Collections {
		cats, err := s.categoryCounts(ctx, st.Collections[i].Name)
		if err != nil {
			return st, err
		}
		st.Collections[i].Categories = cats
	}
	return st, nil
}

func (s *SQLiteStore) categoryCounts(ctx context.Context, collection string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT json_extract(metadata, '$.category'), COUNT(*)
		FROM documents
		WHERE collection = ? AND json_extract(metadata, '$.category') IS NOT NULL
		GROUP BY 1`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[cat] = n
	}
	return counts, rows.Err()
}
