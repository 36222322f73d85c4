package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rcliao/sukoon/internal/model"
)

func seed(t *testing.T, s *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	s.Initialize(ctx, "c")
	err := s.AddDocuments(ctx, "c",
		[]model.KnowledgeDocument{
			doc("east", "sunrise"),
			doc("north", "cold wind"),
			doc("northeast", "morning frost"),
			doc("west", "sunset"),
		},
		[][]float32{{1, 0}, {0, 1}, {1, 1}, {-1, 0}})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestSearch_OrderedByDistance(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s)

	results, err := s.Search(ctx, "c", []float32{1, 0.1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	want := []string{"east", "northeast", "north"}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("rank %d: expected %s, got %s", i, id, results[i].ID)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Distance < results[i-1].Distance {
			t.Errorf("results not ascending at %d", i)
		}
	}
	for _, r := range results {
		if r.Distance < 0 {
			t.Errorf("negative distance for %s", r.ID)
		}
	}
}

func TestSearch_KLargerThanCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s)

	results, err := s.Search(ctx, "c", []float32{1, 0}, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Errorf("expected all 4 documents, got %d", len(results))
	}
	if results[3].ID != "west" {
		t.Errorf("expected opposite vector last, got %s", results[3].ID)
	}
}

func TestSearch_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.Initialize(ctx, "c")

	results, err := s.Search(ctx, "c", []float32{1, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_DimensionMismatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s)

	_, err := s.Search(ctx, "c", []float32{1, 0, 0}, 2)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSearch_UnknownCollection(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Search(context.Background(), "nope", []float32{1}, 1)
	if !errors.Is(err, ErrCollectionNotFound) {
		t.Errorf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestStatsAndExport(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	seed(t, s)

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Collections) != 1 {
		t.Fatalf("expected 1 collection, got %d", len(st.Collections))
	}
	c := st.Collections[0]
	if c.Documents != 4 || c.Dims != 2 || c.Batches != 1 {
		t.Errorf("unexpected collection stats: %+v", c)
	}
	if c.Categories["test"] != 4 {
		t.Errorf("expected 4 in category test, got %v", c.Categories)
	}
	if st.DBPath != s.Path() {
		t.Errorf("expected db path %s, got %s", s.Path(), st.DBPath)
	}

	docs, err := s.ExportAll(ctx, "c")
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 4 || docs[0].ID != "east" || docs[3].ID != "west" {
		t.Errorf("expected export in insertion order, got %+v", docs)
	}
}
