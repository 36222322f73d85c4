package rag

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/store"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stress.json", `[
		{"content": "First", "tags": ["a", "b"], "source": "story", "weight": 2},
		{"content": "Second"}
	]`)
	writeFile(t, dir, "calm.yml", "- content: Third\n  tags: [c]\n")
	writeFile(t, dir, "README.md", "ignored")

	docs, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// calm sorts before stress
	assert.Equal(t, "calm_0", docs[0].ID)
	assert.Equal(t, "stress_0", docs[1].ID)
	assert.Equal(t, "stress_1", docs[2].ID)

	assert.Equal(t, map[string]string{
		"category": "stress",
		"tags":     "a, b",
		"source":   "story",
		"weight":   "2",
	}, docs[1].Metadata)
	assert.Equal(t, "", docs[2].Metadata["tags"])
}

func TestLoadDir_Missing(t *testing.T) {
	docs, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoadFile_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not a list", `{"content": "x"}`},
		{"bad json", `[{"content": `},
		{"missing content", `[{"tags": ["a"]}]`},
		{"empty content", `[{"content": "  "}]`},
		{"non-string content", `[{"content": 5}]`},
		{"bad tags", `[{"content": "x", "tags": "a,b"}]`},
		{"non-string tag", `[{"content": "x", "tags": [1]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.json", tt.content)
			_, err := LoadDir(dir)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)
		})
	}
}

func TestIndex_DuplicateWithoutClear(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "idx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	writeFile(t, dir, "grief.json", `[{"content": "one"}, {"content": "two"}]`)
	e := embedding.NewHashEmbedder(16)

	_, err = Index(ctx, s, e, dir, "c")
	require.NoError(t, err)

	_, err = Index(ctx, s, e, dir, "c")
	assert.ErrorIs(t, err, store.ErrDuplicateID)

	require.NoError(t, s.Clear(ctx, "c"))
	res, err := Index(ctx, s, e, dir, "c")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Documents)
}

func TestEnsureIndexed(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "ensure.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	dir := t.TempDir()
	writeFile(t, dir, "hope.json", `[{"content": "one"}]`)
	e := embedding.NewHashEmbedder(16)

	res, err := EnsureIndexed(ctx, s, e, dir, "c")
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 1, res.Documents)

	res, err = EnsureIndexed(ctx, s, e, dir, "c")
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestSchema(t *testing.T) {
	b, err := Schema()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "array", m["type"])

	items, ok := m["items"].(map[string]any)
	require.True(t, ok)
	props, ok := items["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "content")
	assert.Contains(t, props, "tags")
	assert.Contains(t, items["required"], "content")
}
