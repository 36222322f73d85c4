package rag

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/sukoon/internal/model"
)

// ErrMalformedRecord is returned when a knowledge-base file cannot be turned
// into documents. The whole load fails.
var ErrMalformedRecord = errors.New("malformed knowledge record")

// Record is one entry in a knowledge-base category file. Fields other than
// content and tags are kept verbatim as metadata.
type Record struct {
	Content string   `json:"content" yaml:"content" jsonschema:"required,minLength=1,description=The passage text shown to the model"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty" jsonschema:"description=Free-form labels, stored comma-joined"`
}

var knowledgeExts = map[string]bool{".json": true, ".yaml": true, ".yml": true}

// LoadDir reads every category file in dir in name order. A missing
// directory yields no documents and no error.
func LoadDir(dir string) ([]model.KnowledgeDocument, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read knowledge dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && knowledgeExts[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var docs []model.KnowledgeDocument
	for _, name := range names {
		fileDocs, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}

// LoadFile parses one category file. The category is the file name without
// extension and ids are "{category}_{index}".
func LoadFile(path string) ([]model.KnowledgeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	category := strings.TrimSuffix(name, ext)

	var items []map[string]any
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &items)
	default:
		err = json.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: expected a list of records: %v", ErrMalformedRecord, name, err)
	}

	docs := make([]model.KnowledgeDocument, 0, len(items))
	for i, item := range items {
		d, err := toDocument(category, i, item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", ErrMalformedRecord, name, i, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func toDocument(category string, i int, item map[string]any) (model.KnowledgeDocument, error) {
	content, ok := item["content"].(string)
	if !ok || strings.TrimSpace(content) == "" {
		return model.KnowledgeDocument{}, errors.New("content must be a non-empty string")
	}

	var tags []string
	if raw, present := item["tags"]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return model.KnowledgeDocument{}, errors.New("tags must be a list of strings")
		}
		for _, t := range list {
			s, ok := t.(string)
			if !ok {
				return model.KnowledgeDocument{}, errors.New("tags must be a list of strings")
			}
			tags = append(tags, s)
		}
	}

	meta := map[string]string{
		"category": category,
		"tags":     strings.Join(tags, ", "),
	}
	for k, v := range item {
		if k == "content" || k == "tags" {
			continue
		}
		meta[k] = metadataValue(v)
	}

	return model.KnowledgeDocument{
		ID:       fmt.Sprintf("%s_%d", category, i),
		Content:  content,
		Metadata: meta,
	}, nil
}

// metadataValue keeps strings as-is and JSON-encodes everything else.
func metadataValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
