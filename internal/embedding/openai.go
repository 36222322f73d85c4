package embedding

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIEmbedder uses any OpenAI-compatible embedding API. It is safe for
// concurrent use.
type OpenAIEmbedder struct {
	client openai.Client
	model  string
	dims   atomic.Int64 // learned from the last response
}

// NewOpenAIEmbedder creates an embedder using an OpenAI-compatible API.
func NewOpenAIEmbedder(baseURL, apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *OpenAIEmbedder {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "text-embedding-3-small"
	}
	reqOpts := []option.RequestOption{option.WithBaseURL(baseURL), option.WithAPIKey(apiKey)}
	if timeout > 0 {
		reqOpts = append(reqOpts, option.WithRequestTimeout(timeout))
	}
	reqOpts = append(reqOpts, opts...)
	e := &OpenAIEmbedder{
		client: openai.NewClient(reqOpts...),
		model:  model,
	}
	e.dims.Store(1536)
	return e
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	vecs, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *OpenAIEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:          openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model:          openai.EmbeddingModel(e.model),
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings: %w", err)
	}

	items := make([]indexedVector, len(resp.Data))
	for i, d := range resp.Data {
		v := make(Vector, len(d.Embedding))
		for j, f := range d.Embedding {
			v[j] = float32(f)
		}
		items[i] = indexedVector{index: int(d.Index), vec: v}
	}
	out, err := orderByIndex(items, len(texts))
	if err != nil {
		return nil, err
	}
	e.dims.Store(int64(len(out[0])))
	return out, nil
}

func (e *OpenAIEmbedder) Dims() int    { return int(e.dims.Load()) }
func (e *OpenAIEmbedder) Name() string { return "openai:" + e.model }

type indexedVector struct {
	index int
	vec   Vector
}

// orderByIndex restores input order from backend-assigned positions and
// checks every input received exactly one vector.
func orderByIndex(items []indexedVector, n int) ([]Vector, error) {
	if len(items) != n {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(items), n)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].index < items[j].index })
	out := make([]Vector, n)
	for i, it := range items {
		if it.index != i {
			return nil, fmt.Errorf("embedding index %d out of sequence", it.index)
		}
		out[i] = it.vec
	}
	return out, nil
}
