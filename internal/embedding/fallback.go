package embedding

import (
	"context"
	"sync/atomic"

	"github.com/rcliao/sukoon/internal/logger"
)

// FallbackEmbedder serves from primary until its first failure, then
// switches to secondary for the rest of its lifetime.
type FallbackEmbedder struct {
	primary   Embedder
	secondary Embedder
	switched  atomic.Bool
}

func NewFallback(primary, secondary Embedder) *FallbackEmbedder {
	return &FallbackEmbedder{primary: primary, secondary: secondary}
}

// Active returns the embedder currently serving requests.
func (f *FallbackEmbedder) Active() Embedder {
	if f.switched.Load() {
		return f.secondary
	}
	return f.primary
}

// Degraded reports whether the fallback has been engaged.
func (f *FallbackEmbedder) Degraded() bool { return f.switched.Load() }

func (f *FallbackEmbedder) Embed(ctx context.Context, text string) (Vector, error) {
	if !f.switched.Load() {
		v, err := f.primary.Embed(ctx, text)
		if err == nil {
			return v, nil
		}
		f.engage(err)
	}
	return f.secondary.Embed(ctx, text)
}

func (f *FallbackEmbedder) EmbedBatch(ctx context.Context, texts []string) ([]Vector, error) {
	if !f.switched.Load() {
		vs, err := f.primary.EmbedBatch(ctx, texts)
		if err == nil {
			return vs, nil
		}
		f.engage(err)
	}
	return f.secondary.EmbedBatch(ctx, texts)
}

func (f *FallbackEmbedder) engage(err error) {
	if f.switched.CompareAndSwap(false, true) {
		logger.Warn("embedding backend failed, switching to fallback",
			"primary", f.primary.Name(), "fallback", f.secondary.Name(), "error", err)
	}
}

func (f *FallbackEmbedder) Dims() int    { return f.Active().Dims() }
func (f *FallbackEmbedder) Name() string { return f.Active().Name() }
