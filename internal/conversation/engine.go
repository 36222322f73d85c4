// Package conversation assembles per-message context, decides whether the
// model is called at all, and keeps per-session state.
package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/sukoon/internal/crisis"
	"github.com/rcliao/sukoon/internal/language"
	"github.com/rcliao/sukoon/internal/llm"
	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/prompts"
	"github.com/rcliao/sukoon/internal/rag"
	"github.com/rcliao/sukoon/internal/sentiment"
)

// ErrUnknownMood is returned by SelectMood for a key not in prompts.Moods.
var ErrUnknownMood = errors.New("unknown mood")

// ContextSource supplies retrieved passages for a message. Lookups never
// fail; an unavailable backend yields an empty Retrieval.
type ContextSource interface {
	Lookup(ctx context.Context, query string, k int) rag.Retrieval
}

// Options are the fixed generation parameters shared by every session.
type Options struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	HistoryWindow int
	TopK          int
	LLMTimeout    time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = 600
	}
	if o.HistoryWindow <= 0 {
		o.HistoryWindow = 6
	}
	if o.TopK <= 0 {
		o.TopK = rag.DefaultTopK
	}
	if o.LLMTimeout <= 0 {
		o.LLMTimeout = 30 * time.Second
	}
	return o
}

// Engine holds the dependencies shared read-only across sessions. It has no
// per-conversation state; see Session.
type Engine struct {
	completer llm.Completer
	source    ContextSource
	crisis    *crisis.Detector
	sentiment *sentiment.Analyzer
	language  *language.Detector
	opts      Options
}

// NewEngine wires the pipeline. source may be nil to run without retrieval.
func NewEngine(completer llm.Completer, source ContextSource, opts Options) *Engine {
	return &Engine{
		completer: completer,
		source:    source,
		crisis:    crisis.NewDetector(nil),
		sentiment: sentiment.NewAnalyzer(nil),
		language:  language.NewDetector(),
		opts:      opts.withDefaults(),
	}
}

// NewSession starts an isolated conversation.
func (e *Engine) NewSession() *Session {
	id := ulid.Make().String()
	logger.Debug("session created", "session_id", id)
	return &Session{
		ID:     id,
		engine: e,
		log:    logger.With("session_id", id),
	}
}

// Options returns the effective generation parameters.
func (e *Engine) Options() Options { return e.opts }

// ListMoods returns the selectable moods in display order.
func (e *Engine) ListMoods() []prompts.Mood {
	return append([]prompts.Mood(nil), prompts.Moods...)
}
