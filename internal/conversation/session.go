package conversation

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rcliao/sukoon/internal/crisis"
	"github.com/rcliao/sukoon/internal/language"
	"github.com/rcliao/sukoon/internal/llm"
	"github.com/rcliao/sukoon/internal/model"
	"github.com/rcliao/sukoon/internal/prompts"
	"github.com/rcliao/sukoon/internal/sentiment"
)

// Phase is the coarse session state exposed to the host.
type Phase string

const (
	AwaitingMood Phase = "awaiting_mood"
	Idle         Phase = "idle"
	CrisisActive Phase = "crisis_active"
)

// maxNewThemes caps how many unseen emotions one turn adds to the themes.
const maxNewThemes = 2

// Outcome says which branch produced a reply.
type Outcome string

const (
	OutcomeModel     Outcome = "model"
	OutcomeCrisis    Outcome = "crisis"
	OutcomeSetup     Outcome = "setup"
	OutcomeFallback  Outcome = "fallback"
	OutcomeDiscarded Outcome = "discarded"
)

// Turn is everything computed for one message.
type Turn struct {
	RequestID          string           `json:"request_id"`
	Text               string           `json:"text"`
	Outcome            Outcome          `json:"outcome"`
	Crisis             crisis.Result    `json:"crisis"`
	Sentiment          sentiment.Result `json:"sentiment"`
	Language           language.Result  `json:"language"`
	RetrievalAvailable bool             `json:"retrieval_available"`
	Passages           int              `json:"passages"`
}

// Session is one conversation. Messages are processed one at a time; Reset,
// SelectMood and Snapshot never wait for an in-flight model call.
type Session struct {
	ID string

	engine *Engine
	log    *log.Logger

	turnMu sync.Mutex // serializes Respond

	mu              sync.Mutex
	epoch           uint64
	history         []model.Message
	emotionalMemory string
	themes          []string
	moodKey         string
	started         bool
	crisisActive    bool
}

// State is a copy of the session's mutable fields.
type State struct {
	ID              string          `json:"id"`
	Phase           Phase           `json:"phase"`
	Mood            string          `json:"mood,omitempty"`
	Started         bool            `json:"started"`
	CrisisActive    bool            `json:"crisis_active"`
	EmotionalMemory string          `json:"emotional_memory,omitempty"`
	Themes          []string        `json:"themes,omitempty"`
	History         []model.Message `json:"history"`
}

// GenerateResponse returns only the reply text of Respond.
func (s *Session) GenerateResponse(ctx context.Context, message, moodContext string) string {
	return s.Respond(ctx, message, moodContext).Text
}

// Respond runs the full pipeline for one user message. moodContext, when
// non-empty, overrides the selected mood's tone guide. It never returns an
// error: backend failures become fallback text.
func (s *Session) Respond(ctx context.Context, message, moodContext string) Turn {
	s.turnMu.Lock()
	defer s.turnMu.Unlock()

	e := s.engine
	turn := Turn{RequestID: uuid.NewString()}
	log := s.log.With("request_id", turn.RequestID)

	turn.Sentiment = e.sentiment.Analyze(message)
	turn.Crisis = e.crisis.Detect(message)
	log.Debug("message analyzed",
		"intensity", turn.Sentiment.Intensity,
		"polarity", turn.Sentiment.Polarity,
		"crisis", turn.Crisis.SeverityLabel)

	s.mu.Lock()
	s.started = true
	if turn.Crisis.IsCrisis {
		s.crisisActive = true
		s.mu.Unlock()
		log.Warn("crisis detected, skipping model", "severity", turn.Crisis.SeverityLabel, "patterns", turn.Crisis.MatchedPatterns)
		turn.Outcome = OutcomeCrisis
		turn.Text = crisis.Response(turn.Crisis.Severity)
		return turn
	}
	epoch := s.epoch
	memory := s.emotionalMemory
	themes := append([]string(nil), s.themes...)
	moodKey := s.moodKey
	window := s.historyWindowLocked(e.opts.HistoryWindow)
	s.mu.Unlock()

	if !e.completer.Configured() {
		log.Warn("completion backend has no credentials", "provider", e.completer.Provider())
		turn.Outcome = OutcomeSetup
		turn.Text = prompts.APIKeyRequired
		return turn
	}

	turn.Language = e.language.Detect(message)

	var wisdom string
	if e.source != nil {
		r := e.source.Lookup(ctx, message, e.opts.TopK)
		turn.RetrievalAvailable = r.Available()
		turn.Passages = len(r.Passages)
		if !r.Available() {
			log.Warn("retrieval unavailable, continuing without context", "error", r.Err)
		}
		wisdom = r.Context()
	}

	if moodContext == "" && moodKey != "" {
		if m, ok := prompts.LookupMood(moodKey); ok {
			moodContext = m.Prompt
		}
	}

	enhanced := assembleUserMessage(message, contextSections{
		Language:  language.InstructionFor(turn.Language),
		Wisdom:    wisdom,
		Mood:      moodContext,
		Sentiment: turn.Sentiment,
		Crisis:    turn.Crisis,
		Memory:    memory,
		Themes:    themes,
	})

	msgs := make([]model.Message, 0, len(window)+2)
	msgs = append(msgs, model.Message{Role: model.RoleSystem, Content: prompts.SystemPrompt})
	msgs = append(msgs, window...)
	msgs = append(msgs, model.Message{Role: model.RoleUser, Content: enhanced})

	callCtx, cancel := context.WithTimeout(ctx, e.opts.LLMTimeout)
	defer cancel()
	reply, err := e.completer.Complete(callCtx, llm.Request{
		Model:       e.opts.Model,
		Messages:    msgs,
		MaxTokens:   e.opts.MaxTokens,
		Temperature: e.opts.Temperature,
	})
	if err != nil {
		if llm.IsAuthError(err) {
			log.Warn("completion rejected credentials", "error", err)
			turn.Outcome = OutcomeSetup
			turn.Text = prompts.APIKeyRequired
			return turn
		}
		log.Warn("completion failed, using fallback", "error", err)
		turn.Outcome = OutcomeFallback
		turn.Text = prompts.Fallback(err)
		return turn
	}

	turn.Text = reply
	turn.Outcome = OutcomeModel

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		log.Debug("session reset during call, discarding result")
		turn.Outcome = OutcomeDiscarded
		return turn
	}
	if turn.Sentiment.Intensity.Elevated() {
		s.emotionalMemory = summarizeFeeling(turn.Sentiment)
	}
	s.themes = mergeThemes(s.themes, turn.Sentiment.DetectedEmotions, maxNewThemes)
	s.history = append(s.history,
		model.Message{Role: model.RoleUser, Content: message},
		model.Message{Role: model.RoleAssistant, Content: reply},
	)
	log.Debug("turn completed", "history_len", len(s.history))
	return turn
}

// historyWindowLocked copies the last n history entries. Caller holds s.mu.
func (s *Session) historyWindowLocked(n int) []model.Message {
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	return append([]model.Message(nil), s.history[start:]...)
}

// SelectMood sets the tone guide for later messages. The mood's starter is
// returned only if the conversation has not started yet; otherwise "".
func (s *Session) SelectMood(key string) (string, error) {
	m, ok := prompts.LookupMood(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMood, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.moodKey = m.Key
	if s.started {
		return "", nil
	}
	s.started = true
	return m.Starter, nil
}

// ResetSession clears all conversation state. A model call in flight keeps
// running, but its result is not applied.
func (s *Session) ResetSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.history = nil
	s.emotionalMemory = ""
	s.themes = nil
	s.moodKey = ""
	s.started = false
	s.crisisActive = false
	s.log.Info("session reset")
}

// Phase reports the current coarse state.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseLocked()
}

func (s *Session) phaseLocked() Phase {
	switch {
	case s.crisisActive:
		return CrisisActive
	case !s.started && s.moodKey == "":
		return AwaitingMood
	default:
		return Idle
	}
}

// CrisisActive reports the sticky crisis flag.
func (s *Session) CrisisActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.crisisActive
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		ID:              s.ID,
		Phase:           s.phaseLocked(),
		Mood:            s.moodKey,
		Started:         s.started,
		CrisisActive:    s.crisisActive,
		EmotionalMemory: s.emotionalMemory,
		Themes:          append([]string(nil), s.themes...),
		History:         append([]model.Message{}, s.history...),
	}
}
