package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rcliao/sukoon/internal/crisis"
	"github.com/rcliao/sukoon/internal/llm"
	"github.com/rcliao/sukoon/internal/model"
	"github.com/rcliao/sukoon/internal/prompts"
	"github.com/rcliao/sukoon/internal/rag"
)

type fakeCompleter struct {
	mu         sync.Mutex
	reply      string
	err        error
	configured bool
	calls      []llm.Request
	block      chan struct{}
	started    chan struct{}
}

func newFake(reply string) *fakeCompleter {
	return &fakeCompleter{reply: reply, configured: true}
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	block, started := f.block, f.started
	f.mu.Unlock()
	if started != nil {
		close(started)
	}
	if block != nil {
		<-block
	}
	return f.reply, f.err
}

func (f *fakeCompleter) Configured() bool { return f.configured }
func (f *fakeCompleter) Provider() string { return "fake" }

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeCompleter) lastUserContent(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		t.Fatal("completer was not called")
	}
	msgs := f.calls[len(f.calls)-1].Messages
	return msgs[len(msgs)-1].Content
}

type fakeSource struct {
	retrieval rag.Retrieval
	queries   []string
}

func (s *fakeSource) Lookup(_ context.Context, q string, _ int) rag.Retrieval {
	s.queries = append(s.queries, q)
	return s.retrieval
}

func TestCrisisSkipsModel(t *testing.T) {
	fc := newFake("should not be used")
	s := NewEngine(fc, nil, Options{}).NewSession()

	turn := s.Respond(context.Background(), "I want to kill myself", "")
	if turn.Outcome != OutcomeCrisis {
		t.Fatalf("expected crisis outcome, got %s", turn.Outcome)
	}
	if turn.Text != crisis.Response(crisis.High) {
		t.Errorf("expected high-tier response, got %q", turn.Text)
	}
	if fc.callCount() != 0 {
		t.Fatalf("expected no completer calls, got %d", fc.callCount())
	}
	st := s.Snapshot()
	if !st.CrisisActive || st.Phase != CrisisActive {
		t.Errorf("expected sticky crisis flag, got %+v", st)
	}
	if len(st.History) != 0 {
		t.Errorf("crisis turns must not enter history, got %d", len(st.History))
	}

	// The flag stays set after ordinary messages.
	s.Respond(context.Background(), "thanks for listening", "")
	if !s.CrisisActive() {
		t.Error("crisis flag should be sticky")
	}
}

func TestLowCrisisFramesPrompt(t *testing.T) {
	fc := newFake("I'm here")
	s := NewEngine(fc, nil, Options{}).NewSession()

	turn := s.Respond(context.Background(), "I feel so hopeless", "")
	if turn.Outcome != OutcomeModel {
		t.Fatalf("low tier should still call the model, got %s", turn.Outcome)
	}
	if s.CrisisActive() {
		t.Error("low tier must not set the crisis flag")
	}
	if got := fc.lastUserContent(t); !strings.Contains(got, "[CONCERN ALERT: LOW PRIORITY]") {
		t.Errorf("expected crisis framing in prompt, got %q", got)
	}
}

func TestSectionOrder(t *testing.T) {
	fc := newFake("ok")
	src := &fakeSource{retrieval: rag.Retrieval{Passages: []model.Passage{{Content: "Breathe slowly."}}}}
	s := NewEngine(fc, src, Options{}).NewSession()
	if _, err := s.SelectMood("anxious"); err != nil {
		t.Fatal(err)
	}

	s.Respond(context.Background(), "I am worried and anxious about work", "")
	got := fc.lastUserContent(t)

	order := []string{"LANGUAGE INSTRUCTION", "[LIVED WISDOM]\nBreathe slowly.", "[MOOD CONTEXT]", "[EMOTIONAL STATE:", "Empathy level:", "[USER MESSAGE]: I am worried and anxious about work"}
	last := -1
	for _, marker := range order {
		i := strings.Index(got, marker)
		if i < 0 {
			t.Fatalf("missing %q in %q", marker, got)
		}
		if i <= last {
			t.Fatalf("%q out of order in %q", marker, got)
		}
		last = i
	}
	if !strings.HasSuffix(got, "\n\n[USER MESSAGE]: I am worried and anxious about work") {
		t.Errorf("user message should be last, got %q", got)
	}
	if len(src.queries) != 1 || src.queries[0] != "I am worried and anxious about work" {
		t.Errorf("retrieval should use the raw message, got %v", src.queries)
	}
}

func TestMoodContextOverride(t *testing.T) {
	fc := newFake("ok")
	s := NewEngine(fc, nil, Options{}).NewSession()
	s.SelectMood("sad")

	s.Respond(context.Background(), "hello there friend", "be brief")
	got := fc.lastUserContent(t)
	if !strings.Contains(got, "[MOOD CONTEXT]\nbe brief") {
		t.Errorf("explicit mood context should win, got %q", got)
	}
}

func TestRetrievalUnavailableStillReplies(t *testing.T) {
	fc := newFake("still here")
	src := &fakeSource{retrieval: rag.Retrieval{Err: rag.ErrUnavailable}}
	s := NewEngine(fc, src, Options{}).NewSession()

	turn := s.Respond(context.Background(), "I had a long day at work", "")
	if turn.Text != "still here" || turn.RetrievalAvailable {
		t.Fatalf("unexpected turn %+v", turn)
	}
	if strings.Contains(fc.lastUserContent(t), "[LIVED WISDOM]") {
		t.Error("no wisdom section expected without passages")
	}
}

func TestHistoryAndWindow(t *testing.T) {
	fc := newFake("reply")
	s := NewEngine(fc, nil, Options{HistoryWindow: 2}).NewSession()

	for _, m := range []string{"first message here", "second message here", "third message here"} {
		s.Respond(context.Background(), m, "")
	}

	st := s.Snapshot()
	if len(st.History) != 6 {
		t.Fatalf("expected full history of 6, got %d", len(st.History))
	}
	if st.History[0].Content != "first message here" || st.History[0].Role != model.RoleUser {
		t.Errorf("history should hold the raw message, got %+v", st.History[0])
	}

	fc.mu.Lock()
	msgs := fc.calls[2].Messages
	fc.mu.Unlock()
	// system + 2 history entries + current user message
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != model.RoleSystem || msgs[0].Content != prompts.SystemPrompt {
		t.Error("first message should be the system prompt")
	}
	if msgs[1].Content != "second message here" || msgs[2].Role != model.RoleAssistant {
		t.Errorf("unexpected window %+v", msgs[1:3])
	}
}

func TestEmotionalMemoryOverwritten(t *testing.T) {
	fc := newFake("ok")
	s := NewEngine(fc, nil, Options{}).NewSession()

	s.Respond(context.Background(), "I feel sad and lonely", "")
	first := s.Snapshot().EmotionalMemory
	if !strings.HasPrefix(first, "user has been feeling moderate") || !strings.Contains(first, "lonely") {
		t.Fatalf("unexpected memory %q", first)
	}

	s.Respond(context.Background(), "I am anxious and worried and scared", "")
	second := s.Snapshot().EmotionalMemory
	if strings.Contains(second, "lonely") || !strings.Contains(second, "severe") {
		t.Fatalf("memory should be replaced, got %q", second)
	}

	// A mild turn leaves memory untouched.
	s.Respond(context.Background(), "what time is it", "")
	if got := s.Snapshot().EmotionalMemory; got != second {
		t.Errorf("mild turn changed memory to %q", got)
	}
	if !strings.Contains(fc.lastUserContent(t), "[EMOTIONAL MEMORY]\n"+second) {
		t.Error("memory should be included in the next prompt")
	}
}

func TestThemesCappedPerTurn(t *testing.T) {
	fc := newFake("ok")
	s := NewEngine(fc, nil, Options{}).NewSession()

	s.Respond(context.Background(), "anxious lonely sad worried", "")
	if got := s.Snapshot().Themes; len(got) != 2 {
		t.Fatalf("expected 2 themes, got %v", got)
	}
	s.Respond(context.Background(), "anxious lonely sad worried", "")
	if got := s.Snapshot().Themes; len(got) != 4 {
		t.Fatalf("expected 4 themes, got %v", got)
	}
}

func TestNotConfigured(t *testing.T) {
	fc := newFake("x")
	fc.configured = false
	s := NewEngine(fc, nil, Options{}).NewSession()

	turn := s.Respond(context.Background(), "hello there", "")
	if turn.Text != prompts.APIKeyRequired || turn.Outcome != OutcomeSetup {
		t.Fatalf("unexpected turn %+v", turn)
	}
	if fc.callCount() != 0 {
		t.Error("completer must not be called without credentials")
	}
}

func TestCompletionErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    string
		outcome Outcome
	}{
		{"auth", errors.New("401 Unauthorized: invalid api key"), prompts.APIKeyRequired, OutcomeSetup},
		{"not configured", llm.ErrNotConfigured, prompts.APIKeyRequired, OutcomeSetup},
		{"network", errors.New("dial tcp: connection refused"), prompts.Fallback(errors.New("dial tcp: connection refused")), OutcomeFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFake("")
			fc.err = tt.err
			s := NewEngine(fc, nil, Options{}).NewSession()

			turn := s.Respond(context.Background(), "hello there", "")
			if turn.Text != tt.want || turn.Outcome != tt.outcome {
				t.Errorf("got %q (%s)", turn.Text, turn.Outcome)
			}
			if len(s.Snapshot().History) != 0 {
				t.Error("failed turns must not enter history")
			}
		})
	}
}

func TestResetDuringCallDiscardsResult(t *testing.T) {
	fc := newFake("late reply")
	fc.block = make(chan struct{})
	fc.started = make(chan struct{})
	s := NewEngine(fc, nil, Options{}).NewSession()

	done := make(chan Turn)
	go func() { done <- s.Respond(context.Background(), "I feel sad and lonely", "") }()

	select {
	case <-fc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("completer never called")
	}
	s.ResetSession()
	close(fc.block)
	turn := <-done

	if turn.Outcome != OutcomeDiscarded {
		t.Fatalf("expected discarded outcome, got %s", turn.Outcome)
	}
	st := s.Snapshot()
	if len(st.History) != 0 || st.EmotionalMemory != "" || len(st.Themes) != 0 {
		t.Fatalf("reset state was mutated: %+v", st)
	}
}

func TestResetClearsState(t *testing.T) {
	fc := newFake("ok")
	s := NewEngine(fc, nil, Options{}).NewSession()
	s.SelectMood("stressed")
	s.Respond(context.Background(), "I feel sad and lonely", "")
	s.Respond(context.Background(), "I want to end my life", "")

	s.ResetSession()
	st := s.Snapshot()
	if st.Phase != AwaitingMood || st.CrisisActive || st.Mood != "" || st.Started || len(st.History) != 0 {
		t.Fatalf("state not cleared: %+v", st)
	}
}

func TestSelectMood(t *testing.T) {
	s := NewEngine(newFake("ok"), nil, Options{}).NewSession()
	if s.Phase() != AwaitingMood {
		t.Fatalf("new session should await a mood, got %s", s.Phase())
	}

	starter, err := s.SelectMood("calm")
	if err != nil {
		t.Fatal(err)
	}
	m, _ := prompts.LookupMood("calm")
	if starter != m.Starter {
		t.Errorf("expected starter %q, got %q", m.Starter, starter)
	}
	if s.Phase() != Idle {
		t.Errorf("expected idle, got %s", s.Phase())
	}

	again, err := s.SelectMood("sad")
	if err != nil || again != "" {
		t.Errorf("starter only before the conversation starts, got %q, %v", again, err)
	}
	if s.Snapshot().Mood != "sad" {
		t.Error("mood should still change")
	}

	if _, err := s.SelectMood("furious"); !errors.Is(err, ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood, got %v", err)
	}
}

func TestSessionsIsolated(t *testing.T) {
	e := NewEngine(newFake("ok"), nil, Options{})
	a, b := e.NewSession(), e.NewSession()
	if a.ID == b.ID {
		t.Fatal("session ids should differ")
	}
	a.Respond(context.Background(), "I want to kill myself", "")
	if b.CrisisActive() {
		t.Error("crisis flag leaked across sessions")
	}
}

func TestMergeThemes(t *testing.T) {
	got := mergeThemes([]string{"sad"}, []string{"anxious", "sad", "tired", "worried"}, 2)
	want := []string{"sad", "anxious", "tired"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestListMoods(t *testing.T) {
	moods := NewEngine(newFake("ok"), nil, Options{}).ListMoods()
	if len(moods) != 5 || moods[0].Key != "sad" || moods[4].Key != "calm" {
		t.Fatalf("unexpected moods %+v", moods)
	}
	moods[0].Key = "changed"
	if prompts.Moods[0].Key != "sad" {
		t.Error("ListMoods should return a copy")
	}
}

func TestGenerateResponseReturnsText(t *testing.T) {
	s := NewEngine(newFake("I'm here with you"), nil, Options{}).NewSession()
	if got := s.GenerateResponse(context.Background(), "long day today", ""); got != "I'm here with you" {
		t.Errorf("got %q", got)
	}
}
