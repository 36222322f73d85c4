package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedScorer struct{ pol, sub float64 }

func (f fixedScorer) Score(string) (float64, float64) { return f.pol, f.sub }

func TestAnalyze_Intensity(t *testing.T) {
	a := NewAnalyzer(fixedScorer{})

	tests := []struct {
		name      string
		input     string
		intensity Intensity
		support   bool
	}{
		{"empty", "", Mild, false},
		{"punctuation only", "?!...", Mild, false},
		{"neutral", "went to the store", Mild, false},
		{"one distress word", "i am tired", Mild, false},
		{"two distress words", "tired and stressed", Moderate, true},
		{"modifier only", "really good day", Moderate, true},
		{"three distress words", "sad lonely exhausted", Severe, true},
		{"modifier plus two", "so anxious and worried", Severe, true},
		{"severe phrase", "it is all too much", Severe, true},
		{"severe phrase apostrophe", "I can't cope today", Severe, true},
		{"spec example", "very sad hopeless worthless", Severe, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(tt.input)
			assert.Equal(t, tt.intensity, res.Intensity)
			assert.Equal(t, tt.support, res.NeedsSupport)
		})
	}
}

func TestAnalyze_NegativePolarityNeedsSupport(t *testing.T) {
	a := NewAnalyzer(fixedScorer{pol: -0.5})
	res := a.Analyze("meh")
	assert.Equal(t, Mild, res.Intensity)
	assert.True(t, res.NeedsSupport)
}

func TestAnalyze_Emotions(t *testing.T) {
	a := NewAnalyzer(nil)
	res := a.Analyze("Sad but grateful and calm")

	assert.Equal(t, []string{"sad"}, res.NegativeIndicators)
	assert.Equal(t, []string{"calm", "grateful"}, res.PositiveIndicators)
	assert.Equal(t, []string{"calm", "grateful", "sad"}, res.DetectedEmotions)
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := NewAnalyzer(nil)
	in := "I'm really overwhelmed and anxious"
	assert.Equal(t, a.Analyze(in), a.Analyze(in))
}

func TestLexiconScorer(t *testing.T) {
	s := NewLexiconScorer()

	pol, sub := s.Score("")
	assert.Zero(t, pol)
	assert.Zero(t, sub)

	pol, _ = s.Score("I feel happy")
	assert.Greater(t, pol, 0.0)

	pol, _ = s.Score("I feel miserable and hopeless")
	assert.Less(t, pol, -0.3)

	pol, _ = s.Score("I am not happy")
	assert.Less(t, pol, 0.0)

	pol, _ = s.Score("extremely terrible")
	assert.Equal(t, -1.0, pol)
}

func TestEmpathyLevel(t *testing.T) {
	assert.Equal(t, "high", EmpathyLevel(Result{Intensity: Severe}))
	assert.Equal(t, "medium", EmpathyLevel(Result{Intensity: Moderate}))
	assert.Equal(t, "medium", EmpathyLevel(Result{Intensity: Mild, NeedsSupport: true}))
	assert.Equal(t, "low", EmpathyLevel(Result{Intensity: Mild}))
}

func TestFormatForPrompt(t *testing.T) {
	out := FormatForPrompt(Result{Intensity: Severe, NegativeIndicators: []string{"hopeless", "sad"}})
	assert.Contains(t, out, "[EMOTIONAL STATE: HIGH DISTRESS]")
	assert.Contains(t, out, "hopeless, sad")

	out = FormatForPrompt(Result{Intensity: Moderate})
	assert.Contains(t, out, "[EMOTIONAL STATE: MODERATE CONCERN]")
	assert.Contains(t, out, "moderate concern")

	assert.Contains(t, FormatForPrompt(Result{Intensity: Mild}), "[EMOTIONAL STATE: STABLE]")
}
