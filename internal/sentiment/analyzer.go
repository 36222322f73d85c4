// Package sentiment scores the emotional content of a message using a
// pluggable polarity scorer plus a mental-health keyword lexicon.
package sentiment

import (
	"fmt"
	"sort"
	"strings"
)

// Intensity is a coarse ordinal of how distressed a message reads.
type Intensity string

const (
	Mild     Intensity = "mild"
	Moderate Intensity = "moderate"
	Severe   Intensity = "severe"
)

// Elevated reports whether the intensity is moderate or severe.
func (i Intensity) Elevated() bool { return i == Moderate || i == Severe }

// Result is the derived sentiment for a single message.
type Result struct {
	Polarity           float64   `json:"polarity"`
	Subjectivity       float64   `json:"subjectivity"`
	Intensity          Intensity `json:"emotional_intensity"`
	DetectedEmotions   []string  `json:"detected_emotions"`
	NegativeIndicators []string  `json:"negative_indicators"`
	PositiveIndicators []string  `json:"positive_indicators"`
	NeedsSupport       bool      `json:"needs_support"`
}

// Analyzer is stateless and safe for concurrent use.
type Analyzer struct {
	scorer Scorer
}

// NewAnalyzer returns an analyzer backed by scorer, or the built-in
// LexiconScorer when scorer is nil.
func NewAnalyzer(scorer Scorer) *Analyzer {
	if scorer == nil {
		scorer = NewLexiconScorer()
	}
	return &Analyzer{scorer: scorer}
}

func (a *Analyzer) Analyze(text string) Result {
	polarity, subjectivity := a.scorer.Score(text)
	lower := strings.ToLower(text)

	words := make(map[string]struct{})
	for _, w := range strings.Fields(lower) {
		words[w] = struct{}{}
	}
	negative := intersect(words, distressWords)
	positive := intersect(words, positiveWords)
	modifiers := len(intersect(words, modifierWords))

	intensity := Mild
	if len(negative) >= 2 || modifiers >= 1 {
		intensity = Moderate
	}
	if len(negative) >= 3 || (modifiers >= 1 && len(negative) >= 2) {
		intensity = Severe
	}
	for _, phrase := range severePhrases {
		if strings.Contains(lower, phrase) {
			intensity = Severe
			break
		}
	}

	emotions := append(append([]string{}, negative...), positive...)
	sort.Strings(emotions)

	return Result{
		Polarity:           round2(polarity),
		Subjectivity:       round2(subjectivity),
		Intensity:          intensity,
		DetectedEmotions:   emotions,
		NegativeIndicators: negative,
		PositiveIndicators: positive,
		NeedsSupport:       polarity < -0.3 || intensity.Elevated() || len(negative) >= 2,
	}
}

func intersect(words, lexicon map[string]struct{}) []string {
	var out []string
	for w := range words {
		if _, ok := lexicon[w]; ok {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// EmpathyLevel maps a result to the warmth the reply should carry.
func EmpathyLevel(r Result) string {
	switch {
	case r.Intensity == Severe:
		return "high"
	case r.Intensity == Moderate || r.NeedsSupport:
		return "medium"
	default:
		return "low"
	}
}

// FormatForPrompt renders the emotional-awareness block for the model.
func FormatForPrompt(r Result) string {
	indicators := func(fallback string) string {
		if len(r.NegativeIndicators) == 0 {
			return fallback
		}
		return strings.Join(r.NegativeIndicators, ", ")
	}

	switch r.Intensity {
	case Severe:
		return fmt.Sprintf("[EMOTIONAL STATE: HIGH DISTRESS]\n"+
			"The user appears to be in significant emotional distress.\n"+
			"Detected indicators: %s\n"+
			"Response approach: Maximum warmth, validation, gentle support. Consider if crisis check is needed.",
			indicators("general distress"))
	case Moderate:
		return fmt.Sprintf("[EMOTIONAL STATE: MODERATE CONCERN]\n"+
			"The user is experiencing notable emotional difficulty.\n"+
			"Detected indicators: %s\n"+
			"Response approach: Warm, supportive, offer coping techniques if appropriate.",
			indicators("moderate concern"))
	default:
		return "[EMOTIONAL STATE: STABLE]\n" +
			"The user appears emotionally stable or mildly concerned.\n" +
			"Response approach: Friendly, supportive, maintain positive engagement."
	}
}
