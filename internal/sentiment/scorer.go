package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Scorer computes general-purpose polarity in [-1, 1] and subjectivity in
// [0, 1] for raw text. A VADER compound score (e.g. github.com/jonreiter/govader)
// fits the polarity half; subjectivity would still need its own source.
type Scorer interface {
	Score(text string) (polarity, subjectivity float64)
}

type polarityEntry struct {
	polarity     float64
	subjectivity float64
}

// LexiconScorer is a small pattern-free polarity scorer: each known word
// contributes its polarity, a preceding negation flips and dampens it, and a
// preceding intensifier scales it. The result is the mean over scored words.
type LexiconScorer struct {
	words        map[string]polarityEntry
	negations    map[string]struct{}
	intensifiers map[string]float64
}

var scorerTokenRe = regexp.MustCompile(`[a-z']+`)

// NewLexiconScorer returns the built-in scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		words: map[string]polarityEntry{
			"sad": {-0.5, 1}, "depressed": {-0.6, 0.8}, "hopeless": {-0.8, 0.9},
			"worthless": {-0.8, 0.9}, "lonely": {-0.5, 1}, "alone": {-0.2, 0.4},
			"miserable": {-1, 1}, "broken": {-0.4, 0.4}, "hurt": {-0.4, 0.6},
			"pain": {-0.5, 0.6}, "anxious": {-0.3, 0.9}, "worried": {-0.4, 0.8},
			"scared": {-0.5, 0.9}, "afraid": {-0.6, 0.9}, "nervous": {-0.2, 0.9},
			"terrified": {-0.8, 1}, "overwhelmed": {-0.5, 0.8}, "stressed": {-0.5, 0.7},
			"exhausted": {-0.4, 0.8}, "tired": {-0.4, 0.7}, "awful": {-1, 1},
			"terrible": {-1, 1}, "horrible": {-1, 1}, "bad": {-0.7, 0.67},
			"worse": {-0.4, 0.6}, "worst": {-1, 1}, "angry": {-0.5, 1},
			"upset": {-0.5, 0.8}, "empty": {-0.1, 0.5}, "crying": {-0.4, 0.7},
			"happy": {0.8, 1}, "grateful": {0.6, 0.9}, "thankful": {0.5, 0.8},
			"blessed": {0.5, 0.8}, "peaceful": {0.5, 0.8}, "calm": {0.3, 0.75},
			"hopeful": {0.5, 0.8}, "better": {0.5, 0.5}, "good": {0.7, 0.6},
			"great": {0.8, 0.75}, "fine": {0.4, 0.5}, "okay": {0.5, 0.5},
			"relaxed": {0.4, 0.7}, "content": {0.3, 0.6}, "proud": {0.8, 1},
			"strong": {0.4, 0.7}, "love": {0.5, 0.6}, "nice": {0.6, 1},
			"wonderful": {1, 1}, "amazing": {0.6, 0.9}, "glad": {0.5, 1},
		},
		negations: wordSet("not", "no", "never", "don't", "dont", "isn't", "isnt",
			"wasn't", "wasnt", "can't", "cant", "cannot", "nothing", "hardly"),
		intensifiers: map[string]float64{
			"very": 1.3, "really": 1.3, "extremely": 1.5, "so": 1.3,
			"incredibly": 1.5, "absolutely": 1.5, "completely": 1.4, "totally": 1.4,
			"truly": 1.3, "deeply": 1.4, "seriously": 1.3, "super": 1.4,
			"slightly": 0.6, "somewhat": 0.7, "kinda": 0.7, "bit": 0.7,
		},
	}
}

func (s *LexiconScorer) Score(text string) (float64, float64) {
	tokens := scorerTokenRe.FindAllString(strings.ToLower(text), -1)

	var polSum, subSum float64
	var n int
	for i, tok := range tokens {
		entry, ok := s.words[tok]
		if !ok {
			continue
		}
		pol, sub := entry.polarity, entry.subjectivity
		if i > 0 {
			if f, ok := s.intensifiers[tokens[i-1]]; ok {
				pol *= f
				sub *= f
			}
		}
		if s.negatedAt(tokens, i) {
			pol *= -0.5
		}
		polSum += clamp(pol, -1, 1)
		subSum += clamp(sub, 0, 1)
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return round2(polSum / float64(n)), round2(subSum / float64(n))
}

// negatedAt looks back up to two tokens for a negation word.
func (s *LexiconScorer) negatedAt(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if _, ok := s.negations[tokens[j]]; ok {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
