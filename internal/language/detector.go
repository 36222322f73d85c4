// Package language classifies a message as English, Roman Urdu or a mix of
// both, and renders the matching language-enforcement instruction.
package language

import (
	"math"
	"regexp"
	"strings"
)

type Language string

const (
	English   Language = "english"
	RomanUrdu Language = "roman_urdu"
	Mixed     Language = "mixed"
)

type Result struct {
	Language   Language `json:"language"`
	Confidence float64  `json:"confidence"`
}

var punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Detector is stateless; the zero value is ready to use.
type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

func (d *Detector) Detect(text string) Result {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Result{English, 0}
	}

	words := strings.Fields(punctRe.ReplaceAllString(lower, ""))
	if len(words) == 0 {
		return Result{English, 0}
	}

	if len(words) <= 2 {
		return detectShort(words)
	}

	var urdu, english int
	for _, w := range words {
		if _, ok := romanUrduWords[w]; ok {
			urdu++
		} else if _, ok := englishWords[w]; ok {
			english++
		}
	}

	total := float64(len(words))
	if float64(urdu+english) < total*0.3 {
		for _, p := range urduPatterns {
			if p.MatchString(lower) {
				urdu++
			}
		}
	}

	urduRatio := float64(urdu) / total
	englishRatio := float64(english) / total

	switch {
	case urdu >= 2 && english >= 2 && urduRatio >= 0.2 && englishRatio >= 0.2:
		return Result{Mixed, math.Min((urduRatio+englishRatio)/2+0.3, 1)}
	case urduRatio >= 0.3 || urdu >= 2:
		return Result{RomanUrdu, math.Min(urduRatio+0.3, 1)}
	case englishRatio >= 0.5:
		return Result{English, englishRatio}
	case urdu > english:
		return Result{RomanUrdu, math.Min(urduRatio+0.2, 1)}
	default:
		return Result{English, 0.5}
	}
}

// detectShort defaults one- and two-word messages to English so greetings
// are not mistaken for Roman Urdu.
func detectShort(words []string) Result {
	for _, w := range words {
		if _, ok := shortEnglish[w]; ok {
			return Result{English, 0.9}
		}
	}
	for _, w := range words {
		if _, ok := shortUrdu[w]; ok {
			return Result{RomanUrdu, 0.8}
		}
	}
	return Result{English, 0.7}
}
