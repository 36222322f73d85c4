package conversation

import (
	"fmt"
	"strings"

	"github.com/rcliao/sukoon/internal/crisis"
	"github.com/rcliao/sukoon/internal/sentiment"
)

type contextSections struct {
	Language  string
	Wisdom    string
	Mood      string
	Sentiment sentiment.Result
	Crisis    crisis.Result
	Memory    string
	Themes    []string
}

// assembleUserMessage renders the labeled sections in fixed order, skipping
// empty ones, and appends the raw message last.
func assembleUserMessage(message string, c contextSections) string {
	var sections []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			sections = append(sections, s)
		}
	}

	add(c.Language)
	if c.Wisdom != "" {
		add("[LIVED WISDOM]\n" + c.Wisdom)
	}
	if c.Mood != "" {
		add("[MOOD CONTEXT]\n" + c.Mood)
	}
	add(emotionalAwareness(c.Sentiment, c.Crisis))
	add(emotionalMemory(c.Memory, c.Themes))

	sections = append(sections, "[USER MESSAGE]: "+message)
	return strings.Join(sections, "\n\n")
}

func emotionalAwareness(r sentiment.Result, cr crisis.Result) string {
	out := sentiment.FormatForPrompt(r) + "\nEmpathy level: " + sentiment.EmpathyLevel(r)
	if cr.Severity == crisis.Low {
		out += "\n\n" + crisis.PromptFraming(crisis.Low)
	}
	return out
}

func emotionalMemory(memory string, themes []string) string {
	if memory == "" && len(themes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("[EMOTIONAL MEMORY]")
	if memory != "" {
		b.WriteString("\n" + memory)
	}
	if len(themes) > 0 {
		b.WriteString("\nRecurring themes: " + strings.Join(themes, ", "))
	}
	return b.String()
}

// summarizeFeeling is the one-line emotional memory for an elevated turn.
func summarizeFeeling(r sentiment.Result) string {
	emotions := r.NegativeIndicators
	if len(emotions) == 0 {
		emotions = r.DetectedEmotions
	}
	if len(emotions) == 0 {
		return fmt.Sprintf("user has been feeling %s", r.Intensity)
	}
	return fmt.Sprintf("user has been feeling %s (%s)", r.Intensity, strings.Join(emotions, ", "))
}

// mergeThemes appends up to limit emotions not already present.
func mergeThemes(themes, emotions []string, limit int) []string {
	seen := make(map[string]bool, len(themes))
	for _, t := range themes {
		seen[t] = true
	}
	added := 0
	for _, e := range emotions {
		if added == limit {
			break
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		themes = append(themes, e)
		added++
	}
	return themes
}
