package crisis

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Tiers(t *testing.T) {
	d := NewDetector(nil)

	tests := []struct {
		name     string
		input    string
		severity Severity
		crisis   bool
	}{
		{"empty", "", None, false},
		{"whitespace", "   \n\t", None, false},
		{"neutral", "I had a nice walk today", None, false},
		{"high", "I want to kill myself", High, true},
		{"high uppercase", "  SUICIDAL thoughts keep coming  ", High, true},
		{"medium", "I keep thinking about hurting myself", Medium, true},
		{"low", "I feel hopeless", Low, false},
		{"low apostrophe-less", "i cant take it anymore", Low, false},
		{"high beats low", "I feel hopeless and I want to kill myself", High, true},
		{"medium beats low", "I'm worthless and I want to punish myself", Medium, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Detect(tt.input)
			assert.Equal(t, tt.severity, res.Severity)
			assert.Equal(t, tt.severity.String(), res.SeverityLabel)
			assert.Equal(t, tt.crisis, res.IsCrisis)
			assert.Equal(t, res.Severity >= Medium, res.IsCrisis)
		})
	}
}

func TestDetect_WinningTierOnly(t *testing.T) {
	d := NewDetector(nil)
	res := d.Detect("I feel hopeless and worthless, I want to kill myself")

	require.Equal(t, High, res.Severity)
	assert.Equal(t, []string{"kill-self"}, res.MatchedPatterns)
}

func TestDetect_Idempotent(t *testing.T) {
	d := NewDetector(nil)
	in := "everything is falling apart and nobody cares"
	assert.Equal(t, d.Detect(in), d.Detect(in))
}

func TestDetect_CustomRules(t *testing.T) {
	d := NewDetector([]Rule{
		{ID: "storm", Tier: Low, Pattern: regexp.MustCompile(`storm`)},
		{ID: "flood", Tier: Medium, Pattern: regexp.MustCompile(`flood`)},
	})
	assert.Equal(t, Low, d.Detect("a storm").Severity)
	assert.Equal(t, Medium, d.Detect("a storm then a flood").Severity)
	assert.Equal(t, None, d.Detect("I want to kill myself").Severity)
}

func TestResponses(t *testing.T) {
	for _, s := range []Severity{Low, Medium, High} {
		assert.NotEmpty(t, Response(s), s.String())
		assert.NotEmpty(t, PromptFraming(s), s.String())
	}
	assert.Empty(t, Response(None))
	assert.Empty(t, PromptFraming(None))
}
