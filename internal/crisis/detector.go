// Package crisis classifies self-harm and suicide risk language into
// severity tiers using an ordered regex ruleset.
package crisis

import "strings"

// Severity is totally ordered: None < Low < Medium < High.
type Severity int

const (
	None Severity = iota
	Low
	Medium
	High
)

func (s Severity) String() string {
	switch s {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "none"
	}
}

// Result is the outcome of a single detection.
type Result struct {
	IsCrisis        bool     `json:"is_crisis"`
	Severity        Severity `json:"-"`
	SeverityLabel   string   `json:"severity"`
	MatchedPatterns []string `json:"matched_patterns"`
}

// NeedsResponse reports whether the result warrants any special handling,
// including low-tier prompt framing.
func (r Result) NeedsResponse() bool { return r.Severity != None }

// Detector matches text against a ruleset. It holds no mutable state and is
// safe for concurrent use.
type Detector struct {
	tiers [][]Rule // index 0 is the highest tier
}

// NewDetector builds a detector from rules. A nil slice selects DefaultRules.
func NewDetector(rules []Rule) *Detector {
	if rules == nil {
		rules = DefaultRules
	}
	d := &Detector{}
	for _, tier := range []Severity{High, Medium, Low} {
		var group []Rule
		for _, r := range rules {
			if r.Tier == tier {
				group = append(group, r)
			}
		}
		d.tiers = append(d.tiers, group)
	}
	return d
}

// Detect returns the highest tier matched by text. Only patterns from the
// winning tier are reported; lower tiers are not evaluated once one matches.
func (d *Detector) Detect(text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))

	res := Result{Severity: None}
	if normalized != "" {
		for _, group := range d.tiers {
			for _, r := range group {
				if r.Pattern.MatchString(normalized) {
					res.MatchedPatterns = append(res.MatchedPatterns, r.ID)
					res.Severity = r.Tier
				}
			}
			if res.Severity != None {
				break
			}
		}
	}

	res.IsCrisis = res.Severity >= Medium
	res.SeverityLabel = res.Severity.String()
	return res
}
