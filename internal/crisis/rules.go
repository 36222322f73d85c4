package crisis

import "regexp"

// Rule is one entry in the crisis ruleset.
type Rule struct {
	ID      string
	Tier    Severity
	Pattern *regexp.Regexp
}

func rule(id string, tier Severity, expr string) Rule {
	return Rule{ID: id, Tier: tier, Pattern: regexp.MustCompile(expr)}
}

// DefaultRules is the built-in ruleset, grouped by tier in priority order.
var DefaultRules = []Rule{
	rule("kill-self", High, `kill\s*(my)?self`),
	rule("end-life", High, `end\s*(my)?\s*life`),
	rule("want-to-die", High, `want\s*to\s*die`),
	rule("wanting-to-die", High, `wanting\s*to\s*die`),
	rule("dont-want-to-live", High, `don'?t\s*want\s*to\s*(be\s*here|live|exist)`),
	rule("better-off-dead", High, `better\s*off\s*(dead|without\s*me)`),
	rule("no-reason-to-live", High, `no\s*reason\s*to\s*live`),
	rule("suicide", High, `suicide`),
	rule("suicidal", High, `suicidal`),
	rule("take-my-life", High, `take\s*my\s*(own\s*)?life`),
	rule("end-it-all", High, `end\s*it\s*all`),
	rule("cant-go-on", High, `can'?t\s*go\s*on`),
	rule("not-worth-living", High, `not\s*worth\s*living`),
	rule("wish-dead", High, `wish\s*i\s*was\s*dead`),
	rule("wish-not-alive", High, `wish\s*i\s*wasn'?t\s*(alive|here|born)`),

	rule("hurt-self", Medium, `hurt\s*(my)?self`),
	rule("hurting-self", Medium, `hurting\s*(my)?self`),
	rule("cutting", Medium, `cutting`),
	rule("self-harm", Medium, `self[- ]?harm`),
	rule("harm-self", Medium, `harm\s*(my)?self`),
	rule("punish-self", Medium, `punish\s*(my)?self`),

	rule("hopeless", Low, `hopeless`),
	rule("worthless", Low, `worthless`),
	rule("no-point", Low, `no\s*point`),
	rule("give-up", Low, `give\s*up`),
	rule("cant-take-it", Low, `can'?t\s*take\s*(it|this)\s*(anymore)?`),
	rule("falling-apart", Low, `falling\s*apart`),
	rule("nobody-cares", Low, `nobody\s*(cares|would\s*miss\s*me)`),
	rule("burden", Low, `burden\s*(to|on)\s*(everyone|others|people)`),
	rule("everyone-better-off", Low, `everyone\s*would\s*be\s*better\s*off`),
}
