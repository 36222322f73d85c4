package sentiment

// Distress, positive and modifier lexicons. Lookups are against lowercased
// whitespace-separated tokens, so only single-word entries can match.
var (
	distressWords = wordSet(
		// sadness
		"sad", "depressed", "hopeless", "empty", "worthless", "crying", "tears",
		"lonely", "alone", "miserable", "broken", "hurt", "pain", "suffering",
		// anxiety
		"anxious", "worried", "scared", "fearful", "panicking", "nervous",
		"terrified", "dread", "overwhelmed", "restless", "uneasy",
		// stress
		"stressed", "exhausted", "burnout", "tired", "drained", "pressure",
		"overworked", "struggling",
		// overthinking
		"overthinking", "ruminating", "spiraling", "obsessing", "intrusive",
	)

	positiveWords = wordSet(
		"happy", "grateful", "thankful", "blessed", "peaceful", "calm",
		"hopeful", "better", "improving", "good", "great", "fine", "okay",
		"relaxed", "content", "proud", "accomplished", "strong",
	)

	modifierWords = wordSet(
		"very", "really", "extremely", "so", "incredibly", "absolutely",
		"completely", "totally", "truly", "deeply", "seriously",
	)

	// Substring markers that force the severe tier.
	severePhrases = []string{
		"can't cope", "can't handle", "falling apart", "breaking down",
		"can't take it", "too much", "end it all", "give up",
	}
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
