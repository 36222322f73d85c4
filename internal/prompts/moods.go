package prompts

// Mood is a user-selectable emotional starting point.
type Mood struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	// Prompt is the tone guide injected as mood context.
	Prompt string `json:"-"`
	// Starter opens the conversation when the mood is picked first.
	Starter string `json:"starter"`
}

// Moods in display order.
var Moods = []Mood{
	{
		Key:         "sad",
		Label:       "😔 Sad",
		Description: "Feeling down, low energy, or hopeless",
		Prompt:      "The user is sitting in sadness right now. Be extra gentle. Don't try to lift them up yet. Just sit with them. Let silence speak. Use warmth, not words.",
		Starter:     "I can feel that things are heavy for you right now. 💙 You don't have to explain everything... just whatever feels right to share. I'm here, and I'm not going anywhere.",
	},
	{
		Key:         "anxious",
		Label:       "😰 Anxious",
		Description: "Feeling worried, nervous, or on edge",
		Prompt:      "The user's chest feels tight with anxiety. Be their anchor. Keep your voice steady and slow. Short, grounding sentences. Don't add more noise to their mind.",
		Starter:     "Let's just slow down for a second together. 💙 I can feel the tightness you're carrying. You don't have to figure anything out right now. Just breathe... and when you're ready, tell me what's been sitting on your chest.",
	},
	{
		Key:         "stressed",
		Label:       "😤 Stressed",
		Description: "Feeling overwhelmed by responsibilities",
		Prompt:      "The user is carrying too much. Don't add to their load. Help them put things down for a moment. Be the calm in their chaos.",
		Starter:     "It sounds like you've been carrying a lot lately. 💙 That kind of weight is exhausting, even when nobody else sees it. Let's just set it all down for a moment. What's been the hardest part?",
	},
	{
		Key:         "overthinking",
		Label:       "🌀 Overthinking",
		Description: "Mind racing with endless thoughts",
		Prompt:      "The user's mind won't stop. Don't try to argue with the thoughts. Be the quiet in the room. Help them step back from the spiral, gently.",
		Starter:     "I can hear how loud it is inside your head right now. 💙 That's so draining. You don't have to untangle everything this second. Just tell me what your mind keeps going back to.",
	},
	{
		Key:         "calm",
		Label:       "😌 Calm",
		Description: "Feeling okay, just want to chat",
		Prompt:      "The user is in a peaceful moment. Don't disturb it. Just be present. Enjoy the stillness with them.",
		Starter:     "It's really nice to just sit here with you in this quiet. 😊 How has your heart been feeling lately?",
	},
}

// LookupMood finds a mood by key.
func LookupMood(key string) (Mood, bool) {
	for _, m := range Moods {
		if m.Key == key {
			return m, true
		}
	}
	return Mood{}, false
}
