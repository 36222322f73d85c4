package crisis

// Response returns the canned supportive message for a severity, or "" for None.
func Response(s Severity) string {
	switch s {
	case High:
		return "I'm really glad you reached out, and I want you to know that what you're feeling matters deeply. Thank you for trusting me with something so important. 💙\n\n" +
			"What you've shared tells me you're going through an incredibly difficult time, and I'm genuinely concerned about you. **You deserve support from someone who can really help.**\n\n" +
			"**You are not alone in this.** There are people who care about you and want to help. Would you be willing to reach out to one of these resources? I'm also here to keep talking with you."
	case Medium:
		return "I hear that you're in a really tough place right now, and I want you to know that I take what you've shared seriously. 💙\n\n" +
			"What you're describing sounds really painful, and you deserve support. I'm here for you.\n\n" +
			"You don't have to face this alone. Is there someone in your life you trust that you could reach out to?\n\n" +
			"I'm still here with you. Would you like to talk more about what you're going through?"
	case Low:
		return "I can hear that things feel really heavy right now, and I want you to know that your feelings are valid. 💙\n\n" +
			"It takes courage to share when you're struggling. I'm here to listen and support you however I can.\n\n" +
			"For now, I'm here. Would you like to talk more about what's been on your mind?"
	}
	return ""
}

// PromptFraming returns guidance for the model describing how to respond at a
// given severity. Only Low is used in practice since higher tiers never reach
// the model.
func PromptFraming(s Severity) string {
	switch s {
	case High:
		return "[CRISIS ALERT: HIGH PRIORITY]\n" +
			"User has expressed language indicating potential immediate crisis.\n" +
			"Response requirements:\n" +
			"- Lead with compassion and validation\n" +
			"- Prioritize safety resources\n" +
			"- Encourage professional help\n" +
			"- Do NOT attempt to 'solve' or minimize\n" +
			"- Stay calm and non-judgmental"
	case Medium:
		return "[CONCERN ALERT: MEDIUM PRIORITY]\n" +
			"User has expressed concerning language about self-harm.\n" +
			"Response requirements:\n" +
			"- Be extra gentle and caring\n" +
			"- Mention resources naturally\n" +
			"- Check in about their safety\n" +
			"- Encourage speaking to someone they trust"
	case Low:
		return "[CONCERN ALERT: LOW PRIORITY]\n" +
			"User has expressed some concerning language.\n" +
			"Response requirements:\n" +
			"- Be extra supportive and validating\n" +
			"- Monitor for escalation\n" +
			"- Gently remind them help is available"
	}
	return ""
}
