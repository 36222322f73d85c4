package prompts

import "fmt"

// APIKeyRequired is shown instead of calling the model when no completion
// credentials are configured, or when the backend rejects them.
const APIKeyRequired = "⚠️ **API Key Required**: Please add your Groq API key to the `.env` file " +
	"(`GROQ_API_KEY=...`) or set `SUKOON_LLM_API_KEY`. You can get a free key at [Groq Console](https://console.groq.com). 💙"

// DefaultStarter greets the user when no mood has been picked.
const DefaultStarter = "Hi there! 💙 I'm here to listen. How can I support you today?"

// Disclaimer is printed once when an interactive session opens.
const Disclaimer = `⚠️ **Important Disclaimer**

This companion is designed for **emotional support only** and is **NOT a substitute for professional mental health care**.

- It cannot diagnose mental health conditions
- It is not a licensed therapist or counselor
- In case of emergency, please contact professional help

**If you're having thoughts of self-harm, please reach out to a crisis helpline immediately.**`

// CrisisBanner is shown after every reply once a crisis has been detected.
const CrisisBanner = "💙 If you're in immediate danger, please contact local emergency services or a crisis helpline. You don't have to go through this alone."

const maxDiagnostic = 100

// Fallback is the reply when the completion call fails for a reason other
// than credentials. Only a short diagnostic suffix is exposed.
func Fallback(err error) string {
	diag := ""
	if err != nil {
		diag = err.Error()
	}
	if r := []rune(diag); len(r) > maxDiagnostic {
		diag = string(r[:maxDiagnostic])
	}
	return fmt.Sprintf("I'm having trouble connecting right now, but I'm still here with you. 💙 Please try again in a moment. (Error: %s)", diag)
}
