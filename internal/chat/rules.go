package chat

import "strings"

// A rule maps any of its trigger substrings to a fixed reply. Rules are
// evaluated in order and the first match wins; the order is a contract,
// not an accident — triggers are not mutually exclusive ("hi there,
// headache" matches the headache rule only because it comes first).
type rule struct {
	triggers []string
	reply    string
}

var rules = []rule{
	{
		triggers: []string{"headache"},
		reply:    "I'm sorry you're feeling a headache. If it's a tension headache, rest and hydration might help. However, if it's severe or sudden, please consult a doctor.",
	},
	{
		triggers: []string{"fever"},
		reply:    "A fever is usually a sign that your body is fighting off an infection. Monitor your temperature and stay hydrated. If it goes above 103°F (39.4°C), seek medical attention.",
	},
	{
		triggers: []string{"hello", "hi"},
		reply:    "Hello! I'm here to assist with your medical queries and health tracking. How are you feeling?",
	},
	{
		triggers: []string{"chest pain"},
		reply:    "URGENT: Chest pain can be serious. If you feel pressure, tightness, or pain that radiates to your arm/jaw, call emergency services immediately.",
	},
}

const fallbackReply = "That's an interesting question. While I'm an AI, I can suggest looking into healthy habits or checking specific symptoms in our Symptom Checker tab for a more detailed analysis."

// Classify returns the reply for the first rule whose trigger appears
// in the input, case-insensitively, or the generic fallback.
func Classify(input string) string {
	low := strings.ToLower(input)
	for _, r := range rules {
		for _, trig := range r.triggers {
			if strings.Contains(low, trig) {
				return r.reply
			}
		}
	}
	return fallbackReply
}
