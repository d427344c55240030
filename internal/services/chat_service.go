package services

import (
	"strings"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

// RefusalMessage is returned without calling the chat API when the
// prompt is off-topic and names no pose.
const RefusalMessage = "I only answer yoga/asana/health/scripture related questions."

const defaultUserPrompt = "Give me feedback and a 2-step improvement plan."

var allowedTopics = []string{
	"asana", "yoga", "alignment", "breath", "pranayama",
	"health", "scripture", "ayurveda", "meditation",
}

// PromptOnTopic reports whether a free-text prompt passes the keyword
// allow-list. Prompts tied to a known pose bypass this gate.
func PromptOnTopic(userPrompt string) bool {
	lower := strings.ToLower(userPrompt)
	for _, keyword := range allowedTopics {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// BuildChatPrompt assembles the persona preamble, the optional pose
// line, the knowledge block from the pose record, and the user prompt.
func BuildChatPrompt(asanaName string, asana *models.Asana, userPrompt string) string {
	var b strings.Builder
	b.WriteString("You are a classical yoga teacher drawing on Hatha Yoga Pradipika and Light on Yoga.\n")
	if asanaName != "" {
		b.WriteString("Pose: " + asanaName + ".\n")
	}
	if asana != nil {
		b.WriteString("Alignment: " + strings.Join(asana.Alignment, "; ") + "\n")
		b.WriteString("Mistakes: " + strings.Join(asana.Mistakes, "; ") + "\n")
		b.WriteString("Effects: " + strings.Join(asana.Benefits, "; ") + "\n")
		b.WriteString("Precautions: " + strings.Join(asana.Precautions, "; ") + "\n")
	}
	b.WriteString("Only answer yoga-related questions. Be concise, kind, and clear.")

	if userPrompt == "" {
		userPrompt = defaultUserPrompt
	}
	b.WriteString("\n\nUser: " + userPrompt)
	return b.String()
}
