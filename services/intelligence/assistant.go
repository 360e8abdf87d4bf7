// File: services/intelligence/assistant.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"travix/models"
)

const assistantPrompt = `You are TravixAI, a professional travel assistant for travelers in India.
Answer travel questions concisely and accurately. Recommend destinations, seasons and local tips when asked.
When the traveler wants to book, tell them you can search flights, trains, buses and hotels for them.
Do not invent prices or availability.`

// maxHistory bounds how much of the conversation is replayed to the model.
const maxHistory = 10

// GeminiAssistant answers free-form travel questions and writes itineraries.
type GeminiAssistant struct {
	gen Generator
}

func NewGeminiAssistant(gen Generator) *GeminiAssistant {
	return &GeminiAssistant{gen: gen}
}

func (a *GeminiAssistant) Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	var sb strings.Builder
	sb.WriteString(assistantPrompt)
	sb.WriteString("\n\n")
	for _, m := range history {
		role := "Traveler"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, m.Content)
	}
	fmt.Fprintf(&sb, "Traveler: %s\nAssistant:", message)

	reply, err := a.gen.GenerateContent(ctx, sb.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (a *GeminiAssistant) Itinerary(ctx context.Context, req models.ItineraryRequest) (string, error) {
	prompt := fmt.Sprintf(`%s

Create a %d-day itinerary for a trip from %s to %s.`, assistantPrompt, req.Days, req.From, req.To)
	if req.Interests != "" {
		prompt += fmt.Sprintf(" The traveler is interested in %s.", req.Interests)
	}
	prompt += " Give a short plan for each day with morning, afternoon and evening suggestions."

	reply, err := a.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
