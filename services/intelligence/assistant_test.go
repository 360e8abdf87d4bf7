package intelligence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

func TestGeminiAssistant_Chat(t *testing.T) {
	gen := &fakeGenerator{reply: "  October to March is best.  "}
	a := NewGeminiAssistant(gen)

	history := []models.ChatMessage{
		{Role: "user", Content: "I want to visit Goa"},
		{Role: "assistant", Content: "Great choice!"},
	}
	reply, err := a.Chat(context.Background(), "When should I go?", history)
	require.NoError(t, err)
	assert.Equal(t, "October to March is best.", reply)

	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Traveler: I want to visit Goa\nAssistant: Great choice!\n")
	assert.Contains(t, prompt, "Traveler: When should I go?\nAssistant:")
}

func TestGeminiAssistant_ChatTrimsHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "ok"}
	var history []models.ChatMessage
	for i := 0; i < maxHistory+5; i++ {
		history = append(history, models.ChatMessage{Role: "user", Content: fmt.Sprintf("message-%02d", i)})
	}

	_, err := NewGeminiAssistant(gen).Chat(context.Background(), "hello", history)
	require.NoError(t, err)
	assert.NotContains(t, gen.prompts[0], "message-04")
	assert.Contains(t, gen.prompts[0], "message-05")
}

func TestGeminiAssistant_Itinerary(t *testing.T) {
	gen := &fakeGenerator{reply: "Day 1: Beaches"}
	a := NewGeminiAssistant(gen)

	plan, err := a.Itinerary(context.Background(), models.ItineraryRequest{From: "Delhi", To: "Goa", Days: 3, Interests: "food"})
	require.NoError(t, err)
	assert.Equal(t, "Day 1: Beaches", plan)
	assert.Contains(t, gen.prompts[0], "3-day itinerary for a trip from Delhi to Goa")
	assert.Contains(t, gen.prompts[0], "interested in food")

	_, err = NewGeminiAssistant(&fakeGenerator{err: errModel}).Itinerary(context.Background(), models.ItineraryRequest{Days: 2})
	assert.ErrorIs(t, err, errModel)
}
