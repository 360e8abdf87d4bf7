package models

// ChatMessage is one line of assistant conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ItineraryRequest asks the assistant for a day-by-day plan instead of a booking.
type ItineraryRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Days      int    `json:"days"`
	Interests string `json:"interests,omitempty"`
}
