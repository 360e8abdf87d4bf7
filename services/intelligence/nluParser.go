// File: services/intelligence/nluParser.go
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"travix/models"
)

const extractionPrompt = `You are a precise travel information extraction API. Extract the following from the user's message:
- from: Origin city (e.g., "New Delhi")
- to: Destination city (e.g., "Mumbai")
- date: Date of travel (e.g., "25th December", "tomorrow", "August 18 2026")
- budget: One of Luxury, Medium, Budget-friendly
- mode: One of Train, Bus, Flight
- groupSize: Number of people (e.g., 1, 2, 5)
- returnTrip: true if the user wants a round trip or return journey, null if one-way
- returnDate: Date of return travel (e.g., "30th December", "next week")
- intent: the user's primary intent:
  * 'book_trip': only an explicit request to book or a confirmation ("book", "reserve", "yes" when confirming, "book it", "confirm", "proceed"); questions, hesitation ("wait", "not yet") and plain trip details are not 'book_trip'
  * 'book_hotel': book accommodation only
  * 'general_query': travel advice, recommendations or questions about destinations
  * 'greet': simple greetings
  * 'cancel_trip': cancel or restart
  * 'unknown': trip details without a booking request, or intent cannot be determined
- message: an optional, brief confirmation or error message

Return only JSON with no markdown or extra text. If a field is not found, set its value to null.`

var quotedNull = regexp.MustCompile(`:\s*"null"`)

var intentNames = []string{
	"book_trip", "book_hotel", "book_car", "display_trip", "cancel_trip",
	"greet", "general_query", "error", "unknown",
}

// IntentSchema is the response schema given to Gemini for extraction.
var IntentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"from":       {Type: genai.TypeString, Nullable: true},
		"to":         {Type: genai.TypeString, Nullable: true},
		"date":       {Type: genai.TypeString, Nullable: true},
		"budget":     {Type: genai.TypeString, Nullable: true, Enum: []string{"Luxury", "Medium", "Budget-friendly"}},
		"mode":       {Type: genai.TypeString, Nullable: true, Enum: []string{"Train", "Bus", "Flight", "Car"}},
		"groupSize":  {Type: genai.TypeNumber, Nullable: true},
		"returnTrip": {Type: genai.TypeBoolean, Nullable: true},
		"returnDate": {Type: genai.TypeString, Nullable: true},
		"intent":     {Type: genai.TypeString, Enum: intentNames},
		"message":    {Type: genai.TypeString, Nullable: true},
	},
	Required: []string{"intent"},
}

// GeminiParser extracts trip details with Gemini and falls back to pattern
// matching whenever the model is unavailable or its answer is unusable.
type GeminiParser struct {
	gen      Generator
	fallback *PatternParser
	logger   *zap.Logger
}

func NewGeminiParser(gen Generator, logger *zap.Logger) *GeminiParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiParser{gen: gen, fallback: NewPatternParser(), logger: logger}
}

func (p *GeminiParser) Parse(ctx context.Context, message string) (models.ParsedIntent, error) {
	prompt := fmt.Sprintf("%s\n\nUser message: %q", extractionPrompt, message)
	raw, err := p.gen.GenerateContent(ctx, prompt)
	if err != nil {
		p.logger.Warn("Gemini extraction failed, using pattern matching", zap.Error(err))
		return p.fallback.Parse(ctx, message)
	}

	parsed, err := decodeIntent(raw)
	if err != nil {
		p.logger.Warn("Gemini returned malformed JSON, using pattern matching", zap.Error(err))
		return p.fallback.Parse(ctx, message)
	}
	if parsed.Intent == models.IntentError {
		return p.fallback.Parse(ctx, message)
	}
	return parsed, nil
}

// wireIntent mirrors the model's JSON; groupSize arrives as a number or a string.
type wireIntent struct {
	Intent     string          `json:"intent"`
	From       *string         `json:"from"`
	To         *string         `json:"to"`
	Date       *string         `json:"date"`
	Budget     *string         `json:"budget"`
	Mode       *string         `json:"mode"`
	GroupSize  json.RawMessage `json:"groupSize"`
	ReturnTrip *bool           `json:"returnTrip"`
	ReturnDate *string         `json:"returnDate"`
	Message    *string         `json:"message"`
}

func decodeIntent(raw string) (models.ParsedIntent, error) {
	clean := quotedNull.ReplaceAllString(stripCodeFence(raw), ": null")
	var w wireIntent
	if err := json.Unmarshal([]byte(clean), &w); err != nil {
		return models.ParsedIntent{}, err
	}

	parsed := models.ParsedIntent{
		Intent:     models.Intent(w.Intent),
		From:       deref(w.From),
		To:         deref(w.To),
		Date:       deref(w.Date),
		Budget:     models.Budget(deref(w.Budget)),
		Mode:       models.Mode(deref(w.Mode)),
		GroupSize:  decodeGroupSize(w.GroupSize),
		ReturnTrip: w.ReturnTrip,
		ReturnDate: deref(w.ReturnDate),
		Message:    deref(w.Message),
	}
	if !parsed.Intent.Valid() {
		parsed.Intent = models.IntentUnknown
		if parsed.Message == "" {
			parsed.Message = "I could not determine your intent. Can you please rephrase?"
		}
	}
	return parsed, nil
}

func decodeGroupSize(raw json.RawMessage) *int {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 1 {
		return nil
	}
	n := int(f)
	return &n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
