package trip

import (
	"context"
	"time"

	"travix/models"
)

// TripService runs one conversational turn of trip planning.
type TripService interface {
	ProcessTurn(ctx context.Context, req models.TurnRequest) (*models.TurnResult, error)
}

// IntentParser extracts trip fields and an intent from a free-text message.
type IntentParser interface {
	Parse(ctx context.Context, message string) (models.ParsedIntent, error)
}

// DateParser understands the dates travelers type.
type DateParser interface {
	Parse(text string, now time.Time) (time.Time, bool)
	FormatForAPI(t time.Time) string
}

// TransportSearcher finds bookable legs for a single mode.
type TransportSearcher interface {
	Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error)
}

// HotelSearcher finds hotels at a destination within a budget tier.
type HotelSearcher interface {
	Search(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error)
}

// CabPricer quotes ground transport between two places.
type CabPricer interface {
	Quote(ctx context.Context, origin, destination string) ([]models.CabQuote, error)
}

// Booker places a booking with the booking API.
type Booker interface {
	Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error)
}

// Assistant answers travel questions that are not booking steps.
type Assistant interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error)
	Itinerary(ctx context.Context, req models.ItineraryRequest) (string, error)
}

// PriceJitter returns a value in [min, max]. It prices ground transport when
// the cab pricer has nothing to offer.
type PriceJitter func(min, max int) int

// Dependencies are the collaborators a DefaultTripService is built from.
// Assistant, Metrics, Clock and Jitter are optional.
type Dependencies struct {
	Parser    IntentParser
	Dates     DateParser
	Transport map[models.Mode]TransportSearcher
	Hotels    HotelSearcher
	Cabs      CabPricer
	Booker    Booker
	Assistant Assistant
	Metrics   *Metrics
	Clock     func() time.Time
	Jitter    PriceJitter
	Currency  string
}
