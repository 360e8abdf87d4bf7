package models

// Intent is the primary purpose the NLU collaborator found in a message.
type Intent string

const (
	IntentBookTrip     Intent = "book_trip"
	IntentBookHotel    Intent = "book_hotel"
	IntentBookCar      Intent = "book_car"
	IntentDisplayTrip  Intent = "display_trip"
	IntentCancelTrip   Intent = "cancel_trip"
	IntentGreet        Intent = "greet"
	IntentGeneralQuery Intent = "general_query"
	IntentError        Intent = "error"
	IntentUnknown      Intent = "unknown"
)

// Valid reports whether i is one of the intents the parser may return.
func (i Intent) Valid() bool {
	switch i {
	case IntentBookTrip, IntentBookHotel, IntentBookCar, IntentDisplayTrip, IntentCancelTrip,
		IntentGreet, IntentGeneralQuery, IntentError, IntentUnknown:
		return true
	}
	return false
}

// ParsedIntent is a one-shot NLU extraction result. It is consumed by a single turn.
type ParsedIntent struct {
	Intent     Intent `json:"intent"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Date       string `json:"date,omitempty"`
	Budget     Budget `json:"budget,omitempty"`
	Mode       Mode   `json:"mode,omitempty"`
	GroupSize  *int   `json:"groupSize,omitempty"`
	ReturnTrip *bool  `json:"returnTrip,omitempty"`
	ReturnDate string `json:"returnDate,omitempty"`
	Message    string `json:"message,omitempty"`
}
