package models

// Leg tells the caller which direction a set of transport options is for.
type Leg string

const (
	LegOutbound Leg = "outbound"
	LegReturn   Leg = "return"
)

// SelectionKind is the kind of offer a traveler picked from a result list.
type SelectionKind string

const (
	SelectFlight SelectionKind = "flight"
	SelectTrain  SelectionKind = "train"
	SelectBus    SelectionKind = "bus"
	SelectHotel  SelectionKind = "hotel"
)

// Selection is an explicit choice of one offer from a previous turn's options.
type Selection struct {
	Kind   SelectionKind `json:"kind" binding:"required"`
	Leg    Leg           `json:"leg,omitempty"`
	Flight *FlightOffer  `json:"flight,omitempty"`
	Train  *TrainOffer   `json:"train,omitempty"`
	Bus    *BusOffer     `json:"bus,omitempty"`
	Hotel  *HotelOffer   `json:"hotel,omitempty"`
}

// TurnRequest is one user turn: the message plus the context echoed back by the caller.
type TurnRequest struct {
	Message   string      `json:"message"`
	Context   TripContext `json:"context"`
	SessionID string      `json:"sessionId,omitempty"`
	Selection *Selection  `json:"selection,omitempty"`
	// History is recent chat for free-form travel questions; booking turns ignore it.
	History []ChatMessage `json:"history,omitempty"`
}

// TurnData carries the options or the plan produced by a turn.
type TurnData struct {
	Leg              Leg            `json:"leg,omitempty"`
	AvailableFlights []*FlightOffer `json:"availableFlights,omitempty"`
	AvailableTrains  []*TrainOffer  `json:"availableTrains,omitempty"`
	AvailableBuses   []*BusOffer    `json:"availableBuses,omitempty"`
	AvailableHotels  []HotelOffer   `json:"availableHotels,omitempty"`
	Transport        Transport      `json:"transport,omitempty"`
	Plan             *TripPlanData  `json:"plan,omitempty"`
	Booking          *BookingResult `json:"booking,omitempty"`
}

// TurnResult is the reply to a turn. Context is always present and is the
// state the caller must send back with the next message.
type TurnResult struct {
	Success           bool        `json:"success"`
	AssistantFollowUp bool        `json:"assistantFollowUp,omitempty"`
	Ask               Slot        `json:"ask,omitempty"`
	Message           string      `json:"message"`
	Data              *TurnData   `json:"data,omitempty"`
	Context           TripContext `json:"context"`
}
