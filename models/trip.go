package models

import (
	"errors"
	"fmt"
	"strings"
)

// Slot names a TripContext field the assistant can ask the traveler for.
type Slot string

const (
	SlotFrom       Slot = "from"
	SlotTo         Slot = "to"
	SlotDate       Slot = "date"
	SlotMode       Slot = "mode"
	SlotBudget     Slot = "budget"
	SlotGroupSize  Slot = "groupSize"
	SlotReturnTrip Slot = "returnTrip"
	SlotReturnDate Slot = "returnDate"
)

// Mode is the outbound transport type. Unrecognised answers are kept verbatim.
type Mode string

const (
	ModeFlight Mode = "Flight"
	ModeTrain  Mode = "Train"
	ModeBus    Mode = "Bus"
)

// Known reports whether m is one of the searchable transport modes.
func (m Mode) Known() bool {
	switch m {
	case ModeFlight, ModeTrain, ModeBus:
		return true
	}
	return false
}

// Kind is the lower-case transport type used on plans and bookings.
func (m Mode) Kind() string {
	return strings.ToLower(string(m))
}

// StationName is where the ground-transport legs start and end for this mode.
func (m Mode) StationName() string {
	switch m {
	case ModeTrain:
		return "Train Station"
	case ModeBus:
		return "Bus Station"
	default:
		return "Airport"
	}
}

// Budget is the hotel price tier. Unrecognised answers are kept verbatim.
type Budget string

const (
	BudgetLuxury   Budget = "Luxury"
	BudgetMedium   Budget = "Medium"
	BudgetFriendly Budget = "Budget-friendly"
)

// TripContext is the whole conversation state. It is returned to the caller
// after every turn and echoed back on the next one; empty values mean "not yet known".
type TripContext struct {
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Date        string `json:"date,omitempty"`
	Mode        Mode   `json:"mode,omitempty"`
	Budget      Budget `json:"budget,omitempty"`
	GroupSize   int    `json:"groupSize,omitempty"`
	ReturnTrip  bool   `json:"returnTrip,omitempty"`
	ReturnDate  string `json:"returnDate,omitempty"`
	IsHotelOnly bool   `json:"isHotelOnly,omitempty"`
	Ask         Slot   `json:"ask,omitempty"`

	Flight       *FlightOffer `json:"flight,omitempty"`
	Train        *TrainOffer  `json:"train,omitempty"`
	Bus          *BusOffer    `json:"bus,omitempty"`
	ReturnFlight *FlightOffer `json:"returnFlight,omitempty"`
	ReturnTrain  *TrainOffer  `json:"returnTrain,omitempty"`
	ReturnBus    *BusOffer    `json:"returnBus,omitempty"`
	Hotel        *HotelOffer  `json:"hotel,omitempty"`

	LastPlannedTrip  *TripPlanData `json:"lastPlannedTrip,omitempty"`
	BookingReference string        `json:"bookingReference,omitempty"`
}

// Has reports whether the slot holds a value.
func (tc TripContext) Has(slot Slot) bool {
	switch slot {
	case SlotFrom:
		return tc.From != ""
	case SlotTo:
		return tc.To != ""
	case SlotDate:
		return tc.Date != ""
	case SlotMode:
		return tc.Mode != ""
	case SlotBudget:
		return tc.Budget != ""
	case SlotGroupSize:
		return tc.GroupSize > 0
	case SlotReturnTrip:
		return tc.ReturnTrip
	case SlotReturnDate:
		return tc.ReturnDate != ""
	}
	return false
}

// Without returns a copy with the slot cleared.
func (tc TripContext) Without(slot Slot) TripContext {
	switch slot {
	case SlotFrom:
		tc.From = ""
	case SlotTo:
		tc.To = ""
	case SlotDate:
		tc.Date = ""
	case SlotMode:
		tc.Mode = ""
	case SlotBudget:
		tc.Budget = ""
	case SlotGroupSize:
		tc.GroupSize = 0
	case SlotReturnTrip:
		tc.ReturnTrip = false
	case SlotReturnDate:
		tc.ReturnDate = ""
	}
	return tc
}

// WithAsk returns a copy that is waiting for an answer to slot.
func (tc TripContext) WithAsk(slot Slot) TripContext {
	tc.Ask = slot
	return tc
}

// Outbound returns the selected outbound leg, if any.
func (tc TripContext) Outbound() (Transport, bool) {
	switch {
	case tc.Flight != nil:
		return tc.Flight, true
	case tc.Train != nil:
		return tc.Train, true
	case tc.Bus != nil:
		return tc.Bus, true
	}
	return nil, false
}

// Return returns the selected return leg, if any.
func (tc TripContext) Return() (Transport, bool) {
	switch {
	case tc.ReturnFlight != nil:
		return tc.ReturnFlight, true
	case tc.ReturnTrain != nil:
		return tc.ReturnTrain, true
	case tc.ReturnBus != nil:
		return tc.ReturnBus, true
	}
	return nil, false
}

// NeedsReturnLeg reports whether a round trip still lacks its return selection.
func (tc TripContext) NeedsReturnLeg() bool {
	if !tc.ReturnTrip {
		return false
	}
	_, ok := tc.Return()
	return !ok
}

// ErrLegConflict is wrapped by Validate for every leg invariant violation.
var ErrLegConflict = errors.New("conflicting transport legs")

// Validate checks the leg invariants of a context received from a caller.
func (tc TripContext) Validate() error {
	outbound := 0
	for _, set := range []bool{tc.Flight != nil, tc.Train != nil, tc.Bus != nil} {
		if set {
			outbound++
		}
	}
	if outbound > 1 {
		return fmt.Errorf("%w: more than one outbound leg selected", ErrLegConflict)
	}
	if leg, ok := tc.Outbound(); ok && tc.Mode.Known() && leg.Mode() != tc.Mode {
		return fmt.Errorf("%w: %s selected for a %s trip", ErrLegConflict, leg.Mode().Kind(), tc.Mode.Kind())
	}
	if ret, ok := tc.Return(); ok {
		if !tc.ReturnTrip {
			return fmt.Errorf("%w: return leg on a one-way trip", ErrLegConflict)
		}
		out, ok := tc.Outbound()
		if !ok || out.Mode() != ret.Mode() {
			return fmt.Errorf("%w: return %s without a matching outbound leg", ErrLegConflict, ret.Mode().Kind())
		}
		returns := 0
		for _, set := range []bool{tc.ReturnFlight != nil, tc.ReturnTrain != nil, tc.ReturnBus != nil} {
			if set {
				returns++
			}
		}
		if returns > 1 {
			return fmt.Errorf("%w: more than one return leg selected", ErrLegConflict)
		}
	}
	return nil
}
