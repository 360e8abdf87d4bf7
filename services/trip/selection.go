package trip

import (
	"travix/models"
)

// Select applies an offer the traveler picked from a previous turn's options.
func (m *Merger) Select(tc models.TripContext, sel models.Selection) (models.TripContext, error) {
	if sel.Kind == models.SelectHotel {
		if sel.Hotel == nil {
			return tc, newSelectionError("missing_offer", "no hotel was provided with the selection")
		}
		hotel := *sel.Hotel
		tc.Hotel = &hotel
		return dropPlan(tc), nil
	}

	leg, err := selectedLeg(sel)
	if err != nil {
		return tc, err
	}
	if tc.IsHotelOnly {
		return tc, newSelectionError("hotel_only", "transport cannot be added to a hotel-only booking")
	}
	if tc.Mode.Known() && leg.Mode() != tc.Mode {
		return tc, newSelectionError("mode_mismatch", "a "+leg.Mode().Kind()+" was selected for a "+tc.Mode.Kind()+" trip")
	}

	if sel.Leg == models.LegReturn {
		return selectReturn(tc, leg)
	}
	if out, ok := tc.Outbound(); ok && out.Mode() != leg.Mode() {
		return tc, newSelectionError("leg_conflict", "an outbound "+out.Mode().Kind()+" is already selected")
	}

	tc = dropLegs(tc)
	switch l := leg.(type) {
	case *models.FlightOffer:
		tc.Flight = l
	case *models.TrainOffer:
		tc.Train = l
	case *models.BusOffer:
		tc.Bus = l
	}
	if !tc.Mode.Known() {
		tc.Mode = leg.Mode()
	}
	return dropPlan(tc), nil
}

func selectReturn(tc models.TripContext, leg models.Transport) (models.TripContext, error) {
	if !tc.ReturnTrip {
		return tc, newSelectionError("not_round_trip", "a return leg can only be added to a round trip")
	}
	out, ok := tc.Outbound()
	if !ok {
		return tc, newSelectionError("outbound_missing", "select the outbound "+leg.Mode().Kind()+" first")
	}
	if out.Mode() != leg.Mode() {
		return tc, newSelectionError("leg_conflict", "the return leg must match the outbound "+out.Mode().Kind())
	}

	tc = dropReturnLeg(tc)
	switch l := leg.(type) {
	case *models.FlightOffer:
		tc.ReturnFlight = l
	case *models.TrainOffer:
		tc.ReturnTrain = l
	case *models.BusOffer:
		tc.ReturnBus = l
	}
	return dropPlan(tc), nil
}

func selectedLeg(sel models.Selection) (models.Transport, error) {
	switch sel.Kind {
	case models.SelectFlight:
		if sel.Flight != nil {
			f := *sel.Flight
			return &f, nil
		}
	case models.SelectTrain:
		if sel.Train != nil {
			t := *sel.Train
			return &t, nil
		}
	case models.SelectBus:
		if sel.Bus != nil {
			b := *sel.Bus
			return &b, nil
		}
	default:
		return nil, newSelectionError("unknown_kind", "unknown selection kind "+string(sel.Kind))
	}
	return nil, newSelectionError("missing_offer", "no "+string(sel.Kind)+" was provided with the selection")
}
