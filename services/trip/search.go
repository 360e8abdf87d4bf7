package trip

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"travix/models"
)

func (s *DefaultTripService) searchOutbound(ctx context.Context, tc models.TripContext) *models.TurnResult {
	searcher, ok := s.deps.Transport[tc.Mode]
	if !ok || !tc.Mode.Known() {
		s.logger.Info("Unsupported transport mode", zap.String("mode", string(tc.Mode)))
		return failure(tc.Without(models.SlotMode),
			fmt.Sprintf("Sorry, I can't search for %q trips yet. Please choose Flight, Train, or Bus.", string(tc.Mode)))
	}

	q := models.TransportQuery{
		Origin:      tc.From,
		Destination: tc.To,
		Date:        s.apiDate(tc.Date),
		Passengers:  partySize(tc.GroupSize, 1),
	}
	done := s.deps.Metrics.track(tc.Mode.Kind() + "_search")
	offers, err := searcher.Search(ctx, q)
	done(err)
	if err != nil {
		s.logger.Error("Transport search failed",
			zap.String("mode", tc.Mode.Kind()), zap.String("from", tc.From), zap.String("to", tc.To), zap.Error(err))
		return failure(tc, fmt.Sprintf("I'm experiencing difficulty searching for %s at the moment. Please try again in a few moments.", plural(tc.Mode)))
	}
	if len(offers) == 0 {
		return failure(tc.Without(models.SlotDate),
			fmt.Sprintf("Unfortunately, no %s are available from %s to %s on that date. Would you like to try a different travel date?",
				plural(tc.Mode), tc.From, tc.To))
	}

	data := transportData(models.LegOutbound, offers)
	switch {
	case tc.ReturnTrip && tc.ReturnDate == "":
		res := askSlot(tc, models.SlotReturnDate, data)
		res.Message = fmt.Sprintf("Excellent! I've found several %s for your outbound journey. When would you like to return?", plural(tc.Mode))
		return res
	case tc.Budget != "":
		return &models.TurnResult{
			Success: true,
			Message: fmt.Sprintf("Excellent! I've found several %s options for you. Please select your preferred %s.", tc.Mode.Kind(), tc.Mode.Kind()),
			Data:    data,
			Context: tc,
		}
	default:
		res := askSlot(tc, models.SlotBudget, data)
		res.Message = fmt.Sprintf("Excellent! I've found several %s options for you. Please select your preferred %s. Meanwhile, what budget range works best for your trip?",
			tc.Mode.Kind(), tc.Mode.Kind())
		return res
	}
}

func (s *DefaultTripService) searchReturn(ctx context.Context, tc models.TripContext) *models.TurnResult {
	out, _ := tc.Outbound()
	mode := out.Mode()
	searcher, ok := s.deps.Transport[mode]
	if !ok {
		return failure(tc, fmt.Sprintf("Sorry, I can't search for return %s right now.", plural(mode)))
	}

	q := models.TransportQuery{
		Origin:      tc.To,
		Destination: tc.From,
		Date:        s.apiDate(tc.ReturnDate),
		Passengers:  partySize(tc.GroupSize, 1),
	}
	done := s.deps.Metrics.track(mode.Kind() + "_search")
	offers, err := searcher.Search(ctx, q)
	done(err)
	if err != nil {
		s.logger.Error("Return transport search failed",
			zap.String("mode", mode.Kind()), zap.String("from", tc.To), zap.String("to", tc.From), zap.Error(err))
		return failure(tc, fmt.Sprintf("I'm experiencing difficulty searching for return %s at the moment. Please try again in a few moments.", plural(mode)))
	}
	if len(offers) == 0 {
		return failure(tc.Without(models.SlotReturnDate),
			fmt.Sprintf("Unfortunately, no return %s are available from %s to %s on %s. Would you like to try a different return date?",
				plural(mode), tc.To, tc.From, tc.ReturnDate))
	}

	return &models.TurnResult{
		Success: true,
		Message: fmt.Sprintf("Perfect! I've found several return %s options for you. Please select your preferred return %s.", mode.Kind(), mode.Kind()),
		Data:    transportData(models.LegReturn, offers),
		Context: tc,
	}
}

func (s *DefaultTripService) searchHotels(ctx context.Context, tc models.TripContext) *models.TurnResult {
	q := models.HotelQuery{
		Destination: tc.To,
		Budget:      tc.Budget,
		CheckIn:     s.checkIn(tc.Date),
		Guests:      partySize(tc.GroupSize, 2),
	}
	done := s.deps.Metrics.track("hotel_search")
	hotels, err := s.deps.Hotels.Search(ctx, q)
	done(err)
	if err != nil {
		s.logger.Error("Hotel search failed", zap.String("to", tc.To), zap.String("budget", string(tc.Budget)), zap.Error(err))
		return failure(tc, "I'm experiencing difficulty searching for hotels at the moment. Please try again in a few moments.")
	}
	if len(hotels) == 0 {
		return failure(tc.Without(models.SlotBudget),
			fmt.Sprintf("Unfortunately, no hotels are currently available in %s within the %s budget range. Would you like to explore a different budget category?",
				tc.To, tc.Budget))
	}

	msg := "Perfect! I've found several hotels that match your budget preferences. Please select your preferred accommodation."
	if tc.IsHotelOnly {
		msg = fmt.Sprintf("Excellent! I've found %d available hotels in %s. Please select your preferred accommodation.", len(hotels), tc.To)
	}
	return &models.TurnResult{
		Success: true,
		Message: msg,
		Data:    &models.TurnData{AvailableHotels: hotels},
		Context: tc,
	}
}

// apiDate normalises a travel date for the search APIs. Text the date parser
// cannot read is passed through for the search to interpret.
func (s *DefaultTripService) apiDate(text string) string {
	if t, ok := s.deps.Dates.Parse(text, s.deps.Clock()); ok {
		return s.deps.Dates.FormatForAPI(t)
	}
	return text
}

// checkIn is the travel date, or today when it cannot be read.
func (s *DefaultTripService) checkIn(text string) string {
	now := s.deps.Clock()
	if t, ok := s.deps.Dates.Parse(text, now); ok {
		return s.deps.Dates.FormatForAPI(t)
	}
	return s.deps.Dates.FormatForAPI(now)
}

func transportData(leg models.Leg, offers []models.Transport) *models.TurnData {
	data := &models.TurnData{Leg: leg}
	for _, offer := range offers {
		switch o := offer.(type) {
		case *models.FlightOffer:
			data.AvailableFlights = append(data.AvailableFlights, o)
		case *models.TrainOffer:
			data.AvailableTrains = append(data.AvailableTrains, o)
		case *models.BusOffer:
			data.AvailableBuses = append(data.AvailableBuses, o)
		}
	}
	return data
}

func partySize(n, fallback int) int {
	if n > 0 {
		return n
	}
	return fallback
}

func plural(m models.Mode) string {
	if m == models.ModeBus {
		return "buses"
	}
	return m.Kind() + "s"
}
