package trip

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"travix/models"
)

// guestTraveler stands in for the lead traveler until the caller collects contact details.
var guestTraveler = models.Traveler{
	Name:  "Guest Traveler",
	Email: "guest@travix.app",
	Phone: "+910000000000",
}

// BuildBookingRequest turns a finalized plan into the request sent to the booking API.
func BuildBookingRequest(tc models.TripContext, plan models.TripPlanData, now time.Time) models.BookingRequest {
	req := models.BookingRequest{
		TransportType: plan.TransportType,
		Origin:        tc.From,
		Destination:   tc.To,
		Date:          tc.Date,
		GroupSize:     plan.GroupSize,
		Total:         plan.Total,
		Currency:      plan.Currency,
		Traveler:      guestTraveler,
		RequestedAt:   now,
	}
	g := float64(plan.GroupSize)

	if plan.Hotel != nil {
		req.HotelRef = plan.Hotel.ID
		req.HotelName = plan.Hotel.Name
		req.HotelCost = plan.Hotel.Price * g
	}
	if plan.Transport != nil {
		req.OutboundRef = plan.Transport.Reference()
		req.OutboundLabel = plan.Transport.Label()
		req.TransportCost = plan.Transport.Fare() * g
	}
	if plan.ReturnTransport != nil {
		req.ReturnRef = plan.ReturnTransport.Reference()
		req.ReturnLabel = plan.ReturnTransport.Label()
		req.ReturnCost = plan.ReturnTransport.Fare() * g
		req.ReturnDate = plan.ReturnDate
	}
	if plan.CabToStation != nil {
		req.GroundTransportFee += plan.CabToStation.Price
	}
	if plan.CabToHotel != nil {
		req.GroundTransportFee += plan.CabToHotel.Price
	}
	return req
}

// book places the booking for a ready plan. A context that already holds a
// booking reference is not booked twice.
func (s *DefaultTripService) book(ctx context.Context, tc models.TripContext) *models.TurnResult {
	if tc.BookingReference != "" {
		return &models.TurnResult{
			Success: true,
			Message: fmt.Sprintf("This trip is already booked. Your booking reference is %s.", tc.BookingReference),
			Data:    &models.TurnData{Plan: tc.LastPlannedTrip},
			Context: tc,
		}
	}
	if s.deps.Booker == nil {
		s.logger.Error("Booking requested but no booker is configured")
		return failure(tc, "I'm experiencing difficulty processing your booking at the moment. Please try again shortly.")
	}

	plan := tc.LastPlannedTrip
	if plan == nil {
		return s.finalize(ctx, tc)
	}

	req := BuildBookingRequest(tc, *plan, s.deps.Clock())
	done := s.deps.Metrics.track("booker")
	result, err := s.deps.Booker.Book(ctx, req)
	done(err)
	if err != nil {
		s.logger.Error("Booking failed", zap.String("to", tc.To), zap.Error(err))
		return failure(tc, "I'm experiencing difficulty processing your booking at the moment. Please try again shortly.")
	}
	if !result.Success {
		s.logger.Info("Booking rejected", zap.String("reason", result.Message))
		return failure(tc, fmt.Sprintf("Unfortunately, we encountered an issue processing your booking: %s. Would you like to try again?", result.Message))
	}

	next := tc
	next.LastPlannedTrip = plan
	next.BookingReference = result.BookingID
	s.logger.Info("Trip booked", zap.String("bookingID", result.BookingID), zap.Float64("total", plan.Total))

	msg := fmt.Sprintf("Excellent news! Your journey from %s to %s on %s has been successfully confirmed. Your booking reference is %s. A confirmation email will arrive shortly.",
		tc.From, tc.To, tc.Date, result.BookingID)
	if tc.IsHotelOnly {
		msg = fmt.Sprintf("Excellent news! Your stay at %s in %s has been successfully confirmed. Your booking reference is %s. A confirmation email will arrive shortly.",
			tc.Hotel.Name, tc.To, result.BookingID)
	}
	return &models.TurnResult{
		Success: true,
		Message: msg,
		Data:    &models.TurnData{Plan: plan, Booking: &result},
		Context: next,
	}
}
