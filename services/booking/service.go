package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "travix/database/repository/booking"
	"travix/models"
	"travix/services/dateparse"
)

// rescheduleCutoff is how close to departure a booking can still be moved.
const rescheduleCutoff = 24 * time.Hour

// Book records the booking, opens a payment session and queues the
// confirmation. Invalid requests are rejected with Success=false.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	// 1. Validate what the booking API needs.
	if msg := validateRequest(req); msg != "" {
		s.Logger.Info("Booking rejected", zap.String("reason", msg))
		return models.BookingResult{Success: false, Message: msg}, nil
	}

	// 2. Persist the booking before taking payment.
	now := s.Now()
	record := &models.BookingRecord{
		ID:        newReference(),
		Status:    models.BookingStatusPendingPayment,
		Request:   req,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return models.BookingResult{}, fmt.Errorf("failed to save booking: %w", err)
	}

	// 3. Open the payment session.
	session, err := s.Payments.CreateSession(ctx, req.Total, req.Currency, record.ID)
	if err != nil {
		if uerr := s.Repo.UpdateStatus(ctx, record.ID, models.BookingStatusCancelled); uerr != nil {
			s.Logger.Error("Failed to cancel unpaid booking", zap.String("bookingId", record.ID), zap.Error(uerr))
		}
		return models.BookingResult{}, fmt.Errorf("payment session: %w", err)
	}
	if err := s.Repo.SetPayment(ctx, record.ID, session.ID, session.Status); err != nil {
		return models.BookingResult{}, fmt.Errorf("failed to record payment: %w", err)
	}
	if session.Status == PaymentStatusNotRequired {
		if err := s.Repo.UpdateStatus(ctx, record.ID, models.BookingStatusConfirmed); err != nil {
			return models.BookingResult{}, fmt.Errorf("failed to confirm booking: %w", err)
		}
	}

	// 4. Queue the confirmation. A queue outage does not undo the booking.
	if s.Queue != nil {
		payload := models.ConfirmationPayload{
			BookingID:   record.ID,
			Traveler:    req.Traveler,
			Origin:      req.Origin,
			Destination: req.Destination,
			Date:        req.Date,
			Total:       req.Total,
			Currency:    req.Currency,
			CreatedAt:   now,
		}
		if err := s.Queue.EnqueueConfirmation(ctx, payload); err != nil {
			s.Logger.Error("Failed to enqueue booking confirmation", zap.String("bookingId", record.ID), zap.Error(err))
		}
	}

	s.Logger.Info("Booking created",
		zap.String("bookingId", record.ID),
		zap.String("destination", req.Destination),
		zap.Float64("total", req.Total))

	return models.BookingResult{
		Success:      true,
		BookingID:    record.ID,
		PaymentID:    session.ID,
		ClientSecret: session.ClientSecret,
		Message:      "Booking received",
	}, nil
}

func validateRequest(req models.BookingRequest) string {
	switch {
	case strings.TrimSpace(req.Destination) == "":
		return "destination is required"
	case req.GroupSize < 1:
		return "group size must be at least 1"
	case req.Total <= 0:
		return "booking total must be positive"
	case req.TransportType != "" && req.OutboundRef == "":
		return "outbound transport reference is required"
	case req.TransportType == "" && req.HotelRef == "":
		return "hotel reference is required"
	}
	return ""
}

// newReference returns a short booking reference such as TRX-1A2B3C4D.
func newReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TRX-" + strings.ToUpper(id[:8])
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil, newBookingError("not_found", "no booking with reference "+id)
	}
	return record, err
}

// CancelBooking voids the payment session and marks the booking cancelled.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	record, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status == models.BookingStatusCancelled {
		return nil, newBookingError("already_cancelled", "booking "+id+" is already cancelled")
	}

	if record.PaymentID != "" && record.PaymentStatus != PaymentStatusNotRequired {
		if err := s.Payments.CancelSession(ctx, record.PaymentID); err != nil {
			return nil, err
		}
	}
	if err := s.Repo.UpdateStatus(ctx, id, models.BookingStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	s.Logger.Info("Booking cancelled", zap.String("bookingId", id))
	return s.Repo.GetByID(ctx, id)
}

// RescheduleBooking moves the travel date of an active booking. newDate is
// YYYY-MM-DD or DD/MM/YYYY and may not be before today.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, id, newDate string) (*models.RescheduleResult, error) {
	now := s.Now()
	date, ok := dateparse.ParseExact(newDate, now.Location())
	if !ok {
		return nil, newBookingError("invalid_date", "Invalid date format. Use YYYY-MM-DD or DD/MM/YYYY")
	}
	if dateparse.IsPast(date, now) {
		return nil, newBookingError("past_date", "New date must be in the future")
	}

	record, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status == models.BookingStatusCancelled {
		return nil, newBookingError("booking_cancelled", "booking "+id+" is cancelled")
	}
	original := record.Request.Date
	// Dates stored as typed in chat resolve against when the booking was made.
	if departure, ok := dateparse.Parse(original, record.CreatedAt); ok && departure.Sub(now) < rescheduleCutoff {
		return nil, newBookingError("too_late", "Bookings cannot be rescheduled within 24 hours of departure")
	}

	formatted := date.Format(dateparse.APILayout)
	if err := s.Repo.SetTravelDate(ctx, id, formatted); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking: %w", err)
	}
	if s.Queue != nil {
		payload := models.ConfirmationPayload{
			BookingID:    id,
			Traveler:     record.Request.Traveler,
			Origin:       record.Request.Origin,
			Destination:  record.Request.Destination,
			Date:         formatted,
			PreviousDate: original,
			Total:        record.Request.Total,
			Currency:     record.Request.Currency,
			CreatedAt:    now,
		}
		if err := s.Queue.EnqueueConfirmation(ctx, payload); err != nil {
			s.Logger.Error("Failed to enqueue reschedule confirmation", zap.String("bookingId", id), zap.Error(err))
		}
	}
	s.Logger.Info("Booking rescheduled",
		zap.String("bookingId", id),
		zap.String("from", original),
		zap.String("to", formatted))

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.RescheduleResult{
		BookingID:    id,
		OriginalDate: original,
		NewDate:      formatted,
		Booking:      updated,
	}, nil
}
