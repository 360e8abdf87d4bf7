package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "travix/database/repository/booking"
	"travix/models"
)

// BookingService places, looks up, reschedules and cancels trip bookings.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error)
	GetBooking(ctx context.Context, id string) (*models.BookingRecord, error)
	CancelBooking(ctx context.Context, id string) (*models.BookingRecord, error)
	RescheduleBooking(ctx context.Context, id, newDate string) (*models.RescheduleResult, error)
}

// ConfirmationQueue hands a confirmed booking to the background notifier.
type ConfirmationQueue interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments PaymentGateway
	Queue    ConfirmationQueue
	Logger   *zap.Logger
	Now      func() time.Time
}

// NewBookingService builds the service. payments and queue may be nil.
func NewBookingService(repo bookingRepo.BookingRepository, payments PaymentGateway, queue ConfirmationQueue, logger *zap.Logger) *DefaultBookingService {
	if payments == nil {
		payments = NoopGateway{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:     repo,
		Payments: payments,
		Queue:    queue,
		Logger:   logger,
		Now:      time.Now,
	}
}
