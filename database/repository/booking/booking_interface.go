package bookingRepo

import (
	"context"
	"errors"

	"travix/models"
)

// ErrBookingNotFound is returned when no booking has the requested id.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.BookingRecord) error
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPayment(ctx context.Context, id, paymentID, paymentStatus string) error
	SetTravelDate(ctx context.Context, id, date string) error
}
