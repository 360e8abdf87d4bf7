package bookingRepo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travix/models"
)

// MemoryBookingRepo keeps bookings in process memory. It is used when no
// database is configured and in tests.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.BookingRecord
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.BookingRecord)}
}

func (r *MemoryBookingRepo) Create(_ context.Context, booking *models.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking with id %s already exists", booking.ID)
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) GetByID(_ context.Context, id string) (*models.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.update(id, func(b *models.BookingRecord) { b.Status = status })
}

func (r *MemoryBookingRepo) SetPayment(_ context.Context, id, paymentID, paymentStatus string) error {
	return r.update(id, func(b *models.BookingRecord) {
		b.PaymentID = paymentID
		b.PaymentStatus = paymentStatus
	})
}

func (r *MemoryBookingRepo) SetTravelDate(_ context.Context, id, date string) error {
	return r.update(id, func(b *models.BookingRecord) { b.Request.Date = date })
}

func (r *MemoryBookingRepo) update(id string, apply func(*models.BookingRecord)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	apply(&booking)
	booking.UpdatedAt = time.Now()
	r.bookings[id] = booking
	return nil
}
