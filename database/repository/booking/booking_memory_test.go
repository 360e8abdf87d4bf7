package bookingRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

func TestMemoryBookingRepo(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	record := &models.BookingRecord{ID: "b-1", Status: models.BookingStatusPendingPayment}
	require.NoError(t, repo.Create(ctx, record))
	assert.Error(t, repo.Create(ctx, record))

	require.NoError(t, repo.SetPayment(ctx, "b-1", "pi_1", "requires_payment_method"))
	require.NoError(t, repo.UpdateStatus(ctx, "b-1", models.BookingStatusConfirmed))

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, got.Status)
	assert.Equal(t, "pi_1", got.PaymentID)
	assert.False(t, got.UpdatedAt.IsZero())

	// Returned records are copies.
	got.Status = "tampered"
	again, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, again.Status)

	require.NoError(t, repo.SetTravelDate(ctx, "b-1", "2026-12-28"))
	moved, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-28", moved.Request.Date)
	assert.Equal(t, models.BookingStatusConfirmed, moved.Status)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", "x"), ErrBookingNotFound)
	assert.ErrorIs(t, repo.SetTravelDate(ctx, "missing", "2026-12-28"), ErrBookingNotFound)
}
