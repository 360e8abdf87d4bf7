package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"travix/models"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	p := models.ConfirmationPayload{BookingID: "TRX-1", Origin: "Delhi", Destination: "Goa", Date: "2026-12-25", Total: 9000, Currency: "INR"}
	assert.NoError(t, n.SendBookingConfirmation(context.Background(), p))
	assert.Equal(t, 1, logs.FilterField(zap.String("bookingId", "TRX-1")).Len())

	assert.Error(t, n.SendBookingConfirmation(context.Background(), models.ConfirmationPayload{}))
}

func TestConfirmationMessage(t *testing.T) {
	p := models.ConfirmationPayload{BookingID: "TRX-1", Destination: "Goa", Date: "2026-12-25", Total: 9000, Currency: "INR"}
	assert.Equal(t, "Your trip Goa on 2026-12-25 is booked. Reference TRX-1, total INR 9000.00.", ConfirmationMessage(p))
}

func TestConfirmationMessage_Rescheduled(t *testing.T) {
	p := models.ConfirmationPayload{BookingID: "TRX-1", Origin: "Delhi", Destination: "Goa", Date: "2026-12-28", PreviousDate: "2026-12-25"}
	assert.Equal(t, "Your trip Delhi to Goa has been moved from 2026-12-25 to 2026-12-28. Reference TRX-1.", ConfirmationMessage(p))
}
