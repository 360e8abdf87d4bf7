package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"travix/models"
)

// Notifier tells a traveler about their booking. Delivery channels (email,
// SMS, WhatsApp) plug in behind this interface.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error
}

// LogNotifier writes confirmations to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) SendBookingConfirmation(_ context.Context, p models.ConfirmationPayload) error {
	if p.BookingID == "" {
		return fmt.Errorf("confirmation without booking id")
	}
	n.logger.Info("Booking confirmation",
		zap.String("bookingId", p.BookingID),
		zap.String("traveler", p.Traveler.Name),
		zap.String("destination", p.Destination),
		zap.String("date", p.Date),
		zap.String("message", ConfirmationMessage(p)))
	return nil
}

// ConfirmationMessage is the text sent to the traveler.
func ConfirmationMessage(p models.ConfirmationPayload) string {
	route := p.Destination
	if p.Origin != "" {
		route = p.Origin + " to " + p.Destination
	}
	if p.PreviousDate != "" {
		return fmt.Sprintf("Your trip %s has been moved from %s to %s. Reference %s.",
			route, p.PreviousDate, p.Date, p.BookingID)
	}
	return fmt.Sprintf("Your trip %s on %s is booked. Reference %s, total %s %.2f.",
		route, p.Date, p.BookingID, p.Currency, p.Total)
}
