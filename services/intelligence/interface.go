// File: services/intelligence/interface.go
package intelligence

import (
	"context"

	"travix/models"
)

// ContextStore keeps the latest trip context per chat session so clients that
// only send a session id can resume a conversation.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) (models.TripContext, bool, error)
	Set(ctx context.Context, sessionID string, tc models.TripContext) error
	Clear(ctx context.Context, sessionID string) error
}

// HotelSource is the catalogue GeminiHotelSearch falls back to.
type HotelSource interface {
	Search(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error)
}
