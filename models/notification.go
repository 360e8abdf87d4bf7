package models

import "time"

// ConfirmationPayload is queued after a successful booking so the traveler can
// be told about it out of band.
type ConfirmationPayload struct {
	BookingID    string    `json:"bookingId"`
	Traveler     Traveler  `json:"traveler"`
	Origin       string    `json:"origin,omitempty"`
	Destination  string    `json:"destination"`
	Date         string    `json:"date"`
	PreviousDate string    `json:"previousDate,omitempty"` // set on reschedule
	Total        float64   `json:"total"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}
