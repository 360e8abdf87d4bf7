package models

import "time"

// Traveler is the lead passenger on a booking. The chat flow fills it with
// placeholders until the caller supplies real details.
type Traveler struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// BookingRequest is what the booking trigger sends to the booking API.
type BookingRequest struct {
	TransportType      string    `json:"transportType"` // "flight", "train", "bus" or "" for hotel-only
	OutboundRef        string    `json:"outboundRef,omitempty"`
	OutboundLabel      string    `json:"outboundLabel,omitempty"`
	ReturnRef          string    `json:"returnRef,omitempty"`
	ReturnLabel        string    `json:"returnLabel,omitempty"`
	HotelRef           string    `json:"hotelRef,omitempty"`
	HotelName          string    `json:"hotelName,omitempty"`
	Origin             string    `json:"origin,omitempty"`
	Destination        string    `json:"destination"`
	Date               string    `json:"date"`
	ReturnDate         string    `json:"returnDate,omitempty"`
	GroupSize          int       `json:"groupSize"`
	TransportCost      float64   `json:"transportCost"`
	ReturnCost         float64   `json:"returnCost"`
	HotelCost          float64   `json:"hotelCost"`
	GroundTransportFee float64   `json:"groundTransportFee"`
	Total              float64   `json:"total"`
	Currency           string    `json:"currency"`
	Traveler           Traveler  `json:"traveler"`
	RequestedAt        time.Time `json:"requestedAt"`
}

// BookingResult is the booking API's answer. Success=false with a message is a
// business rejection; transport failures are returned as errors instead.
type BookingResult struct {
	Success      bool   `json:"success"`
	BookingID    string `json:"bookingId,omitempty"`
	Message      string `json:"message,omitempty"`
	PaymentID    string `json:"paymentId,omitempty"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

// BookingRecord is a stored booking.
type BookingRecord struct {
	ID            string         `bson:"id" json:"id"`
	Status        string         `bson:"status" json:"status"` // "pending_payment", "confirmed", "cancelled"
	Request       BookingRequest `bson:"request" json:"request"`
	PaymentID     string         `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	PaymentStatus string         `bson:"payment_status,omitempty" json:"paymentStatus,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// RescheduleResult reports a moved booking.
type RescheduleResult struct {
	BookingID    string         `json:"bookingId"`
	OriginalDate string         `json:"originalDate"`
	NewDate      string         `json:"newDate"`
	Booking      *BookingRecord `json:"booking"`
}

const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
)
