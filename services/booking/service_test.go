package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "travix/database/repository/booking"
	"travix/models"
)

var errGateway = errors.New("gateway down")

type fakeGateway struct {
	session   PaymentSession
	err       error
	created   []string
	cancelled []string
}

func (f *fakeGateway) CreateSession(_ context.Context, _ float64, _ string, reference string) (PaymentSession, error) {
	f.created = append(f.created, reference)
	return f.session, f.err
}

func (f *fakeGateway) CancelSession(_ context.Context, id string) error {
	f.cancelled = append(f.cancelled, id)
	return f.err
}

type fakeQueue struct {
	payloads []models.ConfirmationPayload
	err      error
}

func (f *fakeQueue) EnqueueConfirmation(_ context.Context, p models.ConfirmationPayload) error {
	f.payloads = append(f.payloads, p)
	return f.err
}

func tripRequest() models.BookingRequest {
	return models.BookingRequest{
		TransportType: "flight",
		OutboundRef:   "FL-1",
		HotelRef:      "H-1",
		Origin:        "Delhi",
		Destination:   "Mumbai",
		Date:          "2026-12-25",
		GroupSize:     2,
		Total:         15100,
		Currency:      "INR",
		Traveler:      models.Traveler{Name: "Guest Traveler"},
	}
}

func TestBook_Offline(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	queue := &fakeQueue{}
	svc := NewBookingService(repo, nil, queue, nil)

	res, err := svc.Book(context.Background(), tripRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Regexp(t, `^TRX-[0-9A-F]{8}$`, res.BookingID)

	record, err := svc.GetBooking(context.Background(), res.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, record.Status)
	assert.Equal(t, PaymentStatusNotRequired, record.PaymentStatus)
	assert.Equal(t, "Mumbai", record.Request.Destination)

	require.Len(t, queue.payloads, 1)
	assert.Equal(t, res.BookingID, queue.payloads[0].BookingID)
	assert.Equal(t, 15100.0, queue.payloads[0].Total)
}

func TestBook_WithPaymentSession(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	gw := &fakeGateway{session: PaymentSession{ID: "pi_123", ClientSecret: "secret", Status: "requires_payment_method"}}
	svc := NewBookingService(repo, gw, nil, nil)

	res, err := svc.Book(context.Background(), tripRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "pi_123", res.PaymentID)
	assert.Equal(t, "secret", res.ClientSecret)
	assert.Equal(t, []string{res.BookingID}, gw.created)

	record, err := repo.GetByID(context.Background(), res.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPendingPayment, record.Status)
	assert.Equal(t, "pi_123", record.PaymentID)
}

func TestBook_GatewayFailure(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	queue := &fakeQueue{}
	svc := NewBookingService(repo, &fakeGateway{err: errGateway}, queue, nil)

	_, err := svc.Book(context.Background(), tripRequest())
	assert.ErrorIs(t, err, errGateway)
	assert.Empty(t, queue.payloads)
}

func TestBook_QueueFailureKeepsBooking(t *testing.T) {
	svc := NewBookingService(bookingRepo.NewMemoryBookingRepo(), nil, &fakeQueue{err: errors.New("redis down")}, nil)

	res, err := svc.Book(context.Background(), tripRequest())
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestBook_Rejections(t *testing.T) {
	tests := map[string]func(*models.BookingRequest){
		"no destination":    func(r *models.BookingRequest) { r.Destination = " " },
		"no group":          func(r *models.BookingRequest) { r.GroupSize = 0 },
		"zero total":        func(r *models.BookingRequest) { r.Total = 0 },
		"no outbound":       func(r *models.BookingRequest) { r.OutboundRef = "" },
		"hotel-only, no id": func(r *models.BookingRequest) { r.TransportType = ""; r.OutboundRef = ""; r.HotelRef = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := tripRequest()
			mutate(&req)
			gw := &fakeGateway{}
			res, err := NewBookingService(bookingRepo.NewMemoryBookingRepo(), gw, nil, nil).Book(context.Background(), req)
			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Message)
			assert.Empty(t, gw.created)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	repo := bookingRepo.NewMemoryBookingRepo()
	gw := &fakeGateway{session: PaymentSession{ID: "pi_9", Status: "requires_payment_method"}}
	svc := NewBookingService(repo, gw, nil, nil)

	res, err := svc.Book(context.Background(), tripRequest())
	require.NoError(t, err)

	record, err := svc.CancelBooking(context.Background(), res.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, record.Status)
	assert.Equal(t, []string{"pi_9"}, gw.cancelled)

	_, err = svc.CancelBooking(context.Background(), res.BookingID)
	var bookingErr *BookingError
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, "already_cancelled", bookingErr.Code)

	_, err = svc.CancelBooking(context.Background(), "TRX-MISSING")
	require.ErrorAs(t, err, &bookingErr)
	assert.Equal(t, "not_found", bookingErr.Code)
}

func TestRescheduleBooking(t *testing.T) {
	// Friday 16 October 2026, mid-morning.
	now := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string // travel date on the booking
		cancel   bool
		id       string
		newDate  string
		wantCode string
		wantDate string
	}{
		{name: "iso date", date: "2026-12-25", newDate: "2026-12-28", wantDate: "2026-12-28"},
		{name: "day first", date: "2026-12-25", newDate: "28/12/2026", wantDate: "2026-12-28"},
		{name: "short year", date: "2026-12-25", newDate: "5-1-27", wantDate: "2027-01-05"},
		{name: "today", date: "2026-12-25", newDate: "2026-10-16", wantDate: "2026-10-16"},
		{name: "chat date", date: "25 december", newDate: "2026-12-28", wantDate: "2026-12-28"},
		{name: "free text", date: "2026-12-25", newDate: "next week", wantCode: "invalid_date"},
		{name: "impossible day", date: "2026-12-25", newDate: "2026-02-30", wantCode: "invalid_date"},
		{name: "past", date: "2026-12-25", newDate: "2026-10-15", wantCode: "past_date"},
		{name: "unknown booking", date: "2026-12-25", id: "TRX-MISSING", newDate: "2026-12-28", wantCode: "not_found"},
		{name: "cancelled", date: "2026-12-25", cancel: true, newDate: "2026-12-28", wantCode: "booking_cancelled"},
		{name: "departs tomorrow", date: "2026-10-17", newDate: "2026-12-28", wantCode: "too_late"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			queue := &fakeQueue{}
			svc := NewBookingService(bookingRepo.NewMemoryBookingRepo(), nil, queue, nil)
			svc.Now = func() time.Time { return now }

			req := tripRequest()
			req.Date = tt.date
			placed, err := svc.Book(ctx, req)
			require.NoError(t, err)
			if tt.cancel {
				_, err = svc.CancelBooking(ctx, placed.BookingID)
				require.NoError(t, err)
			}
			id := placed.BookingID
			if tt.id != "" {
				id = tt.id
			}

			res, err := svc.RescheduleBooking(ctx, id, tt.newDate)
			if tt.wantCode != "" {
				var bookingErr *BookingError
				require.ErrorAs(t, err, &bookingErr)
				assert.Equal(t, tt.wantCode, bookingErr.Code)
				assert.Len(t, queue.payloads, 1, "only the booking confirmation is sent")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, placed.BookingID, res.BookingID)
			assert.Equal(t, tt.date, res.OriginalDate)
			assert.Equal(t, tt.wantDate, res.NewDate)
			assert.Equal(t, tt.wantDate, res.Booking.Request.Date)

			stored, err := svc.GetBooking(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, stored.Request.Date)

			require.Len(t, queue.payloads, 2)
			assert.Equal(t, tt.wantDate, queue.payloads[1].Date)
			assert.Equal(t, tt.date, queue.payloads[1].PreviousDate)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1510000), minorUnits(15100, "INR"))
	assert.Equal(t, int64(123450), minorUnits(1234.5, "usd"))
	assert.Equal(t, int64(5000), minorUnits(5000, "JPY"))
}
