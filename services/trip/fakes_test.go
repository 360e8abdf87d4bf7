package trip

import (
	"context"
	"errors"
	"time"

	"travix/models"
	"travix/services/dateparse"
)

// Friday 16 October 2026.
var testNow = time.Date(2026, time.October, 16, 11, 0, 0, 0, time.UTC)

var errUpstream = errors.New("upstream unavailable")

type fakeParser struct {
	results map[string]models.ParsedIntent
	err     error
}

func (p *fakeParser) Parse(_ context.Context, message string) (models.ParsedIntent, error) {
	if p.err != nil {
		return models.ParsedIntent{}, p.err
	}
	if r, ok := p.results[message]; ok {
		return r, nil
	}
	return models.ParsedIntent{Intent: models.IntentUnknown}, nil
}

type fakeTransport struct {
	offers  []models.Transport
	err     error
	queries []models.TransportQuery
}

func (f *fakeTransport) Search(_ context.Context, q models.TransportQuery) ([]models.Transport, error) {
	f.queries = append(f.queries, q)
	return f.offers, f.err
}

type fakeHotels struct {
	hotels  []models.HotelOffer
	err     error
	queries []models.HotelQuery
}

func (f *fakeHotels) Search(_ context.Context, q models.HotelQuery) ([]models.HotelOffer, error) {
	f.queries = append(f.queries, q)
	return f.hotels, f.err
}

type fakeCabs struct {
	quotes map[string][]models.CabQuote
	err    error
}

func (f *fakeCabs) Quote(_ context.Context, origin, _ string) ([]models.CabQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes[origin], nil
}

type fakeBooker struct {
	result   models.BookingResult
	err      error
	requests []models.BookingRequest
}

func (f *fakeBooker) Book(_ context.Context, req models.BookingRequest) (models.BookingResult, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

type fakeAssistant struct {
	reply   string
	err     error
	asked   []models.ItineraryRequest
	history []models.ChatMessage
}

func (f *fakeAssistant) Chat(_ context.Context, _ string, history []models.ChatMessage) (string, error) {
	f.history = history
	return f.reply, f.err
}

func (f *fakeAssistant) Itinerary(_ context.Context, req models.ItineraryRequest) (string, error) {
	f.asked = append(f.asked, req)
	return f.reply, f.err
}

type harness struct {
	parser    *fakeParser
	flights   *fakeTransport
	trains    *fakeTransport
	hotels    *fakeHotels
	cabs      *fakeCabs
	booker    *fakeBooker
	assistant *fakeAssistant
	svc       *DefaultTripService
}

func newHarness() *harness {
	h := &harness{
		parser:    &fakeParser{results: map[string]models.ParsedIntent{}},
		flights:   &fakeTransport{offers: []models.Transport{testFlight("FL-1", 5000)}},
		trains:    &fakeTransport{offers: []models.Transport{testTrain("TR-1", 1200)}},
		hotels:    &fakeHotels{hotels: []models.HotelOffer{testHotel(2000)}},
		cabs:      &fakeCabs{},
		booker:    &fakeBooker{result: models.BookingResult{Success: true, BookingID: "TRX-123"}},
		assistant: &fakeAssistant{reply: "Here is your plan."},
	}
	h.svc = h.service(h.parser)
	return h
}

// service builds a planner over the harness fakes with the given parser.
func (h *harness) service(parser IntentParser) *DefaultTripService {
	return NewTripService(Dependencies{
		Parser: parser,
		Dates:  dateparse.New(),
		Transport: map[models.Mode]TransportSearcher{
			models.ModeFlight: h.flights,
			models.ModeTrain:  h.trains,
		},
		Hotels:    h.hotels,
		Cabs:      h.cabs,
		Booker:    h.booker,
		Assistant: h.assistant,
		Clock:     func() time.Time { return testNow },
		Jitter:    func(min, _ int) int { return min },
		Currency:  "INR",
	}, nil)
}

func (h *harness) turn(message string, tc models.TripContext) *models.TurnResult {
	res, err := h.svc.ProcessTurn(context.Background(), models.TurnRequest{Message: message, Context: tc})
	if err != nil {
		panic(err)
	}
	return res
}

func (h *harness) pick(sel models.Selection, tc models.TripContext) *models.TurnResult {
	res, err := h.svc.ProcessTurn(context.Background(), models.TurnRequest{Selection: &sel, Context: tc})
	if err != nil {
		panic(err)
	}
	return res
}

func testFlight(id string, price float64) *models.FlightOffer {
	return &models.FlightOffer{ID: id, Airline: "IndiGo", FlightNumber: "6E-201", DepartureCity: "Delhi", ArrivalCity: "Mumbai", Price: price, Currency: "INR"}
}

func testTrain(id string, price float64) *models.TrainOffer {
	return &models.TrainOffer{ID: id, TrainName: "Rajdhani Express", TrainNumber: "12952", Price: price, Currency: "INR"}
}

func testHotel(price float64) models.HotelOffer {
	return models.HotelOffer{ID: "HT-1", Name: "Sea View Inn", Location: "Mumbai", Rating: 4.2, Price: price, Currency: "INR", Category: models.BudgetMedium}
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

// readyTrip is a one-way flight trip with every slot filled and nothing selected.
func readyTrip() models.TripContext {
	return models.TripContext{
		From:      "Delhi",
		To:        "Mumbai",
		Date:      "25 december",
		Mode:      models.ModeFlight,
		Budget:    models.BudgetMedium,
		GroupSize: 2,
	}
}
