// Package search holds the vendor-style transport, hotel and cab searches the
// trip planner calls. Results are affiliate listings with booking deeplinks.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"travix/models"
)

var airlines = []string{"IndiGo", "Air India", "SpiceJet", "Vistara", "GoAir", "AirAsia"}

const flightResults = 8

type FlightSearch struct {
	currency string
}

func NewFlightSearch(currency string) *FlightSearch {
	return &FlightSearch{currency: currency}
}

func (s *FlightSearch) Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	origin, destination := IATACode(q.Origin), IATACode(q.Destination)
	deeplink := fmt.Sprintf("https://www.makemytrip.com/flight/search?itinerary=%s-%s-%s&tripType=O&paxType=A-%d_C-0_I-0&cabinClass=E",
		origin, destination, q.Date, passengers(q))

	offers := make([]models.Transport, 0, flightResults)
	for i := 0; i < flightResults; i++ {
		airline := airlines[i%len(airlines)]
		hour := 6 + i
		minute := "00"
		if i%2 == 1 {
			minute = "30"
		}
		stops := 0
		if i%3 == 0 {
			stops = 1
		}
		offers = append(offers, &models.FlightOffer{
			ID:               fmt.Sprintf("flight-%s-%s-%d", origin, destination, i),
			Airline:          airline,
			FlightNumber:     fmt.Sprintf("%s-%d", airlineCode(airline), 1000+i),
			DepartureAirport: origin,
			ArrivalAirport:   destination,
			DepartureCity:    q.Origin,
			ArrivalCity:      q.Destination,
			DepartureDate:    q.Date,
			DepartureTime:    fmt.Sprintf("%02d:%s", hour, minute),
			ArrivalTime:      fmt.Sprintf("%02d:%s", hour+2, minute),
			Duration:         "2h 30m",
			Stops:            stops,
			Price:            float64(3500 + i*500),
			Currency:         s.currency,
			Deeplink:         deeplink,
		})
	}
	return offers, nil
}

func airlineCode(airline string) string {
	code := []rune(airline)
	if len(code) > 2 {
		code = code[:2]
	}
	return strings.ToUpper(string(code))
}

type TrainSearch struct {
	currency string
}

func NewTrainSearch(currency string) *TrainSearch {
	return &TrainSearch{currency: currency}
}

func (s *TrainSearch) Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deeplink := fmt.Sprintf("https://www.makemytrip.com/railways/listing?from=%s&to=%s&date=%s",
		url.QueryEscape(q.Origin), url.QueryEscape(q.Destination), q.Date)
	return []models.Transport{
		&models.TrainOffer{
			ID:               "train-12301-" + q.Date,
			TrainName:        "Rajdhani Express",
			TrainNumber:      "12301",
			DepartureStation: q.Origin,
			ArrivalStation:   q.Destination,
			DepartureDate:    q.Date,
			DepartureTime:    "16:55",
			ArrivalTime:      "09:25",
			Duration:         "16h 30m",
			Class:            "3A",
			SeatsAvailable:   45,
			Price:            2500,
			Currency:         s.currency,
			Deeplink:         deeplink,
		},
		&models.TrainOffer{
			ID:               "train-12951-" + q.Date,
			TrainName:        "Mumbai Rajdhani",
			TrainNumber:      "12951",
			DepartureStation: q.Origin,
			ArrivalStation:   q.Destination,
			DepartureDate:    q.Date,
			DepartureTime:    "17:15",
			ArrivalTime:      "09:55",
			Duration:         "16h 40m",
			Class:            "3A",
			SeatsAvailable:   32,
			Price:            2650,
			Currency:         s.currency,
			Deeplink:         deeplink,
		},
	}, nil
}

type BusSearch struct {
	currency string
}

func NewBusSearch(currency string) *BusSearch {
	return &BusSearch{currency: currency}
}

func (s *BusSearch) Search(ctx context.Context, q models.TransportQuery) ([]models.Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deeplink := fmt.Sprintf("https://www.makemytrip.com/bus/search/%s/%s/%s",
		url.PathEscape(q.Origin), url.PathEscape(q.Destination), q.Date)
	return []models.Transport{
		&models.BusOffer{
			ID:             "bus-BUS001-" + q.Date,
			Operator:       "VRL Travels",
			BusType:        "Volvo Multi-Axle AC Sleeper",
			DeparturePoint: q.Origin,
			ArrivalPoint:   q.Destination,
			DepartureDate:  q.Date,
			DepartureTime:  "22:00",
			ArrivalTime:    "06:00",
			Duration:       "8h",
			SeatsAvailable: 18,
			Price:          1200,
			Currency:       s.currency,
			Deeplink:       deeplink,
		},
		&models.BusOffer{
			ID:             "bus-BUS002-" + q.Date,
			Operator:       "Sharma Travels",
			BusType:        "Volvo AC Sleeper",
			DeparturePoint: q.Origin,
			ArrivalPoint:   q.Destination,
			DepartureDate:  q.Date,
			DepartureTime:  "23:30",
			ArrivalTime:    "07:45",
			Duration:       "8h 15m",
			SeatsAvailable: 12,
			Price:          1100,
			Currency:       s.currency,
			Deeplink:       deeplink,
		},
	}, nil
}

func passengers(q models.TransportQuery) int {
	if q.Passengers < 1 {
		return 1
	}
	return q.Passengers
}
