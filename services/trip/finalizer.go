package trip

import (
	"context"
	"fmt"
	"math/rand"

	"travix/models"
)

// Fallback ground-transport fares, used when the cab pricer has no usable quote.
const (
	stationFareMin = 400
	stationFareMax = 700
	hotelFareMin   = 500
	hotelFareMax   = 800
)

// Finalize prices the selected trip into a bookable plan. Transport and hotel
// are charged per traveler, ground transport is a flat fare per ride. cabs
// may be nil, in which case both rides are priced with jitter.
func Finalize(ctx context.Context, tc models.TripContext, cabs CabPricer, jitter PriceJitter, currency string) (models.TripPlanData, error) {
	if tc.Hotel == nil {
		return models.TripPlanData{}, fmt.Errorf("%w: no hotel selected", ErrPlanIncomplete)
	}
	if tc.GroupSize < 1 {
		return models.TripPlanData{}, fmt.Errorf("%w: group size unknown", ErrPlanIncomplete)
	}
	hotelCost := tc.Hotel.Price * float64(tc.GroupSize)

	if tc.IsHotelOnly {
		return models.TripPlanData{
			Hotel:     tc.Hotel,
			GroupSize: tc.GroupSize,
			Total:     hotelCost,
			Currency:  currency,
		}, nil
	}

	out, ok := tc.Outbound()
	if !ok {
		return models.TripPlanData{}, fmt.Errorf("%w: no outbound transport selected", ErrPlanIncomplete)
	}
	if tc.NeedsReturnLeg() {
		return models.TripPlanData{}, fmt.Errorf("%w: no return transport selected", ErrPlanIncomplete)
	}

	if jitter == nil {
		jitter = defaultJitter
	}
	station := out.Mode().StationName()
	toStationQuotes := quote(ctx, cabs, tc.From, tc.From+" "+station)
	toHotelQuotes := quote(ctx, cabs, tc.To+" "+station, tc.To)
	toStation := cabLeg(toStationQuotes, "to "+station+" in "+tc.From, jitter(stationFareMin, stationFareMax))
	toHotel := cabLeg(toHotelQuotes, "from "+station+" in "+tc.To, jitter(hotelFareMin, hotelFareMax))

	plan := models.TripPlanData{
		Transport:           out,
		TransportType:       out.Mode().Kind(),
		Hotel:               tc.Hotel,
		CabToStation:        &toStation,
		CabToHotel:          &toHotel,
		CabOptionsToStation: toStationQuotes,
		CabOptionsToHotel:   toHotelQuotes,
		GroupSize:           tc.GroupSize,
		Currency:            currency,
		ReturnTrip:          tc.ReturnTrip,
		ReturnDate:          tc.ReturnDate,
	}
	total := out.Fare()*float64(tc.GroupSize) + hotelCost + toStation.Price + toHotel.Price
	if tc.ReturnTrip {
		if ret, ok := tc.Return(); ok {
			plan.ReturnTransport = ret
			total += ret.Fare() * float64(tc.GroupSize)
		}
	}
	plan.Total = total
	return plan, nil
}

func defaultJitter(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// quote returns the pricer's quotes, or nil when it fails.
func quote(ctx context.Context, cabs CabPricer, origin, destination string) []models.CabQuote {
	if cabs == nil {
		return nil
	}
	quotes, err := cabs.Quote(ctx, origin, destination)
	if err != nil {
		return nil
	}
	return quotes
}

// cabLeg prices a ride with the first quote, or with fallbackFare when there
// is no quote with a positive price.
func cabLeg(quotes []models.CabQuote, route string, fallbackFare int) models.CabLeg {
	if len(quotes) > 0 && quotes[0].Price > 0 {
		q := quotes[0]
		provider := firstNonEmpty(q.Provider, "Uber")
		return models.CabLeg{
			Name:    provider + " " + route,
			Price:   q.Price,
			Details: firstNonEmpty(q.Name, "Standard Ride"),
		}
	}
	return models.CabLeg{
		Name:    "Uber " + route,
		Price:   float64(fallbackFare),
		Details: "Standard Ride",
	}
}
