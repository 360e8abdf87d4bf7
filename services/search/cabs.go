package search

import (
	"context"
	"math"
	"net/url"

	"travix/models"
)

const (
	cabBaseFare      = 450
	cabEstimatedTime = "25 mins"
	cabDistance      = "12 km"
)

var cabProducts = []struct {
	provider   string
	name       string
	multiplier float64
}{
	{"Rapido", "Rapido Bike", 0.4},
	{"Rapido", "Rapido Auto", 0.65},
	{"Ola", "Ola Mini", 0.85},
	{"Uber", "UberGo", 1.0},
	{"Ola", "Ola Prime", 1.15},
	{"Uber", "Uber Premier", 1.45},
}

// CabSearch quotes every ride product for a trip, cheapest first.
type CabSearch struct{}

func NewCabSearch() *CabSearch {
	return &CabSearch{}
}

func (c *CabSearch) Quote(ctx context.Context, origin, destination string) ([]models.CabQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deeplink := "https://www.makemytrip.com/cabs/?from=" + url.QueryEscape(origin) + "&to=" + url.QueryEscape(destination)

	quotes := make([]models.CabQuote, 0, len(cabProducts))
	for _, p := range cabProducts {
		quotes = append(quotes, models.CabQuote{
			Provider:      p.provider,
			Name:          p.name,
			Price:         math.Round(cabBaseFare * p.multiplier),
			EstimatedTime: cabEstimatedTime,
			Details:       cabDistance,
			Deeplink:      deeplink,
		})
	}
	return quotes, nil
}
