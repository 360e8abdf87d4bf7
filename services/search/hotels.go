package search

import (
	"context"
	"fmt"
	"net/url"

	"travix/models"
)

var hotelChains = []string{"Taj Hotel", "Oberoi Grand", "ITC Maratha", "Hyatt Regency", "JW Marriott", "Radisson Blu", "Lemon Tree", "Treebo"}

// nightlyBase is the cheapest listing per budget tier.
var nightlyBase = map[models.Budget]float64{
	models.BudgetLuxury:   8000,
	models.BudgetMedium:   3500,
	models.BudgetFriendly: 1500,
}

type HotelSearch struct {
	currency string
}

func NewHotelSearch(currency string) *HotelSearch {
	return &HotelSearch{currency: currency}
}

func (s *HotelSearch) Search(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	budget := q.Budget
	base, ok := nightlyBase[budget]
	if !ok {
		budget = models.BudgetMedium
		base = nightlyBase[budget]
	}
	guests := q.Guests
	if guests < 1 {
		guests = 2
	}

	hotels := make([]models.HotelOffer, 0, len(hotelChains))
	for i, chain := range hotelChains {
		hotels = append(hotels, models.HotelOffer{
			ID:       fmt.Sprintf("hotel-%d", i),
			Name:     chain + " " + q.Destination,
			Location: q.Destination,
			Address:  q.Destination + ", India",
			Rating:   4.0 + float64(i)/10,
			Price:    base + float64(i*200),
			Currency: s.currency,
			ImageURL: "https://placehold.co/400x250/7c3aed/ffffff?text=" + url.QueryEscape(chain),
			Deeplink: fmt.Sprintf("https://www.makemytrip.com/hotels/hotel-listing/?city=%s&checkin=%s&roomStayQualifier=%de0e",
				url.QueryEscape(q.Destination), q.CheckIn, guests),
			Category: budget,
		})
	}
	return hotels, nil
}
