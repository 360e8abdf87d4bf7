// File: services/intelligence/hotelSearch.go
package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"travix/models"
)

type priceRange struct {
	Min, Max float64
}

// hotelPriceRanges are nightly rates per budget tier.
var hotelPriceRanges = map[models.Budget]priceRange{
	models.BudgetFriendly: {Min: 800, Max: 2000},
	models.BudgetMedium:   {Min: 2000, Max: 5000},
	models.BudgetLuxury:   {Min: 5000, Max: 15000},
}

var errNoHotels = errors.New("no hotels suggested")

// GeminiHotelSearch asks Gemini for real hotels at the destination and uses
// the fallback catalogue when the model fails.
type GeminiHotelSearch struct {
	gen      Generator
	fallback HotelSource
	currency string
	logger   *zap.Logger
}

func NewGeminiHotelSearch(gen Generator, fallback HotelSource, currency string, logger *zap.Logger) *GeminiHotelSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "INR"
	}
	return &GeminiHotelSearch{gen: gen, fallback: fallback, currency: currency, logger: logger}
}

type wireHotel struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

func (h *GeminiHotelSearch) Search(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error) {
	hotels, err := h.suggest(ctx, q)
	if err == nil {
		return hotels, nil
	}
	h.logger.Warn("Gemini hotel search failed",
		zap.String("destination", q.Destination),
		zap.Error(err))
	if h.fallback == nil {
		return nil, err
	}
	return h.fallback.Search(ctx, q)
}

func (h *GeminiHotelSearch) suggest(ctx context.Context, q models.HotelQuery) ([]models.HotelOffer, error) {
	tier, ok := hotelPriceRanges[q.Budget]
	if !ok {
		tier = hotelPriceRanges[models.BudgetMedium]
	}

	prompt := fmt.Sprintf(`List 5 real hotels in %s suitable for a %s stay for %d guests checking in on %s.
Nightly prices must be between %.0f and %.0f %s.
Return only a JSON array of objects with the fields name, location, rating, price, amenities, description.`,
		q.Destination, q.Budget, q.Guests, q.CheckIn, tier.Min, tier.Max, h.currency)

	raw, err := h.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var suggested []wireHotel
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &suggested); err != nil {
		return nil, fmt.Errorf("decode hotel suggestions: %w", err)
	}

	hotels := make([]models.HotelOffer, 0, len(suggested))
	for i, s := range suggested {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		hotels = append(hotels, h.toOffer(i+1, s, q, tier))
	}
	if len(hotels) == 0 {
		return nil, errNoHotels
	}
	return hotels, nil
}

func (h *GeminiHotelSearch) toOffer(n int, s wireHotel, q models.HotelQuery, tier priceRange) models.HotelOffer {
	price := s.Price
	if price < tier.Min || price > tier.Max {
		price = tier.Min
	}
	rating := s.Rating
	if rating <= 0 || rating > 5 {
		rating = 4.0
	}
	location := s.Location
	if location == "" {
		location = q.Destination
	}
	amenities := s.Amenities
	if len(amenities) == 0 {
		amenities = []string{"Free WiFi", "Air Conditioning"}
	}
	return models.HotelOffer{
		ID:          fmt.Sprintf("gemini-hotel-%d", n),
		Name:        s.Name,
		Location:    location,
		Address:     location + ", " + q.Destination,
		Rating:      rating,
		Price:       price,
		Currency:    h.currency,
		Amenities:   amenities,
		Description: s.Description,
		Deeplink:    "https://www.booking.com/searchresults.html?ss=" + url.QueryEscape(s.Name+" "+q.Destination),
		Category:    q.Budget,
	}
}
