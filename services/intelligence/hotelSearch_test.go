package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

var goaQuery = models.HotelQuery{Destination: "Goa", Budget: models.BudgetMedium, CheckIn: "2026-12-25", Guests: 2}

func TestGeminiHotelSearch_MapsSuggestions(t *testing.T) {
	gen := &fakeGenerator{reply: `[
		{"name":"Taj Fort Aguada","location":"Candolim","rating":4.6,"price":4200,"amenities":["Pool"]},
		{"name":"Sea Breeze","price":99999},
		{"name":""}
	]`}
	fallback := &fakeHotelSource{}
	h := NewGeminiHotelSearch(gen, fallback, "", nil)

	hotels, err := h.Search(context.Background(), goaQuery)
	require.NoError(t, err)
	require.Len(t, hotels, 2)
	assert.Zero(t, fallback.calls)

	assert.Equal(t, "gemini-hotel-1", hotels[0].ID)
	assert.Equal(t, 4200.0, hotels[0].Price)
	assert.Equal(t, "Candolim", hotels[0].Location)
	assert.Equal(t, "INR", hotels[0].Currency)
	assert.Equal(t, models.BudgetMedium, hotels[0].Category)

	// Out-of-tier prices are pulled to the tier floor; missing fields get defaults.
	assert.Equal(t, 2000.0, hotels[1].Price)
	assert.Equal(t, 4.0, hotels[1].Rating)
	assert.Equal(t, "Goa", hotels[1].Location)
	assert.NotEmpty(t, hotels[1].Amenities)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "between 2000 and 5000 INR")
}

func TestGeminiHotelSearch_Fallback(t *testing.T) {
	fallback := &fakeHotelSource{hotels: []models.HotelOffer{{ID: "h1", Name: "Fallback Inn", Price: 1500}}}

	for name, gen := range map[string]*fakeGenerator{
		"generator error": {err: errModel},
		"not json":        {reply: "Here are some hotels"},
		"empty list":      {reply: "[]"},
	} {
		t.Run(name, func(t *testing.T) {
			fallback.calls = 0
			hotels, err := NewGeminiHotelSearch(gen, fallback, "INR", nil).Search(context.Background(), goaQuery)
			require.NoError(t, err)
			assert.Equal(t, fallback.hotels, hotels)
			assert.Equal(t, 1, fallback.calls)
		})
	}
}

func TestGeminiHotelSearch_NoFallback(t *testing.T) {
	_, err := NewGeminiHotelSearch(&fakeGenerator{err: errModel}, nil, "INR", nil).Search(context.Background(), goaQuery)
	assert.ErrorIs(t, err, errModel)
}
