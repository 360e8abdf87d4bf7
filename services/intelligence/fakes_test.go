package intelligence

import (
	"context"
	"errors"

	"travix/models"
)

var errModel = errors.New("model unavailable")

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeHotelSource struct {
	hotels []models.HotelOffer
	calls  int
}

func (f *fakeHotelSource) Search(context.Context, models.HotelQuery) ([]models.HotelOffer, error) {
	f.calls++
	return f.hotels, nil
}
