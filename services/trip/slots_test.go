package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

func fill(tc models.TripContext, slot models.Slot) models.TripContext {
	switch slot {
	case models.SlotFrom:
		tc.From = "Delhi"
	case models.SlotTo:
		tc.To = "Goa"
	case models.SlotDate:
		tc.Date = "tomorrow"
	case models.SlotMode:
		tc.Mode = models.ModeTrain
	case models.SlotBudget:
		tc.Budget = models.BudgetLuxury
	case models.SlotGroupSize:
		tc.GroupSize = 3
	}
	return tc
}

func TestNextMissingSlot_FirstInOrderForEveryCombination(t *testing.T) {
	for _, hotelOnly := range []bool{false, true} {
		order := FullTripSlots
		if hotelOnly {
			order = HotelOnlySlots
		}
		for mask := 0; mask < 1<<len(order); mask++ {
			tc := models.TripContext{IsHotelOnly: hotelOnly}
			var want models.Slot
			for i, slot := range order {
				if mask&(1<<i) != 0 {
					tc = fill(tc, slot)
				} else if want == "" {
					want = slot
				}
			}

			got, ok := NextMissingSlot(tc)
			if want == "" {
				assert.False(t, ok, "mask %b", mask)
				continue
			}
			require.True(t, ok, "mask %b", mask)
			assert.Equal(t, want, got, "mask %b hotelOnly %v", mask, hotelOnly)
		}
	}
}

func TestNextMissingSlot_HotelOnlyNeverAsksTransportSlots(t *testing.T) {
	tc := models.TripContext{IsHotelOnly: true}
	for {
		slot, ok := NextMissingSlot(tc)
		if !ok {
			break
		}
		assert.NotEqual(t, models.SlotFrom, slot)
		assert.NotEqual(t, models.SlotMode, slot)
		tc = fill(tc, slot)
	}
	assert.Empty(t, tc.From)
	assert.Empty(t, tc.Mode)
}

func TestPrompt(t *testing.T) {
	for _, slot := range append(FullTripSlots, models.SlotReturnTrip, models.SlotReturnDate) {
		assert.NotEmpty(t, Prompt(slot), slot)
	}
	assert.Equal(t, "What is your destination city?", Prompt(models.SlotTo))
}
