package trip

import "travix/models"

var (
	// HotelOnlySlots is the ask order for a stay without transport.
	HotelOnlySlots = []models.Slot{models.SlotTo, models.SlotDate, models.SlotBudget, models.SlotGroupSize}
	// FullTripSlots is the ask order for a trip with an outbound leg.
	FullTripSlots = []models.Slot{models.SlotFrom, models.SlotTo, models.SlotDate, models.SlotMode, models.SlotBudget, models.SlotGroupSize}
)

var prompts = map[models.Slot]string{
	models.SlotFrom:       "Which city will you be departing from?",
	models.SlotTo:         "What is your destination city?",
	models.SlotDate:       "When would you like to travel? (e.g., 18 August or Tomorrow)",
	models.SlotBudget:     "What budget range works best for you? (Luxury, Medium, or Budget-friendly)",
	models.SlotGroupSize:  "How many travelers will be joining? (e.g., 1, 2, or 5)",
	models.SlotMode:       "How would you prefer to travel? (Flight, Train, or Bus)",
	models.SlotReturnTrip: "Would you like to book a round-trip journey? (Yes or No)",
	models.SlotReturnDate: "When would you like to return? (e.g., 25 August or Next week)",
}

// Prompt is the question asked for slot.
func Prompt(slot models.Slot) string {
	return prompts[slot]
}

// SlotOrder returns the ask order that applies to tc.
func SlotOrder(tc models.TripContext) []models.Slot {
	if tc.IsHotelOnly {
		return HotelOnlySlots
	}
	return FullTripSlots
}

// NextMissingSlot returns the first slot in ask order that tc has no value for.
func NextMissingSlot(tc models.TripContext) (models.Slot, bool) {
	for _, slot := range SlotOrder(tc) {
		if !tc.Has(slot) {
			return slot, true
		}
	}
	return "", false
}
