package trip

import (
	"strings"

	"travix/models"
)

// One setter per context field. A changed value drops every selection and
// plan that was chosen under the old value.

func withFrom(tc models.TripContext, from string) models.TripContext {
	from = strings.TrimSpace(from)
	if from == tc.From {
		return tc
	}
	tc.From = from
	return dropPlan(dropLegs(tc))
}

func withTo(tc models.TripContext, to string) models.TripContext {
	to = strings.TrimSpace(to)
	if to == tc.To {
		return tc
	}
	tc.To = to
	tc.Hotel = nil
	return dropPlan(dropLegs(tc))
}

func withDate(tc models.TripContext, date string) models.TripContext {
	date = strings.TrimSpace(date)
	if date == tc.Date {
		return tc
	}
	tc.Date = date
	tc.Hotel = nil
	return dropPlan(dropLegs(tc))
}

func withMode(tc models.TripContext, mode models.Mode) models.TripContext {
	if mode == tc.Mode {
		return tc
	}
	tc.Mode = mode
	return dropPlan(dropLegs(tc))
}

func withBudget(tc models.TripContext, budget models.Budget) models.TripContext {
	if budget == tc.Budget {
		return tc
	}
	tc.Budget = budget
	tc.Hotel = nil
	return dropPlan(tc)
}

func withGroupSize(tc models.TripContext, n int) models.TripContext {
	if n < 1 {
		n = 1
	}
	if n == tc.GroupSize {
		return tc
	}
	tc.GroupSize = n
	return dropPlan(tc)
}

func withReturnTrip(tc models.TripContext, roundTrip bool) models.TripContext {
	if roundTrip == tc.ReturnTrip {
		return tc
	}
	tc.ReturnTrip = roundTrip
	if !roundTrip {
		tc.ReturnDate = ""
		tc = dropReturnLeg(tc)
	}
	return dropPlan(tc)
}

func withReturnDate(tc models.TripContext, date string) models.TripContext {
	date = strings.TrimSpace(date)
	if date == tc.ReturnDate {
		return tc
	}
	tc.ReturnDate = date
	if date != "" {
		tc.ReturnTrip = true
	}
	return dropPlan(dropReturnLeg(tc))
}

func dropLegs(tc models.TripContext) models.TripContext {
	tc.Flight, tc.Train, tc.Bus = nil, nil, nil
	return dropReturnLeg(tc)
}

func dropReturnLeg(tc models.TripContext) models.TripContext {
	tc.ReturnFlight, tc.ReturnTrain, tc.ReturnBus = nil, nil, nil
	return tc
}

func dropPlan(tc models.TripContext) models.TripContext {
	tc.LastPlannedTrip = nil
	tc.BookingReference = ""
	return tc
}
