package trip

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

func fixedJitter(min, _ int) int { return min }

func plannedTrip() models.TripContext {
	tc := readyTrip()
	tc.Flight = testFlight("FL-1", 5000)
	hotel := testHotel(2000)
	tc.Hotel = &hotel
	return tc
}

func TestFinalize_Total(t *testing.T) {
	cabs := &fakeCabs{quotes: map[string][]models.CabQuote{
		"Delhi":          {{Provider: "Ola", Name: "Ola Mini", Price: 500}},
		"Mumbai Airport": {{Provider: "Uber", Name: "UberGo", Price: 600}},
	}}

	plan, err := Finalize(context.Background(), plannedTrip(), cabs, fixedJitter, "INR")
	require.NoError(t, err)
	assert.Equal(t, 15100.0, plan.Total)
	assert.Equal(t, "flight", plan.TransportType)
	assert.Nil(t, plan.ReturnTransport)
	assert.Equal(t, &models.CabLeg{Name: "Ola to Airport in Delhi", Price: 500, Details: "Ola Mini"}, plan.CabToStation)
	assert.Equal(t, &models.CabLeg{Name: "Uber from Airport in Mumbai", Price: 600, Details: "UberGo"}, plan.CabToHotel)
	assert.Len(t, plan.CabOptionsToStation, 1)
	assert.Equal(t, "INR", plan.Currency)
}

func TestFinalize_PlanSurvivesJSON(t *testing.T) {
	tc := plannedTrip()
	tc.ReturnTrip = true
	tc.ReturnDate = "30 december"
	tc.ReturnFlight = testFlight("FL-2", 5500)

	plan, err := Finalize(context.Background(), tc, &fakeCabs{}, fixedJitter, "INR")
	require.NoError(t, err)

	raw, err := json.Marshal(plan)
	require.NoError(t, err)
	var decoded models.TripPlanData
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.IsType(t, &models.FlightOffer{}, decoded.Transport)
	require.IsType(t, &models.FlightOffer{}, decoded.ReturnTransport)
	assert.Equal(t, "FL-2", decoded.ReturnTransport.Reference())
	assert.Equal(t, plan.Total, decoded.Total)
}

func TestFinalize_CabFallback(t *testing.T) {
	tests := []struct {
		name string
		cabs CabPricer
	}{
		{"no pricer", nil},
		{"pricer error", &fakeCabs{err: errUpstream}},
		{"no quotes", &fakeCabs{}},
		{"zero price", &fakeCabs{quotes: map[string][]models.CabQuote{"Delhi": {{Provider: "Ola", Price: 0}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ranges [][2]int
			jitter := func(min, max int) int {
				ranges = append(ranges, [2]int{min, max})
				return max
			}
			plan, err := Finalize(context.Background(), plannedTrip(), tt.cabs, jitter, "INR")
			require.NoError(t, err)
			assert.Equal(t, [][2]int{{400, 700}, {500, 800}}, ranges)
			assert.Equal(t, 700.0, plan.CabToStation.Price)
			assert.Equal(t, 800.0, plan.CabToHotel.Price)
			assert.Equal(t, "Uber to Airport in Delhi", plan.CabToStation.Name)
			assert.Equal(t, 5000*2+2000*2+700+800.0, plan.Total)
		})
	}
}

func TestFinalize_StationFollowsMode(t *testing.T) {
	tc := plannedTrip()
	tc.Flight = nil
	tc.Mode = models.ModeTrain
	tc.Train = testTrain("TR-1", 1200)

	plan, err := Finalize(context.Background(), tc, nil, fixedJitter, "INR")
	require.NoError(t, err)
	assert.Equal(t, "train", plan.TransportType)
	assert.Equal(t, "Uber to Train Station in Delhi", plan.CabToStation.Name)
	assert.Equal(t, 1200*2+2000*2+400+500.0, plan.Total)
}

func TestFinalize_RoundTrip(t *testing.T) {
	tc := plannedTrip()
	tc.ReturnTrip = true
	tc.ReturnDate = "30 december"

	_, err := Finalize(context.Background(), tc, nil, fixedJitter, "INR")
	assert.ErrorIs(t, err, ErrPlanIncomplete)

	tc.ReturnFlight = testFlight("R-1", 4500)
	plan, err := Finalize(context.Background(), tc, nil, fixedJitter, "INR")
	require.NoError(t, err)
	assert.Equal(t, tc.ReturnFlight, plan.ReturnTransport)
	assert.Equal(t, "30 december", plan.ReturnDate)
	assert.Equal(t, 5000*2+4500*2+2000*2+400+500.0, plan.Total)
}

func TestFinalize_HotelOnly(t *testing.T) {
	hotel := testHotel(2500)
	tc := models.TripContext{IsHotelOnly: true, To: "Goa", Hotel: &hotel, GroupSize: 2}

	plan, err := Finalize(context.Background(), tc, &fakeCabs{err: errUpstream}, fixedJitter, "INR")
	require.NoError(t, err)
	assert.Nil(t, plan.Transport)
	assert.Empty(t, plan.TransportType)
	assert.Nil(t, plan.CabToStation)
	assert.Equal(t, 5000.0, plan.Total)
}

func TestFinalize_Incomplete(t *testing.T) {
	for name, tc := range map[string]models.TripContext{
		"no hotel":      readyTrip(),
		"no transport":  func() models.TripContext { tc := plannedTrip(); tc.Flight = nil; return tc }(),
		"no group size": func() models.TripContext { tc := plannedTrip(); tc.GroupSize = 0; return tc }(),
	} {
		_, err := Finalize(context.Background(), tc, nil, fixedJitter, "INR")
		assert.ErrorIs(t, err, ErrPlanIncomplete, name)
	}
}

func TestBuildBookingRequest(t *testing.T) {
	tc := plannedTrip()
	tc.ReturnTrip = true
	tc.ReturnDate = "30 december"
	tc.ReturnFlight = testFlight("R-1", 4500)
	plan, err := Finalize(context.Background(), tc, nil, fixedJitter, "INR")
	require.NoError(t, err)

	req := BuildBookingRequest(tc, plan, testNow)
	assert.Equal(t, "flight", req.TransportType)
	assert.Equal(t, "FL-1", req.OutboundRef)
	assert.Equal(t, "IndiGo 6E-201", req.OutboundLabel)
	assert.Equal(t, "R-1", req.ReturnRef)
	assert.Equal(t, 10000.0, req.TransportCost)
	assert.Equal(t, 9000.0, req.ReturnCost)
	assert.Equal(t, 4000.0, req.HotelCost)
	assert.Equal(t, 900.0, req.GroundTransportFee)
	assert.Equal(t, plan.Total, req.TransportCost+req.ReturnCost+req.HotelCost+req.GroundTransportFee)
	assert.Equal(t, "Delhi", req.Origin)
	assert.Equal(t, "30 december", req.ReturnDate)
	assert.Equal(t, testNow, req.RequestedAt)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹15,100", formatAmount("INR", 15100))
	assert.Equal(t, "$1,234.50", formatAmount("USD", 1234.5))
	assert.Equal(t, "KES 900", formatAmount("KES", 900))
}
