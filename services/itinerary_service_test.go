package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-ai/models"
)

// stubProvider counts fetches and can fail any stage on demand.
type stubProvider struct {
	flightCalls   int
	hotelCalls    int
	activityCalls int

	failFlights    bool
	hotelOverride  *models.Hotel
	activitiesFunc func(days int) []models.DailyPlan
}

func (s *stubProvider) FetchFlights(destination string, startDate, endDate time.Time, budget int) (*models.FlightPair, error) {
	s.flightCalls++
	if s.failFlights {
		return nil, &ProviderError{Stage: "flight search", Err: errors.New("upstream unavailable")}
	}
	return &models.FlightPair{
		Outbound: &models.Flight{Airline: "IndiGo 6E-2345", Price: budget / 2},
		Return:   &models.Flight{Airline: "SpiceJet SG-8732", Price: budget / 2},
	}, nil
}

func (s *stubProvider) FetchHotel(destination string, startDate, endDate time.Time, budget int, interests []string) (*models.Hotel, error) {
	s.hotelCalls++
	if s.hotelOverride != nil {
		hotel := *s.hotelOverride
		return &hotel, nil
	}
	return &models.Hotel{Name: "Heritage Grand Palace", Rating: 4.5, PricePerNight: 1000, Nights: 2}, nil
}

func (s *stubProvider) FetchActivities(destination string, startDate time.Time, days int, interests []string, budget int) ([]models.DailyPlan, error) {
	s.activityCalls++
	if s.activitiesFunc != nil {
		return s.activitiesFunc(days), nil
	}
	plans := make([]models.DailyPlan, days)
	for i := range plans {
		plans[i] = models.DailyPlan{
			Day:        i + 1,
			Date:       startDate.AddDate(0, 0, i).Format("Jan 02"),
			Activities: []models.Activity{{Name: "Temple Visit", Price: 0, Rating: 4.7}, {Name: "Fort Tour", Price: 500, Rating: 4.8}},
			TotalCost:  500,
		}
	}
	return plans, nil
}

func useProvider(t *testing.T, p TravelProvider) {
	t.Helper()
	previous := provider
	provider = p
	t.Cleanup(func() { provider = previous })
}

func testRequest() models.TripRequest {
	return models.TripRequest{
		Destination: "Goa",
		StartDate:   "2025-12-01",
		EndDate:     "2025-12-03",
		Budget:      10000,
		Travelers:   2,
		Interests:   []string{"Beach", "Food"},
	}
}

func TestGenerateItineraryFullPipeline(t *testing.T) {
	useProvider(t, NewMockProvider())

	result, err := GenerateItinerary(testRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Itinerary)
	require.NotNil(t, result.Verification)

	itinerary := result.Itinerary
	assert.Equal(t, "Goa", itinerary.Destination)
	assert.Equal(t, 3, itinerary.Days)
	require.Len(t, itinerary.DailyPlans, 3)
	for i, day := range itinerary.DailyPlans {
		assert.Equal(t, i+1, day.Day)
		assert.LessOrEqual(t, len(day.Activities), 3)

		total := 0
		for _, activity := range day.Activities {
			total += activity.Price
		}
		assert.Equal(t, total, day.TotalCost)
	}

	budget := itinerary.Budget
	require.NotNil(t, budget)
	assert.Equal(t, 10000, budget.Total)
	assert.Equal(t, itinerary.Flights.Outbound.Price+itinerary.Flights.Return.Price, budget.Flights)
	assert.Equal(t, itinerary.Hotel.TotalPrice, budget.Hotel)
	assert.Equal(t, 10000-(budget.Flights+budget.Hotel+budget.Activities), budget.Remaining)
}

func TestGenerateItineraryLogOrdering(t *testing.T) {
	useProvider(t, NewMockProvider())

	result, err := GenerateItinerary(testRequest())

	require.NoError(t, err)
	agents := make([]string, len(result.Logs))
	for i, entry := range result.Logs {
		agents[i] = entry.Agent
		assert.NotEqual(t, models.StatusProcessing, entry.Status, "stage %d left processing", i)
	}
	assert.Equal(t, []string{
		"Optimizer Agent",
		"Research Agent",
		"Research Agent",
		"Content Generator",
		"Optimizer Agent",
		"Quality Assurance",
		"System",
	}, agents)
	assert.Equal(t, models.StatusComplete, result.Logs[len(result.Logs)-1].Status)
}

func TestGenerateItineraryRejectsReversedDates(t *testing.T) {
	stub := &stubProvider{}
	useProvider(t, stub)

	req := testRequest()
	req.StartDate = "2025-12-10"
	req.EndDate = "2025-12-01"

	_, err := GenerateItinerary(req)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, stub.flightCalls)
	assert.Equal(t, 0, stub.hotelCalls)
	assert.Equal(t, 0, stub.activityCalls)
}

func TestGenerateItineraryRejectsTooLongTrips(t *testing.T) {
	stub := &stubProvider{}
	useProvider(t, stub)

	req := testRequest()
	req.StartDate = "2025-12-01"
	req.EndDate = "2026-01-15"

	_, err := GenerateItinerary(req)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, err.Error(), "30 days")
	assert.Equal(t, 0, stub.flightCalls)
}

func TestGenerateItineraryRejectsMalformedDates(t *testing.T) {
	stub := &stubProvider{}
	useProvider(t, stub)

	req := testRequest()
	req.StartDate = "01/12/2025"

	_, err := GenerateItinerary(req)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, stub.flightCalls)
}

func TestGenerateItineraryProviderFailureFinalizesLog(t *testing.T) {
	stub := &stubProvider{failFlights: true}
	useProvider(t, stub)

	result, err := GenerateItinerary(testRequest())

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Nil(t, result.Itinerary)
	assert.Nil(t, result.Verification)

	require.NotEmpty(t, result.Logs)
	last := result.Logs[len(result.Logs)-1]
	assert.Equal(t, "Research Agent", last.Agent)
	assert.Equal(t, models.StatusError, last.Status)
	assert.Equal(t, 0, stub.hotelCalls)
}

func TestGenerateItineraryRecomputesHotelTotal(t *testing.T) {
	stub := &stubProvider{
		hotelOverride: &models.Hotel{Name: "Royal Residency", Rating: 4.2, PricePerNight: 1000, Nights: 4, TotalPrice: 99999},
	}
	useProvider(t, stub)

	req := testRequest()
	req.EndDate = "2025-12-05"

	result, err := GenerateItinerary(req)

	require.NoError(t, err)
	assert.Equal(t, 4000, result.Itinerary.Hotel.TotalPrice)
	assert.Equal(t, 4000, result.Itinerary.Budget.Hotel)
}

func TestGenerateItineraryDerivesMissingNights(t *testing.T) {
	stub := &stubProvider{
		hotelOverride: &models.Hotel{Name: "Royal Residency", Rating: 4.2, PricePerNight: 1000},
	}
	useProvider(t, stub)

	result, err := GenerateItinerary(testRequest())

	require.NoError(t, err)
	assert.Equal(t, 2, result.Itinerary.Hotel.Nights)
	assert.Equal(t, 2000, result.Itinerary.Hotel.TotalPrice)
}

func TestGenerateItineraryTrimsToTopThree(t *testing.T) {
	stub := &stubProvider{
		activitiesFunc: func(days int) []models.DailyPlan {
			plans := make([]models.DailyPlan, days)
			for i := range plans {
				candidates := make([]models.Activity, 5)
				for j := range candidates {
					candidates[j] = models.Activity{
						Name:   fmt.Sprintf("Candidate %d", j+1),
						Price:  100 * (j + 1),
						Rating: 4.0 + 0.2*float64(j),
					}
				}
				plans[i] = models.DailyPlan{Day: i + 1, Activities: candidates, TotalCost: 1500}
			}
			return plans
		},
	}
	useProvider(t, stub)

	result, err := GenerateItinerary(testRequest())

	require.NoError(t, err)
	for _, day := range result.Itinerary.DailyPlans {
		assert.Len(t, day.Activities, 3)

		total := 0
		for _, activity := range day.Activities {
			total += activity.Price
		}
		assert.Equal(t, total, day.TotalCost)
		assert.NotEqual(t, 1500, day.TotalCost)
	}
}

func TestGenerateItineraryWarnsWhenOverBudget(t *testing.T) {
	stub := &stubProvider{
		hotelOverride: &models.Hotel{Name: "Royal Residency", Rating: 4.2, PricePerNight: 50000, Nights: 2},
	}
	useProvider(t, stub)

	result, err := GenerateItinerary(testRequest())

	require.NoError(t, err)
	assert.False(t, result.Verification.AllPassed)
	assert.Equal(t, 80.0, result.Verification.QualityScore)
	assert.False(t, result.Verification.BudgetReview.IsValid)
	assert.Greater(t, result.Verification.BudgetReview.OverBudget, 0)

	qaEntry := result.Logs[len(result.Logs)-2]
	assert.Equal(t, "Quality Assurance", qaEntry.Agent)
	assert.Equal(t, models.StatusWarning, qaEntry.Status)
	assert.Contains(t, qaEntry.Message, "Quality score: 80%")
}
