package services

import (
	"fmt"
	"log"
	"time"

	"trip-planner-ai/config"
	"trip-planner-ai/models"
)

const dateLayout = "2006-01-02"

var provider TravelProvider

// InitItineraryService selects the travel provider once at startup: the
// Anthropic provider when a credential is configured, the deterministic
// mock provider otherwise.
func InitItineraryService(cfg *config.Config) {
	if cfg.ProviderReady() {
		provider = NewAnthropicProvider(cfg)
		log.Println("Itinerary service using Anthropic provider")
	} else {
		provider = NewMockProvider()
		log.Println("Itinerary service using deterministic mock provider")
	}
}

// GenerateResult carries the assembled itinerary, the pipeline execution
// log, and the quality verification. On failure only the log is populated.
type GenerateResult struct {
	Itinerary    *models.Itinerary    `json:"itinerary,omitempty"`
	Logs         models.AgentLogs     `json:"agent_logs"`
	Verification *models.Verification `json:"verification,omitempty"`
}

// GenerateItinerary runs the full pipeline: budget allocation, flight,
// hotel and activity fetches, activity scoring, cost totals and quality
// verification. Stages run strictly in order and each is recorded in the
// execution log before and after it runs.
func GenerateItinerary(req models.TripRequest) (*GenerateResult, error) {
	result := &GenerateResult{Logs: models.AgentLogs{}}

	startDate, endDate, days, err := tripDays(req)
	if err != nil {
		return result, err
	}

	// Step 1: allocate budget
	result.Logs.Start("Optimizer Agent", "Analyzing budget and optimizing allocation...")
	allocation := AllocateBudget(req.Budget)
	result.Logs.Finish(models.StatusComplete)

	// Step 2: flights
	result.Logs.Start("Research Agent", fmt.Sprintf("Finding best flight options to %s...", req.Destination))
	flights, err := provider.FetchFlights(req.Destination, startDate, endDate, allocation.Flights)
	if err != nil {
		result.Logs.Finish(models.StatusError)
		return result, err
	}
	result.Logs.Finish(models.StatusComplete)

	// Step 3: hotel
	result.Logs.Start("Research Agent", "Searching for perfect accommodation...")
	hotel, err := provider.FetchHotel(req.Destination, startDate, endDate, allocation.Hotel, req.Interests)
	if err != nil {
		result.Logs.Finish(models.StatusError)
		return result, err
	}
	// Total price is always derived, never trusted from upstream.
	if hotel.Nights < 1 {
		hotel.Nights = hotelNights(days)
	}
	hotel.TotalPrice = hotel.PricePerNight * hotel.Nights
	result.Logs.Finish(models.StatusComplete)

	// Step 4: activity candidates
	result.Logs.Start("Content Generator", "Creating personalized activity recommendations...")
	dailyPlans, err := provider.FetchActivities(req.Destination, startDate, days, req.Interests, allocation.Activities)
	if err != nil {
		result.Logs.Finish(models.StatusError)
		return result, err
	}
	result.Logs.Finish(models.StatusComplete)

	// Step 5: score and trim activities
	result.Logs.Start("Optimizer Agent", "Optimizing activities based on your preferences...")
	perDayBudget := allocation.Activities / days
	for i := range dailyPlans {
		ranked := ScoreActivities(dailyPlans[i].Activities, req.Interests, perDayBudget)
		if len(ranked) > 3 {
			ranked = ranked[:3]
		}
		dailyPlans[i].Activities = ranked

		total := 0
		for _, activity := range ranked {
			total += activity.Price
		}
		dailyPlans[i].TotalCost = total
	}
	result.Logs.Finish(models.StatusComplete)

	// Realized costs
	flightCost := flights.Outbound.Price + flights.Return.Price
	hotelCost := hotel.TotalPrice
	activityCost := 0
	for _, day := range dailyPlans {
		activityCost += day.TotalCost
	}

	itinerary := &models.Itinerary{
		Destination: req.Destination,
		Days:        days,
		Flights:     flights,
		Hotel:       hotel,
		DailyPlans:  dailyPlans,
		Budget: &models.Budget{
			Total:      req.Budget,
			Flights:    flightCost,
			Hotel:      hotelCost,
			Activities: activityCost,
			Remaining:  req.Budget - (flightCost + hotelCost + activityCost),
		},
	}

	// Step 6: quality assurance
	result.Logs.Start("Quality Assurance", "Verifying itinerary quality and budget compliance...")
	verification := VerifyItinerary(itinerary)
	verification.BudgetReview = ValidateBudget(itinerary, req.Budget)
	verification.Suggestions = SuggestImprovements(itinerary, verification)
	if !verification.AllPassed {
		result.Logs.AppendMessage(fmt.Sprintf(" (Quality score: %.0f%%)", verification.QualityScore))
		result.Logs.Finish(models.StatusWarning)
	} else {
		result.Logs.Finish(models.StatusComplete)
	}

	result.Logs.Start("System", fmt.Sprintf("Your perfect %d-day %s itinerary is ready!", days, req.Destination))
	result.Logs.Finish(models.StatusComplete)

	result.Itinerary = itinerary
	result.Verification = verification
	return result, nil
}

// tripDays parses and validates the trip window before any provider call
// is made.
func tripDays(req models.TripRequest) (time.Time, time.Time, int, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, &RequestError{Message: fmt.Sprintf("invalid start_date %q, expected YYYY-MM-DD", req.StartDate)}
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, &RequestError{Message: fmt.Sprintf("invalid end_date %q, expected YYYY-MM-DD", req.EndDate)}
	}

	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days < 1 {
		return time.Time{}, time.Time{}, 0, &RequestError{Message: "End date must be after start date"}
	}
	if days > 30 {
		return time.Time{}, time.Time{}, 0, &RequestError{Message: "Maximum trip duration is 30 days"}
	}

	return startDate, endDate, days, nil
}
