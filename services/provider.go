package services

import (
	"time"

	"trip-planner-ai/models"
)

// TravelProvider abstracts where itinerary components come from: a
// generative-model call or a deterministic fallback generator. Remote
// implementations fail with *ProviderError; the deterministic fallback
// never fails.
type TravelProvider interface {
	FetchFlights(destination string, startDate, endDate time.Time, budget int) (*models.FlightPair, error)
	FetchHotel(destination string, startDate, endDate time.Time, budget int, interests []string) (*models.Hotel, error)
	FetchActivities(destination string, startDate time.Time, days int, interests []string, budget int) ([]models.DailyPlan, error)
}

// hotelNights derives the number of nights from the trip length, never
// fewer than one.
func hotelNights(days int) int {
	if days <= 1 {
		return 1
	}
	return days - 1
}
