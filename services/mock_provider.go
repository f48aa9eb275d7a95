package services

import (
	"strings"
	"time"

	"trip-planner-ai/models"
)

// MockProvider generates deterministic itinerary components without any
// network calls. It is selected at startup when no model credential is
// configured and never returns an error.
type MockProvider struct{}

// NewMockProvider creates a deterministic fallback provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var activitySlots = []string{"9:00 AM", "1:00 PM", "5:00 PM"}

var activityTemplates = map[string][]models.Activity{
	"Beach": {
		{Name: "Beach Parasailing", Description: "Soar high above crystal-clear waters with breathtaking coastal views", Price: 2500, Duration: "2 hours", Rating: 4.7},
		{Name: "Sunset Beach Walk", Description: "Romantic stroll along pristine shoreline as the sun sets", Price: 0, Duration: "1.5 hours", Rating: 4.8},
		{Name: "Beach Volleyball", Description: "Join locals for energetic beach sports and fun", Price: 300, Duration: "2 hours", Rating: 4.6},
	},
	"Food": {
		{Name: "Street Food Tour", Description: "Culinary adventure through bustling local markets", Price: 800, Duration: "3 hours", Rating: 4.6},
		{Name: "Cooking Class", Description: "Learn traditional dishes from expert local chefs", Price: 2000, Duration: "4 hours", Rating: 4.7},
		{Name: "Fine Dining", Description: "Exquisite multi-course meal at renowned restaurant", Price: 3000, Duration: "2 hours", Rating: 4.8},
	},
	"History": {
		{Name: "Fort Tour", Description: "Explore ancient fortifications with rich historical significance", Price: 500, Duration: "3 hours", Rating: 4.8},
		{Name: "Museum Visit", Description: "Discover fascinating artifacts chronicling regional heritage", Price: 300, Duration: "2 hours", Rating: 4.5},
		{Name: "Heritage Walk", Description: "Wander historic neighborhoods with knowledgeable guide", Price: 400, Duration: "2.5 hours", Rating: 4.7},
	},
	"Culture": {
		{Name: "Traditional Dance Show", Description: "Mesmerizing classical dance performance", Price: 800, Duration: "2 hours", Rating: 4.6},
		{Name: "Temple Visit", Description: "Experience spiritual serenity at ornate temples", Price: 0, Duration: "2 hours", Rating: 4.7},
		{Name: "Local Market Tour", Description: "Vibrant markets brimming with handicrafts", Price: 200, Duration: "2.5 hours", Rating: 4.5},
	},
	"Adventure": {
		{Name: "Zip Lining", Description: "Adrenaline rush through lush canopies", Price: 1500, Duration: "2 hours", Rating: 4.7},
		{Name: "ATV Safari", Description: "Navigate rugged terrain on all-terrain vehicle", Price: 2500, Duration: "3 hours", Rating: 4.6},
		{Name: "Rock Climbing", Description: "Challenge yourself with guided climbing", Price: 2000, Duration: "4 hours", Rating: 4.5},
	},
	"Shopping": {
		{Name: "Handicraft Market", Description: "Browse authentic handmade items from local artisans", Price: 1000, Duration: "2 hours", Rating: 4.4},
		{Name: "Mall Shopping", Description: "Explore modern shopping complexes", Price: 2000, Duration: "3 hours", Rating: 4.3},
		{Name: "Bazaar Experience", Description: "Navigate colorful traditional bazaars", Price: 800, Duration: "2.5 hours", Rating: 4.6},
	},
	"Nature": {
		{Name: "Nature Trek", Description: "Hike through pristine natural landscapes", Price: 600, Duration: "4 hours", Rating: 4.8},
		{Name: "Bird Watching", Description: "Observe diverse bird species with expert guides", Price: 800, Duration: "3 hours", Rating: 4.5},
		{Name: "Botanical Garden", Description: "Stroll through beautifully landscaped gardens", Price: 200, Duration: "2 hours", Rating: 4.6},
	},
	"Nightlife": {
		{Name: "Rooftop Bar", Description: "Sip cocktails under the stars with city views", Price: 1500, Duration: "2 hours", Rating: 4.5},
		{Name: "Live Music Venue", Description: "Enjoy electrifying performances by talented musicians", Price: 1000, Duration: "3 hours", Rating: 4.6},
		{Name: "Night Market", Description: "Experience vibrant energy of night markets", Price: 500, Duration: "2 hours", Rating: 4.7},
	},
}

// FetchFlights returns placeholder flights splitting the budget evenly
// between the two legs.
func (p *MockProvider) FetchFlights(destination string, startDate, endDate time.Time, budget int) (*models.FlightPair, error) {
	return &models.FlightPair{
		Outbound: &models.Flight{
			Airline:   "IndiGo 6E-2345",
			Departure: startDate.Format("2006-01-02") + " 08:30 AM",
			Arrival:   startDate.Format("2006-01-02") + " 11:45 AM",
			Price:     budget / 2,
			Duration:  "3h 15m",
		},
		Return: &models.Flight{
			Airline:   "SpiceJet SG-8732",
			Departure: endDate.Format("2006-01-02") + " 06:15 PM",
			Arrival:   endDate.Format("2006-01-02") + " 09:30 PM",
			Price:     budget / 2,
			Duration:  "3h 15m",
		},
	}, nil
}

// FetchHotel returns a placeholder hotel priced at budget/nights per night.
func (p *MockProvider) FetchHotel(destination string, startDate, endDate time.Time, budget int, interests []string) (*models.Hotel, error) {
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	nights := hotelNights(days)

	name := "Heritage Grand Palace"
	if containsFold(interests, "Beach") {
		name = "Seaside Paradise Resort"
	}

	pricePerNight := budget / nights
	return &models.Hotel{
		Name:          name,
		Rating:        4.5,
		PricePerNight: pricePerNight,
		TotalPrice:    pricePerNight * nights,
		Amenities:     []string{"Free WiFi", "Breakfast Included", "Swimming Pool", "Spa & Wellness"},
		Distance:      "2.5 km from city center",
		Nights:        nights,
	}, nil
}

// FetchActivities selects per-interest template activities, cycling the
// morning/afternoon/evening slots and stopping a day early once the next
// candidate would exceed that day's share of the budget.
func (p *MockProvider) FetchActivities(destination string, startDate time.Time, days int, interests []string, budget int) ([]models.DailyPlan, error) {
	perDayBudget := budget / days

	relevantInterests := interests
	if len(relevantInterests) == 0 {
		relevantInterests = []string{"Culture", "Food"}
	}

	dailyPlans := make([]models.DailyPlan, 0, days)
	for day := 1; day <= days; day++ {
		activities := []models.Activity{}
		daySpent := 0

		for i, slot := range activitySlots {
			interest := relevantInterests[i%len(relevantInterests)]
			available, ok := activityTemplates[interest]
			if !ok {
				available = activityTemplates["Culture"]
			}

			activity := available[i%len(available)]
			activity.Time = slot

			if daySpent+activity.Price > perDayBudget {
				break
			}
			activities = append(activities, activity)
			daySpent += activity.Price
		}

		dailyPlans = append(dailyPlans, models.DailyPlan{
			Day:        day,
			Date:       startDate.AddDate(0, 0, day-1).Format("Jan 02"),
			Activities: activities,
			TotalCost:  daySpent,
		})
	}

	return dailyPlans, nil
}

func containsFold(items []string, target string) bool {
	for _, item := range items {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
