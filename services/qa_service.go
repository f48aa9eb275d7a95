package services

import (
	"strings"

	"trip-planner-ai/models"
)

// VerifyItinerary checks an assembled itinerary for completeness and budget
// compliance. It only reports; over-budget itineraries are still delivered,
// flagged for the caller.
func VerifyItinerary(itinerary *models.Itinerary) *models.Verification {
	hasActivities := false
	for _, day := range itinerary.DailyPlans {
		if len(day.Activities) > 0 {
			hasActivities = true
			break
		}
	}

	checks := map[string]bool{
		"has_flights":      itinerary.Flights != nil && itinerary.Flights.Outbound != nil && itinerary.Flights.Return != nil,
		"has_hotel":        itinerary.Hotel != nil,
		"has_activities":   hasActivities,
		"budget_allocated": itinerary.Budget != nil,
		"within_budget":    itinerary.Budget != nil && itinerary.Budget.Remaining >= 0,
	}

	passed := 0
	allPassed := true
	for _, ok := range checks {
		if ok {
			passed++
		} else {
			allPassed = false
		}
	}

	issues := []string{}
	if !checks["has_flights"] {
		issues = append(issues, "Missing flight information")
	}
	if !checks["has_hotel"] {
		issues = append(issues, "Missing hotel information")
	}
	if !checks["has_activities"] {
		issues = append(issues, "No activities planned")
	}
	if !checks["within_budget"] {
		issues = append(issues, "Budget exceeded")
	}

	return &models.Verification{
		Checks:       checks,
		Issues:       issues,
		QualityScore: float64(passed) / float64(len(checks)) * 100,
		AllPassed:    allPassed,
	}
}

// SuggestImprovements maps verification issues to remediation hints and
// flags days with too few activities.
func SuggestImprovements(itinerary *models.Itinerary, verification *models.Verification) []string {
	suggestions := []string{}

	if verification.QualityScore < 100 {
		for _, issue := range verification.Issues {
			lowered := strings.ToLower(issue)
			switch {
			case strings.Contains(lowered, "flight"):
				suggestions = append(suggestions, "Consider adding flight options")
			case strings.Contains(lowered, "hotel"):
				suggestions = append(suggestions, "Add accommodation details")
			case strings.Contains(lowered, "activities"):
				suggestions = append(suggestions, "Include more activities")
			case strings.Contains(lowered, "budget"):
				suggestions = append(suggestions, "Reduce activity costs or adjust budget")
			}
		}
	}

	for _, day := range itinerary.DailyPlans {
		if len(day.Activities) < 2 {
			suggestions = append(suggestions, "Some days have too few activities")
			break
		}
	}

	return suggestions
}
