package services

import (
	"sort"
	"strings"

	"trip-planner-ai/models"
)

// AllocateBudget splits the total budget into flight, hotel and activity
// shares (30/35/35). Truncation leftovers stay in the remaining balance at
// validation time. A non-positive budget yields an all-zero allocation; the
// caller is expected to reject nonsensical budgets before getting here.
func AllocateBudget(totalBudget int) models.BudgetAllocation {
	if totalBudget <= 0 {
		return models.BudgetAllocation{}
	}

	return models.BudgetAllocation{
		Flights:    int(float64(totalBudget) * 0.30),
		Hotel:      int(float64(totalBudget) * 0.35),
		Activities: int(float64(totalBudget) * 0.35),
	}
}

// ScoreActivities ranks activities best-first by a weighted multi-factor
// score: 40% rating, 40% affordability against the per-day budget, 20%
// interest match. The sort is stable so equally scored activities keep
// their original order.
func ScoreActivities(activities []models.Activity, interests []string, perDayBudget int) []models.Activity {
	type scored struct {
		activity models.Activity
		score    float64
	}

	ranked := make([]scored, 0, len(activities))
	for _, activity := range activities {
		ratingScore := activity.Rating / 5.0

		priceScore := 1.0 - float64(activity.Price)/float64(max(perDayBudget, 1))
		if priceScore < 0 {
			priceScore = 0
		}

		interestScore := 0.5
		name := strings.ToLower(activity.Name)
		desc := strings.ToLower(activity.Description)
		for _, interest := range interests {
			needle := strings.ToLower(interest)
			if needle != "" && (strings.Contains(name, needle) || strings.Contains(desc, needle)) {
				interestScore = 1.0
				break
			}
		}

		ranked = append(ranked, scored{
			activity: activity,
			score:    ratingScore*0.4 + priceScore*0.4 + interestScore*0.2,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]models.Activity, len(ranked))
	for i, item := range ranked {
		result[i] = item.activity
	}
	return result
}

// ValidateBudget compares the realized costs against the originally
// requested budget.
func ValidateBudget(itinerary *models.Itinerary, originalBudget int) *models.BudgetValidation {
	totalSpent := itinerary.Budget.Flights + itinerary.Budget.Hotel + itinerary.Budget.Activities
	remaining := originalBudget - totalSpent

	overBudget := 0
	if remaining < 0 {
		overBudget = -remaining
	}

	return &models.BudgetValidation{
		IsValid:    remaining >= 0,
		TotalSpent: totalSpent,
		Remaining:  remaining,
		OverBudget: overBudget,
	}
}
