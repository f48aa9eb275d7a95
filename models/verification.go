package models

// Verification is the quality report for an assembled itinerary
type Verification struct {
	Checks       map[string]bool   `json:"checks"`
	Issues       []string          `json:"issues"`
	QualityScore float64           `json:"quality_score"`
	AllPassed    bool              `json:"all_passed"`
	Suggestions  []string          `json:"suggestions,omitempty"`
	BudgetReview *BudgetValidation `json:"budget_review,omitempty"`
}

// BudgetValidation reports how the realized costs compare to the requested budget
type BudgetValidation struct {
	IsValid    bool `json:"is_valid"`
	TotalSpent int  `json:"total_spent"`
	Remaining  int  `json:"remaining"`
	OverBudget int  `json:"over_budget"`
}
