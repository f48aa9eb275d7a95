package models

// TripRequest represents an itinerary generation request
type TripRequest struct {
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      int      `json:"budget" binding:"required,gt=0"`
	Travelers   int      `json:"travelers" binding:"required,gt=0"`
	Interests   []string `json:"interests"`
}

// BudgetAllocation is the three-way split of the total budget
type BudgetAllocation struct {
	Flights    int `json:"flights"`
	Hotel      int `json:"hotel"`
	Activities int `json:"activities"`
}
