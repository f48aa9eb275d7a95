package models

// Flight represents a one-way flight leg
type Flight struct {
	Airline   string `json:"airline"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int    `json:"price"`
	Duration  string `json:"duration"`
}

// FlightPair holds the outbound and return legs of a round trip
type FlightPair struct {
	Outbound *Flight `json:"outbound"`
	Return   *Flight `json:"return"`
}

// Hotel represents the accommodation for the whole stay
type Hotel struct {
	Name          string   `json:"name"`
	Rating        float64  `json:"rating"`
	PricePerNight int      `json:"pricePerNight"`
	TotalPrice    int      `json:"totalPrice"`
	Amenities     []string `json:"amenities"`
	Distance      string   `json:"distance"`
	Nights        int      `json:"nights"`
}

// Activity represents a single bookable activity
type Activity struct {
	Name        string  `json:"name"`
	Description string  `json:"desc"`
	Price       int     `json:"price"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Time        string  `json:"time"`
}

// DailyPlan groups one day's activities with that day's spend
type DailyPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	TotalCost  int        `json:"totalCost"`
}

// Budget is the realized cost breakdown of an assembled itinerary
type Budget struct {
	Total      int `json:"total"`
	Flights    int `json:"flights"`
	Hotel      int `json:"hotel"`
	Activities int `json:"activities"`
	Remaining  int `json:"remaining"`
}

// Itinerary is the full trip plan returned to the caller
type Itinerary struct {
	Destination string      `json:"destination"`
	Days        int         `json:"days"`
	Flights     *FlightPair `json:"flights"`
	Hotel       *Hotel      `json:"hotel"`
	DailyPlans  []DailyPlan `json:"dailyPlans"`
	Budget      *Budget     `json:"budget"`
}
