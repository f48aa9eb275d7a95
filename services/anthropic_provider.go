package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trip-planner-ai/config"
	"trip-planner-ai/models"
)

// AnthropicProvider fetches itinerary components from the Anthropic
// messages API. Transport, HTTP-status and parse failures surface as
// *ProviderError; this provider never substitutes mock data.
type AnthropicProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewAnthropicProvider creates a remote provider from configuration
func NewAnthropicProvider(cfg *config.Config) *AnthropicProvider {
	return &AnthropicProvider{
		apiKey:  cfg.AnthropicAPIKey,
		model:   cfg.AnthropicModel,
		baseURL: "https://api.anthropic.com",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchFlights asks the model for a round-trip flight pair within budget.
func (p *AnthropicProvider) FetchFlights(destination string, startDate, endDate time.Time, budget int) (*models.FlightPair, error) {
	prompt := fmt.Sprintf(`You are a travel research assistant. Find realistic round-trip flight options to %s departing %s and returning %s with a total flight budget of %d.

Return ONLY JSON in this exact format:
{
  "outbound": {"airline": "Airline FL-123", "departure": "%s 08:30 AM", "arrival": "%s 11:45 AM", "price": <number>, "duration": "Xh Ym"},
  "return": {"airline": "Airline FL-456", "departure": "%s 06:15 PM", "arrival": "%s 09:30 PM", "price": <number>, "duration": "Xh Ym"}
}`,
		destination,
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"),
		budget,
		startDate.Format("2006-01-02"), startDate.Format("2006-01-02"),
		endDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	text, err := p.complete(prompt)
	if err != nil {
		return nil, &ProviderError{Stage: "flight search", Err: err}
	}

	var flights models.FlightPair
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &flights); err != nil {
		return nil, &ProviderError{Stage: "flight search", Err: fmt.Errorf("invalid flight response: %w", err)}
	}
	if flights.Outbound == nil || flights.Return == nil {
		return nil, &ProviderError{Stage: "flight search", Err: fmt.Errorf("incomplete flight pair in response")}
	}

	return &flights, nil
}

// FetchHotel asks the model for one hotel covering the whole stay.
func (p *AnthropicProvider) FetchHotel(destination string, startDate, endDate time.Time, budget int, interests []string) (*models.Hotel, error) {
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	nights := hotelNights(days)

	prompt := fmt.Sprintf(`You are a travel research assistant. Find one great hotel in %s for %d nights with a total accommodation budget of %d.

Traveler interests: %s

Return ONLY JSON in this exact format:
{"name": "Hotel Name", "rating": 4.5, "pricePerNight": <number>, "totalPrice": <number>, "amenities": ["..."], "distance": "X km from city center", "nights": %d}`,
		destination, nights, budget, strings.Join(interests, ", "), nights)

	text, err := p.complete(prompt)
	if err != nil {
		return nil, &ProviderError{Stage: "hotel search", Err: err}
	}

	var hotel models.Hotel
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &hotel); err != nil {
		return nil, &ProviderError{Stage: "hotel search", Err: fmt.Errorf("invalid hotel response: %w", err)}
	}
	hotel.Nights = nights

	return &hotel, nil
}

// FetchActivities asks the model for daily activity candidates, one group
// per trip day. Day indices, dates and day totals are restamped locally
// rather than trusted from the model.
func (p *AnthropicProvider) FetchActivities(destination string, startDate time.Time, days int, interests []string, budget int) ([]models.DailyPlan, error) {
	perDayBudget := budget / days

	prompt := fmt.Sprintf(`You are a creative travel content generator. Create a %d-day itinerary for %s.

Traveler Interests: %s
Budget per day: %d
Activities per day: 3

For each day, create 3 diverse activities with:
- Morning (9 AM), Afternoon (1 PM), Evening (5 PM) activities
- Mix of free/paid activities
- Engaging descriptions (20-30 words)
- Realistic prices
- Durations (1-4 hours)
- High ratings (4.5-4.9)

Return ONLY a JSON array of %d days:
[
  {
    "day": 1,
    "activities": [
      {
        "name": "Activity Name",
        "desc": "Engaging description...",
        "price": <number>,
        "duration": "X hours",
        "rating": 4.7,
        "time": "9:00 AM"
      }
    ]
  }
]`, days, destination, strings.Join(interests, ", "), perDayBudget, days)

	text, err := p.complete(prompt)
	if err != nil {
		return nil, &ProviderError{Stage: "activity generation", Err: err}
	}

	var dailyPlans []models.DailyPlan
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &dailyPlans); err != nil {
		return nil, &ProviderError{Stage: "activity generation", Err: fmt.Errorf("invalid activity response: %w", err)}
	}

	for i := range dailyPlans {
		dailyPlans[i].Day = i + 1
		dailyPlans[i].Date = startDate.AddDate(0, 0, i).Format("Jan 02")

		total := 0
		for _, activity := range dailyPlans[i].Activities {
			total += activity.Price
		}
		dailyPlans[i].TotalCost = total
	}

	return dailyPlans, nil
}

// complete sends a single-turn prompt to the Anthropic messages API and
// returns the first content block's text.
func (p *AnthropicProvider) complete(prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":      p.model,
		"max_tokens": 3000,
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
	}

	body, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", p.baseURL+"/v1/messages", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("anthropic API error: %s", string(bodyBytes))
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("no response from Anthropic")
	}

	return result.Content[0].Text, nil
}

// stripCodeFences removes a surrounding markdown code block, which models
// add despite JSON-only instructions.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = text[len("```json"):]
	} else if strings.HasPrefix(text, "```") {
		text = text[len("```"):]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
