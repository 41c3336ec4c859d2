package response_models

import "encoding/json"

type TripResponse struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	StartDate       string              `json:"startDate"`
	EndDate         string              `json:"endDate"`
	DurationDays    int                 `json:"durationDays"`
	TotalBudget     float64             `json:"totalBudget"`
	Interests       []string            `json:"interests"`
	Itinerary       json.RawMessage     `json:"itinerary,omitempty"`
	BudgetBreakdown json.RawMessage     `json:"budgetBreakdown,omitempty"`
	Destination     *DestinationSummary `json:"destination,omitempty"`
}
