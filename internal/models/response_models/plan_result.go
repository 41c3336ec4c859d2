package response_models

// Activity is one itinerary entry as generated by the model. Coordinates are
// pointers so that unknown locations stay absent instead of rendering as 0,0.
type Activity struct {
	TimeOfDay  string   `json:"timeOfDay"` // morning|afternoon|evening
	Name       string   `json:"name"`
	Type       string   `json:"type"` // sightseeing|food|nature|adventure|culture|shopping|other
	ApproxCost float64  `json:"approxCost"`
	Notes      string   `json:"notes"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title"`
	Summary    string     `json:"summary"`
	Activities []Activity `json:"activities"`
}

type BudgetBreakdown struct {
	Currency              string  `json:"currency"`
	Total                 float64 `json:"total"`
	AccommodationPerNight float64 `json:"accommodationPerNight"`
	FoodPerDay            float64 `json:"foodPerDay"`
	TransportPerDay       float64 `json:"transportPerDay"`
	ActivitiesPerDay      float64 `json:"activitiesPerDay"`
	Notes                 string  `json:"notes"`
}

// PlanPayload is the shape the model is instructed to return.
type PlanPayload struct {
	Itinerary       []ItineraryDay  `json:"itinerary"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
}

// PlanResult merges the generated payload with the request parameters.
// Destination, duration, budget and interests always echo the request; the
// model never overrides caller-stated constraints.
type PlanResult struct {
	Destination     DestinationSummary `json:"destination"`
	DurationDays    int                `json:"durationDays"`
	Budget          float64            `json:"budget"`
	Interests       []string           `json:"interests"`
	Itinerary       []ItineraryDay     `json:"itinerary"`
	BudgetBreakdown BudgetBreakdown    `json:"budgetBreakdown"`
	Trip            *TripResponse      `json:"trip,omitempty"`
}
