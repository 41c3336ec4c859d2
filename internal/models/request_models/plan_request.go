package request_models

// PlanTripRequest is the body of POST /api/trips/plan. Dates use "2006-01-02"
// and are only required when SaveTrip is set.
type PlanTripRequest struct {
	DestinationID uint     `json:"destinationId" binding:"required"`
	Budget        float64  `json:"budget" binding:"required,gt=0"`
	DurationDays  int      `json:"durationDays" binding:"required,gt=0"`
	Interests     []string `json:"interests"`
	SaveTrip      bool     `json:"saveTrip"`
	Title         string   `json:"title"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
}
