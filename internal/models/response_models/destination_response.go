package response_models

// DestinationSummary echoes destination identity on plan results and trips.
type DestinationSummary struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type AttractionResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"short_description,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	ApproximateCost  int      `json:"approximate_cost"`
}

type HotelResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Stars            int      `json:"stars"`
	PricePerNight    int      `json:"price_per_night"`
	IsBudgetFriendly bool     `json:"is_budget_friendly"`
	ShortDescription string   `json:"short_description,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
}

type RestaurantResponse struct {
	ID                    uint     `json:"id"`
	Name                  string   `json:"name"`
	Slug                  string   `json:"slug"`
	Cuisine               string   `json:"cuisine,omitempty"`
	PriceLevel            string   `json:"price_level"`
	ShortDescription      string   `json:"short_description,omitempty"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	AveragePricePerPerson int      `json:"average_price_per_person"`
}

type DestinationResponse struct {
	ID                 uint                 `json:"id"`
	Name               string               `json:"name"`
	Slug               string               `json:"slug"`
	Country            string               `json:"country"`
	Description        string               `json:"description,omitempty"`
	Latitude           *float64             `json:"latitude,omitempty"`
	Longitude          *float64             `json:"longitude,omitempty"`
	AverageDailyBudget int                  `json:"average_daily_budget"`
	Attractions        []AttractionResponse `json:"attractions,omitempty"`
	Hotels             []HotelResponse      `json:"hotels,omitempty"`
	Restaurants        []RestaurantResponse `json:"restaurants,omitempty"`
}
