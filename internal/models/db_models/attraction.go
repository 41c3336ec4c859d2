package db_models

type Attraction struct {
	BaseModel
	Name             string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex"`
	Category         string `gorm:"default:sightseeing"` // sightseeing|food|nature|adventure|culture|shopping
	ShortDescription string
	Description      string
	Latitude         *float64
	Longitude        *float64
	ApproximateCost  int

	DestinationID uint `gorm:"index"`
}
