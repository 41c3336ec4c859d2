package db_models

type Restaurant struct {
	BaseModel
	Name                  string `gorm:"not null"`
	Slug                  string `gorm:"uniqueIndex"`
	Cuisine               string
	PriceLevel            string `gorm:"default:midrange"` // budget|midrange|luxury
	ShortDescription      string
	Description           string
	Latitude              *float64
	Longitude             *float64
	AveragePricePerPerson int

	DestinationID uint `gorm:"index"`
}
