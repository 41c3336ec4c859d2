package db_models

type Destination struct {
	BaseModel
	Name               string `gorm:"not null"`
	Slug               string `gorm:"uniqueIndex"`
	Country            string `gorm:"not null"`
	Description        string
	Latitude           *float64
	Longitude          *float64
	AverageDailyBudget int

	Attractions []Attraction `gorm:"foreignKey:DestinationID"`
	Hotels      []Hotel      `gorm:"foreignKey:DestinationID"`
	Restaurants []Restaurant `gorm:"foreignKey:DestinationID"`
	Trips       []Trip       `gorm:"foreignKey:DestinationID"`
}
