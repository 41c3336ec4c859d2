package db_models

type Hotel struct {
	BaseModel
	Name             string `gorm:"not null"`
	Slug             string `gorm:"uniqueIndex"`
	Stars            int
	PricePerNight    int `gorm:"not null"`
	IsBudgetFriendly bool
	ShortDescription string
	Description      string
	Latitude         *float64
	Longitude        *float64

	DestinationID uint `gorm:"index"`
}
