package db_models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	Title           string `gorm:"not null"`
	StartDate       time.Time
	EndDate         time.Time
	DurationDays    int
	TotalBudget     float64
	Interests       pq.StringArray  `gorm:"type:text[]"`
	Itinerary       json.RawMessage `gorm:"type:jsonb"`
	BudgetBreakdown json.RawMessage `gorm:"type:jsonb"`

	DestinationID uint `gorm:"index;not null"`
	Destination   *Destination
	OwnerID       uint `gorm:"index;not null"`
	Owner         *Account
}
