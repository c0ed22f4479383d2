package db_models

import "time"

// TripPlace is one itinerary entry: a place scheduled inside a trip.
type TripPlace struct {
	ID        string `gorm:"column:id;size:6;primaryKey"`
	PlaceID   string `gorm:"size:6;index"`
	TripID    string `gorm:"size:6;index"`
	StartTime time.Time
	EndTime   time.Time
	Note      string `gorm:"size:1000"`
}
