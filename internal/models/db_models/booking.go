package db_models

import "time"

type Booking struct {
	ID      string    `gorm:"column:id;size:6;primaryKey"`
	PlaceID string    `gorm:"size:6;index"`
	Date    time.Time `gorm:"index"`
	Status  string    `gorm:"size:100"`
}
