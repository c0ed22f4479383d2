package db_models

import "time"

type Trip struct {
	ID        string    `gorm:"column:id;size:6;primaryKey"`
	Name      string    `gorm:"size:50;not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   *time.Time `gorm:"index"`
}
