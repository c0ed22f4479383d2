package db_models

type Review struct {
	ID      string `gorm:"column:id;size:6;primaryKey"`
	TripID  string `gorm:"size:6;index"`
	UserID  string `gorm:"size:6;index"`
	Comment string `gorm:"size:1000"`
	Rating  int
}
