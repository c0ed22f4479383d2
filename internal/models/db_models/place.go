package db_models

type Place struct {
	ID          string `gorm:"column:id;size:6;primaryKey"`
	Name        string `gorm:"size:50;index"`
	Country     string `gorm:"size:100;index"`
	City        string `gorm:"size:100;index"`
	Province    string `gorm:"size:100;index"`
	Address     string `gorm:"size:1000"`
	Description string `gorm:"size:1000"`
	Image       string `gorm:"size:1000"`
	Rating      int
	Type        int
}
