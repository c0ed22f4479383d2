package db_models

type Notification struct {
	ID      string `gorm:"column:id;size:6;primaryKey"`
	UserID  string `gorm:"size:6;index"`
	Content string `gorm:"size:1000"`
	Read    bool
}
