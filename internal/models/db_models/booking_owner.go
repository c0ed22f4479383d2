package db_models

// BookingOwner is a pure join row: user owns booking.
type BookingOwner struct {
	UserID    string `gorm:"size:6;primaryKey"`
	BookingID string `gorm:"size:6;primaryKey"`
}
