package db_models

// TripMember is a pure join row: user belongs to trip.
type TripMember struct {
	UserID string `gorm:"size:6;primaryKey"`
	TripID string `gorm:"size:6;primaryKey"`
}
