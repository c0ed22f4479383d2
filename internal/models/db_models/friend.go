package db_models

// Friend is the friendship edge. Accepted stays false until the other side
// confirms the request.
type Friend struct {
	UserID   string `gorm:"size:6;primaryKey"`
	FriendID string `gorm:"size:6;primaryKey"`
	Accepted bool
}
