package db_models

// Credential is the authentication row: login name plus password hash.
// Kept in its own table, separate from User, matching the stored schema.
type Credential struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"size:255;uniqueIndex"`
	HashedPassword string `gorm:"size:255"`
}
