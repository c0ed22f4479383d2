package db_models

// User is the account directory row. ID is a 6-char generated code that
// every other entity references.
type User struct {
	ID          string `gorm:"column:id;size:6;primaryKey"`
	Name        string `gorm:"size:50;not null"`
	Username    string `gorm:"size:50;uniqueIndex;not null"`
	Password    string `gorm:"size:200;not null"`
	Gender      *int
	Email       *string `gorm:"size:50;uniqueIndex"`
	PhoneNumber *string `gorm:"size:10;index"`
	Avatar      []byte
	Theme       int
	Language    int
}
