package db_models

// Recommendation stores one AI-generated trip suggestion: the summarized
// request and the free-text output.
type Recommendation struct {
	ID     string `gorm:"column:id;size:6;primaryKey"`
	UserID string `gorm:"size:6;index"`
	Input  string `gorm:"type:text"`
	Output string `gorm:"type:text"`
}
