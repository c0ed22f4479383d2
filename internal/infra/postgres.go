package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripmate/pkg/config"
	"tripmate/pkg/logger"
)

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logger.Log.Errorw("error connecting to database", "err", err)
		return nil, err
	}
	return db, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Errorw("error getting database instance", "err", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Log.Errorw("error closing database connection", "err", err)
		return
	}
	logger.Log.Infow("database connection closed")
}
