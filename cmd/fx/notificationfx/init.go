package notificationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) services.NotificationService {
	return services.NewNotificationService(notificationRepo, userRepo)
}
