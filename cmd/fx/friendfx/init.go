package friendfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideFriendRepo, provideFriendService)

func provideFriendRepo(db *gorm.DB) repositories.FriendRepository {
	return repositories.NewFriendRepository(db)
}

func provideFriendService(
	friendRepo repositories.FriendRepository,
	userRepo repositories.UserRepository,
) services.FriendService {
	return services.NewFriendService(friendRepo, userRepo)
}
