package reviewfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo, provideReviewService)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	tripRepo repositories.TripRepository,
	userRepo repositories.UserRepository,
) services.ReviewService {
	return services.NewReviewService(reviewRepo, tripRepo, userRepo)
}
