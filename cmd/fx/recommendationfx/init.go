package recommendationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/config"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationRepo, provideRecommendationService)

func provideRecommendationRepo(db *gorm.DB) repositories.RecommendationRepository {
	return repositories.NewRecommendationRepository(db)
}

func provideRecommendationService(
	recRepo repositories.RecommendationRepository,
	generator utils.Generator,
	cfg *config.Config,
) services.RecommendationService {
	return services.NewRecommendationService(recRepo, generator, cfg.AIModel)
}
